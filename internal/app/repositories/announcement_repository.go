package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pcell/backend/internal/app/models"
	"github.com/pcell/backend/internal/pkg/apperrors"
	"github.com/pcell/backend/internal/pkg/helpers"
)

// AnnouncementRepository persists notices published by the placement cell.
type AnnouncementRepository struct {
	db *pgxpool.Pool
}

func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *models.Announcement) error {
	query := `
		INSERT INTO announcements (title, content, is_result)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, a.Title, a.Content, a.IsResult).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting announcement: %w", err)
	}
	return nil
}

func (r *AnnouncementRepository) FindByID(ctx context.Context, id int64) (*models.Announcement, error) {
	var a models.Announcement
	err := r.db.QueryRow(ctx,
		`SELECT id, title, content, is_result, created_at, updated_at FROM announcements WHERE id = $1`, id).
		Scan(&a.ID, &a.Title, &a.Content, &a.IsResult, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("finding announcement: %w", err)
	}
	return &a, nil
}

// List returns a page of announcements, newest first.
func (r *AnnouncementRepository) List(ctx context.Context, page, size int) ([]*models.Announcement, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM announcements`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting announcements: %w", err)
	}

	_, size, offset := helpers.NormalizePagination(page, size)
	rows, err := r.db.Query(ctx,
		`SELECT id, title, content, is_result, created_at, updated_at
		 FROM announcements ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listing announcements: %w", err)
	}
	defer rows.Close()

	items := make([]*models.Announcement, 0)
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.IsResult, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scanning announcement row: %w", err)
		}
		items = append(items, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating announcement rows: %w", err)
	}
	return items, total, nil
}

func (r *AnnouncementRepository) Update(ctx context.Context, a *models.Announcement) error {
	query := `
		UPDATE announcements
		SET title = $1, content = $2, is_result = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query, a.Title, a.Content, a.IsResult, a.ID).Scan(&a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrAnnouncementNotFound
		}
		return fmt.Errorf("updating announcement: %w", err)
	}
	return nil
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}
	return nil
}
