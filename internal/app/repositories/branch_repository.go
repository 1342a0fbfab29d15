package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pcell/backend/internal/app/models"
	"github.com/pcell/backend/internal/pkg/apperrors"
	"github.com/pcell/backend/internal/pkg/dberrors"
)

// BranchRepository persists the branch catalogue.
type BranchRepository struct {
	db *pgxpool.Pool
}

func NewBranchRepository(db *pgxpool.Pool) *BranchRepository {
	return &BranchRepository{db: db}
}

func (r *BranchRepository) Create(ctx context.Context, branch *models.Branch) error {
	query := `
		INSERT INTO branches (branch_code, branch_name)
		VALUES ($1, $2)
		RETURNING id`

	err := r.db.QueryRow(ctx, query, branch.Code, branch.Name).Scan(&branch.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrBranchAlreadyExists
		}
		return fmt.Errorf("inserting branch: %w", err)
	}
	return nil
}

func (r *BranchRepository) List(ctx context.Context) ([]*models.Branch, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, branch_code, branch_name FROM branches ORDER BY branch_code ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing branches: %w", err)
	}
	defer rows.Close()

	branches := make([]*models.Branch, 0)
	for rows.Next() {
		var b models.Branch
		if err := rows.Scan(&b.ID, &b.Code, &b.Name); err != nil {
			return nil, fmt.Errorf("scanning branch row: %w", err)
		}
		branches = append(branches, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating branch rows: %w", err)
	}
	return branches, nil
}

func (r *BranchRepository) FindByCode(ctx context.Context, code string) (*models.Branch, error) {
	var b models.Branch
	err := r.db.QueryRow(ctx,
		`SELECT id, branch_code, branch_name FROM branches WHERE branch_code = $1`, code).
		Scan(&b.ID, &b.Code, &b.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBranchNotFound
		}
		return nil, fmt.Errorf("finding branch by code: %w", err)
	}
	return &b, nil
}

func (r *BranchRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrBranchNotFound
	}
	return nil
}
