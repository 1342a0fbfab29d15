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

// SelectionRepository persists placement results. The table carries a unique
// constraint on student_id so a student can hold at most one placement.
type SelectionRepository struct {
	db *pgxpool.Pool
}

func NewSelectionRepository(db *pgxpool.Pool) *SelectionRepository {
	return &SelectionRepository{db: db}
}

// Create records a placement. A second placement for the same student maps
// to ErrAlreadyPlaced.
func (r *SelectionRepository) Create(ctx context.Context, selection *models.Selection) error {
	query := `
		INSERT INTO selections (student_id, opening_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, selection.StudentID, selection.OpeningID).
		Scan(&selection.ID, &selection.CreatedAt, &selection.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "selections_student_id_key") {
			return apperrors.ErrAlreadyPlaced
		}
		return fmt.Errorf("inserting selection: %w", err)
	}
	return nil
}

// FindByStudentID returns the student's placement joined with the opening,
// or ErrSelectionNotFound when the student is not placed.
func (r *SelectionRepository) FindByStudentID(ctx context.Context, studentID int64) (*models.Selection, error) {
	query := `
		SELECT s.id, s.student_id, s.opening_id, s.created_at, s.updated_at,
			o.id, o.company_name, o.offer_type, o.batch
		FROM selections s
		JOIN openings o ON o.id = s.opening_id
		WHERE s.student_id = $1`

	var (
		sel     models.Selection
		opening models.Opening
	)
	err := r.db.QueryRow(ctx, query, studentID).Scan(
		&sel.ID, &sel.StudentID, &sel.OpeningID, &sel.CreatedAt, &sel.UpdatedAt,
		&opening.ID, &opening.CompanyName, &opening.OfferType, &opening.Batch,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSelectionNotFound
		}
		return nil, fmt.Errorf("finding selection by student: %w", err)
	}
	sel.Opening = &opening
	return &sel, nil
}

// List returns all selections joined with student and opening details,
// optionally restricted to one opening (openingID > 0).
func (r *SelectionRepository) List(ctx context.Context, openingID int64) ([]*models.Selection, error) {
	query := `
		SELECT s.id, s.student_id, s.opening_id, s.created_at, s.updated_at,
			u.id, u.name, u.email, u.branch, u.batch, u.enrolment_no, u.cgpa,
			o.id, o.company_name, o.offer_type, o.batch
		FROM selections s
		JOIN users u ON u.id = s.student_id
		JOIN openings o ON o.id = s.opening_id
		WHERE ($1 = 0 OR s.opening_id = $1)
		ORDER BY s.created_at DESC`

	rows, err := r.db.Query(ctx, query, openingID)
	if err != nil {
		return nil, fmt.Errorf("listing selections: %w", err)
	}
	defer rows.Close()

	selections := make([]*models.Selection, 0)
	for rows.Next() {
		var (
			sel     models.Selection
			student models.User
			opening models.Opening
		)
		err := rows.Scan(
			&sel.ID, &sel.StudentID, &sel.OpeningID, &sel.CreatedAt, &sel.UpdatedAt,
			&student.ID, &student.Name, &student.Email, &student.Branch,
			&student.Batch, &student.EnrolmentNo, &student.CGPA,
			&opening.ID, &opening.CompanyName, &opening.OfferType, &opening.Batch,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning selection row: %w", err)
		}
		sel.Student = &student
		sel.Opening = &opening
		selections = append(selections, &sel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating selection rows: %w", err)
	}
	return selections, nil
}

func (r *SelectionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM selections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting selection: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSelectionNotFound
	}
	return nil
}
