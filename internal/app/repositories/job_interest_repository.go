package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pcell/backend/internal/app/models"
	"github.com/pcell/backend/internal/pkg/apperrors"
)

// JobInterestRepository persists interest records. The table carries a
// unique constraint on (user_id, opening_id) and writes go through an upsert,
// so re-expressing interest overwrites the previous choice.
type JobInterestRepository struct {
	db *pgxpool.Pool
}

func NewJobInterestRepository(db *pgxpool.Pool) *JobInterestRepository {
	return &JobInterestRepository{db: db}
}

// Upsert inserts or overwrites the student's interest record for an opening.
func (r *JobInterestRepository) Upsert(ctx context.Context, interest *models.JobInterest) error {
	query := `
		INSERT INTO job_interests (user_id, opening_id, is_interested, reason, is_eligible)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, opening_id)
		DO UPDATE SET is_interested = EXCLUDED.is_interested,
			reason = EXCLUDED.reason,
			is_eligible = EXCLUDED.is_eligible,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		interest.UserID, interest.OpeningID, interest.IsInterested,
		interest.Reason, interest.IsEligible,
	).Scan(&interest.ID, &interest.CreatedAt, &interest.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting job interest: %w", err)
	}
	return nil
}

// FindByUserAndOpening returns the student's record for an opening, or
// ErrResourceNotFound when no choice has been made yet.
func (r *JobInterestRepository) FindByUserAndOpening(ctx context.Context, userID, openingID int64) (*models.JobInterest, error) {
	query := `
		SELECT id, user_id, opening_id, is_interested, reason, is_eligible,
			created_at, updated_at
		FROM job_interests
		WHERE user_id = $1 AND opening_id = $2`

	var ji models.JobInterest
	err := r.db.QueryRow(ctx, query, userID, openingID).Scan(
		&ji.ID, &ji.UserID, &ji.OpeningID, &ji.IsInterested, &ji.Reason,
		&ji.IsEligible, &ji.CreatedAt, &ji.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("finding job interest: %w", err)
	}
	return &ji, nil
}

// CountByOpening returns how many records for the opening carry the given
// interest value.
func (r *JobInterestRepository) CountByOpening(ctx context.Context, openingID int64, isInterested bool) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM job_interests WHERE opening_id = $1 AND is_interested = $2`,
		openingID, isInterested).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting job interests: %w", err)
	}
	return count, nil
}

// CountEligibleInterested returns how many interested records also carry an
// eligible snapshot.
func (r *JobInterestRepository) CountEligibleInterested(ctx context.Context, openingID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM job_interests WHERE opening_id = $1 AND is_interested = TRUE AND is_eligible = TRUE`,
		openingID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting eligible interested: %w", err)
	}
	return count, nil
}

// ListInterestedUsers returns the users who expressed interest in an opening.
func (r *JobInterestRepository) ListInterestedUsers(ctx context.Context, openingID int64) ([]*models.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.mobile, u.branch, u.batch,
			u.enrolment_no, u.cgpa, u.resume_url
		FROM job_interests ji
		JOIN users u ON u.id = ji.user_id
		WHERE ji.opening_id = $1 AND ji.is_interested = TRUE
		ORDER BY u.name ASC`

	rows, err := r.db.Query(ctx, query, openingID)
	if err != nil {
		return nil, fmt.Errorf("listing interested users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		var u models.User
		err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.Mobile, &u.Branch, &u.Batch,
			&u.EnrolmentNo, &u.CGPA, &u.ResumeURL,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning interested user: %w", err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating interested users: %w", err)
	}
	return users, nil
}
