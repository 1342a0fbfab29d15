// Package repositories contains the raw-SQL persistence layer. Each
// repository owns the queries for one table and maps pgx errors to the
// application error vocabulary.
package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pcell/backend/internal/app/models"
	"github.com/pcell/backend/internal/pkg/apperrors"
	"github.com/pcell/backend/internal/pkg/dberrors"
	"github.com/pcell/backend/internal/pkg/helpers"
)

const userColumns = `id, name, email, password, mobile, gender, dob, branch, batch,
	enrolment_no, cgpa, is_admin, email_verified, image_url, resume_url,
	linkedin, github, created_at, updated_at`

// UserRepository persists user accounts.
type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Mobile, &u.Gender, &u.DOB,
		&u.Branch, &u.Batch, &u.EnrolmentNo, &u.CGPA, &u.IsAdmin,
		&u.EmailVerified, &u.ImageURL, &u.ResumeURL, &u.LinkedIn, &u.GitHub,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a user and fills the generated fields. Duplicate email or
// enrolment number maps to the matching conflict error.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password, mobile, gender, dob, branch,
			batch, enrolment_no, cgpa, is_admin, email_verified, image_url,
			resume_url, linkedin, github)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		user.Name, user.Email, user.Password, user.Mobile, user.Gender,
		user.DOB, user.Branch, user.Batch, user.EnrolmentNo, user.CGPA,
		user.IsAdmin, user.EmailVerified, user.ImageURL, user.ResumeURL,
		user.LinkedIn, user.GitHub,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "users_enrolment_no_key") {
			return apperrors.ErrEnrolmentNoExists
		}
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("finding user by id: %w", err)
	}
	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("finding user by email: %w", err)
	}
	return user, nil
}

// FindByEnrolmentNos returns users for the given enrolment numbers. Numbers
// with no matching account are simply absent from the result.
func (r *UserRepository) FindByEnrolmentNos(ctx context.Context, enrolmentNos []string) ([]*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE enrolment_no = ANY($1)`, userColumns)
	rows, err := r.db.Query(ctx, query, enrolmentNos)
	if err != nil {
		return nil, fmt.Errorf("finding users by enrolment numbers: %w", err)
	}
	defer rows.Close()
	return collectUsers(rows)
}

// Update persists all mutable profile fields of user.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = $1, mobile = $2, gender = $3, dob = $4, branch = $5,
			batch = $6, cgpa = $7, image_url = $8, resume_url = $9,
			linkedin = $10, github = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query,
		user.Name, user.Mobile, user.Gender, user.DOB, user.Branch,
		user.Batch, user.CGPA, user.ImageURL, user.ResumeURL, user.LinkedIn,
		user.GitHub, user.ID,
	).Scan(&user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("updating user: %w", err)
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`,
		hashedPassword, userID)
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// List returns a filtered page of users with the total match count.
func (r *UserRepository) List(ctx context.Context, branch, batch, search string, page, size int) ([]*models.User, int64, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	idx := 1

	if branch != "" {
		conditions = append(conditions, fmt.Sprintf("branch = $%d", idx))
		args = append(args, branch)
		idx++
	}
	if batch != "" {
		conditions = append(conditions, fmt.Sprintf("batch = $%d", idx))
		args = append(args, batch)
		idx++
	}
	if search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR enrolment_no ILIKE $%d)", idx, idx, idx))
		args = append(args, "%"+search+"%")
		idx++
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM users WHERE %s`, where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting users: %w", err)
	}

	_, size, offset := helpers.NormalizePagination(page, size)
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s ORDER BY name ASC LIMIT $%d OFFSET $%d`,
		userColumns, where, idx, idx+1)
	args = append(args, size, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	users, err := collectUsers(rows)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func collectUsers(rows pgx.Rows) ([]*models.User, error) {
	users := make([]*models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user rows: %w", err)
	}
	return users, nil
}
