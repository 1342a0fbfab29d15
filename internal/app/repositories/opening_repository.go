package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pcell/backend/internal/app/models"
	"github.com/pcell/backend/internal/pkg/apperrors"
	"github.com/pcell/backend/internal/pkg/helpers"
)

const openingColumns = `id, company_name, offer_type, batch, branches_allowed,
	cgpa_criteria, application_deadline, test_date, additional_info,
	created_at, updated_at`

// OpeningRepository persists job openings. The allowed-branch list and the
// per-branch CGPA criteria live in JSONB columns.
type OpeningRepository struct {
	db *pgxpool.Pool
}

func NewOpeningRepository(db *pgxpool.Pool) *OpeningRepository {
	return &OpeningRepository{db: db}
}

func scanOpening(row pgx.Row) (*models.Opening, error) {
	var (
		o               models.Opening
		branchesAllowed []byte
		cgpaCriteria    []byte
	)
	err := row.Scan(
		&o.ID, &o.CompanyName, &o.OfferType, &o.Batch, &branchesAllowed,
		&cgpaCriteria, &o.ApplicationDeadline, &o.TestDate, &o.AdditionalInfo,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(branchesAllowed, &o.BranchesAllowed); err != nil {
		return nil, fmt.Errorf("decoding branches_allowed: %w", err)
	}
	if err := json.Unmarshal(cgpaCriteria, &o.CgpaCriteria); err != nil {
		return nil, fmt.Errorf("decoding cgpa_criteria: %w", err)
	}
	return &o, nil
}

func (r *OpeningRepository) Create(ctx context.Context, opening *models.Opening) error {
	branchesAllowed, err := json.Marshal(opening.BranchesAllowed)
	if err != nil {
		return fmt.Errorf("encoding branches_allowed: %w", err)
	}
	cgpaCriteria, err := json.Marshal(opening.CgpaCriteria)
	if err != nil {
		return fmt.Errorf("encoding cgpa_criteria: %w", err)
	}

	query := `
		INSERT INTO openings (company_name, offer_type, batch, branches_allowed,
			cgpa_criteria, application_deadline, test_date, additional_info)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	err = r.db.QueryRow(ctx, query,
		opening.CompanyName, opening.OfferType, opening.Batch, branchesAllowed,
		cgpaCriteria, opening.ApplicationDeadline, opening.TestDate,
		opening.AdditionalInfo,
	).Scan(&opening.ID, &opening.CreatedAt, &opening.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting opening: %w", err)
	}
	return nil
}

func (r *OpeningRepository) FindByID(ctx context.Context, id int64) (*models.Opening, error) {
	query := fmt.Sprintf(`SELECT %s FROM openings WHERE id = $1`, openingColumns)
	opening, err := scanOpening(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOpeningNotFound
		}
		return nil, fmt.Errorf("finding opening by id: %w", err)
	}
	return opening, nil
}

// List returns a filtered page of openings, newest first, with the total
// match count.
func (r *OpeningRepository) List(ctx context.Context, batch, offerType, company string, page, size int) ([]*models.Opening, int64, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	idx := 1

	if batch != "" {
		conditions = append(conditions, fmt.Sprintf("batch = $%d", idx))
		args = append(args, batch)
		idx++
	}
	if offerType != "" {
		conditions = append(conditions, fmt.Sprintf("offer_type = $%d", idx))
		args = append(args, offerType)
		idx++
	}
	if company != "" {
		conditions = append(conditions, fmt.Sprintf("company_name ILIKE $%d", idx))
		args = append(args, "%"+company+"%")
		idx++
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM openings WHERE %s`, where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting openings: %w", err)
	}

	_, size, offset := helpers.NormalizePagination(page, size)
	query := fmt.Sprintf(`SELECT %s FROM openings WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		openingColumns, where, idx, idx+1)
	args = append(args, size, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing openings: %w", err)
	}
	defer rows.Close()

	openings := make([]*models.Opening, 0)
	for rows.Next() {
		o, err := scanOpening(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning opening row: %w", err)
		}
		openings = append(openings, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating opening rows: %w", err)
	}
	return openings, total, nil
}

func (r *OpeningRepository) Update(ctx context.Context, opening *models.Opening) error {
	branchesAllowed, err := json.Marshal(opening.BranchesAllowed)
	if err != nil {
		return fmt.Errorf("encoding branches_allowed: %w", err)
	}
	cgpaCriteria, err := json.Marshal(opening.CgpaCriteria)
	if err != nil {
		return fmt.Errorf("encoding cgpa_criteria: %w", err)
	}

	query := `
		UPDATE openings
		SET company_name = $1, offer_type = $2, batch = $3,
			branches_allowed = $4, cgpa_criteria = $5,
			application_deadline = $6, test_date = $7, additional_info = $8,
			updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at`

	err = r.db.QueryRow(ctx, query,
		opening.CompanyName, opening.OfferType, opening.Batch, branchesAllowed,
		cgpaCriteria, opening.ApplicationDeadline, opening.TestDate,
		opening.AdditionalInfo, opening.ID,
	).Scan(&opening.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrOpeningNotFound
		}
		return fmt.Errorf("updating opening: %w", err)
	}
	return nil
}

// Delete removes an opening. Interests and selections referencing it go with
// it through ON DELETE CASCADE.
func (r *OpeningRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM openings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting opening: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrOpeningNotFound
	}
	return nil
}
