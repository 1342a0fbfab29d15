package services

import (
	"context"
	"fmt"

	"github.com/pcell/backend/internal/app/models"
	"github.com/pcell/backend/internal/app/models/dto"
	"github.com/pcell/backend/internal/pkg/apperrors"
	"github.com/pcell/backend/internal/pkg/logger"
)

// OpeningService manages job openings posted by the placement cell.
type OpeningService struct {
	openings OpeningRepository
}

func NewOpeningService(openings OpeningRepository) *OpeningService {
	return &OpeningService{openings: openings}
}

// validateCriteria rejects CGPA criteria naming branches outside the allowed
// set, which would otherwise be dead thresholds nobody is ever checked
// against, and duplicate entries for one branch, where only the first would
// ever apply.
func validateCriteria(branchesAllowed []string, criteria []models.CgpaCriterion) error {
	allowed := make(map[string]struct{}, len(branchesAllowed))
	for _, b := range branchesAllowed {
		allowed[b] = struct{}{}
	}
	seen := make(map[string]struct{}, len(criteria))
	for _, c := range criteria {
		if _, ok := allowed[c.Branch]; !ok {
			return apperrors.NewCustomError(apperrors.ErrOpeningValidation,
				fmt.Sprintf("CGPA criterion references branch %q which is not in the allowed branches", c.Branch))
		}
		if _, dup := seen[c.Branch]; dup {
			return apperrors.NewCustomError(apperrors.ErrOpeningValidation,
				fmt.Sprintf("duplicate CGPA criterion for branch %q", c.Branch))
		}
		seen[c.Branch] = struct{}{}
	}
	return nil
}

func criteriaFromRequest(reqs []dto.CgpaCriterionRequest) []models.CgpaCriterion {
	criteria := make([]models.CgpaCriterion, 0, len(reqs))
	for _, c := range reqs {
		criteria = append(criteria, models.CgpaCriterion{Branch: c.Branch, CGPA: c.CGPA})
	}
	return criteria
}

func (s *OpeningService) Create(ctx context.Context, req dto.CreateOpeningRequest) (*dto.OpeningResponse, error) {
	criteria := criteriaFromRequest(req.CgpaCriteria)
	if err := validateCriteria(req.BranchesAllowed, criteria); err != nil {
		return nil, err
	}

	opening := &models.Opening{
		CompanyName:         req.CompanyName,
		OfferType:           req.OfferType,
		Batch:               req.Batch,
		BranchesAllowed:     req.BranchesAllowed,
		CgpaCriteria:        criteria,
		ApplicationDeadline: req.ApplicationDeadline,
		TestDate:            req.TestDate,
		AdditionalInfo:      req.AdditionalInfo,
	}
	if err := s.openings.Create(ctx, opening); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("openingId", opening.ID).
		Str("company", opening.CompanyName).
		Str("batch", opening.Batch).
		Msg("Opening created")
	return dto.OpeningToResponse(opening), nil
}

func (s *OpeningService) GetByID(ctx context.Context, id int64) (*dto.OpeningResponse, error) {
	opening, err := s.openings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.OpeningToResponse(opening), nil
}

func (s *OpeningService) List(ctx context.Context, filter dto.OpeningFilterRequest) (*dto.PaginatedResponse, error) {
	openings, total, err := s.openings.List(ctx, filter.Batch, filter.OfferType, filter.Company, filter.Page, filter.Size)
	if err != nil {
		return nil, err
	}
	resp := dto.NewPaginatedResponse(dto.OpeningsToResponses(openings), filter.Page, filter.Size, total)
	return &resp, nil
}

// Update applies the non-nil fields of req and revalidates the criteria
// against the resulting allowed-branch set.
func (s *OpeningService) Update(ctx context.Context, id int64, req dto.UpdateOpeningRequest) (*dto.OpeningResponse, error) {
	opening, err := s.openings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		opening.CompanyName = *req.CompanyName
	}
	if req.OfferType != nil {
		opening.OfferType = *req.OfferType
	}
	if req.Batch != nil {
		opening.Batch = *req.Batch
	}
	if req.BranchesAllowed != nil {
		opening.BranchesAllowed = *req.BranchesAllowed
	}
	if req.CgpaCriteria != nil {
		opening.CgpaCriteria = criteriaFromRequest(*req.CgpaCriteria)
	}
	if req.ApplicationDeadline != nil {
		opening.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.TestDate != nil {
		opening.TestDate = req.TestDate
	}
	if req.AdditionalInfo != nil {
		opening.AdditionalInfo = *req.AdditionalInfo
	}

	if err := validateCriteria(opening.BranchesAllowed, opening.CgpaCriteria); err != nil {
		return nil, err
	}
	if err := s.openings.Update(ctx, opening); err != nil {
		return nil, err
	}

	logger.Info().Int64("openingId", opening.ID).Msg("Opening updated")
	return dto.OpeningToResponse(opening), nil
}

func (s *OpeningService) Delete(ctx context.Context, id int64) error {
	if err := s.openings.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("openingId", id).Msg("Opening deleted")
	return nil
}
