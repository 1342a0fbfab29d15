package services

import (
	"context"

	"github.com/pcell/backend/internal/app/models"
	"github.com/pcell/backend/internal/app/models/dto"
	"github.com/pcell/backend/internal/pkg/logger"
)

// BranchService manages the catalogue of academic branches.
type BranchService struct {
	branches BranchRepository
}

func NewBranchService(branches BranchRepository) *BranchService {
	return &BranchService{branches: branches}
}

func (s *BranchService) Create(ctx context.Context, req dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	branch := &models.Branch{Code: req.BranchCode, Name: req.BranchName}
	if err := s.branches.Create(ctx, branch); err != nil {
		return nil, err
	}

	logger.Info().Str("branchCode", branch.Code).Msg("Branch created")
	return dto.BranchToResponse(branch), nil
}

func (s *BranchService) List(ctx context.Context) ([]*dto.BranchResponse, error) {
	branches, err := s.branches.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.BranchesToResponses(branches), nil
}

func (s *BranchService) Delete(ctx context.Context, id int64) error {
	return s.branches.Delete(ctx, id)
}
