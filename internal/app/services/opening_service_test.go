package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcell/backend/internal/app/models/dto"
	"github.com/pcell/backend/internal/pkg/apperrors"
)

func TestCreateOpeningRejectsCriterionOutsideAllowedBranches(t *testing.T) {
	svc := NewOpeningService(newMemOpeningRepo())

	_, err := svc.Create(context.Background(), dto.CreateOpeningRequest{
		CompanyName:     "Acme Corp",
		OfferType:       "fte",
		Batch:           "2026",
		BranchesAllowed: []string{"CSE"},
		CgpaCriteria:    []dto.CgpaCriterionRequest{{Branch: "ECE", CGPA: 7}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrOpeningValidation)
}

func TestCreateOpeningRejectsDuplicateBranchCriteria(t *testing.T) {
	svc := NewOpeningService(newMemOpeningRepo())

	_, err := svc.Create(context.Background(), dto.CreateOpeningRequest{
		CompanyName:     "Acme Corp",
		OfferType:       "fte",
		Batch:           "2026",
		BranchesAllowed: []string{"CSE"},
		CgpaCriteria: []dto.CgpaCriterionRequest{
			{Branch: "CSE", CGPA: 7},
			{Branch: "CSE", CGPA: 8},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrOpeningValidation)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestCreateAndUpdateOpening(t *testing.T) {
	repo := newMemOpeningRepo()
	svc := NewOpeningService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateOpeningRequest{
		CompanyName:     "Acme Corp",
		OfferType:       "fte",
		Batch:           "2026",
		BranchesAllowed: []string{"CSE", "ECE"},
		CgpaCriteria:    []dto.CgpaCriterionRequest{{Branch: "CSE", CGPA: 7.5}},
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	newBatch := "2027"
	updated, err := svc.Update(ctx, created.ID, dto.UpdateOpeningRequest{Batch: &newBatch})
	require.NoError(t, err)
	assert.Equal(t, "2027", updated.Batch)
	assert.Equal(t, "Acme Corp", updated.CompanyName)
}

func TestUpdateOpeningRevalidatesCriteria(t *testing.T) {
	repo := newMemOpeningRepo()
	svc := NewOpeningService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateOpeningRequest{
		CompanyName:     "Acme Corp",
		OfferType:       "fte",
		Batch:           "2026",
		BranchesAllowed: []string{"CSE", "ECE"},
		CgpaCriteria:    []dto.CgpaCriterionRequest{{Branch: "ECE", CGPA: 7}},
	})
	require.NoError(t, err)

	// Shrinking the allowed set below an existing criterion must fail.
	narrower := []string{"CSE"}
	_, err = svc.Update(ctx, created.ID, dto.UpdateOpeningRequest{BranchesAllowed: &narrower})
	assert.ErrorIs(t, err, apperrors.ErrOpeningValidation)
}

func TestGetOpeningNotFound(t *testing.T) {
	svc := NewOpeningService(newMemOpeningRepo())

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrOpeningNotFound)
}
