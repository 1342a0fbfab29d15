package dto

import (
	"time"

	"github.com/pcell/backend/internal/app/models"
)

// CgpaCriterionRequest is one per-branch CGPA threshold in an opening payload.
type CgpaCriterionRequest struct {
	Branch string  `json:"branch" binding:"required" example:"CSE"`
	CGPA   float64 `json:"cgpa" binding:"min=0,max=10" example:"7.5"`
}

// CreateOpeningRequest creates a job opening. BranchesAllowed must be
// non-empty; criteria for branches outside the allowed set are rejected.
type CreateOpeningRequest struct {
	CompanyName         string                 `json:"companyName" binding:"required,min=1,max=200" example:"Acme Corp"`
	OfferType           string                 `json:"offerType" binding:"required,oneof=intern fte intern+fte" example:"fte"`
	Batch               string                 `json:"batch" binding:"required" example:"2026"`
	BranchesAllowed     []string               `json:"branchesAllowed" binding:"required,min=1"`
	CgpaCriteria        []CgpaCriterionRequest `json:"cgpaCriteria" binding:"omitempty,dive"`
	ApplicationDeadline *time.Time             `json:"applicationDeadline,omitempty"`
	TestDate            *time.Time             `json:"testDate,omitempty"`
	AdditionalInfo      string                 `json:"additionalInfo,omitempty" binding:"omitempty,max=5000"`
}

// UpdateOpeningRequest partially updates an opening.
type UpdateOpeningRequest struct {
	CompanyName         *string                 `json:"companyName,omitempty" binding:"omitempty,min=1,max=200"`
	OfferType           *string                 `json:"offerType,omitempty" binding:"omitempty,oneof=intern fte intern+fte"`
	Batch               *string                 `json:"batch,omitempty"`
	BranchesAllowed     *[]string               `json:"branchesAllowed,omitempty" binding:"omitempty,min=1"`
	CgpaCriteria        *[]CgpaCriterionRequest `json:"cgpaCriteria,omitempty" binding:"omitempty,dive"`
	ApplicationDeadline *time.Time              `json:"applicationDeadline,omitempty"`
	TestDate            *time.Time              `json:"testDate,omitempty"`
	AdditionalInfo      *string                 `json:"additionalInfo,omitempty" binding:"omitempty,max=5000"`
}

// OpeningResponse is the public projection of an opening.
type OpeningResponse struct {
	ID                  int64                   `json:"id" example:"7"`
	CompanyName         string                  `json:"companyName" example:"Acme Corp"`
	OfferType           string                  `json:"offerType" example:"fte"`
	Batch               string                  `json:"batch" example:"2026"`
	BranchesAllowed     []string                `json:"branchesAllowed"`
	CgpaCriteria        []models.CgpaCriterion  `json:"cgpaCriteria"`
	ApplicationDeadline *time.Time              `json:"applicationDeadline,omitempty"`
	TestDate            *time.Time              `json:"testDate,omitempty"`
	AdditionalInfo      string                  `json:"additionalInfo,omitempty"`
	CreatedAt           time.Time               `json:"createdAt"`
	UpdatedAt           time.Time               `json:"updatedAt"`
}

// OpeningToResponse maps an opening model to its public projection.
func OpeningToResponse(o *models.Opening) *OpeningResponse {
	if o == nil {
		return nil
	}
	return &OpeningResponse{
		ID:                  o.ID,
		CompanyName:         o.CompanyName,
		OfferType:           o.OfferType,
		Batch:               o.Batch,
		BranchesAllowed:     o.BranchesAllowed,
		CgpaCriteria:        o.CgpaCriteria,
		ApplicationDeadline: o.ApplicationDeadline,
		TestDate:            o.TestDate,
		AdditionalInfo:      o.AdditionalInfo,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

// OpeningsToResponses maps a slice of opening models.
func OpeningsToResponses(openings []*models.Opening) []*OpeningResponse {
	out := make([]*OpeningResponse, 0, len(openings))
	for _, o := range openings {
		out = append(out, OpeningToResponse(o))
	}
	return out
}

// OpeningFilterRequest narrows opening listings.
type OpeningFilterRequest struct {
	Batch     string `form:"batch"`
	OfferType string `form:"offerType" binding:"omitempty,oneof=intern fte intern+fte"`
	Company   string `form:"company"`
	Page      int    `form:"page,default=1" binding:"omitempty,min=1"`
	Size      int    `form:"size,default=20" binding:"omitempty,min=1,max=100"`
}
