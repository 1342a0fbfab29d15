package dto

import (
	"time"

	"github.com/pcell/backend/internal/app/models"
)

// AddSelectionsRequest marks students as selected for an opening, identified
// by enrolment number the way results are published.
type AddSelectionsRequest struct {
	OpeningID    int64    `json:"openingId" binding:"required,min=1" example:"7"`
	EnrolmentNos []string `json:"enrolmentNos" binding:"required,min=1"`
}

// SelectionResponse is one selection joined with its student and opening.
type SelectionResponse struct {
	ID             int64            `json:"id" example:"3"`
	StudentDetails *UserResponse    `json:"studentDetails,omitempty"`
	CompanyDetails *OpeningResponse `json:"companyDetails,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// SelectionToResponse maps a selection model with its joined records.
func SelectionToResponse(s *models.Selection) *SelectionResponse {
	if s == nil {
		return nil
	}
	return &SelectionResponse{
		ID:             s.ID,
		StudentDetails: UserToResponse(s.Student),
		CompanyDetails: OpeningToResponse(s.Opening),
		CreatedAt:      s.CreatedAt,
	}
}

// SelectionsToResponses maps a slice of selection models.
func SelectionsToResponses(selections []*models.Selection) []*SelectionResponse {
	out := make([]*SelectionResponse, 0, len(selections))
	for _, s := range selections {
		out = append(out, SelectionToResponse(s))
	}
	return out
}

// AddSelectionsResponse summarizes a bulk selection publish.
type AddSelectionsResponse struct {
	Added   []*SelectionResponse `json:"added"`
	Skipped []SkippedSelection   `json:"skipped,omitempty"`
}

// SkippedSelection explains why one enrolment number was not recorded.
type SkippedSelection struct {
	EnrolmentNo string `json:"enrolmentNo" example:"2022BCS0999"`
	Reason      string `json:"reason" example:"student already has a placement"`
}

// StudentStatusRequest identifies a student for a placement status check,
// optionally scoped to one opening.
type StudentStatusRequest struct {
	EnrolmentNo string `form:"enrolmentNo" binding:"required"`
	OpeningID   int64  `form:"openingId" binding:"omitempty,min=1"`
}

// StudentStatusResponse reports a student's placement standing.
type StudentStatusResponse struct {
	IsPlaced    bool   `json:"isPlaced" example:"false"`
	HasApplied  bool   `json:"hasApplied" example:"true"`
	StudentName string `json:"studentName" example:"Asha Rao"`
	EnrolmentNo string `json:"enrolmentNo" example:"2022BCS0421"`
	Branch      string `json:"branch" example:"CSE"`
	Batch       string `json:"batch" example:"2026"`
}

// AppliedShortlistedResponse lists applicants and selected students for
// one opening.
type AppliedShortlistedResponse struct {
	Applied     []*UserResponse `json:"applied"`
	Shortlisted []*UserResponse `json:"shortlisted"`
}
