package dto

import (
	"time"

	"github.com/pcell/backend/internal/app/models"
)

// CreateAnnouncementRequest publishes a notice to all students.
type CreateAnnouncementRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=200" example:"Acme Corp results declared"`
	Content  string `json:"content" binding:"required,min=1" example:"Shortlisted candidates have been notified by email."`
	IsResult bool   `json:"isResult" example:"true"`
}

// UpdateAnnouncementRequest partially updates an announcement.
type UpdateAnnouncementRequest struct {
	Title    *string `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Content  *string `json:"content,omitempty" binding:"omitempty,min=1"`
	IsResult *bool   `json:"isResult,omitempty"`
}

// AnnouncementResponse is the public projection of an announcement.
type AnnouncementResponse struct {
	ID        int64     `json:"id" example:"12"`
	Title     string    `json:"title" example:"Acme Corp results declared"`
	Content   string    `json:"content"`
	IsResult  bool      `json:"isResult" example:"true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AnnouncementToResponse maps an announcement model.
func AnnouncementToResponse(a *models.Announcement) *AnnouncementResponse {
	if a == nil {
		return nil
	}
	return &AnnouncementResponse{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		IsResult:  a.IsResult,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AnnouncementsToResponses maps a slice of announcement models.
func AnnouncementsToResponses(items []*models.Announcement) []*AnnouncementResponse {
	out := make([]*AnnouncementResponse, 0, len(items))
	for _, a := range items {
		out = append(out, AnnouncementToResponse(a))
	}
	return out
}

// CreateBranchRequest registers a branch code.
type CreateBranchRequest struct {
	BranchCode string `json:"branchCode" binding:"required,min=2,max=10" example:"CSE"`
	BranchName string `json:"branchName" binding:"required,min=2,max=100" example:"Computer Science and Engineering"`
}

// BranchResponse is the public projection of a branch.
type BranchResponse struct {
	ID         int64  `json:"id" example:"1"`
	BranchCode string `json:"branchCode" example:"CSE"`
	BranchName string `json:"branchName" example:"Computer Science and Engineering"`
}

// BranchToResponse maps a branch model.
func BranchToResponse(b *models.Branch) *BranchResponse {
	if b == nil {
		return nil
	}
	return &BranchResponse{ID: b.ID, BranchCode: b.Code, BranchName: b.Name}
}

// BranchesToResponses maps a slice of branch models.
func BranchesToResponses(branches []*models.Branch) []*BranchResponse {
	out := make([]*BranchResponse, 0, len(branches))
	for _, b := range branches {
		out = append(out, BranchToResponse(b))
	}
	return out
}
