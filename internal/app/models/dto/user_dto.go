package dto

import (
	"time"

	"github.com/pcell/backend/internal/app/models"
)

// UserResponse is the public projection of a user record.
type UserResponse struct {
	ID            int64     `json:"id" example:"42"`
	Name          string    `json:"name" example:"Asha Rao"`
	Email         string    `json:"email" example:"asha.rao@college.edu"`
	Mobile        string    `json:"mobile,omitempty" example:"9876543210"`
	Gender        string    `json:"gender,omitempty" example:"female"`
	DOB           string    `json:"dob,omitempty" example:"2004-06-18"`
	Branch        string    `json:"branch" example:"CSE"`
	Batch         string    `json:"batch" example:"2026"`
	EnrolmentNo   string    `json:"enrolmentNo" example:"2022BCS0421"`
	CGPA          float64   `json:"cgpa" example:"8.2"`
	IsAdmin       bool      `json:"isAdmin" example:"false"`
	EmailVerified bool      `json:"emailVerified" example:"true"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	ResumeURL     string    `json:"resumeUrl,omitempty"`
	LinkedIn      string    `json:"linkedin,omitempty"`
	GitHub        string    `json:"github,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// UserToResponse maps a user model to its public projection.
func UserToResponse(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Mobile:        u.Mobile,
		Gender:        u.Gender,
		DOB:           u.DOB,
		Branch:        u.Branch,
		Batch:         u.Batch,
		EnrolmentNo:   u.EnrolmentNo,
		CGPA:          u.CGPA,
		IsAdmin:       u.IsAdmin,
		EmailVerified: u.EmailVerified,
		ImageURL:      u.ImageURL,
		ResumeURL:     u.ResumeURL,
		LinkedIn:      u.LinkedIn,
		GitHub:        u.GitHub,
		CreatedAt:     u.CreatedAt,
	}
}

// UsersToResponses maps a slice of user models.
func UsersToResponses(users []*models.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserToResponse(u))
	}
	return out
}

// UpdateProfileRequest is the self-service profile update. CGPA is clamped
// to the [0, 10] scale before persisting.
type UpdateProfileRequest struct {
	Name      *string  `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Mobile    *string  `json:"mobile,omitempty" binding:"omitempty,min=10,max=15"`
	Gender    *string  `json:"gender,omitempty" binding:"omitempty,oneof=male female other"`
	DOB       *string  `json:"dob,omitempty"`
	Branch    *string  `json:"branch,omitempty"`
	Batch     *string  `json:"batch,omitempty"`
	CGPA      *float64 `json:"cgpa,omitempty"`
	ImageURL  *string  `json:"imageUrl,omitempty" binding:"omitempty,url"`
	ResumeURL *string  `json:"resumeUrl,omitempty" binding:"omitempty,url"`
	LinkedIn  *string  `json:"linkedin,omitempty" binding:"omitempty,url"`
	GitHub    *string  `json:"github,omitempty" binding:"omitempty,url"`
}

// UserFilterRequest narrows admin user listings.
type UserFilterRequest struct {
	Branch string `form:"branch"`
	Batch  string `form:"batch"`
	Search string `form:"search"`
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Size   int    `form:"size,default=20" binding:"omitempty,min=1,max=100"`
}
