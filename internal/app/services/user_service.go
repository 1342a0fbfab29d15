package services

import (
	"context"
	"strings"

	"github.com/pcell/backend/internal/app/models"
	"github.com/pcell/backend/internal/app/models/dto"
	"github.com/pcell/backend/internal/pkg/logger"
)

// UserService handles profile reads and updates plus admin user listings.
type UserService struct {
	users UserRepository
}

func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.UserToResponse(user), nil
}

// UpdateProfile applies the non-nil fields of req to the user's profile.
// Strings are trimmed and CGPA is clamped to the [0, 10] scale before
// anything is stored.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Mobile != nil {
		user.Mobile = strings.TrimSpace(*req.Mobile)
	}
	if req.Gender != nil {
		user.Gender = strings.TrimSpace(*req.Gender)
	}
	if req.DOB != nil {
		user.DOB = strings.TrimSpace(*req.DOB)
	}
	if req.Branch != nil {
		user.Branch = strings.TrimSpace(*req.Branch)
	}
	if req.Batch != nil {
		user.Batch = strings.TrimSpace(*req.Batch)
	}
	if req.CGPA != nil {
		user.CGPA = models.ClampCGPA(*req.CGPA)
	}
	if req.ImageURL != nil {
		user.ImageURL = strings.TrimSpace(*req.ImageURL)
	}
	if req.ResumeURL != nil {
		user.ResumeURL = strings.TrimSpace(*req.ResumeURL)
	}
	if req.LinkedIn != nil {
		user.LinkedIn = strings.TrimSpace(*req.LinkedIn)
	}
	if req.GitHub != nil {
		user.GitHub = strings.TrimSpace(*req.GitHub)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	logger.Debug().Int64("userId", user.ID).Msg("Profile updated")
	return dto.UserToResponse(user), nil
}

// List returns a filtered page of users for the admin console.
func (s *UserService) List(ctx context.Context, filter dto.UserFilterRequest) (*dto.PaginatedResponse, error) {
	users, total, err := s.users.List(ctx, filter.Branch, filter.Batch, filter.Search, filter.Page, filter.Size)
	if err != nil {
		return nil, err
	}
	resp := dto.NewPaginatedResponse(dto.UsersToResponses(users), filter.Page, filter.Size, total)
	return &resp, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("userId", id).Msg("User deleted")
	return nil
}
