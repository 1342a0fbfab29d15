// Package services holds the application logic between HTTP controllers and
// the persistence layer. Services depend on narrow interfaces so the logic
// can be exercised without a database.
package services

import (
	"context"

	"github.com/pcell/backend/internal/app/models"
)

// UserRepository is the persistence surface services need for users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByEnrolmentNos(ctx context.Context, enrolmentNos []string) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error
	List(ctx context.Context, branch, batch, search string, page, size int) ([]*models.User, int64, error)
	Delete(ctx context.Context, id int64) error
}

// OpeningRepository is the persistence surface for job openings.
type OpeningRepository interface {
	Create(ctx context.Context, opening *models.Opening) error
	FindByID(ctx context.Context, id int64) (*models.Opening, error)
	List(ctx context.Context, batch, offerType, company string, page, size int) ([]*models.Opening, int64, error)
	Update(ctx context.Context, opening *models.Opening) error
	Delete(ctx context.Context, id int64) error
}

// SelectionRepository is the persistence surface for placement results.
type SelectionRepository interface {
	Create(ctx context.Context, selection *models.Selection) error
	FindByStudentID(ctx context.Context, studentID int64) (*models.Selection, error)
	List(ctx context.Context, openingID int64) ([]*models.Selection, error)
	Delete(ctx context.Context, id int64) error
}

// JobInterestRepository is the persistence surface for interest records.
type JobInterestRepository interface {
	Upsert(ctx context.Context, interest *models.JobInterest) error
	FindByUserAndOpening(ctx context.Context, userID, openingID int64) (*models.JobInterest, error)
	CountByOpening(ctx context.Context, openingID int64, isInterested bool) (int64, error)
	CountEligibleInterested(ctx context.Context, openingID int64) (int64, error)
	ListInterestedUsers(ctx context.Context, openingID int64) ([]*models.User, error)
}

// BranchRepository is the persistence surface for the branch catalogue.
type BranchRepository interface {
	Create(ctx context.Context, branch *models.Branch) error
	List(ctx context.Context) ([]*models.Branch, error)
	FindByCode(ctx context.Context, code string) (*models.Branch, error)
	Delete(ctx context.Context, id int64) error
}

// AnnouncementRepository is the persistence surface for announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *models.Announcement) error
	FindByID(ctx context.Context, id int64) (*models.Announcement, error)
	List(ctx context.Context, page, size int) ([]*models.Announcement, int64, error)
	Update(ctx context.Context, a *models.Announcement) error
	Delete(ctx context.Context, id int64) error
}

// TokenRepository is the persistence surface for refresh and reset tokens.
type TokenRepository interface {
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error
	FindRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error)
	DeleteRefreshToken(ctx context.Context, token string) error
	DeleteUserRefreshTokens(ctx context.Context, userID int64) error
	SavePasswordResetToken(ctx context.Context, token *models.PasswordResetToken) error
	FindPasswordResetToken(ctx context.Context, token string) (*models.PasswordResetToken, error)
	MarkPasswordResetTokenUsed(ctx context.Context, id int64) error
}
