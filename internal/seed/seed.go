// Package seed provisions the records the portal needs on first boot: the
// admin account and the default branch catalogue.
package seed

import (
	"context"
	"errors"

	"github.com/pcell/backend/internal/app/models"
	"github.com/pcell/backend/internal/app/repositories"
	"github.com/pcell/backend/internal/config"
	"github.com/pcell/backend/internal/pkg/apperrors"
	"github.com/pcell/backend/internal/pkg/auth"
	"github.com/pcell/backend/internal/pkg/logger"
)

var defaultBranches = []models.Branch{
	{Code: "CSE", Name: "Computer Science and Engineering"},
	{Code: "ECE", Name: "Electronics and Communication Engineering"},
	{Code: "EE", Name: "Electrical Engineering"},
	{Code: "ME", Name: "Mechanical Engineering"},
	{Code: "CE", Name: "Civil Engineering"},
}

// Run inserts the admin account and default branches when missing.
func Run(ctx context.Context, repos *repositories.Repositories, cfg *config.AppConfig) error {
	if err := seedAdmin(ctx, repos, cfg); err != nil {
		return err
	}
	return seedBranches(ctx, repos)
}

func seedAdmin(ctx context.Context, repos *repositories.Repositories, cfg *config.AppConfig) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logger.Warn().Msg("Admin credentials not configured, skipping admin seed")
		return nil
	}

	_, err := repos.Users.FindByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	hashed, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:          "Placement Cell Admin",
		Email:         cfg.AdminEmail,
		Password:      hashed,
		EnrolmentNo:   "ADMIN",
		IsAdmin:       true,
		EmailVerified: true,
	}
	if err := repos.Users.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info().Str("email", cfg.AdminEmail).Msg("Admin account seeded")
	return nil
}

func seedBranches(ctx context.Context, repos *repositories.Repositories) error {
	for _, b := range defaultBranches {
		branch := b
		err := repos.Branches.Create(ctx, &branch)
		if err != nil && !errors.Is(err, apperrors.ErrBranchAlreadyExists) {
			return err
		}
	}
	return nil
}
