// Package bootstrap wires configuration, infrastructure and the dependency
// graph into a runnable application.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pcell/backend/internal/app/controllers"
	"github.com/pcell/backend/internal/app/repositories"
	"github.com/pcell/backend/internal/app/routes"
	"github.com/pcell/backend/internal/app/services"
	"github.com/pcell/backend/internal/config"
	"github.com/pcell/backend/internal/db"
	"github.com/pcell/backend/internal/middleware"
	"github.com/pcell/backend/internal/pkg/auth"
	"github.com/pcell/backend/internal/pkg/email"
	"github.com/pcell/backend/internal/pkg/logger"
	"github.com/pcell/backend/internal/pkg/otp"
	"github.com/pcell/backend/internal/seed"
)

// LoadConfigAndSetupLogger reads configuration and configures the global
// logger from it.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Pretty,
	})
	return cfg, nil
}

// SetupDatabase connects the pool, runs migrations and seeds baseline data.
func SetupDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := db.Connect(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	repos := repositories.New(pool)
	if err := seed.Run(ctx, repos, &cfg.App); err != nil {
		pool.Close()
		return nil, fmt.Errorf("seeding database: %w", err)
	}

	// Stale refresh and reset tokens accumulate between restarts.
	if err := repos.Tokens.DeleteExpiredTokens(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to clean up expired tokens")
	}
	return pool, nil
}

// Dependencies is the assembled application graph.
type Dependencies struct {
	JWTService  *auth.JWTService
	Controllers routes.Controllers
}

// BuildDependencies constructs repositories, services and controllers.
func BuildDependencies(cfg *config.Config, pool *pgxpool.Pool) *Dependencies {
	repos := repositories.New(pool)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  cfg.JWT.AccessTokenExp.Std(),
		RefreshTokenExp: cfg.JWT.RefreshTokenExp.Std(),
		VerificationExp: cfg.JWT.VerificationExp.Std(),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	otpStore := otp.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	emailService := email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    true,
	}, logger.Get())

	authService := services.NewAuthService(repos.Users, repos.Tokens, otpStore, emailService, jwtService, cfg.App.FrontendURL)
	userService := services.NewUserService(repos.Users)
	openingService := services.NewOpeningService(repos.Openings)
	interestService := services.NewJobInterestService(repos.Users, repos.Openings, repos.Selections, repos.JobInterests)
	selectionService := services.NewSelectionService(repos.Selections, repos.Users, repos.Openings, repos.JobInterests)
	announcementService := services.NewAnnouncementService(repos.Announcements)
	branchService := services.NewBranchService(repos.Branches)

	return &Dependencies{
		JWTService: jwtService,
		Controllers: routes.Controllers{
			Auth:         controllers.NewAuthController(authService),
			User:         controllers.NewUserController(userService),
			Opening:      controllers.NewOpeningController(openingService),
			JobInterest:  controllers.NewJobInterestController(interestService),
			Selection:    controllers.NewSelectionController(selectionService),
			Announcement: controllers.NewAnnouncementController(announcementService),
			Branch:       controllers.NewBranchController(branchService),
		},
	}
}

// SetupRouter builds the gin engine with middleware and routes mounted.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	routes.Setup(router, deps.Controllers, deps.JWTService)
	return router
}
