// Placement cell backend API.
//
// @title Placement Cell API
// @version 1.0
// @description Backend for the campus placement portal: openings, eligibility, interest tracking, selections and announcements.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"

	_ "github.com/pcell/backend/docs"
	"github.com/pcell/backend/internal/bootstrap"
	"github.com/pcell/backend/internal/pkg/logger"
	"github.com/pcell/backend/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the config file")
	flag.Parse()

	// Local development reads secrets from .env; absence is not an error.
	_ = godotenv.Load()

	cfg, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := bootstrap.SetupDatabase(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to set up database")
		os.Exit(1)
	}
	defer pool.Close()

	deps := bootstrap.BuildDependencies(cfg, pool)
	router := bootstrap.SetupRouter(cfg, deps)

	if err := server.Run(&cfg.Server, router); err != nil {
		logger.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}
