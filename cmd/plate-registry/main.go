package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"plate-registry/internal/auth"
	"plate-registry/internal/config"
	"plate-registry/internal/db"
	httphandler "plate-registry/internal/http"
	"plate-registry/internal/http/middleware"
	"plate-registry/internal/logger"
	"plate-registry/internal/metrics"
	"plate-registry/internal/repository"
	"plate-registry/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	var plateRepo repository.PlateRepository
	switch cfg.Repository.Driver {
	case config.RepositoryDriverMemory:
		appLogger.Warn().Msg("using in-memory plate repository, registrations are lost on restart")
		plateRepo = repository.NewMemoryPlateRepository()
	default:
		database, err := db.New(cfg, appLogger)
		if err != nil {
			appLogger.Fatal().Err(err).Msg("failed to connect database")
		}
		plateRepo = repository.NewGormPlateRepository(database)
	}

	registrationService, err := service.NewRegistrationService(
		plateRepo,
		service.WithMetrics(metrics.New(prometheus.DefaultRegisterer)),
	)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to build registration service")
	}

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(registrationService, appLogger)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, prometheus.DefaultGatherer, appLogger, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Str("repository", cfg.Repository.Driver).Msg("starting plate registry")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
