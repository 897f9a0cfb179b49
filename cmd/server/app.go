package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/coinwave/coinwave/internal/config"
	"github.com/coinwave/coinwave/internal/domain/activity"
	"github.com/coinwave/coinwave/internal/domain/market"
	"github.com/coinwave/coinwave/internal/domain/project"
	"github.com/coinwave/coinwave/internal/domain/tracking"
	"github.com/coinwave/coinwave/internal/domain/user"
	"github.com/coinwave/coinwave/internal/postgrest"
	"github.com/coinwave/coinwave/internal/sqlite"
)

// app holds the wired services shared by every subcommand.
type app struct {
	db       *sqlite.DB
	projects *project.Service
	tracker  *tracking.Service
	accounts *user.Service
	activity *activity.Service
	market   *market.Service
}

func (a *app) Close() error {
	return a.db.Close()
}

// openApp opens the local database, applies migrations and wires services.
// Projects and tracking rows come from the configured store driver; users,
// sessions and activity always live in the local database.
func openApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (*app, error) {
	if err := ensureDBDir(cfg.DB.Path); err != nil {
		return nil, fmt.Errorf("prepare database path: %w", err)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	applied, err := db.RunMigrations(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	if len(applied) > 0 {
		logger.Info("applied migrations", "migrations", applied)
	}

	var (
		projectRepo  project.Repository
		trackingRepo tracking.Repository
	)
	switch cfg.Store.Driver {
	case config.StorePostgrest:
		client, err := postgrest.NewClient(postgrest.Config{
			BaseURL: cfg.Store.URL,
			APIKey:  cfg.Store.APIKey,
			Timeout: cfg.Store.Timeout,
		}, logger)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("create postgrest client: %w", err)
		}
		projectRepo = postgrest.NewProjectRepository(client)
		trackingRepo = postgrest.NewTrackingRepository(client)
		logger.Info("using remote project store", "url", cfg.Store.URL)
	default:
		projectRepo = sqlite.NewProjectRepository(db)
		trackingRepo = sqlite.NewTrackingRepository(db)
	}

	activitySvc := activity.NewService(sqlite.NewActivityRepository(db), logger)
	projectSvc := project.NewService(projectRepo, logger)
	tokens := user.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)

	return &app{
		db:       db,
		projects: projectSvc,
		tracker:  tracking.NewService(trackingRepo, projectSvc, activitySvc, logger),
		accounts: user.NewService(sqlite.NewUserRepository(db), tokens, activitySvc, logger),
		activity: activitySvc,
		market:   market.NewService(),
	}, nil
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
