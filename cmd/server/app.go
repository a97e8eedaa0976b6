package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/til-api/internal/config"
	"github.com/phrazzld/til-api/internal/platform/postgres"
	"github.com/phrazzld/til-api/internal/service"
	"github.com/phrazzld/til-api/internal/store"
)

// application holds the shared dependencies of the server and owns their cleanup.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	acronymStore store.AcronymStore
	userStore    store.UserStore

	acronymService service.AcronymService
	userService    service.UserService
}

// newApplication wires stores and services on top of an established database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.acronymStore = postgres.NewPostgresAcronymStore(db, logger)
	app.userStore = postgres.NewPostgresUserStore(db, logger)

	var err error
	app.acronymService, err = service.NewAcronymService(app.acronymStore, app.userStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create acronym service: %w", err)
	}

	app.userService, err = service.NewUserService(
		app.userStore,
		app.acronymStore,
		cfg.Auth.BcryptCost,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is cancelled or the process receives SIGINT/SIGTERM.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
