package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/quillstudy/quill-api/internal/config"
	"github.com/quillstudy/quill-api/internal/platform/memory"
	"github.com/quillstudy/quill-api/internal/platform/postgres"
	"github.com/quillstudy/quill-api/internal/service/identity"
	"github.com/quillstudy/quill-api/internal/service/study"
	"github.com/quillstudy/quill-api/internal/store"
)

// application holds the shared dependencies of the server.
type application struct {
	config       *config.Config
	logger       *slog.Logger
	db           *sql.DB // nil when the memory driver is selected
	kv           store.KV
	studyService *study.Service
	verifier     identity.Verifier
}

// newApplication wires the store backend, the study service, and the token
// verifier from the loaded configuration.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	switch cfg.Database.Driver {
	case config.DriverMemory:
		app.kv = memory.NewStore()
		logger.Info("Using in-memory store; records will not survive a restart")
	case config.DriverPostgres:
		db, err := setupDatabase(cfg, logger)
		if err != nil {
			return nil, err
		}
		app.db = db
		app.kv = postgres.NewStore(db, logger)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Database.Driver)
	}

	verifier, err := identity.NewVerifier(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token verifier: %w", err)
	}
	app.verifier = verifier

	app.studyService = study.NewService(app.kv, logger)

	return app, nil
}

// cleanup releases resources held by the application. Safe to call more than
// once.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
		app.db = nil
	}
}
