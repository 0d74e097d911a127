package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/tealfox/quizforge/internal/config"
	"github.com/tealfox/quizforge/internal/pdf"
	"github.com/tealfox/quizforge/internal/platform/filestore"
	"github.com/tealfox/quizforge/internal/platform/gemini"
	"github.com/tealfox/quizforge/internal/platform/postgres"
	"github.com/tealfox/quizforge/internal/quiz"
	"github.com/tealfox/quizforge/internal/service"
	"github.com/tealfox/quizforge/internal/store"
	"github.com/tealfox/quizforge/internal/summarizer"
)

// application holds the wired components of the server.
type application struct {
	config         *config.Config
	logger         *slog.Logger
	db             *sql.DB // nil when running on the file store
	sessionService service.SessionService
}

// newApplication wires the storage, generation, and service layers. When
// no database URL is configured, sessions persist to JSON files under the
// configured data directory.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var sessions store.SessionStore
	if cfg.Database.URL != "" {
		db, err := setupDatabase(cfg, logger)
		if err != nil {
			return nil, err
		}
		app.db = db

		sessions, err = postgres.NewPostgresSessionStore(db, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create session store: %w", err)
		}
	} else {
		fileSessions, err := filestore.NewSessionStore(cfg.Storage.DataDir, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create file session store: %w", err)
		}
		sessions = fileSessions
		logger.Info("Using file-backed session store",
			slog.String("data_dir", cfg.Storage.DataDir))
	}

	invoker, err := gemini.NewGeminiInvoker(logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation invoker: %w", err)
	}

	docSummarizer, err := summarizer.NewSummarizer(invoker, sessions, logger, cfg.Summarizer)
	if err != nil {
		return nil, fmt.Errorf("failed to create summarizer: %w", err)
	}

	quizGenerator, err := quiz.NewGenerator(invoker, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create quiz generator: %w", err)
	}

	app.sessionService, err = service.NewSessionService(
		sessions,
		pdf.ExtractText,
		docSummarizer,
		quizGenerator,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
