package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tealfox/quizforge/internal/api"
	apiMiddleware "github.com/tealfox/quizforge/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	sessionHandler, err := api.NewSessionHandler(
		app.sessionService,
		app.config.Upload.MaxBytes,
		app.logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session handler: %w", err)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/uploads", sessionHandler.Upload)

		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Post("/summarize", sessionHandler.Summarize)
			r.Get("/summary", sessionHandler.GetSummary)
			r.Post("/quiz", sessionHandler.GenerateQuiz)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r, nil
}
