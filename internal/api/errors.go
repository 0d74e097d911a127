package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tealfox/quizforge/internal/generation"
	"github.com/tealfox/quizforge/internal/quiz"
	"github.com/tealfox/quizforge/internal/service"
	"github.com/tealfox/quizforge/internal/store"
	"github.com/tealfox/quizforge/internal/summarizer"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, generation.ErrMissingCredential),
		errors.Is(err, service.ErrInvalidUpload),
		errors.Is(err, summarizer.ErrEmptyText),
		errors.Is(err, quiz.ErrEmptySource),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, store.ErrSessionNotFound):
		return http.StatusNotFound

	// Conflict errors: the operation needs a summary that does not exist yet
	case errors.Is(err, service.ErrSummaryNotReady):
		return http.StatusConflict

	// Upstream generation failures
	case errors.Is(err, generation.ErrAPICall):
		return http.StatusBadGateway

	// Persistence failures
	case errors.Is(err, summarizer.ErrPersistSummary):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for err.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, generation.ErrMissingCredential):
		return "A Gemini API key is required"

	case errors.Is(err, service.ErrInvalidUpload):
		return "Invalid upload: a non-empty PDF file is required"

	case errors.Is(err, summarizer.ErrEmptyText):
		return "The document contains no text to summarize"

	case errors.Is(err, quiz.ErrEmptySource):
		return "No source content available for quiz generation"

	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, store.ErrSessionNotFound):
		return "Session not found"

	case errors.Is(err, service.ErrSummaryNotReady):
		return "No summary has been generated for this session yet"

	case errors.Is(err, generation.ErrAPICall):
		return "The generation service failed to produce a result"

	case errors.Is(err, summarizer.ErrPersistSummary):
		return "Failed to save the generated summary"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"
	}

	// Validation errors from request structs carry field context that is
	// safe to expose.
	if strings.Contains(err.Error(), "validation") {
		return "Request validation failed"
	}

	return "An unexpected error occurred"
}
