package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tealfox/quizforge/internal/api/shared"
	"github.com/tealfox/quizforge/internal/service"
)

// SessionHandler handles the upload, summarize, and quiz endpoints.
type SessionHandler struct {
	sessionService service.SessionService
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewSessionHandler creates a SessionHandler. A nil logger falls back to
// slog.Default().
func NewSessionHandler(sessionService service.SessionService, maxUploadBytes int64, logger *slog.Logger) (*SessionHandler, error) {
	if sessionService == nil {
		return nil, errors.New("sessionService cannot be nil")
	}
	if maxUploadBytes <= 0 {
		return nil, errors.New("maxUploadBytes must be positive")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionHandler{
		sessionService: sessionService,
		maxUploadBytes: maxUploadBytes,
		logger:         logger.With("component", "session_handler"),
	}, nil
}

// Upload handles POST /api/uploads. It expects a multipart form with a
// "file" field holding a PDF document.
func (h *SessionHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		if isBodyTooLarge(err) {
			shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge,
				"Uploaded file exceeds the size limit", err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			"Invalid multipart form", err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			"Missing file field in upload", err)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			h.logger.Warn("failed to close uploaded file", slog.String("error", err.Error()))
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		if isBodyTooLarge(err) {
			shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge,
				"Uploaded file exceeds the size limit", err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to read uploaded file", err)
		return
	}

	session, err := h.sessionService.CreateFromUpload(r.Context(), header.Filename, data)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, UploadResponse{
		SessionID:   session.ID.String(),
		SourceName:  session.SourceName,
		SourceChars: len(session.SourceText),
		Status:      string(session.Status),
	})
}

// Summarize handles POST /api/sessions/{id}/summarize.
func (h *SessionHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionIDFromURL(w, r)
	if !ok {
		return
	}

	var req SummarizeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			"Validation failed: api_key is required", err)
		return
	}

	summary, err := h.sessionService.Summarize(r.Context(), sessionID, req.APIKey)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SummaryResponse{
		SessionID: sessionID.String(),
		Summary:   summary,
	})
}

// GetSummary handles GET /api/sessions/{id}/summary.
func (h *SessionHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionIDFromURL(w, r)
	if !ok {
		return
	}

	summary, err := h.sessionService.GetSummary(r.Context(), sessionID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SummaryResponse{
		SessionID: sessionID.String(),
		Summary:   summary,
	})
}

// GenerateQuiz handles POST /api/sessions/{id}/quiz.
func (h *SessionHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionIDFromURL(w, r)
	if !ok {
		return
	}

	req := QuizRequest{}
	if r.ContentLength != 0 {
		if err := shared.DecodeJSON(r, &req); err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
			return
		}
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			"Validation failed: num_questions must be 1-20 and difficulty one of easy, medium, hard", err)
		return
	}
	if req.NumQuestions == 0 {
		req.NumQuestions = DefaultNumQuestions
	}
	if req.Difficulty == "" {
		req.Difficulty = DefaultDifficulty
	}

	result, err := h.sessionService.GenerateQuiz(r.Context(), sessionID, req.NumQuestions, req.Difficulty)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, QuizResponse{
		SessionID: sessionID.String(),
		Questions: result.Questions,
	})
}

// sessionIDFromURL parses the {id} URL parameter. On failure it writes a
// 400 response and returns false.
func (h *SessionHandler) sessionIDFromURL(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	sessionID, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid session ID", err)
		return uuid.Nil, false
	}
	return sessionID, true
}

func isBodyTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}
