package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/tealfox/quizforge/internal/domain"
	"github.com/tealfox/quizforge/internal/pdf"
	"github.com/tealfox/quizforge/internal/store"
)

// TextExtractor converts an uploaded document's bytes to plain text.
// pdf.ExtractText is the production implementation.
type TextExtractor func(data []byte) (string, error)

// DocumentSummarizer runs the summarization pipeline for a session and
// persists the result to the session's summary slot.
type DocumentSummarizer interface {
	Summarize(ctx context.Context, sessionID uuid.UUID, sourceText, credential string) (string, error)
}

// QuizGenerator produces a structured quiz from source content.
type QuizGenerator interface {
	Generate(ctx context.Context, sourceContent string, numQuestions int, difficulty, credential string) (*domain.Quiz, error)
}

// SessionService provides the upload, summarize, and quiz operations.
type SessionService interface {
	// CreateFromUpload extracts text from an uploaded PDF and creates a
	// new session holding it.
	CreateFromUpload(ctx context.Context, filename string, data []byte) (*domain.Session, error)

	// Summarize runs the summarization pipeline for a session using the
	// caller's API credential, which is retained on the session for the
	// quiz stage.
	Summarize(ctx context.Context, sessionID uuid.UUID, credential string) (string, error)

	// GetSummary returns the persisted summary for a session.
	GetSummary(ctx context.Context, sessionID uuid.UUID) (string, error)

	// GenerateQuiz builds a quiz from the session's persisted summary
	// using the credential retained at summarize time.
	GenerateQuiz(ctx context.Context, sessionID uuid.UUID, numQuestions int, difficulty string) (*domain.Quiz, error)
}

type sessionServiceImpl struct {
	sessions   store.SessionStore
	extract    TextExtractor
	summarizer DocumentSummarizer
	quizzes    QuizGenerator
	logger     *slog.Logger
}

// NewSessionService creates a SessionService with its required
// dependencies. A nil logger falls back to slog.Default().
func NewSessionService(
	sessions store.SessionStore,
	extract TextExtractor,
	summarizer DocumentSummarizer,
	quizzes QuizGenerator,
	logger *slog.Logger,
) (SessionService, error) {
	if sessions == nil {
		return nil, &SessionServiceError{
			Operation: "create_service",
			Message:   "sessions cannot be nil",
		}
	}
	if extract == nil {
		return nil, &SessionServiceError{
			Operation: "create_service",
			Message:   "extract cannot be nil",
		}
	}
	if summarizer == nil {
		return nil, &SessionServiceError{
			Operation: "create_service",
			Message:   "summarizer cannot be nil",
		}
	}
	if quizzes == nil {
		return nil, &SessionServiceError{
			Operation: "create_service",
			Message:   "quizzes cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &sessionServiceImpl{
		sessions:   sessions,
		extract:    extract,
		summarizer: summarizer,
		quizzes:    quizzes,
		logger:     logger.With("component", "session_service"),
	}, nil
}

func (s *sessionServiceImpl) CreateFromUpload(ctx context.Context, filename string, data []byte) (*domain.Session, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return nil, fmt.Errorf("%w: only .pdf files are accepted", ErrInvalidUpload)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: uploaded file is empty", ErrInvalidUpload)
	}

	text, err := s.extract(data)
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPDF) || errors.Is(err, pdf.ErrNoText) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidUpload, err)
		}
		return nil, NewSessionServiceError("create_session", "failed to extract text", err)
	}

	session, err := domain.NewSession(filename, text)
	if err != nil {
		return nil, NewSessionServiceError("create_session", "failed to create session", err)
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, NewSessionServiceError("create_session", "failed to save session", err)
	}

	s.logger.InfoContext(ctx, "session created from upload",
		slog.String("session_id", session.ID.String()),
		slog.String("source_name", filename),
		slog.Int("source_chars", len(text)))
	return session, nil
}

func (s *sessionServiceImpl) Summarize(ctx context.Context, sessionID uuid.UUID, credential string) (string, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return "", NewSessionServiceError("summarize", "failed to load session", err)
	}

	// Retain the credential before the pipeline runs so the quiz stage
	// can reuse it without the caller resubmitting the key.
	session.SetCredential(credential)
	if err := s.sessions.Update(ctx, session); err != nil {
		return "", NewSessionServiceError("summarize", "failed to save credential", err)
	}

	summary, err := s.summarizer.Summarize(ctx, session.ID, session.SourceText, credential)
	if err != nil {
		return "", NewSessionServiceError("summarize", "summarization pipeline failed", err)
	}
	return summary, nil
}

func (s *sessionServiceImpl) GetSummary(ctx context.Context, sessionID uuid.UUID) (string, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return "", NewSessionServiceError("get_summary", "failed to load session", err)
	}
	if session.Summary == "" {
		return "", ErrSummaryNotReady
	}
	return session.Summary, nil
}

func (s *sessionServiceImpl) GenerateQuiz(ctx context.Context, sessionID uuid.UUID, numQuestions int, difficulty string) (*domain.Quiz, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, NewSessionServiceError("generate_quiz", "failed to load session", err)
	}
	if session.Summary == "" {
		return nil, ErrSummaryNotReady
	}

	result, err := s.quizzes.Generate(ctx, session.Summary, numQuestions, difficulty, session.Credential)
	if err != nil {
		return nil, NewSessionServiceError("generate_quiz", "quiz generation failed", err)
	}

	s.logger.InfoContext(ctx, "quiz generated",
		slog.String("session_id", session.ID.String()),
		slog.Int("question_count", len(result.Questions)))
	return result, nil
}
