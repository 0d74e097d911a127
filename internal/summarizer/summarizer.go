package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/tealfox/quizforge/internal/chunk"
	"github.com/tealfox/quizforge/internal/config"
	"github.com/tealfox/quizforge/internal/generation"
)

const (
	segmentSystemPrompt = "You are a segment summarizer. Read the following text chunk from a large document. " +
		"Generate a detailed, stand-alone summary for this chunk, retaining all key concepts. " +
		"The summary must be precise and objective. Do not introduce yourself."

	finalSystemPrompt = "You are an expert academic assistant. Analyze the provided text from the document " +
		"and generate a comprehensive, clear, and professional summary suitable for study or analysis. " +
		"The summary must be approximately 300 words and focus on key arguments, findings, and conclusions. " +
		"Format the summary as continuous, readable paragraphs."

	// segmentSeparator joins segment summaries before the final call.
	segmentSeparator = "\n\n---\n\n"
)

// SummarySlot persists a generated summary for a session. It is the only
// storage capability the summarizer needs; store.SessionStore satisfies it.
type SummarySlot interface {
	UpdateSummary(ctx context.Context, id uuid.UUID, summary string) error
}

// Summarizer produces and persists document summaries through a
// generation.Invoker.
type Summarizer struct {
	invoker generation.Invoker
	slot    SummarySlot
	logger  *slog.Logger
	cfg     config.SummarizerConfig
}

// NewSummarizer creates a Summarizer with its required dependencies.
// A nil logger falls back to slog.Default().
func NewSummarizer(invoker generation.Invoker, slot SummarySlot, logger *slog.Logger, cfg config.SummarizerConfig) (*Summarizer, error) {
	if invoker == nil {
		return nil, errors.New("invoker cannot be nil")
	}
	if slot == nil {
		return nil, errors.New("slot cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{
		invoker: invoker,
		slot:    slot,
		logger:  logger.With("component", "summarizer"),
		cfg:     cfg,
	}, nil
}

// Summarize generates a final summary of sourceText, persists it to the
// session's summary slot, and returns it. Texts longer than the configured
// chunk size go through the segment stage first; shorter texts feed the
// final call directly.
func (s *Summarizer) Summarize(ctx context.Context, sessionID uuid.UUID, sourceText, credential string) (string, error) {
	if credential == "" {
		return "", generation.ErrMissingCredential
	}
	if strings.TrimSpace(sourceText) == "" {
		return "", ErrEmptyText
	}

	log := s.logger.With(slog.String("session_id", sessionID.String()))

	finalInput := sourceText
	if len(sourceText) > s.cfg.ChunkSize {
		log.InfoContext(ctx, "document requires two-stage summarization",
			slog.Int("source_chars", len(sourceText)))

		combined, err := s.summarizeSegments(ctx, log, sourceText, credential)
		if err != nil {
			return "", err
		}
		finalInput = combined
	}

	summary, err := s.invoker.Invoke(ctx, generation.Request{
		SystemPrompt: finalSystemPrompt,
		UserQuery:    finalInput,
		Credential:   credential,
		EnableSearch: true,
	})
	if err != nil {
		return "", fmt.Errorf("final summary call failed: %w", err)
	}

	if err := s.slot.UpdateSummary(ctx, sessionID, summary); err != nil {
		log.ErrorContext(ctx, "failed to persist summary", slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: %w", ErrPersistSummary, err)
	}

	log.InfoContext(ctx, "summary generated and persisted",
		slog.Int("summary_chars", len(summary)))
	return summary, nil
}

// summarizeSegments runs the segment stage: split the source into
// overlapping chunks, summarize each sequentially, and join the results.
func (s *Summarizer) summarizeSegments(ctx context.Context, log *slog.Logger, sourceText, credential string) (string, error) {
	chunks, err := chunk.Split(sourceText, s.cfg.ChunkSize, s.cfg.ChunkOverlap)
	if err != nil {
		return "", fmt.Errorf("failed to split source text: %w", err)
	}

	segmentSummaries := make([]string, 0, len(chunks))
	for i, c := range chunks {
		log.InfoContext(ctx, "summarizing segment",
			slog.Int("segment", i+1),
			slog.Int("total", len(chunks)))

		summary, err := s.invoker.Invoke(ctx, generation.Request{
			SystemPrompt: segmentSystemPrompt,
			UserQuery:    "Summarize this segment:" + segmentSeparator + c.Content,
			Credential:   credential,
			EnableSearch: true,
		})
		if err != nil {
			return "", fmt.Errorf("segment %d summary call failed: %w", i+1, err)
		}
		segmentSummaries = append(segmentSummaries, summary)
	}

	return strings.Join(segmentSummaries, segmentSeparator), nil
}
