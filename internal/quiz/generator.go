package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tealfox/quizforge/internal/domain"
	"github.com/tealfox/quizforge/internal/generation"
)

// ErrEmptySource is returned when quiz generation is requested with no
// source content.
var ErrEmptySource = errors.New("source content for quiz generation is empty")

// Generator produces structured quizzes through a generation.Invoker.
type Generator struct {
	invoker generation.Invoker
	logger  *slog.Logger
}

// NewGenerator creates a Generator. A nil logger falls back to slog.Default().
func NewGenerator(invoker generation.Invoker, logger *slog.Logger) (*Generator, error) {
	if invoker == nil {
		return nil, errors.New("invoker cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		invoker: invoker,
		logger:  logger.With("component", "quiz_generator"),
	}, nil
}

// Generate builds a quiz of numQuestions multiple-choice questions at the
// given difficulty from sourceContent. The model's output is constrained
// by the quiz response schema; output that still fails to decode yields an
// empty quiz rather than an error. Question numbers in the result are
// always sequential starting at 1.
func (g *Generator) Generate(ctx context.Context, sourceContent string, numQuestions int, difficulty, credential string) (*domain.Quiz, error) {
	if strings.TrimSpace(sourceContent) == "" {
		return nil, ErrEmptySource
	}
	if credential == "" {
		return nil, generation.ErrMissingCredential
	}

	g.logger.InfoContext(ctx, "generating quiz",
		slog.Int("num_questions", numQuestions),
		slog.String("difficulty", difficulty))

	raw, err := g.invoker.Invoke(ctx, generation.Request{
		SystemPrompt: systemPrompt(numQuestions, difficulty),
		UserQuery:    "Generate a quiz based on the following text:\n\n---\n\n" + sourceContent,
		Credential:   credential,
		Schema:       responseSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("quiz generation call failed: %w", err)
	}

	result := g.decode(ctx, raw)
	result.Renumber()
	return result, nil
}

// decode parses the model output into a quiz. Non-JSON output and JSON of
// the wrong shape both degrade to an empty quiz, never an error.
func (g *Generator) decode(ctx context.Context, raw string) *domain.Quiz {
	var out domain.Quiz
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &out); err != nil {
		g.logger.WarnContext(ctx, "model returned malformed quiz JSON",
			slog.String("error", err.Error()))
		return &domain.Quiz{Questions: []domain.Question{}}
	}
	if out.Questions == nil {
		out.Questions = []domain.Question{}
	}
	return &out
}

func systemPrompt(numQuestions int, difficulty string) string {
	return fmt.Sprintf(
		"You are a test generator. Your task is to create exactly **%d** multiple-choice questions (MCQs) "+
			"with 4 options each, based *only* on the content provided by the user. "+
			"The difficulty level for these questions must be **%s**. "+
			"Ensure the questions cover key facts, concepts, and conclusions from the text. "+
			"For each question, provide a detailed rationale for every option and set exactly one option as correct. "+
			"The questions should test comprehension and critical thinking, not just simple recall. "+
			"Set the 'imageUrl' property to an empty string. The output MUST strictly follow the provided JSON schema.",
		numQuestions, difficulty)
}
