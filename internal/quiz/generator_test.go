package quiz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tealfox/quizforge/internal/generation"
	"github.com/tealfox/quizforge/internal/mocks"
	"github.com/tealfox/quizforge/internal/quiz"
)

func newTestGenerator(t *testing.T, invoker *mocks.MockInvoker) *quiz.Generator {
	t.Helper()
	g, err := quiz.NewGenerator(invoker, nil)
	require.NoError(t, err)
	return g
}

const validQuizJSON = `{
	"questions": [
		{
			"questionNumber": 7,
			"question": "What powers photosynthesis?",
			"imageUrl": "",
			"answerOptions": [
				{"text": "Sunlight", "rationale": "Light drives the reaction.", "isCorrect": true},
				{"text": "Soil", "rationale": "Soil anchors the plant only.", "isCorrect": false},
				{"text": "Wind", "rationale": "Wind plays no role.", "isCorrect": false},
				{"text": "Gravity", "rationale": "Gravity plays no role.", "isCorrect": false}
			],
			"hint": "Think about energy sources."
		},
		{
			"questionNumber": 2,
			"question": "Where does photosynthesis occur?",
			"imageUrl": "",
			"answerOptions": [
				{"text": "Chloroplasts", "rationale": "They contain chlorophyll.", "isCorrect": true},
				{"text": "Mitochondria", "rationale": "Those handle respiration.", "isCorrect": false},
				{"text": "Nucleus", "rationale": "The nucleus stores DNA.", "isCorrect": false},
				{"text": "Ribosomes", "rationale": "Ribosomes build proteins.", "isCorrect": false}
			],
			"hint": "An organelle."
		}
	]
}`

func TestGenerateSuccess(t *testing.T) {
	t.Parallel()

	invoker := mocks.NewMockInvoker()
	invoker.InvokeFn = func(ctx context.Context, req generation.Request) (string, error) {
		return validQuizJSON, nil
	}
	g := newTestGenerator(t, invoker)

	result, err := g.Generate(context.Background(), "Photosynthesis converts light into energy.", 2, "medium", "key-123")

	require.NoError(t, err)
	require.Len(t, result.Questions, 2)

	// Model-provided numbers (7, 2) are overwritten with the sequence.
	assert.Equal(t, 1, result.Questions[0].QuestionNumber)
	assert.Equal(t, 2, result.Questions[1].QuestionNumber)
	assert.Equal(t, "What powers photosynthesis?", result.Questions[0].Question)
	assert.Len(t, result.Questions[0].AnswerOptions, 4)
}

func TestGenerateRequestShape(t *testing.T) {
	t.Parallel()

	invoker := mocks.NewMockInvoker()
	invoker.InvokeFn = func(ctx context.Context, req generation.Request) (string, error) {
		return `{"questions": []}`, nil
	}
	g := newTestGenerator(t, invoker)

	_, err := g.Generate(context.Background(), "Some source content.", 5, "hard", "key-123")
	require.NoError(t, err)

	reqs := invoker.Requests()
	require.Len(t, reqs, 1)
	req := reqs[0]

	assert.Contains(t, req.SystemPrompt, "exactly **5** multiple-choice questions")
	assert.Contains(t, req.SystemPrompt, "must be **hard**")
	assert.Equal(t, "Generate a quiz based on the following text:\n\n---\n\nSome source content.", req.UserQuery)
	assert.Equal(t, "key-123", req.Credential)
	assert.False(t, req.EnableSearch, "quiz calls must not request search grounding")

	require.NotNil(t, req.Schema)
	assert.Equal(t, generation.TypeObject, req.Schema.Type)
	questions := req.Schema.Properties["questions"]
	require.NotNil(t, questions)
	assert.Equal(t, generation.TypeArray, questions.Type)
	assert.Equal(t,
		[]string{"questionNumber", "question", "imageUrl", "answerOptions", "hint"},
		questions.Items.PropertyOrdering)
}

func TestGenerateMalformedOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "not JSON", raw: "Sorry, I cannot do that."},
		{name: "truncated JSON", raw: `{"questions": [{"question": "Wh`},
		{name: "JSON array", raw: `[1, 2, 3]`},
		{name: "object without questions", raw: `{"title": "Quiz"}`},
		{name: "null questions", raw: `{"questions": null}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			invoker := mocks.NewMockInvoker()
			invoker.InvokeFn = func(ctx context.Context, req generation.Request) (string, error) {
				return tc.raw, nil
			}
			g := newTestGenerator(t, invoker)

			result, err := g.Generate(context.Background(), "Some source content.", 3, "easy", "key-123")

			require.NoError(t, err, "malformed output must degrade, not fail")
			require.NotNil(t, result)
			assert.NotNil(t, result.Questions)
			assert.Empty(t, result.Questions)
		})
	}
}

func TestGenerateEmptySource(t *testing.T) {
	t.Parallel()

	invoker := mocks.NewMockInvoker()
	g := newTestGenerator(t, invoker)

	_, err := g.Generate(context.Background(), "  \n\t ", 5, "medium", "key-123")

	assert.ErrorIs(t, err, quiz.ErrEmptySource)
	assert.Equal(t, 0, invoker.CallCount())
}

func TestGenerateMissingCredential(t *testing.T) {
	t.Parallel()

	invoker := mocks.NewMockInvoker()
	g := newTestGenerator(t, invoker)

	_, err := g.Generate(context.Background(), "Some source content.", 5, "medium", "")

	assert.ErrorIs(t, err, generation.ErrMissingCredential)
	assert.Equal(t, 0, invoker.CallCount())
}

func TestGenerateInvokerFailure(t *testing.T) {
	t.Parallel()

	apiErr := errors.New("upstream unavailable")
	invoker := mocks.NewMockInvoker()
	invoker.InvokeFn = func(ctx context.Context, req generation.Request) (string, error) {
		return "", apiErr
	}
	g := newTestGenerator(t, invoker)

	_, err := g.Generate(context.Background(), "Some source content.", 5, "medium", "key-123")

	assert.ErrorIs(t, err, apiErr)
}
