package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tealfox/quizforge/internal/generation"
)

func TestClassifyErrorTransport(t *testing.T) {
	t.Parallel()

	// A transport failure without an HTTP status is transient while the
	// caller's context is still live.
	out, err := classifyError(context.Background(), errors.New("connection refused"))
	assert.Equal(t, outcomeTransient, out)
	assert.ErrorIs(t, err, generation.ErrAPICall)
}

func TestClassifyErrorCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := classifyError(ctx, errors.New("request aborted"))
	assert.Equal(t, outcomePermanent, out, "a dead context ends the call")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "success", outcomeSuccess.String())
	assert.Equal(t, "transient", outcomeTransient.String())
	assert.Equal(t, "permanent", outcomePermanent.String())
}
