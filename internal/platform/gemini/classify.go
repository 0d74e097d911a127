package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/tealfox/quizforge/internal/generation"
)

// outcome classifies the result of a single call attempt. The retry
// state machine transitions on these values, never on raw error types.
type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeTransient
	outcomePermanent
)

// String returns the outcome name for logging.
func (o outcome) String() string {
	switch o {
	case outcomeSuccess:
		return "success"
	case outcomeTransient:
		return "transient"
	case outcomePermanent:
		return "permanent"
	default:
		return "unknown"
	}
}

// classifyError maps a call error to an outcome and a classified error.
// Rate limiting (429) and server-side failures (5xx) are transient; any
// other HTTP status is permanent. Transport errors without a status are
// treated as transient unless the context is already done.
func classifyError(ctx context.Context, err error) (outcome, error) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		classified := &generation.APICallError{
			StatusCode: apiErr.Code,
			Body:       apiErr.Message,
			Err:        err,
		}
		if apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError {
			return outcomeTransient, classified
		}
		return outcomePermanent, classified
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return outcomePermanent, &generation.APICallError{Err: ctxErr}
	}

	return outcomeTransient, &generation.APICallError{Err: err}
}

// classifyResponse inspects a successful transport response and either
// extracts the text payload or reports a permanent failure for an empty
// or blocked envelope.
func classifyResponse(resp *genai.GenerateContentResponse) (string, outcome, error) {
	if resp == nil {
		return "", outcomePermanent, &generation.APICallError{Body: "nil response"}
	}

	if len(resp.Candidates) == 0 {
		return "", outcomePermanent, &generation.APICallError{Body: blockReason(resp)}
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", outcomePermanent, &generation.APICallError{
			Body: "content blocked by safety filters",
		}
	}

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", outcomePermanent, &generation.APICallError{Body: "empty content in response"}
	}

	text := ""
	for _, part := range candidate.Content.Parts {
		if part != nil {
			text += part.Text
		}
	}
	if text == "" {
		return "", outcomePermanent, &generation.APICallError{Body: "no text parts in response"}
	}

	return text, outcomeSuccess, nil
}

// blockReason extracts the prompt feedback attached to an empty
// response envelope, for diagnostics.
func blockReason(resp *genai.GenerateContentResponse) string {
	fb := resp.PromptFeedback
	if fb == nil {
		return "no candidates in response"
	}
	if fb.BlockReasonMessage != "" {
		return fmt.Sprintf("blocked: %s (%s)", fb.BlockReasonMessage, fb.BlockReason)
	}
	return fmt.Sprintf("blocked: %s", fb.BlockReason)
}
