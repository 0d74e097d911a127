package gemini

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/genai"

	"github.com/tealfox/quizforge/internal/config"
	"github.com/tealfox/quizforge/internal/generation"
)

// invokeState enumerates the states of the retry state machine.
type invokeState int

const (
	stateAttempting invokeState = iota
	stateBackoff
	stateSucceeded
	stateFailed
)

// GeminiInvoker implements the generation.Invoker interface using
// Google's Gemini API. A fresh API client is built for every call from
// the caller-supplied credential; nothing credential-bearing outlives
// the call.
type GeminiInvoker struct {
	logger *slog.Logger
	cfg    config.LLMConfig

	// httpClient and baseURL override the SDK's transport; tests point
	// them at a local server.
	httpClient *http.Client
	baseURL    string

	// sleep waits out a backoff delay, honoring context cancellation.
	sleep func(ctx context.Context, d time.Duration) error
}

// Ensure GeminiInvoker implements generation.Invoker.
var _ generation.Invoker = (*GeminiInvoker)(nil)

// NewGeminiInvoker creates a GeminiInvoker with the provided dependencies.
func NewGeminiInvoker(logger *slog.Logger, cfg config.LLMConfig) (*GeminiInvoker, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.ModelName == "" {
		return nil, errors.New("model name cannot be empty")
	}
	if cfg.MaxAttempts <= 0 {
		return nil, errors.New("max attempts must be positive")
	}

	return &GeminiInvoker{
		logger: logger.With("component", "gemini_invoker"),
		cfg:    cfg,
		sleep:  sleepContext,
	}, nil
}

// Invoke performs one logical request with bounded retries. The state
// machine transitions on classified outcomes: transient failures go
// through Backoff and back to Attempting until the attempt budget is
// spent; permanent failures and successes terminate immediately.
func (i *GeminiInvoker) Invoke(ctx context.Context, req generation.Request) (string, error) {
	if req.Credential == "" {
		return "", generation.ErrMissingCredential
	}

	client, err := i.newClient(ctx, req.Credential)
	if err != nil {
		return "", &generation.APICallError{Err: err}
	}

	contents := []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: req.UserQuery}},
	}}

	genCfg := &genai.GenerateContentConfig{}
	if req.SystemPrompt != "" {
		genCfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		}
	}
	if req.EnableSearch {
		genCfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	if req.Schema != nil {
		genCfg.ResponseMIMEType = "application/json"
		genCfg.ResponseSchema = toGenAISchema(req.Schema)
	}

	var (
		state    = stateAttempting
		attempt  = 0
		text     string
		finalErr error
	)

	for state != stateSucceeded && state != stateFailed {
		switch state {
		case stateAttempting:
			i.logger.InfoContext(ctx, "making generative api call",
				"attempt", attempt+1,
				"max_attempts", i.cfg.MaxAttempts,
				"schema_constrained", req.Schema != nil)

			result, out, attemptErr := i.attempt(ctx, client, contents, genCfg)

			switch out {
			case outcomeSuccess:
				text = result
				state = stateSucceeded
			case outcomePermanent:
				i.logger.WarnContext(ctx, "permanent api failure, not retrying",
					"attempt", attempt+1, "error", attemptErr)
				finalErr = attemptErr
				state = stateFailed
			case outcomeTransient:
				if attempt >= i.cfg.MaxAttempts-1 {
					i.logger.WarnContext(ctx, "retry attempts exhausted",
						"attempts", attempt+1, "error", attemptErr)
					finalErr = attemptErr
					state = stateFailed
				} else {
					state = stateBackoff
				}
			}

		case stateBackoff:
			delay := i.cfg.RetryBaseDelay * (1 << attempt)
			i.logger.InfoContext(ctx, "retrying after backoff",
				"attempt", attempt+1, "delay", delay)

			if err := i.sleep(ctx, delay); err != nil {
				finalErr = &generation.APICallError{Err: err}
				state = stateFailed
				break
			}
			attempt++
			state = stateAttempting
		}
	}

	if state == stateFailed {
		return "", finalErr
	}
	return text, nil
}

// attempt performs one network call with the per-attempt timeout and
// classifies its result.
func (i *GeminiInvoker) attempt(
	ctx context.Context,
	client *genai.Client,
	contents []*genai.Content,
	genCfg *genai.GenerateContentConfig,
) (string, outcome, error) {
	attemptCtx := ctx
	if i.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, i.cfg.RequestTimeout)
		defer cancel()
	}

	resp, err := client.Models.GenerateContent(attemptCtx, i.cfg.ModelName, contents, genCfg)
	if err != nil {
		out, classified := classifyError(ctx, err)
		return "", out, classified
	}

	return classifyResponse(resp)
}

// newClient builds a Gemini API client bound to the caller's credential.
func (i *GeminiInvoker) newClient(ctx context.Context, credential string) (*genai.Client, error) {
	cc := &genai.ClientConfig{
		APIKey:  credential,
		Backend: genai.BackendGeminiAPI,
	}
	if i.httpClient != nil {
		cc.HTTPClient = i.httpClient
	}
	if i.baseURL != "" {
		cc.HTTPOptions.BaseURL = i.baseURL
	}
	return genai.NewClient(ctx, cc)
}

// sleepContext waits for the delay or the context, whichever ends first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
