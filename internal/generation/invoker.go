package generation

import "context"

// Invoker performs one logical request to an external generative-language
// endpoint, shielding callers from transient transport and service
// failures. Retries happen entirely inside the implementation; callers
// only ever see a final success or a final classified failure.
type Invoker interface {
	// Invoke sends the request and returns the model's raw text output.
	// For schema-constrained requests the text is a JSON document the
	// caller parses; the invoker itself never interprets it.
	//
	// Returns ErrMissingCredential when req.Credential is empty, and an
	// APICallError (matching ErrAPICall) on permanent failure.
	Invoke(ctx context.Context, req Request) (string, error)
}

// Request describes one call to the generative-language endpoint.
type Request struct {
	// SystemPrompt carries the persona and task instructions.
	SystemPrompt string

	// UserQuery is the content for the model to process.
	UserQuery string

	// Credential is the caller-supplied API key. It is used for this
	// call only and never stored.
	Credential string

	// Schema, when non-nil, constrains the model output to the declared
	// JSON shape instead of free text.
	Schema *Schema

	// EnableSearch requests web-search grounding for the call.
	EnableSearch bool
}
