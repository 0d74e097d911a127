// Package gemini implements the generation.Invoker interface against
// Google's Gemini API. It owns the retry/backoff state machine, the
// per-attempt timeout, the classification of transport and service
// failures, and the translation of the vendor-neutral schema descriptor
// into the genai SDK's representation.
package gemini
