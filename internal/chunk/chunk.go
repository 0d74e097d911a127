// Package chunk splits long text into bounded, overlapping segments at
// natural break points so each segment stays within a per-call input
// limit while keeping context across boundaries.
package chunk

// Chunk is one bounded substring of a source text. Start and End are
// byte offsets into the original text; Content is the substring with
// surrounding whitespace trimmed and is always non-empty.
type Chunk struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Content string `json:"content"`
}
