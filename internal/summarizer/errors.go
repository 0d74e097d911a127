package summarizer

import "errors"

var (
	// ErrEmptyText is returned when Summarize is called with no source text.
	ErrEmptyText = errors.New("source text is empty")

	// ErrPersistSummary is returned when the generated summary cannot be
	// written to the session's summary slot.
	ErrPersistSummary = errors.New("failed to persist summary")
)
