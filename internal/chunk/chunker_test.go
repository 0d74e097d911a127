package chunk

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitParameterValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		maxSize int
		overlap int
		wantErr error
	}{
		{"zero max size", 0, 0, ErrInvalidSize},
		{"negative max size", -1, 0, ErrInvalidSize},
		{"negative overlap", 10, -1, ErrInvalidOverlap},
		{"overlap equals max size", 10, 10, ErrInvalidOverlap},
		{"overlap exceeds max size", 10, 20, ErrInvalidOverlap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Split("some text", tt.maxSize, tt.overlap)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSplitEmptyText(t *testing.T) {
	t.Parallel()

	chunks, err := Split("", 100, 10)
	require.NoError(t, err)
	assert.Empty(t, chunks, "empty input should produce zero chunks")
}

func TestSplitShortText(t *testing.T) {
	t.Parallel()

	chunks, err := Split("  A short document.  ", 100, 10)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "A short document.", chunks[0].Content, "single chunk equals trimmed input")
	assert.Equal(t, 0, chunks[0].Start)
	assert.Equal(t, 21, chunks[0].End)
}

func TestSplitWhitespaceOnlyText(t *testing.T) {
	t.Parallel()

	chunks, err := Split("   \n\t  ", 100, 10)
	require.NoError(t, err)
	assert.Empty(t, chunks, "a chunk that trims to empty is dropped")
}

func TestSplitSnapsToSentenceBreak(t *testing.T) {
	t.Parallel()

	// 30 bytes: a period at offset 24 falls inside the snapping window
	// for maxSize=26, overlap=6 (24 > 0+26-6).
	text := "First sentence goes here. Then more follows after it."
	chunks, err := Split(text, 26, 6)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	assert.Equal(t, "First sentence goes here.", chunks[0].Content,
		"first chunk should end at the sentence terminator")
	assert.Equal(t, 25, chunks[0].End, "end snaps to one past the period")
}

func TestSplitKeepsHardCutoffWhenBreakTooEarly(t *testing.T) {
	t.Parallel()

	// The only period is at offset 1, well before maxSize-overlap, so
	// the hard cutoff at maxSize is kept.
	text := "a." + strings.Repeat("x", 60)
	chunks, err := Split(text, 20, 5)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)
	assert.Equal(t, 20, chunks[0].End, "hard cutoff preserved when no late break exists")
}

func TestSplitNeverStallsOnEarlyBreak(t *testing.T) {
	t.Parallel()

	// An overlap just below maxSize combined with a sentence break near
	// the start of the window used to move the walk backwards past offset
	// zero. The walk must terminate and still cover the whole input.
	text := "ab." + strings.Repeat("x", 27)
	chunks, err := Split(text, 10, 9)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	assert.Equal(t, 0, chunks[0].Start)
	assert.Equal(t, len(text), chunks[len(chunks)-1].End)
	for i := 1; i < len(chunks); i++ {
		assert.Greater(t, chunks[i].Start, chunks[i-1].Start,
			"chunk %d must advance", i)
		assert.LessOrEqual(t, chunks[i].Start, chunks[i-1].End,
			"chunk %d must not leave a gap", i)
	}
}

func TestSplitKeepsRuneBoundaries(t *testing.T) {
	t.Parallel()

	// Hard cutoffs land mid-rune at these sizes; every chunk must still
	// be valid UTF-8 and the spans must still cover the input.
	tests := []struct {
		name    string
		text    string
		maxSize int
		overlap int
	}{
		{"two-byte runes", strings.Repeat("é", 40), 15, 4},
		{"three-byte runes", strings.Repeat("日本語", 30), 20, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			chunks, err := Split(tt.text, tt.maxSize, tt.overlap)
			require.NoError(t, err)
			require.NotEmpty(t, chunks)

			assert.Equal(t, len(tt.text), chunks[len(chunks)-1].End)
			for i, c := range chunks {
				assert.True(t, utf8.ValidString(c.Content),
					"chunk %d must be valid UTF-8", i)
				if i > 0 {
					assert.LessOrEqual(t, chunks[i].Start, chunks[i-1].End,
						"chunk %d must not leave a gap", i)
				}
			}
		})
	}
}

func TestSplitCoverage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		maxSize int
		overlap int
	}{
		{"no breaks at all", strings.Repeat("x", 1000), 100, 10},
		{"periodic sentences", strings.Repeat("A sentence here. ", 200), 150, 20},
		{"newline separated", strings.Repeat("line of text\n", 300), 128, 16},
		{"zero overlap", strings.Repeat("words and words. ", 100), 64, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			chunks, err := Split(tt.text, tt.maxSize, tt.overlap)
			require.NoError(t, err)
			require.NotEmpty(t, chunks)

			// Spans collectively cover [0, len(text)) with no gaps:
			// each chunk starts no later than the previous end, and the
			// walk reaches the end of the text.
			assert.Equal(t, 0, chunks[0].Start)
			assert.Equal(t, len(tt.text), chunks[len(chunks)-1].End)
			for i := 1; i < len(chunks); i++ {
				assert.LessOrEqual(t, chunks[i].Start, chunks[i-1].End,
					"chunk %d must not leave a gap", i)
				if tt.overlap > 0 {
					assert.Less(t, chunks[i].Start, chunks[i-1].End,
						"chunk %d must overlap its predecessor", i)
				}
				assert.Greater(t, chunks[i].End, chunks[i-1].End,
					"chunk %d must make forward progress", i)
			}

			for i, c := range chunks {
				assert.NotEmpty(t, c.Content, "chunk %d content must be non-empty", i)
				assert.LessOrEqual(t, c.End-c.Start, tt.maxSize,
					"chunk %d span must not exceed maxSize", i)
			}
		})
	}
}

func TestSplitTwoStageExample(t *testing.T) {
	t.Parallel()

	// A 30000-byte document with sentence breaks available near every
	// cut point yields 2-3 chunks at the production parameters.
	text := strings.Repeat("This is a sentence that fills some space in the document. ", 518)
	require.Greater(t, len(text), 30000)
	text = text[:30000]

	chunks, err := Split(text, 15000, 1000)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(chunks), 2)
	assert.LessOrEqual(t, len(chunks), 3)
}
