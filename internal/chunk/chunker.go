package chunk

import (
	"strings"
	"unicode/utf8"
)

// Split walks text from offset 0 emitting chunks of at most maxSize
// bytes. When a chunk would split mid-sentence, the cut is moved back to
// the last sentence terminator ('.') or newline inside the window, but
// only if that break point is late enough to leave at least
// maxSize-overlap bytes in the chunk. Consecutive chunks overlap by
// overlap bytes to preserve context; when a snapped break sits too close
// to the chunk start for that, the next chunk begins at the cut instead.
// Chunks that trim to empty are dropped, so the returned slice can be
// shorter than the offsets imply.
//
// An empty text yields a nil slice. Text no longer than maxSize yields a
// single chunk holding the trimmed input.
func Split(text string, maxSize, overlap int) ([]Chunk, error) {
	if maxSize <= 0 {
		return nil, ErrInvalidSize
	}
	if overlap < 0 || overlap >= maxSize {
		return nil, ErrInvalidOverlap
	}

	var chunks []Chunk

	start := 0
	for start < len(text) {
		end := start + maxSize
		if end > len(text) {
			end = len(text)
		} else {
			// Pull the hard cutoff back onto a rune boundary so a chunk
			// never ends with a torn multi-byte sequence.
			for end > start && !utf8.RuneStart(text[end]) {
				end--
			}
			if end == start {
				end = start + maxSize
			}
		}

		if end < len(text) {
			// Prefer the latest sentence terminator or newline in the
			// window, but only when snapping there keeps enough of the
			// chunk to still overlap with the next one.
			window := text[start:end]
			breakPoint := -1
			if idx := lastBreak(window); idx >= 0 {
				breakPoint = start + idx
			}
			if breakPoint > start+maxSize-overlap {
				end = breakPoint + 1
			}
		}

		if content := strings.TrimSpace(text[start:end]); content != "" {
			chunks = append(chunks, Chunk{
				Start:   start,
				End:     end,
				Content: content,
			})
		}

		if end < len(text) {
			// A snapped break can land close enough to start that backing
			// up by overlap would stall or walk backwards. Advance to end
			// in that case so the walk always makes forward progress, and
			// keep the next start on a rune boundary.
			next := end - overlap
			if next <= start {
				next = end
			} else {
				for !utf8.RuneStart(text[next]) {
					next++
				}
			}
			start = next
		} else {
			start = len(text)
		}
	}

	return chunks, nil
}

// lastBreak returns the index of the last '.' or '\n' in s, or -1.
func lastBreak(s string) int {
	period := strings.LastIndexByte(s, '.')
	newline := strings.LastIndexByte(s, '\n')
	if newline > period {
		return newline
	}
	return period
}
