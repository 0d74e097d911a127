// Package pdf extracts plain text from uploaded PDF documents.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrInvalidPDF is returned when the uploaded bytes cannot be parsed
	// as a PDF document.
	ErrInvalidPDF = errors.New("file is not a valid PDF document")

	// ErrNoText is returned when the document parses but yields no
	// extractable text, such as a scanned image-only PDF.
	ErrNoText = errors.New("no extractable text found in PDF")
)

// ExtractText parses data as a PDF and returns the concatenated plain
// text of all pages, joined by blank lines. Pages that fail to render are
// skipped; the whole document failing yields ErrInvalidPDF.
func ExtractText(data []byte) (text string, err error) {
	// The parser panics on some malformed documents instead of returning
	// an error, so the whole extraction runs under a recover.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrInvalidPDF, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		return "", ErrNoText
	}
	return strings.Join(pages, "\n\n"), nil
}
