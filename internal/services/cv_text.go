package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"code.sajari.com/docconv"
)

// maxCVTextLen caps the extracted text stored with a candidate.
const maxCVTextLen = 100_000

// TextExtractor pulls plain text out of an uploaded document.
type TextExtractor interface {
	Extract(ctx context.Context, filename string, r io.Reader) (string, error)
}

// DocconvExtractor converts PDF, DOC and DOCX with docconv. The MIME type is
// derived from the file name since browsers often misreport it.
type DocconvExtractor struct{}

func (DocconvExtractor) Extract(ctx context.Context, filename string, r io.Reader) (string, error) {
	mimeType := docconv.MimeTypeByExtension(filename)

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		res, err := docconv.Convert(r, mimeType, false)
		if err != nil {
			done <- result{err: fmt.Errorf("convert %s: %w", filename, err)}
			return
		}
		done <- result{text: res.Body}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return "", res.err
		}
		return truncateText(strings.TrimSpace(res.text), maxCVTextLen), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	// drop a trailing partial rune
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
