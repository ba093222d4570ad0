package slidespdf

import (
	"bytes"
	"encoding/base64"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Result holds an exported PDF and provides helpers for common output
// formats such as raw bytes, base64 encoding, and streaming readers.
//
// A Result is returned by every export. It is safe to call its methods
// multiple times — the underlying data is never modified.
type Result struct {
	data   []byte
	deck   DeckRef
	title  string
	slides int
}

// Bytes returns the raw PDF content.
func (r *Result) Bytes() []byte {
	return r.data
}

// Base64 returns the PDF encoded as a standard base64 string (RFC 4648).
// This is useful for embedding in JSON payloads or uploading to services
// that accept base64-encoded content.
func (r *Result) Base64() string {
	return base64.StdEncoding.EncodeToString(r.data)
}

// Reader returns an [*bytes.Reader] over the PDF content.
func (r *Result) Reader() *bytes.Reader {
	return bytes.NewReader(r.data)
}

// WriteTo writes the full PDF content to w. It implements [io.WriterTo].
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.data)
	return int64(n), err
}

// WriteToFile writes the PDF to the file at path, creating it if needed.
func (r *Result) WriteToFile(path string, perm os.FileMode) error {
	return os.WriteFile(path, r.data, perm)
}

// Len returns the size of the PDF in bytes.
func (r *Result) Len() int {
	return len(r.data)
}

// Deck returns the reference of the exported presentation.
func (r *Result) Deck() DeckRef {
	return r.deck
}

// Title returns the deck title scraped from the page, or "" when it
// could not be read.
func (r *Result) Title() string {
	return r.title
}

// Slides returns the number of slides captured into the PDF.
func (r *Result) Slides() int {
	return r.slides
}

// Pages parses the PDF and returns its page count. For a well-formed
// export this equals [Result.Slides].
func (r *Result) Pages() (int, error) {
	return api.PageCount(bytes.NewReader(r.data), nil)
}
