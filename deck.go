package slidespdf

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// deckIDPattern matches the document ID segment of a Google Slides URL,
// e.g. https://docs.google.com/presentation/d/<ID>/edit#slide=id.p.
var deckIDPattern = regexp.MustCompile(`/presentation/d/([a-zA-Z0-9_-]+)`)

// DeckRef identifies one Google Slides presentation. It is immutable
// once parsed.
type DeckRef struct {
	// Raw is the URL exactly as supplied by the caller.
	Raw string

	// ID is the document ID extracted from the URL path.
	ID string
}

// ParseDeckURL validates rawURL as a well-formed Google Slides
// presentation URL and extracts its document ID.
func ParseDeckURL(rawURL string) (DeckRef, error) {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return DeckRef{}, &InvalidInputError{Value: rawURL, Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return DeckRef{}, &InvalidInputError{Value: rawURL, Err: fmt.Errorf("unsupported scheme %q", u.Scheme)}
	}
	if u.Host == "" {
		return DeckRef{}, &InvalidInputError{Value: rawURL, Err: errors.New("missing host")}
	}
	m := deckIDPattern.FindStringSubmatch(u.Path)
	if m == nil {
		return DeckRef{}, &InvalidInputError{Value: rawURL, Err: errors.New("no /presentation/d/<id> segment")}
	}
	return DeckRef{Raw: rawURL, ID: m[1]}, nil
}

// EditURL returns the deck's edit view, the landing page whose
// filmstrip exposes the total slide count.
func (d DeckRef) EditURL() string {
	return "https://docs.google.com/presentation/d/" + d.ID + "/edit"
}

// PresentURL returns the deck's presentation view, which renders one
// slide per screen without UI chrome.
func (d DeckRef) PresentURL() string {
	return "https://docs.google.com/presentation/d/" + d.ID + "/present"
}

// forbidden filename characters, matching common OS restrictions.
const forbiddenFilenameChars = `"*\/'.|?:<>`

// sanitizeFilename strips OS-reserved characters from a scraped deck
// title so it can be used as an output file stem.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		if !strings.ContainsRune(forbiddenFilenameChars, r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// outputStem returns the file stem for a deck: the sanitized scraped
// title when non-empty, otherwise the document ID.
func outputStem(ref DeckRef, title string) string {
	if s := sanitizeFilename(title); s != "" {
		return s
	}
	return ref.ID
}
