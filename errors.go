package slidespdf

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the library.
var (
	// ErrClosed is returned when attempting to use a closed [Exporter].
	ErrClosed = errors.New("slidespdf: exporter is closed")

	// ErrMissingInput is returned when no presentation URL or list file
	// was supplied.
	ErrMissingInput = errors.New("slidespdf: no presentation URL or list file given")
)

// InvalidInputError reports a candidate string that is not a valid
// Google Slides presentation URL. Line is 1-based when the candidate
// came from a list file, and 0 for a single-URL invocation.
type InvalidInputError struct {
	Line  int
	Value string
	Err   error
}

func (e *InvalidInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("slidespdf: invalid input on line %d: %q: %v", e.Line, e.Value, e.Err)
	}
	return fmt.Sprintf("slidespdf: invalid input %q: %v", e.Value, e.Err)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// NavigationError reports a failure to reach a page or to move to a
// slide. Slide is 0 when the error is not tied to a single slide.
type NavigationError struct {
	URL   string
	Slide int
	Err   error
}

func (e *NavigationError) Error() string {
	if e.Slide > 0 {
		return fmt.Sprintf("slidespdf: navigating to slide %d of %s: %v", e.Slide, e.URL, e.Err)
	}
	return fmt.Sprintf("slidespdf: navigating to %s: %v", e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// PageStructureError reports that an expected on-page element was
// missing or unreadable, usually because the viewer layout changed.
type PageStructureError struct {
	Selector string
}

func (e *PageStructureError) Error() string {
	return fmt.Sprintf("slidespdf: page element %q not found or unreadable", e.Selector)
}

// CaptureError reports a failed screenshot of one slide.
type CaptureError struct {
	Slide int
	Err   error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("slidespdf: capturing slide %d: %v", e.Slide, e.Err)
}

func (e *CaptureError) Unwrap() error { return e.Err }

// AssemblyError reports a failure to build the output PDF from the
// captured slide images.
type AssemblyError struct {
	Err error
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("slidespdf: assembling PDF: %v", e.Err)
}

func (e *AssemblyError) Unwrap() error { return e.Err }
