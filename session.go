package slidespdf

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
)

// Selectors in the Slides viewer DOM. The filmstrip is the thumbnail
// strip of the edit view; its total-count element is the only place
// the deck length can be read without API access.
const (
	selFilmstrip  = "#filmstrip"
	selTotalCount = "#punch-total-slide-count"
	selSlideSVG   = "svg"
)

// The total-count element stays empty until the filmstrip has been
// scrolled, and hides itself (display:none) when scrolling stops, so
// reading it takes a nudge and a forced display.
const (
	scrollFilmstripJS = `(() => {
	const strip = document.querySelector("#filmstrip");
	if (strip) {
		strip.dispatchEvent(new WheelEvent("wheel", {deltaY: 400, bubbles: true}));
	}
})()`

	totalCountReadyJS = `(() => {
	const el = document.querySelector("#punch-total-slide-count");
	if (!el) return false;
	el.style.display = "block";
	return /\d/.test(el.textContent || "");
})()`

	readTotalCountJS = `(() => {
	const el = document.querySelector("#punch-total-slide-count");
	return el ? (el.textContent || "") : "";
})()`
)

const (
	pageLoadTimeout = 15 * time.Second
	pollInterval    = 100 * time.Millisecond
)

var digitRun = regexp.MustCompile(`\d+`)

// parseSlideTotal extracts the first run of digits from the total-count
// indicator text.
func parseSlideTotal(text string) (int, bool) {
	m := digitRun.FindString(text)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// stepKeys returns the arrow key and number of presses needed to move
// from slide cur to slide target in the presentation view.
func stepKeys(cur, target int) (string, int) {
	if target >= cur {
		return kb.ArrowRight, target - cur
	}
	return kb.ArrowLeft, cur - target
}

// session is one browser tab working on one deck. It is the only
// shared mutable resource of a job and is owned by exportJob for the
// job's whole duration.
type session struct {
	ctx    context.Context
	cancel context.CancelFunc
	cfg    exporterConfig
	ref    DeckRef
	slide  int // current 1-based slide while presenting
	total  int
}

func (e *Exporter) newSession(ctx context.Context, ref DeckRef) *session {
	tabCtx, tabCancel := chromedp.NewContext(e.browserCtx)
	// Tab contexts descend from the browser context, not the caller's,
	// so caller cancellation and deadlines must be propagated by hand.
	go func() {
		select {
		case <-ctx.Done():
			tabCancel()
		case <-tabCtx.Done():
		}
	}()
	return &session{ctx: tabCtx, cancel: tabCancel, cfg: e.cfg, ref: ref}
}

func (s *session) close() {
	s.cancel()
}

// open navigates to the deck's edit view and waits for the initial
// render.
func (s *session) open() error {
	if err := chromedp.Run(s.ctx,
		chromedp.EmulateViewport(s.cfg.viewportW, s.cfg.viewportH),
		chromedp.Navigate(s.ref.EditURL()),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		return &NavigationError{URL: s.ref.EditURL(), Err: err}
	}
	return nil
}

// title returns the document title of the current page.
func (s *session) title() (string, error) {
	var t string
	if err := chromedp.Run(s.ctx, chromedp.Title(&t)); err != nil {
		return "", err
	}
	return t, nil
}

// slideCount reads the total number of slides from the filmstrip's
// total-count indicator.
func (s *session) slideCount() (int, error) {
	if err := s.waitFor(selFilmstrip, pageLoadTimeout); err != nil {
		return 0, &PageStructureError{Selector: selFilmstrip}
	}

	var populated bool
	if err := chromedp.Run(s.ctx,
		chromedp.Evaluate(scrollFilmstripJS, nil),
		chromedp.Poll(totalCountReadyJS, &populated,
			chromedp.WithPollingInterval(pollInterval),
			chromedp.WithPollingTimeout(s.cfg.settleTimeout)),
	); err != nil {
		return 0, &PageStructureError{Selector: selTotalCount}
	}

	var text string
	if err := chromedp.Run(s.ctx, chromedp.Evaluate(readTotalCountJS, &text)); err != nil {
		return 0, fmt.Errorf("slidespdf: reading slide count: %w", err)
	}
	n, ok := parseSlideTotal(text)
	if !ok {
		return 0, &PageStructureError{Selector: selTotalCount}
	}
	s.total = n
	return n, nil
}

// present switches to the presentation view, which renders one slide
// per screen without UI chrome, and waits for the first slide.
func (s *session) present() error {
	u := s.ref.PresentURL()
	if err := chromedp.Run(s.ctx,
		chromedp.Navigate(u),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		return &NavigationError{URL: u, Err: err}
	}
	// Slides render as SVG; the first one appearing is the signal that
	// the viewer is up.
	if err := s.waitFor(selSlideSVG, pageLoadTimeout); err != nil {
		return &NavigationError{URL: u, Err: err}
	}
	s.slide = 1
	s.settleAfter("")
	return nil
}

// goToSlide moves to the 1-based slide n by stepping with arrow keys
// from the current position.
func (s *session) goToSlide(n int) error {
	if n < 1 || (s.total > 0 && n > s.total) {
		return &NavigationError{
			URL:   s.ref.PresentURL(),
			Slide: n,
			Err:   fmt.Errorf("slide out of range 1-%d", s.total),
		}
	}
	key, steps := stepKeys(s.slide, n)
	for i := 0; i < steps; i++ {
		prev := s.locationHash()
		if err := chromedp.Run(s.ctx, chromedp.KeyEvent(key)); err != nil {
			return &NavigationError{URL: s.ref.PresentURL(), Slide: n, Err: err}
		}
		s.settleAfter(prev)
	}
	s.slide = n
	return nil
}

// capture screenshots the rendering viewport and returns PNG bytes.
func (s *session) capture() ([]byte, error) {
	var buf []byte
	err := chromedp.Run(s.ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		buf, err = page.CaptureScreenshot().
			WithFormat(page.CaptureScreenshotFormatPng).
			Do(ctx)
		return err
	}))
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// waitFor polls until sel matches an element, with a bounded timeout.
func (s *session) waitFor(sel string, d time.Duration) error {
	var ok bool
	expr := fmt.Sprintf(`document.querySelector(%q) !== null`, sel)
	return chromedp.Run(s.ctx, chromedp.Poll(expr, &ok,
		chromedp.WithPollingInterval(pollInterval),
		chromedp.WithPollingTimeout(d)))
}

// settleAfter waits for the viewer to move past the given location
// hash, bounded by the settle timeout. The viewer updates the hash per
// slide but not per in-slide build step, so hitting the timeout is not
// an error: it means the navigation stayed within the current slide.
func (s *session) settleAfter(prev string) {
	var moved bool
	expr := fmt.Sprintf(`location.hash !== %q`, prev)
	_ = chromedp.Run(s.ctx, chromedp.Poll(expr, &moved,
		chromedp.WithPollingInterval(pollInterval),
		chromedp.WithPollingTimeout(s.cfg.settleTimeout)))
}

func (s *session) locationHash() string {
	var h string
	_ = chromedp.Run(s.ctx, chromedp.Evaluate(`location.hash`, &h))
	return h
}
