package slidespdf

import (
	"context"
	"fmt"
	"sync"

	"github.com/chromedp/chromedp"
)

// Exporter exports Google Slides presentations to PDF.
//
// An Exporter manages a headless browser instance that is reused across
// multiple exports. Presentations are processed strictly sequentially,
// one tab session at a time.
//
// Call [Exporter.Close] when the Exporter is no longer needed to release
// browser resources.
type Exporter struct {
	cfg           exporterConfig
	allocCtx      context.Context
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// NewExporter creates an Exporter with the given options.
//
// It starts a headless browser in the background. The caller must call
// [Exporter.Close] when finished.
func NewExporter(opts ...Option) (*Exporter, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.chromePath == "" && cfg.autoDownload {
		path, err := resolveBrowser()
		if err != nil {
			return nil, err
		}
		cfg.chromePath = path
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-translate", true),
		chromedp.Flag("no-first-run", true),
	)
	if cfg.headless != "" {
		allocOpts = append(allocOpts, chromedp.Flag("headless", cfg.headless))
	} else {
		allocOpts = append(allocOpts, chromedp.Flag("headless", false))
	}
	if cfg.chromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(cfg.chromePath))
	}
	if cfg.noSandbox {
		allocOpts = append(allocOpts, chromedp.Flag("no-sandbox", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start the browser eagerly so errors surface at creation time.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("slidespdf: starting browser: %w", err)
	}

	return &Exporter{
		cfg:           cfg,
		allocCtx:      allocCtx,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

// Close releases all resources held by the Exporter, including the
// browser process. Close is idempotent.
func (e *Exporter) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true
	e.browserCancel()
	e.allocCancel()
	return nil
}

// Export exports the presentation at rawURL and returns the assembled
// PDF. The output is not written to disk; use [Result.WriteToFile] or
// [Exporter.ExportAll] for that.
func (e *Exporter) Export(ctx context.Context, rawURL string) (*Result, error) {
	if err := e.checkClosed(); err != nil {
		return nil, err
	}
	ref, err := ParseDeckURL(rawURL)
	if err != nil {
		return nil, err
	}
	j := &Job{Input: rawURL, Ref: ref, State: StateResolved}
	return e.exportJob(ctx, j)
}

// exportJob drives one full export: open a tab on the deck, read the
// slide count, switch to the presentation view, capture every slide,
// and assemble the captures into a PDF.
func (e *Exporter) exportJob(ctx context.Context, j *Job) (*Result, error) {
	if err := e.checkClosed(); err != nil {
		return nil, err
	}

	if e.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.timeout)
		defer cancel()
	}

	s := e.newSession(ctx, j.Ref)
	defer s.close()
	j.State = StateBrowserOpen

	if err := s.open(); err != nil {
		return nil, err
	}
	// The title is cosmetic; output naming falls back to the deck ID.
	title, _ := s.title()
	total, err := s.slideCount()
	if err != nil {
		return nil, err
	}

	j.State = StateCapturing
	if err := s.present(); err != nil {
		return nil, err
	}
	images, err := captureDeck(s, total)
	if err != nil {
		return nil, err
	}

	j.State = StateAssembling
	res, err := Assemble(images)
	if err != nil {
		return nil, err
	}
	res.deck = j.Ref
	res.title = title
	return res, nil
}

func (e *Exporter) checkClosed() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	return nil
}

// ExportURL exports one presentation using a temporary [Exporter].
// This is convenient for one-off exports. For repeated use, create an
// [Exporter] with [NewExporter] to reuse the browser instance.
func ExportURL(ctx context.Context, rawURL string, opts ...Option) (*Result, error) {
	exp, err := NewExporter(opts...)
	if err != nil {
		return nil, err
	}
	defer exp.Close()
	return exp.Export(ctx, rawURL)
}
