package slidespdf

import "time"

// exporterConfig holds internal configuration for an Exporter.
type exporterConfig struct {
	chromePath    string
	timeout       time.Duration
	settleTimeout time.Duration
	noSandbox     bool
	headless      string
	autoDownload  bool
	viewportW     int64
	viewportH     int64
}

func defaultConfig() exporterConfig {
	return exporterConfig{
		timeout:       2 * time.Minute,
		settleTimeout: time.Second,
		headless:      "new",
		viewportW:     1920,
		viewportH:     1080,
	}
}

// Option configures an [Exporter].
type Option func(*exporterConfig)

// WithChromePath sets the path to the Chrome or Chromium executable.
// By default the library searches standard locations automatically.
func WithChromePath(path string) Option {
	return func(c *exporterConfig) {
		c.chromePath = path
	}
}

// WithTimeout sets the maximum duration for exporting a single
// presentation. Defaults to 2 minutes. A zero or negative value
// disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *exporterConfig) {
		c.timeout = d
	}
}

// WithSettleTimeout bounds how long to wait for a slide to finish
// rendering after a navigation step. Defaults to 1 second.
func WithSettleTimeout(d time.Duration) Option {
	return func(c *exporterConfig) {
		c.settleTimeout = d
	}
}

// WithNoSandbox disables the Chrome sandbox. This is required when
// running as root, for example inside Docker containers.
func WithNoSandbox() Option {
	return func(c *exporterConfig) {
		c.noSandbox = true
	}
}

// WithVisible runs the browser with a visible window instead of
// headless. Useful for debugging viewer interaction.
func WithVisible() Option {
	return func(c *exporterConfig) {
		c.headless = ""
	}
}

// WithAutoDownload downloads a compatible Chromium binary into the
// local cache when no executable is configured or found. The download
// happens once, at [NewExporter] time.
func WithAutoDownload() Option {
	return func(c *exporterConfig) {
		c.autoDownload = true
	}
}

// WithViewport sets the browser viewport in pixels. Captured slides
// have exactly these dimensions. Defaults to 1920x1080.
func WithViewport(width, height int64) Option {
	return func(c *exporterConfig) {
		if width > 0 && height > 0 {
			c.viewportW = width
			c.viewportH = height
		}
	}
}
