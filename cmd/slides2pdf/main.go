// slides2pdf exports Google Slides presentations to PDF, even when the
// deck owner has disabled downloading, by screenshotting every slide in
// a headless browser and stitching the captures into one PDF per deck.
//
// Usage:
//
//	slides2pdf --slides <FILE|URL> [options]
//	slides2pdf --url <URL> [options]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	slidespdf "github.com/porticus-lab/go-slides-pdf"
)

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(code)
}

func printUsage() {
	fmt.Print(`slides2pdf - export Google Slides presentations to PDF

Usage:
  slides2pdf --slides <FILE|URL> [options]
  slides2pdf --url <URL> [options]

Input:
  --slides <arg>      A presentation URL, or the path to a text file
                      listing one presentation URL per line
  --url <URL>         A single presentation URL (may be combined with
                      --slides to prepend one deck to the batch)

Options:
  -o, --out <dir>     Output directory (default: current directory)
  --chrome <path>     Chrome/Chromium executable to use
  --download-browser  Download a cached Chromium build if none is found
  --visible           Run the browser with a visible window
  --no-sandbox        Disable the Chrome sandbox (needed when root)
  --timeout <dur>     Per-presentation timeout, e.g. 90s, 3m (default: 2m)
  -v                  Verbose logging
  -h, --help          Show this help

Examples:
  slides2pdf --slides https://docs.google.com/presentation/d/1pA4QO0WEVGbTMpmKBV_1n3458PKxtvvFzDKZi_rsgAo
  slides2pdf --slides ./slides-list.txt -o ./exports
`)
}

// run returns the process exit code: 0 when the batch finished with at
// least one deck exported, 1 otherwise.
func run(args []string) (int, error) {
	var (
		slidesArg string
		urlArg    string
		outDir    = "."
		chrome    string
		timeout   time.Duration
		visible   bool
		download  bool
		noSandbox bool
		verbose   bool
	)

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--slides":
			i++
			if i >= len(args) {
				return 1, fmt.Errorf("--slides requires an argument")
			}
			slidesArg = args[i]
		case "--url":
			i++
			if i >= len(args) {
				return 1, fmt.Errorf("--url requires an argument")
			}
			urlArg = args[i]
		case "-o", "--out":
			i++
			if i >= len(args) {
				return 1, fmt.Errorf("%s requires an argument", args[i-1])
			}
			outDir = args[i]
		case "--chrome":
			i++
			if i >= len(args) {
				return 1, fmt.Errorf("--chrome requires an argument")
			}
			chrome = args[i]
		case "--timeout":
			i++
			if i >= len(args) {
				return 1, fmt.Errorf("--timeout requires an argument")
			}
			d, err := time.ParseDuration(args[i])
			if err != nil {
				return 1, fmt.Errorf("invalid --timeout %q: %w", args[i], err)
			}
			timeout = d
		case "--visible":
			visible = true
		case "--download-browser":
			download = true
		case "--no-sandbox":
			noSandbox = true
		case "-v":
			verbose = true
		case "-h", "--help":
			printUsage()
			return 0, nil
		default:
			fmt.Fprintf(os.Stderr, "unknown option: %s\n\n", args[i])
			printUsage()
			return 1, nil
		}
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if slidesArg == "" && urlArg == "" {
		printUsage()
		return 1, slidespdf.ErrMissingInput
	}

	var candidates []string
	if urlArg != "" {
		candidates = append(candidates, urlArg)
	}
	if slidesArg != "" {
		more, err := slidespdf.ResolveInput(slidesArg)
		if err != nil {
			return 1, err
		}
		candidates = append(candidates, more...)
	}

	jobs := slidespdf.NewJobs(candidates)
	resolved := 0
	for _, j := range jobs {
		if j.State == slidespdf.StateResolved {
			resolved++
		}
	}
	if resolved == 0 {
		for _, j := range jobs {
			slog.Error("invalid input", "line", j.Line, "input", j.Input, "error", j.Err)
		}
		return 1, fmt.Errorf("no valid presentation URLs among %d input(s)", len(jobs))
	}

	if outDir != "." {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return 1, fmt.Errorf("creating output directory: %w", err)
		}
	}

	var opts []slidespdf.Option
	if chrome != "" {
		opts = append(opts, slidespdf.WithChromePath(chrome))
	}
	if visible {
		opts = append(opts, slidespdf.WithVisible())
	}
	if download {
		opts = append(opts, slidespdf.WithAutoDownload())
	}
	if noSandbox {
		opts = append(opts, slidespdf.WithNoSandbox())
	}
	if timeout > 0 {
		opts = append(opts, slidespdf.WithTimeout(timeout))
	}

	slog.Debug("starting browser", "chrome", chrome, "visible", visible)
	exp, err := slidespdf.NewExporter(opts...)
	if err != nil {
		return 1, err
	}
	defer exp.Close()

	if err := exp.ExportAll(context.Background(), jobs, outDir); err != nil {
		return 1, err
	}

	succeeded := 0
	for _, j := range jobs {
		switch j.State {
		case slidespdf.StateWritten:
			succeeded++
			slog.Info("exported", "deck", j.Ref.ID, "pages", j.Pages, "output", j.Path)
		default:
			slog.Error("export failed", "line", j.Line, "input", j.Input, "error", j.Err)
		}
	}
	if succeeded == 0 {
		return 1, fmt.Errorf("all %d job(s) failed", len(jobs))
	}
	slog.Info("done", "succeeded", succeeded, "failed", len(jobs)-succeeded)
	return 0, nil
}
