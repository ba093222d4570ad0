// Package slidespdf exports Google Slides presentations to PDF by
// driving a headless Chrome browser: it reads the slide count from the
// deck's filmstrip, steps through every slide in the presentation view,
// captures a screenshot of each, and assembles the captures into a
// single PDF with one slide per page.
//
// It exists for decks whose owner has disabled downloading. No Google
// API access or credentials are involved; everything the tool sees, a
// browser sees.
//
// For a one-off export use the package-level helper:
//
//	res, err := slidespdf.ExportURL(ctx, "https://docs.google.com/presentation/d/ID")
//
// For repeated exports create an [Exporter], which reuses the browser
// process:
//
//	exp, err := slidespdf.NewExporter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer exp.Close()
//
//	res, err := exp.Export(ctx, url)
//	err = res.WriteToFile("deck.pdf", 0o644)
//
// To process several decks with per-deck error isolation, build jobs
// and run the batch:
//
//	candidates, err := slidespdf.ResolveInput("./slides-list.txt")
//	jobs := slidespdf.NewJobs(candidates)
//	err = exp.ExportAll(ctx, jobs, ".")
//
// Each [Job] records its final state, output path, and error, so a
// malformed URL or an unreachable deck never stops the remaining jobs.
//
// Chrome or Chromium must be available in PATH, or use
// [WithAutoDownload] to fetch a cached Chromium build automatically.
package slidespdf
