package slidespdf

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
)

// JobState tracks one export job through its lifecycle.
type JobState int

const (
	StatePending JobState = iota
	StateResolved
	StateBrowserOpen
	StateCapturing
	StateAssembling
	StateWritten
	StateFailed
)

func (s JobState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateResolved:
		return "resolved"
	case StateBrowserOpen:
		return "browser-open"
	case StateCapturing:
		return "capturing"
	case StateAssembling:
		return "assembling"
	case StateWritten:
		return "written"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("JobState(%d)", int(s))
	}
}

// Job is the unit of work exporting exactly one presentation to exactly
// one output PDF.
type Job struct {
	// Input is the candidate string exactly as supplied.
	Input string

	// Line is the 1-based position of the candidate in the input
	// sequence.
	Line int

	// Ref is the parsed presentation reference, valid once State has
	// reached StateResolved.
	Ref DeckRef

	State JobState

	// Path is the output PDF location, set when State is StateWritten.
	Path string

	// Pages is the number of slides written, set with Path.
	Pages int

	// Err records why the job failed, set when State is StateFailed.
	Err error
}

// NewJobs resolves each candidate string into a job. Malformed
// candidates become failed jobs immediately, before any browser is
// launched; the rest start out resolved. Order follows the input.
func NewJobs(candidates []string) []*Job {
	jobs := make([]*Job, 0, len(candidates))
	for i, c := range candidates {
		j := &Job{Input: c, Line: i + 1, State: StatePending}
		ref, err := ParseDeckURL(c)
		if err != nil {
			var ie *InvalidInputError
			if errors.As(err, &ie) {
				ie.Line = j.Line
			}
			j.State = StateFailed
			j.Err = err
		} else {
			j.Ref = ref
			j.State = StateResolved
		}
		jobs = append(jobs, j)
	}
	return jobs
}

// ExportAll runs every resolved job strictly sequentially, writing one
// PDF per presentation into outDir. A job failure is recorded on the
// job and the batch continues with the next entry; ExportAll itself
// only returns an error when the Exporter is closed or ctx is done.
func (e *Exporter) ExportAll(ctx context.Context, jobs []*Job, outDir string) error {
	if err := e.checkClosed(); err != nil {
		return err
	}
	return runJobs(ctx, jobs, outDir, e.exportJob)
}

// runJobs applies the batch policy: resolved jobs run in order, each
// one's result is persisted at a path derived from the deck title or
// ID, and a failure never stops the remaining jobs.
func runJobs(ctx context.Context, jobs []*Job, outDir string, export func(context.Context, *Job) (*Result, error)) error {
	for _, j := range jobs {
		if j.State != StateResolved {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := export(ctx, j)
		if err != nil {
			j.State = StateFailed
			j.Err = err
			continue
		}

		path := filepath.Join(outDir, outputStem(j.Ref, res.Title())+".pdf")
		if err := res.WriteToFile(path, 0o644); err != nil {
			j.State = StateFailed
			j.Err = fmt.Errorf("slidespdf: writing %s: %w", path, err)
			continue
		}
		j.Path = path
		j.Pages = res.Slides()
		j.State = StateWritten
	}
	return nil
}
