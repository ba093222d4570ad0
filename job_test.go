package slidespdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

const (
	deckURL1 = "https://docs.google.com/presentation/d/deck-one"
	deckURL2 = "https://docs.google.com/presentation/d/deck-two"
	deckURL3 = "https://docs.google.com/presentation/d/deck-three"
)

func TestNewJobs_MixedValidity(t *testing.T) {
	jobs := NewJobs([]string{deckURL1, "not a url", deckURL3})
	if len(jobs) != 3 {
		t.Fatalf("len(jobs) = %d, want 3", len(jobs))
	}

	if jobs[0].State != StateResolved || jobs[0].Ref.ID != "deck-one" {
		t.Errorf("job 1: state %v, ID %q", jobs[0].State, jobs[0].Ref.ID)
	}
	if jobs[2].State != StateResolved || jobs[2].Ref.ID != "deck-three" {
		t.Errorf("job 3: state %v, ID %q", jobs[2].State, jobs[2].Ref.ID)
	}

	bad := jobs[1]
	if bad.State != StateFailed {
		t.Fatalf("job 2 state = %v, want StateFailed", bad.State)
	}
	var ie *InvalidInputError
	if !errors.As(bad.Err, &ie) {
		t.Fatalf("job 2 error type = %T, want *InvalidInputError", bad.Err)
	}
	if ie.Line != 2 {
		t.Errorf("InvalidInputError.Line = %d, want 2", ie.Line)
	}
}

func TestNewJobs_PreservesOrder(t *testing.T) {
	candidates := []string{deckURL1, deckURL2, deckURL3}
	jobs := NewJobs(candidates)
	for i, j := range jobs {
		if j.Input != candidates[i] {
			t.Errorf("jobs[%d].Input = %q, want %q", i, j.Input, candidates[i])
		}
		if j.Line != i+1 {
			t.Errorf("jobs[%d].Line = %d, want %d", i, j.Line, i+1)
		}
	}
}

func TestRunJobs_ContinueOnError(t *testing.T) {
	dir := t.TempDir()
	jobs := NewJobs([]string{deckURL1, deckURL2, deckURL3})

	var exported []string
	export := func(_ context.Context, j *Job) (*Result, error) {
		exported = append(exported, j.Ref.ID)
		if j.Ref.ID == "deck-two" {
			return nil, &NavigationError{URL: j.Input, Err: errors.New("timeout")}
		}
		return &Result{data: samplePDF, slides: 4, title: "Deck " + j.Ref.ID}, nil
	}

	if err := runJobs(context.Background(), jobs, dir, export); err != nil {
		t.Fatalf("runJobs: %v", err)
	}

	if want := []string{"deck-one", "deck-two", "deck-three"}; fmt.Sprint(exported) != fmt.Sprint(want) {
		t.Errorf("export order = %v, want %v", exported, want)
	}

	if jobs[0].State != StateWritten || jobs[2].State != StateWritten {
		t.Errorf("surviving jobs not written: %v, %v", jobs[0].State, jobs[2].State)
	}
	if jobs[0].Pages != 4 {
		t.Errorf("jobs[0].Pages = %d, want 4", jobs[0].Pages)
	}
	if jobs[1].State != StateFailed {
		t.Errorf("jobs[1].State = %v, want StateFailed", jobs[1].State)
	}
	var ne *NavigationError
	if !errors.As(jobs[1].Err, &ne) {
		t.Errorf("jobs[1].Err type = %T, want *NavigationError", jobs[1].Err)
	}

	// Output files exist for the successful jobs, named from the title.
	for _, j := range []*Job{jobs[0], jobs[2]} {
		want := filepath.Join(dir, "Deck "+j.Ref.ID+".pdf")
		if j.Path != want {
			t.Errorf("job path = %q, want %q", j.Path, want)
		}
		if _, err := os.Stat(j.Path); err != nil {
			t.Errorf("output file missing: %v", err)
		}
	}
}

func TestRunJobs_SkipsFailedResolution(t *testing.T) {
	jobs := NewJobs([]string{"::bad::", deckURL1})

	called := 0
	export := func(_ context.Context, j *Job) (*Result, error) {
		called++
		return &Result{data: samplePDF, slides: 1}, nil
	}
	if err := runJobs(context.Background(), jobs, t.TempDir(), export); err != nil {
		t.Fatalf("runJobs: %v", err)
	}
	if called != 1 {
		t.Errorf("export called %d times, want 1", called)
	}
	if jobs[0].State != StateFailed {
		t.Errorf("invalid job state = %v, want StateFailed", jobs[0].State)
	}
	// No title scraped: the file stem falls back to the deck ID.
	if want := filepath.Base(jobs[1].Path); want != "deck-one.pdf" {
		t.Errorf("output name = %q, want deck-one.pdf", want)
	}
}

func TestRunJobs_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory where the output file should go forces the write to fail.
	if err := os.Mkdir(filepath.Join(dir, "deck-one.pdf"), 0o755); err != nil {
		t.Fatal(err)
	}

	jobs := NewJobs([]string{deckURL1, deckURL2})
	export := func(_ context.Context, j *Job) (*Result, error) {
		return &Result{data: samplePDF, slides: 1}, nil
	}
	if err := runJobs(context.Background(), jobs, dir, export); err != nil {
		t.Fatalf("runJobs: %v", err)
	}
	if jobs[0].State != StateFailed || jobs[0].Err == nil {
		t.Errorf("jobs[0] = %v / %v, want failed with error", jobs[0].State, jobs[0].Err)
	}
	// The write failure is scoped to its job.
	if jobs[1].State != StateWritten {
		t.Errorf("jobs[1].State = %v, want StateWritten", jobs[1].State)
	}
}

func TestRunJobs_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := NewJobs([]string{deckURL1})
	export := func(context.Context, *Job) (*Result, error) {
		t.Fatal("export must not run after cancellation")
		return nil, nil
	}
	if err := runJobs(ctx, jobs, t.TempDir(), export); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if jobs[0].State != StateResolved {
		t.Errorf("job state = %v, want untouched StateResolved", jobs[0].State)
	}
}

func TestJobState_String(t *testing.T) {
	states := map[JobState]string{
		StatePending:     "pending",
		StateResolved:    "resolved",
		StateBrowserOpen: "browser-open",
		StateCapturing:   "capturing",
		StateAssembling:  "assembling",
		StateWritten:     "written",
		StateFailed:      "failed",
	}
	for s, want := range states {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(s), s.String(), want)
		}
	}
}
