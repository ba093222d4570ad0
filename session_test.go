package slidespdf

import (
	"testing"

	"github.com/chromedp/chromedp/kb"
)

func TestStepKeys(t *testing.T) {
	tests := []struct {
		cur, target int
		wantKey     string
		wantSteps   int
	}{
		{1, 1, kb.ArrowRight, 0},
		{1, 2, kb.ArrowRight, 1},
		{1, 10, kb.ArrowRight, 9},
		{5, 3, kb.ArrowLeft, 2},
		{10, 1, kb.ArrowLeft, 9},
	}
	for _, tc := range tests {
		key, steps := stepKeys(tc.cur, tc.target)
		if key != tc.wantKey || steps != tc.wantSteps {
			t.Errorf("stepKeys(%d, %d) = (%q, %d), want (%q, %d)",
				tc.cur, tc.target, key, steps, tc.wantKey, tc.wantSteps)
		}
	}
}

func TestParseSlideTotal(t *testing.T) {
	valid := []struct {
		text string
		want int
	}{
		{"12", 12},
		{" 12 ", 12},
		{"of 34", 34},
		{"Slide count: 7 total", 7},
	}
	for _, tc := range valid {
		n, ok := parseSlideTotal(tc.text)
		if !ok || n != tc.want {
			t.Errorf("parseSlideTotal(%q) = (%d, %v), want (%d, true)", tc.text, n, ok, tc.want)
		}
	}

	for _, text := range []string{"", "no digits here", "0"} {
		if n, ok := parseSlideTotal(text); ok {
			t.Errorf("parseSlideTotal(%q) = (%d, true), want not ok", text, n)
		}
	}
}

func TestGoToSlide_OutOfRange(t *testing.T) {
	s := &session{ref: DeckRef{ID: "abc"}, slide: 1, total: 5}

	for _, n := range []int{0, -1, 6} {
		err := s.goToSlide(n)
		if err == nil {
			t.Errorf("goToSlide(%d) succeeded, want error", n)
			continue
		}
		ne, ok := err.(*NavigationError)
		if !ok {
			t.Errorf("goToSlide(%d) error type = %T, want *NavigationError", n, err)
			continue
		}
		if ne.Slide != n {
			t.Errorf("NavigationError.Slide = %d, want %d", ne.Slide, n)
		}
	}
}
