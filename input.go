package slidespdf

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// InputKind tags how a --slides argument is interpreted.
type InputKind int

const (
	// KindURL means the argument is a single presentation URL.
	KindURL InputKind = iota
	// KindListFile means the argument is a path to a text file with
	// one presentation URL per line.
	KindListFile
)

// ClassifyInput decides once, deterministically, whether arg is a
// single URL or a list-file path: anything that parses as an absolute
// http(s) URL is a URL, everything else is treated as a file path.
func ClassifyInput(arg string) InputKind {
	u, err := url.Parse(arg)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return KindURL
	}
	return KindListFile
}

// ResolveInput expands arg into the ordered list of candidate
// presentation URLs to process. For a list file, each non-blank line
// is one candidate, in file order; candidates are not validated here
// (validation happens per job, so one bad line cannot sink the batch).
//
// Returns [ErrMissingInput] when arg is empty, and an error when a
// list file is unreadable or contains no candidates.
func ResolveInput(arg string) ([]string, error) {
	if arg == "" {
		return nil, ErrMissingInput
	}
	if ClassifyInput(arg) == KindURL {
		return []string{arg}, nil
	}

	f, err := os.Open(arg)
	if err != nil {
		return nil, fmt.Errorf("slidespdf: opening list file: %w", err)
	}
	defer f.Close()

	var candidates []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		candidates = append(candidates, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("slidespdf: reading list file %s: %w", arg, err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("slidespdf: list file %s: %w", arg, ErrMissingInput)
	}
	return candidates, nil
}
