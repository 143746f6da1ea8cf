package seqgen

import "strings"

// Template is the result of scanning example source text.
type Template struct {
	Echo          []string // lines copied to the output, sentinel included
	Saved         []string // template body lines, before substitution
	SentinelFound bool
}

// Include reports whether a line belongs to the template body. Blank lines,
// comments, preprocessor directives, dotted comment continuations and the
// placeholder declaration are excluded.
func Include(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" {
		return false
	}
	switch s[0] {
	case '/', '#', '.':
		return false
	}
	return s != PlaceholderDecl
}

// Extract scans lines up to and including the sentinel.
func Extract(lines []string) Template {
	var t Template
	for _, line := range lines {
		t.Echo = append(t.Echo, line)
		if Include(line) {
			t.Saved = append(t.Saved, line)
		}
		if line == Sentinel {
			t.SentinelFound = true
			break
		}
	}
	return t
}

// SplitLines splits text on "\n". A trailing newline yields a final empty line.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}
