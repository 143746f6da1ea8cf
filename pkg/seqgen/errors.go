package seqgen

import "fmt"

// UsageError reports a mode argument other than "h" or "c".
type UsageError struct {
	Arg string
}

func (e *UsageError) Error() string {
	if e.Arg == "" {
		return "missing mode argument: expected h (header) or c (implementation)"
	}
	return fmt.Sprintf("invalid mode %q: expected h (header) or c (implementation)", e.Arg)
}

// TemplateMalformedError reports a template that never reached the sentinel line.
type TemplateMalformedError struct {
	Lines int // number of lines scanned
}

func (e *TemplateMalformedError) Error() string {
	return fmt.Sprintf("template malformed: sentinel line not found after %d lines (expected %q)", e.Lines, Sentinel)
}
