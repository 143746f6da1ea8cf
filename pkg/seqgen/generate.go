package seqgen

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type options struct {
	lenient bool
}

// Option configures Generate and Transpile.
type Option func(*options)

// WithLenient accepts templates that never reach the sentinel line and
// emits a macro from whatever lines were saved.
func WithLenient() Option {
	return func(o *options) { o.lenient = true }
}

// Generate converts template text into the echoed example followed by its macro.
func Generate(mode Mode, input string, opts ...Option) (string, error) {
	var b strings.Builder
	if err := Transpile(&b, strings.NewReader(input), mode, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Transpile reads a whole template from r and writes the generated file to w.
// Nothing is written when the mode is invalid or the template is malformed.
func Transpile(w io.Writer, r io.Reader, mode Mode, opts ...Option) error {
	if _, err := ParseMode(string(mode)); err != nil {
		return err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	lines := SplitLines(string(data))
	tmpl := Extract(lines)
	if !tmpl.SentinelFound && !o.lenient {
		return &TemplateMalformedError{Lines: len(lines)}
	}

	bw := bufio.NewWriter(w)
	writeTemplate(bw, mode, tmpl)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func writeTemplate(w *bufio.Writer, mode Mode, tmpl Template) {
	for _, line := range tmpl.Echo {
		w.WriteString(line)
		w.WriteByte('\n')
	}

	w.WriteByte('\n')
	fmt.Fprintf(w, "#define %s(%s, %s)%s\n", mode.MacroName(), TypeParam, SeqParam, continuation)
	for _, line := range MacroBody(tmpl.Saved) {
		w.WriteString(line)
		w.WriteByte('\n')
	}

	w.WriteByte('\n')
	if mode == ModeHeader {
		w.WriteString(HeaderGuardClose)
		w.WriteByte('\n')
	}
}

// MacroBody substitutes and indents saved lines, continuing every line but the last.
func MacroBody(saved []string) []string {
	body := make([]string, 0, len(saved))
	for i, line := range saved {
		out := bodyIndent + Substitute(line)
		if i < len(saved)-1 {
			out += continuation
		}
		body = append(body, out)
	}
	return body
}
