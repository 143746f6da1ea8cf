// Package view provides output formatting for seqgen commands.
package view

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Format represents an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
	FormatHTML  Format = "html"
)

// ValidFormats returns the accepted --output values.
func ValidFormats() []string {
	return []string{string(FormatTable), string(FormatJSON), string(FormatPlain), string(FormatHTML)}
}

// ValidateFormat checks an --output value. Empty means table.
func ValidateFormat(format string) error {
	if format == "" {
		return nil
	}
	for _, f := range ValidFormats() {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid output format %q: must be one of %s", format, strings.Join(ValidFormats(), ", "))
}

// htmlRenderer turns GFM tables into HTML reports.
var htmlRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// Renderer renders data in a specific format.
type Renderer struct {
	format  Format
	writer  io.Writer
	noColor bool
}

// NewRenderer creates a new renderer with the specified format.
func NewRenderer(format Format, noColor bool) *Renderer {
	if noColor {
		color.NoColor = true
	}
	if format == "" {
		format = FormatTable
	}
	return &Renderer{
		format:  format,
		writer:  os.Stdout,
		noColor: noColor,
	}
}

// SetWriter sets the output writer.
func (r *Renderer) SetWriter(w io.Writer) {
	r.writer = w
}

// Format returns the renderer's output format.
func (r *Renderer) Format() Format {
	return r.format
}

// RenderTable renders data as a table.
func (r *Renderer) RenderTable(headers []string, rows [][]string) error {
	switch r.format {
	case FormatJSON:
		return r.renderTableAsJSON(headers, rows)
	case FormatPlain:
		r.renderTableAsPlain(rows)
		return nil
	case FormatHTML:
		return r.renderTableAsHTML(headers, rows)
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, val := range row {
			if i < len(widths) && len(val) > widths[i] {
				widths[i] = len(val)
			}
		}
	}

	// Columns are right-aligned and separated by a single space
	r.renderAligned(widths, headers)
	for _, row := range rows {
		r.renderAligned(widths, row)
	}
	return nil
}

func (r *Renderer) renderAligned(widths []int, row []string) {
	for i, val := range row {
		if i >= len(widths) {
			break
		}
		if i > 0 {
			fmt.Fprint(r.writer, " ")
		}
		fmt.Fprintf(r.writer, "%*s", widths[i], val)
	}
	fmt.Fprintln(r.writer)
}

func (r *Renderer) renderTableAsJSON(headers []string, rows [][]string) error {
	result := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		item := make(map[string]string)
		for i, header := range headers {
			if i < len(row) {
				item[strings.ToLower(header)] = row[i]
			}
		}
		result = append(result, item)
	}
	return r.RenderJSON(result)
}

func (r *Renderer) renderTableAsPlain(rows [][]string) {
	for _, row := range rows {
		fmt.Fprintln(r.writer, strings.Join(row, "\t"))
	}
}

func (r *Renderer) renderTableAsHTML(headers []string, rows [][]string) error {
	var md bytes.Buffer
	writeMarkdownRow(&md, headers)
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	writeMarkdownRow(&md, sep)
	for _, row := range rows {
		cells := make([]string, len(headers))
		copy(cells, row)
		writeMarkdownRow(&md, cells)
	}

	var out bytes.Buffer
	if err := htmlRenderer.Convert(md.Bytes(), &out); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}
	_, err := r.writer.Write(out.Bytes())
	return err
}

func writeMarkdownRow(w *bytes.Buffer, cells []string) {
	w.WriteString("|")
	for _, c := range cells {
		c = strings.ReplaceAll(c, "|", `\|`)
		if c == "" {
			c = " "
		}
		w.WriteString(" " + c + " |")
	}
	w.WriteString("\n")
}

// RenderJSON renders an object as JSON.
func (r *Renderer) RenderJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(r.writer, string(data))
	return nil
}

// RenderText renders plain text.
func (r *Renderer) RenderText(text string) {
	fmt.Fprintln(r.writer, text)
}

// Success prints a success message.
func (r *Renderer) Success(msg string) {
	green := color.New(color.FgGreen)
	_, _ = green.Fprintln(r.writer, "✓ "+msg)
}

// Error prints an error message.
func (r *Renderer) Error(msg string) {
	red := color.New(color.FgRed)
	_, _ = red.Fprintln(r.writer, "✗ "+msg)
}

// Dim prints a de-emphasized message.
func (r *Renderer) Dim(msg string) {
	dim := color.New(color.Faint)
	_, _ = dim.Fprintln(r.writer, msg)
}
