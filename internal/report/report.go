// Package report renders traveler summaries, ledger reports and factor
// tables as terminal tables, JSON, NDJSON, CSV, YAML or PDF.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Format is an output encoding.
type Format string

// Supported formats. Not every renderer supports every format.
const (
	FormatTable  Format = "table"
	FormatJSON   Format = "json"
	FormatNDJSON Format = "ndjson"
	FormatCSV    Format = "csv"
	FormatPDF    Format = "pdf"
	FormatYAML   Format = "yaml"
)

// Rendering defaults.
const (
	DefaultPrecision = 2
	tonnePrecision   = 3
	tabwriterPadding = 2
	defaultBarWidth  = 40
)

// ErrUnsupportedFormat is returned when a renderer cannot produce a format.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ParseFormat converts a flag value into a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatTable, FormatJSON, FormatNDJSON, FormatCSV, FormatPDF, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatNDJSON:
		return "application/x-ndjson"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	case FormatYAML:
		return "application/yaml"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Options tunes rendering.
type Options struct {
	Format    Format
	Precision int

	// Styled enables lipgloss colors in table output.
	Styled bool
}

func (o Options) precision() int {
	if o.Precision <= 0 {
		return DefaultPrecision
	}
	return o.Precision
}

func (o Options) format() Format {
	if o.Format == "" {
		return FormatTable
	}
	return o.Format
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int on supported platforms
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func writeNDJSON[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	for i, item := range items {
		if err := enc.Encode(item); err != nil {
			return fmt.Errorf("encoding NDJSON line %d: %w", i+1, err)
		}
	}
	return nil
}
