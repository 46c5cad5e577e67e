package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/isleprint/internal/report"
)

// ErrPDFToTerminal is returned when PDF output would be written to a terminal.
var ErrPDFToTerminal = errors.New("pdf output needs --out FILE or a redirected stdout")

// outputFlags are shared by the rendering commands.
type outputFlags struct {
	format string
	out    string
}

func (o *outputFlags) register(cmd *cobra.Command, formats []report.Format) {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	cmd.Flags().StringVarP(&o.format, "output", "o", "", fmt.Sprintf("output format (%s)", strings.Join(names, "|")))
	cmd.Flags().StringVar(&o.out, "out", "", "write output to FILE instead of stdout")
}

// resolve picks the output format. An explicit --output must be one of
// allowed; a configured default that the command cannot render falls back
// to table.
func (o *outputFlags) resolve(configured string, allowed []report.Format) (report.Format, error) {
	if o.format != "" {
		f, err := report.ParseFormat(o.format)
		if err != nil {
			return "", err
		}
		if !slices.Contains(allowed, f) {
			return "", fmt.Errorf("%w: %q", report.ErrUnsupportedFormat, o.format)
		}
		return f, nil
	}
	f, err := report.ParseFormat(configured)
	if err != nil || !slices.Contains(allowed, f) {
		return report.FormatTable, nil
	}
	return f, nil
}

// writer opens the destination. The returned close func must always be called.
func (o *outputFlags) writer(cmd *cobra.Command, format report.Format) (io.Writer, func() error, error) {
	if o.out == "" {
		w := cmd.OutOrStdout()
		if format == report.FormatPDF {
			if f, ok := w.(*os.File); ok && isTerminal(f) {
				return nil, nil, ErrPDFToTerminal
			}
		}
		return w, func() error { return nil }, nil
	}
	f, err := os.Create(o.out)
	if err != nil {
		return nil, nil, fmt.Errorf("creating %s: %w", o.out, err)
	}
	return f, f.Close, nil
}

// render writes through fn to the resolved destination and reports the file
// when --out was used.
func (o *outputFlags) render(cmd *cobra.Command, format report.Format, fn func(io.Writer) error) error {
	w, closeFn, err := o.writer(cmd, format)
	if err != nil {
		return err
	}
	renderErr := fn(w)
	if closeErr := closeFn(); renderErr == nil {
		renderErr = closeErr
	}
	if renderErr != nil {
		return renderErr
	}
	if o.out != "" {
		cmd.PrintErrf("Wrote %s\n", o.out)
	}
	return nil
}

func styledOutput(cmd *cobra.Command, o *outputFlags) bool {
	return o.out == "" && report.IsTerminal(cmd.OutOrStdout())
}

// isInteractiveTerminal reports whether both stdin and the command's output
// are terminals.
func isInteractiveTerminal(cmd *cobra.Command) bool {
	out, ok := cmd.OutOrStdout().(*os.File)
	return ok && isTerminal(out) && isTerminal(os.Stdin)
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
