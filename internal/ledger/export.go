package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Export column names appended to the input header.
const (
	ColumnKgCO2e = "kgCO2e"
	ColumnTCO2e  = "tCO2e"
)

// ErrLengthMismatch is returned when rows and emission values differ in count.
var ErrLengthMismatch = errors.New("rows and emission values differ in length")

// WriteCSV writes the ledger with two appended columns, kgCO2e and tCO2e.
// kg[i] is the emission value of l.Rows[i]. Rows read from a file keep
// their original fields; rows built in code are rendered from their
// canonical fields under the ledger's language.
func WriteCSV(w io.Writer, l *Ledger, kg []float64) error {
	if len(kg) != len(l.Rows) {
		return fmt.Errorf("%w: %d rows, %d values", ErrLengthMismatch, len(l.Rows), len(kg))
	}

	header := l.Header
	if len(header) == 0 {
		header = CanonicalHeader(l.Language)
	}

	cw := csv.NewWriter(w)
	out := make([]string, 0, len(header)+2)
	out = append(out, header...)
	if err := cw.Write(append(out, ColumnKgCO2e, ColumnTCO2e)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range l.Rows {
		out = out[:0]
		out = append(out, row.fields(len(header))...)
		out = append(out, formatValue(kg[i]), formatValue(kg[i]/1000))
		if err := cw.Write(out); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CanonicalHeader returns the seven ledger column names in lang.
func CanonicalHeader(lang Language) []string {
	h := make([]string, numColumns)
	for c := range numColumns {
		h[c] = HeaderName(c, lang)
	}
	return h
}

func (r Row) fields(width int) []string {
	if len(r.Record) == 0 {
		return []string{
			r.Year, r.Month, r.Category, r.Subcategory, r.Unit,
			formatValue(r.Quantity), r.Notes,
		}
	}
	out := make([]string, width)
	copy(out, r.Record)
	return out
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
