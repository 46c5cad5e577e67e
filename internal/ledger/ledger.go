// Package ledger reads and writes municipal activity ledgers: delimited text
// files with one activity record (fuel burned, electricity consumed, waste
// collected, ...) per line.
//
// Headers may be English or Greek. Category, subcategory and unit tokens
// are normalized onto a canonical English vocabulary at read time; the
// original record is kept so exports reproduce the input columns verbatim.
package ledger

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Read errors.
var (
	ErrLedgerUnavailable = errors.New("ledger file unavailable")
	ErrMissingColumn     = errors.New("ledger is missing a required column")
	ErrEmptyLedger       = errors.New("ledger has no header row")
)

// Language identifies the header vocabulary of a ledger.
type Language string

// Header languages.
const (
	LanguageEnglish Language = "en"
	LanguageGreek   Language = "el"
)

// Column identifies a ledger field.
type Column int

// Ledger columns in canonical order.
const (
	ColYear Column = iota
	ColMonth
	ColCategory
	ColSubcategory
	ColUnit
	ColQuantity
	ColNotes
	numColumns
)

//nolint:gochecknoglobals // static header names
var (
	englishHeaders = [numColumns]string{"year", "month", "category", "subcategory", "unit", "quantity", "notes"}
	greekHeaders   = [numColumns]string{"ετος", "μηνας", "κατηγορια", "υποκατηγορια", "μονάδα", "ποσοτητα", "σημειωσεις"}

	headerAliases = map[string]Column{
		"έτος":         ColYear,
		"μήνας":        ColMonth,
		"κατηγορία":    ColCategory,
		"υποκατηγορία": ColSubcategory,
		"μοναδα":       ColUnit,
		"ποσότητα":     ColQuantity,
		"σημειώσεις":   ColNotes,
		"qty":          ColQuantity,
		"amount":       ColQuantity,
		"note":         ColNotes,
	}

	requiredColumns = []Column{ColCategory, ColUnit, ColQuantity}
)

// SampleCSV is the bundled sample ledger.
//
//go:embed sample_activity_data.csv
var SampleCSV []byte

// String returns the English header name.
func (c Column) String() string {
	if c < 0 || c >= numColumns {
		return fmt.Sprintf("Column(%d)", int(c))
	}
	return englishHeaders[c]
}

// HeaderName returns the header of c in lang.
func HeaderName(c Column, lang Language) string {
	if lang == LanguageGreek {
		return greekHeaders[c]
	}
	return englishHeaders[c]
}

// Row is one activity record. Category, Subcategory and Unit hold
// canonical tokens.
type Row struct {
	Line          int     `json:"line,omitempty"`
	Year          string  `json:"year,omitempty"`
	Month         string  `json:"month,omitempty"`
	Category      string  `json:"category"`
	Subcategory   string  `json:"subcategory,omitempty"`
	Unit          string  `json:"unit"`
	Quantity      float64 `json:"quantity"`
	QuantityValid bool    `json:"quantity_valid"`
	Notes         string  `json:"notes,omitempty"`

	// Record is the row as read, aligned with Ledger.Header.
	Record []string `json:"-"`
}

// Normalize returns the row with category, subcategory and unit mapped onto
// canonical tokens. It is idempotent.
func (r Row) Normalize() Row {
	r.Category = NormalizeCategory(r.Category)
	r.Subcategory = NormalizeSubcategory(r.Subcategory)
	r.Unit = NormalizeUnit(r.Unit)
	return r
}

// Ledger is a parsed ledger file.
type Ledger struct {
	Header   []string
	Language Language
	Rows     []Row
}

// ReadFile opens and reads the ledger at path. Any failure to open the file
// wraps ErrLedgerUnavailable.
func ReadFile(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLedgerUnavailable, err)
	}
	defer f.Close()
	return Read(f)
}

// ReadSample parses SampleCSV.
func ReadSample() (*Ledger, error) {
	return Read(bytes.NewReader(SampleCSV))
}

// Read parses a delimited ledger. The delimiter (',' or ';') is detected
// from the header line and a UTF-8 byte order mark is ignored. Rows whose
// fields are all blank are skipped.
func Read(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = detectDelimiter(data)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyLedger
	}
	if err != nil {
		return nil, fmt.Errorf("reading ledger header: %w", err)
	}

	index, lang, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	l := &Ledger{Header: header, Language: lang}
	for {
		record, readErr := cr.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("reading ledger: %w", readErr)
		}
		if blank(record) {
			continue
		}
		line, _ := cr.FieldPos(0)
		l.Rows = append(l.Rows, parseRow(record, index, line))
	}
	return l, nil
}

// InvalidQuantities returns the rows whose quantity could not be parsed.
func (l *Ledger) InvalidQuantities() []Row {
	var out []Row
	for _, r := range l.Rows {
		if !r.QuantityValid {
			out = append(out, r)
		}
	}
	return out
}

// ParseQuantity parses a quantity cell. Blank, non-numeric, negative and
// non-finite values report ok=false. A single comma with no dot is read as a
// decimal comma, so "1,250" is 1.25; thousands separators are not accepted.
func ParseQuantity(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		v, err = strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	}
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}

func parseRow(record []string, index [numColumns]int, line int) Row {
	field := func(c Column) string {
		i := index[c]
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	qty, ok := ParseQuantity(field(ColQuantity))
	row := Row{
		Line:          line,
		Year:          field(ColYear),
		Month:         field(ColMonth),
		Category:      field(ColCategory),
		Subcategory:   field(ColSubcategory),
		Unit:          field(ColUnit),
		Quantity:      qty,
		QuantityValid: ok,
		Notes:         field(ColNotes),
		Record:        record,
	}
	return row.Normalize()
}

func mapHeader(header []string) ([numColumns]int, Language, error) {
	var index [numColumns]int
	for i := range index {
		index[i] = -1
	}
	lang := LanguageEnglish

	for pos, raw := range header {
		name := strings.ToLower(strings.TrimSpace(raw))
		col, greek, ok := lookupHeader(name)
		if !ok || index[col] >= 0 {
			continue
		}
		index[col] = pos
		if greek && col == ColCategory {
			lang = LanguageGreek
		}
	}

	var missing []string
	for _, c := range requiredColumns {
		if index[c] < 0 {
			missing = append(missing, c.String())
		}
	}
	if len(missing) > 0 {
		return index, lang, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return index, lang, nil
}

func lookupHeader(name string) (Column, bool, bool) {
	for c := range numColumns {
		if englishHeaders[c] == name {
			return c, false, true
		}
		if greekHeaders[c] == name {
			return c, true, true
		}
	}
	if c, ok := headerAliases[name]; ok {
		return c, !isASCII(name), true
	}
	return 0, false, false
}

func detectDelimiter(data []byte) rune {
	first := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		first = data[:i]
	}
	if bytes.Count(first, []byte(";")) > bytes.Count(first, []byte(",")) {
		return ';'
	}
	return ','
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func isASCII(s string) bool {
	for i := range len(s) {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
