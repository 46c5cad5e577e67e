package pagination

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rshade/isleprint/internal/engine"
)

// Sort fields accepted by ResultSorter.
const (
	FieldLine     = "line"
	FieldCategory = "category"
	FieldQuantity = "quantity"
	FieldKg       = "kgco2e"
	FieldTonnes   = "tco2e"
	FieldPeriod   = "period"
)

// ResultSorter sorts evaluated ledger rows.
type ResultSorter struct {
	validFields map[string]bool
}

// NewResultSorter creates a sorter with the supported fields.
func NewResultSorter() *ResultSorter {
	return &ResultSorter{
		validFields: map[string]bool{
			FieldLine:     true,
			FieldCategory: true,
			FieldQuantity: true,
			FieldKg:       true,
			FieldTonnes:   true,
			FieldPeriod:   true,
		},
	}
}

// IsValidField checks if the field is valid for sorting.
func (s *ResultSorter) IsValidField(field string) bool {
	return s.validFields[field]
}

// GetValidFields returns all valid sort fields in order.
func (s *ResultSorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Sort returns a sorted copy of results. Ties keep input order.
func (s *ResultSorter) Sort(results []engine.Result, field, order string) ([]engine.Result, error) {
	if !s.IsValidField(field) {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field, strings.Join(s.GetValidFields(), ", "))
	}

	sorted := make([]engine.Result, len(results))
	copy(sorted, results)

	less := lessFunc(field)
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == SortOrderDesc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted, nil
}

func lessFunc(field string) func(a, b engine.Result) bool {
	switch field {
	case FieldCategory:
		return func(a, b engine.Result) bool { return a.Category < b.Category }
	case FieldQuantity:
		return func(a, b engine.Result) bool { return a.Quantity < b.Quantity }
	case FieldKg, FieldTonnes:
		return func(a, b engine.Result) bool { return a.KgCO2e < b.KgCO2e }
	case FieldPeriod:
		return func(a, b engine.Result) bool { return periodKey(a) < periodKey(b) }
	default:
		return func(a, b engine.Result) bool { return a.Line < b.Line }
	}
}

// periodKey orders year then month numerically where possible.
func periodKey(r engine.Result) string {
	return fmt.Sprintf("%8s-%2s", strings.TrimSpace(r.Year), strings.TrimSpace(r.Month))
}
