package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/isleprint/internal/engine"
	"github.com/rshade/isleprint/internal/ledger"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr string
	}{
		{name: "zero value", params: Params{}},
		{name: "offset mode", params: Params{Limit: 10, Offset: 20}},
		{name: "page mode", params: Params{Page: 2, PageSize: 10}},
		{name: "negative limit", params: Params{Limit: -1}, wantErr: "limit cannot be negative"},
		{name: "negative offset", params: Params{Offset: -1}, wantErr: "offset cannot be negative"},
		{name: "negative page", params: Params{Page: -1}, wantErr: "page cannot be negative"},
		{name: "negative page size", params: Params{PageSize: -1}, wantErr: "page-size cannot be negative"},
		{name: "page with offset", params: Params{Page: 1, PageSize: 5, Offset: 3}, wantErr: "mutually exclusive"},
		{name: "page size alone", params: Params{PageSize: 5}, wantErr: "page must be specified"},
		{name: "page alone", params: Params{Page: 2}, wantErr: "page-size must be specified"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApply(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	tests := []struct {
		name   string
		params Params
		want   []int
	}{
		{name: "disabled", params: Params{}, want: items},
		{name: "limit", params: Params{Limit: 3}, want: []int{1, 2, 3}},
		{name: "offset", params: Params{Offset: 8}, want: []int{9, 10}},
		{name: "limit and offset", params: Params{Limit: 2, Offset: 4}, want: []int{5, 6}},
		{name: "offset past end", params: Params{Offset: 20}, want: []int{}},
		{name: "first page", params: Params{Page: 1, PageSize: 4}, want: []int{1, 2, 3, 4}},
		{name: "last partial page", params: Params{Page: 3, PageSize: 4}, want: []int{9, 10}},
		{name: "page past end is clamped", params: Params{Page: 9, PageSize: 4}, want: []int{9, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.params, items))
		})
	}

	assert.Empty(t, Apply(Params{Limit: 2}, []int{}))
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		expr      string
		wantField string
		wantOrder string
		wantErr   error
	}{
		{expr: "tco2e", wantField: "tco2e", wantOrder: SortOrderDesc},
		{expr: "Category:ASC", wantField: "category", wantOrder: SortOrderAsc},
		{expr: " line : desc ", wantField: "line", wantOrder: SortOrderDesc},
		{expr: "", wantErr: ErrEmptySortField},
		{expr: ":asc", wantErr: ErrEmptySortField},
		{expr: "a:b:c", wantErr: ErrInvalidSortFormat},
		{expr: "tco2e:up", wantErr: ErrInvalidSortOrder},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			field, order, err := ParseSort(tt.expr)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		total  int
		want   Meta
	}{
		{
			name:   "page mode",
			params: Params{Page: 2, PageSize: 10},
			total:  24,
			want:   Meta{CurrentPage: 2, PageSize: 10, TotalPages: 3, TotalItems: 24, HasPrevious: true, HasNext: true},
		},
		{
			name:   "offset mode",
			params: Params{Limit: 10, Offset: 20},
			total:  24,
			want:   Meta{CurrentPage: 3, PageSize: 10, TotalPages: 3, TotalItems: 24, HasPrevious: true},
		},
		{
			name:   "clamped page",
			params: Params{Page: 7, PageSize: 10},
			total:  24,
			want:   Meta{CurrentPage: 3, PageSize: 10, TotalPages: 3, TotalItems: 24, HasPrevious: true},
		},
		{
			name:   "no paging",
			params: Params{},
			total:  5,
			want:   Meta{CurrentPage: 1, PageSize: 5, TotalPages: 1, TotalItems: 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMeta(tt.params, tt.total))
		})
	}

	assert.Equal(t, "Page 2 of 3 (24 rows)", NewMeta(Params{Page: 2, PageSize: 10}, 24).String())
}

func result(line int, year, month, category string, qty, kg float64) engine.Result {
	return engine.Result{
		Row: ledger.Row{
			Line:          line,
			Year:          year,
			Month:         month,
			Category:      category,
			Quantity:      qty,
			QuantityValid: true,
		},
		KgCO2e: kg,
		TCO2e:  kg / 1000,
	}
}

func TestResultSorter(t *testing.T) {
	results := []engine.Result{
		result(2, "2024", "2", "water", 10, 14),
		result(3, "2023", "12", "electricity", 100, 40),
		result(4, "2024", "10", "fuel", 5, 14),
		result(5, "2024", "1", "waste", 1, 0),
	}
	lines := func(rs []engine.Result) []int {
		out := make([]int, len(rs))
		for i, r := range rs {
			out[i] = r.Line
		}
		return out
	}

	s := NewResultSorter()
	tests := []struct {
		field, order string
		want         []int
	}{
		{FieldTonnes, SortOrderDesc, []int{3, 2, 4, 5}},
		{FieldKg, SortOrderAsc, []int{5, 2, 4, 3}},
		{FieldCategory, SortOrderAsc, []int{3, 4, 5, 2}},
		{FieldQuantity, SortOrderDesc, []int{3, 2, 4, 5}},
		{FieldPeriod, SortOrderAsc, []int{3, 5, 2, 4}},
		{FieldLine, SortOrderDesc, []int{5, 4, 3, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.field+":"+tt.order, func(t *testing.T) {
			got, err := s.Sort(results, tt.field, tt.order)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lines(got))
		})
	}

	assert.Equal(t, []int{2, 3, 4, 5}, lines(results), "input is not modified")

	_, err := s.Sort(results, "savings", SortOrderAsc)
	require.ErrorIs(t, err, ErrInvalidSortField)
	assert.Contains(t, s.GetValidFields(), FieldTonnes)
}
