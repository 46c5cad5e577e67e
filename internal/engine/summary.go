package engine

import (
	"context"
	"sort"

	"github.com/rshade/isleprint/internal/factors"
	"github.com/rshade/isleprint/internal/greenops"
	"github.com/rshade/isleprint/internal/ledger"
)

const sharePercent = 100

// CategoryTotal is one category's share of a ledger.
type CategoryTotal struct {
	Category string  `json:"category"`
	KgCO2e   float64 `json:"kgco2e"`
	TCO2e    float64 `json:"tco2e"`
	Records  int     `json:"records"`
	SharePct float64 `json:"share_pct"`
}

// Summary aggregates evaluated rows.
type Summary struct {
	TotalKg        float64                    `json:"total_kgco2e"`
	TotalT         float64                    `json:"total_tco2e"`
	MeanT          float64                    `json:"mean_tco2e_per_record"`
	Count          int                        `json:"records"`
	UnmatchedCount int                        `json:"unmatched_records"`
	InvalidCount   int                        `json:"invalid_quantities"`
	ByCategory     []CategoryTotal            `json:"by_category"`
	Equivalency    greenops.EquivalencyOutput `json:"equivalency"`
}

// Summarize totals results overall and per category. Categories are sorted by
// tCO2e descending, ties by name. Shares are 0 when the total is 0.
func Summarize(results []Result) Summary {
	var s Summary
	byCat := make(map[string]*CategoryTotal)
	for _, r := range results {
		s.TotalKg += r.KgCO2e
		if !r.Matched {
			s.UnmatchedCount++
		}
		if !r.QuantityValid {
			s.InvalidCount++
		}
		ct, ok := byCat[r.Category]
		if !ok {
			ct = &CategoryTotal{Category: r.Category}
			byCat[r.Category] = ct
		}
		ct.KgCO2e += r.KgCO2e
		ct.Records++
	}

	s.Count = len(results)
	s.TotalT = greenops.KgToTonnes(s.TotalKg)
	if s.Count > 0 {
		s.MeanT = s.TotalT / float64(s.Count)
	}

	s.ByCategory = make([]CategoryTotal, 0, len(byCat))
	for _, ct := range byCat {
		ct.TCO2e = greenops.KgToTonnes(ct.KgCO2e)
		if s.TotalKg > 0 {
			ct.SharePct = ct.KgCO2e / s.TotalKg * sharePercent
		}
		s.ByCategory = append(s.ByCategory, *ct)
	}
	sort.Slice(s.ByCategory, func(i, j int) bool {
		a, b := s.ByCategory[i], s.ByCategory[j]
		if a.KgCO2e != b.KgCO2e {
			return a.KgCO2e > b.KgCO2e
		}
		return a.Category < b.Category
	})

	s.Equivalency = greenops.CalculateKg(s.TotalKg)
	return s
}

// Report is an evaluated ledger with its summary.
type Report struct {
	Source          string   `json:"source,omitempty"`
	FactorsSource   string   `json:"factors_source"`
	FactorsFallback bool     `json:"factors_fallback"`
	Summary         Summary  `json:"summary"`
	Results         []Result `json:"results"`
}

// BuildReport evaluates rows under the loaded factor table and summarizes them.
func BuildReport(ctx context.Context, rows []ledger.Row, load factors.LoadResult, opts Options) (*Report, error) {
	results, err := Evaluate(ctx, rows, load.Table, opts)
	if err != nil {
		return nil, err
	}
	return &Report{
		FactorsSource:   load.Source,
		FactorsFallback: load.FellBack,
		Summary:         Summarize(results),
		Results:         results,
	}, nil
}
