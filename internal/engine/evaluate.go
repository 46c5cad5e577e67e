package engine

import (
	"context"
	"fmt"

	"github.com/rshade/isleprint/internal/engine/batch"
	"github.com/rshade/isleprint/internal/factors"
	"github.com/rshade/isleprint/internal/greenops"
	"github.com/rshade/isleprint/internal/ledger"
	"github.com/rshade/isleprint/internal/logging"
)

// Result is one evaluated ledger row.
type Result struct {
	ledger.Row

	KgCO2e  float64 `json:"kgco2e"`
	TCO2e   float64 `json:"tco2e"`
	Matched bool    `json:"matched"`
	Rule    string  `json:"rule,omitempty"`
}

// Options tunes Evaluate.
type Options struct {
	// BatchSize is the number of rows per chunk; 0 selects the default.
	BatchSize int

	// Concurrency is the number of chunks evaluated at once; values below 2
	// evaluate sequentially.
	Concurrency int

	// OnProgress, when set, is called after each chunk.
	OnProgress batch.ProgressCallback
}

// Evaluate computes emissions for every row. Results are in input order and
// do not depend on Concurrency. The table is only read.
func Evaluate(ctx context.Context, rows []ledger.Row, table factors.Table, opts Options) ([]Result, error) {
	logger := logging.FromContext(ctx).With().
		Str("component", "engine").
		Str("operation", "Evaluate").
		Int("rows", len(rows)).
		Logger()

	proc := batch.NewProcessorWithDefaults[ledger.Row]()
	if opts.BatchSize > 0 {
		p, err := batch.NewProcessor[ledger.Row](opts.BatchSize)
		if err != nil {
			return nil, fmt.Errorf("configuring evaluation: %w", err)
		}
		proc = p
	}
	if opts.OnProgress != nil {
		proc.WithProgressCallback(opts.OnProgress)
	}

	results := make([]Result, len(rows))
	evaluateChunk := func(_ context.Context, chunk []ledger.Row, offset int) error {
		for i, row := range chunk {
			results[offset+i] = evaluateRow(row, table)
		}
		return nil
	}

	if err := proc.ProcessConcurrent(ctx, rows, evaluateChunk, opts.Concurrency); err != nil {
		return nil, fmt.Errorf("evaluating ledger: %w", err)
	}

	unmatched := 0
	for _, r := range results {
		if !r.Matched {
			unmatched++
			logger.Debug().
				Int("line", r.Line).
				Str("category", r.Category).
				Str("subcategory", r.Subcategory).
				Str("unit", r.Unit).
				Msg("no emission rule matched, counted as zero")
		}
	}
	logger.Debug().Int("unmatched", unmatched).Msg("ledger evaluated")

	return results, nil
}

func evaluateRow(row ledger.Row, table factors.Table) Result {
	row = row.Normalize()
	kg, rule := computeRow(row, table)
	return Result{
		Row:     row,
		KgCO2e:  kg,
		TCO2e:   greenops.KgToTonnes(kg),
		Matched: rule.Name != "",
		Rule:    rule.Name,
	}
}
