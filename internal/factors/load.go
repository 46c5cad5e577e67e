package factors

import (
	"fmt"
	"strings"
)

// SourceDefault names the built-in table in LoadResult.Source.
const SourceDefault = "built-in defaults"

// LoadResult is the outcome of Load. Load never fails: when the file cannot
// be used the built-in table is returned with FellBack set and Warning
// describing the problem.
type LoadResult struct {
	Table    Table
	Source   string
	FellBack bool
	Warning  error
}

// Load reads the factors file at path. An empty path selects the built-in
// table without a warning.
func Load(path string) LoadResult {
	if strings.TrimSpace(path) == "" {
		return LoadResult{Table: Default(), Source: SourceDefault}
	}

	table, err := ParseFile(path)
	if err == nil {
		err = table.Validate()
	}
	if err != nil {
		return LoadResult{
			Table:    Default(),
			Source:   SourceDefault,
			FellBack: true,
			Warning:  fmt.Errorf("invalid factors file %s, using defaults: %w", path, err),
		}
	}
	return LoadResult{Table: table, Source: path}
}
