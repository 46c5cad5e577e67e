// Package greenops turns kgCO2e totals into relatable equivalencies
// ("driving ~3,700 km in a petrol car") and owns the carbon unit
// conversions and number formatting shared by every report.
package greenops

import "fmt"

// EquivalencyType represents a category of carbon emission equivalency.
type EquivalencyType int

const (
	// EquivalencyKmDriven converts CO2e to kilometres driven in a petrol car.
	EquivalencyKmDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged converts CO2e to smartphone full charges.
	EquivalencySmartphonesCharged

	// EquivalencyTreeSeedlings converts CO2e to tree seedlings grown for 10 years.
	EquivalencyTreeSeedlings
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyKmDriven:
		return "KmDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// EquivalencyResult represents a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput contains all equivalency results for display.
type EquivalencyOutput struct {
	// InputKg is the normalized input value in kilograms CO2e.
	InputKg float64 `json:"input_kg"`

	Results []EquivalencyResult `json:"results,omitempty"`

	// DisplayText is the prose form used under report totals.
	// Example: "Equivalent to driving ~3,686 km or charging ~80,718 smartphones"
	DisplayText string `json:"display_text,omitempty"`

	// CompactText is the abbreviated form used in table footers and the TUI.
	// Example: "(≈ 3,686 km, 80,718 phones, 11 seedlings)"
	CompactText string `json:"compact_text,omitempty"`

	IsEmpty bool `json:"is_empty"`
}
