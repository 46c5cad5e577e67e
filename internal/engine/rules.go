package engine

import (
	"github.com/rshade/isleprint/internal/factors"
	"github.com/rshade/isleprint/internal/ledger"
)

// Rule converts one kind of activity record into kgCO2e. An empty
// Subcategory matches any subcategory.
type Rule struct {
	Name        string
	Category    string
	Subcategory string
	Unit        string
	Formula     string
	compute     func(qty float64, t factors.Table) float64
}

// Matches reports whether the (already normalized) row falls under r.
func (r Rule) Matches(row ledger.Row) bool {
	if row.Category != r.Category || row.Unit != r.Unit {
		return false
	}
	return r.Subcategory == "" || row.Subcategory == r.Subcategory
}

// Apply returns the row's emissions under r.
func (r Rule) Apply(row ledger.Row, t factors.Table) float64 {
	return r.compute(row.Quantity, t)
}

func scaled(category, key string) func(float64, factors.Table) float64 {
	return func(qty float64, t factors.Table) float64 {
		return qty * t.Lookup(category, key)
	}
}

func fuelRule(sub string) Rule {
	key := factors.FuelKey(sub)
	return Rule{
		Name:        "fuel/" + sub,
		Category:    factors.CategoryFuel,
		Subcategory: sub,
		Unit:        ledger.UnitLitres,
		Formula:     "quantity × fuel." + key,
		compute:     scaled(factors.CategoryFuel, key),
	}
}

func transportRule(sub, unit, key string) Rule {
	return Rule{
		Name:        "transport/" + sub,
		Category:    factors.CategoryTransport,
		Subcategory: sub,
		Unit:        unit,
		Formula:     "quantity × transport." + key,
		compute:     scaled(factors.CategoryTransport, key),
	}
}

func wasteRule(sub, key string) Rule {
	return Rule{
		Name:        "waste/" + sub,
		Category:    factors.CategoryWaste,
		Subcategory: sub,
		Unit:        ledger.UnitKg,
		Formula:     "quantity × waste." + key,
		compute:     scaled(factors.CategoryWaste, key),
	}
}

// Rules returns the ordered rule list. The first matching rule wins.
func Rules() []Rule {
	return []Rule{
		{
			Name:     "electricity",
			Category: factors.CategoryElectricity,
			Unit:     ledger.UnitKWh,
			Formula:  "quantity × electricity." + factors.KeyPerKWh,
			compute:  scaled(factors.CategoryElectricity, factors.KeyPerKWh),
		},
		fuelRule(ledger.SubDiesel),
		fuelRule(ledger.SubHeatingOil),
		fuelRule(ledger.SubPetrol),
		transportRule(ledger.SubOnIsland, ledger.UnitKm, factors.KeyCarPerKm),
		transportRule(ledger.SubFerry, ledger.UnitPassengerKm, factors.KeyFerryPerPaxKm),
		transportRule(ledger.SubFlight, ledger.UnitPassengerKm, factors.KeyAirPerPaxKm),
		transportRule(ledger.SubBus, ledger.UnitPassengerKm, factors.KeyBusPerPaxKm),
		wasteRule(ledger.SubMixed, factors.KeyMixedPerKg),
		wasteRule(ledger.SubRecycling, factors.KeyRecyclingPerKg),
		{
			Name:        "water/desalination",
			Category:    factors.CategoryWater,
			Subcategory: ledger.SubDesalination,
			Unit:        ledger.UnitCubicMetres,
			Formula:     "quantity × water." + factors.KeyKWhPerM3 + " × electricity." + factors.KeyPerKWh,
			compute: func(qty float64, t factors.Table) float64 {
				kwh := qty * t.Lookup(factors.CategoryWater, factors.KeyKWhPerM3)
				return kwh * t.Lookup(factors.CategoryElectricity, factors.KeyPerKWh)
			},
		},
		{
			Name:     "sewage",
			Category: factors.CategorySewage,
			Unit:     ledger.UnitCubicMetres,
			Formula:  "quantity × sewage." + factors.KeyPerM3,
			compute:  scaled(factors.CategorySewage, factors.KeyPerM3),
		},
		{
			Name:        "tourism/overnight_stays",
			Category:    factors.CategoryTourism,
			Subcategory: ledger.SubOvernightStays,
			Unit:        ledger.UnitVisitorNight,
			Formula:     "quantity × tourism." + factors.KeyPerVisitorNight,
			compute:     scaled(factors.CategoryTourism, factors.KeyPerVisitorNight),
		},
	}
}

//nolint:gochecknoglobals // immutable rule list built once
var defaultRules = Rules()

// Match returns the first rule the row satisfies. The row is normalized first.
func Match(row ledger.Row) (Rule, bool) {
	row = row.Normalize()
	for _, r := range defaultRules {
		if r.Matches(row) {
			return r, true
		}
	}
	return Rule{}, false
}

// ComputeRowEmissions returns the row's kgCO2e under table. Rows matching no
// rule, and rules whose factor is missing from table, yield 0. The result is
// never negative.
func ComputeRowEmissions(row ledger.Row, table factors.Table) float64 {
	kg, _ := computeRow(row, table)
	return kg
}

func computeRow(row ledger.Row, table factors.Table) (float64, Rule) {
	row = row.Normalize()
	rule, ok := Match(row)
	if !ok {
		return 0, Rule{}
	}
	return max(rule.Apply(row, table), 0), rule
}
