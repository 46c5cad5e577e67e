// Package factors owns the activity emission factor table: the nested
// category → key → kgCO2e coefficient map that drives the ledger rule engine.
package factors

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Canonical category names.
const (
	CategoryElectricity = "electricity"
	CategoryFuel        = "fuel"
	CategoryTransport   = "transport"
	CategoryWaste       = "waste"
	CategoryWater       = "water"
	CategorySewage      = "sewage"
	CategoryTourism     = "tourism"
)

// Canonical factor keys.
const (
	KeyPerKWh          = "per_kWh"
	KeyDieselPerL      = "diesel_per_l"
	KeyHeatingOilPerL  = "heating_oil_per_l"
	KeyPetrolPerL      = "petrol_per_l"
	KeyCarPerKm        = "car_per_km"
	KeyBusPerPaxKm     = "bus_per_pax_km"
	KeyFerryPerPaxKm   = "ferry_per_pax_km"
	KeyAirPerPaxKm     = "air_per_pax_km"
	KeyMixedPerKg      = "mixed_per_kg"
	KeyRecyclingPerKg  = "recycling_per_kg"
	KeyKWhPerM3        = "kWh_per_m3"
	KeyPerM3           = "per_m3"
	KeyPerVisitorNight = "per_visitor_night"
	fuelKeySuffix      = "_per_l"
)

// Validation errors.
var (
	ErrNegativeFactor = errors.New("emission factor cannot be negative")
	ErrInvalidFactor  = errors.New("emission factor must be a finite number")
	ErrEmptyTable     = errors.New("factor table has no categories")
)

// Table maps category → factor key → coefficient.
type Table map[string]map[string]float64

// FuelKey returns the fuel factor key for a fuel subcategory, e.g. "diesel" → "diesel_per_l".
func FuelKey(subcategory string) string {
	return subcategory + fuelKeySuffix
}

// Lookup returns the coefficient at category/key, or 0 when either is missing.
func (t Table) Lookup(category, key string) float64 {
	keys, ok := t[category]
	if !ok {
		return 0
	}
	return keys[key]
}

// Has reports whether category/key is present.
func (t Table) Has(category, key string) bool {
	keys, ok := t[category]
	if !ok {
		return false
	}
	_, ok = keys[key]
	return ok
}

// Clone returns a deep copy.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for cat, keys := range t {
		inner := make(map[string]float64, len(keys))
		for k, v := range keys {
			inner[k] = v
		}
		out[cat] = inner
	}
	return out
}

// Categories returns the category names sorted.
func (t Table) Categories() []string {
	cats := make([]string, 0, len(t))
	for c := range t {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// Keys returns the factor keys of category sorted.
func (t Table) Keys(category string) []string {
	keys := make([]string, 0, len(t[category]))
	for k := range t[category] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate rejects empty tables and negative or non-finite coefficients.
func (t Table) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTable
	}
	var errs []error
	for _, cat := range t.Categories() {
		for _, key := range t.Keys(cat) {
			v := t[cat][key]
			switch {
			case math.IsNaN(v) || math.IsInf(v, 0):
				errs = append(errs, fmt.Errorf("%w: %s.%s", ErrInvalidFactor, cat, key))
			case v < 0:
				errs = append(errs, fmt.Errorf("%w: %s.%s = %g", ErrNegativeFactor, cat, key, v))
			}
		}
	}
	return errors.Join(errs...)
}

// Default returns the built-in factor table. Values are indicative and meant
// to be replaced with official coefficients through a factors file.
func Default() Table {
	return Table{
		CategoryElectricity: {
			KeyPerKWh: 0.40,
		},
		CategoryFuel: {
			KeyHeatingOilPerL: 2.68,
			KeyDieselPerL:     2.68,
			KeyPetrolPerL:     2.31,
		},
		CategoryTransport: {
			KeyCarPerKm:      0.18,
			KeyBusPerPaxKm:   0.08,
			KeyFerryPerPaxKm: 0.12,
			KeyAirPerPaxKm:   0.13,
		},
		CategoryWaste: {
			KeyMixedPerKg:     1.2,
			KeyRecyclingPerKg: 0.1,
		},
		CategoryWater: {
			KeyKWhPerM3: 3.5,
		},
		CategorySewage: {
			KeyPerM3: 0.5,
		},
		CategoryTourism: {
			KeyPerVisitorNight: 15,
		},
	}
}
