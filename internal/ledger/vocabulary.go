package ledger

import (
	"strings"

	"github.com/rshade/isleprint/internal/factors"
)

// Canonical subcategory tokens.
const (
	SubDiesel         = "diesel"
	SubHeatingOil     = "heating_oil"
	SubPetrol         = "petrol"
	SubOnIsland       = "on_island"
	SubFerry          = "ferry"
	SubFlight         = "flight"
	SubBus            = "bus"
	SubMixed          = "mixed"
	SubRecycling      = "recycling"
	SubDesalination   = "desalination"
	SubOvernightStays = "overnight_stays"
)

// Canonical unit tokens.
const (
	UnitKWh          = "kWh"
	UnitLitres       = "litres"
	UnitKm           = "km"
	UnitPassengerKm  = "passenger-km"
	UnitKg           = "kg"
	UnitCubicMetres  = "m³"
	UnitVisitorNight = "visitor-night"
)

//nolint:gochecknoglobals // static lookup table
var subcategoryAliases = map[string]string{
	SubDiesel:             SubDiesel,
	SubHeatingOil:         SubHeatingOil,
	SubPetrol:             SubPetrol,
	SubOnIsland:           SubOnIsland,
	SubFerry:              SubFerry,
	SubFlight:             SubFlight,
	SubBus:                SubBus,
	SubMixed:              SubMixed,
	SubRecycling:          SubRecycling,
	SubDesalination:       SubDesalination,
	SubOvernightStays:     SubOvernightStays,
	"ντίζελ":              SubDiesel,
	"ντιζελ":              SubDiesel,
	"πετρέλαιο_θέρμανσης": SubHeatingOil,
	"πετρελαιο_θερμανσης": SubHeatingOil,
	"heating oil":         SubHeatingOil,
	"heating-oil":         SubHeatingOil,
	"βενζίνη":             SubPetrol,
	"βενζινη":             SubPetrol,
	"gasoline":            SubPetrol,
	"εντος_νησιού":        SubOnIsland,
	"εντος_νησιου":        SubOnIsland,
	"εντός_νησιού":        SubOnIsland,
	"on-island":           SubOnIsland,
	"πλοίο":               SubFerry,
	"πλοιο":               SubFerry,
	"αεροπορικά":          SubFlight,
	"αεροπορικα":          SubFlight,
	"air":                 SubFlight,
	"λεωφορείο":           SubBus,
	"λεωφορειο":           SubBus,
	"συμμικτα":            SubMixed,
	"σύμμεικτα":           SubMixed,
	"ανακυκλωση":          SubRecycling,
	"ανακύκλωση":          SubRecycling,
	"αφαλάτωση":           SubDesalination,
	"αφαλατωση":           SubDesalination,
	"διανυκτερεύσεις":     SubOvernightStays,
	"διανυκτερευσεις":     SubOvernightStays,
	"overnight stays":     SubOvernightStays,
}

//nolint:gochecknoglobals // static lookup table
var unitAliases = map[string]string{
	"kwh":              UnitKWh,
	"l":                UnitLitres,
	"lt":               UnitLitres,
	"litre":            UnitLitres,
	"litres":           UnitLitres,
	"liter":            UnitLitres,
	"liters":           UnitLitres,
	"λίτρα":            UnitLitres,
	"km":               UnitKm,
	"χλμ":              UnitKm,
	"kg":               UnitKg,
	"κιλά":             UnitKg,
	"m3":               UnitCubicMetres,
	"m^3":              UnitCubicMetres,
	"m³":               UnitCubicMetres,
	"επιβάτης_km":      UnitPassengerKm,
	"επιβατης_km":      UnitPassengerKm,
	"επιβατοχλμ":       UnitPassengerKm,
	"pax-km":           UnitPassengerKm,
	"pkm":              UnitPassengerKm,
	"passenger_km":     UnitPassengerKm,
	"passenger-km":     UnitPassengerKm,
	"επισκέπτης_νύχτα": UnitVisitorNight,
	"επισκεπτης_νυχτα": UnitVisitorNight,
	"visitor_night":    UnitVisitorNight,
	"visitor-night":    UnitVisitorNight,
}

// NormalizeCategory maps a category token onto its canonical name.
func NormalizeCategory(s string) string {
	return factors.CanonicalCategory(s)
}

// NormalizeSubcategory maps a subcategory token onto its canonical name.
// Unknown tokens are returned trimmed.
func NormalizeSubcategory(s string) string {
	return lookupAlias(subcategoryAliases, s)
}

// NormalizeUnit maps a unit token onto its canonical spelling.
// Unknown tokens are returned trimmed.
func NormalizeUnit(s string) string {
	return lookupAlias(unitAliases, s)
}

func lookupAlias(aliases map[string]string, s string) string {
	s = strings.TrimSpace(s)
	if v, ok := aliases[s]; ok {
		return v
	}
	if v, ok := aliases[strings.ToLower(s)]; ok {
		return v
	}
	return s
}
