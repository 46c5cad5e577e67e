package factors

import "strings"

// categoryAliases maps alternative category spellings (including the Greek
// vocabulary of municipal registries) onto canonical names.
//
//nolint:gochecknoglobals // static lookup table
var categoryAliases = map[string]string{
	"ηλεκτρική_ενέργεια": CategoryElectricity,
	"ηλεκτρικη_ενεργεια": CategoryElectricity,
	"καύσιμα":            CategoryFuel,
	"καυσιμα":            CategoryFuel,
	"fuels":              CategoryFuel,
	"μεταφορές":          CategoryTransport,
	"μεταφορες":          CategoryTransport,
	"απόβλητα":           CategoryWaste,
	"αποβλητα":           CategoryWaste,
	"νερό":               CategoryWater,
	"νερο":               CategoryWater,
	"λύματα":             CategorySewage,
	"λυματα":             CategorySewage,
	"τουρισμός":          CategoryTourism,
	"τουρισμος":          CategoryTourism,
}

// keyAliases maps alternative factor key spellings onto canonical keys.
// Keys are scoped per category because some aliases (per_m3) are ambiguous.
//
//nolint:gochecknoglobals // static lookup table
var keyAliases = map[string]map[string]string{
	CategoryElectricity: {
		"kgco2e_ανα_kwh": KeyPerKWh,
		"per_kwh":        KeyPerKWh,
	},
	CategoryFuel: {
		"πετρέλαιο_θέρμανσης_kgco2e_ανα_l": KeyHeatingOilPerL,
		"ντίζελ_kgco2e_ανα_l":              KeyDieselPerL,
		"βενζίνη_kgco2e_ανα_l":             KeyPetrolPerL,
	},
	CategoryTransport: {
		"αυτοκίνητο_kgco2e_ανα_km":         KeyCarPerKm,
		"λεωφορείο_kgco2e_ανα_επιβατοχλμ":  KeyBusPerPaxKm,
		"πλοίο_kgco2e_ανα_επιβάτη_km":      KeyFerryPerPaxKm,
		"αεροπορικό_kgco2e_ανα_επιβάτη_km": KeyAirPerPaxKm,
	},
	CategoryWaste: {
		"συμμικτα_kgco2e_ανα_kg":   KeyMixedPerKg,
		"ανακυκλωση_kgco2e_ανα_kg": KeyRecyclingPerKg,
	},
	CategoryWater: {
		"αφαλατωση_kwh_ανα_m3": KeyKWhPerM3,
		"kwh_per_m3":           KeyKWhPerM3,
	},
	CategorySewage: {
		"kgco2e_ανα_m3": KeyPerM3,
	},
	CategoryTourism: {
		"διανυκτέρευση_kgco2e_ανα_επισκέπτη": KeyPerVisitorNight,
	},
}

//nolint:gochecknoglobals // static lookup table
var canonicalCategories = map[string]struct{}{
	CategoryElectricity: {},
	CategoryFuel:        {},
	CategoryTransport:   {},
	CategoryWaste:       {},
	CategoryWater:       {},
	CategorySewage:      {},
	CategoryTourism:     {},
}

// CanonicalCategory returns the canonical name for a category token.
// Unknown tokens are returned trimmed but otherwise unchanged.
func CanonicalCategory(s string) string {
	s = strings.TrimSpace(s)
	if c, ok := categoryAliases[s]; ok {
		return c
	}
	lower := strings.ToLower(s)
	if _, ok := canonicalCategories[lower]; ok {
		return lower
	}
	if c, ok := categoryAliases[lower]; ok {
		return c
	}
	return s
}

// CanonicalKey returns the canonical factor key for key within category.
// Unknown keys are returned trimmed but otherwise unchanged.
func CanonicalKey(category, key string) string {
	key = strings.TrimSpace(key)
	aliases := keyAliases[category]
	if k, ok := aliases[key]; ok {
		return k
	}
	if k, ok := aliases[strings.ToLower(key)]; ok {
		return k
	}
	return key
}
