package greenops

// Equivalency divisors: equivalency = kgCO2e / factor.
const (
	// PetrolCarKmFactor is kgCO2e per km for a petrol car, matching the
	// "Car (petrol)" on-island vehicle factor.
	PetrolCarKmFactor = 0.18

	// SmartphoneChargeFactor is kgCO2e per full smartphone charge (EPA 2024).
	SmartphoneChargeFactor = 0.00822

	// TreeSeedlingFactor is kgCO2e absorbed by one urban tree seedling grown
	// for 10 years (EPA 2024).
	TreeSeedlingFactor = 60.0
)

// Unit conversion constants for normalizing carbon values to kilograms.
const (
	GramsToKg  = 0.001
	KgToKg     = 1.0
	TonsToKg   = 1000.0
	PoundsToKg = 0.453592
)

// Display thresholds.
const (
	// MinEquivalencyThresholdKg is the smallest total that gets equivalencies;
	// below it the numbers round to nothing useful.
	MinEquivalencyThresholdKg = 1.0

	// MinTreeSeedlingKg is the smallest total for which seedlings are quoted.
	MinTreeSeedlingKg = TreeSeedlingFactor

	LargeNumberThreshold = 1_000_000
	BillionThreshold     = 1_000_000_000
)
