package greenops

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

// Calculate computes equivalencies for value expressed in unit.
//
// Totals below MinEquivalencyThresholdKg produce an empty output without an
// error. Tree seedlings are only quoted once the total reaches one seedling's
// worth of CO2e.
func Calculate(value float64, unit string) (EquivalencyOutput, error) {
	kg, err := NormalizeToKg(value, unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}
	return CalculateKg(kg), nil
}

// CalculateKg computes equivalencies for a kgCO2e total. Negative or
// non-finite totals are logged and yield an empty output.
func CalculateKg(kg float64) EquivalencyOutput {
	if math.IsInf(kg, 0) || math.IsNaN(kg) || kg < 0 {
		log.Warn().Float64("kg_co2e", kg).Msg("skipping equivalencies for invalid total")
		return EquivalencyOutput{IsEmpty: true}
	}
	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}
	}

	km := kg / PetrolCarKmFactor
	phones := kg / SmartphoneChargeFactor

	results := []EquivalencyResult{
		{
			Type:           EquivalencyKmDriven,
			Value:          km,
			FormattedValue: formatEquivalencyValue(km),
			Label:          "km driven in a petrol car",
		},
		{
			Type:           EquivalencySmartphonesCharged,
			Value:          phones,
			FormattedValue: formatEquivalencyValue(phones),
			Label:          "smartphones charged",
		},
	}

	compact := fmt.Sprintf("(≈ %s km, %s phones", results[0].FormattedValue, results[1].FormattedValue)
	if kg >= MinTreeSeedlingKg {
		seedlings := kg / TreeSeedlingFactor
		results = append(results, EquivalencyResult{
			Type:           EquivalencyTreeSeedlings,
			Value:          seedlings,
			FormattedValue: formatEquivalencyValue(seedlings),
			Label:          "tree seedlings grown for 10 years",
		})
		compact += fmt.Sprintf(", %s seedlings", results[2].FormattedValue)
	}
	compact += ")"

	return EquivalencyOutput{
		InputKg: kg,
		Results: results,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s km or charging ~%s smartphones",
			results[0].FormattedValue, results[1].FormattedValue),
		CompactText: compact,
	}
}

func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
