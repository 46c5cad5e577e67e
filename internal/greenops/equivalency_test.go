package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name          string
		value         float64
		unit          string
		wantKm        float64
		wantPhones    float64
		wantSeedlings bool
		wantIsEmpty   bool
		wantErr       error
	}{
		{
			name:          "round trip London to Mykonos",
			value:         663.5,
			unit:          "kg",
			wantKm:        3686.1, // 663.5 / 0.18
			wantPhones:    80717.8,
			wantSeedlings: true,
		},
		{
			name:       "tonnes normalized",
			value:      0.0405,
			unit:       "tCO2e",
			wantKm:     225,
			wantPhones: 4927.0,
		},
		{
			name:       "grams normalized",
			value:      40500,
			unit:       "g",
			wantKm:     225,
			wantPhones: 4927.0,
		},
		{name: "below threshold", value: 0.5, unit: "kg", wantIsEmpty: true},
		{name: "zero", value: 0, unit: "kg", wantIsEmpty: true},
		{name: "negative", value: -1, unit: "kg", wantErr: ErrNegativeValue},
		{name: "bad unit", value: 10, unit: "stone", wantErr: ErrInvalidUnit},
		{name: "infinite", value: math.Inf(1), unit: "kg", wantErr: ErrCalculationOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.value, tt.unit)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, got.IsEmpty)
				return
			}
			require.NoError(t, err)

			if tt.wantIsEmpty {
				assert.True(t, got.IsEmpty)
				assert.Empty(t, got.Results)
				return
			}

			assert.False(t, got.IsEmpty)
			require.GreaterOrEqual(t, len(got.Results), 2)
			assert.Equal(t, EquivalencyKmDriven, got.Results[0].Type)
			assert.InDelta(t, tt.wantKm, got.Results[0].Value, tt.wantKm*0.01)
			assert.Equal(t, EquivalencySmartphonesCharged, got.Results[1].Type)
			assert.InDelta(t, tt.wantPhones, got.Results[1].Value, tt.wantPhones*0.01)

			if tt.wantSeedlings {
				require.Len(t, got.Results, 3)
				assert.Equal(t, EquivalencyTreeSeedlings, got.Results[2].Type)
				assert.Contains(t, got.CompactText, "seedlings")
			} else {
				assert.Len(t, got.Results, 2)
				assert.NotContains(t, got.CompactText, "seedlings")
			}
		})
	}
}

func TestCalculateKg_DisplayText(t *testing.T) {
	got := CalculateKg(663.5)

	assert.Equal(t, "Equivalent to driving ~3,686 km or charging ~80,718 smartphones", got.DisplayText)
	assert.Contains(t, got.CompactText, "≈")
	assert.Contains(t, got.CompactText, "3,686 km")
	assert.Contains(t, got.CompactText, "11 seedlings")
}

func TestCalculateKg_LargeValues(t *testing.T) {
	got := CalculateKg(1_000_000)
	assert.Contains(t, got.DisplayText, "million")

	got = CalculateKg(20_000_000)
	assert.Contains(t, got.DisplayText, "billion")
}

func TestCalculateKg_Invalid(t *testing.T) {
	assert.True(t, CalculateKg(-3).IsEmpty)
	assert.True(t, CalculateKg(math.NaN()).IsEmpty)
}

func TestEquivalencyType_String(t *testing.T) {
	assert.Equal(t, "KmDriven", EquivalencyKmDriven.String())
	assert.Equal(t, "SmartphonesCharged", EquivalencySmartphonesCharged.String())
	assert.Equal(t, "TreeSeedlings", EquivalencyTreeSeedlings.String())
	assert.Equal(t, "EquivalencyType(42)", EquivalencyType(42).String())
}

func BenchmarkCalculateKg(b *testing.B) {
	for b.Loop() {
		_ = CalculateKg(663.5)
	}
}
