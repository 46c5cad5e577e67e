package factors

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const greekFactors = `
ηλεκτρική_ενέργεια:
  kgco2e_ανα_kwh: 0.40
καύσιμα:
  πετρέλαιο_θέρμανσης_kgco2e_ανα_l: 2.68
  ντίζελ_kgco2e_ανα_l: 2.68
  βενζίνη_kgco2e_ανα_l: 2.31
μεταφορές:
  αυτοκίνητο_kgco2e_ανα_km: 0.18
  λεωφορείο_kgco2e_ανα_επιβατοχλμ: 0.08
  πλοίο_kgco2e_ανα_επιβάτη_km: 0.12
  αεροπορικό_kgco2e_ανα_επιβάτη_km: 0.13
απόβλητα:
  συμμικτα_kgco2e_ανα_kg: 1.2
  ανακυκλωση_kgco2e_ανα_kg: 0.1
νερό:
  αφαλατωση_kwh_ανα_m3: 3.5
λύματα:
  kgco2e_ανα_m3: 0.5
τουρισμός:
  διανυκτέρευση_kgco2e_ανα_επισκέπτη: 15
`

func TestDefault_Values(t *testing.T) {
	d := Default()
	require.NoError(t, d.Validate())

	assert.InDelta(t, 0.40, d.Lookup(CategoryElectricity, KeyPerKWh), 1e-12)
	assert.InDelta(t, 2.68, d.Lookup(CategoryFuel, FuelKey("diesel")), 1e-12)
	assert.InDelta(t, 2.31, d.Lookup(CategoryFuel, KeyPetrolPerL), 1e-12)
	assert.InDelta(t, 0.13, d.Lookup(CategoryTransport, KeyAirPerPaxKm), 1e-12)
	assert.InDelta(t, 3.5, d.Lookup(CategoryWater, KeyKWhPerM3), 1e-12)
	assert.InDelta(t, 15.0, d.Lookup(CategoryTourism, KeyPerVisitorNight), 1e-12)
}

func TestLookup_MissingDefaultsToZero(t *testing.T) {
	d := Default()
	assert.Zero(t, d.Lookup("energy", KeyPerKWh))
	assert.Zero(t, d.Lookup(CategoryFuel, "kerosene_per_l"))
	assert.False(t, d.Has(CategoryFuel, "kerosene_per_l"))
	assert.True(t, d.Has(CategoryFuel, KeyDieselPerL))

	var empty Table
	assert.Zero(t, empty.Lookup(CategoryElectricity, KeyPerKWh))
}

func TestClone_IsDeep(t *testing.T) {
	d := Default()
	c := d.Clone()
	c[CategoryElectricity][KeyPerKWh] = 9

	assert.InDelta(t, 0.40, d.Lookup(CategoryElectricity, KeyPerKWh), 1e-12)
	assert.InDelta(t, 9.0, c.Lookup(CategoryElectricity, KeyPerKWh), 1e-12)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr error
	}{
		{"default", Default(), nil},
		{"empty", Table{}, ErrEmptyTable},
		{"negative", Table{CategoryWaste: {KeyMixedPerKg: -1}}, ErrNegativeFactor},
		{"nan", Table{CategoryWaste: {KeyMixedPerKg: math.NaN()}}, ErrInvalidFactor},
		{"inf", Table{CategoryWaste: {KeyMixedPerKg: math.Inf(1)}}, ErrInvalidFactor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse_GreekDocumentMatchesDefault(t *testing.T) {
	got, err := Parse([]byte(greekFactors))
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestParse_CanonicalBareMap(t *testing.T) {
	got, err := Parse([]byte("electricity:\n  per_kWh: 0.25\nsewage:\n  per_m3: 1\n"))
	require.NoError(t, err)

	assert.InDelta(t, 0.25, got.Lookup(CategoryElectricity, KeyPerKWh), 1e-12)
	assert.InDelta(t, 1.0, got.Lookup(CategorySewage, KeyPerM3), 1e-12)
	assert.Zero(t, got.Lookup(CategoryFuel, KeyDieselPerL))
}

func TestParse_VersionedDocument(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"full semver", "version: 1.2.0\nfactors:\n  electricity:\n    per_kWh: 0.3\n", nil},
		{"numeric version", "version: 1\nfactors:\n  electricity:\n    per_kWh: 0.3\n", nil},
		{"no version", "factors:\n  electricity:\n    per_kWh: 0.3\n", nil},
		{"major 2", "version: 2.0.0\nfactors:\n  electricity:\n    per_kWh: 0.3\n", ErrUnsupportedVersion},
		{"garbage version", "version: soon\nfactors:\n  electricity:\n    per_kWh: 0.3\n", ErrUnsupportedVersion},
		{"factors not a map", "version: 1.0.0\nfactors: 3\n", ErrInvalidDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.doc))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, 0.3, got.Lookup(CategoryElectricity, KeyPerKWh), 1e-12)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"malformed yaml", "electricity: [unclosed", ErrInvalidDocument},
		{"empty", "", ErrInvalidDocument},
		{"category scalar", "electricity: 0.4\n", ErrInvalidDocument},
		{"value string", "electricity:\n  per_kWh: lots\n", ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)
	assert.Contains(t, string(data), "version: "+CurrentVersion)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), back)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("electricity:\n  per_kWh: 0.2\n"), 0o600))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("electricity: [oops"), 0o600))

	negative := filepath.Join(dir, "negative.yaml")
	require.NoError(t, os.WriteFile(negative, []byte("electricity:\n  per_kWh: -0.2\n"), 0o600))

	t.Run("empty path uses defaults silently", func(t *testing.T) {
		res := Load("")
		assert.False(t, res.FellBack)
		assert.NoError(t, res.Warning)
		assert.Equal(t, SourceDefault, res.Source)
		assert.Equal(t, Default(), res.Table)
	})

	t.Run("valid file", func(t *testing.T) {
		res := Load(good)
		assert.False(t, res.FellBack)
		assert.NoError(t, res.Warning)
		assert.Equal(t, good, res.Source)
		assert.InDelta(t, 0.2, res.Table.Lookup(CategoryElectricity, KeyPerKWh), 1e-12)
	})

	for name, path := range map[string]string{
		"malformed":    bad,
		"negative":     negative,
		"missing file": filepath.Join(dir, "nope.yaml"),
	} {
		t.Run(name+" falls back", func(t *testing.T) {
			res := Load(path)
			assert.True(t, res.FellBack)
			require.Error(t, res.Warning)
			assert.Contains(t, res.Warning.Error(), "using defaults")
			assert.Equal(t, Default(), res.Table)
		})
	}
}

func TestCanonicalCategory(t *testing.T) {
	assert.Equal(t, CategoryElectricity, CanonicalCategory("ηλεκτρική_ενέργεια"))
	assert.Equal(t, CategoryTourism, CanonicalCategory(" τουρισμός "))
	assert.Equal(t, CategoryFuel, CanonicalCategory("Fuels"))
	assert.Equal(t, "parking", CanonicalCategory("parking"))
}
