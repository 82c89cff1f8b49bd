package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steelcost/core/types"
)

func TestGenerateOneRowPerRegionYear(t *testing.T) {
	ds, err := Generate(Config{StartYear: 2020, EndYear: 2024, Seed: 1})
	require.NoError(t, err)

	years := 5
	assert.Len(t, ds.Observations, len(types.AllRegions())*years)

	seen := make(map[types.Region]map[int]bool)
	for _, obs := range ds.Observations {
		if seen[obs.Region] == nil {
			seen[obs.Region] = make(map[int]bool)
		}
		assert.False(t, seen[obs.Region][obs.Year], "duplicate row for %s %d", obs.Region, obs.Year)
		seen[obs.Region][obs.Year] = true
	}
}

func TestGenerateSameSeedReproduces(t *testing.T) {
	first, err := Generate(Config{StartYear: 2015, EndYear: 2035, Seed: 42})
	require.NoError(t, err)
	second, err := Generate(Config{StartYear: 2015, EndYear: 2035, Seed: 42})
	require.NoError(t, err)

	require.Equal(t, len(first.Observations), len(second.Observations))
	for i := range first.Observations {
		a, b := first.Observations[i], second.Observations[i]
		assert.Equal(t, a.Region, b.Region)
		assert.Equal(t, a.Year, b.Year)
		assert.True(t, a.Cost.Equal(b.Cost), "%s %d cost %s != %s", a.Region, a.Year, a.Cost, b.Cost)
		assert.True(t, a.CO2.Equal(b.CO2))
		assert.Equal(t, a.Volume, b.Volume)
	}
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	first, err := Generate(Config{StartYear: 2020, EndYear: 2030, Seed: 1})
	require.NoError(t, err)
	second, err := Generate(Config{StartYear: 2020, EndYear: 2030, Seed: 2})
	require.NoError(t, err)

	differs := false
	for i := range first.Observations {
		if !first.Observations[i].Cost.Equal(second.Observations[i].Cost) {
			differs = true
			break
		}
	}
	assert.True(t, differs, "different seeds should perturb the table differently")
}

func TestGenerateZeroSeedDrawsFreshSeed(t *testing.T) {
	ds, err := Generate(Config{StartYear: 2020, EndYear: 2021})
	require.NoError(t, err)
	assert.NotZero(t, ds.Seed, "drawn seed must be recorded for replay")
}

func TestGenerateVolumeAlwaysPositive(t *testing.T) {
	ds, err := Generate(Config{StartYear: 2015, EndYear: 2035, Seed: 7})
	require.NoError(t, err)
	for _, obs := range ds.Observations {
		assert.Greater(t, obs.Volume, 0.0, "%s %d", obs.Region, obs.Year)
	}
}

func TestGenerateCanonicalRowOrder(t *testing.T) {
	ds, err := Generate(Config{StartYear: 2020, EndYear: 2021, Seed: 3})
	require.NoError(t, err)

	// Region-major in enumeration order, years ascending within a region
	i := 0
	for _, region := range types.AllRegions() {
		for year := 2020; year <= 2021; year++ {
			require.Less(t, i, len(ds.Observations))
			assert.Equal(t, region, ds.Observations[i].Region)
			assert.Equal(t, year, ds.Observations[i].Year)
			i++
		}
	}
}

func TestGenerateDomesticCO2ImprovesFaster(t *testing.T) {
	// Compare relative CO2 decline over the full range; noise is small
	// next to twenty years of trend.
	ds, err := Generate(Config{StartYear: 2015, EndYear: 2035, Seed: 11})
	require.NoError(t, err)

	decline := func(r types.Region) float64 {
		first, ok := ds.Lookup(r, 2015)
		require.True(t, ok)
		last, ok := ds.Lookup(r, 2035)
		require.True(t, ok)
		f, _ := first.CO2.Float64()
		l, _ := last.CO2.Float64()
		return (f - l) / f
	}

	assert.Greater(t, decline(types.RegionUS), decline(types.RegionChina))
}

func TestConfigValidate(t *testing.T) {
	assert.Error(t, Config{StartYear: 0, EndYear: 2020}.Validate())
	assert.Error(t, Config{StartYear: 2020, EndYear: 2019}.Validate())
	assert.NoError(t, Config{StartYear: 2020, EndYear: 2020}.Validate())
	assert.NoError(t, DefaultConfig().Validate())
}
