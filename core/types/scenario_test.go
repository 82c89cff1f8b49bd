package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampForcesSliderRanges(t *testing.T) {
	s := ScenarioState{
		TariffPercent:   decimal.NewFromInt(80),
		ShippingCost:    decimal.NewFromInt(-10),
		IncentiveAmount: decimal.NewFromInt(50),
		CarbonPrice:     decimal.NewFromInt(500),
	}.Clamp()

	assert.True(t, s.TariffPercent.Equal(MaxTariffPercent))
	assert.True(t, s.ShippingCost.Equal(decimal.Zero))
	assert.True(t, s.IncentiveAmount.Equal(decimal.NewFromInt(50)))
	assert.True(t, s.CarbonPrice.Equal(MaxCarbonPrice))
}

func TestPresetReplacementIsAtomic(t *testing.T) {
	// States are values: selecting a preset yields a whole new record,
	// so a mix of old and new fields cannot be observed.
	current := ScenarioState{
		TariffPercent: decimal.NewFromInt(33),
		CarbonPrice:   decimal.NewFromInt(5),
	}

	p, ok := LookupPreset(PresetCarbon2030)
	require.True(t, ok)

	next := p.State
	assert.True(t, next.Equal(p.State))
	assert.False(t, next.Equal(current))

	// The original preset definition is untouched by later edits
	next.TariffPercent = decimal.NewFromInt(49)
	again, _ := LookupPreset(PresetCarbon2030)
	assert.True(t, again.State.TariffPercent.Equal(decimal.NewFromInt(10)))
}

func TestLookupPreset(t *testing.T) {
	for _, name := range []PresetName{PresetBaseline, PresetHighTariff, PresetCarbon2030, PresetCarbon2050} {
		p, ok := LookupPreset(name)
		assert.True(t, ok)
		assert.Equal(t, name, p.Name)
	}

	_, ok := LookupPreset("carbon-2100")
	assert.False(t, ok)
}

func TestPresetsWithinSliderRanges(t *testing.T) {
	for _, p := range Presets() {
		clamped := p.State.Clamp()
		assert.True(t, clamped.Equal(p.State), "preset %s exceeds slider ranges", p.Name)
	}
}

func TestRegionClassification(t *testing.T) {
	assert.True(t, RegionUS.IsDomestic())
	for _, r := range []Region{RegionEU, RegionChina, RegionIndia, RegionBrazil} {
		assert.False(t, r.IsDomestic(), "%s should be overseas", r)
	}
}

func TestParseRegion(t *testing.T) {
	r, ok := ParseRegion("China")
	assert.True(t, ok)
	assert.Equal(t, RegionChina, r)

	_, ok = ParseRegion("Atlantis")
	assert.False(t, ok)
}

func TestDatasetLookup(t *testing.T) {
	ds := &Dataset{
		StartYear: 2020,
		EndYear:   2021,
		Observations: []Observation{
			{Region: RegionUS, Year: 2020, Cost: decimal.NewFromInt(950)},
		},
	}

	obs, ok := ds.Lookup(RegionUS, 2020)
	require.True(t, ok)
	assert.True(t, obs.Cost.Equal(decimal.NewFromInt(950)))

	_, ok = ds.Lookup(RegionUS, 2021)
	assert.False(t, ok)

	assert.Equal(t, []int{2020, 2021}, ds.Years())
}
