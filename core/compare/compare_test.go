package compare

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steelcost/core/types"
)

func testDataset() *types.Dataset {
	return &types.Dataset{
		StartYear: 2030,
		EndYear:   2030,
		Observations: []types.Observation{
			{Region: types.RegionUS, Year: 2030, Cost: decimal.NewFromInt(950), CO2: decimal.NewFromInt(380), Volume: 52e6},
			{Region: types.RegionChina, Year: 2030, Cost: decimal.NewFromInt(680), CO2: decimal.NewFromInt(2100), Volume: 96e6},
		},
	}
}

func testState() types.ScenarioState {
	return types.ScenarioState{
		TariffPercent:   decimal.NewFromInt(10),
		ShippingCost:    decimal.NewFromInt(60),
		IncentiveAmount: decimal.NewFromInt(40),
		CarbonPrice:     decimal.NewFromInt(75),
	}
}

func TestCompareCompleteSummary(t *testing.T) {
	s := Compare(testDataset(), testState(), types.RegionUS, types.RegionChina, 2030)
	require.True(t, s.Complete())

	// US delivered 910, China delivered 808
	delivered, ok := s.DeliveredDelta()
	require.True(t, ok)
	assert.True(t, delivered.Equal(decimal.NewFromInt(102)), "delta = %s", delivered)

	co2, ok := s.CO2Delta()
	require.True(t, ok)
	assert.True(t, co2.Equal(decimal.NewFromInt(-1720)))

	// 938.5 - 965.5 = -27: the carbon price flips the comparison
	adjusted, ok := s.CarbonAdjustedDelta()
	require.True(t, ok)
	assert.True(t, adjusted.Equal(decimal.NewFromInt(-27)))
}

func TestCompareMissingYearDegradesGracefully(t *testing.T) {
	s := Compare(testDataset(), testState(), types.RegionUS, types.RegionChina, 1999)
	assert.False(t, s.Complete())
	assert.Nil(t, s.Base)
	assert.Nil(t, s.Against)

	_, ok := s.DeliveredDelta()
	assert.False(t, ok)
}

func TestCompareMissingRegionKeepsOtherRow(t *testing.T) {
	s := Compare(testDataset(), testState(), types.RegionUS, types.RegionBrazil, 2030)
	assert.NotNil(t, s.Base)
	assert.Nil(t, s.Against)
	assert.False(t, s.Complete())

	// Regions stay identifiable even when rows are missing
	assert.Equal(t, types.RegionBrazil, s.AgainstRegion)
}

func TestSignedCurrency(t *testing.T) {
	assert.Equal(t, "+$102.00/ton", SignedCurrency(decimal.NewFromInt(102), true))
	assert.Equal(t, "-$27.00/ton", SignedCurrency(decimal.NewFromInt(-27), true))
	assert.Equal(t, "+$0.00/ton", SignedCurrency(decimal.Zero, true))
	assert.Equal(t, "N/A", SignedCurrency(decimal.NewFromInt(5), false))
}

func TestSignedMass(t *testing.T) {
	assert.Equal(t, "-1720 kg/ton", SignedMass(decimal.NewFromInt(-1720), true))
	assert.Equal(t, "+40 kg/ton", SignedMass(decimal.NewFromInt(40), true))
	assert.Equal(t, "N/A", SignedMass(decimal.Zero, false))
}
