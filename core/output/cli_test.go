package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steelcost/core/compare"
	"steelcost/core/scenario"
	"steelcost/core/types"
)

func sampleResult() *Result {
	ds := &types.Dataset{
		StartYear: 2030,
		EndYear:   2030,
		Seed:      42,
		Observations: []types.Observation{
			{Region: types.RegionUS, Year: 2030, Cost: decimal.NewFromInt(950), CO2: decimal.NewFromInt(380), Volume: 52e6},
			{Region: types.RegionChina, Year: 2030, Cost: decimal.NewFromInt(680), CO2: decimal.NewFromInt(2100), Volume: 96e6},
		},
	}
	state := types.ScenarioState{
		TariffPercent:   decimal.NewFromInt(10),
		ShippingCost:    decimal.NewFromInt(60),
		IncentiveAmount: decimal.NewFromInt(40),
		CarbonPrice:     decimal.NewFromInt(75),
	}
	summary := compare.Compare(ds, state, types.RegionUS, types.RegionChina, 2030)
	return &Result{
		State:   state,
		Preset:  types.PresetCarbon2030,
		Frames:  scenario.Frames(ds, state),
		Summary: &summary,
		Metadata: Metadata{
			StartYear: 2030,
			EndYear:   2030,
			Seed:      42,
			Version:   "test",
		},
	}
}

func TestCLIFormatterRendersFrames(t *testing.T) {
	var buf bytes.Buffer
	f := &CLIFormatter{}
	require.NoError(t, f.Render(&buf, sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "== 2030 ==")
	assert.Contains(t, out, "US")
	assert.Contains(t, out, "China")
	assert.Contains(t, out, "$910.00")
	assert.Contains(t, out, "$938.50")
	assert.Contains(t, out, "$808.00")
	assert.Contains(t, out, "$965.50")
}

func TestCLIFormatterRendersSummaryDeltas(t *testing.T) {
	var buf bytes.Buffer
	f := &CLIFormatter{}
	require.NoError(t, f.Render(&buf, sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "US vs China, 2030")
	assert.Contains(t, out, "+$102.00/ton")
	assert.Contains(t, out, "-1720 kg/ton")
	assert.Contains(t, out, "-$27.00/ton")
}

func TestCLIFormatterRendersNAForMissingComparison(t *testing.T) {
	result := sampleResult()
	missing := compare.Compare(&types.Dataset{}, result.State, types.RegionUS, types.RegionBrazil, 2030)
	result.Summary = &missing

	var buf bytes.Buffer
	require.NoError(t, (&CLIFormatter{}).Render(&buf, result))
	assert.Contains(t, buf.String(), "N/A")
}

func TestCLIFormatterShowPoints(t *testing.T) {
	var buf bytes.Buffer
	f := &CLIFormatter{ShowPoints: true}
	require.NoError(t, f.Render(&buf, sampleResult()))
	assert.Contains(t, buf.String(), "point x=")
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONFormatter{}).Render(&buf, sampleResult()))

	var decoded Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, types.PresetCarbon2030, decoded.Preset)
	require.Len(t, decoded.Frames, 1)
	assert.Equal(t, 2030, decoded.Frames[0].Year)
	assert.Len(t, decoded.Frames[0].Points, 2)
}

func TestForFormat(t *testing.T) {
	f, ok := ForFormat(FormatCLI)
	require.True(t, ok)
	assert.Equal(t, FormatCLI, f.Format())

	f, ok = ForFormat(FormatJSON)
	require.True(t, ok)
	assert.Equal(t, FormatJSON, f.Format())

	_, ok = ForFormat("yaml")
	assert.False(t, ok)
}
