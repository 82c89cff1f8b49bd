package scenariohcl

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steelcost/internal/errors"
)

const validFile = `
scenario "border-adjust" {
  tariff_percent   = 12.5
  shipping_cost    = 55
  incentive_amount = 30
  carbon_price     = 90
}

scenario "laissez-faire" {
  shipping_cost = 45
}

generator {
  start_year = 2018
  end_year   = 2032
  seed       = 42
}
`

func TestParseValidFile(t *testing.T) {
	file, err := Parse([]byte(validFile), "scenarios.hcl")
	require.NoError(t, err)
	require.Len(t, file.Scenarios, 2)

	s, ok := file.Scenario("border-adjust")
	require.True(t, ok)
	assert.True(t, s.State.TariffPercent.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, s.State.ShippingCost.Equal(decimal.NewFromInt(55)))
	assert.True(t, s.State.IncentiveAmount.Equal(decimal.NewFromInt(30)))
	assert.True(t, s.State.CarbonPrice.Equal(decimal.NewFromInt(90)))

	require.NotNil(t, file.Generator)
	assert.Equal(t, 2018, file.Generator.StartYear)
	assert.Equal(t, 2032, file.Generator.EndYear)
	assert.Equal(t, int64(42), file.Generator.Seed)
}

func TestOmittedAttributesDefaultToZero(t *testing.T) {
	file, err := Parse([]byte(validFile), "scenarios.hcl")
	require.NoError(t, err)

	s, ok := file.Scenario("laissez-faire")
	require.True(t, ok)
	assert.True(t, s.State.TariffPercent.IsZero())
	assert.True(t, s.State.CarbonPrice.IsZero())
	assert.True(t, s.State.ShippingCost.Equal(decimal.NewFromInt(45)))
}

func TestFirstScenarioIsDefault(t *testing.T) {
	file, err := Parse([]byte(validFile), "scenarios.hcl")
	require.NoError(t, err)

	s, ok := file.Scenario("")
	require.True(t, ok)
	assert.Equal(t, "border-adjust", s.Name)
}

func TestValuesClampToSliderRanges(t *testing.T) {
	src := `
scenario "extreme" {
  tariff_percent = 400
  carbon_price   = -5
}
`
	file, err := Parse([]byte(src), "extreme.hcl")
	require.NoError(t, err)

	s, _ := file.Scenario("extreme")
	assert.True(t, s.State.TariffPercent.Equal(decimal.NewFromInt(50)))
	assert.True(t, s.State.CarbonPrice.IsZero())
}

func TestParseRejectsNonNumericAttribute(t *testing.T) {
	src := `
scenario "bad" {
  tariff_percent = "ten"
}
`
	_, err := Parse([]byte(src), "bad.hcl")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeParsing))
}

func TestParseRejectsFileWithoutScenarios(t *testing.T) {
	src := `
generator {
  start_year = 2020
  end_year   = 2025
}
`
	_, err := Parse([]byte(src), "empty.hcl")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeParsing))
}

func TestParseRejectsInvalidYearRange(t *testing.T) {
	src := `
scenario "ok" {}

generator {
  start_year = 2030
  end_year   = 2020
}
`
	_, err := Parse([]byte(src), "range.hcl")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestParseRejectsMalformedHCL(t *testing.T) {
	_, err := Parse([]byte(`scenario "broken" {`), "broken.hcl")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeParsing))
}

func TestFractionalSeedRejected(t *testing.T) {
	src := `
scenario "ok" {}

generator {
  seed = 1.5
}
`
	_, err := Parse([]byte(src), "seed.hcl")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeParsing))
}
