// Package types - Scenario state and presets
package types

import "github.com/shopspring/decimal"

// ScenarioState holds the four policy levers applied by the transformer.
// It is a value type: every input event builds a whole new state and passes
// it explicitly, so mixed old/new field values are unrepresentable.
type ScenarioState struct {
	// TariffPercent is the import tariff in percent of production cost
	TariffPercent decimal.Decimal `json:"tariff_percent"`

	// ShippingCost is the overseas shipping cost in USD/ton
	ShippingCost decimal.Decimal `json:"shipping_cost"`

	// IncentiveAmount is the domestic production incentive in USD/ton
	IncentiveAmount decimal.Decimal `json:"incentive_amount"`

	// CarbonPrice is the carbon price in USD/ton CO2
	CarbonPrice decimal.Decimal `json:"carbon_price"`
}

// Slider ranges enforced by the interactive surfaces.
var (
	MaxTariffPercent   = decimal.NewFromInt(50)
	MaxShippingCost    = decimal.NewFromInt(200)
	MaxIncentiveAmount = decimal.NewFromInt(100)
	MaxCarbonPrice     = decimal.NewFromInt(200)
)

// Clamp returns a copy of the state with every lever forced into its
// slider range. Negative values clamp to zero.
func (s ScenarioState) Clamp() ScenarioState {
	s.TariffPercent = clampDecimal(s.TariffPercent, MaxTariffPercent)
	s.ShippingCost = clampDecimal(s.ShippingCost, MaxShippingCost)
	s.IncentiveAmount = clampDecimal(s.IncentiveAmount, MaxIncentiveAmount)
	s.CarbonPrice = clampDecimal(s.CarbonPrice, MaxCarbonPrice)
	return s
}

func clampDecimal(v, max decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	if v.GreaterThan(max) {
		return max
	}
	return v
}

// Equal reports whether two states carry identical lever values
func (s ScenarioState) Equal(o ScenarioState) bool {
	return s.TariffPercent.Equal(o.TariffPercent) &&
		s.ShippingCost.Equal(o.ShippingCost) &&
		s.IncentiveAmount.Equal(o.IncentiveAmount) &&
		s.CarbonPrice.Equal(o.CarbonPrice)
}

// PresetName identifies a canned scenario bundle
type PresetName string

const (
	PresetBaseline   PresetName = "baseline"
	PresetHighTariff PresetName = "high-tariff"
	PresetCarbon2030 PresetName = "carbon-2030"
	PresetCarbon2050 PresetName = "carbon-2050"
)

// Preset is a named ScenarioState bundle
type Preset struct {
	// Name identifies the preset
	Name PresetName `json:"name"`

	// Description explains the scenario
	Description string `json:"description"`

	// State is the full lever bundle; selecting a preset replaces all
	// four fields at once
	State ScenarioState `json:"state"`
}

// presets holds the canned bundles in display order
var presets = []Preset{
	{
		Name:        PresetBaseline,
		Description: "Current policy, no carbon price",
		State:       ScenarioState{},
	},
	{
		Name:        PresetHighTariff,
		Description: "Aggressive border protection",
		State: ScenarioState{
			TariffPercent: decimal.NewFromInt(25),
			ShippingCost:  decimal.NewFromInt(80),
		},
	},
	{
		Name:        PresetCarbon2030,
		Description: "Moderate carbon price with domestic incentive",
		State: ScenarioState{
			TariffPercent:   decimal.NewFromInt(10),
			ShippingCost:    decimal.NewFromInt(60),
			IncentiveAmount: decimal.NewFromInt(40),
			CarbonPrice:     decimal.NewFromInt(75),
		},
	},
	{
		Name:        PresetCarbon2050,
		Description: "Deep decarbonization carbon price",
		State: ScenarioState{
			TariffPercent:   decimal.NewFromInt(5),
			ShippingCost:    decimal.NewFromInt(60),
			IncentiveAmount: decimal.NewFromInt(60),
			CarbonPrice:     decimal.NewFromInt(180),
		},
	},
}

// Presets returns all canned bundles in display order
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset resolves a preset by name
func LookupPreset(name PresetName) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
