// Package compare builds the side-by-side region summary shown next to
// the chart. A missing (region, year) row is an explicit optional
// result, never a crash: formatters render "N/A" for absent deltas.
package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"steelcost/core/scenario"
	"steelcost/core/types"
)

// Summary compares two regions' derived values for one year
type Summary struct {
	// Year is the compared year
	Year int `json:"year"`

	// Base is the reference region row, if present in the table
	Base *types.DerivedObservation `json:"base,omitempty"`

	// Against is the comparison region row, if present in the table
	Against *types.DerivedObservation `json:"against,omitempty"`

	// BaseRegion and AgainstRegion are always set, even when the rows
	// are missing
	BaseRegion    types.Region `json:"base_region"`
	AgainstRegion types.Region `json:"against_region"`
}

// Complete reports whether both rows were found
func (s Summary) Complete() bool {
	return s.Base != nil && s.Against != nil
}

// DeliveredDelta returns base minus against delivered cost
func (s Summary) DeliveredDelta() (decimal.Decimal, bool) {
	if !s.Complete() {
		return decimal.Zero, false
	}
	return s.Base.DeliveredCost.Sub(s.Against.DeliveredCost), true
}

// CO2Delta returns base minus against carbon intensity
func (s Summary) CO2Delta() (decimal.Decimal, bool) {
	if !s.Complete() {
		return decimal.Zero, false
	}
	return s.Base.CO2.Sub(s.Against.CO2), true
}

// CarbonAdjustedDelta returns base minus against carbon-adjusted cost
func (s Summary) CarbonAdjustedDelta() (decimal.Decimal, bool) {
	if !s.Complete() {
		return decimal.Zero, false
	}
	return s.Base.CarbonAdjustedCost.Sub(s.Against.CarbonAdjustedCost), true
}

// Compare derives both regions' rows for a year under the given state.
// Missing rows leave the corresponding field nil.
func Compare(ds *types.Dataset, state types.ScenarioState, base, against types.Region, year int) Summary {
	s := Summary{
		Year:          year,
		BaseRegion:    base,
		AgainstRegion: against,
	}
	if obs, ok := ds.Lookup(base, year); ok {
		row := scenario.Derive(obs, state)
		s.Base = &row
	}
	if obs, ok := ds.Lookup(against, year); ok {
		row := scenario.Derive(obs, state)
		s.Against = &row
	}
	return s
}

// SignedCurrency formats a delta as a signed USD/ton string, or "N/A"
// when the delta is absent
func SignedCurrency(d decimal.Decimal, ok bool) string {
	if !ok {
		return "N/A"
	}
	if d.IsNegative() {
		return fmt.Sprintf("-$%s/ton", d.Neg().StringFixed(2))
	}
	return fmt.Sprintf("+$%s/ton", d.StringFixed(2))
}

// SignedMass formats a delta as a signed kg CO2/ton string, or "N/A"
// when the delta is absent
func SignedMass(d decimal.Decimal, ok bool) string {
	if !ok {
		return "N/A"
	}
	if d.IsNegative() {
		return fmt.Sprintf("-%s kg/ton", d.Neg().StringFixed(0))
	}
	return fmt.Sprintf("+%s kg/ton", d.StringFixed(0))
}
