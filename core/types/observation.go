// Package types - Observation and frame types
package types

import "github.com/shopspring/decimal"

// Observation is one generated (region, year) data point.
// Immutable after generation; re-randomized only by a new generation run.
type Observation struct {
	// Region is the producing region
	Region Region `json:"region"`

	// Year is the calendar year
	Year int `json:"year"`

	// Cost is the production cost in USD/ton
	Cost decimal.Decimal `json:"cost"`

	// CO2 is the carbon intensity in kg CO2/ton
	CO2 decimal.Decimal `json:"co2"`

	// Volume is the trade volume in tons
	Volume float64 `json:"volume"`
}

// DerivedObservation is an Observation plus scenario-derived fields.
// Derived fields are pure functions of (Observation, ScenarioState).
type DerivedObservation struct {
	Observation

	// DeliveredCost is cost plus trade-policy adjustments in USD/ton
	DeliveredCost decimal.Decimal `json:"delivered_cost"`

	// CarbonAdjustedCost is delivered cost plus the monetized carbon penalty
	CarbonAdjustedCost decimal.Decimal `json:"carbon_adjusted_cost"`

	// BubbleSize is the chart radius derived from volume
	BubbleSize float64 `json:"bubble_size"`
}

// Point is one chart point handed to the rendering boundary.
// The charting client owns pixels, hit-testing and animation timing.
type Point struct {
	// X is the carbon intensity axis value (kg CO2/ton)
	X decimal.Decimal `json:"x"`

	// Y is the carbon-adjusted cost axis value (USD/ton)
	Y decimal.Decimal `json:"y"`

	// Size is the bubble radius
	Size float64 `json:"size"`

	// Color is the region color
	Color string `json:"color"`

	// Label is the hover text
	Label string `json:"label"`
}

// Frame is the per-year snapshot of all regions' derived values
type Frame struct {
	// Year identifies the frame
	Year int `json:"year"`

	// Rows are the derived observations for this year, in region order
	Rows []DerivedObservation `json:"rows"`

	// Points are the chart points for this year, parallel to Rows
	Points []Point `json:"points"`
}

// Dataset is a full generated observation table with its provenance
type Dataset struct {
	// Observations holds one row per (region, year), region-major order
	Observations []Observation `json:"observations"`

	// StartYear is the first generated year (inclusive)
	StartYear int `json:"start_year"`

	// EndYear is the last generated year (inclusive)
	EndYear int `json:"end_year"`

	// Seed is the RNG seed the table was generated with
	Seed int64 `json:"seed"`
}

// Years returns every year covered by the dataset in ascending order
func (d *Dataset) Years() []int {
	years := make([]int, 0, d.EndYear-d.StartYear+1)
	for y := d.StartYear; y <= d.EndYear; y++ {
		years = append(years, y)
	}
	return years
}

// Lookup returns the observation for (region, year), if present
func (d *Dataset) Lookup(region Region, year int) (Observation, bool) {
	for _, obs := range d.Observations {
		if obs.Region == region && obs.Year == year {
			return obs, true
		}
	}
	return Observation{}, false
}
