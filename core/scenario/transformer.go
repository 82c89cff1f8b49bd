// Package scenario derives scenario-adjusted costs and assembles
// animation frames. All functions here are pure: output is fully
// determined by (ScenarioState, observation table), so recomputing with
// identical inputs yields an identical derived table.
//
// Tariff application is additive: the tariff adjustment is
// TariffPercent/100 * cost, added on top of the base cost. This is the
// single supported form.
package scenario

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"steelcost/core/types"
)

// Bubble sizing: radius scales with sqrt(volume) and never drops below
// the minimum visible radius.
const (
	bubbleScale     = 0.004
	minBubbleRadius = 4.0
)

var (
	hundred  = decimal.NewFromInt(100)
	thousand = decimal.NewFromInt(1000)
)

// Derive computes the scenario-adjusted fields for one observation.
// Domestic rows never incur tariff or shipping; overseas rows never
// receive the incentive.
func Derive(obs types.Observation, state types.ScenarioState) types.DerivedObservation {
	var tariffAdj, shippingAdj, incentiveAdj decimal.Decimal

	if obs.Region.IsDomestic() {
		incentiveAdj = state.IncentiveAmount
	} else {
		tariffAdj = state.TariffPercent.Div(hundred).Mul(obs.Cost)
		shippingAdj = state.ShippingCost
	}

	delivered := obs.Cost.Add(tariffAdj).Add(shippingAdj).Sub(incentiveAdj)
	carbonPenalty := obs.CO2.Div(thousand).Mul(state.CarbonPrice)

	return types.DerivedObservation{
		Observation:        obs,
		DeliveredCost:      delivered,
		CarbonAdjustedCost: delivered.Add(carbonPenalty),
		BubbleSize:         BubbleSize(obs.Volume),
	}
}

// BubbleSize maps trade volume to a chart radius. Non-negative and
// monotonically non-decreasing in volume.
func BubbleSize(volume float64) float64 {
	if volume < 0 {
		volume = 0
	}
	return math.Max(minBubbleRadius, bubbleScale*math.Sqrt(volume))
}

// DeriveTable derives the full table, preserving input row order
func DeriveTable(ds *types.Dataset, state types.ScenarioState) []types.DerivedObservation {
	rows := make([]types.DerivedObservation, 0, len(ds.Observations))
	for _, obs := range ds.Observations {
		rows = append(rows, Derive(obs, state))
	}
	return rows
}

// Frames derives the full table and partitions it by year into ordered
// animation frames. Within each frame rows follow canonical region
// order; frames are ascending by year.
func Frames(ds *types.Dataset, state types.ScenarioState) []types.Frame {
	byYear := make(map[int][]types.DerivedObservation)
	for _, obs := range ds.Observations {
		byYear[obs.Year] = append(byYear[obs.Year], Derive(obs, state))
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	frames := make([]types.Frame, 0, len(years))
	for _, year := range years {
		rows := byYear[year]
		sortByRegionOrder(rows)

		frame := types.Frame{Year: year, Rows: rows}
		for _, row := range rows {
			frame.Points = append(frame.Points, pointFor(row))
		}
		frames = append(frames, frame)
	}
	return frames
}

// pointFor builds the chart point for one derived row. The x axis is
// carbon intensity, the y axis is carbon-adjusted cost.
func pointFor(row types.DerivedObservation) types.Point {
	return types.Point{
		X:     row.CO2,
		Y:     row.CarbonAdjustedCost,
		Size:  row.BubbleSize,
		Color: row.Region.Info().Color,
		Label: fmt.Sprintf("%s %d: $%s/ton delivered, %s kg CO2/ton", row.Region, row.Year, row.DeliveredCost.StringFixed(2), row.CO2.StringFixed(0)),
	}
}

// sortByRegionOrder orders rows by the canonical region enumeration
func sortByRegionOrder(rows []types.DerivedObservation) {
	rank := make(map[types.Region]int, len(types.AllRegions()))
	for i, r := range types.AllRegions() {
		rank[r] = i
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rank[rows[i].Region] < rank[rows[j].Region]
	})
}
