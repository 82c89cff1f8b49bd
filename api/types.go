// Package api - Request and response types
package api

import (
	"github.com/shopspring/decimal"

	"steelcost/core/compare"
	"steelcost/core/types"
)

// ScenarioParams carries the four levers in a request. Omitted fields
// default to zero.
type ScenarioParams struct {
	TariffPercent   decimal.Decimal `json:"tariff_percent"`
	ShippingCost    decimal.Decimal `json:"shipping_cost"`
	IncentiveAmount decimal.Decimal `json:"incentive_amount"`
	CarbonPrice     decimal.Decimal `json:"carbon_price"`
}

// State converts the params to a clamped scenario state
func (p *ScenarioParams) State() types.ScenarioState {
	return types.ScenarioState{
		TariffPercent:   p.TariffPercent,
		ShippingCost:    p.ShippingCost,
		IncentiveAmount: p.IncentiveAmount,
		CarbonPrice:     p.CarbonPrice,
	}.Clamp()
}

// GeneratorParams overrides generation defaults in a request
type GeneratorParams struct {
	StartYear int   `json:"start_year,omitempty"`
	EndYear   int   `json:"end_year,omitempty"`
	Seed      int64 `json:"seed,omitempty"`
}

// FramesRequest asks for animation frames under a scenario.
// Exactly one of Preset or Scenario selects the state; Snapshot (an ID
// from the snapshot store) or Generator selects the dataset.
type FramesRequest struct {
	// Preset selects a canned scenario bundle
	Preset string `json:"preset,omitempty"`

	// Scenario gives explicit lever values
	Scenario *ScenarioParams `json:"scenario,omitempty"`

	// Generator overrides generation defaults
	Generator *GeneratorParams `json:"generator,omitempty"`

	// Snapshot replays a stored dataset instead of generating
	Snapshot string `json:"snapshot,omitempty"`
}

// FramesResponse carries the derived frames
type FramesResponse struct {
	// State is the scenario the frames were derived under
	State types.ScenarioState `json:"state"`

	// Frames are the per-year animation frames
	Frames []types.Frame `json:"frames"`

	// Metadata describes the run
	Metadata *ResponseMetadata `json:"metadata"`
}

// CompareRequest asks for a two-region summary under a scenario
type CompareRequest struct {
	Preset    string           `json:"preset,omitempty"`
	Scenario  *ScenarioParams  `json:"scenario,omitempty"`
	Generator *GeneratorParams `json:"generator,omitempty"`
	Snapshot  string           `json:"snapshot,omitempty"`

	// Base and Against are the compared regions
	Base    string `json:"base"`
	Against string `json:"against"`

	// Year selects the compared frame
	Year int `json:"year"`
}

// CompareResponse carries the summary plus display-ready delta strings
type CompareResponse struct {
	Summary *compare.Summary `json:"summary"`

	// Formatted deltas, "N/A" when a region row is missing
	DeliveredDelta      string `json:"delivered_delta"`
	CO2Delta            string `json:"co2_delta"`
	CarbonAdjustedDelta string `json:"carbon_adjusted_delta"`

	Metadata *ResponseMetadata `json:"metadata"`
}

// PresetsResponse lists the canned scenario bundles
type PresetsResponse struct {
	Presets []types.Preset `json:"presets"`
}

// ResponseMetadata describes one API computation
type ResponseMetadata struct {
	// RequestID identifies the request in logs
	RequestID string `json:"request_id"`

	// InputHash is a deterministic hash of the request body
	InputHash string `json:"input_hash"`

	// Seed is the generator seed used (replayable)
	Seed int64 `json:"seed"`

	// SnapshotID is set when a stored dataset was replayed
	SnapshotID string `json:"snapshot_id,omitempty"`

	// DurationMs is the computation time in milliseconds
	DurationMs int64 `json:"duration_ms"`

	// Version is the engine version
	Version string `json:"version"`
}
