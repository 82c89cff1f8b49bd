// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions and
// the constant data each region carries.
package types

import "github.com/shopspring/decimal"

// Region is an enumerated producing region
type Region string

const (
	RegionUS     Region = "US"
	RegionEU     Region = "EU"
	RegionChina  Region = "China"
	RegionIndia  Region = "India"
	RegionBrazil Region = "Brazil"
)

// String returns the string representation of the region
func (r Region) String() string {
	return string(r)
}

// IsValid checks if the region is a known region
func (r Region) IsValid() bool {
	_, ok := regionInfo[r]
	return ok
}

// IsDomestic reports whether the region sources domestically.
// Domestic regions never incur tariff or shipping adjustments;
// overseas regions never receive the incentive.
func (r Region) IsDomestic() bool {
	return regionInfo[r].Domestic
}

// Info returns the constant data associated with the region
func (r Region) Info() RegionInfo {
	return regionInfo[r]
}

// RegionInfo is the constant economic data associated with a region
type RegionInfo struct {
	// BaseCost is the reference production cost in USD/ton
	BaseCost decimal.Decimal `json:"base_cost"`

	// BaseCO2 is the reference carbon intensity in kg CO2/ton
	BaseCO2 decimal.Decimal `json:"base_co2"`

	// Method is the dominant production method label
	Method string `json:"method"`

	// BaseVolume is the reference first-year trade volume in tons
	BaseVolume float64 `json:"base_volume"`

	// Domestic classifies the region for trade-policy adjustments
	Domestic bool `json:"domestic"`

	// Color is the chart color assigned to the region
	Color string `json:"color"`
}

// regionInfo holds the fixed per-region base values.
// US counts as the domestic market; everything else is overseas.
var regionInfo = map[Region]RegionInfo{
	RegionUS: {
		BaseCost:   decimal.NewFromInt(950),
		BaseCO2:    decimal.NewFromInt(380),
		BaseVolume: 52e6,
		Method:     "EAF (scrap)",
		Domestic:   true,
		Color:      "#1f77b4",
	},
	RegionEU: {
		BaseCost:   decimal.NewFromInt(880),
		BaseCO2:    decimal.NewFromInt(1350),
		BaseVolume: 38e6,
		Method:     "BF-BOF / EAF mix",
		Domestic:   false,
		Color:      "#2ca02c",
	},
	RegionChina: {
		BaseCost:   decimal.NewFromInt(680),
		BaseCO2:    decimal.NewFromInt(2100),
		BaseVolume: 96e6,
		Method:     "BF-BOF (coal)",
		Domestic:   false,
		Color:      "#d62728",
	},
	RegionIndia: {
		BaseCost:   decimal.NewFromInt(650),
		BaseCO2:    decimal.NewFromInt(2450),
		BaseVolume: 31e6,
		Method:     "BF-BOF / DRI (coal)",
		Domestic:   false,
		Color:      "#ff7f0e",
	},
	RegionBrazil: {
		BaseCost:   decimal.NewFromInt(720),
		BaseCO2:    decimal.NewFromInt(1600),
		BaseVolume: 14e6,
		Method:     "BF (charcoal)",
		Domestic:   false,
		Color:      "#9467bd",
	},
}

// AllRegions returns every known region in canonical (stable) order.
// Iteration order never depends on map ordering.
func AllRegions() []Region {
	return []Region{RegionUS, RegionEU, RegionChina, RegionIndia, RegionBrazil}
}

// ParseRegion resolves a string to a known region
func ParseRegion(s string) (Region, bool) {
	r := Region(s)
	if r.IsValid() {
		return r, true
	}
	return "", false
}
