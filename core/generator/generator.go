// Package generator produces the synthetic observation table.
// Generation is pure: fixed per-region base values plus a deterministic
// linear trend and a seeded random perturbation. The same seed always
// reproduces the same table; a zero seed draws a fresh one.
package generator

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"steelcost/core/types"
	"steelcost/internal/errors"
)

// Default year range for a generation run
const (
	DefaultStartYear = 2015
	DefaultEndYear   = 2035
)

// Trend slopes per year index, as fractions of the region base values.
// Domestic regions improve faster than overseas on both axes.
const (
	domesticCostSlope = -0.006
	overseasCostSlope = -0.002
	domesticCO2Slope  = -0.018
	overseasCO2Slope  = -0.007
	volumeGrowthSlope = 0.035
)

// Noise amplitudes, as fractions of the region base values
const (
	costNoise   = 0.02
	co2Noise    = 0.03
	volumeNoise = 0.05
)

// minVolume floors generated volume so bubble sizing never sees a
// non-positive value
const minVolume = 1e5

// Config controls a generation run
type Config struct {
	// StartYear is the first year to generate (inclusive)
	StartYear int `json:"start_year"`

	// EndYear is the last year to generate (inclusive)
	EndYear int `json:"end_year"`

	// Seed is the RNG seed; zero means draw a fresh seed for this run
	Seed int64 `json:"seed"`
}

// DefaultConfig returns the default generation settings
func DefaultConfig() Config {
	return Config{
		StartYear: DefaultStartYear,
		EndYear:   DefaultEndYear,
	}
}

// Validate checks the year range
func (c Config) Validate() error {
	if c.StartYear <= 0 || c.EndYear <= 0 {
		return errors.Input("start_year and end_year must be positive")
	}
	if c.EndYear < c.StartYear {
		return errors.Newf(errors.TypeInput, "end_year %d precedes start_year %d", c.EndYear, c.StartYear)
	}
	return nil
}

// Generate produces one Observation per (region, year) pair.
// Rows come out region-major in canonical region order, years ascending,
// so downstream output never depends on map iteration order.
func Generate(cfg Config) (*types.Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	ds := &types.Dataset{
		StartYear: cfg.StartYear,
		EndYear:   cfg.EndYear,
		Seed:      seed,
	}

	for _, region := range types.AllRegions() {
		info := region.Info()

		costSlope, co2Slope := overseasCostSlope, overseasCO2Slope
		if info.Domestic {
			costSlope, co2Slope = domesticCostSlope, domesticCO2Slope
		}

		baseCost := info.BaseCost.InexactFloat64()
		baseCO2 := info.BaseCO2.InexactFloat64()

		for year := cfg.StartYear; year <= cfg.EndYear; year++ {
			i := float64(year - cfg.StartYear)

			cost := baseCost*(1+costSlope*i) + perturb(rng, baseCost*costNoise)
			co2 := baseCO2*(1+co2Slope*i) + perturb(rng, baseCO2*co2Noise)
			volume := info.BaseVolume*(1+volumeGrowthSlope*i) + perturb(rng, info.BaseVolume*volumeNoise)
			if volume < minVolume {
				volume = minVolume
			}

			ds.Observations = append(ds.Observations, types.Observation{
				Region: region,
				Year:   year,
				Cost:   decimal.NewFromFloat(cost).Round(2),
				CO2:    decimal.NewFromFloat(co2).Round(1),
				Volume: volume,
			})
		}
	}

	return ds, nil
}

// perturb draws a uniform value in [-amplitude, +amplitude)
func perturb(rng *rand.Rand, amplitude float64) float64 {
	return (rng.Float64()*2 - 1) * amplitude
}
