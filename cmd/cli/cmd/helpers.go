// Package cmd - Shared flag resolution
package cmd

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"steelcost/adapters/scenariohcl"
	"steelcost/core/generator"
	"steelcost/core/types"
	"steelcost/db"
	"steelcost/internal/config"
	"steelcost/internal/errors"
)

// scenarioFlags carries the lever flags shared by frames and compare
type scenarioFlags struct {
	preset       string
	scenarioFile string
	scenarioName string
	tariff       float64
	shipping     float64
	incentive    float64
	carbonPrice  float64
}

// resolve picks the scenario state: a preset name, a scenario file, or
// explicit lever flags. The sources are mutually exclusive because a
// preset must replace all four levers at once.
func (f *scenarioFlags) resolve() (types.ScenarioState, types.PresetName, *generator.Config, error) {
	sources := 0
	if f.preset != "" {
		sources++
	}
	if f.scenarioFile != "" {
		sources++
	}
	if f.tariff != 0 || f.shipping != 0 || f.incentive != 0 || f.carbonPrice != 0 {
		sources++
	}
	if sources > 1 {
		return types.ScenarioState{}, "", nil, errors.Input("--preset, --scenario-file and lever flags are mutually exclusive")
	}

	if f.preset != "" {
		p, ok := types.LookupPreset(types.PresetName(f.preset))
		if !ok {
			return types.ScenarioState{}, "", nil, errors.NotFound("preset", f.preset)
		}
		return p.State, p.Name, nil, nil
	}

	if f.scenarioFile != "" {
		file, err := scenariohcl.Load(f.scenarioFile)
		if err != nil {
			return types.ScenarioState{}, "", nil, err
		}
		s, ok := file.Scenario(f.scenarioName)
		if !ok {
			return types.ScenarioState{}, "", nil, errors.NotFound("scenario", f.scenarioName)
		}
		return s.State, "", file.Generator, nil
	}

	state := types.ScenarioState{
		TariffPercent:   decimal.NewFromFloat(f.tariff),
		ShippingCost:    decimal.NewFromFloat(f.shipping),
		IncentiveAmount: decimal.NewFromFloat(f.incentive),
		CarbonPrice:     decimal.NewFromFloat(f.carbonPrice),
	}.Clamp()
	return state, "", nil, nil
}

// datasetFlags carries the generation/replay flags
type datasetFlags struct {
	startYear int
	endYear   int
	seed      int64
	snapshot  string
}

// resolve builds the observation table: replayed from the snapshot
// store when --snapshot is given, generated otherwise. fileCfg, when
// non-nil, supplies generator settings from a scenario file; explicit
// flags win over it.
func (f *datasetFlags) resolve(ctx context.Context, fileCfg *generator.Config) (*types.Dataset, string, error) {
	if f.snapshot != "" {
		store, err := openStore(ctx)
		if err != nil {
			return nil, "", err
		}
		defer store.Close()

		id, err := uuid.Parse(f.snapshot)
		if err != nil {
			return nil, "", errors.Wrap(errors.TypeInput, "invalid snapshot id", err)
		}
		ds, snap, err := store.GetSnapshot(ctx, id)
		if err != nil {
			return nil, "", err
		}
		return ds, snap.ID.String(), nil
	}

	cfg := generator.Config{
		StartYear: config.Get().Generator.StartYear,
		EndYear:   config.Get().Generator.EndYear,
		Seed:      config.Get().Generator.Seed,
	}
	if fileCfg != nil {
		cfg = *fileCfg
	}
	if f.startYear != 0 {
		cfg.StartYear = f.startYear
	}
	if f.endYear != 0 {
		cfg.EndYear = f.endYear
	}
	if f.seed != 0 {
		cfg.Seed = f.seed
	}

	ds, err := generator.Generate(cfg)
	if err != nil {
		return nil, "", err
	}
	return ds, "", nil
}

// openStore connects the configured snapshot store
func openStore(ctx context.Context) (db.SnapshotStore, error) {
	dsn := config.Get().Store.DSN
	if dsn == "" {
		return nil, errors.New(errors.TypeConfig, "snapshot store not configured: set store.dsn in the config file")
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return db.OpenPostgres(ctx, dsn)
}
