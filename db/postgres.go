// Package db - Postgres snapshot store
package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"steelcost/core/types"
	"steelcost/internal/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id           UUID PRIMARY KEY,
	created_at   TIMESTAMPTZ NOT NULL,
	start_year   INT NOT NULL,
	end_year     INT NOT NULL,
	seed         BIGINT NOT NULL,
	row_count    INT NOT NULL,
	content_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS observations (
	snapshot_id UUID NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
	ordinal     INT NOT NULL,
	region      TEXT NOT NULL,
	year        INT NOT NULL,
	cost        NUMERIC NOT NULL,
	co2         NUMERIC NOT NULL,
	volume      DOUBLE PRECISION NOT NULL,
	PRIMARY KEY (snapshot_id, ordinal)
);
`

// PostgresStore is the Postgres-backed SnapshotStore
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres connects to Postgres and ensures the schema exists
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Storage("opening postgres connection", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, errors.Storage("pinging postgres", err)
	}
	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return nil, errors.Storage("ensuring snapshot schema", err)
	}
	return &PostgresStore{db: conn}, nil
}

// SaveSnapshot stores a dataset in one transaction
func (s *PostgresStore) SaveSnapshot(ctx context.Context, ds *types.Dataset) (Snapshot, error) {
	snap := Snapshot{
		ID:          uuid.New(),
		CreatedAt:   time.Now().UTC(),
		StartYear:   ds.StartYear,
		EndYear:     ds.EndYear,
		Seed:        ds.Seed,
		RowCount:    len(ds.Observations),
		ContentHash: HashDataset(ds),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Snapshot{}, errors.Storage("beginning transaction", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, created_at, start_year, end_year, seed, row_count, content_hash)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		snap.ID, snap.CreatedAt, snap.StartYear, snap.EndYear, snap.Seed, snap.RowCount, snap.ContentHash)
	if err != nil {
		return Snapshot{}, errors.Storage("inserting snapshot", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO observations (snapshot_id, ordinal, region, year, cost, co2, volume)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`)
	if err != nil {
		return Snapshot{}, errors.Storage("preparing observation insert", err)
	}
	defer stmt.Close()

	for i, obs := range ds.Observations {
		if _, err := stmt.ExecContext(ctx, snap.ID, i, obs.Region.String(), obs.Year,
			obs.Cost.String(), obs.CO2.String(), obs.Volume); err != nil {
			return Snapshot{}, errors.Storage("inserting observation", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Snapshot{}, errors.Storage("committing snapshot", err)
	}
	return snap, nil
}

// GetSnapshot loads a stored dataset by ID
func (s *PostgresStore) GetSnapshot(ctx context.Context, id uuid.UUID) (*types.Dataset, Snapshot, error) {
	var snap Snapshot
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, start_year, end_year, seed, row_count, content_hash
		 FROM snapshots WHERE id = $1`, id).
		Scan(&snap.ID, &snap.CreatedAt, &snap.StartYear, &snap.EndYear, &snap.Seed, &snap.RowCount, &snap.ContentHash)
	if err == sql.ErrNoRows {
		return nil, Snapshot{}, errors.NotFound("snapshot", id.String())
	}
	if err != nil {
		return nil, Snapshot{}, errors.Storage("loading snapshot", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT region, year, cost, co2, volume FROM observations
		 WHERE snapshot_id = $1 ORDER BY ordinal`, id)
	if err != nil {
		return nil, Snapshot{}, errors.Storage("loading observations", err)
	}
	defer rows.Close()

	ds := &types.Dataset{
		StartYear: snap.StartYear,
		EndYear:   snap.EndYear,
		Seed:      snap.Seed,
	}
	for rows.Next() {
		var (
			region    string
			obs       types.Observation
			cost, co2 string
		)
		if err := rows.Scan(&region, &obs.Year, &cost, &co2, &obs.Volume); err != nil {
			return nil, Snapshot{}, errors.Storage("scanning observation", err)
		}
		r, ok := types.ParseRegion(region)
		if !ok {
			return nil, Snapshot{}, errors.Newf(errors.TypeStorage, "snapshot %s contains unknown region %q", id, region)
		}
		obs.Region = r
		if obs.Cost, err = decimal.NewFromString(cost); err != nil {
			return nil, Snapshot{}, errors.Storage("decoding cost", err)
		}
		if obs.CO2, err = decimal.NewFromString(co2); err != nil {
			return nil, Snapshot{}, errors.Storage("decoding co2", err)
		}
		ds.Observations = append(ds.Observations, obs)
	}
	if err := rows.Err(); err != nil {
		return nil, Snapshot{}, errors.Storage("iterating observations", err)
	}
	return ds, snap, nil
}

// ListSnapshots returns all snapshot descriptors, newest first
func (s *PostgresStore) ListSnapshots(ctx context.Context) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, start_year, end_year, seed, row_count, content_hash
		 FROM snapshots ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.Storage("listing snapshots", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var snap Snapshot
		if err := rows.Scan(&snap.ID, &snap.CreatedAt, &snap.StartYear, &snap.EndYear,
			&snap.Seed, &snap.RowCount, &snap.ContentHash); err != nil {
			return nil, errors.Storage("scanning snapshot", err)
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// Close releases the connection pool
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
