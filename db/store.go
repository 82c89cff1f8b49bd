// Package db provides the snapshot store.
// A snapshot freezes one generated observation table so a scenario run
// can be replayed across processes without re-seeding the generator.
package db

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"steelcost/core/types"
)

// Snapshot describes one stored observation table
type Snapshot struct {
	// ID uniquely identifies the snapshot
	ID uuid.UUID `json:"id"`

	// CreatedAt is when the snapshot was stored
	CreatedAt time.Time `json:"created_at"`

	// StartYear and EndYear are the covered year range (inclusive)
	StartYear int `json:"start_year"`
	EndYear   int `json:"end_year"`

	// Seed is the generator seed behind the table
	Seed int64 `json:"seed"`

	// RowCount is the number of stored observations
	RowCount int `json:"row_count"`

	// ContentHash is the sha256 over the canonically-ordered rows
	ContentHash string `json:"content_hash"`
}

// SnapshotStore persists and retrieves observation tables
type SnapshotStore interface {
	// SaveSnapshot stores a dataset and returns its descriptor
	SaveSnapshot(ctx context.Context, ds *types.Dataset) (Snapshot, error)

	// GetSnapshot loads a stored dataset by ID
	GetSnapshot(ctx context.Context, id uuid.UUID) (*types.Dataset, Snapshot, error)

	// ListSnapshots returns descriptors for all stored datasets,
	// newest first
	ListSnapshots(ctx context.Context) ([]Snapshot, error)

	// Close releases the underlying connection
	Close() error
}

// HashDataset computes the content hash over canonically-ordered rows.
// The generator emits rows region-major in enumeration order, so the
// hash is stable for a given (seed, year range).
func HashDataset(ds *types.Dataset) string {
	h := sha256.New()
	for _, obs := range ds.Observations {
		fmt.Fprintf(h, "%s|%d|%s|%s|%.3f\n", obs.Region, obs.Year, obs.Cost.String(), obs.CO2.String(), obs.Volume)
	}
	return hex.EncodeToString(h.Sum(nil))
}
