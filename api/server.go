// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine orchestration,
// output serialization. The API NEVER performs scenario logic.
package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"steelcost/core/compare"
	"steelcost/core/generator"
	"steelcost/core/scenario"
	"steelcost/core/types"
	"steelcost/db"
	"steelcost/internal/errors"
	"steelcost/internal/logging"
)

// Server is the API server
type Server struct {
	mux     *http.ServeMux
	version string
	store   db.SnapshotStore
}

// NewServer creates a new API server (without snapshot store)
func NewServer(version string) *Server {
	return NewServerWithStore(version, nil)
}

// NewServerWithStore creates a new API server with a snapshot store
func NewServerWithStore(version string, store db.SnapshotStore) *Server {
	s := &Server{
		mux:     http.NewServeMux(),
		version: version,
		store:   store,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /frames", s.handleFrames)
	s.mux.HandleFunc("POST /compare", s.handleCompare)

	// Supporting endpoints
	s.mux.HandleFunc("GET /presets", s.handlePresets)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleFrames handles POST /frames
func (s *Server) handleFrames(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req FramesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	state, _, err := resolveState(req.Preset, req.Scenario)
	if err != nil {
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	ds, snapshotID, err := s.resolveDataset(r.Context(), req.Generator, req.Snapshot)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	requestID := uuid.NewString()
	frames := scenario.Frames(ds, state)

	logging.Info("frames computed",
		zap.String("request_id", requestID),
		zap.Int("frames", len(frames)),
		zap.Int64("seed", ds.Seed))

	s.writeJSON(w, &FramesResponse{
		State:  state,
		Frames: frames,
		Metadata: &ResponseMetadata{
			RequestID:  requestID,
			InputHash:  computeInputHash(&req),
			Seed:       ds.Seed,
			SnapshotID: snapshotID,
			DurationMs: time.Since(start).Milliseconds(),
			Version:    s.version,
		},
	}, http.StatusOK)
}

// handleCompare handles POST /compare
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	base, ok := types.ParseRegion(req.Base)
	if !ok {
		s.writeError(w, "VALIDATION_ERROR", "unknown base region: "+req.Base, http.StatusBadRequest)
		return
	}
	against, ok := types.ParseRegion(req.Against)
	if !ok {
		s.writeError(w, "VALIDATION_ERROR", "unknown against region: "+req.Against, http.StatusBadRequest)
		return
	}

	state, _, err := resolveState(req.Preset, req.Scenario)
	if err != nil {
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	ds, snapshotID, err := s.resolveDataset(r.Context(), req.Generator, req.Snapshot)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	summary := compare.Compare(ds, state, base, against, req.Year)

	delivered, okD := summary.DeliveredDelta()
	co2, okC := summary.CO2Delta()
	adjusted, okA := summary.CarbonAdjustedDelta()

	s.writeJSON(w, &CompareResponse{
		Summary:             &summary,
		DeliveredDelta:      compare.SignedCurrency(delivered, okD),
		CO2Delta:            compare.SignedMass(co2, okC),
		CarbonAdjustedDelta: compare.SignedCurrency(adjusted, okA),
		Metadata: &ResponseMetadata{
			RequestID:  uuid.NewString(),
			InputHash:  computeInputHash(&req),
			Seed:       ds.Seed,
			SnapshotID: snapshotID,
			DurationMs: time.Since(start).Milliseconds(),
			Version:    s.version,
		},
	}, http.StatusOK)
}

// handlePresets handles GET /presets
func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, &PresetsResponse{Presets: types.Presets()}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "steelcost",
		"api_version": "v1",
	}, http.StatusOK)
}

// resolveState picks the scenario state from a preset name or explicit
// params. A preset replaces all four levers at once.
func resolveState(preset string, params *ScenarioParams) (types.ScenarioState, types.PresetName, error) {
	if preset != "" && params != nil {
		return types.ScenarioState{}, "", errors.Input("preset and scenario are mutually exclusive")
	}
	if preset != "" {
		p, ok := types.LookupPreset(types.PresetName(preset))
		if !ok {
			return types.ScenarioState{}, "", errors.NotFound("preset", preset)
		}
		return p.State, p.Name, nil
	}
	if params != nil {
		return params.State(), "", nil
	}
	return types.ScenarioState{}, "", nil
}

// resolveDataset builds the observation table for a request: a stored
// snapshot when one is named, a fresh generation run otherwise.
func (s *Server) resolveDataset(ctx context.Context, params *GeneratorParams, snapshot string) (*types.Dataset, string, error) {
	if snapshot != "" {
		if s.store == nil {
			return nil, "", errors.New(errors.TypeStorage, "snapshot store not configured")
		}
		id, err := uuid.Parse(snapshot)
		if err != nil {
			return nil, "", errors.Wrap(errors.TypeInput, "invalid snapshot id", err)
		}
		ds, snap, err := s.store.GetSnapshot(ctx, id)
		if err != nil {
			return nil, "", err
		}
		return ds, snap.ID.String(), nil
	}

	cfg := generator.DefaultConfig()
	if params != nil {
		if params.StartYear != 0 {
			cfg.StartYear = params.StartYear
		}
		if params.EndYear != 0 {
			cfg.EndYear = params.EndYear
		}
		cfg.Seed = params.Seed
	}
	ds, err := generator.Generate(cfg)
	if err != nil {
		return nil, "", err
	}
	return ds, "", nil
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}, status)
}

// writeDomainError maps typed domain errors to HTTP statuses
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_ERROR"
	if e, ok := err.(*errors.Error); ok {
		code = string(e.Type)
		switch e.Type {
		case errors.TypeInput, errors.TypeParsing:
			status = http.StatusBadRequest
		case errors.TypeNotFound:
			status = http.StatusNotFound
		case errors.TypeStorage:
			status = http.StatusServiceUnavailable
		}
	}
	s.writeError(w, code, err.Error(), status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}

func computeInputHash(req interface{}) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
