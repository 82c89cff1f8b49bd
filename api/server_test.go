package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	return NewServer("test")
}

func postJSON(t *testing.T, s *Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestFramesWithPreset(t *testing.T) {
	rec := postJSON(t, newTestServer(), "/frames", FramesRequest{
		Preset:    "carbon-2030",
		Generator: &GeneratorParams{StartYear: 2020, EndYear: 2022, Seed: 7},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp FramesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Frames, 3)
	require.NotNil(t, resp.Metadata)
	assert.Equal(t, int64(7), resp.Metadata.Seed)
	assert.NotEmpty(t, resp.Metadata.RequestID)
	assert.NotEmpty(t, resp.Metadata.InputHash)
}

func TestFramesDeterministicForSeededRequests(t *testing.T) {
	s := newTestServer()
	req := FramesRequest{
		Preset:    "high-tariff",
		Generator: &GeneratorParams{StartYear: 2020, EndYear: 2021, Seed: 99},
	}

	first := postJSON(t, s, "/frames", req)
	second := postJSON(t, s, "/frames", req)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)

	var a, b FramesResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))

	aj, _ := json.Marshal(a.Frames)
	bj, _ := json.Marshal(b.Frames)
	assert.Equal(t, string(aj), string(bj))
}

func TestFramesRejectsUnknownPreset(t *testing.T) {
	rec := postJSON(t, newTestServer(), "/frames", FramesRequest{Preset: "carbon-2200"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFramesRejectsPresetPlusScenario(t *testing.T) {
	rec := postJSON(t, newTestServer(), "/frames", FramesRequest{
		Preset:   "baseline",
		Scenario: &ScenarioParams{},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFramesRejectsSnapshotWithoutStore(t *testing.T) {
	rec := postJSON(t, newTestServer(), "/frames", FramesRequest{
		Snapshot: "0e3ff54e-59e5-4b3a-9bcb-0c6ea6c8214f",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCompareWorkedExample(t *testing.T) {
	rec := postJSON(t, newTestServer(), "/compare", CompareRequest{
		Preset:    "carbon-2030",
		Generator: &GeneratorParams{StartYear: 2020, EndYear: 2030, Seed: 5},
		Base:      "US",
		Against:   "China",
		Year:      2030,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CompareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Summary)
	assert.True(t, resp.Summary.Complete())
	assert.NotEqual(t, "N/A", resp.DeliveredDelta)
	assert.Contains(t, resp.DeliveredDelta, "/ton")
}

func TestCompareMissingYearReturnsNA(t *testing.T) {
	rec := postJSON(t, newTestServer(), "/compare", CompareRequest{
		Generator: &GeneratorParams{StartYear: 2020, EndYear: 2022, Seed: 5},
		Base:      "US",
		Against:   "China",
		Year:      1980,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CompareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "N/A", resp.DeliveredDelta)
	assert.Equal(t, "N/A", resp.CO2Delta)
	assert.Equal(t, "N/A", resp.CarbonAdjustedDelta)
}

func TestCompareRejectsUnknownRegion(t *testing.T) {
	rec := postJSON(t, newTestServer(), "/compare", CompareRequest{
		Base:    "Atlantis",
		Against: "China",
		Year:    2030,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPresetsEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/presets", nil)
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PresetsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Presets, 4)
}

func TestHealthEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
