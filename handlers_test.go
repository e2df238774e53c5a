package bikeshareinsights

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urban-metrics/bikeshare-insights/stations"
	"github.com/urban-metrics/bikeshare-insights/trips"
)

type stubSource struct {
	list []stations.Station
	err  error
}

func (s *stubSource) FetchStations(ctx context.Context) ([]stations.Station, error) {
	return s.list, s.err
}

func newTestRouter(dataset *Dataset, store *StationStore, src stations.Source) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(NewHandler(dataset, store, stations.NewNameCache(src)))
}

func doGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestTripStatsEndpoint(t *testing.T) {
	dataset := NewDataset()
	router := newTestRouter(dataset, NewStationStore(), &stubSource{})

	w := doGet(router, "/api/trips/stats")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	dataset.Replace(testRecords(), time.Now())

	w = doGet(router, "/api/trips/stats")
	require.Equal(t, http.StatusOK, w.Code)
	var stats trips.TripStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.TotalTrips)
	assert.Len(t, stats.HourlyDistribution, 24)

	w = doGet(router, "/api/trips/stats?month=2025-03")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.TotalTrips)

	w = doGet(router, "/api/trips/stats?month=bogus")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMonthsEndpoint(t *testing.T) {
	dataset := NewDataset()
	dataset.Replace(testRecords(), time.Now())
	router := newTestRouter(dataset, NewStationStore(), &stubSource{})

	w := doGet(router, "/api/trips/months")
	require.Equal(t, http.StatusOK, w.Code)
	var months []trips.MonthOption
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &months))
	require.Len(t, months, 3)
	assert.Equal(t, "all", months[0].Value)
}

func TestRoutesEndpointResolvesNames(t *testing.T) {
	dataset := NewDataset()
	dataset.Replace([]trips.TripRecord{
		{StartStation: "3005", EndStation: "3010", StartLat: 39.95, StartLon: -75.16, EndLat: 39.94, EndLon: -75.15, StartTime: "2025-03-01 08:00:00"},
		{StartStation: "3005", EndStation: "3010", StartLat: 39.95, StartLon: -75.16, EndLat: 39.94, EndLon: -75.15, StartTime: "2025-03-01 09:00:00"},
		{StartStation: "3010", EndStation: "3099", StartLat: 39.94, StartLon: -75.15, EndLat: 39.93, EndLon: -75.14, StartTime: "2025-03-01 10:00:00"},
	}, time.Now())
	src := &stubSource{list: []stations.Station{
		{ID: "3005", Name: "City Hall"},
		{ID: "3010", Name: "Washington Square"},
	}}
	router := newTestRouter(dataset, NewStationStore(), src)

	w := doGet(router, "/api/trips/routes")
	require.Equal(t, http.StatusOK, w.Code)

	var routes []struct {
		StartStation     string `json:"startStation"`
		EndStation       string `json:"endStation"`
		Count            int    `json:"count"`
		StartStationName string `json:"startStationName"`
		EndStationName   string `json:"endStationName"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &routes))
	require.Len(t, routes, 2)
	assert.Equal(t, 2, routes[0].Count)
	assert.Equal(t, "City Hall", routes[0].StartStationName)
	assert.Equal(t, "Washington Square", routes[0].EndStationName)
	// No name known for 3099: raw id fallback.
	assert.Equal(t, "3099", routes[1].EndStationName)
}

func TestStationEndpoints(t *testing.T) {
	store := NewStationStore()
	router := newTestRouter(NewDataset(), store, &stubSource{})

	assert.Equal(t, http.StatusServiceUnavailable, doGet(router, "/api/stations").Code)
	assert.Equal(t, http.StatusServiceUnavailable, doGet(router, "/api/stations/stats").Code)

	store.Replace([]stations.Station{
		{ID: "3005", BikesAvailable: 7, TotalDocks: 17, KioskPublicStatus: "Active"},
		{ID: "3010", BikesAvailable: 3, TotalDocks: 15, KioskPublicStatus: "Disabled"},
	}, time.Now())

	w := doGet(router, "/api/stations")
	require.Equal(t, http.StatusOK, w.Code)
	var list []stations.Station
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	w = doGet(router, "/api/stations/stats")
	require.Equal(t, http.StatusOK, w.Code)
	var stats stations.SystemStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 10, stats.TotalBikes)
	assert.Equal(t, 1, stats.ActiveStations)
}

func TestHealthEndpoint(t *testing.T) {
	dataset := NewDataset()
	router := newTestRouter(dataset, NewStationStore(), &stubSource{})

	w := doGet(router, "/api/health")
	require.Equal(t, http.StatusOK, w.Code)
	var resp healthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.False(t, resp.TripsLoaded)
}
