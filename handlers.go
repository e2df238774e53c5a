package bikeshareinsights

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/urban-metrics/bikeshare-insights/stations"
	"github.com/urban-metrics/bikeshare-insights/trips"
)

// Handler serves the analytics API from the snapshot stores.
type Handler struct {
	dataset      *Dataset
	stationStore *StationStore
	names        *stations.NameCache
}

func NewHandler(dataset *Dataset, store *StationStore, names *stations.NameCache) *Handler {
	return &Handler{dataset: dataset, stationStore: store, names: names}
}

type healthResponse struct {
	Status            string `json:"status"`
	TripsLoaded       bool   `json:"tripsLoaded"`
	TotalTrips        int    `json:"totalTrips"`
	TripsLoadedAt     string `json:"tripsLoadedAt,omitempty"`
	StationsLoaded    bool   `json:"stationsLoaded"`
	StationsUpdatedAt string `json:"stationsUpdatedAt,omitempty"`
}

// GetHealth reports process liveness and snapshot ages.
// GET /api/health
func (h *Handler) GetHealth(c *gin.Context) {
	resp := healthResponse{Status: "ok"}
	if h.dataset.Loaded() {
		resp.TripsLoaded = true
		resp.TotalTrips = h.dataset.TotalTrips()
		resp.TripsLoadedAt = h.dataset.LoadedAt().UTC().Format(time.RFC3339)
	}
	if _, ok := h.stationStore.Snapshot(); ok {
		resp.StationsLoaded = true
		resp.StationsUpdatedAt = h.stationStore.UpdatedAt().UTC().Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, resp)
}

// GetTripStats returns the aggregate for the requested month filter.
// GET /api/trips/stats?month=all|YYYY-MM
func (h *Handler) GetTripStats(c *gin.Context) {
	token := c.DefaultQuery("month", trips.FilterAll)
	if !trips.ValidFilterToken(token) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be \"all\" or YYYY-MM"})
		return
	}
	if !h.dataset.Loaded() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "trip data not loaded yet"})
		return
	}
	c.JSON(http.StatusOK, h.dataset.StatsFor(token))
}

// GetMonths lists the selectable month filter values.
// GET /api/trips/months
func (h *Handler) GetMonths(c *gin.Context) {
	if !h.dataset.Loaded() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "trip data not loaded yet"})
		return
	}
	c.JSON(http.StatusOK, h.dataset.Months())
}

type routeWithNames struct {
	trips.RouteData
	StartStationName string `json:"startStationName"`
	EndStationName   string `json:"endStationName"`
}

// GetRoutes returns the popular routes with station names resolved through
// the name cache. Unresolved ids fall back to the raw id.
// GET /api/trips/routes?month=all|YYYY-MM
func (h *Handler) GetRoutes(c *gin.Context) {
	token := c.DefaultQuery("month", trips.FilterAll)
	if !trips.ValidFilterToken(token) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be \"all\" or YYYY-MM"})
		return
	}
	if !h.dataset.Loaded() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "trip data not loaded yet"})
		return
	}
	mapping := h.names.GetMapping(c.Request.Context())
	routes := h.dataset.StatsFor(token).PopularRoutes
	out := make([]routeWithNames, 0, len(routes))
	for _, r := range routes {
		out = append(out, routeWithNames{
			RouteData:        r,
			StartStationName: stations.Name(r.StartStation, mapping),
			EndStationName:   stations.Name(r.EndStation, mapping),
		})
	}
	c.JSON(http.StatusOK, out)
}

// GetStations returns the latest station snapshot.
// GET /api/stations
func (h *Handler) GetStations(c *gin.Context) {
	list, ok := h.stationStore.Snapshot()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "station data not loaded yet"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetSystemStats returns system-wide totals over the latest snapshot.
// GET /api/stations/stats
func (h *Handler) GetSystemStats(c *gin.Context) {
	list, ok := h.stationStore.Snapshot()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "station data not loaded yet"})
		return
	}
	c.JSON(http.StatusOK, stations.Summarize(list))
}
