package bikeshareinsights

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/urban-metrics/bikeshare-insights/stations"
	"github.com/urban-metrics/bikeshare-insights/trips"
)

const (
	defaultTripInterval    = 60 * time.Second
	defaultStationInterval = 30 * time.Second
)

// TripSource yields a freshly loaded trip dataset. Satisfied by
// trips.Loader.
type TripSource interface {
	Load(ctx context.Context) ([]trips.TripRecord, error)
}

// Refresher drives the polling loops: fixed-interval timers that re-run the
// trip load and the station fetch. Each tick runs independently, so a slow
// fetch may overlap the next one; the stores keep whichever result lands
// last. A failed refresh logs and leaves the previous snapshot in place.
type Refresher struct {
	loader       TripSource
	feed         stations.Source
	dataset      *Dataset
	stationStore *StationStore

	tripInterval    time.Duration
	stationInterval time.Duration
}

// NewRefresher wires the fetch paths to the snapshot stores. Non-positive
// intervals fall back to the defaults.
func NewRefresher(loader TripSource, feed stations.Source, dataset *Dataset, store *StationStore, tripInterval, stationInterval time.Duration) *Refresher {
	if tripInterval <= 0 {
		tripInterval = defaultTripInterval
	}
	if stationInterval <= 0 {
		stationInterval = defaultStationInterval
	}
	return &Refresher{
		loader:          loader,
		feed:            feed,
		dataset:         dataset,
		stationStore:    store,
		tripInterval:    tripInterval,
		stationInterval: stationInterval,
	}
}

// Start performs an immediate refresh of both sources and then launches the
// polling loops. The loops stop when ctx is cancelled; in-flight fetches
// are left to finish and their results are simply unused.
func (r *Refresher) Start(ctx context.Context) {
	go r.RefreshTrips(ctx)
	go r.RefreshStations(ctx)
	go r.loop(ctx, r.tripInterval, r.RefreshTrips)
	go r.loop(ctx, r.stationInterval, r.RefreshStations)
}

func (r *Refresher) loop(ctx context.Context, interval time.Duration, refresh func(context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			go refresh(ctx)
		}
	}
}

// RefreshTrips runs one fetch-and-install cycle for the trip dataset.
func (r *Refresher) RefreshTrips(ctx context.Context) {
	records, err := r.loader.Load(ctx)
	if err != nil {
		log.WithError(err).Error("trip refresh failed")
		return
	}
	r.dataset.Replace(records, time.Now())
}

// RefreshStations runs one fetch-and-install cycle for the station snapshot.
func (r *Refresher) RefreshStations(ctx context.Context) {
	list, err := r.feed.FetchStations(ctx)
	if err != nil {
		log.WithError(err).Error("station refresh failed")
		return
	}
	r.stationStore.Replace(list, time.Now())
	log.WithField("stations", len(list)).Debug("station snapshot updated")
}
