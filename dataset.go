package bikeshareinsights

import (
	"sync"
	"time"

	"github.com/urban-metrics/bikeshare-insights/stations"
	"github.com/urban-metrics/bikeshare-insights/trips"
)

// Dataset holds the most recently loaded trip records together with the
// per-filter-token statistics memo. Replace swaps the whole snapshot;
// whichever concurrent load finishes last wins, and the memo resets with
// each new snapshot.
type Dataset struct {
	mu        sync.Mutex
	records   []trips.TripRecord
	loaded    bool
	loadedAt  time.Time
	statsMemo map[string]trips.TripStats
}

func NewDataset() *Dataset {
	return &Dataset{statsMemo: map[string]trips.TripStats{}}
}

// Replace installs a freshly loaded record set.
func (d *Dataset) Replace(records []trips.TripRecord, at time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.records = records
	d.loaded = true
	d.loadedAt = at
	d.statsMemo = map[string]trips.TripStats{}
}

// Loaded reports whether a snapshot has ever been installed.
func (d *Dataset) Loaded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loaded
}

// LoadedAt returns when the current snapshot was installed.
func (d *Dataset) LoadedAt() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loadedAt
}

// TotalTrips returns the size of the current snapshot.
func (d *Dataset) TotalTrips() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.records)
}

// Months lists the filter options derivable from the current snapshot.
func (d *Dataset) Months() []trips.MonthOption {
	d.mu.Lock()
	defer d.mu.Unlock()
	return trips.AvailableMonths(d.records)
}

// StatsFor returns the aggregate for a month filter token, computing and
// memoizing it on first request against the current snapshot.
func (d *Dataset) StatsFor(token string) trips.TripStats {
	d.mu.Lock()
	defer d.mu.Unlock()
	if stats, ok := d.statsMemo[token]; ok {
		return stats
	}
	stats := trips.CalculateStats(trips.FilterByMonth(d.records, token))
	d.statsMemo[token] = stats
	return stats
}

// StationStore holds the latest station poll snapshot.
type StationStore struct {
	mu        sync.RWMutex
	list      []stations.Station
	loaded    bool
	updatedAt time.Time
}

func NewStationStore() *StationStore {
	return &StationStore{}
}

// Replace installs a fresh station snapshot.
func (s *StationStore) Replace(list []stations.Station, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = list
	s.loaded = true
	s.updatedAt = at
}

// Snapshot returns the latest station list and whether one exists yet.
func (s *StationStore) Snapshot() ([]stations.Station, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list, s.loaded
}

// UpdatedAt returns when the current snapshot was installed.
func (s *StationStore) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}
