package stations

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// cacheTTL is the freshness window of the station name mapping.
const cacheTTL = 5 * time.Minute

// NameCache is a process-wide, lazily refreshed id-to-name lookup table
// sourced from the station status feed. A fetch failure returns an empty
// mapping without touching the cached state or the refresh timestamp, so
// the very next call retries instead of waiting out the window.
type NameCache struct {
	source Source
	now    func() time.Time

	mu          sync.Mutex
	mapping     map[string]string
	lastRefresh time.Time
}

// NewNameCache creates a cache over the given station source.
func NewNameCache(source Source) *NameCache {
	return &NameCache{source: source, now: time.Now}
}

// GetMapping returns the cached id-to-name mapping, refreshing it from the
// feed when unset or older than the freshness window.
func (nc *NameCache) GetMapping(ctx context.Context) map[string]string {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	now := nc.now()
	if nc.mapping != nil && now.Sub(nc.lastRefresh) < cacheTTL {
		return nc.mapping
	}

	list, err := nc.source.FetchStations(ctx)
	if err != nil {
		log.WithError(err).Error("station name refresh failed")
		return map[string]string{}
	}
	mapping := make(map[string]string, len(list))
	for _, s := range list {
		mapping[s.ID] = s.Name
	}
	nc.mapping = mapping
	nc.lastRefresh = now
	return nc.mapping
}

// Name resolves a station id through a mapping, falling back to the raw id.
func Name(id string, mapping map[string]string) string {
	if name, ok := mapping[id]; ok && name != "" {
		return name
	}
	return id
}
