package trips

import (
	"fmt"
	"math"
	"sort"

	"github.com/urban-metrics/bikeshare-insights/geo"
)

// topRoutesLimit caps the popular-routes ranking.
const topRoutesLimit = 50

// frequencyTable counts string keys while remembering first-insertion order,
// so ties at the maximum resolve to the first key observed.
type frequencyTable struct {
	counts map[string]int
	order  []string
}

func newFrequencyTable() *frequencyTable {
	return &frequencyTable{counts: map[string]int{}}
}

func (ft *frequencyTable) Add(key string) {
	if _, seen := ft.counts[key]; !seen {
		ft.order = append(ft.order, key)
	}
	ft.counts[key]++
}

// Top returns the first-observed key among those with the maximum count.
// The scan replaces the current maximum only on strict greater-than.
func (ft *frequencyTable) Top() string {
	top := ""
	topCount := 0
	for _, k := range ft.order {
		if ft.counts[k] > topCount {
			top = k
			topCount = ft.counts[k]
		}
	}
	return top
}

func emptyStats() TripStats {
	hourly := make([]HourlyCount, 24)
	for h := range hourly {
		hourly[h].Hour = h
	}
	return TripStats{
		PassholderTypeBreakdown: map[string]int{},
		DailyTrips:              []DailyCount{},
		HourlyDistribution:      hourly,
		PopularRoutes:           []RouteData{},
	}
}

func hasCoordinates(r TripRecord) bool {
	return r.StartLat != 0 && r.StartLon != 0 && r.EndLat != 0 && r.EndLon != 0
}

// CalculateStats reduces a trip record sequence into the full TripStats
// aggregate in one pass. An empty input is a defined terminal case and
// yields a zero-valued result with a fully populated hourly distribution.
func CalculateStats(records []TripRecord) TripStats {
	stats := emptyStats()
	total := len(records)
	if total == 0 {
		return stats
	}
	stats.TotalTrips = total

	var durationSum, distanceSum float64
	startStations := newFrequencyTable()
	endStations := newFrequencyTable()
	daily := map[string]int{}
	var hourly [24]int
	routes := map[string]*RouteData{}
	var routeOrder []string

	for _, r := range records {
		durationSum += r.Duration
		startStations.Add(r.StartStation)
		endStations.Add(r.EndStation)

		if r.BikeType == "electric" {
			stats.BikeTypeBreakdown.Electric++
		} else {
			stats.BikeTypeBreakdown.Standard++
		}
		stats.PassholderTypeBreakdown[r.PassholderType]++

		if t, ok := parseStartTime(r.StartTime); ok {
			daily[dateKey(t)]++
			if h := t.Hour(); h >= 0 && h < 24 {
				hourly[h]++
			}
		} else {
			daily[invalidDateKey]++
		}

		// Distance and route grouping only apply when both endpoints are known.
		if !hasCoordinates(r) {
			continue
		}
		stats.TripsWithDistance++
		distanceSum += geo.DistanceMiles(r.StartLat, r.StartLon, r.EndLat, r.EndLon)

		key := r.StartStation + "|" + r.EndStation
		if route, seen := routes[key]; seen {
			route.Count++
		} else {
			routes[key] = &RouteData{
				StartLat:     r.StartLat,
				StartLon:     r.StartLon,
				EndLat:       r.EndLat,
				EndLon:       r.EndLon,
				Count:        1,
				StartStation: r.StartStation,
				EndStation:   r.EndStation,
			}
			routeOrder = append(routeOrder, key)
		}
	}

	stats.AverageDuration = int(math.Round(durationSum / float64(total)))
	stats.TotalDistance = int(math.Round(distanceSum))
	stats.MostPopularStartStation = startStations.Top()
	stats.MostPopularEndStation = endStations.Top()

	peakHour := 0
	peakTrips := hourly[0]
	for h := 1; h < 24; h++ {
		if hourly[h] > peakTrips {
			peakHour = h
			peakTrips = hourly[h]
		}
	}
	stats.PeakHour = fmt.Sprintf("%d:00-%d:00", peakHour, peakHour+1)
	for h, n := range hourly {
		stats.HourlyDistribution[h].Trips = n
	}

	dates := make([]string, 0, len(daily))
	for d := range daily {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	stats.DailyTrips = make([]DailyCount, 0, len(dates))
	for _, d := range dates {
		stats.DailyTrips = append(stats.DailyTrips, DailyCount{Date: d, Trips: daily[d]})
	}

	popular := make([]RouteData, 0, len(routeOrder))
	for _, k := range routeOrder {
		popular = append(popular, *routes[k])
	}
	sort.SliceStable(popular, func(i, j int) bool { return popular[i].Count > popular[j].Count })
	if len(popular) > topRoutesLimit {
		popular = popular[:topRoutesLimit]
	}
	stats.PopularRoutes = popular

	return stats
}
