package trips

// TripRecord is one bike-share rental event, normalized from a raw CSV row.
// Records are immutable once built; a zero coordinate on either end means
// the position is unknown and the trip is excluded from distance-based
// aggregates and route grouping, but still counts everywhere else.
type TripRecord struct {
	TripID            string  `json:"trip_id"`
	Duration          float64 `json:"duration"` // minutes
	StartTime         string  `json:"start_time"`
	EndTime           string  `json:"end_time"`
	StartStation      string  `json:"start_station"`
	StartLat          float64 `json:"start_lat"`
	StartLon          float64 `json:"start_lon"`
	EndStation        string  `json:"end_station"`
	EndLat            float64 `json:"end_lat"`
	EndLon            float64 `json:"end_lon"`
	BikeID            string  `json:"bike_id"`
	PlanDuration      float64 `json:"plan_duration"`
	TripRouteCategory string  `json:"trip_route_category"`
	PassholderType    string  `json:"passholder_type"`
	BikeType          string  `json:"bike_type"` // "standard" | "electric"
}

// RouteData is a directed station pair aggregation bucket. Coordinates are
// taken from the first trip observed for the pair and never updated.
type RouteData struct {
	StartLat     float64 `json:"startLat"`
	StartLon     float64 `json:"startLon"`
	EndLat       float64 `json:"endLat"`
	EndLon       float64 `json:"endLon"`
	Count        int     `json:"count"`
	StartStation string  `json:"startStation"`
	EndStation   string  `json:"endStation"`
}

// BikeTypeBreakdown splits trips into electric and everything else.
type BikeTypeBreakdown struct {
	Standard int `json:"standard"`
	Electric int `json:"electric"`
}

// DailyCount is one entry of the daily trip series.
type DailyCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Trips int    `json:"trips"`
}

// HourlyCount is one bucket of the fixed 24-entry hourly distribution.
type HourlyCount struct {
	Hour  int `json:"hour"`
	Trips int `json:"trips"`
}

// TripStats is the full aggregate over a trip record set.
type TripStats struct {
	TotalTrips              int               `json:"totalTrips"`
	AverageDuration         int               `json:"averageDuration"` // minutes, rounded
	TotalDistance           int               `json:"totalDistance"`   // miles, rounded
	TripsWithDistance       int               `json:"tripsWithDistance"`
	MostPopularStartStation string            `json:"mostPopularStartStation"`
	MostPopularEndStation   string            `json:"mostPopularEndStation"`
	PeakHour                string            `json:"peakHour"`
	BikeTypeBreakdown       BikeTypeBreakdown `json:"bikeTypeBreakdown"`
	PassholderTypeBreakdown map[string]int    `json:"passholderTypeBreakdown"`
	DailyTrips              []DailyCount      `json:"dailyTrips"`
	HourlyDistribution      []HourlyCount     `json:"hourlyDistribution"`
	PopularRoutes           []RouteData       `json:"popularRoutes"`
}
