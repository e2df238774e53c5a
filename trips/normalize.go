package trips

import (
	"math"
	"strconv"
	"strings"
)

// RecordFromRow builds a TripRecord from one parsed CSV row, keyed by the
// header names of the source files. Numeric fields that fail to parse, or
// parse to NaN, become 0 so that every row still counts toward totals.
func RecordFromRow(row map[string]string) TripRecord {
	return TripRecord{
		TripID:            row["trip_id"],
		Duration:          numericField(row["duration"]),
		StartTime:         row["start_time"],
		EndTime:           row["end_time"],
		StartStation:      row["start_station"],
		StartLat:          numericField(row["start_lat"]),
		StartLon:          numericField(row["start_lon"]),
		EndStation:        row["end_station"],
		EndLat:            numericField(row["end_lat"]),
		EndLon:            numericField(row["end_lon"]),
		BikeID:            row["bike_id"],
		PlanDuration:      numericField(row["plan_duration"]),
		TripRouteCategory: row["trip_route_category"],
		PassholderType:    row["passholder_type"],
		BikeType:          row["bike_type"],
	}
}

func numericField(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	return v
}
