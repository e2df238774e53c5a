// Package geo provides great-circle distance math for station coordinates.
package geo

import "math"

// earthRadiusMiles is the mean Earth radius used for trip distances.
const earthRadiusMiles = 3959.0

// DistanceMiles returns the haversine distance in miles between two
// latitude/longitude points given in degrees. NaN inputs propagate.
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	la1 := lat1 * math.Pi / 180
	la2 := lat2 * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMiles * c
}
