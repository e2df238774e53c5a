package stations

// activePublicStatus is matched case-sensitively when counting active
// stations.
const activePublicStatus = "Active"

// Summarize reduces a station list into system-wide totals. The reduction
// is commutative over the list, so ordering never affects the result.
func Summarize(list []Station) SystemStats {
	var stats SystemStats
	for _, s := range list {
		stats.TotalStations++
		stats.TotalBikes += s.BikesAvailable
		stats.TotalDocks += s.TotalDocks
		stats.AvailableBikes += s.BikesAvailable
		stats.AvailableDocks += s.DocksAvailable
		stats.ClassicBikes += s.ClassicBikesAvailable
		stats.ElectricBikes += s.ElectricBikesAvailable
		stats.SmartBikes += s.SmartBikesAvailable
		if s.KioskPublicStatus == activePublicStatus {
			stats.ActiveStations++
		}
	}
	return stats
}
