package stations

// BikeInfo is one dock slot of a station.
type BikeInfo struct {
	DockNumber  int  `json:"dockNumber"`
	IsElectric  bool `json:"isElectric"`
	IsAvailable bool `json:"isAvailable"`
	Battery     *int `json:"battery"`
}

// Station is one docking station's status, rebuilt wholesale on every poll.
type Station struct {
	ID                     string     `json:"id"`
	Name                   string     `json:"name"`
	Lat                    float64    `json:"lat"`
	Lng                    float64    `json:"lng"`
	BikesAvailable         int        `json:"bikesAvailable"`
	DocksAvailable         int        `json:"docksAvailable"`
	TotalDocks             int        `json:"totalDocks"`
	ClassicBikesAvailable  int        `json:"classicBikesAvailable"`
	ElectricBikesAvailable int        `json:"electricBikesAvailable"`
	SmartBikesAvailable    int        `json:"smartBikesAvailable"`
	KioskStatus            string     `json:"kioskStatus"`
	KioskPublicStatus      string     `json:"kioskPublicStatus"`
	AddressStreet          string     `json:"addressStreet"`
	AddressCity            string     `json:"addressCity"`
	AddressState           string     `json:"addressState"`
	AddressZipCode         string     `json:"addressZipCode"`
	Bikes                  []BikeInfo `json:"bikes"`
}

// SystemStats is the order-independent reduction of a station list.
// Available bikes and total bikes are the same quantity at this level;
// bikes not currently docked are not tracked in the aggregate.
type SystemStats struct {
	TotalStations  int `json:"totalStations"`
	TotalBikes     int `json:"totalBikes"`
	TotalDocks     int `json:"totalDocks"`
	AvailableBikes int `json:"availableBikes"`
	AvailableDocks int `json:"availableDocks"`
	ClassicBikes   int `json:"classicBikes"`
	ElectricBikes  int `json:"electricBikes"`
	SmartBikes     int `json:"smartBikes"`
	ActiveStations int `json:"activeStations"`
}

// feedDocument mirrors the wire shape of the station status feed.
type feedDocument struct {
	Features []feedFeature `json:"features"`
	Type     string        `json:"type"`
}

type feedFeature struct {
	Properties feedProperties `json:"properties"`
	Type       string         `json:"type"`
}

type feedProperties struct {
	ID                     int        `json:"id"`
	Name                   string     `json:"name"`
	Latitude               float64    `json:"latitude"`
	Longitude              float64    `json:"longitude"`
	TotalDocks             int        `json:"totalDocks"`
	DocksAvailable         int        `json:"docksAvailable"`
	BikesAvailable         int        `json:"bikesAvailable"`
	ClassicBikesAvailable  int        `json:"classicBikesAvailable"`
	SmartBikesAvailable    int        `json:"smartBikesAvailable"`
	ElectricBikesAvailable int        `json:"electricBikesAvailable"`
	KioskStatus            string     `json:"kioskStatus"`
	KioskPublicStatus      string     `json:"kioskPublicStatus"`
	AddressStreet          string     `json:"addressStreet"`
	AddressCity            string     `json:"addressCity"`
	AddressState           string     `json:"addressState"`
	AddressZipCode         string     `json:"addressZipCode"`
	Bikes                  []BikeInfo `json:"bikes"`
}
