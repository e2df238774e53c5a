package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// TripsConfig describes where the quarterly trip CSV files live and how
// often the dataset is re-fetched.
type TripsConfig struct {
	BaseURL           string   `yaml:"baseURL" validate:"omitempty,url"`
	Files             []string `yaml:"files"`
	RefreshIntervalMS int      `yaml:"refreshIntervalMS" validate:"gte=0"`
	TimeoutMS         int      `yaml:"timeoutMS" validate:"gte=0"`
}

// StationsConfig describes the real-time station status feed.
type StationsConfig struct {
	FeedURL           string `yaml:"feedURL" validate:"omitempty,url"`
	RefreshIntervalMS int    `yaml:"refreshIntervalMS" validate:"gte=0"`
	TimeoutMS         int    `yaml:"timeoutMS" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server" validate:"required"`
	Trips    TripsConfig    `yaml:"trips"`
	Stations StationsConfig `yaml:"stations"`
	LogLevel string         `yaml:"logLevel"`
}
