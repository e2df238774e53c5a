package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// LoadAppConfig loads and validates the application configuration from
// config.yml. An explicit path wins over the search paths; environment
// variables override individual values after the file is read.
func LoadAppConfig(explicitPath string) (AppConfig, error) {
	var cfg AppConfig
	paths := []string{"config.yml", "./deploy/config.yml"}
	if explicitPath != "" {
		paths = []string{explicitPath}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	applyEnvOverrides(&cfg)
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 16180
	}
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return cfg, err
	}
	if err := v.Struct(cfg.Trips); err != nil {
		return cfg, err
	}
	if err := v.Struct(cfg.Stations); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *AppConfig) {
	if s := os.Getenv("PORT"); s != "" {
		if p, err := strconv.Atoi(s); err == nil {
			cfg.Server.Port = p
		}
	}
	if s := os.Getenv("TRIPS_BASE_URL"); s != "" {
		cfg.Trips.BaseURL = s
	}
	if s := os.Getenv("STATIONS_FEED_URL"); s != "" {
		cfg.Stations.FeedURL = s
	}
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		cfg.LogLevel = s
	}
}
