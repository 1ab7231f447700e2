package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/openmeteo"
)

// Environment variables read by Load
const (
	EnvGeocodingURL = "WEATHER_GEOCODING_URL"
	EnvForecastURL  = "WEATHER_FORECAST_URL"
	EnvUnit         = "WEATHER_UNIT"
	EnvTimeout      = "WEATHER_TIMEOUT"
	EnvDebugLog     = "WEATHER_DEBUG_LOG"
)

// Config holds runtime settings
type Config struct {
	GeocodingURL string
	ForecastURL  string
	Unit         models.Unit
	Timeout      time.Duration
	DebugLog     string // empty disables debug logging
}

// Load reads .env (if present) and the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Ignoring unreadable .env file: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only
func FromEnv() (*Config, error) {
	cfg := &Config{
		GeocodingURL: getEnv(EnvGeocodingURL, openmeteo.DefaultGeocodingURL),
		ForecastURL:  getEnv(EnvForecastURL, openmeteo.DefaultForecastURL),
		Unit:         models.Celsius,
		Timeout:      openmeteo.DefaultTimeout,
		DebugLog:     os.Getenv(EnvDebugLog),
	}

	if v := os.Getenv(EnvUnit); v != "" {
		unit, err := models.ParseUnit(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvUnit, err)
		}
		cfg.Unit = unit
	}

	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("%s: must be positive, got %s", EnvTimeout, d)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
