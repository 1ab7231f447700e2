package openmeteo

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

const (
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com"
	DefaultForecastURL  = "https://api.open-meteo.com"
	DefaultTimeout      = 10 * time.Second

	userAgent = "WeatherTerminal/1.0 (github.com/ngmaloney/weather-terminal)"
)

// Geocoder resolves a place name to coordinates
type Geocoder interface {
	// Resolve returns the first place matching name
	Resolve(ctx context.Context, name string) (*models.Place, error)
}

// Forecaster fetches weather readings for a coordinate
type Forecaster interface {
	// FetchCurrent retrieves current conditions at lat/lon
	FetchCurrent(ctx context.Context, lat, lon float64) (*models.Conditions, error)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// get issues a GET with the client's headers set
func get(ctx context.Context, client *http.Client, op, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	return resp, nil
}
