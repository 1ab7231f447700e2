package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// GeocodingClient implements Geocoder using the Open-Meteo geocoding API
type GeocodingClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewGeocodingClient creates a geocoding client. An empty baseURL uses DefaultGeocodingURL.
func NewGeocodingClient(baseURL string, timeout time.Duration) *GeocodingClient {
	if baseURL == "" {
		baseURL = DefaultGeocodingURL
	}
	return &GeocodingClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: newHTTPClient(timeout),
	}
}

// geocodingResponse represents the Open-Meteo search response
type geocodingResponse struct {
	Results []struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Name      string   `json:"name"`
		Country   string   `json:"country"`
	} `json:"results"`
}

// Resolve returns the first place matching name
func (c *GeocodingClient) Resolve(ctx context.Context, name string) (*models.Place, error) {
	resp, err := get(ctx, c.httpClient, "geocoding", c.searchURL(name))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &NotFoundError{Query: name, StatusCode: resp.StatusCode}
	}

	var geoResp geocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&geoResp); err != nil {
		return nil, fmt.Errorf("decoding geocoding response: %w", err)
	}

	// count=1 leaves disambiguation to the API
	if len(geoResp.Results) == 0 {
		return nil, &NotFoundError{Query: name}
	}

	result := geoResp.Results[0]
	if result.Latitude == nil || result.Longitude == nil {
		return nil, &NotFoundError{Query: name}
	}

	return &models.Place{
		Latitude:  *result.Latitude,
		Longitude: *result.Longitude,
		Name:      result.Name,
		Country:   result.Country,
	}, nil
}

// searchURL builds the search request; parameter order is fixed
func (c *GeocodingClient) searchURL(name string) string {
	return fmt.Sprintf("%s/v1/search?name=%s&count=1&language=en&format=json",
		c.baseURL, url.QueryEscape(name))
}
