package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

const currentFields = "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code"

// ForecastClient implements Forecaster using the Open-Meteo forecast API
type ForecastClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewForecastClient creates a forecast client. An empty baseURL uses DefaultForecastURL.
func NewForecastClient(baseURL string, timeout time.Duration) *ForecastClient {
	if baseURL == "" {
		baseURL = DefaultForecastURL
	}
	return &ForecastClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: newHTTPClient(timeout),
	}
}

type forecastResponse struct {
	Current *struct {
		Temperature2m      float64 `json:"temperature_2m"`
		RelativeHumidity2m float64 `json:"relative_humidity_2m"`
		WindSpeed10m       float64 `json:"wind_speed_10m"`
		WeatherCode        int     `json:"weather_code"`
	} `json:"current"`
}

// FetchCurrent retrieves current conditions at lat/lon
func (c *ForecastClient) FetchCurrent(ctx context.Context, lat, lon float64) (*models.Conditions, error) {
	resp, err := get(ctx, c.httpClient, "forecast", c.forecastURL(lat, lon))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &FetchError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var fcResp forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&fcResp); err != nil {
		return nil, fmt.Errorf("decoding forecast response: %w", err)
	}
	if fcResp.Current == nil {
		return nil, fmt.Errorf("decoding forecast response: %w", ErrMissingCurrent)
	}

	return &models.Conditions{
		TemperatureC: fcResp.Current.Temperature2m,
		Humidity:     fcResp.Current.RelativeHumidity2m,
		WindSpeed:    fcResp.Current.WindSpeed10m,
		WeatherCode:  fcResp.Current.WeatherCode,
	}, nil
}

// forecastURL builds the current-conditions request; parameter order is fixed
func (c *ForecastClient) forecastURL(lat, lon float64) string {
	return fmt.Sprintf("%s/v1/forecast?latitude=%s&longitude=%s&current=%s&timezone=auto",
		c.baseURL, formatCoord(lat), formatCoord(lon), currentFields)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
