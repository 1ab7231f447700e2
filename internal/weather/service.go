package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/openmeteo"
)

// FailureMessage is the only error text shown to users
const FailureMessage = "Failed to fetch weather data. Please check the location name."

// ErrEmptyQuery is returned by Lookup for a blank query
var ErrEmptyQuery = errors.New("query cannot be empty")

// Service orchestrates a lookup: resolve the place, then fetch its conditions
type Service struct {
	geocoder   openmeteo.Geocoder
	forecaster openmeteo.Forecaster
}

// NewService creates a lookup service
func NewService(geocoder openmeteo.Geocoder, forecaster openmeteo.Forecaster) *Service {
	return &Service{
		geocoder:   geocoder,
		forecaster: forecaster,
	}
}

// Lookup resolves query and fetches current conditions for the first match
func (s *Service) Lookup(ctx context.Context, query string) (*models.Report, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	// 1. Geocode the place name
	place, err := s.geocoder.Resolve(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("resolving location: %w", err)
	}

	// 2. Fetch current conditions at its coordinates
	conditions, err := s.forecaster.FetchCurrent(ctx, place.Latitude, place.Longitude)
	if err != nil {
		return nil, fmt.Errorf("fetching conditions for %s: %w", place.Name, err)
	}

	return &models.Report{
		Place:      *place,
		Conditions: *conditions,
	}, nil
}
