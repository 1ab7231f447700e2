package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/openmeteo"
	"github.com/ngmaloney/weather-terminal/internal/ui"
	"github.com/ngmaloney/weather-terminal/internal/weather"
)

// This demo shows the UI with mock data
func main() {
	service := weather.NewService(
		openmeteo.NewGeocodingClient("", openmeteo.DefaultTimeout),
		openmeteo.NewForecastClient("", openmeteo.DefaultTimeout),
	)

	m := ui.NewModel(service, ui.Options{Unit: models.Celsius})

	// Set up a mock result; new searches still hit the live API
	m.SetReport(&models.Report{
		Place: models.Place{
			Latitude:  48.85341,
			Longitude: 2.3488,
			Name:      "Paris",
			Country:   "France",
		},
		Conditions: models.Conditions{
			TemperatureC: 18.4,
			Humidity:     63,
			WindSpeed:    3.6,
			WeatherCode:  2,
		},
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running demo: %v\n", err)
		os.Exit(1)
	}
}
