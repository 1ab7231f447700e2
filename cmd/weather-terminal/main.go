package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/openmeteo"
	"github.com/ngmaloney/weather-terminal/internal/ui"
	"github.com/ngmaloney/weather-terminal/internal/weather"
)

func main() {
	location := flag.String("location", "", "Look up this location on start (e.g., Paris)")
	unitFlag := flag.String("unit", "", "Temperature unit, C or F (overrides WEATHER_UNIT)")
	printOnly := flag.Bool("print", false, "Print current conditions for --location and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		exitf("Error: %v\n", err)
	}

	if *unitFlag != "" {
		unit, err := models.ParseUnit(*unitFlag)
		if err != nil {
			exitf("Error: %v\n", err)
		}
		cfg.Unit = unit
	}

	if *printOnly && *location == "" {
		exitf("Error: --print requires --location.\n")
	}

	// Error details only ever reach the debug log
	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "weather")
		if err != nil {
			exitf("Error opening debug log: %v\n", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	service := weather.NewService(
		openmeteo.NewGeocodingClient(cfg.GeocodingURL, cfg.Timeout),
		openmeteo.NewForecastClient(cfg.ForecastURL, cfg.Timeout),
	)

	if *printOnly {
		code := printReport(os.Stdout, os.Stderr, service, cfg, *location)
		if code != 0 {
			os.Exit(code)
		}
		return
	}

	m := ui.NewModel(service, ui.Options{
		Unit:     cfg.Unit,
		Timeout:  cfg.Timeout,
		Location: *location,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		exitf("Error running application: %v\n", err)
	}
}

// printReport runs a single lookup and returns the exit code
func printReport(stdout, stderr io.Writer, service ui.Lookuper, cfg *config.Config, location string) int {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	report, err := service.Lookup(ctx, location)
	if err != nil {
		log.Printf("Lookup for %q failed: %v", location, err)
		fmt.Fprintln(stderr, weather.FailureMessage)
		return 1
	}

	fmt.Fprintln(stdout, ui.RenderReport(report, cfg.Unit))
	return 0
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
