package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Lookuper runs a resolve-then-fetch lookup for a place name
type Lookuper interface {
	Lookup(ctx context.Context, query string) (*models.Report, error)
}

// lookupResultMsg is sent when a lookup completes
type lookupResultMsg struct {
	token  uint64
	query  string
	report *models.Report
	err    error
}

// lookupWeather performs the lookup in the background
func lookupWeather(l Lookuper, query string, token uint64, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		report, err := l.Lookup(ctx, query)
		return lookupResultMsg{token: token, query: query, report: report, err: err}
	}
}
