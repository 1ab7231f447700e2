package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// RenderReport renders the result panel for a report in the given unit
func RenderReport(report *models.Report, unit models.Unit) string {
	place := placeStyle.Render(fmt.Sprintf("%s, %s", report.Place.Name, report.Place.Country))
	condition := valueStyle.Render(report.Describe().String())
	temperature := temperatureStyle.Render(models.FormatTemperature(report.Conditions.TemperatureC, unit))

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		renderStat("Humidity", formatReading(report.Conditions.Humidity)+"%"),
		renderStat("Wind Speed", formatReading(report.Conditions.WindSpeed)+" m/s"),
	)

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		place,
		condition,
		temperature,
		stats,
	))
}

func renderStat(label, value string) string {
	return statColumnStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		labelStyle.Render(label),
		valueStyle.Render(value),
	))
}

// formatReading prints a reading with as many decimals as it carries
func formatReading(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
