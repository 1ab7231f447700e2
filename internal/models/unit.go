package models

import (
	"fmt"
	"math"
	"strings"
)

// Unit is the temperature scale used for display
type Unit int

const (
	Celsius Unit = iota
	Fahrenheit
)

// String returns the unit suffix ("C" or "F")
func (u Unit) String() string {
	if u == Fahrenheit {
		return "F"
	}
	return "C"
}

// Symbol returns the unit with its degree sign, e.g. "°F"
func (u Unit) Symbol() string {
	return "°" + u.String()
}

// Toggle returns the other unit
func (u Unit) Toggle() Unit {
	if u == Fahrenheit {
		return Celsius
	}
	return Fahrenheit
}

// ParseUnit parses "C", "F", "celsius" or "fahrenheit" (case-insensitive)
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	}
	return Celsius, fmt.Errorf("unknown temperature unit %q (want C or F)", s)
}

// ToDisplay converts a Celsius reading to the given unit
func ToDisplay(celsius float64, unit Unit) float64 {
	if unit == Fahrenheit {
		return celsius*9/5 + 32
	}
	return celsius
}

// RoundTemperature rounds to the nearest integer, halves toward positive infinity
func RoundTemperature(v float64) int {
	return int(math.Floor(v + 0.5))
}

// FormatTemperature renders a Celsius reading as a rounded value in the given unit, e.g. "18°C"
func FormatTemperature(celsius float64, unit Unit) string {
	return fmt.Sprintf("%d%s", RoundTemperature(ToDisplay(celsius, unit)), unit.Symbol())
}
