package models

import "testing"

func TestToDisplay(t *testing.T) {
	tests := []struct {
		name    string
		celsius float64
		unit    Unit
		want    float64
	}{
		{"freezing in fahrenheit", 0, Fahrenheit, 32},
		{"boiling in fahrenheit", 100, Fahrenheit, 212},
		{"minus forty meets", -40, Fahrenheit, -40},
		{"celsius identity", 18.4, Celsius, 18.4},
		{"celsius identity negative", -7.25, Celsius, -7.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToDisplay(tt.celsius, tt.unit); got != tt.want {
				t.Errorf("ToDisplay(%v, %v) = %v, want %v", tt.celsius, tt.unit, got, tt.want)
			}
		})
	}
}

func TestRoundTemperature(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{18.4, 18},
		{18.5, 19},
		{65.12, 65},
		{-0.4, 0},
		{-0.5, 0},
		{-2.5, -2},
		{-2.6, -3},
	}

	for _, tt := range tests {
		if got := RoundTemperature(tt.in); got != tt.want {
			t.Errorf("RoundTemperature(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatTemperature(t *testing.T) {
	if got := FormatTemperature(18.4, Celsius); got != "18°C" {
		t.Errorf("FormatTemperature(18.4, C) = %q, want 18°C", got)
	}
	if got := FormatTemperature(18.4, Fahrenheit); got != "65°F" {
		t.Errorf("FormatTemperature(18.4, F) = %q, want 65°F", got)
	}
}

func TestUnit_ToggleTwice(t *testing.T) {
	for _, u := range []Unit{Celsius, Fahrenheit} {
		before := FormatTemperature(21.7, u)
		toggled := u.Toggle().Toggle()
		if toggled != u {
			t.Errorf("%v toggled twice = %v", u, toggled)
		}
		if after := FormatTemperature(21.7, toggled); after != before {
			t.Errorf("display after double toggle = %q, want %q", after, before)
		}
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in      string
		want    Unit
		wantErr bool
	}{
		{"C", Celsius, false},
		{"c", Celsius, false},
		{"celsius", Celsius, false},
		{"F", Fahrenheit, false},
		{" Fahrenheit ", Fahrenheit, false},
		{"K", Celsius, true},
		{"", Celsius, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseUnit(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseUnit(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseUnit(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnit_Symbol(t *testing.T) {
	if Celsius.Symbol() != "°C" {
		t.Errorf("Celsius.Symbol() = %q", Celsius.Symbol())
	}
	if Fahrenheit.Symbol() != "°F" {
		t.Errorf("Fahrenheit.Symbol() = %q", Fahrenheit.Symbol())
	}
}
