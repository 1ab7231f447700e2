package models

// Place represents a geocoded location
type Place struct {
	Latitude  float64
	Longitude float64
	Name      string // e.g., "Paris"
	Country   string // e.g., "France"
}

// Conditions represents a current weather reading for a coordinate
type Conditions struct {
	TemperatureC float64 // always Celsius, converted only for display
	Humidity     float64 // relative humidity, percent
	WindSpeed    float64
	WeatherCode  int // WMO weather interpretation code
}

// Report pairs a resolved place with its current conditions
type Report struct {
	Place      Place
	Conditions Conditions
}

// Describe returns the text and icon for the report's weather code
func (r *Report) Describe() Descriptor {
	return Describe(r.Conditions.WeatherCode)
}
