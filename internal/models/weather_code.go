package models

// Descriptor is the human-readable form of a weather code
type Descriptor struct {
	Text string
	Icon string
}

// UnknownDescriptor is returned for codes missing from the table
var UnknownDescriptor = Descriptor{Text: "Unknown", Icon: "❓"}

// weatherCodes maps WMO weather interpretation codes to descriptors.
// Read only; use Describe.
var weatherCodes = map[int]Descriptor{
	0:  {"Clear sky", "☀️"},
	1:  {"Mainly clear", "🌤️"},
	2:  {"Partly cloudy", "⛅"},
	3:  {"Overcast", "☁️"},
	45: {"Fog", "🌫️"},
	48: {"Depositing rime fog", "🌫️"},
	51: {"Light drizzle", "🌧️"},
	53: {"Moderate drizzle", "🌧️"},
	55: {"Dense drizzle", "🌧️"},
	61: {"Light rain", "🌧️"},
	63: {"Moderate rain", "🌧️"},
	65: {"Heavy rain", "🌧️"},
	71: {"Light snow", "❄️"},
	73: {"Moderate snow", "❄️"},
	75: {"Heavy snow", "❄️"},
	80: {"Light rain showers", "🌦️"},
	81: {"Moderate rain showers", "🌦️"},
	82: {"Violent rain showers", "🌦️"},
	95: {"Thunderstorm", "⛈️"},
	96: {"Thunderstorm with light hail", "⛈️"},
	99: {"Thunderstorm with heavy hail", "⛈️"},
}

// Describe returns the descriptor for a weather code, or UnknownDescriptor
func Describe(code int) Descriptor {
	if d, ok := weatherCodes[code]; ok {
		return d
	}
	return UnknownDescriptor
}

// String renders the descriptor as "icon text"
func (d Descriptor) String() string {
	return d.Icon + " " + d.Text
}
