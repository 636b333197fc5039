package weather

import "github.com/meteo-cli/weather-dashboard/internal/models"

type codeEntry struct {
	description string
	condition   string
}

// wmoCodes maps WMO weather interpretation codes to a human description and a
// coarse condition bucket used for icon selection.
var wmoCodes = map[int]codeEntry{
	0:  {"Clear sky", "clear"},
	1:  {"Mainly clear", "clear"},
	2:  {"Partly cloudy", "cloudy"},
	3:  {"Overcast", "cloudy"},
	45: {"Fog", "fog"},
	48: {"Depositing rime fog", "fog"},
	51: {"Light drizzle", "rain"},
	53: {"Moderate drizzle", "rain"},
	55: {"Dense drizzle", "rain"},
	56: {"Light freezing drizzle", "rain"},
	57: {"Dense freezing drizzle", "rain"},
	61: {"Slight rain", "rain"},
	63: {"Moderate rain", "rain"},
	65: {"Heavy rain", "rain"},
	66: {"Light freezing rain", "rain"},
	67: {"Heavy freezing rain", "rain"},
	71: {"Slight snow fall", "snow"},
	73: {"Moderate snow fall", "snow"},
	75: {"Heavy snow fall", "snow"},
	77: {"Snow grains", "snow"},
	80: {"Slight rain showers", "rain"},
	81: {"Moderate rain showers", "rain"},
	82: {"Violent rain showers", "rain"},
	85: {"Slight snow showers", "snow"},
	86: {"Heavy snow showers", "snow"},
	95: {"Thunderstorm", "storm"},
	96: {"Thunderstorm with slight hail", "storm"},
	99: {"Thunderstorm with heavy hail", "storm"},
}

// DecodeWMO translates a WMO weather code into display conditions.
func DecodeWMO(code int) models.Conditions {
	entry, ok := wmoCodes[code]
	if !ok {
		return models.Conditions{Code: code, Description: "Unknown", Condition: "unknown"}
	}
	return models.Conditions{Code: code, Description: entry.description, Condition: entry.condition}
}
