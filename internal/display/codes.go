package display

import (
	"encoding/json"
	"fmt"
)

// wmoWeatherCodes maps WMO weather interpretation codes to text.
var wmoWeatherCodes = map[int64]string{
	0:  "Clear sky",
	1:  "Mostly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Drizzle: Light",
	53: "Drizzle: Moderate",
	55: "Drizzle: Dense intensity",
	56: "Freezing Drizzle: Light",
	57: "Freezing Drizzle: Dense intensity",
	61: "Rain: Slight",
	63: "Rain: Moderate",
	65: "Rain: Heavy intensity",
	66: "Freezing Rain: Light",
	67: "Freezing Rain: Heavy intensity",
	71: "Snow fall: Slight",
	73: "Snow fall: Moderate",
	75: "Snow fall: Heavy intensity",
	77: "Snow grains",
	80: "Rain showers: Slight",
	81: "Rain showers: Moderate",
	82: "Rain showers: Violent",
	85: "Snow showers: Slight",
	86: "Snow showers: Heavy",
	95: "Thunderstorm: Slight or moderate",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// weatherDescription maps a weather-code value as decoded from the API to a
// human-readable description. Missing values render as "N/A", unknown codes
// keep the numeric value visible.
func weatherDescription(v any) string {
	if v == nil {
		return "N/A"
	}

	var code int64
	switch t := v.(type) {
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			f, ferr := t.Float64()
			if ferr != nil {
				return fmt.Sprintf("Unknown code: %v", t)
			}
			i = int64(f)
		}
		code = i
	case float64:
		code = int64(t)
	case int:
		code = int64(t)
	default:
		return fmt.Sprintf("Unknown code: %v", v)
	}

	if desc, ok := wmoWeatherCodes[code]; ok {
		return desc
	}
	return fmt.Sprintf("Unknown code: %d", code)
}
