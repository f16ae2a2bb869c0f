package models

// WeatherResult is the decoded payload of a weather API response. Scalars in
// Current and the series in Hourly/Daily keep their wire representation:
// numbers are json.Number so values print exactly as the API sent them, time
// values are ISO-8601 strings or Unix timestamps depending on the query's
// timeformat.
//
// Err is never set by the API decoder itself. The client boundary fills it in
// for transport, status and parse failures so callers handle exactly one
// result shape.
type WeatherResult struct {
	Err string `json:"-"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`

	Current      map[string]any    `json:"current"`
	CurrentUnits map[string]string `json:"current_units"`

	Hourly      map[string][]any  `json:"hourly"`
	HourlyUnits map[string]string `json:"hourly_units"`

	Daily      map[string][]any  `json:"daily"`
	DailyUnits map[string]string `json:"daily_units"`
}

// ErrorResult wraps a failure description in the uniform result shape.
func ErrorResult(msg string) WeatherResult {
	return WeatherResult{Err: msg}
}
