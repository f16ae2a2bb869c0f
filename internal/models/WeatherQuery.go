package models

import (
	"net/url"
	"strconv"
	"strings"
)

// WeatherQuery is a fully assembled request against the weather API. Either
// the StartDate/EndDate pair or the ForecastDays/PastDays counts describe the
// time window, never both. Archive selects the historical endpoint and is not
// part of the wire query itself.
type WeatherQuery struct {
	Latitude  float64
	Longitude float64
	Timezone  string

	ForecastDays int
	PastDays     int
	StartDate    string
	EndDate      string

	TemperatureUnit   string
	WindSpeedUnit     string
	PrecipitationUnit string

	Current []string
	Hourly  []string
	Daily   []string

	Timeformat    string
	Models        []string
	CellSelection string
	Elevation     *float64
	DisableStream bool

	Archive bool
}

// Values serializes the query into URL parameters the way the API expects
// them: variable and model lists are comma-joined, the date pair replaces the
// day counts when present.
func (q WeatherQuery) Values() url.Values {
	v := url.Values{}
	v.Set("latitude", formatFloat(q.Latitude))
	v.Set("longitude", formatFloat(q.Longitude))
	v.Set("timezone", q.Timezone)

	if q.StartDate != "" && q.EndDate != "" {
		v.Set("start_date", q.StartDate)
		v.Set("end_date", q.EndDate)
	} else {
		v.Set("forecast_days", strconv.Itoa(q.ForecastDays))
		v.Set("past_days", strconv.Itoa(q.PastDays))
	}

	v.Set("temperature_unit", q.TemperatureUnit)
	v.Set("wind_speed_unit", q.WindSpeedUnit)
	v.Set("precipitation_unit", q.PrecipitationUnit)

	if len(q.Current) > 0 {
		v.Set("current", strings.Join(q.Current, ","))
	}
	if len(q.Hourly) > 0 {
		v.Set("hourly", strings.Join(q.Hourly, ","))
	}
	if len(q.Daily) > 0 {
		v.Set("daily", strings.Join(q.Daily, ","))
	}

	if q.Timeformat != "" {
		v.Set("timeformat", q.Timeformat)
	}
	if len(q.Models) > 0 {
		v.Set("models", strings.Join(q.Models, ","))
	}
	if q.CellSelection != "" {
		v.Set("cell_selection", q.CellSelection)
	}
	if q.Elevation != nil {
		v.Set("elevation", formatFloat(*q.Elevation))
	}
	if q.DisableStream {
		v.Set("disable_stream", "true")
	}

	return v
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
