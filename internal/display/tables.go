package display

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"atmos-cli/internal/models"
)

// column describes one optional table column: the result key it reads, the
// header title, the units key for the header suffix, and its color.
type column struct {
	key     string
	title   string
	unitKey string
	color   int
}

// Preferred column order for the hourly and daily tables. Only columns whose
// key is present in the result are rendered.
var (
	hourlyColumns = []column{
		{key: "temperature_2m", title: "Temp", unitKey: "temperature_2m", color: tablewriter.FgGreenColor},
		{key: "apparent_temperature", title: "Feels Like", unitKey: "apparent_temperature", color: tablewriter.FgGreenColor},
		{key: "precipitation", title: "Precip", unitKey: "precipitation", color: tablewriter.FgBlueColor},
		{key: "wind_speed_10m", title: "Wind", unitKey: "wind_speed_10m", color: tablewriter.FgYellowColor},
		{key: "cloud_cover", title: "Cloud Cover", unitKey: "cloud_cover", color: tablewriter.FgWhiteColor},
		{key: "weather_code", title: "Weather", unitKey: "", color: tablewriter.FgMagentaColor},
	}

	dailyColumns = []column{
		{key: "temperature_2m_max", title: "Max Temp", unitKey: "temperature_2m_max", color: tablewriter.FgRedColor},
		{key: "temperature_2m_min", title: "Min Temp", unitKey: "temperature_2m_min", color: tablewriter.FgBlueColor},
		{key: "precipitation_sum", title: "Precip Sum", unitKey: "precipitation_sum", color: tablewriter.FgGreenColor},
		{key: "wind_speed_10m_max", title: "Wind Max", unitKey: "wind_speed_10m_max", color: tablewriter.FgYellowColor},
		{key: "weather_code", title: "Weather", unitKey: "", color: tablewriter.FgMagentaColor},
	}
)

// Current renders the current-conditions table.
func (r *Renderer) Current(result models.WeatherResult) {
	if result.Err != "" {
		r.Error(result.Err)
		return
	}
	if len(result.Current) == 0 {
		r.Warn("No current weather data available.")
		return
	}

	r.title(fmt.Sprintf("Current Weather in %s", timezoneOr(result.Timezone)))

	current := result.Current
	units := result.CurrentUnits
	tempUnit := unitOr(units, "temperature_2m", "°C")
	windUnit := unitOr(units, "wind_speed_10m", "m/s")
	precipUnit := unitOr(units, "precipitation", "mm")

	weather := "N/A"
	if code, ok := current["weather_code"]; ok && code != nil {
		weather = weatherDescription(code)
	}

	rows := [][]string{
		{"Time", formatCurrentTime(current["time"])},
		{"Temperature", withUnit(current["temperature_2m"], tempUnit)},
		{"Apparent Temperature", withUnit(current["apparent_temperature"], tempUnit)},
		{"Is Day", yesNo(current["is_day"])},
		{"Precipitation", withUnit(current["precipitation"], precipUnit)},
		{"Rain", withUnit(current["rain"], precipUnit)},
		{"Showers", withUnit(current["showers"], precipUnit)},
		{"Snowfall", withUnit(current["snowfall"], precipUnit)},
		{"Weather", weather},
		{"Cloud Cover", formatScalar(current["cloud_cover"]) + "%"},
		{"Wind Speed", withUnit(current["wind_speed_10m"], windUnit)},
		{"Wind Direction", formatScalar(current["wind_direction_10m"]) + "°"},
		{"Wind Gusts", withUnit(current["wind_gusts_10m"], windUnit)},
	}

	table := r.newTable([]string{"Metric", "Value"})
	if r.colors {
		table.SetColumnColor(
			tablewriter.Colors{tablewriter.FgCyanColor},
			tablewriter.Colors{tablewriter.FgGreenColor},
		)
	}
	table.AppendBulk(rows)
	table.Render()
}

// Hourly renders the hourly forecast table with the preferred columns
// present in the result.
func (r *Renderer) Hourly(result models.WeatherResult) {
	if result.Err != "" {
		r.Error(result.Err)
		return
	}
	times := result.Hourly["time"]
	if len(result.Hourly) == 0 || len(times) == 0 {
		r.Warn("No hourly weather data available.")
		return
	}

	r.title(fmt.Sprintf("Hourly Weather in %s", timezoneOr(result.Timezone)))
	r.variableTable(times, result.Hourly, result.HourlyUnits, hourlyColumns, "Time", formatHourlyTime)
}

// Daily renders the daily forecast table with the preferred columns present
// in the result.
func (r *Renderer) Daily(result models.WeatherResult) {
	if result.Err != "" {
		r.Error(result.Err)
		return
	}
	times := result.Daily["time"]
	if len(result.Daily) == 0 || len(times) == 0 {
		r.Warn("No daily weather data available.")
		return
	}

	r.title(fmt.Sprintf("Daily Weather in %s", timezoneOr(result.Timezone)))
	r.variableTable(times, result.Daily, result.DailyUnits, dailyColumns, "Date", formatDailyTime)
}

func (r *Renderer) variableTable(
	times []any,
	series map[string][]any,
	units map[string]string,
	preferred []column,
	timeHeader string,
	formatTime func(any) string,
) {
	present := make([]column, 0, len(preferred))
	for _, col := range preferred {
		if _, ok := series[col.key]; ok {
			present = append(present, col)
		}
	}

	headers := []string{timeHeader}
	for _, col := range present {
		unit := ""
		if col.unitKey != "" {
			unit = units[col.unitKey]
		}
		headers = append(headers, headerWithUnit(col.title, unit))
	}

	table := r.newTable(headers)
	if r.colors {
		colors := []tablewriter.Colors{{tablewriter.FgCyanColor}}
		for _, col := range present {
			colors = append(colors, tablewriter.Colors{col.color})
		}
		table.SetColumnColor(colors...)
	}

	for i, tv := range times {
		row := []string{formatTime(tv)}
		for _, col := range present {
			row = append(row, cellAt(series[col.key], i, col.key))
		}
		table.Append(row)
	}
	table.Render()
}

// Favorites renders the stored favorite locations sorted by name.
func (r *Renderer) Favorites(favorites map[string]models.Coordinates) {
	r.title("Favorite Locations")

	names := make([]string, 0, len(favorites))
	for name := range favorites {
		names = append(names, name)
	}
	sort.Strings(names)

	table := r.newTable([]string{"Name", "Latitude", "Longitude"})
	if r.colors {
		table.SetColumnColor(
			tablewriter.Colors{tablewriter.FgCyanColor},
			tablewriter.Colors{tablewriter.FgGreenColor},
			tablewriter.Colors{tablewriter.FgGreenColor},
		)
	}
	for _, name := range names {
		coords := favorites[name]
		table.Append([]string{
			name,
			strconv.FormatFloat(coords.Latitude, 'f', -1, 64),
			strconv.FormatFloat(coords.Longitude, 'f', -1, 64),
		})
	}
	table.Render()
}

// About prints program information.
func (r *Renderer) About(name, version string) {
	r.title(name)
	fmt.Fprintf(r.out, "Version: %s\n", version)
	fmt.Fprintln(r.out, "A command-line weather application using the Open-Meteo API.")
	fmt.Fprintln(r.out, "Features: current, hourly and daily forecasts, favorite locations, a daily temperature chart, and an interactive mode.")
}

func (r *Renderer) newTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	if r.colors {
		headerColors := make([]tablewriter.Colors, len(headers))
		for i := range headerColors {
			headerColors[i] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgMagentaColor}
		}
		table.SetHeaderColor(headerColors...)
	}
	return table
}

func cellAt(values []any, i int, key string) string {
	if i >= len(values) {
		return "N/A"
	}
	switch key {
	case "weather_code":
		return weatherDescription(values[i])
	case "cloud_cover":
		return formatScalar(values[i]) + "%"
	}
	return formatScalar(values[i])
}

func headerWithUnit(title, unit string) string {
	if unit == "" {
		return title
	}
	return title + " " + unit
}

func yesNo(v any) string {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil && i == 1 {
			return "Yes"
		}
	}
	return "No"
}
