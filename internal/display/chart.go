package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"atmos-cli/internal/models"
)

// TemperatureChart draws one horizontal bar per day spanning the day's
// [min, max] temperature range on a shared scale. The filled part covers the
// sub-range up to the max, a single distinct block marks the max itself.
func (r *Renderer) TemperatureChart(result models.WeatherResult) {
	if result.Err != "" {
		r.Error(result.Err)
		return
	}

	times := result.Daily["time"]
	maxSeries := result.Daily["temperature_2m_max"]
	minSeries := result.Daily["temperature_2m_min"]

	type chartRow struct {
		date string
		min  float64
		max  float64
	}
	rows := make([]chartRow, 0, len(times))
	for i, tv := range times {
		if i >= len(maxSeries) || i >= len(minSeries) {
			break
		}
		maxVal, okMax := toFloat(maxSeries[i])
		minVal, okMin := toFloat(minSeries[i])
		if !okMax || !okMin {
			continue
		}
		rows = append(rows, chartRow{date: formatDailyTime(tv), min: minVal, max: maxVal})
	}

	if len(rows) == 0 {
		r.Warn("Not enough daily temperature data for charting. Requires 'temperature_2m_max' and 'temperature_2m_min'.")
		return
	}

	unit := unitOr(result.DailyUnits, "temperature_2m_max", "°C")
	r.title(fmt.Sprintf("Daily Temperature Chart in %s (%s)", timezoneOr(result.Timezone), unit))
	fmt.Fprintln(r.out)

	globalMin := rows[0].min
	globalMax := rows[0].max
	for _, row := range rows[1:] {
		if row.min < globalMin {
			globalMin = row.min
		}
		if row.max > globalMax {
			globalMax = row.max
		}
	}
	span := globalMax - globalMin
	if span == 0 {
		// All days identical; use a nominal range so bars still draw.
		span = 1
	}

	for _, row := range rows {
		minPos := int((row.min - globalMin) / span * float64(r.chartWidth))
		maxPos := int((row.max - globalMin) / span * float64(r.chartWidth))
		if minPos > maxPos {
			minPos = maxPos
		}

		fill := strings.Repeat("█", maxPos-minPos)
		marker := "█"
		date := row.date
		minLabel := fmt.Sprintf("%.1f", row.min)
		maxLabel := fmt.Sprintf("%.1f", row.max)
		if r.colors {
			fill = color.New(color.FgBlue).Sprint(fill)
			marker = color.New(color.FgRed).Sprint(marker)
			date = color.New(color.FgCyan).Sprint(date)
			minLabel = color.New(color.FgBlue).Sprint(minLabel)
			maxLabel = color.New(color.FgRed).Sprint(maxLabel)
		}

		bar := strings.Repeat(" ", minPos) + fill + marker
		fmt.Fprintf(r.out, "%s | %s - %s %s | %s\n", date, minLabel, maxLabel, unit, bar)
	}

	minLegend := "Min Temp"
	maxLegend := "Max Temp"
	if r.colors {
		minLegend = color.New(color.FgBlue).Sprint(minLegend)
		maxLegend = color.New(color.FgRed).Sprint(maxLegend)
	}
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%s %s\n", minLegend, maxLegend)
}
