package display

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atmos-cli/internal/models"
)

func sampleChartResult() models.WeatherResult {
	return models.WeatherResult{
		Timezone: "Europe/Berlin",
		Daily: map[string][]any{
			"time":               {"2023-10-27", "2023-10-28"},
			"temperature_2m_max": {json.Number("60.0"), json.Number("55.0")},
			"temperature_2m_min": {json.Number("50.0"), json.Number("45.0")},
		},
		DailyUnits: map[string]string{"temperature_2m_max": "°F"},
	}
}

func TestTemperatureChart(t *testing.T) {
	r, buf := newTestRenderer()

	r.TemperatureChart(sampleChartResult())
	output := buf.String()

	assert.Contains(t, output, "Daily Temperature Chart in Europe/Berlin (°F)")
	assert.Contains(t, output, "50.0 - 60.0 °F")
	assert.Contains(t, output, "45.0 - 55.0 °F")
	assert.Contains(t, output, "█")
	assert.Contains(t, output, "Min Temp")
	assert.Contains(t, output, "Max Temp")
}

func TestTemperatureChart_BarGeometry(t *testing.T) {
	r, buf := newTestRenderer()

	r.TemperatureChart(sampleChartResult())

	// Range 45..60 over width 60: the warmest day fills to the right edge,
	// the coolest day starts at the left edge.
	var warm, cool string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "2023-10-27") {
			warm = line
		}
		if strings.Contains(line, "2023-10-28") {
			cool = line
		}
	}
	require.NotEmpty(t, warm)
	require.NotEmpty(t, cool)

	assert.Equal(t, 41, strings.Count(warm, "█"), "50..60 maps to 40 fill blocks plus the max marker")
	assert.Equal(t, 41, strings.Count(cool, "█"), "45..55 maps to 40 fill blocks plus the max marker")
	assert.True(t, strings.HasSuffix(strings.TrimRight(warm, " "), "█"))

	warmBar := warm[strings.LastIndex(warm, "| ")+2:]
	coolBar := cool[strings.LastIndex(cool, "| ")+2:]
	assert.True(t, strings.HasPrefix(warmBar, " "), "the warm day's bar is offset from the shared minimum")
	assert.True(t, strings.HasPrefix(coolBar, "█"), "the global minimum day starts at the axis")
}

func TestTemperatureChart_FlatRange(t *testing.T) {
	result := models.WeatherResult{
		Timezone: "UTC",
		Daily: map[string][]any{
			"time":               {"2023-10-27"},
			"temperature_2m_max": {json.Number("50.0")},
			"temperature_2m_min": {json.Number("50.0")},
		},
	}

	r, buf := newTestRenderer()
	r.TemperatureChart(result)
	output := buf.String()

	// A zero-wide range must not divide by zero; the bar collapses to the
	// max marker.
	assert.Contains(t, output, "50.0 - 50.0")
	assert.Contains(t, output, "█")
}

func TestTemperatureChart_MissingSeries(t *testing.T) {
	result := models.WeatherResult{
		Timezone: "UTC",
		Daily: map[string][]any{
			"time":               {"2023-10-27"},
			"temperature_2m_max": {json.Number("60.0")},
		},
	}

	r, buf := newTestRenderer()
	r.TemperatureChart(result)

	assert.Contains(t, buf.String(),
		"Not enough daily temperature data for charting. Requires 'temperature_2m_max' and 'temperature_2m_min'.")
}

func TestTemperatureChart_UnixTime(t *testing.T) {
	result := models.WeatherResult{
		Timezone: "Europe/Berlin",
		Daily: map[string][]any{
			"time":               {json.Number("1700000000")},
			"temperature_2m_max": {json.Number("60.0")},
			"temperature_2m_min": {json.Number("50.0")},
		},
		DailyUnits: map[string]string{"temperature_2m_max": "°F"},
	}

	r, buf := newTestRenderer()
	r.TemperatureChart(result)
	output := buf.String()

	assert.NotContains(t, output, "1700000000")
	assert.Contains(t, output, "2023-11-1")
}

func TestTemperatureChart_Error(t *testing.T) {
	r, buf := newTestRenderer()

	r.TemperatureChart(models.WeatherResult{Err: "API failed"})

	assert.Contains(t, buf.String(), "Error: API failed")
	assert.NotContains(t, buf.String(), "Daily Temperature Chart")
}

func TestTemperatureChart_DefaultUnit(t *testing.T) {
	result := sampleChartResult()
	result.DailyUnits = nil

	r, buf := newTestRenderer()
	r.TemperatureChart(result)

	assert.Contains(t, buf.String(), "(°C)")
}
