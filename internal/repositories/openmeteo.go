package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"atmos-cli/internal/models"
	"atmos-cli/pkg/logger"
)

const (
	ForecastBaseURL = "https://api.open-meteo.com/v1/forecast"
	ArchiveBaseURL  = "https://archive-api.open-meteo.com/v1/archive"
)

type OpenMeteoRepository struct {
	forecastURL string
	archiveURL  string
	httpClient  HTTPClient
	l           *logger.Logger
}

func NewOpenMeteoRepository(forecastURL, archiveURL string, l *logger.Logger, httpClient HTTPClient) *OpenMeteoRepository {
	return &OpenMeteoRepository{
		forecastURL: forecastURL,
		archiveURL:  archiveURL,
		httpClient:  httpClient,
		l:           l,
	}
}

func (o *OpenMeteoRepository) Name() string {
	return "open-meteo"
}

// openMeteoError is the JSON body the API returns alongside 4xx/5xx statuses.
type openMeteoError struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// Fetch runs the query against the forecast endpoint, or the archive endpoint
// when the query asks for historical data. It never returns a Go error: every
// failure (request building, transport, HTTP status, body read, JSON parse)
// is converted into a result whose Err field carries the description, so
// callers deal with exactly one shape and failures are reported exactly once.
func (o *OpenMeteoRepository) Fetch(ctx context.Context, query models.WeatherQuery) models.WeatherResult {
	base := o.forecastURL
	if query.Archive {
		base = o.archiveURL
	}
	url := base + "?" + query.Values().Encode()

	o.l.Debug("making open-meteo API request", map[string]any{
		"url":     url,
		"archive": query.Archive,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.ErrorResult(fmt.Sprintf("failed to create request: %v", err))
	}
	resp, err := o.httpClient.Do(req)
	if err != nil {
		return models.ErrorResult(fmt.Sprintf("failed to do request: %v", err))
	}
	defer resp.Body.Close()

	o.l.Debug("received open-meteo API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ErrorResult(fmt.Sprintf("failed to read response body: %v", err))
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr openMeteoError
		if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && apiErr.Error {
			return models.ErrorResult(fmt.Sprintf("API error (status %d): %s", resp.StatusCode, apiErr.Reason))
		}
		return models.ErrorResult(fmt.Sprintf("HTTP error (status %d): %s", resp.StatusCode, resp.Status))
	}

	var result models.WeatherResult
	// UseNumber keeps numeric values in their wire form so 55.0 renders as
	// "55.0" and unixtime stamps stay integral.
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&result); err != nil {
		return models.ErrorResult(fmt.Sprintf("failed to parse JSON response: %v", err))
	}

	o.l.Debug("parsed open-meteo API response", map[string]any{
		"timezone":   result.Timezone,
		"hasCurrent": len(result.Current) > 0,
		"hourlyVars": len(result.Hourly),
		"dailyVars":  len(result.Daily),
	})

	return result
}
