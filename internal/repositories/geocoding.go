package repositories

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"atmos-cli/internal/models"
	"atmos-cli/pkg/logger"
)

const GeocodingBaseURL = "https://geocoding-api.open-meteo.com/v1/search"

type GeocodingRepository struct {
	baseURL    string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewGeocodingRepository(baseURL string, l *logger.Logger, httpClient HTTPClient) *GeocodingRepository {
	return &GeocodingRepository{
		baseURL:    baseURL,
		httpClient: httpClient,
		l:          l,
	}
}

func (g *GeocodingRepository) Name() string {
	return "open-meteo-geocoding"
}

type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

// Search resolves a free-text place name to the best-matching location.
// An empty result set yields models.ErrNotFound naming the query; transport
// and decoding failures wrap models.ErrTransport.
func (g *GeocodingRepository) Search(ctx context.Context, name string) (models.NamedLocation, error) {
	params := url.Values{}
	params.Set("name", name)
	params.Set("count", "1")
	params.Set("language", "en")
	params.Set("format", "json")
	requestURL := g.baseURL + "?" + params.Encode()

	g.l.Debug("making geocoding API request", map[string]any{
		"url":  requestURL,
		"name": name,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return models.NamedLocation{}, errors.Wrapf(models.ErrTransport, "failed to create geocoding request: %v", err)
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return models.NamedLocation{}, errors.Wrapf(models.ErrTransport, "geocoding request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.NamedLocation{}, errors.Wrapf(models.ErrTransport, "failed to read geocoding response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.NamedLocation{}, errors.Wrapf(models.ErrTransport, "HTTP error during geocoding (status %d): %s", resp.StatusCode, resp.Status)
	}

	var response geocodingResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return models.NamedLocation{}, errors.Wrapf(models.ErrTransport, "failed to parse geocoding response: %v", err)
	}

	if len(response.Results) == 0 {
		return models.NamedLocation{}, errors.Wrapf(models.ErrNotFound, "could not find coordinates for '%s'", name)
	}

	first := response.Results[0]
	resolved := first.Name
	if resolved == "" {
		resolved = name
	}

	g.l.Debug("resolved location", map[string]any{
		"query": name,
		"name":  resolved,
		"lat":   first.Latitude,
		"lon":   first.Longitude,
	})

	return models.NamedLocation{
		Name: resolved,
		Coordinates: models.Coordinates{
			Latitude:  first.Latitude,
			Longitude: first.Longitude,
		},
	}, nil
}
