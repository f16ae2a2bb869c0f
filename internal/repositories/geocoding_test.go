package repositories

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atmos-cli/internal/models"
)

func TestGeocodingRepository_Search_Success(t *testing.T) {
	var gotQuery map[string][]string
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [{"name": "Berlin", "latitude": 52.52437, "longitude": 13.41053}]}`))
	}))
	defer mockServer.Close()

	repo := NewGeocodingRepository(mockServer.URL, testLogger(), http.DefaultClient)

	location, err := repo.Search(context.Background(), "Berlin")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if location.Name != "Berlin" {
		t.Errorf("Expected name Berlin, got %s", location.Name)
	}
	if location.Latitude != 52.52437 {
		t.Errorf("Expected latitude 52.52437, got %v", location.Latitude)
	}
	if location.Longitude != 13.41053 {
		t.Errorf("Expected longitude 13.41053, got %v", location.Longitude)
	}

	if got := gotQuery["name"]; len(got) != 1 || got[0] != "Berlin" {
		t.Errorf("Expected name=Berlin in request, got %v", got)
	}
	if got := gotQuery["count"]; len(got) != 1 || got[0] != "1" {
		t.Errorf("Expected count=1 in request, got %v", got)
	}
}

func TestGeocodingRepository_Search_NameFallback(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [{"latitude": 48.8566, "longitude": 2.3522}]}`))
	}))
	defer mockServer.Close()

	repo := NewGeocodingRepository(mockServer.URL, testLogger(), http.DefaultClient)

	location, err := repo.Search(context.Background(), "paris")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if location.Name != "paris" {
		t.Errorf("Expected query echoed as name, got %s", location.Name)
	}
}

func TestGeocodingRepository_Search_NoResults(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": []}`))
	}))
	defer mockServer.Close()

	repo := NewGeocodingRepository(mockServer.URL, testLogger(), http.DefaultClient)

	_, err := repo.Search(context.Background(), "NoSuchPlaceXYZ")
	if err == nil {
		t.Fatal("Expected error for empty results, got none")
	}
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got: %v", err)
	}
	if !strings.Contains(err.Error(), "NoSuchPlaceXYZ") {
		t.Errorf("Expected queried name in error, got: %v", err)
	}
}

func TestGeocodingRepository_Search_HTTPError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer mockServer.Close()

	repo := NewGeocodingRepository(mockServer.URL, testLogger(), http.DefaultClient)

	_, err := repo.Search(context.Background(), "Berlin")
	if err == nil {
		t.Fatal("Expected error for HTTP 500, got none")
	}
	if !errors.Is(err, models.ErrTransport) {
		t.Errorf("Expected ErrTransport, got: %v", err)
	}
}

func TestGeocodingRepository_Search_ConnectionFailure(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	mockServer.Close() // Close immediately so requests fail

	repo := NewGeocodingRepository(mockServer.URL, testLogger(), http.DefaultClient)

	_, err := repo.Search(context.Background(), "Berlin")
	if err == nil {
		t.Fatal("Expected error for connection failure, got none")
	}
	if !errors.Is(err, models.ErrTransport) {
		t.Errorf("Expected ErrTransport, got: %v", err)
	}
}

func TestGeocodingRepository_Search_InvalidJSON(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("not json"))
	}))
	defer mockServer.Close()

	repo := NewGeocodingRepository(mockServer.URL, testLogger(), http.DefaultClient)

	_, err := repo.Search(context.Background(), "Berlin")
	if err == nil {
		t.Fatal("Expected error for invalid JSON, got none")
	}
	if !errors.Is(err, models.ErrTransport) {
		t.Errorf("Expected ErrTransport, got: %v", err)
	}
}

func TestGeocodingRepository_Name(t *testing.T) {
	repo := &GeocodingRepository{}
	expected := "open-meteo-geocoding"
	if name := repo.Name(); name != expected {
		t.Errorf("Expected name to be %s, got %s", expected, name)
	}
}
