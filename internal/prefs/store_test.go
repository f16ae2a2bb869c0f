package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atmos-cli/internal/models"
	"atmos-cli/pkg/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.json")
	return NewStore(path, logger.NewZapLogger("test-atmos", "error"))
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	store := newTestStore(t)

	doc := store.Load()

	assert.Equal(t, "fahrenheit", doc.Units.Temperature)
	assert.Equal(t, "mph", doc.Units.WindSpeed)
	assert.Equal(t, "inch", doc.Units.Precipitation)
	assert.Empty(t, doc.Favorites)
	assert.Nil(t, doc.DefaultLocation)
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	store := NewStore(path, logger.NewZapLogger("test-atmos", "error"))

	doc := store.Load()

	assert.Equal(t, "fahrenheit", doc.Units.Temperature)
	assert.Empty(t, doc.Favorites)
	assert.Nil(t, doc.DefaultLocation)
}

func TestLoadEmptyFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))
	store := NewStore(path, logger.NewZapLogger("test-atmos", "error"))

	doc := store.Load()

	assert.Equal(t, "fahrenheit", doc.Units.Temperature)
	assert.Equal(t, "mph", doc.Units.WindSpeed)
	assert.Equal(t, "inch", doc.Units.Precipitation)
}

func TestLoadRepairsMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	// A file written by an older version: favorites only, no units key.
	content := `{"favorites": {"home": {"latitude": 52.52, "longitude": 13.41}}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	store := NewStore(path, logger.NewZapLogger("test-atmos", "error"))

	doc := store.Load()

	assert.Equal(t, "fahrenheit", doc.Units.Temperature)
	assert.Equal(t, "mph", doc.Units.WindSpeed)
	assert.Equal(t, "inch", doc.Units.Precipitation)
	require.Contains(t, doc.Favorites, "home")
	assert.Equal(t, 52.52, doc.Favorites["home"].Latitude)
	assert.Equal(t, 13.41, doc.Favorites["home"].Longitude)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	doc := DefaultDocument()
	doc.Units.Temperature = "celsius"
	doc.Favorites["office"] = models.Coordinates{Latitude: 34.05, Longitude: -118.25}
	doc.DefaultLocation = &models.NamedLocation{
		Name:        "Berlin",
		Coordinates: models.Coordinates{Latitude: 52.52, Longitude: 13.41},
	}
	require.NoError(t, store.Save(doc))

	loaded := store.Load()
	assert.Equal(t, doc, loaded)
}

func TestSaveWritesIndentedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	store := NewStore(path, logger.NewZapLogger("test-atmos", "error"))

	require.NoError(t, store.Save(DefaultDocument()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n    \"units\"")

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "units")
	assert.Contains(t, raw, "favorites")
	assert.Contains(t, raw, "default_location")
	assert.Nil(t, raw["default_location"])
}

func TestUnitPreferences(t *testing.T) {
	store := newTestStore(t)

	assert.Equal(t, "fahrenheit", store.UnitPreference("temperature"))
	assert.Equal(t, "mph", store.UnitPreference("wind_speed"))
	assert.Equal(t, "inch", store.UnitPreference("precipitation"))
	assert.Equal(t, "", store.UnitPreference("pressure"))

	require.NoError(t, store.SetUnitPreference("temperature", "celsius"))
	assert.Equal(t, "celsius", store.UnitPreference("temperature"))
	// Other units are untouched
	assert.Equal(t, "mph", store.UnitPreference("wind_speed"))

	err := store.SetUnitPreference("pressure", "hpa")
	assert.Error(t, err)
}

func TestFavorites(t *testing.T) {
	store := newTestStore(t)

	_, ok := store.Favorite("home")
	assert.False(t, ok)

	coords := models.Coordinates{Latitude: 40.7128, Longitude: -74.006}
	require.NoError(t, store.AddFavorite("home", coords))

	got, ok := store.Favorite("home")
	require.True(t, ok)
	assert.Equal(t, coords, got)

	favorites := store.Favorites()
	assert.Len(t, favorites, 1)

	removed, err := store.RemoveFavorite("home")
	require.NoError(t, err)
	assert.True(t, removed)

	// Second removal reports false
	removed, err = store.RemoveFavorite("home")
	require.NoError(t, err)
	assert.False(t, removed)

	_, ok = store.Favorite("home")
	assert.False(t, ok)
}

func TestDefaultLocation(t *testing.T) {
	store := newTestStore(t)

	assert.Nil(t, store.DefaultLocation())

	loc := models.NamedLocation{
		Name:        "London",
		Coordinates: models.Coordinates{Latitude: 51.51, Longitude: -0.13},
	}
	require.NoError(t, store.SetDefaultLocation(loc))

	got := store.DefaultLocation()
	require.NotNil(t, got)
	assert.Equal(t, loc, *got)
}
