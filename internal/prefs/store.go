// Package prefs persists user preferences (default units, favorite
// locations, default location) as a single JSON document. Loading never
// fails: a missing, empty or corrupt file yields the default document, and
// individual missing keys are repaired, so a bad preferences file can never
// take the application down.
package prefs

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"atmos-cli/internal/models"
	"atmos-cli/pkg/logger"
)

// Units holds the default measurement units applied to queries that do not
// override them.
type Units struct {
	Temperature   string `json:"temperature"`
	WindSpeed     string `json:"wind_speed"`
	Precipitation string `json:"precipitation"`
}

// Document is the full preferences file content.
type Document struct {
	Units           Units                         `json:"units"`
	Favorites       map[string]models.Coordinates `json:"favorites"`
	DefaultLocation *models.NamedLocation         `json:"default_location"`
}

// DefaultDocument returns the canonical defaults: imperial-style units, no
// favorites, no default location.
func DefaultDocument() Document {
	return Document{
		Units: Units{
			Temperature:   "fahrenheit",
			WindSpeed:     "mph",
			Precipitation: "inch",
		},
		Favorites: map[string]models.Coordinates{},
	}
}

type Store struct {
	path string
	l    *logger.Logger
}

func NewStore(path string, l *logger.Logger) *Store {
	return &Store{
		path: path,
		l:    l,
	}
}

// Load reads the preferences document. It never returns an error: unreadable
// or unparsable content is replaced by the defaults, missing keys are filled
// in individually.
func (s *Store) Load() Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return DefaultDocument()
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.l.Debug("preferences file is corrupt, using defaults", map[string]any{
			"path": s.path,
			"err":  err.Error(),
		})
		return DefaultDocument()
	}

	return repair(doc)
}

// repair fills in any keys an older or hand-edited file is missing.
func repair(doc Document) Document {
	defaults := DefaultDocument()
	if doc.Units.Temperature == "" {
		doc.Units.Temperature = defaults.Units.Temperature
	}
	if doc.Units.WindSpeed == "" {
		doc.Units.WindSpeed = defaults.Units.WindSpeed
	}
	if doc.Units.Precipitation == "" {
		doc.Units.Precipitation = defaults.Units.Precipitation
	}
	if doc.Favorites == nil {
		doc.Favorites = map[string]models.Coordinates{}
	}
	return doc
}

// Save rewrites the whole document.
func (s *Store) Save(doc Document) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return errors.Wrap(err, "failed to encode preferences")
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write preferences file")
	}
	return nil
}

// UnitPreference returns the stored unit for kind: "temperature",
// "wind_speed" or "precipitation".
func (s *Store) UnitPreference(kind string) string {
	doc := s.Load()
	switch kind {
	case "temperature":
		return doc.Units.Temperature
	case "wind_speed":
		return doc.Units.WindSpeed
	case "precipitation":
		return doc.Units.Precipitation
	}
	return ""
}

func (s *Store) SetUnitPreference(kind, value string) error {
	doc := s.Load()
	switch kind {
	case "temperature":
		doc.Units.Temperature = value
	case "wind_speed":
		doc.Units.WindSpeed = value
	case "precipitation":
		doc.Units.Precipitation = value
	default:
		return errors.Errorf("unknown unit kind %q", kind)
	}
	return s.Save(doc)
}

func (s *Store) AddFavorite(name string, coords models.Coordinates) error {
	doc := s.Load()
	doc.Favorites[name] = coords
	return s.Save(doc)
}

func (s *Store) Favorite(name string) (models.Coordinates, bool) {
	doc := s.Load()
	coords, ok := doc.Favorites[name]
	return coords, ok
}

func (s *Store) Favorites() map[string]models.Coordinates {
	return s.Load().Favorites
}

// RemoveFavorite deletes the named favorite. It reports false when the name
// was not stored, in which case the file is left untouched.
func (s *Store) RemoveFavorite(name string) (bool, error) {
	doc := s.Load()
	if _, ok := doc.Favorites[name]; !ok {
		return false, nil
	}
	delete(doc.Favorites, name)
	return true, s.Save(doc)
}

func (s *Store) DefaultLocation() *models.NamedLocation {
	return s.Load().DefaultLocation
}

func (s *Store) SetDefaultLocation(loc models.NamedLocation) error {
	doc := s.Load()
	doc.DefaultLocation = &loc
	return s.Save(doc)
}
