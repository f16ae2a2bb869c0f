// Package location turns the location inputs of an invocation (favorite
// name, free text, explicit coordinates) into validated coordinates, falling
// back to the stored default location or an interactive prompt.
package location

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"atmos-cli/internal/models"
	"atmos-cli/pkg/logger"
)

// PreferenceStore is the slice of the preferences API the resolver needs.
type PreferenceStore interface {
	Favorite(name string) (models.Coordinates, bool)
	DefaultLocation() *models.NamedLocation
	SetDefaultLocation(loc models.NamedLocation) error
}

// Geocoder searches a free-text place name.
type Geocoder interface {
	Search(ctx context.Context, name string) (models.NamedLocation, error)
}

// Prompter asks the user questions when no location can be determined any
// other way.
type Prompter interface {
	Confirm(question string) (bool, error)
	Ask(question string) (string, error)
}

// Messenger shows non-fatal informational notices.
type Messenger interface {
	Info(msg string)
}

// Spec is the raw location input of a single invocation. The coordinate
// pointers are nil when the corresponding flag was not passed, so 0 stays a
// valid coordinate value.
type Spec struct {
	Favorite  string
	Location  string
	Latitude  *float64
	Longitude *float64
}

type Resolver struct {
	prefs    PreferenceStore
	geocoder Geocoder
	prompter Prompter
	messages Messenger
	l        *logger.Logger
}

func NewResolver(prefs PreferenceStore, geocoder Geocoder, prompter Prompter, messages Messenger, l *logger.Logger) *Resolver {
	return &Resolver{
		prefs:    prefs,
		geocoder: geocoder,
		prompter: prompter,
		messages: messages,
		l:        l,
	}
}

// Resolve picks the location for a forecast by precedence: favorite name,
// free-text location, explicit coordinate pair, stored default, and finally
// an interactive offer to set a default. Every path range-validates the
// coordinates before returning them.
func (r *Resolver) Resolve(ctx context.Context, spec Spec) (models.NamedLocation, error) {
	if spec.Favorite != "" {
		coords, ok := r.prefs.Favorite(spec.Favorite)
		if !ok {
			return models.NamedLocation{}, errors.Wrapf(models.ErrNotFound,
				"favorite location '%s' not found", spec.Favorite)
		}
		if err := coords.Validate(); err != nil {
			return models.NamedLocation{}, err
		}
		r.messages.Info(fmt.Sprintf("Using favorite location: %s (%v, %v)",
			spec.Favorite, coords.Latitude, coords.Longitude))
		return models.NamedLocation{Name: spec.Favorite, Coordinates: coords}, nil
	}

	if spec.Location != "" {
		loc, err := r.geocoder.Search(ctx, spec.Location)
		if err != nil {
			return models.NamedLocation{}, err
		}
		if err := loc.Coordinates.Validate(); err != nil {
			return models.NamedLocation{}, err
		}
		r.messages.Info(fmt.Sprintf("Resolved location: %s (%v, %v)",
			loc.Name, loc.Latitude, loc.Longitude))
		return loc, nil
	}

	if spec.Latitude != nil && spec.Longitude != nil {
		coords := models.Coordinates{Latitude: *spec.Latitude, Longitude: *spec.Longitude}
		if err := coords.Validate(); err != nil {
			return models.NamedLocation{}, err
		}
		return models.NamedLocation{Coordinates: coords}, nil
	}

	if spec.Latitude != nil || spec.Longitude != nil {
		return models.NamedLocation{}, errors.Wrap(models.ErrInvalidCoordinates,
			"no valid location could be determined; provide both --latitude and --longitude")
	}

	if loc := r.prefs.DefaultLocation(); loc != nil {
		if err := loc.Coordinates.Validate(); err != nil {
			return models.NamedLocation{}, err
		}
		r.messages.Info(fmt.Sprintf("Using default location: %s (%v, %v)",
			loc.Name, loc.Latitude, loc.Longitude))
		return *loc, nil
	}

	return r.offerDefault(ctx)
}

// offerDefault interactively sets up a default location and returns it.
func (r *Resolver) offerDefault(ctx context.Context) (models.NamedLocation, error) {
	r.messages.Info("No location specified and no default location set.")

	ok, err := r.prompter.Confirm("Would you like to set a default location now?")
	if err != nil {
		return models.NamedLocation{}, errors.Wrap(err, "failed to read input")
	}
	if !ok {
		return models.NamedLocation{}, errors.Wrap(models.ErrNotFound,
			"no location provided; specify --latitude/--longitude, --location, or --favorite")
	}

	input, err := r.prompter.Ask("Enter a location (city name or 'latitude,longitude')")
	if err != nil {
		return models.NamedLocation{}, errors.Wrap(err, "failed to read input")
	}

	loc, err := r.ResolveInput(ctx, input)
	if err != nil {
		return models.NamedLocation{}, err
	}
	if err := r.prefs.SetDefaultLocation(loc); err != nil {
		return models.NamedLocation{}, errors.Wrap(err, "failed to save default location")
	}

	r.messages.Info(fmt.Sprintf("Default location set to: %s (%v, %v). This preference has been saved.",
		loc.Name, loc.Latitude, loc.Longitude))
	r.l.Debug("default location saved", map[string]any{"name": loc.Name})

	return loc, nil
}

// ResolveInput interprets free-form input as either a "latitude,longitude"
// pair or a place name to geocode.
func (r *Resolver) ResolveInput(ctx context.Context, input string) (models.NamedLocation, error) {
	input = strings.TrimSpace(input)

	if strings.Contains(input, ",") {
		parts := strings.SplitN(input, ",", 2)
		lat, latErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		lon, lonErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if latErr != nil || lonErr != nil {
			return models.NamedLocation{}, errors.Wrap(models.ErrInvalidCoordinates,
				"invalid latitude,longitude format, use: LATITUDE,LONGITUDE")
		}
		coords := models.Coordinates{Latitude: lat, Longitude: lon}
		if err := coords.Validate(); err != nil {
			return models.NamedLocation{}, err
		}
		return models.NamedLocation{Name: input, Coordinates: coords}, nil
	}

	loc, err := r.geocoder.Search(ctx, input)
	if err != nil {
		return models.NamedLocation{}, err
	}
	if err := loc.Coordinates.Validate(); err != nil {
		return models.NamedLocation{}, err
	}
	return loc, nil
}
