package models

import (
	"testing"

	"github.com/pkg/errors"
)

func TestCoordinatesValidate(t *testing.T) {
	valid := []Coordinates{
		{Latitude: 0, Longitude: 0},
		{Latitude: 52.52, Longitude: 13.41},
		{Latitude: -33.87, Longitude: 151.21},
		{Latitude: 90, Longitude: 180},
		{Latitude: -90, Longitude: -180},
	}
	for _, c := range valid {
		if err := c.Validate(); err != nil {
			t.Errorf("Validate(%v, %v) = %v, want nil", c.Latitude, c.Longitude, err)
		}
	}

	invalid := []Coordinates{
		{Latitude: 90.0001, Longitude: 0},
		{Latitude: -91, Longitude: 0},
		{Latitude: 0, Longitude: 180.5},
		{Latitude: 0, Longitude: -181},
		{Latitude: 1000, Longitude: 1000},
	}
	for _, c := range invalid {
		err := c.Validate()
		if err == nil {
			t.Errorf("Validate(%v, %v) = nil, want error", c.Latitude, c.Longitude)
			continue
		}
		if !errors.Is(err, ErrInvalidCoordinates) {
			t.Errorf("Validate(%v, %v) = %v, want ErrInvalidCoordinates", c.Latitude, c.Longitude, err)
		}
	}
}
