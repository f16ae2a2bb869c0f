package models

import "github.com/pkg/errors"

// Coordinates is a geographic point in decimal WGS84 degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude" example:"52.52"`
	Longitude float64 `json:"longitude" example:"13.41"`
}

// Validate checks that both components are inside the ranges the weather API
// accepts: latitude [-90, 90] and longitude [-180, 180].
func (c Coordinates) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return errors.Wrapf(ErrInvalidCoordinates, "latitude must be between -90 and 90, got %v", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return errors.Wrapf(ErrInvalidCoordinates, "longitude must be between -180 and 180, got %v", c.Longitude)
	}
	return nil
}

// NamedLocation is a point with the human-readable name it was resolved from.
// The name is empty when the location came from raw coordinates.
type NamedLocation struct {
	Name string `json:"name,omitempty" example:"Berlin"`
	Coordinates
}
