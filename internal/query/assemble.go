// Package query validates user-supplied forecast parameters and assembles
// them into a WeatherQuery ready for the API.
package query

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"atmos-cli/internal/models"
	"atmos-cli/internal/prefs"
)

// Request carries the raw values of a forecast invocation before validation.
// Unit and enum fields are empty when the user did not override them.
type Request struct {
	Coordinates models.Coordinates

	Current bool
	Hourly  []string
	Daily   []string

	TemperatureUnit   string `validate:"omitempty,oneof=celsius fahrenheit"`
	WindSpeedUnit     string `validate:"omitempty,oneof=kmh ms mph kn"`
	PrecipitationUnit string `validate:"omitempty,oneof=mm inch"`

	Timezone     string
	ForecastDays int
	PastDays     int
	StartDate    string
	EndDate      string
	Archive      bool

	Timeformat    string `validate:"omitempty,oneof=iso8601 unixtime"`
	Models        []string
	CellSelection string `validate:"omitempty,oneof=land sea nearest"`
	Elevation     *float64
	DisableStream bool
}

var validate = validator.New()

var enumLabels = map[string]string{
	"TemperatureUnit":   "temperature unit",
	"WindSpeedUnit":     "wind speed unit",
	"PrecipitationUnit": "precipitation unit",
	"Timeformat":        "time format",
	"CellSelection":     "cell selection",
}

// Validate checks everything that can be checked without touching the
// network: enum values, day-count ranges, the date pair, and variable names.
func Validate(req Request) error {
	if err := checkEnums(req); err != nil {
		return err
	}

	if req.ForecastDays < models.MinForecastDays || req.ForecastDays > models.MaxForecastDays {
		return errors.Wrapf(models.ErrOutOfRange,
			"invalid value for '--forecast-days': must be between %d and %d, got %d",
			models.MinForecastDays, models.MaxForecastDays, req.ForecastDays)
	}
	if req.PastDays < models.MinPastDays || req.PastDays > models.MaxPastDays {
		return errors.Wrapf(models.ErrOutOfRange,
			"invalid value for '--past-days': must be between %d and %d, got %d",
			models.MinPastDays, models.MaxPastDays, req.PastDays)
	}

	hasStart := req.StartDate != ""
	hasEnd := req.EndDate != ""
	if hasStart != hasEnd {
		return errors.Wrap(models.ErrIncompleteDateRange,
			"both --start-date and --end-date must be provided")
	}
	// Value compare against the defaults: passing --forecast-days 7 alongside
	// a date pair is accepted, the dates simply win.
	if hasStart && hasEnd &&
		(req.ForecastDays != models.DefaultForecastDays || req.PastDays != models.DefaultPastDays) {
		return errors.Wrap(models.ErrConflictingDates,
			"cannot use --start-date/--end-date together with --forecast-days or --past-days")
	}

	for _, name := range req.Hourly {
		if !models.IsHourlyVariable(name) {
			return errors.Wrapf(models.ErrOutOfRange, "unknown hourly variable '%s'", name)
		}
	}
	for _, name := range req.Daily {
		if !models.IsDailyVariable(name) {
			return errors.Wrapf(models.ErrOutOfRange, "unknown daily variable '%s'", name)
		}
	}
	for _, name := range req.Models {
		if !models.IsWeatherModel(name) {
			return errors.Wrapf(models.ErrOutOfRange, "unknown weather model '%s'", name)
		}
	}

	return nil
}

// ValidateUnitOverrides checks standalone unit values, empty meaning "not
// overridden". Used by config set-unit before anything is persisted.
func ValidateUnitOverrides(temperature, windSpeed, precipitation string) error {
	return checkEnums(Request{
		TemperatureUnit:   temperature,
		WindSpeedUnit:     windSpeed,
		PrecipitationUnit: precipitation,
	})
}

// Assemble turns a validated Request into the wire-level query. Unit fields
// fall back to the stored preferences, the timezone to "auto". A start/end
// date pair routes the query to the archive endpoint even without --archive.
func Assemble(req Request, units prefs.Units) (models.WeatherQuery, error) {
	if err := req.Coordinates.Validate(); err != nil {
		return models.WeatherQuery{}, err
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = "auto"
	}

	temperatureUnit := req.TemperatureUnit
	if temperatureUnit == "" {
		temperatureUnit = units.Temperature
	}
	windSpeedUnit := req.WindSpeedUnit
	if windSpeedUnit == "" {
		windSpeedUnit = units.WindSpeed
	}
	precipitationUnit := req.PrecipitationUnit
	if precipitationUnit == "" {
		precipitationUnit = units.Precipitation
	}

	weatherQuery := models.WeatherQuery{
		Latitude:          req.Coordinates.Latitude,
		Longitude:         req.Coordinates.Longitude,
		Timezone:          timezone,
		ForecastDays:      req.ForecastDays,
		PastDays:          req.PastDays,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		TemperatureUnit:   temperatureUnit,
		WindSpeedUnit:     windSpeedUnit,
		PrecipitationUnit: precipitationUnit,
		Hourly:            req.Hourly,
		Daily:             req.Daily,
		Timeformat:        req.Timeformat,
		Models:            req.Models,
		CellSelection:     req.CellSelection,
		Elevation:         req.Elevation,
		DisableStream:     req.DisableStream,
		Archive:           req.Archive || (req.StartDate != "" && req.EndDate != ""),
	}
	if req.Current {
		weatherQuery.Current = models.CurrentVariables
	}

	return weatherQuery, nil
}

func checkEnums(req Request) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errors.Wrap(err, "validate request")
	}

	fe := verrs[0]
	label := enumLabels[fe.StructField()]
	if label == "" {
		label = strings.ToLower(fe.StructField())
	}
	allowed := strings.Join(strings.Fields(fe.Param()), ", ")

	return errors.Wrapf(models.ErrOutOfRange, "invalid %s '%v': must be one of %s",
		label, fe.Value(), allowed)
}
