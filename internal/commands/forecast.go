package commands

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"atmos-cli/internal/models"
	"atmos-cli/internal/query"
	"atmos-cli/internal/services/location"
)

type forecastOptions struct {
	latitude  float64
	longitude float64
	location  string
	favorite  string

	current bool
	hourly  []string
	daily   []string

	temperatureUnit   string
	windSpeedUnit     string
	precipitationUnit string

	timezone     string
	forecastDays int
	pastDays     int
	startDate    string
	endDate      string
	archive      bool

	chart         bool
	timeformat    string
	models        []string
	cellSelection string
	elevation     float64
	disableStream bool
}

func newForecastCommand(app *App) *cobra.Command {
	opts := &forecastOptions{}

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Fetch weather forecast or historical data for a location",
		Example: `  atmos forecast --location "London" --current
  atmos forecast --latitude 34.05 --longitude -118.25 --hourly temperature_2m
  atmos forecast --favorite "My Home" --daily temperature_2m_max --chart
  atmos forecast --location "Berlin" --start-date 2023-01-01 --end-date 2023-01-07 --daily temperature_2m_max --archive --models ecmwf_ifs`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForecast(cmd, app, opts)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.latitude, "latitude", 0, "geographical WGS84 latitude (e.g. 34.05 for Los Angeles)")
	flags.Float64Var(&opts.longitude, "longitude", 0, "geographical WGS84 longitude (e.g. -118.25 for Los Angeles)")
	flags.StringVar(&opts.location, "location", "", `city name to geocode (e.g. "London" or "Paris, France")`)
	flags.StringVar(&opts.favorite, "favorite", "", "use a saved favorite location by name")
	flags.BoolVar(&opts.current, "current", false, "include current weather data")
	flags.StringArrayVar(&opts.hourly, "hourly", nil, "hourly weather variable to retrieve, repeatable")
	flags.StringArrayVar(&opts.daily, "daily", nil, "daily weather variable to retrieve, repeatable")
	flags.StringVar(&opts.temperatureUnit, "temperature-unit", "", "temperature unit override (celsius or fahrenheit)")
	flags.StringVar(&opts.windSpeedUnit, "wind-speed-unit", "", "wind speed unit override (kmh, ms, mph, or kn)")
	flags.StringVar(&opts.precipitationUnit, "precipitation-unit", "", "precipitation unit override (mm or inch)")
	flags.StringVar(&opts.timezone, "timezone", "", "timezone for the forecast (e.g. America/New_York), auto-selected when unset")
	flags.IntVar(&opts.forecastDays, "forecast-days", models.DefaultForecastDays, "number of days to forecast (1-16)")
	flags.IntVar(&opts.pastDays, "past-days", models.DefaultPastDays, "number of past days to include (0-92)")
	flags.StringVar(&opts.startDate, "start-date", "", "start date for historical data (YYYY-MM-DD)")
	flags.StringVar(&opts.endDate, "end-date", "", "end date for historical data (YYYY-MM-DD)")
	flags.BoolVar(&opts.archive, "archive", false, "fetch from the historical archive API instead of the forecast API")
	flags.BoolVar(&opts.chart, "chart", false, "draw a daily temperature chart, needs temperature_2m_max and temperature_2m_min in --daily")
	flags.StringVar(&opts.timeformat, "timeformat", "", "time format of the API response (iso8601 or unixtime)")
	flags.StringArrayVar(&opts.models, "models", nil, "weather model to use, repeatable")
	flags.StringVar(&opts.cellSelection, "cell-selection", "", "grid cell selection method (land, sea, or nearest)")
	flags.Float64Var(&opts.elevation, "elevation", 0, "elevation above sea level in meters, defaults to the location's own")
	flags.BoolVar(&opts.disableStream, "disable-stream", false, "disable data streaming for faster responses")

	return cmd
}

func runForecast(cmd *cobra.Command, app *App, opts *forecastOptions) error {
	req := query.Request{
		Current:           opts.current,
		Hourly:            opts.hourly,
		Daily:             opts.daily,
		TemperatureUnit:   opts.temperatureUnit,
		WindSpeedUnit:     opts.windSpeedUnit,
		PrecipitationUnit: opts.precipitationUnit,
		Timezone:          opts.timezone,
		ForecastDays:      opts.forecastDays,
		PastDays:          opts.pastDays,
		StartDate:         opts.startDate,
		EndDate:           opts.endDate,
		Archive:           opts.archive,
		Timeformat:        opts.timeformat,
		Models:            opts.models,
		CellSelection:     opts.cellSelection,
		DisableStream:     opts.disableStream,
	}
	if cmd.Flags().Changed("elevation") {
		req.Elevation = &opts.elevation
	}

	// Everything checkable locally is rejected before any network call.
	if err := query.Validate(req); err != nil {
		return err
	}

	if !req.Current && len(req.Hourly) == 0 && len(req.Daily) == 0 {
		req.Current = true
		app.Renderer.Info("No data type specified (--current, --hourly, --daily). Defaulting to --current weather.")
	}

	spec := location.Spec{Favorite: opts.favorite, Location: opts.location}
	if cmd.Flags().Changed("latitude") {
		spec.Latitude = &opts.latitude
	}
	if cmd.Flags().Changed("longitude") {
		spec.Longitude = &opts.longitude
	}

	loc, err := app.Resolver.Resolve(cmd.Context(), spec)
	if err != nil {
		return err
	}
	req.Coordinates = loc.Coordinates

	doc := app.Prefs.Load()
	weatherQuery, err := query.Assemble(req, doc.Units)
	if err != nil {
		return err
	}

	app.Log.Debug("fetching weather", map[string]any{
		"latitude":  weatherQuery.Latitude,
		"longitude": weatherQuery.Longitude,
		"archive":   weatherQuery.Archive,
	})

	stop := app.startSpinner("Fetching weather data...")
	result := app.Weather.Fetch(cmd.Context(), weatherQuery)
	stop()

	if result.Err != "" {
		return errors.New(result.Err)
	}

	if req.Current {
		app.Renderer.Current(result)
	}
	if len(req.Hourly) > 0 {
		app.Renderer.Hourly(result)
	}
	if len(req.Daily) > 0 {
		app.Renderer.Daily(result)
		if opts.chart {
			_, hasMax := result.Daily["temperature_2m_max"]
			_, hasMin := result.Daily["temperature_2m_min"]
			if !hasMax || !hasMin {
				return errors.New("daily temperature data (temperature_2m_max and temperature_2m_min) is required for charting; include both in your --daily options")
			}
			app.Renderer.TemperatureChart(result)
		}
	}

	return nil
}
