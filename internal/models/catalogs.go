package models

import "slices"

const (
	DefaultForecastDays = 7
	DefaultPastDays     = 0

	MinForecastDays = 1
	MaxForecastDays = 16
	MinPastDays     = 0
	MaxPastDays     = 92
)

// Unit enumerations accepted by the Open-Meteo API.
var (
	TemperatureUnits   = []string{"celsius", "fahrenheit"}
	WindSpeedUnits     = []string{"kmh", "ms", "mph", "kn"}
	PrecipitationUnits = []string{"mm", "inch"}
)

var TimeFormats = []string{"iso8601", "unixtime"}

var CellSelectionOptions = []string{"land", "sea", "nearest"}

var WeatherModels = []string{
	"ecmwf_ifs", "gfs_seamless", "icon_global", "icon_eu", "icon_d2",
	"gem_global", "meteofrance_arome_fwd", "meteofrance_arome_hres",
	"meteofrance_arome_fwd_seamless", "meteofrance_arome_hres_seamless",
	"arpae_cosmo_seamless", "arpae_cosmo_d2_seamless", "arpae_cosmo_5m_seamless",
	"dwd_icon_seamless", "dwd_icon_eu_seamless", "dwd_icon_d2_seamless",
	"hrrr", "era5_seamless", "era5_land_seamless", "cma_grapes_global",
	"bom_access_global", "nz_met_ensemble", "gfs_graphical", "gfs_hrrr_blend",
}

// HourlyVariables lists the hourly weather variables a query may request.
var HourlyVariables = []string{
	"temperature_2m", "relative_humidity_2m", "dew_point_2m", "apparent_temperature",
	"precipitation_probability", "precipitation", "rain", "showers", "snowfall",
	"weather_code", "surface_pressure", "cloud_cover", "cloud_cover_low",
	"cloud_cover_mid", "cloud_cover_high", "visibility", "evapotranspiration",
	"et0_fao_evapotranspiration", "vapor_pressure_deficit", "wind_speed_10m",
	"wind_speed_80m", "wind_speed_120m", "wind_speed_180m", "wind_direction_10m",
	"wind_direction_80m", "wind_direction_120m", "wind_direction_180m",
	"wind_gusts_10m", "temperature_80m", "temperature_120m", "temperature_180m",
	"soil_temperature_0cm", "soil_temperature_6cm", "soil_temperature_18cm",
	"soil_temperature_54cm", "soil_moisture_0_1cm", "soil_moisture_1_3cm",
	"soil_moisture_3_9cm", "soil_moisture_9_27cm", "soil_moisture_27_81cm",
}

// DailyVariables lists the daily aggregate variables a query may request.
var DailyVariables = []string{
	"weather_code", "temperature_2m_max", "temperature_2m_min",
	"apparent_temperature_max", "apparent_temperature_min", "sunrise", "sunset",
	"daylight_duration", "sunshine_duration", "uv_index_max", "uv_index_clear_sky_max",
	"precipitation_sum", "rain_sum", "showers_sum", "snowfall_sum",
	"precipitation_hours", "wind_speed_10m_max", "wind_gusts_10m_max",
	"wind_direction_10m_dominant",
}

// CurrentVariables is the full current-conditions set. A query that asks for
// current weather always requests all of them.
var CurrentVariables = []string{
	"temperature_2m", "relative_humidity_2m", "apparent_temperature",
	"is_day", "precipitation", "rain", "showers", "snowfall",
	"weather_code", "cloud_cover", "pressure_msl", "surface_pressure",
	"wind_speed_10m", "wind_direction_10m", "wind_gusts_10m",
}

func IsHourlyVariable(name string) bool { return slices.Contains(HourlyVariables, name) }

func IsDailyVariable(name string) bool { return slices.Contains(DailyVariables, name) }

func IsWeatherModel(name string) bool { return slices.Contains(WeatherModels, name) }
