package config

import (
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds application settings: defaults, overridden by an optional
// YAML file (ATMOS_CONFIG, default ~/.atmos.yaml), overridden by ATMOS_*
// environment variables. User preferences (units, favorites, default
// location) live in their own document, not here.
type Config struct {
	AppName      string `yaml:"app_name" envconfig:"ATMOS_APP_NAME"`
	AppVersion   string `yaml:"app_version" envconfig:"ATMOS_APP_VERSION"`
	ForecastURL  string `yaml:"forecast_url" envconfig:"ATMOS_FORECAST_URL"`
	ArchiveURL   string `yaml:"archive_url" envconfig:"ATMOS_ARCHIVE_URL"`
	GeocodingURL string `yaml:"geocoding_url" envconfig:"ATMOS_GEOCODING_URL"`
	// HTTPTimeoutSeconds of 0 leaves the HTTP client without a deadline.
	HTTPTimeoutSeconds int    `yaml:"http_timeout_seconds" envconfig:"ATMOS_HTTP_TIMEOUT"`
	PrefsPath          string `yaml:"prefs_path" envconfig:"ATMOS_PREFS_PATH"`
	HistoryPath        string `yaml:"history_path" envconfig:"ATMOS_HISTORY_PATH"`
	LogLevel           string `yaml:"log_level" envconfig:"ATMOS_LOG_LEVEL"`
}

const (
	defaultPrefsFile   = ".atmos_cli_config.json"
	defaultHistoryFile = ".atmos_cli_history"
)

func defaultConfig() Config {
	return Config{
		AppName:      "atmos",
		AppVersion:   "0.1.0",
		ForecastURL:  "https://api.open-meteo.com/v1/forecast",
		ArchiveURL:   "https://archive-api.open-meteo.com/v1/archive",
		GeocodingURL: "https://geocoding-api.open-meteo.com/v1/search",
		LogLevel:     "warn",
	}
}

func NewConfig() (*Config, error) {
	cnf := defaultConfig()

	// Read from YAML file first
	if yamlData, err := os.ReadFile(configFilePath()); err == nil {
		if err := yaml.Unmarshal(yamlData, &cnf); err != nil {
			return nil, errors.Wrap(err, "failed to parse YAML config")
		}
	}

	// Override with environment variables
	if err := envconfig.Process("", &cnf); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment variables")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	if cnf.PrefsPath == "" {
		cnf.PrefsPath = filepath.Join(home, defaultPrefsFile)
	}
	if cnf.HistoryPath == "" {
		cnf.HistoryPath = filepath.Join(home, defaultHistoryFile)
	}

	return &cnf, nil
}

func configFilePath() string {
	if path := os.Getenv("ATMOS_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".atmos.yaml"
	}
	return filepath.Join(home, ".atmos.yaml")
}
