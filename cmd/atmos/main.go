package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"atmos-cli/config"
	"atmos-cli/internal/commands"
	"atmos-cli/internal/display"
	"atmos-cli/internal/prefs"
	"atmos-cli/internal/repositories"
	"atmos-cli/internal/services/location"
	"atmos-cli/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	l := logger.NewZapLogger(cnf.AppName, cnf.LogLevel)
	defer func() { _ = l.Stop() }()

	httpClient := &http.Client{}
	if cnf.HTTPTimeoutSeconds > 0 {
		httpClient.Timeout = time.Duration(cnf.HTTPTimeoutSeconds) * time.Second
	}

	store := prefs.NewStore(cnf.PrefsPath, l)
	weather := repositories.NewOpenMeteoRepository(cnf.ForecastURL, cnf.ArchiveURL, l, httpClient)
	geocoder := repositories.NewGeocodingRepository(cnf.GeocodingURL, l, httpClient)

	renderer := display.NewRenderer(os.Stdout)
	prompter := commands.NewPrompter(os.Stdin, os.Stdout)
	resolver := location.NewResolver(store, geocoder, prompter, renderer, l)

	app := &commands.App{
		Config:   cnf,
		Log:      l,
		Prefs:    store,
		Weather:  weather,
		Geocoder: geocoder,
		Resolver: resolver,
		Renderer: renderer,
	}

	if err := commands.NewRootCommand(app).Execute(); err != nil {
		renderer.Error(err.Error())
		_ = l.Stop()
		os.Exit(1)
	}
}
