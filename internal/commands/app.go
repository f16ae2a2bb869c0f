// Package commands wires the CLI surface: the forecast, config, interactive
// and about commands.
package commands

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"

	"atmos-cli/config"
	"atmos-cli/internal/display"
	"atmos-cli/internal/prefs"
	"atmos-cli/internal/repositories"
	"atmos-cli/internal/services/location"
	"atmos-cli/pkg/logger"
)

// App bundles the dependencies the commands pull from.
type App struct {
	Config   *config.Config
	Log      *logger.Logger
	Prefs    *prefs.Store
	Weather  *repositories.OpenMeteoRepository
	Geocoder *repositories.GeocodingRepository
	Resolver *location.Resolver
	Renderer *display.Renderer
}

// startSpinner shows a progress spinner on stderr while a fetch is running.
// The returned stop function is a no-op when stderr is not a terminal, so
// piped and tested output stays clean.
func (a *App) startSpinner(msg string) func() {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + msg
	_ = s.Color("green")
	s.Start()
	return s.Stop
}
