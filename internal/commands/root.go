package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the full command tree. The interactive mode builds a
// fresh tree per input line, so construction must stay side-effect free.
func NewRootCommand(app *App) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "atmos",
		Short: "Weather in your terminal",
		Long: `A command-line weather application using the Open-Meteo API.

Fetch current, hourly and daily forecasts or historical data for any place
on earth, keep favorite locations, and draw daily temperature charts.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				app.Log.SetLevel("debug")
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newForecastCommand(app),
		newConfigCommand(app),
		newInteractiveCommand(app),
		newAboutCommand(app),
	)

	return root
}
