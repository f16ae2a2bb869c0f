package commands

import (
	"github.com/spf13/cobra"
)

func newAboutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Show application information",
		Run: func(cmd *cobra.Command, args []string) {
			app.Renderer.About(app.Config.AppName, app.Config.AppVersion)
		},
	}
}
