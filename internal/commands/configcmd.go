package commands

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"atmos-cli/internal/models"
	"atmos-cli/internal/query"
)

func newConfigCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage preferences: default units, favorite locations, default location",
	}

	cmd.AddCommand(
		newSetUnitCommand(app),
		newAddFavoriteCommand(app),
		newListFavoritesCommand(app),
		newRemoveFavoriteCommand(app),
		newSetDefaultLocationCommand(app),
	)

	return cmd
}

func newSetUnitCommand(app *App) *cobra.Command {
	var temperature, windSpeed, precipitation string

	cmd := &cobra.Command{
		Use:     "set-unit",
		Short:   "Set default units for temperature, wind speed, and precipitation",
		Example: `  atmos config set-unit --temperature fahrenheit --wind-speed mph`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := query.ValidateUnitOverrides(temperature, windSpeed, precipitation); err != nil {
				return err
			}
			if temperature == "" && windSpeed == "" && precipitation == "" {
				app.Renderer.Info("No unit specified to set. Use --temperature, --wind-speed, or --precipitation.")
				return nil
			}

			if temperature != "" {
				if err := app.Prefs.SetUnitPreference("temperature", temperature); err != nil {
					return err
				}
				app.Renderer.Info(fmt.Sprintf("Default temperature unit set to: %s. This preference has been saved.", temperature))
			}
			if windSpeed != "" {
				if err := app.Prefs.SetUnitPreference("wind_speed", windSpeed); err != nil {
					return err
				}
				app.Renderer.Info(fmt.Sprintf("Default wind speed unit set to: %s. This preference has been saved.", windSpeed))
			}
			if precipitation != "" {
				if err := app.Prefs.SetUnitPreference("precipitation", precipitation); err != nil {
					return err
				}
				app.Renderer.Info(fmt.Sprintf("Default precipitation unit set to: %s. This preference has been saved.", precipitation))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&temperature, "temperature", "", "default temperature unit (celsius or fahrenheit)")
	cmd.Flags().StringVar(&windSpeed, "wind-speed", "", "default wind speed unit (kmh, ms, mph, or kn)")
	cmd.Flags().StringVar(&precipitation, "precipitation", "", "default precipitation unit (mm or inch)")

	return cmd
}

func newAddFavoriteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "add-favorite NAME LATITUDE LONGITUDE",
		Short:   "Add a favorite location",
		Example: `  atmos config add-favorite "Los Angeles" 34.05 -118.25`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return errors.Wrapf(models.ErrInvalidCoordinates, "invalid latitude '%s'", args[1])
			}
			lon, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return errors.Wrapf(models.ErrInvalidCoordinates, "invalid longitude '%s'", args[2])
			}

			coords := models.Coordinates{Latitude: lat, Longitude: lon}
			if err := coords.Validate(); err != nil {
				return err
			}
			if err := app.Prefs.AddFavorite(args[0], coords); err != nil {
				return err
			}

			app.Renderer.Info(fmt.Sprintf("Added favorite location: %s (%v, %v). This preference has been saved.", args[0], lat, lon))
			return nil
		},
	}
}

func newListFavoritesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list-favorites",
		Short: "List all saved favorite locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			favorites := app.Prefs.Favorites()
			if len(favorites) == 0 {
				app.Renderer.Info("No favorite locations saved.")
				return nil
			}
			app.Renderer.Favorites(favorites)
			return nil
		},
	}
}

func newRemoveFavoriteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-favorite NAME",
		Short: "Remove a saved favorite location by its name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := app.Prefs.RemoveFavorite(args[0])
			if err != nil {
				return err
			}
			if !removed {
				return errors.Wrapf(models.ErrNotFound, "favorite location '%s' not found", args[0])
			}
			app.Renderer.Info(fmt.Sprintf("Removed favorite location: %s. This preference has been updated.", args[0]))
			return nil
		},
	}
}

func newSetDefaultLocationCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-default-location LOCATION",
		Short: "Set the default location used when a forecast names none",
		Example: `  atmos config set-default-location "London"
  atmos config set-default-location "34.05,-118.25"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := app.Resolver.ResolveInput(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := app.Prefs.SetDefaultLocation(loc); err != nil {
				return err
			}
			app.Renderer.Info(fmt.Sprintf("Default location set to: %s (%v, %v). This preference has been saved.", loc.Name, loc.Latitude, loc.Longitude))
			return nil
		},
	}
}
