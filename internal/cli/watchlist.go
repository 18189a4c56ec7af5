package cli

import (
	"github.com/spf13/cobra"

	"lockedin-cli/internal/views"
	"lockedin-cli/pkg/utils"
)

// addWatchlistCommands adds the watchlist command group.
func addWatchlistCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newWatchlistCmd(app))
}

func newWatchlistCmd(app *App) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "watchlist",
		Short: "Watchlist with live prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			view := views.NewWatchlistView(app.API, app.Logger)
			if err := view.Load(cmd.Context()); err != nil {
				output.Error("Failed to load watchlist: %v", err)
				return err
			}

			items := view.Filter(filter)
			if output.IsJSON() {
				return output.JSON(items)
			}

			if len(items) == 0 {
				output.Dim("Watchlist is empty.")
				return nil
			}

			table := NewTable(output, "TICKER", "PRICE", "CHANGE", "NOTES")
			for _, item := range items {
				table.AddRow(
					output.BoldText(item.Ticker),
					utils.FormatUSD(item.Price),
					output.FormatPercent(item.ChangePercent),
					item.Notes,
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "filter entries by ticker or notes")

	cmd.AddCommand(newWatchlistAddCmd(app))
	cmd.AddCommand(newWatchlistRemoveCmd(app))
	return cmd
}

func newWatchlistAddCmd(app *App) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "add <ticker>",
		Short: "Add a ticker to the watchlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			view := views.NewWatchlistView(app.API, app.Logger)
			if err := view.Add(cmd.Context(), args[0], notes); err != nil {
				output.Error("Failed to add %s: %v", args[0], err)
				return err
			}
			output.Success("Added %s to watchlist", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&notes, "notes", "n", "", "notes for the entry")
	return cmd
}

func newWatchlistRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <ticker>",
		Aliases: []string{"rm"},
		Short:   "Remove a ticker from the watchlist",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			view := views.NewWatchlistView(app.API, app.Logger)
			if err := view.Remove(cmd.Context(), args[0]); err != nil {
				output.Error("Failed to remove %s: %v", args[0], err)
				return err
			}
			output.Success("Removed %s from watchlist", args[0])
			return nil
		},
	}
}
