package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lockedin-cli/internal/views"
	"lockedin-cli/pkg/utils"
)

// addStockCommands adds the stock detail command.
func addStockCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newStockCmd(app))
}

func newStockCmd(app *App) *cobra.Command {
	var chartRange string

	cmd := &cobra.Command{
		Use:   "stock <ticker>",
		Short: "Stock detail with price history and news",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			view := views.NewStockView(app.API, app.Logger, args[0])
			if err := view.Load(cmd.Context()); err != nil {
				output.Error("Failed to load %s: %v", view.Ticker, err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"stock":       view.Stock,
					"history":     view.ChartData(chartRange),
					"news":        view.News,
					"cashBalance": view.CashBalance,
				})
			}

			renderStockDetail(output, view, chartRange)
			return nil
		},
	}

	cmd.Flags().StringVarP(&chartRange, "range", "r", "1M", "chart range (1M, 3M, 6M)")
	cmd.AddCommand(newStockWatchCmd(app))
	return cmd
}

func newStockWatchCmd(app *App) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "watch <ticker>",
		Short: "Add a stock to the watchlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			view := views.NewWatchlistView(app.API, app.Logger)
			if err := view.Add(cmd.Context(), args[0], notes); err != nil {
				output.Error("Failed to add to watchlist: %v", err)
				return err
			}
			output.Success("Added %s to watchlist", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&notes, "notes", "n", "", "notes for the watchlist entry")
	return cmd
}

func renderStockDetail(output *Output, view *views.StockView, chartRange string) {
	s := view.Stock

	output.Bold("%s (%s)", s.DisplayName(), s.Ticker)
	output.Printf("  Price:      %s  %s\n", utils.FormatUSD(s.Price), output.FormatPercent(s.ChangePercent))
	output.Printf("  Day Range:  %s - %s\n", utils.FormatUSD(s.Low), utils.FormatUSD(s.High))
	output.Printf("  Open:       %s   Prev Close: %s\n", utils.FormatUSD(s.Open), utils.FormatUSD(s.PreviousClose))
	output.Printf("  Volume:     %s   Market Cap: %s\n", utils.FormatVolume(s.Volume), utils.FormatMarketCap(s.MarketCap))
	output.Printf("  Cash:       %s\n", utils.FormatUSD(view.CashBalance))
	output.Println()

	points := view.ChartData(chartRange)
	if len(points) > 0 {
		first := points[0]
		last := points[len(points)-1]
		change := last.Close.Sub(first.Close)
		output.Bold("History (%s, %d points)", chartRange, len(points))
		output.Printf("  %s %s → %s %s  %s\n",
			first.Date, utils.FormatUSD(first.Close),
			last.Date, utils.FormatUSD(last.Close),
			output.FormatGain(change))
		output.Println()
	}

	if len(view.News) > 0 {
		output.Bold("News")
		for _, item := range view.News {
			line := fmt.Sprintf("  • %s", item.Title)
			output.Println(line + " " + output.DimText("("+item.Source+")"))
		}
	}
}
