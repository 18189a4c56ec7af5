package cli

import (
	"github.com/spf13/cobra"

	"lockedin-cli/internal/models"
	"lockedin-cli/internal/views"
	"lockedin-cli/pkg/utils"
)

// addExploreCommands adds the explore page and its standalone sections.
func addExploreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newExploreCmd(app))
	rootCmd.AddCommand(newPulseCmd(app))
	rootCmd.AddCommand(newTrendingCmd(app))
}

func newExploreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Market overview: pulse, trending stocks, funds and news",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			view := views.NewExploreView(app.API, app.Cache, app.Logger)
			if err := view.Load(cmd.Context()); err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"indices":  view.Pulse.Indices,
					"gainers":  view.Pulse.Gainers,
					"losers":   view.Pulse.Losers,
					"trending": view.Trending.Stocks,
					"funds":    view.Funds,
					"news":     view.News,
				})
			}

			renderPulse(output, view.Pulse)
			output.Println()
			renderTrending(output, view.Trending)
			output.Println()

			output.Bold("Mutual Funds")
			if view.FundsState == views.StateError {
				output.Error("  Failed to load funds: %v", view.FundsErr)
			} else {
				renderFundTable(output, view.Funds)
			}
			output.Println()

			output.Bold("Market News")
			if view.NewsState == views.StateError {
				output.Error("  Failed to load news: %v", view.NewsErr)
			} else {
				for _, item := range view.News {
					output.Printf("  • %s %s\n", item.Title, output.DimText("("+item.Source+")"))
				}
			}
			return nil
		},
	}
}

func newPulseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pulse",
		Short: "Market indices with top gainers and losers",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			view := views.NewMarketPulseView(app.API, app.Logger)
			if err := view.Load(cmd.Context()); err != nil {
				output.Error("Failed to load market pulse: %v", err)
				return err
			}
			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"indices": view.Indices,
					"gainers": view.Gainers,
					"losers":  view.Losers,
				})
			}
			renderPulse(output, view)
			return nil
		},
	}
}

func newTrendingCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "trending",
		Short: "Trending stocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			view := views.NewTrendingView(app.API, app.Cache, app.Logger)
			if err := view.Load(cmd.Context()); err != nil {
				output.Error("Failed to load trending stocks: %v", err)
				return err
			}
			if output.IsJSON() {
				return output.JSON(view.Stocks)
			}
			renderTrending(output, view)
			return nil
		},
	}
}

func renderPulse(output *Output, view *views.MarketPulseView) {
	output.Bold("Market Pulse")
	if view.State == views.StateError {
		output.Error("  Failed to load market pulse: %v", view.Err)
		return
	}

	for _, idx := range view.Indices {
		output.Printf("  %-12s %12s  %s\n",
			idx.Name, utils.FormatUSD(idx.Price), output.FormatPercent(idx.ChangePercent))
	}
	output.Println()

	output.Info("Top Gainers")
	renderQuoteTable(output, view.TopGainers(5))
	output.Println()
	output.Info("Top Losers")
	renderQuoteTable(output, view.TopLosers(5))
}

func renderTrending(output *Output, view *views.TrendingView) {
	output.Bold("Trending")
	if view.State == views.StateError {
		output.Error("  Failed to load trending stocks: %v", view.Err)
		return
	}
	renderQuoteTable(output, view.Stocks)
}

func renderQuoteTable(output *Output, quotes []models.MarketQuote) {
	table := NewTable(output, "TICKER", "NAME", "PRICE", "CHANGE", "VOLUME")
	for _, q := range quotes {
		table.AddRow(
			output.BoldText(q.Ticker),
			q.Name,
			utils.FormatUSD(q.Price),
			output.FormatPercent(q.ChangePercent),
			utils.FormatVolume(q.Volume),
		)
	}
	table.Render()
}
