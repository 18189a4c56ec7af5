package cli

import (
	"github.com/spf13/cobra"

	"lockedin-cli/internal/views"
	"lockedin-cli/pkg/utils"
)

// addPortfolioCommands adds holdings and allocation commands.
func addPortfolioCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newHoldingsCmd(app))
}

func newHoldingsCmd(app *App) *cobra.Command {
	var showAllocation bool

	cmd := &cobra.Command{
		Use:   "holdings",
		Short: "Portfolio holdings with live prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			view := views.NewHoldingsView(app.API, app.Logger)
			if err := view.Load(cmd.Context()); err != nil {
				output.Error("Failed to load holdings: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"summary":    view.Summary,
					"holdings":   view.Holdings,
					"allocation": view.Allocation(),
				})
			}

			renderSummary(output, view)
			output.Println()

			table := NewTable(output, "TICKER", "QTY", "AVG COST", "PRICE", "VALUE", "GAIN", "GAIN %")
			for _, h := range view.Holdings {
				table.AddRow(
					output.BoldText(h.Ticker),
					h.Quantity.String(),
					utils.FormatUSD(h.AvgBuyPrice),
					utils.FormatUSD(h.CurrentPrice),
					utils.FormatUSD(h.CurrentValue),
					output.FormatGain(h.Gain),
					output.FormatPercent(h.GainPercent),
				)
			}
			table.Render()

			if showAllocation {
				output.Println()
				output.Bold("Allocation")
				for _, slice := range view.Allocation() {
					output.Printf("  %-10s %3d%%\n", slice.Name, slice.Percent)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showAllocation, "allocation", "a", false, "show portfolio allocation breakdown")
	return cmd
}

func renderSummary(output *Output, view *views.HoldingsView) {
	output.Bold("Portfolio")
	if view.Summary != nil {
		output.Printf("  Cash:     %s\n", utils.FormatUSD(view.Summary.CashBalance))
	}
	output.Printf("  Value:    %s\n", utils.FormatUSD(view.TotalValue()))
	output.Printf("  Invested: %s\n", utils.FormatUSD(view.TotalInvested()))
	output.Printf("  Gain:     %s\n", output.FormatGain(view.TotalGain()))
}
