package cli

import (
	"github.com/spf13/cobra"

	"lockedin-cli/internal/models"
	"lockedin-cli/internal/views"
	"lockedin-cli/pkg/utils"
)

// addFundCommands adds the mutual funds command group.
func addFundCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newFundsCmd(app))
}

func newFundsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "funds",
		Short: "Mutual funds",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			view := views.NewMutualFundsView(app.API, app.Cache, app.Logger)
			if err := view.Load(cmd.Context()); err != nil {
				output.Error("Failed to load mutual funds: %v", err)
				return err
			}
			if output.IsJSON() {
				return output.JSON(view.Funds)
			}
			output.Bold("Mutual Funds")
			renderFundTable(output, view.Funds)
			return nil
		},
	}

	cmd.AddCommand(newFundsSearchCmd(app))
	cmd.AddCommand(newFundsShowCmd(app))
	return cmd
}

func newFundsSearchCmd(app *App) *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search funds by scheme name or fund house",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			view := views.NewMutualFundsView(app.API, app.Cache, app.Logger)

			var (
				results []models.MutualFund
				err     error
			)
			if remote {
				results, err = view.SearchRemote(cmd.Context(), args[0])
				if err != nil {
					output.Error("Search failed: %v", err)
					return err
				}
			} else {
				if err := view.Load(cmd.Context()); err != nil {
					output.Error("Failed to load mutual funds: %v", err)
					return err
				}
				results = view.Search(args[0])
			}

			if output.IsJSON() {
				return output.JSON(results)
			}
			if len(results) == 0 {
				output.Dim("No funds match %q.", args[0])
				return nil
			}
			renderFundTable(output, results)
			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "search on the backend instead of the loaded list")
	return cmd
}

func newFundsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <scheme-code>",
		Short: "Show fund detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			view := views.NewMutualFundsView(app.API, app.Cache, app.Logger)
			fund, err := view.Detail(cmd.Context(), args[0])
			if err != nil {
				output.Error("Failed to load fund %s: %v", args[0], err)
				return err
			}
			if output.IsJSON() {
				return output.JSON(fund)
			}
			output.Bold(fund.SchemeName)
			output.Printf("  Fund House: %s\n", fund.FundHouse)
			output.Printf("  Category:   %s\n", fund.Category)
			output.Printf("  NAV:        %s (%s)\n", utils.FormatUSD(fund.NAV), fund.NAVDate)
			output.Printf("  1Y Return:  %s\n", output.FormatPercent(fund.Return1Y))
			output.Printf("  3Y Return:  %s\n", output.FormatPercent(fund.Return3Y))
			return nil
		},
	}
}

func renderFundTable(output *Output, funds []models.MutualFund) {
	table := NewTable(output, "CODE", "SCHEME", "HOUSE", "NAV", "1Y")
	for _, f := range funds {
		table.AddRow(
			f.SchemeCode,
			f.SchemeName,
			f.FundHouse,
			utils.FormatUSD(f.NAV),
			output.FormatPercent(f.Return1Y),
		)
	}
	table.Render()
}
