package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"lockedin-cli/internal/models"
	"lockedin-cli/internal/views"
	"lockedin-cli/pkg/utils"
)

// addOrderCommands adds order history and trading commands.
func addOrderCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newOrdersCmd(app))
	rootCmd.AddCommand(newTradeCmd(app, models.OrderSideBuy))
	rootCmd.AddCommand(newTradeCmd(app, models.OrderSideSell))
}

func newOrdersCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Order history",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			view := views.NewOrdersView(app.API, app.Logger)
			if err := view.Load(cmd.Context()); err != nil {
				output.Error("Failed to load orders: %v", err)
				return err
			}

			orders := view.Filter(status)
			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"orders": orders,
					"stats":  view.Stats(),
				})
			}

			stats := view.Stats()
			output.Bold("Orders")
			output.Printf("  Total: %d   Executed: %d   Pending: %d   Cancelled: %d\n",
				stats.Total, stats.Executed, stats.Pending, stats.Cancelled)
			output.Printf("  Executed value: %s\n", utils.FormatUSD(stats.ExecutedValue))
			output.Println()

			table := NewTable(output, "ID", "TICKER", "SIDE", "QTY", "PRICE", "TOTAL", "STATUS", "DATE")
			for _, o := range orders {
				side := string(o.Type)
				if o.Type == models.OrderSideBuy {
					side = output.Green(side)
				} else {
					side = output.Red(side)
				}
				table.AddRow(
					strconv.FormatInt(o.ID, 10),
					output.BoldText(o.Ticker),
					side,
					o.Quantity.String(),
					utils.FormatUSD(o.Price),
					utils.FormatUSD(o.TotalAmount),
					string(o.EffectiveStatus()),
					o.CreatedAt.Format("2006-01-02 15:04"),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "ALL", "filter by status (ALL, EXECUTED, PENDING, CANCELLED)")
	return cmd
}

func newTradeCmd(app *App, side models.OrderSide) *cobra.Command {
	use := "buy <ticker> <quantity>"
	short := "Buy shares at the current market price"
	if side == models.OrderSideSell {
		use = "sell <ticker> <quantity>"
		short = "Sell shares at the current market price"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			qty, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				output.Error("Invalid quantity %q", args[1])
				return err
			}

			view := views.NewStockView(app.API, app.Logger, args[0])
			if err := view.Load(cmd.Context()); err != nil {
				output.Error("Failed to load %s: %v", view.Ticker, err)
				return err
			}

			order, err := view.PlaceOrder(cmd.Context(), side, qty)
			if err != nil {
				output.Error("Order failed: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(order)
			}
			output.Success("%s order placed: %s x %s @ %s",
				side, order.Ticker, order.Quantity.String(), utils.FormatUSD(order.Price))
			return nil
		},
	}
}
