package views

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"lockedin-cli/internal/api"
	"lockedin-cli/internal/logging"
	"lockedin-cli/internal/models"
)

// OrdersView loads the order history and filters it client-side.
type OrdersView struct {
	client *api.Client
	logger zerolog.Logger

	State  State
	Err    error
	Orders []models.Order
}

// NewOrdersView creates the orders page view model.
func NewOrdersView(client *api.Client, logger zerolog.Logger) *OrdersView {
	return &OrdersView{
		client: client,
		logger: logger,
		State:  StateLoading,
	}
}

// Load fetches the order list.
func (v *OrdersView) Load(ctx context.Context) error {
	v.State = StateLoading
	v.Err = nil

	orders, err := v.client.Orders.All(ctx)
	if err != nil {
		v.State = StateError
		v.Err = err
		return err
	}

	v.Orders = orders
	v.State = StateReady
	return nil
}

// Filter returns the orders matching a status filter. "ALL" (or empty)
// passes everything; EXECUTED also matches COMPLETED, and CANCELLED also
// matches FAILED. Pure projection, no re-fetch.
func (v *OrdersView) Filter(status string) []models.Order {
	status = strings.ToUpper(strings.TrimSpace(status))
	if status == "" || status == "ALL" {
		return v.Orders
	}

	var matched []models.Order
	for _, order := range v.Orders {
		s := order.EffectiveStatus()
		switch status {
		case string(models.OrderStatusExecuted):
			if s.IsExecuted() {
				matched = append(matched, order)
			}
		case string(models.OrderStatusCancelled):
			if s == models.OrderStatusCancelled || s == models.OrderStatusFailed {
				matched = append(matched, order)
			}
		default:
			if s == models.OrderStatus(status) {
				matched = append(matched, order)
			}
		}
	}
	return matched
}

// OrderStats summarizes the loaded orders by status.
type OrderStats struct {
	Total         int
	Executed      int
	Pending       int
	Cancelled     int
	ExecutedValue decimal.Decimal
}

// Stats computes order statistics from the ready-state data.
func (v *OrdersView) Stats() OrderStats {
	stats := OrderStats{Total: len(v.Orders), ExecutedValue: decimal.Zero}
	for _, order := range v.Orders {
		switch s := order.EffectiveStatus(); {
		case s.IsExecuted():
			stats.Executed++
			stats.ExecutedValue = stats.ExecutedValue.Add(order.TotalAmount)
		case s == models.OrderStatusPending:
			stats.Pending++
		case s == models.OrderStatusCancelled || s == models.OrderStatusFailed:
			stats.Cancelled++
		}
	}
	return stats
}

// Place submits an order and logs the placement. Quantity below one is
// clamped to one.
func (v *OrdersView) Place(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	if req.Quantity < 1 {
		req.Quantity = 1
	}
	req.Ticker = strings.ToUpper(strings.TrimSpace(req.Ticker))

	order, err := v.client.Orders.Place(ctx, req)
	if err != nil {
		return nil, err
	}

	price, _ := req.Price.Float64()
	logging.LogOrder(v.logger, req.Ticker, string(req.OrderType), req.Quantity, price)
	return order, nil
}
