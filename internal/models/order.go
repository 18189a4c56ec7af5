package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderSide represents the side of an order.
type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

// OrderStatus represents the backend-reported status of an order.
// The backend is authoritative; this tier never transitions statuses.
type OrderStatus string

const (
	OrderStatusExecuted  OrderStatus = "EXECUTED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusFailed    OrderStatus = "FAILED"
)

// IsExecuted reports whether the status counts as a filled order.
// The backend uses EXECUTED and COMPLETED interchangeably.
func (s OrderStatus) IsExecuted() bool {
	return s == OrderStatusExecuted || s == OrderStatusCompleted
}

// OrderRequest is the body submitted to place an order. Price carries the
// quoted market price at submit time; the backend re-quotes on execution.
type OrderRequest struct {
	Ticker    string          `json:"ticker"`
	OrderType OrderSide       `json:"orderType"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Order is an order record as returned by the backend.
type Order struct {
	ID          int64           `json:"id"`
	Ticker      string          `json:"ticker"`
	Type        OrderSide       `json:"type"`
	Status      OrderStatus     `json:"status"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// EffectiveStatus defaults a missing status to EXECUTED, matching the
// backend's behavior for legacy rows.
func (o Order) EffectiveStatus() OrderStatus {
	if o.Status == "" {
		return OrderStatusExecuted
	}
	return o.Status
}
