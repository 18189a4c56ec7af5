package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioSummary is a read-only projection of the backend portfolio
// aggregates. It is re-fetched per page, never mutated locally.
type PortfolioSummary struct {
	CashBalance   decimal.Decimal `json:"cashBalance"`
	TotalInvested decimal.Decimal `json:"totalInvested"`
	CurrentValue  decimal.Decimal `json:"currentValue"`
	ProfitLoss    decimal.Decimal `json:"profitLoss"`
	ReturnPercent decimal.Decimal `json:"returnPercent"`
}

// Portfolio is the backend portfolio entity. The backend creates it on
// first access; this tier only reads it.
type Portfolio struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	CashBalance decimal.Decimal `json:"cashBalance"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Holding is a backend-owned holding record. This tier only reads it.
type Holding struct {
	ID          int64           `json:"id"`
	Ticker      string          `json:"ticker"`
	Quantity    decimal.Decimal `json:"quantity"`
	AvgBuyPrice decimal.Decimal `json:"avgBuyPrice"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// EnrichedHolding is a Holding joined with a live price and the derived
// position figures.
type EnrichedHolding struct {
	Holding
	CurrentPrice   decimal.Decimal `json:"currentPrice"`
	CurrentValue   decimal.Decimal `json:"currentValue"`
	InvestedAmount decimal.Decimal `json:"investedAmount"`
	Gain           decimal.Decimal `json:"gain"`
	GainPercent    decimal.Decimal `json:"gainPercent"`
}

// Enrich derives position figures from a live price. A zero invested
// amount forces gainPercent to zero.
func (h Holding) Enrich(currentPrice decimal.Decimal) EnrichedHolding {
	value := currentPrice.Mul(h.Quantity)
	invested := h.AvgBuyPrice.Mul(h.Quantity)
	gain := value.Sub(invested)

	gainPercent := decimal.Zero
	if invested.IsPositive() {
		gainPercent = gain.Div(invested).Mul(decimal.NewFromInt(100))
	}

	return EnrichedHolding{
		Holding:        h,
		CurrentPrice:   currentPrice,
		CurrentValue:   value,
		InvestedAmount: invested,
		Gain:           gain,
		GainPercent:    gainPercent,
	}
}

// EnrichFallback builds the degraded row used when the live price lookup
// fails: the average buy price stands in for the current price and all
// delta fields are zeroed.
func (h Holding) EnrichFallback() EnrichedHolding {
	invested := h.AvgBuyPrice.Mul(h.Quantity)
	return EnrichedHolding{
		Holding:        h,
		CurrentPrice:   h.AvgBuyPrice,
		CurrentValue:   invested,
		InvestedAmount: invested,
		Gain:           decimal.Zero,
		GainPercent:    decimal.Zero,
	}
}

// WatchlistEntry is a backend-owned watchlist record.
type WatchlistEntry struct {
	Ticker    string    `json:"ticker"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// EnrichedWatchlistEntry joins a watchlist entry with its live price.
type EnrichedWatchlistEntry struct {
	WatchlistEntry
	Price         decimal.Decimal `json:"price"`
	ChangePercent decimal.Decimal `json:"changePercent"`
}

// Enrich attaches a live quote to the entry.
func (w WatchlistEntry) Enrich(quote PriceQuote) EnrichedWatchlistEntry {
	return EnrichedWatchlistEntry{
		WatchlistEntry: w,
		Price:          quote.Price,
		ChangePercent:  quote.ChangePercent,
	}
}

// EnrichFallback builds the degraded row used when the price lookup
// fails: price and changePercent are zero, never absent.
func (w WatchlistEntry) EnrichFallback() EnrichedWatchlistEntry {
	return EnrichedWatchlistEntry{WatchlistEntry: w}
}
