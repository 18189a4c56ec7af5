package views

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"lockedin-cli/internal/api"
	apperrors "lockedin-cli/internal/errors"
	"lockedin-cli/internal/logging"
	"lockedin-cli/internal/models"
)

// StockView loads a stock detail page: the detail-with-history payload
// is required, while the portfolio summary (for the order form's cash
// check) and news load best-effort.
type StockView struct {
	client *api.Client
	logger zerolog.Logger

	State       State
	Err         error
	Ticker      string
	Stock       *models.StockDetail
	News        []models.NewsItem
	CashBalance decimal.Decimal
}

// NewStockView creates the stock detail view model for a ticker.
func NewStockView(client *api.Client, logger zerolog.Logger, ticker string) *StockView {
	return &StockView{
		client: client,
		logger: logger,
		Ticker: strings.ToUpper(strings.TrimSpace(ticker)),
		State:  StateLoading,
	}
}

// Load fetches the detail, summary and news concurrently. Only the
// detail fetch can fail the page.
func (v *StockView) Load(ctx context.Context) error {
	v.State = StateLoading
	v.Err = nil

	var detailErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		v.Stock, detailErr = v.client.Market.StockHistory(ctx, v.Ticker)
	}()

	// Best-effort side fetches; their failures degrade sections only.
	summaryDone := make(chan struct{})
	go func() {
		defer close(summaryDone)
		summary, err := v.client.Portfolio.Summary(ctx)
		if err != nil {
			v.logger.Warn().Err(err).Msg("Cash balance unavailable for order form")
			return
		}
		v.CashBalance = summary.CashBalance
	}()
	newsDone := make(chan struct{})
	go func() {
		defer close(newsDone)
		news, err := v.client.Market.StockNews(ctx, v.Ticker)
		if err != nil {
			v.logger.Warn().Err(err).Str("ticker", v.Ticker).Msg("Stock news unavailable")
			return
		}
		v.News = news
	}()

	<-done
	<-summaryDone
	<-newsDone

	if detailErr != nil {
		v.State = StateError
		v.Err = detailErr
		return detailErr
	}

	v.State = StateReady
	return nil
}

// ChartData returns the historical series narrowed to a display range:
// "1M" keeps the last 30 points, "3M" the last 90, anything else the
// full six months. Pure projection.
func (v *StockView) ChartData(period string) []models.HistoryPoint {
	if v.Stock == nil {
		return nil
	}
	series := v.Stock.HistoricalData

	var keep int
	switch strings.ToUpper(period) {
	case "1M":
		keep = 30
	case "3M":
		keep = 90
	default:
		return series
	}
	if keep >= len(series) {
		return series
	}
	return series[len(series)-keep:]
}

// CanAfford reports whether a BUY of qty shares at the current price
// fits within the cash balance.
func (v *StockView) CanAfford(qty int64) bool {
	if v.Stock == nil {
		return false
	}
	cost := v.Stock.Price.Mul(decimal.NewFromInt(qty))
	return cost.LessThanOrEqual(v.CashBalance)
}

// PlaceOrder submits a BUY or SELL for this stock at its quoted price.
// Quantity below one is clamped to one; an unaffordable BUY is rejected
// before it reaches the backend.
func (v *StockView) PlaceOrder(ctx context.Context, side models.OrderSide, qty int64) (*models.Order, error) {
	if v.Stock == nil {
		return nil, apperrors.NewOrderError(v.Ticker, string(side), "stock not loaded", nil)
	}
	if qty < 1 {
		qty = 1
	}
	if side == models.OrderSideBuy && !v.CanAfford(qty) {
		return nil, apperrors.NewOrderError(v.Ticker, string(side), "insufficient funds", apperrors.ErrInsufficientFunds)
	}

	order, err := v.client.Orders.Place(ctx, models.OrderRequest{
		Ticker:    v.Ticker,
		OrderType: side,
		Quantity:  qty,
		Price:     v.Stock.Price,
	})
	if err != nil {
		return nil, err
	}

	price, _ := v.Stock.Price.Float64()
	logging.LogOrder(v.logger, v.Ticker, string(side), qty, price)
	return order, nil
}

// AddToWatchlist adds this stock to the watchlist.
func (v *StockView) AddToWatchlist(ctx context.Context) error {
	_, err := v.client.Watchlist.Add(ctx, v.Ticker, "")
	return err
}
