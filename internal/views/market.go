package views

import (
	"context"

	"github.com/rs/zerolog"

	"lockedin-cli/internal/api"
	"lockedin-cli/internal/cache"
	"lockedin-cli/internal/logging"
	"lockedin-cli/internal/models"
)

// MarketPulseView loads indices, gainers and losers. All three feeds are
// required to render the pulse widget.
type MarketPulseView struct {
	client *api.Client
	logger zerolog.Logger

	State   State
	Err     error
	Indices []models.IndexQuote
	Gainers []models.MarketQuote
	Losers  []models.MarketQuote
}

// NewMarketPulseView creates the market pulse view model.
func NewMarketPulseView(client *api.Client, logger zerolog.Logger) *MarketPulseView {
	return &MarketPulseView{
		client: client,
		logger: logger,
		State:  StateLoading,
	}
}

// Load fetches indices, gainers and losers concurrently.
func (v *MarketPulseView) Load(ctx context.Context) error {
	v.State = StateLoading
	v.Err = nil

	err := allRequired(
		func() (err error) {
			v.Indices, err = v.client.Market.Indices(ctx)
			return err
		},
		func() (err error) {
			v.Gainers, err = v.client.Market.Gainers(ctx)
			return err
		},
		func() (err error) {
			v.Losers, err = v.client.Market.Losers(ctx)
			return err
		},
	)
	if err != nil {
		v.State = StateError
		v.Err = err
		return err
	}

	v.State = StateReady
	return nil
}

// TopGainers returns the first n gainers.
func (v *MarketPulseView) TopGainers(n int) []models.MarketQuote {
	if n >= len(v.Gainers) {
		return v.Gainers
	}
	return v.Gainers[:n]
}

// TopLosers returns the first n losers.
func (v *MarketPulseView) TopLosers(n int) []models.MarketQuote {
	if n >= len(v.Losers) {
		return v.Losers
	}
	return v.Losers[:n]
}

// TrendingView loads the trending stocks list through the session cache.
type TrendingView struct {
	client *api.Client
	cache  cache.Cache
	logger zerolog.Logger

	State  State
	Err    error
	Stocks []models.MarketQuote
}

// NewTrendingView creates the trending stocks view model.
func NewTrendingView(client *api.Client, sessionCache cache.Cache, logger zerolog.Logger) *TrendingView {
	return &TrendingView{
		client: client,
		cache:  sessionCache,
		logger: logger,
		State:  StateLoading,
	}
}

// Load serves trending stocks from the cache when fresh, otherwise
// fetches and re-populates the cache.
func (v *TrendingView) Load(ctx context.Context) error {
	v.State = StateLoading
	v.Err = nil

	var cached []models.MarketQuote
	if v.cache.Read(cache.KeyTrendingStocks, &cached) {
		v.Stocks = cached
		v.State = StateReady
		return nil
	}

	stocks, err := v.client.Market.Trending(ctx)
	if err != nil {
		v.State = StateError
		v.Err = err
		return err
	}

	v.Stocks = stocks
	if err := v.cache.Write(cache.KeyTrendingStocks, stocks); err != nil {
		logging.LogCacheMiss(v.logger, cache.KeyTrendingStocks, "write failed: "+err.Error())
	}
	v.State = StateReady
	return nil
}
