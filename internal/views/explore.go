package views

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"lockedin-cli/internal/api"
	"lockedin-cli/internal/cache"
	"lockedin-cli/internal/logging"
	"lockedin-cli/internal/models"
)

// exploreFundCount is how many funds the explore sidebar shows; the
// sliced list is what gets cached, matching the page's own key.
const exploreFundCount = 4

// ExploreView is the landing page: market pulse, trending stocks, a
// compact mutual fund list and news. The sections load in parallel and
// fail independently; each carries its own state.
type ExploreView struct {
	client *api.Client
	cache  cache.Cache
	logger zerolog.Logger

	Pulse    *MarketPulseView
	Trending *TrendingView

	FundsState State
	FundsErr   error
	Funds      []models.MutualFund

	NewsState State
	NewsErr   error
	News      []models.NewsItem
}

// NewExploreView creates the explore page view model.
func NewExploreView(client *api.Client, sessionCache cache.Cache, logger zerolog.Logger) *ExploreView {
	return &ExploreView{
		client:     client,
		cache:      sessionCache,
		logger:     logger,
		Pulse:      NewMarketPulseView(client, logger),
		Trending:   NewTrendingView(client, sessionCache, logger),
		FundsState: StateLoading,
		NewsState:  StateLoading,
	}
}

// Load loads all sections concurrently. It always returns nil: a failed
// section surfaces through its own state, not the page.
func (v *ExploreView) Load(ctx context.Context) error {
	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		_ = v.Pulse.Load(ctx)
	}()
	go func() {
		defer wg.Done()
		_ = v.Trending.Load(ctx)
	}()
	go func() {
		defer wg.Done()
		v.loadFunds(ctx)
	}()
	go func() {
		defer wg.Done()
		v.loadNews(ctx)
	}()
	wg.Wait()
	return nil
}

// loadFunds loads the top mutual funds through the explore page's own
// cache key. The list is sliced to the display count before caching.
func (v *ExploreView) loadFunds(ctx context.Context) {
	var cached []models.MutualFund
	if v.cache.Read(cache.KeyExploreFunds, &cached) {
		v.Funds = cached
		v.FundsState = StateReady
		return
	}

	funds, err := v.client.Market.MutualFunds(ctx)
	if err != nil {
		v.FundsState = StateError
		v.FundsErr = err
		return
	}

	if len(funds) > exploreFundCount {
		funds = funds[:exploreFundCount]
	}
	v.Funds = funds
	if err := v.cache.Write(cache.KeyExploreFunds, funds); err != nil {
		logging.LogCacheMiss(v.logger, cache.KeyExploreFunds, "write failed: "+err.Error())
	}
	v.FundsState = StateReady
}

func (v *ExploreView) loadNews(ctx context.Context) {
	news, err := v.client.Market.News(ctx)
	if err != nil {
		v.NewsState = StateError
		v.NewsErr = err
		return
	}
	v.News = news
	v.NewsState = StateReady
}
