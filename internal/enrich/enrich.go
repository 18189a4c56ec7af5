package enrich

import (
	"context"

	"github.com/rs/zerolog"

	"lockedin-cli/internal/models"
)

// PriceLookup is the live-price capability used for enrichment.
// *api.PricesService satisfies it; tests substitute fakes.
type PriceLookup interface {
	Get(ctx context.Context, ticker string) (models.PriceQuote, error)
}

// Holdings joins each holding against a live price lookup, one parallel
// lookup per record. A failed lookup degrades that row to its average
// buy price with zeroed deltas; it never fails the batch. The result
// keeps the input order and length.
func Holdings(ctx context.Context, prices PriceLookup, logger zerolog.Logger, holdings []models.Holding) []models.EnrichedHolding {
	outcomes := SettleAll(ctx, holdings, func(ctx context.Context, h models.Holding) (models.PriceQuote, error) {
		return prices.Get(ctx, h.Ticker)
	})

	enriched := make([]models.EnrichedHolding, len(holdings))
	for i, h := range holdings {
		if out := outcomes[i]; out.Ok() {
			enriched[i] = h.Enrich(out.Value.Price)
		} else {
			logger.Warn().Err(out.Err).Str("ticker", h.Ticker).Msg("Price lookup failed, using avg buy price")
			enriched[i] = h.EnrichFallback()
		}
	}
	return enriched
}

// Watchlist joins each entry against a live price lookup. A failed
// lookup degrades that row to zero price and changePercent.
func Watchlist(ctx context.Context, prices PriceLookup, logger zerolog.Logger, entries []models.WatchlistEntry) []models.EnrichedWatchlistEntry {
	outcomes := SettleAll(ctx, entries, func(ctx context.Context, e models.WatchlistEntry) (models.PriceQuote, error) {
		return prices.Get(ctx, e.Ticker)
	})

	enriched := make([]models.EnrichedWatchlistEntry, len(entries))
	for i, e := range entries {
		if out := outcomes[i]; out.Ok() {
			enriched[i] = e.Enrich(out.Value)
		} else {
			logger.Warn().Err(out.Err).Str("ticker", e.Ticker).Msg("Price lookup failed, using zero price")
			enriched[i] = e.EnrichFallback()
		}
	}
	return enriched
}
