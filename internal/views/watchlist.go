package views

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"lockedin-cli/internal/api"
	"lockedin-cli/internal/enrich"
	"lockedin-cli/internal/models"
)

// WatchlistView loads the watchlist and enriches each entry with its
// live price. The base fetch is required; enrichment failures only
// degrade individual rows.
type WatchlistView struct {
	client *api.Client
	prices enrich.PriceLookup
	logger zerolog.Logger

	State State
	Err   error
	Items []models.EnrichedWatchlistEntry
}

// NewWatchlistView creates the watchlist page view model.
func NewWatchlistView(client *api.Client, logger zerolog.Logger) *WatchlistView {
	return &WatchlistView{
		client: client,
		prices: client.Prices,
		logger: logger,
		State:  StateLoading,
	}
}

// Load fetches the watchlist and runs price enrichment.
func (v *WatchlistView) Load(ctx context.Context) error {
	v.State = StateLoading
	v.Err = nil

	entries, err := v.client.Watchlist.All(ctx)
	if err != nil {
		v.State = StateError
		v.Err = err
		return err
	}

	v.Items = enrich.Watchlist(ctx, v.prices, v.logger, entries)
	v.State = StateReady
	return nil
}

// Filter returns the loaded entries whose ticker or notes contain the
// query, case-insensitively. Pure projection: no network call, same
// input always yields the same output.
func (v *WatchlistView) Filter(query string) []models.EnrichedWatchlistEntry {
	query = strings.TrimSpace(query)
	if query == "" {
		return v.Items
	}
	needle := strings.ToLower(query)

	var matched []models.EnrichedWatchlistEntry
	for _, item := range v.Items {
		if strings.Contains(strings.ToLower(item.Ticker), needle) ||
			strings.Contains(strings.ToLower(item.Notes), needle) {
			matched = append(matched, item)
		}
	}
	return matched
}

// Add adds a ticker to the watchlist. An empty ticker is a no-op; the
// ticker is uppercased before submission.
func (v *WatchlistView) Add(ctx context.Context, ticker, notes string) error {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil
	}
	_, err := v.client.Watchlist.Add(ctx, ticker, notes)
	return err
}

// Remove deletes a ticker from the watchlist.
func (v *WatchlistView) Remove(ctx context.Context, ticker string) error {
	return v.client.Watchlist.Remove(ctx, strings.ToUpper(strings.TrimSpace(ticker)))
}
