package api

import (
	"context"
	"net/url"

	"lockedin-cli/internal/models"
)

// WatchlistService exposes the /watchlist endpoints.
type WatchlistService struct {
	client *Client
}

// addRequest is the POST /watchlist body.
type addRequest struct {
	Ticker string `json:"ticker"`
	Notes  string `json:"notes"`
}

// All returns the full watchlist.
func (s *WatchlistService) All(ctx context.Context) ([]models.WatchlistEntry, error) {
	var entries []models.WatchlistEntry
	if err := s.client.get(ctx, "/watchlist", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Add adds a ticker with optional notes.
func (s *WatchlistService) Add(ctx context.Context, ticker, notes string) (*models.WatchlistEntry, error) {
	var entry models.WatchlistEntry
	if err := s.client.post(ctx, "/watchlist", addRequest{Ticker: ticker, Notes: notes}, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Remove deletes a ticker from the watchlist.
func (s *WatchlistService) Remove(ctx context.Context, ticker string) error {
	return s.client.delete(ctx, "/watchlist/"+url.PathEscape(ticker))
}
