package api

import (
	"context"
	"net/url"

	"lockedin-cli/internal/models"
)

// PricesService exposes the /prices live-price lookup.
type PricesService struct {
	client *Client
}

// Get returns the live price for a ticker.
func (s *PricesService) Get(ctx context.Context, ticker string) (models.PriceQuote, error) {
	var quote models.PriceQuote
	if err := s.client.get(ctx, "/prices/"+url.PathEscape(ticker), &quote); err != nil {
		return models.PriceQuote{}, err
	}
	return quote, nil
}
