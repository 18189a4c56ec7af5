package api

import (
	"context"
	"net/url"

	"lockedin-cli/internal/models"
)

// PortfolioService exposes the /portfolio endpoints.
type PortfolioService struct {
	client *Client
}

// Get returns the portfolio, creating it on the backend if absent.
func (s *PortfolioService) Get(ctx context.Context) (*models.Portfolio, error) {
	var p models.Portfolio
	if err := s.client.get(ctx, "/portfolio", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Summary returns the portfolio aggregates (cash, value, P&L).
func (s *PortfolioService) Summary(ctx context.Context) (*models.PortfolioSummary, error) {
	var sum models.PortfolioSummary
	if err := s.client.get(ctx, "/portfolio/summary", &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

// HoldingsService exposes the /holdings endpoints.
type HoldingsService struct {
	client *Client
}

// All returns every holding in the portfolio.
func (s *HoldingsService) All(ctx context.Context) ([]models.Holding, error) {
	var holdings []models.Holding
	if err := s.client.get(ctx, "/holdings", &holdings); err != nil {
		return nil, err
	}
	return holdings, nil
}

// ByTicker returns a single holding.
func (s *HoldingsService) ByTicker(ctx context.Context, ticker string) (*models.Holding, error) {
	var h models.Holding
	if err := s.client.get(ctx, "/holdings/"+url.PathEscape(ticker), &h); err != nil {
		return nil, err
	}
	return &h, nil
}
