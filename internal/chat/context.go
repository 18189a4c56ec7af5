package chat

import (
	"context"

	"lockedin-cli/internal/api"
	"lockedin-cli/internal/models"
)

// backendContext adapts the backend client to the narrow ContextAPI
// surface the assembler needs.
type backendContext struct {
	client *api.Client
}

// NewBackendContext wraps a backend client as a ContextAPI.
func NewBackendContext(client *api.Client) ContextAPI {
	return &backendContext{client: client}
}

func (b *backendContext) PortfolioSummary(ctx context.Context) (*models.PortfolioSummary, error) {
	return b.client.Portfolio.Summary(ctx)
}

func (b *backendContext) Gainers(ctx context.Context) ([]models.MarketQuote, error) {
	return b.client.Market.Gainers(ctx)
}

func (b *backendContext) Trending(ctx context.Context) ([]models.MarketQuote, error) {
	return b.client.Market.Trending(ctx)
}
