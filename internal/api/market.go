package api

import (
	"context"
	"net/url"

	"lockedin-cli/internal/models"
)

// MarketService exposes the /market endpoints: snapshot lists, single
// stocks, mutual funds and news.
type MarketService struct {
	client *Client
}

// Gainers returns the top gaining stocks. The backend caches this list
// and refreshes it hourly.
func (s *MarketService) Gainers(ctx context.Context) ([]models.MarketQuote, error) {
	var quotes []models.MarketQuote
	if err := s.client.get(ctx, "/market/gainers", &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

// Losers returns the top losing stocks.
func (s *MarketService) Losers(ctx context.Context) ([]models.MarketQuote, error) {
	var quotes []models.MarketQuote
	if err := s.client.get(ctx, "/market/losers", &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

// Indices returns the major market indices.
func (s *MarketService) Indices(ctx context.Context) ([]models.IndexQuote, error) {
	var indices []models.IndexQuote
	if err := s.client.get(ctx, "/market/indices", &indices); err != nil {
		return nil, err
	}
	return indices, nil
}

// Trending returns the trending stocks list.
func (s *MarketService) Trending(ctx context.Context) ([]models.MarketQuote, error) {
	var quotes []models.MarketQuote
	if err := s.client.get(ctx, "/market/trending", &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

// Stock returns the detail snapshot for a single ticker.
func (s *MarketService) Stock(ctx context.Context, ticker string) (*models.StockDetail, error) {
	var detail models.StockDetail
	if err := s.client.get(ctx, "/market/stock/"+url.PathEscape(ticker), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// StockHistory returns the stock detail together with its six-month
// historical series.
func (s *MarketService) StockHistory(ctx context.Context, ticker string) (*models.StockDetail, error) {
	var detail models.StockDetail
	if err := s.client.get(ctx, "/market/stock/"+url.PathEscape(ticker)+"/history", &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// StockNews returns recent news articles for a ticker.
func (s *MarketService) StockNews(ctx context.Context, ticker string) ([]models.NewsItem, error) {
	var news []models.NewsItem
	if err := s.client.get(ctx, "/market/news/"+url.PathEscape(ticker), &news); err != nil {
		return nil, err
	}
	return news, nil
}

// News returns general market news headlines.
func (s *MarketService) News(ctx context.Context) ([]models.NewsItem, error) {
	var news []models.NewsItem
	if err := s.client.get(ctx, "/market/news", &news); err != nil {
		return nil, err
	}
	return news, nil
}

// MutualFunds returns the top mutual funds list.
func (s *MarketService) MutualFunds(ctx context.Context) ([]models.MutualFund, error) {
	var funds []models.MutualFund
	if err := s.client.get(ctx, "/market/mutualfunds", &funds); err != nil {
		return nil, err
	}
	return funds, nil
}

// MutualFund returns the details for a single scheme.
func (s *MarketService) MutualFund(ctx context.Context, schemeCode string) (*models.MutualFund, error) {
	var fund models.MutualFund
	if err := s.client.get(ctx, "/market/mutualfunds/"+url.PathEscape(schemeCode), &fund); err != nil {
		return nil, err
	}
	return &fund, nil
}

// SearchMutualFunds searches schemes on the backend by name.
func (s *MarketService) SearchMutualFunds(ctx context.Context, query string) ([]models.MutualFund, error) {
	var funds []models.MutualFund
	endpoint := "/market/mutualfunds/search?q=" + url.QueryEscape(query)
	if err := s.client.get(ctx, endpoint, &funds); err != nil {
		return nil, err
	}
	return funds, nil
}
