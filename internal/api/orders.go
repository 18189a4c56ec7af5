package api

import (
	"context"

	"lockedin-cli/internal/models"
)

// OrdersService exposes the /orders endpoints.
type OrdersService struct {
	client *Client
}

// All returns every order, newest first.
func (s *OrdersService) All(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.client.get(ctx, "/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Place submits a BUY or SELL order. The backend re-quotes the live price
// on execution and is authoritative for the resulting status.
func (s *OrdersService) Place(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	var order models.Order
	if err := s.client.post(ctx, "/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
