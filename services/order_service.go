package services

import (
	"context"
	"net/http"

	"github.com/nicgen/buy-02/clients"
	"github.com/nicgen/buy-02/models"
)

// OrderService builds requests against the order endpoints.
type OrderService struct {
	api *clients.APIClient
}

func NewOrderService(api *clients.APIClient) *OrderService {
	return &OrderService{api: api}
}

// Create submits a new order. The server assigns id, status, and the payment
// details for the chosen method.
func (s *OrderService) Create(ctx context.Context, order models.Order) (models.Order, error) {
	var created models.Order
	if err := s.api.JSON(ctx, http.MethodPost, "/api/orders", nil, order, &created); err != nil {
		return models.Order{}, err
	}
	return created, nil
}

// MyOrders returns the caller's order history. User scoping is owned by the
// remote API: the request carries only the bearer token.
func (s *OrderService) MyOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.api.JSON(ctx, http.MethodGet, "/api/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// OrdersByUser returns the orders of an explicit user id.
func (s *OrderService) OrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.api.JSON(ctx, http.MethodGet, "/api/orders/user/"+userID, nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// AllOrders returns every order, for seller views.
func (s *OrderService) AllOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.api.JSON(ctx, http.MethodGet, "/api/orders/all", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus moves an order to a new status.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (models.Order, error) {
	payload := map[string]string{"status": status}

	var updated models.Order
	if err := s.api.JSON(ctx, http.MethodPatch, "/api/orders/"+orderID+"/status", nil, payload, &updated); err != nil {
		return models.Order{}, err
	}
	return updated, nil
}

// UserStats returns the buyer dashboard summary for a user.
func (s *OrderService) UserStats(ctx context.Context, userID string) (models.UserStats, error) {
	var stats models.UserStats
	if err := s.api.JSON(ctx, http.MethodGet, "/api/orders/stats/user/"+userID, nil, nil, &stats); err != nil {
		return models.UserStats{}, err
	}
	return stats, nil
}

// SellerStats returns the seller dashboard summary.
func (s *OrderService) SellerStats(ctx context.Context, sellerID string) (models.SellerStats, error) {
	var stats models.SellerStats
	if err := s.api.JSON(ctx, http.MethodGet, "/api/orders/stats/seller/"+sellerID, nil, nil, &stats); err != nil {
		return models.SellerStats{}, err
	}
	return stats, nil
}
