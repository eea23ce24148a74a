package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/domain"
)

// ListOrders returns orders, optionally filtered by fulfillment status.
// The backend has served both a bare array and an {orders: [...]} envelope;
// both shapes are accepted.
func (c *Client) ListOrders(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	path := "/orders"
	if status != "" {
		path += "?status=" + url.QueryEscape(string(status))
	}

	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}

	var orders []domain.Order
	if err := json.Unmarshal(raw, &orders); err == nil {
		return orders, nil
	}

	var envelope struct {
		Orders []domain.Order `json:"orders"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	return envelope.Orders, nil
}

// GetOrder fetches a single order.
func (c *Client) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := c.doJSON(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus moves an order to a new fulfillment state.
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	payload := map[string]domain.OrderStatus{"status": status}

	var order domain.Order
	if err := c.doJSON(ctx, http.MethodPut, "/orders/"+url.PathEscape(id)+"/status", payload, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
