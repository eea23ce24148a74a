package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/backend"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/domain"
	apperrors "github.com/Sheryaar-Ansar/sufyanessence-admin/pkg/util"
)

// OrderService tracks orders through fulfillment. The backend persists them;
// this layer enforces which status moves staff may request.
type OrderService struct {
	orders OrderClient
}

// OrderClient is the backend surface the service needs.
type OrderClient interface {
	ListOrders(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

var _ OrderClient = (*backend.Client)(nil)

// NewOrderService builds the service.
func NewOrderService(orders OrderClient) *OrderService {
	return &OrderService{orders: orders}
}

// List returns orders, optionally filtered by status.
func (s *OrderService) List(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.NewValidationError("unknown order status", map[string]any{"status": string(status)})
	}
	return s.orders.ListOrders(ctx, status)
}

// Get returns a single order.
func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetOrder(ctx, id)
}

// Transition moves an order to the requested fulfillment state after
// checking the move is allowed from its current state.
func (s *OrderService) Transition(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error) {
	if !next.Valid() {
		return nil, apperrors.NewValidationError("unknown order status", map[string]any{"status": string(next)})
	}

	order, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isValidTransition(order.Status, next) {
		return nil, apperrors.NewConflict(
			fmt.Sprintf("cannot move order from %s to %s", order.Status, next),
			map[string]any{"current": string(order.Status), "requested": string(next)},
		)
	}
	return s.orders.UpdateOrderStatus(ctx, id, next)
}

// ExportCSV writes the order table as CSV, one row per order.
func (s *OrderService) ExportCSV(ctx context.Context, status domain.OrderStatus, w io.Writer) error {
	orders, err := s.List(ctx, status)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	header := []string{"order_id", "customer_name", "customer_email", "items", "total", "status", "created_at"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, order := range orders {
		row := []string{
			order.ID,
			order.CustomerName,
			order.CustomerEmail,
			strconv.Itoa(len(order.Items)),
			strconv.FormatFloat(order.Total, 'f', 2, 64),
			string(order.Status),
			order.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Join(errors.New("flush csv"), err)
	}
	return nil
}

var allowedTransitions = map[domain.OrderStatus][]domain.OrderStatus{
	domain.OrderStatusPending:    {domain.OrderStatusProcessing, domain.OrderStatusCancelled},
	domain.OrderStatusProcessing: {domain.OrderStatusShipping, domain.OrderStatusCancelled},
	domain.OrderStatusShipping:   {domain.OrderStatusDelivered},
	domain.OrderStatusDelivered:  {},
	domain.OrderStatusCancelled:  {},
}

func isValidTransition(current, next domain.OrderStatus) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}
