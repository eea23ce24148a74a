package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/domain"
	apperrors "github.com/Sheryaar-Ansar/sufyanessence-admin/pkg/util"
)

type fakeOrderClient struct {
	orders  map[string]*domain.Order
	updated []domain.OrderStatus
}

func (f *fakeOrderClient) ListOrders(_ context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	var out []domain.Order
	for _, order := range f.orders {
		if status == "" || order.Status == status {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (f *fakeOrderClient) GetOrder(_ context.Context, id string) (*domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, apperrors.NewNotFound("order", nil)
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderClient) UpdateOrderStatus(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, apperrors.NewNotFound("order", nil)
	}
	order.Status = status
	f.updated = append(f.updated, status)
	copied := *order
	return &copied, nil
}

func pendingOrder(id string) *domain.Order {
	return &domain.Order{
		ID:            id,
		CustomerName:  "Ayesha Khan",
		CustomerEmail: "ayesha@example.com",
		Items:         []domain.OrderItem{{ProductID: "p-1", Name: "Oud Royale", Quantity: 2, Price: 49.5}},
		Total:         99.0,
		Status:        domain.OrderStatusPending,
		CreatedAt:     time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestTransitionAllowed(t *testing.T) {
	client := &fakeOrderClient{orders: map[string]*domain.Order{"o-1": pendingOrder("o-1")}}
	svc := NewOrderService(client)

	order, err := svc.Transition(context.Background(), "o-1", domain.OrderStatusProcessing)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusProcessing, order.Status)

	order, err = svc.Transition(context.Background(), "o-1", domain.OrderStatusShipping)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusShipping, order.Status)

	order, err = svc.Transition(context.Background(), "o-1", domain.OrderStatusDelivered)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusDelivered, order.Status)
}

func TestTransitionRejected(t *testing.T) {
	cases := []struct {
		name    string
		current domain.OrderStatus
		next    domain.OrderStatus
	}{
		{"pending cannot skip to delivered", domain.OrderStatusPending, domain.OrderStatusDelivered},
		{"shipping cannot cancel", domain.OrderStatusShipping, domain.OrderStatusCancelled},
		{"delivered is terminal", domain.OrderStatusDelivered, domain.OrderStatusProcessing},
		{"cancelled is terminal", domain.OrderStatusCancelled, domain.OrderStatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := pendingOrder("o-1")
			order.Status = tc.current
			client := &fakeOrderClient{orders: map[string]*domain.Order{"o-1": order}}
			svc := NewOrderService(client)

			_, err := svc.Transition(context.Background(), "o-1", tc.next)
			require.Error(t, err)
			require.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
			require.Empty(t, client.updated, "rejected transition must not reach the backend")
		})
	}
}

func TestTransitionUnknownStatus(t *testing.T) {
	svc := NewOrderService(&fakeOrderClient{orders: map[string]*domain.Order{}})

	_, err := svc.Transition(context.Background(), "o-1", "misplaced")
	require.Error(t, err)
	require.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestListValidatesStatusFilter(t *testing.T) {
	svc := NewOrderService(&fakeOrderClient{orders: map[string]*domain.Order{}})

	_, err := svc.List(context.Background(), "unknown")
	require.Error(t, err)
}

func TestExportCSV(t *testing.T) {
	client := &fakeOrderClient{orders: map[string]*domain.Order{"o-1": pendingOrder("o-1")}}
	svc := NewOrderService(client)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(context.Background(), "", &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "order_id,customer_name,customer_email,items,total,status,created_at", lines[0])
	require.Contains(t, lines[1], "o-1")
	require.Contains(t, lines[1], "99.00")
	require.Contains(t, lines[1], "pending")
}
