package dto

import "github.com/Sheryaar-Ansar/sufyanessence-admin/internal/domain"

// UpdateOrderStatusRequest payload.
type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}
