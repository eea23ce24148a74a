package backend

import (
	"context"
	"net/http"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/domain"
)

// Stats returns the backend's dashboard summary.
func (c *Client) Stats(ctx context.Context) (domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := c.doJSON(ctx, http.MethodGet, "/dashboard/stats", nil, &stats); err != nil {
		return domain.DashboardStats{}, err
	}
	return stats, nil
}
