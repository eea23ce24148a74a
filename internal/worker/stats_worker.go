package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/service"
)

// StartStatsWorker keeps the dashboard cache warm by refreshing it on an
// interval until the context is cancelled.
func StartStatsWorker(ctx context.Context, dashboard *service.DashboardService, interval time.Duration, logger *zap.Logger) {
	if dashboard == nil || interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := dashboard.Refresh(ctx); err != nil {
					logger.Warn("dashboard stats refresh failed", zap.Error(err))
				}
			}
		}
	}()
}
