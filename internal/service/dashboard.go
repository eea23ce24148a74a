package service

import (
	"context"
	"sync"
	"time"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/backend"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/domain"
)

// StatsClient is the backend surface the dashboard needs.
type StatsClient interface {
	Stats(ctx context.Context) (domain.DashboardStats, error)
}

var _ StatsClient = (*backend.Client)(nil)

// DashboardService serves summary statistics with a short-lived cache so the
// dashboard does not hammer the backend on every render.
type DashboardService struct {
	stats StatsClient
	ttl   time.Duration

	mu        sync.Mutex
	cached    domain.DashboardStats
	fetchedAt time.Time
}

// NewDashboardService builds the service. ttl bounds cache staleness.
func NewDashboardService(stats StatsClient, ttl time.Duration) *DashboardService {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &DashboardService{stats: stats, ttl: ttl}
}

// Stats returns cached statistics, refreshing from the backend when stale.
// A refresh failure falls back to the last good value when one exists.
func (s *DashboardService) Stats(ctx context.Context) (domain.DashboardStats, error) {
	s.mu.Lock()
	if !s.fetchedAt.IsZero() && time.Since(s.fetchedAt) < s.ttl {
		cached := s.cached
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// Refresh fetches fresh statistics and updates the cache.
func (s *DashboardService) Refresh(ctx context.Context) (domain.DashboardStats, error) {
	fresh, err := s.stats.Stats(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if !s.fetchedAt.IsZero() {
			return s.cached, nil
		}
		return domain.DashboardStats{}, err
	}
	s.cached = fresh
	s.fetchedAt = time.Now()
	return fresh, nil
}
