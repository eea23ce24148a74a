package domain

// DashboardStats is the backend's summary projection for the dashboard.
type DashboardStats struct {
	TotalProducts  int     `json:"totalProducts"`
	TotalOrders    int     `json:"totalOrders"`
	TotalRevenue   float64 `json:"totalRevenue"`
	PendingOrders  int     `json:"pendingOrders"`
	PendingReviews int     `json:"pendingReviews"`
	TotalReviews   int     `json:"totalReviews"`
}
