package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/domain"
)

// PendingReviews returns reviews awaiting moderation.
func (c *Client) PendingReviews(ctx context.Context) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.doJSON(ctx, http.MethodGet, "/reviews/pending", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// ApproveReview publishes a pending review.
func (c *Client) ApproveReview(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPut, "/reviews/"+url.PathEscape(id)+"/approve", nil, nil)
}

// RejectReview deletes a pending review.
func (c *Client) RejectReview(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/reviews/"+url.PathEscape(id), nil, nil)
}
