package domain

import "time"

// ReviewStatus enumerates moderation states for customer reviews.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
)

// Review is a customer-submitted product review awaiting moderation.
type Review struct {
	ID        string       `json:"_id"`
	ProductID string       `json:"product"`
	Author    string       `json:"author"`
	Rating    int          `json:"rating"`
	Comment   string       `json:"comment"`
	Status    ReviewStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}
