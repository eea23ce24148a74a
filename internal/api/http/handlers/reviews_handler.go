package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/backend"
)

// ReviewsHandler exposes review moderation.
type ReviewsHandler struct {
	reviews *backend.Client
}

// NewReviewsHandler constructs handler.
func NewReviewsHandler(reviews *backend.Client) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviews}
}

// Pending handles GET /admin/reviews/pending.
func (h *ReviewsHandler) Pending(c *fiber.Ctx) error {
	reviews, err := h.reviews.PendingReviews(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": reviews})
}

// Approve handles PUT /admin/reviews/:id/approve.
func (h *ReviewsHandler) Approve(c *fiber.Ctx) error {
	if err := h.reviews.ApproveReview(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"approved": true}})
}

// Reject handles DELETE /admin/reviews/:id.
func (h *ReviewsHandler) Reject(c *fiber.Ctx) error {
	if err := h.reviews.RejectReview(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.Status(http.StatusNoContent).Send(nil)
}
