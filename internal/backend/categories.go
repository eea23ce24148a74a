package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/domain"
)

// CategoryInput is the payload for creating or updating a category.
type CategoryInput struct {
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// ListCategories returns the category taxonomy.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.doJSON(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory adds a taxonomy node.
func (c *Client) CreateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error) {
	var category domain.Category
	if err := c.doJSON(ctx, http.MethodPost, "/categories", input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames a taxonomy node.
func (c *Client) UpdateCategory(ctx context.Context, id string, input CategoryInput) (*domain.Category, error) {
	var category domain.Category
	if err := c.doJSON(ctx, http.MethodPut, "/categories/"+url.PathEscape(id), input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a taxonomy node.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), nil, nil)
}
