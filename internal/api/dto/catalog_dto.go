package dto

import "github.com/Sheryaar-Ansar/sufyanessence-admin/internal/backend"

// ProductRequest payload for create/update.
type ProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	CategoryID  string   `json:"category"`
	Images      []string `json:"images"`
	HoverImage  string   `json:"hover_image"`
}

// ToInput maps the request onto the backend payload.
func (r ProductRequest) ToInput() backend.ProductInput {
	return backend.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		CategoryID:  r.CategoryID,
		Images:      r.Images,
		HoverImage:  r.HoverImage,
	}
}

// CategoryRequest payload for create/update.
type CategoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ToInput maps the request onto the backend payload.
func (r CategoryRequest) ToInput() backend.CategoryInput {
	return backend.CategoryInput{Name: r.Name, Slug: r.Slug}
}
