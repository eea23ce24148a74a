package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/api/dto"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/backend"
	apperrors "github.com/Sheryaar-Ansar/sufyanessence-admin/pkg/util"
)

// CategoriesHandler forwards taxonomy management to the backend.
type CategoriesHandler struct {
	categories *backend.Client
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(categories *backend.Client) *CategoriesHandler {
	return &CategoriesHandler{categories: categories}
}

// List handles GET /admin/categories.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	categories, err := h.categories.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": categories})
}

// Create handles POST /admin/categories.
func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	req, err := parseCategory(c)
	if err != nil {
		return err
	}
	category, err := h.categories.CreateCategory(c.UserContext(), req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": category})
}

// Update handles PUT /admin/categories/:id.
func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	req, err := parseCategory(c)
	if err != nil {
		return err
	}
	category, err := h.categories.UpdateCategory(c.UserContext(), c.Params("id"), req.ToInput())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": category})
}

// Delete handles DELETE /admin/categories/:id.
func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	if err := h.categories.DeleteCategory(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.Status(http.StatusNoContent).Send(nil)
}

func parseCategory(c *fiber.Ctx) (dto.CategoryRequest, error) {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.CategoryRequest{}, apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return dto.CategoryRequest{}, apperrors.NewValidationError("name required", nil)
	}
	return req, nil
}
