package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/api/dto"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/backend"
	apperrors "github.com/Sheryaar-Ansar/sufyanessence-admin/pkg/util"
)

// ProductsHandler forwards catalog management to the backend.
type ProductsHandler struct {
	products *backend.Client
}

// NewProductsHandler constructs handler.
func NewProductsHandler(products *backend.Client) *ProductsHandler {
	return &ProductsHandler{products: products}
}

// List handles GET /admin/products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	products, err := h.products.ListProducts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": products})
}

// Get handles GET /admin/products/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	product, err := h.products.GetProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": product})
}

// Create handles POST /admin/products.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	req, err := parseProduct(c)
	if err != nil {
		return err
	}
	product, err := h.products.CreateProduct(c.UserContext(), req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": product})
}

// Update handles PUT /admin/products/:id.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	req, err := parseProduct(c)
	if err != nil {
		return err
	}
	product, err := h.products.UpdateProduct(c.UserContext(), c.Params("id"), req.ToInput())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": product})
}

// Delete handles DELETE /admin/products/:id.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	if err := h.products.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.Status(http.StatusNoContent).Send(nil)
}

// UploadImages handles POST /admin/upload/images (multipart passthrough).
func (h *ProductsHandler) UploadImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return apperrors.NewValidationError("multipart form required", nil)
	}
	headers := form.File["images"]
	if len(headers) == 0 {
		return apperrors.NewValidationError("at least one image required", nil)
	}

	uploads := make([]backend.Upload, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return apperrors.NewInternalError(err)
		}
		defer file.Close() //nolint:errcheck
		uploads = append(uploads, backend.Upload{FileName: header.Filename, Content: file})
	}

	urls, err := h.products.UploadImages(c.UserContext(), uploads)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"urls": urls}})
}

// UploadHover handles POST /admin/upload/hover.
func (h *ProductsHandler) UploadHover(c *fiber.Ctx) error {
	header, err := c.FormFile("hover")
	if err != nil {
		return apperrors.NewValidationError("hover image required", nil)
	}
	file, err := header.Open()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	defer file.Close() //nolint:errcheck

	url, err := h.products.UploadHover(c.UserContext(), backend.Upload{FileName: header.Filename, Content: file})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"url": url}})
}

func parseProduct(c *fiber.Ctx) (dto.ProductRequest, error) {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.ProductRequest{}, apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return dto.ProductRequest{}, apperrors.NewValidationError("name required", nil)
	}
	if req.Price < 0 {
		return dto.ProductRequest{}, apperrors.NewValidationError("price cannot be negative", nil)
	}
	return req, nil
}
