package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "stockroom/internal/errors"
	"stockroom/internal/model"
	"stockroom/internal/service"
)

// ProductHandler handles inventory endpoints.
type ProductHandler struct {
	svc service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(svc service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// CreateProductRequest represents an add-product request. Price and stock
// are pointers so that an explicit 0 counts as present.
type CreateProductRequest struct {
	PName       string   `json:"pname" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required"`
	Stock       *int     `json:"stock" validate:"required"`
}

// CreateProductResponse is returned after a product is added.
type CreateProductResponse struct {
	Message string `json:"message"`
	PID     uint   `json:"pid"`
}

// UpdateProductRequest is a partial product update; absent fields are kept.
// A null description clears it; null for the other fields is ignored.
type UpdateProductRequest struct {
	PName       *string                `json:"pname"`
	Description model.Nullable[string] `json:"description" swaggertype:"string"`
	Price       *float64               `json:"price"`
	Stock       *int                   `json:"stock"`
}

// CreateProduct godoc
// @Summary Add a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProductRequest true "Product data"
// @Success 201 {object} CreateProductResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.svc.CreateProduct(c.Request().Context(), req.PName, req.Description, *req.Price, *req.Stock)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreateProductResponse{
		Message: "Product added successfully",
		PID:     product.PID,
	})
}

// ListProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Product
// @Failure 401 {object} errors.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.svc.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// GetProduct godoc
// @Summary Get product by pid
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param pid path int true "Product ID"
// @Success 200 {object} model.Product
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{pid} [get]
func (h *ProductHandler) GetProduct(c echo.Context) error {
	pid, err := pathID(c, "pid", apperrors.ErrProductNotFound)
	if err != nil {
		return err
	}

	product, err := h.svc.GetProduct(c.Request().Context(), pid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// UpdateProduct godoc
// @Summary Partially update a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pid path int true "Product ID"
// @Param request body UpdateProductRequest true "Fields to change"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{pid} [put]
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	pid, err := pathID(c, "pid", apperrors.ErrProductNotFound)
	if err != nil {
		return err
	}

	var req UpdateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	patch := model.ProductPatch{
		PName:       req.PName,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}
	if err := h.svc.UpdateProduct(c.Request().Context(), pid, patch); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Product updated successfully"})
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param pid path int true "Product ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{pid} [delete]
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	pid, err := pathID(c, "pid", apperrors.ErrProductNotFound)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteProduct(c.Request().Context(), pid); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}
