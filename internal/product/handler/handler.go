// Package handler provides HTTP handlers for product endpoints.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/deopraglabs/prysme/internal/product/model"
	"github.com/deopraglabs/prysme/internal/product/service"
	"github.com/deopraglabs/prysme/internal/response"
)

// Handler handles HTTP requests for product endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new product handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// FindAll handles GET /product request with an optional category_id filter.
// @Summary List products
// @Tags Products
// @Produce json
// @Param category_id query int false "Category ID"
// @Success 200 {array} model.Product
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /product [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) FindAll(c *gin.Context) {
	var categoryID *uint
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.Write(c, http.StatusBadRequest, response.CodeInvalidRequest, "category_id must be a positive integer")
			return
		}
		v := uint(id)
		categoryID = &v
	}

	products, err := h.service.FindAll(c.Request.Context(), categoryID)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// FindByID handles GET /product/:id request.
// @Summary Find a product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.Product
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /product/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) FindByID(c *gin.Context) {
	id, ok := response.ParseID(c, "id")
	if !ok {
		return
	}

	product, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Create handles POST /product/create request.
// @Summary Create a product
// @Tags Products
// @Accept json
// @Produce json
// @Param request body model.SaveProductRequest true "Request"
// @Success 201 {object} model.Product
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /product/create [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Create(c *gin.Context) {
	var req model.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	req.ID = 0

	product, err := h.service.Save(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// Update handles PUT /product/save request.
// @Summary Update a product
// @Tags Products
// @Accept json
// @Produce json
// @Param request body model.SaveProductRequest true "Request"
// @Success 200 {object} model.Product
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /product/save [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Update(c *gin.Context) {
	var req model.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if req.ID == 0 {
		response.Write(c, http.StatusBadRequest, response.CodeInvalidRequest, "id is required")
		return
	}

	product, err := h.service.Save(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /product/:id request.
// @Summary Soft-delete a product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /product/{id} [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Delete(c *gin.Context) {
	id, ok := response.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// FindAllCategories handles GET /product/category request.
// @Summary List product categories
// @Tags Products
// @Produce json
// @Success 200 {array} model.ProductCategory
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /product/category [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) FindAllCategories(c *gin.Context) {
	categories, err := h.service.FindAllCategories(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory handles POST /product/category/create request.
// @Summary Create a product category
// @Tags Products
// @Accept json
// @Produce json
// @Param request body model.CreateCategoryRequest true "Request"
// @Success 201 {object} model.ProductCategory
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Failure 409 {object} response.ErrorResponse "Conflict"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /product/category/create [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreateCategory(c *gin.Context) {
	var req model.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}
