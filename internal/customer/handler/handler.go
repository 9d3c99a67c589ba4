// Package handler provides HTTP handlers for customer endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/deopraglabs/prysme/internal/customer/model"
	"github.com/deopraglabs/prysme/internal/customer/service"
	"github.com/deopraglabs/prysme/internal/response"
)

// Handler handles HTTP requests for customer endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new customer handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// FindAll handles GET /customer request.
// @Summary List customers
// @Tags Customers
// @Produce json
// @Success 200 {array} model.Customer
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /customer [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) FindAll(c *gin.Context) {
	customers, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// FindByID handles GET /customer/:id request.
// @Summary Find a customer
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} model.Customer
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /customer/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) FindByID(c *gin.Context) {
	id, ok := response.ParseID(c, "id")
	if !ok {
		return
	}

	customer, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Create handles POST /customer/create request.
// @Summary Create a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body model.SaveCustomerRequest true "Request"
// @Success 201 {object} model.Customer
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 409 {object} response.ErrorResponse "Conflict"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /customer/create [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Create(c *gin.Context) {
	var req model.SaveCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	req.ID = 0

	customer, err := h.service.Save(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// Update handles PUT /customer/save request.
// @Summary Update a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body model.SaveCustomerRequest true "Request"
// @Success 200 {object} model.Customer
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 409 {object} response.ErrorResponse "Conflict"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /customer/save [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Update(c *gin.Context) {
	var req model.SaveCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if req.ID == 0 {
		response.Write(c, http.StatusBadRequest, response.CodeInvalidRequest, "id is required")
		return
	}

	customer, err := h.service.Save(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Delete handles DELETE /customer/:id request.
// @Summary Soft-delete a customer
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /customer/{id} [delete] //nolint:godot // Swagger annotation should not end with period
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
