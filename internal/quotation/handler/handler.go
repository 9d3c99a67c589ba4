// Package handler provides HTTP handlers for quotation endpoints.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/deopraglabs/prysme/internal/quotation/model"
	"github.com/deopraglabs/prysme/internal/quotation/service"
	"github.com/deopraglabs/prysme/internal/response"
)

// Handler handles HTTP requests for quotation endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new quotation handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /quotation request with an optional seller_id filter.
// @Summary List quotations
// @Tags Quotations
// @Produce json
// @Param seller_id query int false "Seller ID"
// @Success 200 {array} model.QuotationResponse
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /quotation [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) List(c *gin.Context) {
	var sellerID *uint
	if raw := c.Query("seller_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			response.Write(c, http.StatusBadRequest, response.CodeInvalidRequest, "seller_id must be a positive integer")
			return
		}
		v := uint(id)
		sellerID = &v
	}

	quotations, err := h.service.List(c.Request.Context(), sellerID)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	resp := make([]*model.QuotationResponse, 0, len(quotations))
	for i := range quotations {
		resp = append(resp, model.NewQuotationResponse(&quotations[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID handles GET /quotation/:id request.
// @Summary Get a quotation with its items
// @Tags Quotations
// @Produce json
// @Param id path int true "Quotation ID"
// @Success 200 {object} model.QuotationResponse
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /quotation/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := response.ParseID(c, "id")
	if !ok {
		return
	}

	quotation, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, model.NewQuotationResponse(quotation))
}

// Create handles POST /quotation/create request.
// @Summary Create a quotation
// @Tags Quotations
// @Accept json
// @Produce json
// @Param request body model.CreateQuotationRequest true "Request"
// @Success 201 {object} model.QuotationResponse
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /quotation/create [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	quotation, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewQuotationResponse(quotation))
}

// ChangeStatus handles PUT /quotation/:id/status request.
// @Summary Move a quotation forward to a status
// @Tags Quotations
// @Accept json
// @Produce json
// @Param id path int true "Quotation ID"
// @Param request body model.ChangeStatusRequest true "Request"
// @Success 200 {object} model.QuotationResponse
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 409 {object} response.ErrorResponse "Invalid state"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /quotation/{id}/status [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ChangeStatus(c *gin.Context) {
	id, ok := response.ParseID(c, "id")
	if !ok {
		return
	}

	var req model.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	quotation, err := h.service.ChangeStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, model.NewQuotationResponse(quotation))
}

// AddItem handles POST /quotation/:id/items request.
// @Summary Add an item to a quotation
// @Tags Quotations
// @Accept json
// @Produce json
// @Param id path int true "Quotation ID"
// @Param request body model.ItemRequest true "Request"
// @Success 201 {object} model.Item
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 409 {object} response.ErrorResponse "Invalid state"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /quotation/{id}/items [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) AddItem(c *gin.Context) {
	id, ok := response.ParseID(c, "id")
	if !ok {
		return
	}

	var req model.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	item, err := h.service.AddItem(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ReplaceItems handles PUT /quotation/:id/items request.
// @Summary Replace the items of a quotation
// @Tags Quotations
// @Accept json
// @Produce json
// @Param id path int true "Quotation ID"
// @Param request body model.ReplaceItemsRequest true "Request"
// @Success 200 {object} model.QuotationResponse
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 409 {object} response.ErrorResponse "Invalid state"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /quotation/{id}/items [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ReplaceItems(c *gin.Context) {
	id, ok := response.ParseID(c, "id")
	if !ok {
		return
	}

	var req model.ReplaceItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	quotation, err := h.service.ReplaceItems(c.Request.Context(), id, req.Items)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, model.NewQuotationResponse(quotation))
}

// UpdateItem handles PUT /quotation/:id/items/:itemId request.
// @Summary Update an item of a quotation
// @Tags Quotations
// @Accept json
// @Produce json
// @Param id path int true "Quotation ID"
// @Param itemId path int true "Item ID"
// @Param request body model.UpdateItemRequest true "Request"
// @Success 200 {object} model.Item
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 409 {object} response.ErrorResponse "Invalid state"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /quotation/{id}/items/{itemId} [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) UpdateItem(c *gin.Context) {
	id, ok := response.ParseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := response.ParseID(c, "itemId")
	if !ok {
		return
	}

	var req model.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), id, itemID, &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// RemoveItem handles DELETE /quotation/:id/items/:itemId request.
// @Summary Remove an item from a quotation
// @Tags Quotations
// @Produce json
// @Param id path int true "Quotation ID"
// @Param itemId path int true "Item ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 409 {object} response.ErrorResponse "Invalid state"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /quotation/{id}/items/{itemId} [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) RemoveItem(c *gin.Context) {
	id, ok := response.ParseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := response.ParseID(c, "itemId")
	if !ok {
		return
	}

	if err := h.service.RemoveItem(c.Request.Context(), id, itemID); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /quotation/:id request.
// @Summary Delete a quotation and its items
// @Tags Quotations
// @Produce json
// @Param id path int true "Quotation ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /quotation/{id} [delete] //nolint:godot // Swagger annotation should not end with period
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
