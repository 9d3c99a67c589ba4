// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/deopraglabs/prysme/internal/response"
	"github.com/deopraglabs/prysme/internal/statistics/service"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetSellersStatistics handles GET /statistics/sellers request.
// @Summary Get quotation statistics per seller
// @Tags Statistics
// @Produce json
// @Success 200 {object} model.SellersStatisticsResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /statistics/sellers [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetSellersStatistics(c *gin.Context) {
	resp, err := h.service.GetSellersStatistics(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetQuotationStatistics handles GET /statistics/quotations request.
// @Summary Get quotation statistics per status
// @Tags Statistics
// @Produce json
// @Success 200 {object} model.QuotationStatisticsResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /statistics/quotations [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetQuotationStatistics(c *gin.Context) {
	resp, err := h.service.GetQuotationStatistics(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
