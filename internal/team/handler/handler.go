// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/deopraglabs/prysme/internal/response"
	"github.com/deopraglabs/prysme/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /team request.
// @Summary List teams with members
// @Tags Teams
// @Produce json
// @Success 200 {array} teamModel.TeamResponse
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /team [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) List(c *gin.Context) {
	teams, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /team/:id request.
// @Summary Get a team with members
// @Tags Teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} teamModel.TeamResponse
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /team/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetTeam(c *gin.Context) {
	id, ok := response.ParseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetTeam(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
