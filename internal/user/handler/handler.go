// Package handler provides HTTP handlers for user endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/deopraglabs/prysme/internal/response"
	"github.com/deopraglabs/prysme/internal/user/model"
	"github.com/deopraglabs/prysme/internal/user/service"
)

// Handler handles HTTP requests for user endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new user handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// FindAll handles GET /user request.
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} model.User
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /user [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) FindAll(c *gin.Context) {
	users, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// FindByID handles GET /user/:id request.
// @Summary Find a user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /user/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) FindByID(c *gin.Context) {
	id, ok := response.ParseID(c, "id")
	if !ok {
		return
	}

	user, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// FindAllByTeamID handles GET /user/team/:id request.
// @Summary List the users sharing a team with a user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} model.User
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /user/team/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) FindAllByTeamID(c *gin.Context) {
	id, ok := response.ParseID(c, "id")
	if !ok {
		return
	}

	users, err := h.service.FindAllByTeamID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// FindAllByManagerID handles GET /user/manager/:id request.
// @Summary List the users of the team managed by a user
// @Tags Users
// @Produce json
// @Param id path int true "Manager ID"
// @Success 200 {array} model.User
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /user/manager/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) FindAllByManagerID(c *gin.Context) {
	id, ok := response.ParseID(c, "id")
	if !ok {
		return
	}

	users, err := h.service.FindAllByManagerID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create handles POST /user/create request.
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.SaveUserRequest true "Request"
// @Success 201 {object} model.User
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 409 {object} response.ErrorResponse "Conflict"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /user/create [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Create(c *gin.Context) {
	var req model.SaveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	req.ID = 0

	user, err := h.service.Save(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Update handles PUT /user/save request.
// @Summary Update a user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.SaveUserRequest true "Request"
// @Success 200 {object} model.User
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 409 {object} response.ErrorResponse "Conflict"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /user/save [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Update(c *gin.Context) {
	var req model.SaveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if req.ID == 0 {
		response.Write(c, http.StatusBadRequest, response.CodeInvalidRequest, "id is required")
		return
	}

	user, err := h.service.Save(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ResetPassword handles PUT /user/:id/password request.
// @Summary Reset the password of a user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body model.ResetPasswordRequest true "Request"
// @Success 200
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /user/{id}/password [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ResetPassword(c *gin.Context) {
	id, ok := response.ParseID(c, "id")
	if !ok {
		return
	}

	var req model.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), id, req.Password); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.Status(http.StatusOK)
}

// Delete handles DELETE /user/:id request.
// @Summary Soft-delete a user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /user/{id} [delete] //nolint:godot // Swagger annotation should not end with period
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
