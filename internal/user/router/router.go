// Package router provides user module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/deopraglabs/prysme/internal/user/handler"
	"github.com/deopraglabs/prysme/internal/user/repository"
	"github.com/deopraglabs/prysme/internal/user/service"
)

// RegisterRoutes registers user module routes.
func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB, deps service.Dependencies, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, deps, logger)
	h := handler.New(svc, logger)

	users := rg.Group("/user")
	users.GET("", h.FindAll)
	users.GET("/:id", h.FindByID)
	users.GET("/team/:id", h.FindAllByTeamID)
	users.GET("/manager/:id", h.FindAllByManagerID)
	users.POST("/create", h.Create)
	users.PUT("/save", h.Update)
	users.PUT("/:id/password", h.ResetPassword)
	users.DELETE("/:id", h.Delete)
}
