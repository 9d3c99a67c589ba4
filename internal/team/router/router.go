// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/deopraglabs/prysme/internal/team/handler"
	"github.com/deopraglabs/prysme/internal/team/repository"
	"github.com/deopraglabs/prysme/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	teams := rg.Group("/team")
	teams.GET("", h.List)
	teams.GET("/:id", h.GetTeam)
}
