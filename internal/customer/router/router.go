// Package router provides customer module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/deopraglabs/prysme/internal/customer/handler"
	"github.com/deopraglabs/prysme/internal/customer/repository"
	"github.com/deopraglabs/prysme/internal/customer/service"
	"github.com/deopraglabs/prysme/internal/lock"
	"github.com/deopraglabs/prysme/internal/tombstone"
)

// RegisterRoutes registers customer module routes.
func RegisterRoutes(
	rg *gin.RouterGroup,
	db *gorm.DB,
	locker lock.Locker,
	tombstones *tombstone.Generator,
	logger *zap.SugaredLogger,
) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, locker, tombstones, logger)
	h := handler.New(svc, logger)

	customers := rg.Group("/customer")
	customers.GET("", h.FindAll)
	customers.GET("/:id", h.FindByID)
	customers.POST("/create", h.Create)
	customers.PUT("/save", h.Update)
	customers.DELETE("/:id", h.Delete)
}
