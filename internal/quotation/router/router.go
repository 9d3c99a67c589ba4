// Package router provides quotation module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/deopraglabs/prysme/internal/quotation/handler"
	"github.com/deopraglabs/prysme/internal/quotation/repository"
	"github.com/deopraglabs/prysme/internal/quotation/service"
)

// RegisterRoutes registers quotation module routes.
func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	quotations := rg.Group("/quotation")
	quotations.GET("", h.List)
	quotations.POST("/create", h.Create)
	quotations.GET("/:id", h.GetByID)
	quotations.PUT("/:id/status", h.ChangeStatus)
	quotations.POST("/:id/items", h.AddItem)
	quotations.PUT("/:id/items", h.ReplaceItems)
	quotations.PUT("/:id/items/:itemId", h.UpdateItem)
	quotations.DELETE("/:id/items/:itemId", h.RemoveItem)
	quotations.DELETE("/:id", h.Delete)
}
