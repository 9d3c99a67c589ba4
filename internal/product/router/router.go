// Package router provides product module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/deopraglabs/prysme/internal/product/handler"
	"github.com/deopraglabs/prysme/internal/product/repository"
	"github.com/deopraglabs/prysme/internal/product/service"
)

// RegisterRoutes registers product module routes.
func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	products := rg.Group("/product")
	products.GET("", h.FindAll)
	products.GET("/category", h.FindAllCategories)
	products.POST("/category/create", h.CreateCategory)
	products.GET("/:id", h.FindByID)
	products.POST("/create", h.Create)
	products.PUT("/save", h.Update)
	products.DELETE("/:id", h.Delete)
}
