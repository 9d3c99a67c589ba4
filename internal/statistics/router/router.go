// Package router provides statistics module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/deopraglabs/prysme/internal/statistics/handler"
	"github.com/deopraglabs/prysme/internal/statistics/repository"
	"github.com/deopraglabs/prysme/internal/statistics/service"
)

// RegisterRoutes registers statistics module routes.
func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	stats := rg.Group("/statistics")
	stats.GET("/sellers", h.GetSellersStatistics)
	stats.GET("/quotations", h.GetQuotationStatistics)
}
