// Package service provides business logic layer for statistics module.
package service

import (
	"context"

	"go.uber.org/zap"

	quotationModel "github.com/deopraglabs/prysme/internal/quotation/model"
	"github.com/deopraglabs/prysme/internal/statistics/model"
	"github.com/deopraglabs/prysme/internal/statistics/repository"
)

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetSellersStatistics returns quotation statistics per seller.
	GetSellersStatistics(ctx context.Context) (*model.SellersStatisticsResponse, error)

	// GetQuotationStatistics returns quotation counts per status and the
	// amount quoted overall.
	GetQuotationStatistics(ctx context.Context) (*model.QuotationStatisticsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetSellersStatistics returns quotation statistics per seller.
func (s *service) GetSellersStatistics(ctx context.Context) (*model.SellersStatisticsResponse, error) {
	s.logger.Debugw("GetSellersStatistics called")

	sellers, err := s.repo.GetSellersStatistics(ctx)
	if err != nil {
		s.logger.Errorw("GetSellersStatistics failed", "error", err)
		return nil, err
	}

	if sellers == nil {
		sellers = []model.SellerStatistics{}
	}

	s.logger.Infow("GetSellersStatistics completed", "count", len(sellers))
	return &model.SellersStatisticsResponse{
		Sellers: sellers,
		Total:   len(sellers),
	}, nil
}

// GetQuotationStatistics reports every known status, zero when no
// quotation is in it.
func (s *service) GetQuotationStatistics(ctx context.Context) (*model.QuotationStatisticsResponse, error) {
	s.logger.Debugw("GetQuotationStatistics called")

	counts, err := s.repo.GetStatusCounts(ctx)
	if err != nil {
		s.logger.Errorw("GetQuotationStatistics failed", "error", err)
		return nil, err
	}

	amount, err := s.repo.GetQuotedAmount(ctx)
	if err != nil {
		s.logger.Errorw("GetQuotationStatistics failed", "error", err)
		return nil, err
	}

	stats := model.QuotationStatistics{
		ByStatus:     make(map[string]int64, len(quotationModel.Statuses)),
		QuotedAmount: amount,
	}
	for _, status := range quotationModel.Statuses {
		stats.ByStatus[string(status)] = 0
	}
	for _, c := range counts {
		stats.ByStatus[c.Status] += c.Count
		stats.TotalQuotations += c.Count
	}

	s.logger.Infow("GetQuotationStatistics completed", "total_quotations", stats.TotalQuotations)
	return &model.QuotationStatisticsResponse{Statistics: stats}, nil
}
