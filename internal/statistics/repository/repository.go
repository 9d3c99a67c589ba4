// Package repository provides data access layer for statistics module.
package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	quotationModel "github.com/deopraglabs/prysme/internal/quotation/model"
	"github.com/deopraglabs/prysme/internal/statistics/model"
	userModel "github.com/deopraglabs/prysme/internal/user/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// GetSellersStatistics returns quotation counts and amounts for every
	// live seller, busiest first.
	GetSellersStatistics(ctx context.Context) ([]model.SellerStatistics, error)

	// GetStatusCounts returns the number of quotations per status. Statuses
	// without quotations are absent.
	GetStatusCounts(ctx context.Context) ([]model.StatusCount, error)

	// GetQuotedAmount returns the sum of every quotation item total.
	GetQuotedAmount(ctx context.Context) (decimal.Decimal, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// GetSellersStatistics returns quotation counts and amounts per seller.
func (r *repository) GetSellersStatistics(ctx context.Context) ([]model.SellerStatistics, error) {
	r.logger.Debugw("GetSellersStatistics called")

	var stats []model.SellerStatistics

	err := r.db.WithContext(ctx).
		Table("users").
		Select(`
			users.id AS seller_id,
			users.first_name,
			users.last_name,
			users.email,
			COUNT(quotations.id) AS quotation_count,
			COALESCE(SUM(CASE WHEN quotations.budget_status = ? THEN 1 ELSE 0 END), 0) AS approved_count,
			COALESCE(SUM(totals.amount), 0) AS quoted_amount,
			COALESCE(SUM(CASE WHEN quotations.budget_status = ? THEN totals.amount ELSE 0 END), 0) AS approved_amount
		`, quotationModel.StatusApproved, quotationModel.StatusApproved).
		Joins("LEFT JOIN quotations ON quotations.seller_id = users.id").
		Joins(`
			LEFT JOIN (
				SELECT quotation_id, SUM(quantity * unit_price) AS amount
				FROM quotation_items
				GROUP BY quotation_id
			) totals ON totals.quotation_id = quotations.id
		`).
		Where("users.deleted = ? AND users.roles LIKE ?", false, `%"`+userModel.RoleSeller+`"%`).
		Group("users.id, users.first_name, users.last_name, users.email").
		Order("quotation_count DESC, users.id ASC").
		Scan(&stats).Error

	if err != nil {
		r.logger.Errorw("GetSellersStatistics database error", "error", err)
		return nil, err
	}

	if stats == nil {
		stats = []model.SellerStatistics{}
	}

	r.logger.Debugw("GetSellersStatistics completed", "count", len(stats))
	return stats, nil
}

// GetStatusCounts returns the number of quotations per status.
func (r *repository) GetStatusCounts(ctx context.Context) ([]model.StatusCount, error) {
	r.logger.Debugw("GetStatusCounts called")

	var counts []model.StatusCount
	err := r.db.WithContext(ctx).
		Table("quotations").
		Select("budget_status AS status, COUNT(*) AS count").
		Group("budget_status").
		Scan(&counts).Error
	if err != nil {
		r.logger.Errorw("GetStatusCounts database error", "error", err)
		return nil, err
	}
	return counts, nil
}

// GetQuotedAmount returns the sum of every quotation item total.
func (r *repository) GetQuotedAmount(ctx context.Context) (decimal.Decimal, error) {
	var amount decimal.Decimal
	err := r.db.WithContext(ctx).
		Table("quotation_items").
		Select("COALESCE(SUM(quantity * unit_price), 0)").
		Row().
		Scan(&amount)
	if err != nil {
		r.logger.Errorw("GetQuotedAmount database error", "error", err)
		return decimal.Zero, err
	}
	return amount, nil
}
