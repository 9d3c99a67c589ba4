// Package repository provides data access layer for quotation module.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/deopraglabs/prysme/internal/quotation/model"
)

// Repository defines the interface for quotation data access operations.
type Repository interface {
	// FindByID returns a quotation with its items ordered by id.
	FindByID(ctx context.Context, id uint) (*model.Quotation, error)

	// List returns quotations ordered by id, optionally only those of a seller.
	List(ctx context.Context, sellerID *uint) ([]model.Quotation, error)

	// Create inserts a quotation together with its items.
	Create(ctx context.Context, quotation *model.Quotation) error

	// CompareAndSetStatus moves a quotation from one status to another only
	// if it is still in from. Returns the rows affected.
	CompareAndSetStatus(ctx context.Context, id uint, from, to model.Status) (int64, error)

	// LockEditable touches a quotation that is not in a terminal status,
	// taking its row lock for the rest of the transaction. Returns the rows
	// affected, zero when the quotation is missing or terminal.
	LockEditable(ctx context.Context, id uint) (int64, error)

	// FindItem returns an item of a quotation.
	FindItem(ctx context.Context, quotationID, itemID uint) (*model.Item, error)

	// CreateItem inserts an item. item.QuotationID must be set.
	CreateItem(ctx context.Context, item *model.Item) error

	// SaveItem writes the product, quantity and unit price of an item that
	// belongs to item.QuotationID.
	SaveItem(ctx context.Context, item *model.Item) error

	// DeleteItem removes an item of a quotation and returns the rows affected.
	DeleteItem(ctx context.Context, quotationID, itemID uint) (int64, error)

	// DeleteItemsExcept removes every item of a quotation whose id is not in keep.
	DeleteItemsExcept(ctx context.Context, quotationID uint, keep []uint) (int64, error)

	// Delete removes a quotation and its items and returns the quotation rows affected.
	Delete(ctx context.Context, id uint) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new quotation repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	})
}

func (r *repository) FindByID(ctx context.Context, id uint) (*model.Quotation, error) {
	r.logger.Debugw("FindByID called", "quotation_id", id)

	var quotation model.Quotation
	if err := r.withItems(ctx).Where("id = ?", id).Take(&quotation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrQuotationNotFound
		}
		r.logger.Errorw("FindByID database error", "quotation_id", id, "error", err)
		return nil, err
	}
	return &quotation, nil
}

func (r *repository) List(ctx context.Context, sellerID *uint) ([]model.Quotation, error) {
	query := r.withItems(ctx)
	if sellerID != nil {
		query = query.Where("seller_id = ?", *sellerID)
	}

	quotations := make([]model.Quotation, 0)
	if err := query.Order("id").Find(&quotations).Error; err != nil {
		r.logger.Errorw("List database error", "error", err)
		return nil, err
	}
	return quotations, nil
}

func (r *repository) Create(ctx context.Context, quotation *model.Quotation) error {
	r.logger.Debugw("Create called", "customer_id", quotation.CustomerID, "seller_id", quotation.SellerID)

	if err := r.db.WithContext(ctx).Create(quotation).Error; err != nil {
		r.logger.Errorw("Create database error", "error", err)
		return err
	}

	r.logger.Infow("Quotation created", "quotation_id", quotation.ID, "items", len(quotation.Items))
	return nil
}

func (r *repository) CompareAndSetStatus(ctx context.Context, id uint, from, to model.Status) (int64, error) {
	r.logger.Debugw("CompareAndSetStatus called", "quotation_id", id, "from", from, "to", to)

	result := r.db.WithContext(ctx).
		Model(&model.Quotation{}).
		Where("id = ? AND budget_status = ?", id, from).
		Update("budget_status", to)
	if result.Error != nil {
		r.logger.Errorw("CompareAndSetStatus database error", "quotation_id", id, "error", result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *repository) LockEditable(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Quotation{}).
		Where("id = ? AND budget_status NOT IN ?", id, model.TerminalStatuses()).
		Update("updated_at", time.Now())
	if result.Error != nil {
		r.logger.Errorw("LockEditable database error", "quotation_id", id, "error", result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *repository) FindItem(ctx context.Context, quotationID, itemID uint) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).
		Where("id = ? AND quotation_id = ?", itemID, quotationID).
		Take(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrItemNotFound
		}
		r.logger.Errorw("FindItem database error", "quotation_id", quotationID, "item_id", itemID, "error", err)
		return nil, err
	}
	return &item, nil
}

func (r *repository) CreateItem(ctx context.Context, item *model.Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		r.logger.Errorw("CreateItem database error", "quotation_id", item.QuotationID, "error", err)
		return err
	}
	return nil
}

func (r *repository) SaveItem(ctx context.Context, item *model.Item) error {
	result := r.db.WithContext(ctx).
		Model(item).
		Where("quotation_id = ?", item.QuotationID).
		Select("product_id", "quantity", "unit_price").
		Updates(item)
	if result.Error != nil {
		r.logger.Errorw("SaveItem database error", "item_id", item.ID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrItemNotFound
	}
	return nil
}

func (r *repository) DeleteItem(ctx context.Context, quotationID, itemID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND quotation_id = ?", itemID, quotationID).
		Delete(&model.Item{})
	if result.Error != nil {
		r.logger.Errorw("DeleteItem database error", "quotation_id", quotationID, "item_id", itemID, "error", result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *repository) DeleteItemsExcept(ctx context.Context, quotationID uint, keep []uint) (int64, error) {
	query := r.db.WithContext(ctx).Where("quotation_id = ?", quotationID)
	if len(keep) > 0 {
		query = query.Where("id NOT IN ?", keep)
	}

	result := query.Delete(&model.Item{})
	if result.Error != nil {
		r.logger.Errorw("DeleteItemsExcept database error", "quotation_id", quotationID, "error", result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete removes the items explicitly so that stores without enforced
// foreign keys do not keep orphans.
func (r *repository) Delete(ctx context.Context, id uint) (int64, error) {
	r.logger.Debugw("Delete called", "quotation_id", id)

	if err := r.db.WithContext(ctx).Where("quotation_id = ?", id).Delete(&model.Item{}).Error; err != nil {
		r.logger.Errorw("Delete items database error", "quotation_id", id, "error", err)
		return 0, err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Quotation{})
	if result.Error != nil {
		r.logger.Errorw("Delete database error", "quotation_id", id, "error", result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
