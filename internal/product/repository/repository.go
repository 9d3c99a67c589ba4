// Package repository provides data access layer for product module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/deopraglabs/prysme/internal/database/database"
	"github.com/deopraglabs/prysme/internal/product/model"
)

// Repository defines the interface for product data access operations.
// Lookups only see products that are not deleted.
type Repository interface {
	FindByID(ctx context.Context, id uint) (*model.Product, error)

	// FindAll returns live products ordered by id, optionally restricted to a category.
	FindAll(ctx context.Context, categoryID *uint) ([]model.Product, error)

	Create(ctx context.Context, product *model.Product) error
	Save(ctx context.Context, product *model.Product) error

	// SoftDeleteByID marks a live product deleted and returns the rows affected.
	SoftDeleteByID(ctx context.Context, id uint) (int64, error)

	FindCategoryByID(ctx context.Context, id uint) (*model.ProductCategory, error)
	FindAllCategories(ctx context.Context) ([]model.ProductCategory, error)
	CreateCategory(ctx context.Context, category *model.ProductCategory) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new product repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) live(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Product{}).Preload("Category").Where("deleted = ?", false)
}

func (r *repository) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	r.logger.Debugw("FindByID called", "product_id", id)

	var product model.Product
	if err := r.live(ctx).Where("id = ?", id).Take(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrProductNotFound
		}
		r.logger.Errorw("FindByID database error", "product_id", id, "error", err)
		return nil, err
	}
	return &product, nil
}

func (r *repository) FindAll(ctx context.Context, categoryID *uint) ([]model.Product, error) {
	query := r.live(ctx)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	products := make([]model.Product, 0)
	if err := query.Order("id").Find(&products).Error; err != nil {
		r.logger.Errorw("FindAll database error", "error", err)
		return nil, err
	}
	return products, nil
}

func (r *repository) Create(ctx context.Context, product *model.Product) error {
	r.logger.Debugw("Create called", "name", product.Name)

	if err := r.db.WithContext(ctx).Omit("Category").Create(product).Error; err != nil {
		r.logger.Errorw("Create database error", "error", err)
		return err
	}

	r.logger.Infow("Product created", "product_id", product.ID)
	return nil
}

// Save overwrites every editable field of a live product.
func (r *repository) Save(ctx context.Context, product *model.Product) error {
	r.logger.Debugw("Save called", "product_id", product.ID)

	result := r.db.WithContext(ctx).
		Model(product).
		Where("deleted = ?", false).
		Select("name", "description", "price", "stock", "category_id", "active").
		Updates(product)
	if result.Error != nil {
		r.logger.Errorw("Save database error", "product_id", product.ID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrProductNotFound
	}
	return nil
}

func (r *repository) SoftDeleteByID(ctx context.Context, id uint) (int64, error) {
	r.logger.Debugw("SoftDeleteByID called", "product_id", id)

	result := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ? AND deleted = ?", id, false).
		Update("deleted", true)
	if result.Error != nil {
		r.logger.Errorw("SoftDeleteByID database error", "product_id", id, "error", result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *repository) FindCategoryByID(ctx context.Context, id uint) (*model.ProductCategory, error) {
	var category model.ProductCategory
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrCategoryNotFound
		}
		r.logger.Errorw("FindCategoryByID database error", "category_id", id, "error", err)
		return nil, err
	}
	return &category, nil
}

func (r *repository) FindAllCategories(ctx context.Context) ([]model.ProductCategory, error) {
	categories := make([]model.ProductCategory, 0)
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		r.logger.Errorw("FindAllCategories database error", "error", err)
		return nil, err
	}
	return categories, nil
}

// CreateCategory inserts a category. A taken name is reported as ErrCategoryConflict.
func (r *repository) CreateCategory(ctx context.Context, category *model.ProductCategory) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return model.ErrCategoryConflict
		}
		r.logger.Errorw("CreateCategory database error", "name", category.Name, "error", err)
		return err
	}

	r.logger.Infow("Category created", "category_id", category.ID)
	return nil
}
