// Package service provides business logic layer for product module.
package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/deopraglabs/prysme/internal/apperr"
	"github.com/deopraglabs/prysme/internal/product/model"
	"github.com/deopraglabs/prysme/internal/product/repository"
)

// Violation messages, reported in this order.
const (
	MsgNameRequired     = "Name is required"
	MsgPriceRequired    = "Price is required"
	MsgPriceNegative    = "Price must not be negative"
	MsgStockNegative    = "Stock must not be negative"
	MsgCategoryNotFound = "Category does not exist"
)

// Service defines the interface for product business logic operations.
type Service interface {
	FindAll(ctx context.Context, categoryID *uint) ([]model.Product, error)
	FindByID(ctx context.Context, id uint) (*model.Product, error)

	// Save creates a product when req.ID is zero and updates it otherwise.
	Save(ctx context.Context, req *model.SaveProductRequest) (*model.Product, error)

	// Delete soft-deletes a product.
	Delete(ctx context.Context, id uint) error

	FindAllCategories(ctx context.Context) ([]model.ProductCategory, error)
	CreateCategory(ctx context.Context, req *model.CreateCategoryRequest) (*model.ProductCategory, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new product service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, db: db, logger: logger}
}

func (s *service) FindAll(ctx context.Context, categoryID *uint) ([]model.Product, error) {
	return s.repo.FindAll(ctx, categoryID)
}

func (s *service) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Save validates and writes a product. On update a missing active flag
// keeps the stored value.
func (s *service) Save(ctx context.Context, req *model.SaveProductRequest) (*model.Product, error) {
	candidate := req.ToProduct()
	s.logger.Debugw("Save called", "product_id", candidate.ID)

	var saved *model.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		violations, err := validate(ctx, req, txRepo)
		if err != nil {
			return err
		}
		if len(violations) > 0 {
			return apperr.NewValidationError(violations)
		}

		if candidate.ID == 0 {
			err = txRepo.Create(ctx, candidate)
		} else {
			if req.Active == nil {
				existing, err := txRepo.FindByID(ctx, candidate.ID)
				if err != nil {
					return err
				}
				candidate.Active = existing.Active
			}
			err = txRepo.Save(ctx, candidate)
		}
		if err != nil {
			return err
		}

		saved, err = txRepo.FindByID(ctx, candidate.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("Save completed", "product_id", saved.ID)
	return saved, nil
}

func validate(ctx context.Context, req *model.SaveProductRequest, repo repository.Repository) ([]string, error) {
	violations := make([]string, 0)

	if strings.TrimSpace(req.Name) == "" {
		violations = append(violations, MsgNameRequired)
	}
	switch {
	case req.Price == nil:
		violations = append(violations, MsgPriceRequired)
	case req.Price.IsNegative():
		violations = append(violations, MsgPriceNegative)
	}
	if req.Stock != nil && req.Stock.IsNegative() {
		violations = append(violations, MsgStockNegative)
	}
	if req.CategoryID != nil {
		if _, err := repo.FindCategoryByID(ctx, *req.CategoryID); err != nil {
			if !errors.Is(err, model.ErrCategoryNotFound) {
				return nil, err
			}
			violations = append(violations, MsgCategoryNotFound)
		}
	}

	return violations, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	s.logger.Debugw("Delete called", "product_id", id)

	rows, err := s.repo.SoftDeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return model.ErrProductNotFound
	}

	s.logger.Infow("Product deleted", "product_id", id)
	return nil
}

func (s *service) FindAllCategories(ctx context.Context) ([]model.ProductCategory, error) {
	return s.repo.FindAllCategories(ctx)
}

func (s *service) CreateCategory(ctx context.Context, req *model.CreateCategoryRequest) (*model.ProductCategory, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.NewValidationError([]string{MsgNameRequired})
	}

	category := &model.ProductCategory{Name: name}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
