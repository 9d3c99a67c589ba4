// Package service provides business logic layer for quotation module.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/deopraglabs/prysme/internal/apperr"
	customerRepository "github.com/deopraglabs/prysme/internal/customer/repository"
	productRepository "github.com/deopraglabs/prysme/internal/product/repository"
	"github.com/deopraglabs/prysme/internal/quotation/model"
	"github.com/deopraglabs/prysme/internal/quotation/repository"
	userModel "github.com/deopraglabs/prysme/internal/user/model"
	userRepository "github.com/deopraglabs/prysme/internal/user/repository"
	"github.com/deopraglabs/prysme/pkg/retry"
)

// Violation messages.
const (
	MsgQuantityNotPositive = "Quantity must be greater than zero"
	MsgUnitPriceNegative   = "Unit price must not be negative"
)

var errStatusChanged = errors.New("quotation status changed concurrently")

// Service defines the interface for quotation business logic operations.
type Service interface {
	// Create stores an OPEN quotation for an existing customer and seller.
	Create(ctx context.Context, req *model.CreateQuotationRequest) (*model.Quotation, error)

	// GetByID returns a quotation with its items.
	GetByID(ctx context.Context, id uint) (*model.Quotation, error)

	// List returns every quotation, or those of a seller when sellerID is set.
	List(ctx context.Context, sellerID *uint) ([]model.Quotation, error)

	// ChangeStatus moves a quotation forward to target. Moving to the
	// current status is a no-op.
	ChangeStatus(ctx context.Context, id uint, target string) (*model.Quotation, error)

	// AddItem appends an item to a quotation that is not closed.
	AddItem(ctx context.Context, quotationID uint, req *model.ItemRequest) (*model.Item, error)

	// UpdateItem changes the quantity or unit price of an item.
	UpdateItem(ctx context.Context, quotationID, itemID uint, req *model.UpdateItemRequest) (*model.Item, error)

	// RemoveItem deletes an item of a quotation that is not closed.
	RemoveItem(ctx context.Context, quotationID, itemID uint) error

	// ReplaceItems makes items the complete item list of the quotation:
	// listed ids are updated, entries without id are added and every other
	// existing item is removed.
	ReplaceItems(ctx context.Context, quotationID uint, items []model.ItemRequest) (*model.Quotation, error)

	// Delete removes a quotation and its items.
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
	now    func() time.Time
}

// New creates a new quotation service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Create resolves the customer, seller and products and stores an OPEN
// quotation with its items.
func (s *service) Create(ctx context.Context, req *model.CreateQuotationRequest) (*model.Quotation, error) {
	s.logger.Debugw("Create called", "customer_id", req.CustomerID, "seller_id", req.SellerID)

	if violations := validateItems(req.Items); len(violations) > 0 {
		return nil, apperr.NewValidationError(violations)
	}

	var result *model.Quotation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		result, txErr = s.createInTransaction(ctx, tx, req)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("Create completed", "quotation_id", result.ID)
	return result, nil
}

func (s *service) createInTransaction(
	ctx context.Context,
	tx *gorm.DB,
	req *model.CreateQuotationRequest,
) (*model.Quotation, error) {
	if _, err := customerRepository.New(tx, s.logger).FindByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}
	if _, err := userRepository.New(tx, s.logger).FindByID(ctx, req.SellerID); err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			return nil, model.ErrSellerNotFound
		}
		return nil, err
	}

	products := productRepository.New(tx, s.logger)
	items := make([]model.Item, 0, len(req.Items))
	for i := range req.Items {
		item, err := s.buildItem(ctx, products, &req.Items[i])
		if err != nil {
			return nil, err
		}
		item.ID = 0
		items = append(items, *item)
	}

	quotation := &model.Quotation{
		CustomerID:   req.CustomerID,
		SellerID:     req.SellerID,
		DateTime:     s.now(),
		BudgetStatus: model.StatusOpen,
		Items:        items,
	}

	txRepo := repository.New(tx, s.logger)
	if err := txRepo.Create(ctx, quotation); err != nil {
		return nil, err
	}
	return txRepo.FindByID(ctx, quotation.ID)
}

// buildItem resolves the product of req and snapshots its price when the
// request carries none.
func (s *service) buildItem(ctx context.Context, products productRepository.Repository, req *model.ItemRequest) (*model.Item, error) {
	product, err := products.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	unitPrice := product.Price
	if req.UnitPrice != nil {
		unitPrice = *req.UnitPrice
	}
	return &model.Item{
		ID:        req.ID,
		ProductID: product.ID,
		Quantity:  req.Quantity,
		UnitPrice: unitPrice,
	}, nil
}

func validateItems(items []model.ItemRequest) []string {
	violations := make([]string, 0)
	add := func(msg string) {
		for _, v := range violations {
			if v == msg {
				return
			}
		}
		violations = append(violations, msg)
	}

	for _, item := range items {
		if !item.Quantity.IsPositive() {
			add(MsgQuantityNotPositive)
		}
		if item.UnitPrice != nil && item.UnitPrice.IsNegative() {
			add(MsgUnitPriceNegative)
		}
	}
	return violations
}

func (s *service) GetByID(ctx context.Context, id uint) (*model.Quotation, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, sellerID *uint) ([]model.Quotation, error) {
	return s.repo.List(ctx, sellerID)
}

// ChangeStatus applies the transition with a compare-and-set on the status
// observed just before. When another request changed the status in
// between, the transition is evaluated again against the new status.
func (s *service) ChangeStatus(ctx context.Context, id uint, target string) (*model.Quotation, error) {
	s.logger.Debugw("ChangeStatus called", "quotation_id", id, "target", target)

	to, ok := model.ParseStatus(strings.ToUpper(strings.TrimSpace(target)))
	if !ok {
		return nil, apperr.NewValidationError([]string{"Status must be one of " + statusNames()})
	}

	// every lost race means the status moved forward, so the number of
	// statuses bounds the attempts
	cfg := retry.Config{
		MaxAttempts: len(model.Statuses),
		Multiplier:  1,
		RetryIf: func(err error) bool {
			return errors.Is(err, errStatusChanged)
		},
	}

	quotation, err := retry.DoWithResult(ctx, cfg, func() (*model.Quotation, error) {
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.BudgetStatus == to {
			return current, nil
		}
		if !current.BudgetStatus.CanTransitionTo(to) {
			s.logger.Infow("ChangeStatus rejected", "quotation_id", id, "from", current.BudgetStatus, "to", to)
			return nil, model.ErrInvalidTransition
		}

		rows, err := s.repo.CompareAndSetStatus(ctx, id, current.BudgetStatus, to)
		if err != nil {
			return nil, err
		}
		if rows == 0 {
			return nil, errStatusChanged
		}

		current.BudgetStatus = to
		s.logger.Infow("ChangeStatus completed", "quotation_id", id, "status", to)
		return current, nil
	})
	if errors.Is(err, errStatusChanged) {
		return nil, model.ErrInvalidTransition
	}
	return quotation, err
}

func statusNames() string {
	names := make([]string, len(model.Statuses))
	for i, status := range model.Statuses {
		names[i] = string(status)
	}
	return strings.Join(names, ", ")
}

// editable runs fn in a transaction after taking the row lock of a
// quotation that still accepts item changes.
func (s *service) editable(ctx context.Context, quotationID uint, fn func(tx *gorm.DB, txRepo repository.Repository) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		rows, err := txRepo.LockEditable(ctx, quotationID)
		if err != nil {
			return err
		}
		if rows == 0 {
			if _, err := txRepo.FindByID(ctx, quotationID); err != nil {
				return err
			}
			return model.ErrQuotationClosed
		}

		return fn(tx, txRepo)
	})
}

func (s *service) AddItem(ctx context.Context, quotationID uint, req *model.ItemRequest) (*model.Item, error) {
	s.logger.Debugw("AddItem called", "quotation_id", quotationID, "product_id", req.ProductID)

	if violations := validateItems([]model.ItemRequest{*req}); len(violations) > 0 {
		return nil, apperr.NewValidationError(violations)
	}

	var item *model.Item
	err := s.editable(ctx, quotationID, func(tx *gorm.DB, txRepo repository.Repository) error {
		var err error
		item, err = s.buildItem(ctx, productRepository.New(tx, s.logger), req)
		if err != nil {
			return err
		}
		item.ID = 0
		item.QuotationID = quotationID
		return txRepo.CreateItem(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) UpdateItem(
	ctx context.Context,
	quotationID, itemID uint,
	req *model.UpdateItemRequest,
) (*model.Item, error) {
	s.logger.Debugw("UpdateItem called", "quotation_id", quotationID, "item_id", itemID)

	var item *model.Item
	err := s.editable(ctx, quotationID, func(_ *gorm.DB, txRepo repository.Repository) error {
		var err error
		item, err = txRepo.FindItem(ctx, quotationID, itemID)
		if err != nil {
			return err
		}

		if req.Quantity != nil {
			item.Quantity = *req.Quantity
		}
		if req.UnitPrice != nil {
			item.UnitPrice = *req.UnitPrice
		}
		price := item.UnitPrice
		if violations := validateItems([]model.ItemRequest{{Quantity: item.Quantity, UnitPrice: &price}}); len(violations) > 0 {
			return apperr.NewValidationError(violations)
		}

		return txRepo.SaveItem(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) RemoveItem(ctx context.Context, quotationID, itemID uint) error {
	s.logger.Debugw("RemoveItem called", "quotation_id", quotationID, "item_id", itemID)

	return s.editable(ctx, quotationID, func(_ *gorm.DB, txRepo repository.Repository) error {
		rows, err := txRepo.DeleteItem(ctx, quotationID, itemID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return model.ErrItemNotFound
		}
		return nil
	})
}

func (s *service) ReplaceItems(ctx context.Context, quotationID uint, items []model.ItemRequest) (*model.Quotation, error) {
	s.logger.Debugw("ReplaceItems called", "quotation_id", quotationID, "items", len(items))

	if violations := validateItems(items); len(violations) > 0 {
		return nil, apperr.NewValidationError(violations)
	}

	var result *model.Quotation
	err := s.editable(ctx, quotationID, func(tx *gorm.DB, txRepo repository.Repository) error {
		products := productRepository.New(tx, s.logger)
		keep := make([]uint, 0, len(items))

		for i := range items {
			item, err := s.buildItem(ctx, products, &items[i])
			if err != nil {
				return err
			}
			item.QuotationID = quotationID

			if item.ID == 0 {
				if err := txRepo.CreateItem(ctx, item); err != nil {
					return err
				}
				keep = append(keep, item.ID)
				continue
			}

			existing, err := txRepo.FindItem(ctx, quotationID, item.ID)
			if err != nil {
				return err
			}
			// A kept item keeps its price snapshot unless the product changes.
			if items[i].UnitPrice == nil && existing.ProductID == item.ProductID {
				item.UnitPrice = existing.UnitPrice
			}
			if err := txRepo.SaveItem(ctx, item); err != nil {
				return err
			}
			keep = append(keep, item.ID)
		}

		removed, err := txRepo.DeleteItemsExcept(ctx, quotationID, keep)
		if err != nil {
			return err
		}
		s.logger.Debugw("ReplaceItems removed orphans", "quotation_id", quotationID, "removed", removed)

		result, err = txRepo.FindByID(ctx, quotationID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes a quotation and its items.
func (s *service) Delete(ctx context.Context, id uint) error {
	s.logger.Debugw("Delete called", "quotation_id", id)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := repository.New(tx, s.logger).Delete(ctx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return model.ErrQuotationNotFound
		}
		s.logger.Infow("Quotation deleted", "quotation_id", id)
		return nil
	})
}
