// Package service provides business logic layer for customer module.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/deopraglabs/prysme/internal/apperr"
	"github.com/deopraglabs/prysme/internal/customer/model"
	"github.com/deopraglabs/prysme/internal/customer/repository"
	"github.com/deopraglabs/prysme/internal/lock"
	"github.com/deopraglabs/prysme/internal/tombstone"
)

// Service defines the interface for customer business logic operations.
type Service interface {
	FindAll(ctx context.Context) ([]model.Customer, error)
	FindByID(ctx context.Context, id uint) (*model.Customer, error)

	// Save creates a customer when req.ID is zero and updates it otherwise.
	Save(ctx context.Context, req *model.SaveCustomerRequest) (*model.Customer, error)

	// Delete soft-deletes a customer.
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo       repository.Repository
	db         *gorm.DB
	locker     lock.Locker
	tombstones *tombstone.Generator
	logger     *zap.SugaredLogger
}

// New creates a new customer service instance.
func New(
	repo repository.Repository,
	db *gorm.DB,
	locker lock.Locker,
	tombstones *tombstone.Generator,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:       repo,
		db:         db,
		locker:     locker,
		tombstones: tombstones,
		logger:     logger,
	}
}

func (s *service) FindAll(ctx context.Context) ([]model.Customer, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) FindByID(ctx context.Context, id uint) (*model.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

// Save validates and writes a customer in one transaction while holding a
// lock on its tax id.
func (s *service) Save(ctx context.Context, req *model.SaveCustomerRequest) (*model.Customer, error) {
	candidate := req.ToCustomer()
	s.logger.Debugw("Save called", "customer_id", candidate.ID)

	unlock, err := s.locker.Lock(ctx, lock.CustomerTaxIDKey(candidate.CpfCnpj))
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return nil, model.ErrCustomerConflict
		}
		return nil, err
	}
	defer unlock()

	var saved *model.Customer
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		violations, err := validate(ctx, candidate, txRepo)
		if err != nil {
			return err
		}
		if len(violations) > 0 {
			return apperr.NewValidationError(violations)
		}

		if candidate.ID == 0 {
			err = txRepo.Create(ctx, candidate)
		} else {
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

	s.logger.Infow("Save completed", "customer_id", saved.ID)
	return saved, nil
}

// Delete soft-deletes a customer and releases its tax id and email.
func (s *service) Delete(ctx context.Context, id uint) error {
	s.logger.Debugw("Delete called", "customer_id", id)

	deleted, err := s.repo.IsDeleted(ctx, id)
	if err != nil {
		return err
	}
	if deleted > 0 {
		return model.ErrCustomerNotFound
	}

	rows, err := s.repo.SoftDeleteByID(ctx, id, s.tombstones.ForID(id))
	if err != nil {
		return err
	}
	if rows == 0 {
		return model.ErrCustomerNotFound
	}

	s.logger.Infow("Customer deleted", "customer_id", id)
	return nil
}
