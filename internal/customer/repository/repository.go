// Package repository provides data access layer for customer module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/deopraglabs/prysme/internal/customer/model"
	"github.com/deopraglabs/prysme/internal/database/database"
	"github.com/deopraglabs/prysme/internal/tombstone"
)

// Repository defines the interface for customer data access operations.
// Lookups only see customers that are not deleted.
type Repository interface {
	FindByID(ctx context.Context, id uint) (*model.Customer, error)
	FindAll(ctx context.Context) ([]model.Customer, error)

	// FindByCpfCnpjAndIDNot returns a customer other than id holding cpfCnpj, or nil.
	FindByCpfCnpjAndIDNot(ctx context.Context, cpfCnpj string, id uint) (*model.Customer, error)

	// FindByEmailAndIDNot returns a customer other than id holding email, or nil.
	FindByEmailAndIDNot(ctx context.Context, email string, id uint) (*model.Customer, error)

	Create(ctx context.Context, customer *model.Customer) error
	Save(ctx context.Context, customer *model.Customer) error

	// SoftDeleteByID marks a live customer deleted and overwrites its tax id
	// and email with values derived from tomb. Returns the rows affected.
	SoftDeleteByID(ctx context.Context, id uint, tomb string) (int64, error)

	// IsDeleted returns 1 if the customer exists and is deleted, 0 otherwise.
	IsDeleted(ctx context.Context, id uint) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new customer repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) live(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Customer{}).Where("deleted = ?", false)
}

func (r *repository) FindByID(ctx context.Context, id uint) (*model.Customer, error) {
	r.logger.Debugw("FindByID called", "customer_id", id)

	var customer model.Customer
	if err := r.live(ctx).Where("id = ?", id).Take(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrCustomerNotFound
		}
		r.logger.Errorw("FindByID database error", "customer_id", id, "error", err)
		return nil, err
	}
	return &customer, nil
}

func (r *repository) FindAll(ctx context.Context) ([]model.Customer, error) {
	customers := make([]model.Customer, 0)
	if err := r.live(ctx).Order("id").Find(&customers).Error; err != nil {
		r.logger.Errorw("FindAll database error", "error", err)
		return nil, err
	}
	return customers, nil
}

func (r *repository) FindByCpfCnpjAndIDNot(ctx context.Context, cpfCnpj string, id uint) (*model.Customer, error) {
	return r.findOtherBy(ctx, "cpf_cnpj", cpfCnpj, id)
}

func (r *repository) FindByEmailAndIDNot(ctx context.Context, email string, id uint) (*model.Customer, error) {
	return r.findOtherBy(ctx, "email", email, id)
}

func (r *repository) findOtherBy(ctx context.Context, column, value string, id uint) (*model.Customer, error) {
	var customers []model.Customer
	err := r.live(ctx).
		Where(column+" = ? AND id <> ?", value, id).
		Limit(1).
		Find(&customers).Error
	if err != nil {
		r.logger.Errorw("Uniqueness lookup database error", "column", column, "customer_id", id, "error", err)
		return nil, err
	}
	if len(customers) == 0 {
		return nil, nil
	}
	return &customers[0], nil
}

// Create inserts a new customer. A unique violation is reported as ErrCustomerConflict.
func (r *repository) Create(ctx context.Context, customer *model.Customer) error {
	r.logger.Debugw("Create called", "cpf_cnpj", customer.CpfCnpj)

	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return model.ErrCustomerConflict
		}
		r.logger.Errorw("Create database error", "error", err)
		return err
	}

	r.logger.Infow("Customer created", "customer_id", customer.ID)
	return nil
}

// Save overwrites every editable field of a live customer.
func (r *repository) Save(ctx context.Context, customer *model.Customer) error {
	r.logger.Debugw("Save called", "customer_id", customer.ID)

	result := r.db.WithContext(ctx).
		Model(customer).
		Where("deleted = ?", false).
		Select("cpf_cnpj", "name", "trade_name", "email", "birth_foundation_date", "state_registration",
			"phone_numbers", "address_street", "address_number", "address_district", "address_city",
			"address_state", "address_zip_code").
		Updates(customer)
	if result.Error != nil {
		if database.IsDuplicateKey(result.Error) {
			return model.ErrCustomerConflict
		}
		r.logger.Errorw("Save database error", "customer_id", customer.ID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrCustomerNotFound
	}
	return nil
}

// SoftDeleteByID marks a live customer deleted. Concurrent deletes of the
// same id affect at most one row in total.
func (r *repository) SoftDeleteByID(ctx context.Context, id uint, tomb string) (int64, error) {
	r.logger.Debugw("SoftDeleteByID called", "customer_id", id)

	result := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("id = ? AND deleted = ?", id, false).
		Updates(map[string]interface{}{
			"deleted":  true,
			"cpf_cnpj": tombstone.TaxID(tomb),
			"email":    tombstone.Email(tomb),
		})
	if result.Error != nil {
		r.logger.Errorw("SoftDeleteByID database error", "customer_id", id, "error", result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *repository) IsDeleted(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("id = ? AND deleted = ?", id, true).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("IsDeleted database error", "customer_id", id, "error", err)
		return 0, err
	}
	return count, nil
}
