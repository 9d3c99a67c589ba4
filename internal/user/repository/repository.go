// Package repository provides data access layer for user module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/deopraglabs/prysme/internal/database/database"
	"github.com/deopraglabs/prysme/internal/tombstone"
	"github.com/deopraglabs/prysme/internal/user/model"
)

// Repository defines the interface for user data access operations.
// Unless stated otherwise, lookups only see users that are not deleted.
type Repository interface {
	// FindByID finds a user by id.
	FindByID(ctx context.Context, id uint) (*model.User, error)

	// FindAll returns every user ordered by id.
	FindAll(ctx context.Context) ([]model.User, error)

	// FindAllByTeamID returns the users assigned to a team ordered by id.
	FindAllByTeamID(ctx context.Context, teamID uint) ([]model.User, error)

	// FindAllByManagerID returns the users of the team owned by managerID,
	// the manager included, ordered by id.
	FindAllByManagerID(ctx context.Context, managerID uint) ([]model.User, error)

	// FindByEmailAndIDNot returns a user other than id holding email, or nil.
	FindByEmailAndIDNot(ctx context.Context, email string, id uint) (*model.User, error)

	// FindByPhoneNumberAndIDNot returns a user other than id holding phoneNumber, or nil.
	FindByPhoneNumberAndIDNot(ctx context.Context, phoneNumber string, id uint) (*model.User, error)

	// Create inserts a new user.
	Create(ctx context.Context, user *model.User) error

	// Save overwrites the profile fields of an existing user.
	Save(ctx context.Context, user *model.User) error

	// SetTeamID assigns the user to a team.
	SetTeamID(ctx context.Context, userID, teamID uint) error

	// UpdatePassword stores a new password hash and returns the rows affected.
	UpdatePassword(ctx context.Context, id uint, hash string) (int64, error)

	// SoftDeleteByID marks a live user deleted and overwrites its email and
	// phone number with values derived from tomb. Returns the rows affected.
	SoftDeleteByID(ctx context.Context, id uint, tomb string) (int64, error)

	// IsDeleted returns 1 if the user exists and is deleted, 0 otherwise.
	IsDeleted(ctx context.Context, id uint) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new user repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) live(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.User{}).Where("deleted = ?", false)
}

// FindByID finds a user by id.
func (r *repository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	r.logger.Debugw("FindByID called", "user_id", id)

	var user model.User
	err := r.live(ctx).Where("id = ?", id).Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("FindByID user not found", "user_id", id)
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("FindByID database error", "user_id", id, "error", err)
		return nil, err
	}

	return &user, nil
}

// FindAll returns every user ordered by id.
func (r *repository) FindAll(ctx context.Context) ([]model.User, error) {
	r.logger.Debugw("FindAll called")

	users := make([]model.User, 0)
	if err := r.live(ctx).Order("id").Find(&users).Error; err != nil {
		r.logger.Errorw("FindAll database error", "error", err)
		return nil, err
	}

	r.logger.Debugw("FindAll completed", "count", len(users))
	return users, nil
}

// FindAllByTeamID returns the users assigned to a team ordered by id.
func (r *repository) FindAllByTeamID(ctx context.Context, teamID uint) ([]model.User, error) {
	r.logger.Debugw("FindAllByTeamID called", "team_id", teamID)

	users := make([]model.User, 0)
	if err := r.live(ctx).Where("team_id = ?", teamID).Order("id").Find(&users).Error; err != nil {
		r.logger.Errorw("FindAllByTeamID database error", "team_id", teamID, "error", err)
		return nil, err
	}

	r.logger.Debugw("FindAllByTeamID completed", "team_id", teamID, "count", len(users))
	return users, nil
}

// FindAllByManagerID returns the users of the team owned by managerID.
func (r *repository) FindAllByManagerID(ctx context.Context, managerID uint) ([]model.User, error) {
	r.logger.Debugw("FindAllByManagerID called", "manager_id", managerID)

	owned := r.db.Table("teams").Select("id").Where("manager_id = ?", managerID)

	users := make([]model.User, 0)
	if err := r.live(ctx).Where("team_id IN (?)", owned).Order("id").Find(&users).Error; err != nil {
		r.logger.Errorw("FindAllByManagerID database error", "manager_id", managerID, "error", err)
		return nil, err
	}

	r.logger.Debugw("FindAllByManagerID completed", "manager_id", managerID, "count", len(users))
	return users, nil
}

// FindByEmailAndIDNot returns a user other than id holding email, or nil.
func (r *repository) FindByEmailAndIDNot(ctx context.Context, email string, id uint) (*model.User, error) {
	return r.findOtherBy(ctx, "email", email, id)
}

// FindByPhoneNumberAndIDNot returns a user other than id holding phoneNumber, or nil.
func (r *repository) FindByPhoneNumberAndIDNot(ctx context.Context, phoneNumber string, id uint) (*model.User, error) {
	return r.findOtherBy(ctx, "phone_number", phoneNumber, id)
}

func (r *repository) findOtherBy(ctx context.Context, column, value string, id uint) (*model.User, error) {
	var users []model.User
	err := r.live(ctx).
		Where(column+" = ? AND id <> ?", value, id).
		Limit(1).
		Find(&users).Error
	if err != nil {
		r.logger.Errorw("Uniqueness lookup database error", "column", column, "user_id", id, "error", err)
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// Create inserts a new user. A unique violation is reported as ErrUserConflict.
func (r *repository) Create(ctx context.Context, user *model.User) error {
	r.logger.Debugw("Create called", "email", user.Email)

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if database.IsDuplicateKey(err) {
			r.logger.Infow("Create lost a uniqueness race", "email", user.Email)
			return model.ErrUserConflict
		}
		r.logger.Errorw("Create database error", "email", user.Email, "error", err)
		return err
	}

	r.logger.Infow("User created", "user_id", user.ID)
	return nil
}

// Save overwrites the profile fields of an existing user.
func (r *repository) Save(ctx context.Context, user *model.User) error {
	r.logger.Debugw("Save called", "user_id", user.ID)

	result := r.db.WithContext(ctx).
		Model(user).
		Where("deleted = ?", false).
		Select("first_name", "last_name", "email", "phone_number", "birth_date", "gender", "roles").
		Updates(user)
	if result.Error != nil {
		if database.IsDuplicateKey(result.Error) {
			r.logger.Infow("Save lost a uniqueness race", "user_id", user.ID)
			return model.ErrUserConflict
		}
		r.logger.Errorw("Save database error", "user_id", user.ID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrUserNotFound
	}

	r.logger.Infow("User saved", "user_id", user.ID)
	return nil
}

// SetTeamID assigns the user to a team.
func (r *repository) SetTeamID(ctx context.Context, userID, teamID uint) error {
	r.logger.Debugw("SetTeamID called", "user_id", userID, "team_id", teamID)

	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", userID).
		Update("team_id", teamID)
	if result.Error != nil {
		r.logger.Errorw("SetTeamID database error", "user_id", userID, "team_id", teamID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

// UpdatePassword stores a new password hash.
func (r *repository) UpdatePassword(ctx context.Context, id uint, hash string) (int64, error) {
	r.logger.Debugw("UpdatePassword called", "user_id", id)

	result := r.live(ctx).Where("id = ?", id).Update("password", hash)
	if result.Error != nil {
		r.logger.Errorw("UpdatePassword database error", "user_id", id, "error", result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// SoftDeleteByID marks a live user deleted. The deleted = false guard makes
// concurrent deletes of the same id affect at most one row in total.
func (r *repository) SoftDeleteByID(ctx context.Context, id uint, tomb string) (int64, error) {
	r.logger.Debugw("SoftDeleteByID called", "user_id", id)

	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ? AND deleted = ?", id, false).
		Updates(map[string]interface{}{
			"deleted":      true,
			"email":        tombstone.Email(tomb),
			"phone_number": tombstone.Phone(tomb),
		})
	if result.Error != nil {
		r.logger.Errorw("SoftDeleteByID database error", "user_id", id, "error", result.Error)
		return 0, result.Error
	}

	r.logger.Infow("SoftDeleteByID completed", "user_id", id, "rows_affected", result.RowsAffected)
	return result.RowsAffected, nil
}

// IsDeleted returns 1 if the user exists and is deleted, 0 otherwise.
func (r *repository) IsDeleted(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ? AND deleted = ?", id, true).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("IsDeleted database error", "user_id", id, "error", err)
		return 0, err
	}
	return count, nil
}
