// Package service provides business logic layer for user module.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/deopraglabs/prysme/internal/apperr"
	"github.com/deopraglabs/prysme/internal/lock"
	"github.com/deopraglabs/prysme/internal/security"
	teamModel "github.com/deopraglabs/prysme/internal/team/model"
	"github.com/deopraglabs/prysme/internal/tombstone"
	"github.com/deopraglabs/prysme/internal/user/model"
	"github.com/deopraglabs/prysme/internal/user/repository"
	"github.com/deopraglabs/prysme/internal/user/validation"
)

// Service defines the interface for user business logic operations.
type Service interface {
	// FindAll returns every live user.
	FindAll(ctx context.Context) ([]model.User, error)

	// FindByID returns a live user.
	FindByID(ctx context.Context, id uint) (*model.User, error)

	// FindAllByTeamID returns the users sharing a team with the user id.
	FindAllByTeamID(ctx context.Context, id uint) ([]model.User, error)

	// FindAllByManagerID returns the users of the team managed by id.
	FindAllByManagerID(ctx context.Context, id uint) ([]model.User, error)

	// Save creates a user when req.ID is zero and updates it otherwise.
	Save(ctx context.Context, req *model.SaveUserRequest) (*model.User, error)

	// Delete soft-deletes a user.
	Delete(ctx context.Context, id uint) error

	// ResetPassword replaces the password of a user.
	ResetPassword(ctx context.Context, id uint, password string) error
}

// TeamAssigner attaches managers to their team within a transaction.
type TeamAssigner interface {
	EnsureManagerTeam(ctx context.Context, tx *gorm.DB, user *model.User) (*teamModel.Team, error)
}

// Dependencies are the collaborators of the user service.
type Dependencies struct {
	Teams      TeamAssigner
	Locker     lock.Locker
	Hasher     security.Hasher
	Tombstones *tombstone.Generator
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	deps   Dependencies
	logger *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, db *gorm.DB, deps Dependencies, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		deps:   deps,
		logger: logger,
	}
}

// FindAll returns every live user.
func (s *service) FindAll(ctx context.Context) ([]model.User, error) {
	return s.repo.FindAll(ctx)
}

// FindByID returns a live user.
func (s *service) FindByID(ctx context.Context, id uint) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

// FindAllByTeamID returns the users sharing a team with the user id. A
// user without a team yields an empty list.
func (s *service) FindAllByTeamID(ctx context.Context, id uint) ([]model.User, error) {
	s.logger.Debugw("FindAllByTeamID called", "user_id", id)

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.TeamID == nil {
		return []model.User{}, nil
	}

	return s.repo.FindAllByTeamID(ctx, *user.TeamID)
}

// FindAllByManagerID returns the users of the team managed by id, the
// manager included.
func (s *service) FindAllByManagerID(ctx context.Context, id uint) ([]model.User, error) {
	s.logger.Debugw("FindAllByManagerID called", "manager_id", id)

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	return s.repo.FindAllByManagerID(ctx, id)
}

// Save validates and writes a user. The user row, its uniqueness checks
// and the manager's team are written in one transaction while holding a
// lock on the user's email (create) or id (update).
func (s *service) Save(ctx context.Context, req *model.SaveUserRequest) (*model.User, error) {
	candidate := req.ToUser()
	s.logger.Debugw("Save called", "user_id", candidate.ID, "email", candidate.Email)

	key := lock.UserEmailKey(candidate.Email)
	if candidate.ID > 0 {
		key = lock.UserIDKey(candidate.ID)
	}
	unlock, err := s.deps.Locker.Lock(ctx, key)
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			s.logger.Infow("Save lock busy", "key", key)
			return nil, model.ErrUserConflict
		}
		return nil, err
	}
	defer unlock()

	var saved *model.User
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		violations, err := validation.ValidateRequest(ctx, req, candidate, txRepo)
		if err != nil {
			return err
		}
		if len(violations) > 0 {
			s.logger.Debugw("Save validation failed", "violations", violations)
			return apperr.NewValidationError(violations)
		}

		if candidate.ID > 0 {
			saved, err = s.update(ctx, txRepo, candidate)
		} else {
			saved, err = s.create(ctx, txRepo, candidate, req.Password)
		}
		if err != nil {
			return err
		}

		_, err = s.deps.Teams.EnsureManagerTeam(ctx, tx, saved)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("Save completed", "user_id", saved.ID)
	return saved, nil
}

func (s *service) create(ctx context.Context, repo repository.Repository, user *model.User, password string) (*model.User, error) {
	if password != "" {
		hash, err := s.deps.Hasher.Encrypt(password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// update overwrites the profile of an existing user. The password and team
// are left as they are.
func (s *service) update(ctx context.Context, repo repository.Repository, candidate *model.User) (*model.User, error) {
	existing, err := repo.FindByID(ctx, candidate.ID)
	if err != nil {
		return nil, err
	}

	existing.FirstName = candidate.FirstName
	existing.LastName = candidate.LastName
	existing.Email = candidate.Email
	existing.PhoneNumber = candidate.PhoneNumber
	existing.BirthDate = candidate.BirthDate
	existing.Gender = candidate.Gender
	existing.Roles = candidate.Roles

	if err := repo.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete soft-deletes a user and releases its email and phone number.
func (s *service) Delete(ctx context.Context, id uint) error {
	s.logger.Debugw("Delete called", "user_id", id)

	deleted, err := s.repo.IsDeleted(ctx, id)
	if err != nil {
		return err
	}
	if deleted > 0 {
		return model.ErrUserNotFound
	}

	rows, err := s.repo.SoftDeleteByID(ctx, id, s.deps.Tombstones.ForID(id))
	if err != nil {
		return err
	}
	if rows == 0 {
		return model.ErrUserNotFound
	}

	s.logger.Infow("User deleted", "user_id", id)
	return nil
}

// ResetPassword replaces the password of a live user.
func (s *service) ResetPassword(ctx context.Context, id uint, password string) error {
	s.logger.Debugw("ResetPassword called", "user_id", id)

	hash, err := s.deps.Hasher.Encrypt(password)
	if err != nil {
		return err
	}

	rows, err := s.repo.UpdatePassword(ctx, id, hash)
	if err != nil {
		return err
	}
	if rows == 0 {
		return model.ErrUserNotFound
	}

	s.logger.Infow("Password reset", "user_id", id)
	return nil
}
