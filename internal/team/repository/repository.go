// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/deopraglabs/prysme/internal/database/database"
	teamModel "github.com/deopraglabs/prysme/internal/team/model"
	userModel "github.com/deopraglabs/prysme/internal/user/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// FindByID finds a team by id.
	FindByID(ctx context.Context, id uint) (*teamModel.Team, error)

	// FindByManagerID finds the team owned by a manager, or nil if none exists.
	FindByManagerID(ctx context.Context, managerID uint) (*teamModel.Team, error)

	// Create creates a new team.
	Create(ctx context.Context, team *teamModel.Team) error

	// List returns every team ordered by id.
	List(ctx context.Context) ([]teamModel.Team, error)

	// GetMembers returns the live users of a team other than its manager, ordered by id.
	GetMembers(ctx context.Context, teamID, managerID uint) ([]userModel.User, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// FindByID finds a team by id.
func (r *repository) FindByID(ctx context.Context, id uint) (*teamModel.Team, error) {
	r.logger.Debugw("FindByID called", "team_id", id)

	var team teamModel.Team
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		r.logger.Errorw("FindByID database error", "team_id", id, "error", err)
		return nil, err
	}

	return &team, nil
}

// FindByManagerID finds the team owned by a manager, or nil if none exists.
func (r *repository) FindByManagerID(ctx context.Context, managerID uint) (*teamModel.Team, error) {
	r.logger.Debugw("FindByManagerID called", "manager_id", managerID)

	var teams []teamModel.Team
	err := r.db.WithContext(ctx).Where("manager_id = ?", managerID).Limit(1).Find(&teams).Error
	if err != nil {
		r.logger.Errorw("FindByManagerID database error", "manager_id", managerID, "error", err)
		return nil, err
	}
	if len(teams) == 0 {
		return nil, nil
	}

	return &teams[0], nil
}

// Create creates a new team. A second team for the same manager is
// rejected by the unique index and reported as ErrTeamConflict.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) error {
	r.logger.Debugw("Create called", "manager_id", team.ManagerID)

	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		if database.IsDuplicateKey(err) {
			r.logger.Infow("Create team already exists", "manager_id", team.ManagerID)
			return teamModel.ErrTeamConflict
		}
		r.logger.Errorw("Create database error", "manager_id", team.ManagerID, "error", err)
		return err
	}

	r.logger.Infow("Team created", "team_id", team.ID, "manager_id", team.ManagerID)
	return nil
}

// List returns every team ordered by id.
func (r *repository) List(ctx context.Context) ([]teamModel.Team, error) {
	teams := make([]teamModel.Team, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&teams).Error; err != nil {
		r.logger.Errorw("List database error", "error", err)
		return nil, err
	}
	return teams, nil
}

// GetMembers returns the live users of a team other than its manager, ordered by id.
func (r *repository) GetMembers(ctx context.Context, teamID, managerID uint) ([]userModel.User, error) {
	r.logger.Debugw("GetMembers called", "team_id", teamID)

	members := make([]userModel.User, 0)
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND id <> ? AND deleted = ?", teamID, managerID, false).
		Order("id").
		Find(&members).Error
	if err != nil {
		r.logger.Errorw("GetMembers database error", "team_id", teamID, "error", err)
		return nil, err
	}

	return members, nil
}
