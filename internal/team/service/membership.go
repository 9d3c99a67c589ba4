package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	teamModel "github.com/deopraglabs/prysme/internal/team/model"
	"github.com/deopraglabs/prysme/internal/team/repository"
	userModel "github.com/deopraglabs/prysme/internal/user/model"
	userRepository "github.com/deopraglabs/prysme/internal/user/repository"
)

// Membership keeps every manager attached to a team it owns.
type Membership struct {
	logger *zap.SugaredLogger
}

// NewMembership creates a team membership manager.
func NewMembership(logger *zap.SugaredLogger) *Membership {
	return &Membership{logger: logger}
}

// EnsureManagerTeam gives a persisted manager its team, creating it on
// first use and reusing it afterwards, and assigns the user to it. It runs
// on tx so the caller's transaction covers the user write and the team
// write together. Users without the MANAGER role are left untouched and
// nil is returned.
func (m *Membership) EnsureManagerTeam(ctx context.Context, tx *gorm.DB, user *userModel.User) (*teamModel.Team, error) {
	if !user.IsManager() {
		return nil, nil
	}

	teams := repository.New(tx, m.logger)
	team, err := teams.FindByManagerID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		team = &teamModel.Team{Name: user.FullName(), ManagerID: user.ID}
		if err := teams.Create(ctx, team); err != nil {
			return nil, err
		}
	}

	if user.TeamID == nil || *user.TeamID != team.ID {
		if err := userRepository.New(tx, m.logger).SetTeamID(ctx, user.ID, team.ID); err != nil {
			return nil, err
		}
		teamID := team.ID
		user.TeamID = &teamID
		m.logger.Infow("Manager assigned to team", "user_id", user.ID, "team_id", team.ID)
	}

	return team, nil
}
