// Package service provides business logic layer for team module.
package service

import (
	"context"

	"go.uber.org/zap"

	teamModel "github.com/deopraglabs/prysme/internal/team/model"
	"github.com/deopraglabs/prysme/internal/team/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// GetTeam returns a team with its members.
	GetTeam(ctx context.Context, id uint) (*teamModel.TeamResponse, error)

	// List returns every team with its members.
	List(ctx context.Context) ([]*teamModel.TeamResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetTeam returns a team with its members.
func (s *service) GetTeam(ctx context.Context, id uint) (*teamModel.TeamResponse, error) {
	team, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.GetMembers(ctx, team.ID, team.ManagerID)
	if err != nil {
		return nil, err
	}

	return teamModel.NewTeamResponse(team, members), nil
}

// List returns every team with its members.
func (s *service) List(ctx context.Context) ([]*teamModel.TeamResponse, error) {
	teams, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*teamModel.TeamResponse, 0, len(teams))
	for i := range teams {
		members, err := s.repo.GetMembers(ctx, teams[i].ID, teams[i].ManagerID)
		if err != nil {
			return nil, err
		}
		result = append(result, teamModel.NewTeamResponse(&teams[i], members))
	}
	return result, nil
}
