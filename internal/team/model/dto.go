// Package model provides domain models and DTOs for team module.
package model

import (
	userModel "github.com/deopraglabs/prysme/internal/user/model"
)

// TeamResponse represents a team with its members.
type TeamResponse struct {
	ID        uint             `json:"id"`
	Name      string           `json:"name"`
	ManagerID uint             `json:"manager_id"`
	Members   []userModel.User `json:"members"`
}

// NewTeamResponse builds the response for team and its members.
func NewTeamResponse(team *Team, members []userModel.User) *TeamResponse {
	if members == nil {
		members = []userModel.User{}
	}
	return &TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		ManagerID: team.ManagerID,
		Members:   members,
	}
}
