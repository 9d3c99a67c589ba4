package model

import (
	"time"
)

// Team is the group owned by a manager. Members are the users whose
// team_id points at it, not counting the manager.
type Team struct {
	ID        uint      `gorm:"primaryKey;column:id"                                               json:"id"`
	Name      string    `gorm:"column:name;type:varchar(511);not null"                             json:"name"`
	ManagerID uint      `gorm:"column:manager_id;not null;uniqueIndex:idx_teams_manager_id"        json:"manager_id"`
	CreatedAt time.Time `gorm:"column:created_at"                                                  json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at"                                                  json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}
