package model

import (
	"slices"
	"time"

	"gorm.io/gorm"
)

// Gender of a user. The empty value means unset.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

// Known roles.
const (
	RoleManager = "MANAGER"
	RoleSeller  = "SELLER"
	RoleAdmin   = "ADMIN"
)

// User represents a user entity in the system.
// Matches the users table schema.
type User struct {
	ID          uint       `gorm:"primaryKey;column:id"                                               json:"id"`
	FirstName   string     `gorm:"column:first_name;type:varchar(255);not null"                       json:"first_name"`
	LastName    string     `gorm:"column:last_name;type:varchar(255);not null"                        json:"last_name"`
	Email       string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_users_email" json:"email"`
	PhoneNumber string     `gorm:"column:phone_number;type:varchar(50);not null;uniqueIndex:idx_users_phone_number" json:"phone_number"`
	BirthDate   *time.Time `gorm:"column:birth_date"                                                  json:"birth_date,omitempty"`
	Gender      Gender     `gorm:"column:gender;type:varchar(1);not null"                             json:"gender"`
	Roles       []string   `gorm:"column:roles;type:text;serializer:json"                             json:"roles"`
	TeamID      *uint      `gorm:"column:team_id;index:idx_users_team_id"                             json:"team_id,omitempty"`
	Password    string     `gorm:"column:password;type:varchar(255);not null"                         json:"-"`
	Deleted     bool       `gorm:"column:deleted;not null;default:false"                              json:"-"`
	CreatedAt   time.Time  `gorm:"column:created_at"                                                  json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"                                                  json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeSave stores an empty role set as [] rather than null.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Roles == nil {
		u.Roles = []string{}
	}
	return nil
}

// HasRole reports whether role is in the user's role set.
func (u *User) HasRole(role string) bool {
	return slices.Contains(u.Roles, role)
}

// IsManager reports whether the user holds the MANAGER role.
func (u *User) IsManager() bool {
	return u.HasRole(RoleManager)
}

// FullName returns first and last name separated by a space.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
