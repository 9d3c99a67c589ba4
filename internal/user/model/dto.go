package model

import (
	"strings"
	"time"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// SaveUserRequest is the body of user create and update requests. Required
// and format checks are left to the validation rules so that every
// violation is reported at once.
type SaveUserRequest struct {
	ID          uint     `json:"id"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phone_number"`
	BirthDate   string   `json:"birth_date"`
	Gender      string   `json:"gender"`
	Roles       []string `json:"roles"`
	Password    string   `json:"password"`
}

// ToUser converts the request into a user candidate with trimmed fields.
// A birth date that does not parse is left nil.
func (r *SaveUserRequest) ToUser() *User {
	u := &User{
		ID:          r.ID,
		FirstName:   strings.TrimSpace(r.FirstName),
		LastName:    strings.TrimSpace(r.LastName),
		Email:       strings.TrimSpace(r.Email),
		PhoneNumber: strings.TrimSpace(r.PhoneNumber),
		Gender:      Gender(r.Gender),
		Roles:       uniqueRoles(r.Roles),
	}
	if r.BirthDate != "" {
		if t, err := time.Parse(DateLayout, r.BirthDate); err == nil {
			u.BirthDate = &t
		}
	}
	return u
}

// ResetPasswordRequest is the body of a password reset.
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6,max=72"`
}

func uniqueRoles(roles []string) []string {
	out := make([]string, 0, len(roles))
	seen := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		if _, ok := seen[role]; ok {
			continue
		}
		seen[role] = struct{}{}
		out = append(out, role)
	}
	return out
}
