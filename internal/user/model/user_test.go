package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deopraglabs/prysme/internal/apperr"
)

func TestUser_HasRole(t *testing.T) {
	u := &User{Roles: []string{RoleSeller, RoleManager}}

	assert.True(t, u.HasRole(RoleManager))
	assert.True(t, u.IsManager())
	assert.False(t, u.HasRole(RoleAdmin))
	assert.False(t, (&User{}).IsManager())
	assert.False(t, (&User{Roles: []string{"manager"}}).IsManager())
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", (&User{FirstName: "Ada", LastName: "Lovelace"}).FullName())
}

func TestUser_BeforeSave(t *testing.T) {
	u := &User{}
	require.NoError(t, u.BeforeSave(nil))
	assert.NotNil(t, u.Roles)
	assert.Empty(t, u.Roles)
}

func TestSaveUserRequest_ToUser(t *testing.T) {
	req := &SaveUserRequest{
		ID:          3,
		FirstName:   "  Ada ",
		LastName:    "Lovelace",
		Email:       " ada@example.com ",
		PhoneNumber: "5511999999999",
		BirthDate:   "1815-12-10",
		Gender:      "F",
		Roles:       []string{RoleManager, RoleSeller, RoleManager},
	}

	u := req.ToUser()

	assert.Equal(t, uint(3), u.ID)
	assert.Equal(t, "Ada", u.FirstName)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.Equal(t, GenderFemale, u.Gender)
	assert.Equal(t, []string{RoleManager, RoleSeller}, u.Roles)
	require.NotNil(t, u.BirthDate)
	assert.Equal(t, time.Date(1815, 12, 10, 0, 0, 0, 0, time.UTC), *u.BirthDate)

	empty := (&SaveUserRequest{}).ToUser()
	assert.Nil(t, empty.BirthDate)
	assert.Equal(t, Gender(""), empty.Gender)
	assert.Empty(t, empty.Roles)
}

func TestErrors(t *testing.T) {
	assert.ErrorIs(t, ErrUserNotFound, apperr.ErrNotFound)
	assert.Equal(t, "user not found", ErrUserNotFound.Error())
	assert.ErrorIs(t, ErrUserConflict, apperr.ErrConflictOnCreate)
}
