package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/deopraglabs/prysme/internal/database/dbtest"
	teamModel "github.com/deopraglabs/prysme/internal/team/model"
	"github.com/deopraglabs/prysme/internal/team/repository"
	userModel "github.com/deopraglabs/prysme/internal/user/model"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) FindByID(ctx context.Context, id uint) (*teamModel.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*teamModel.Team), args.Error(1)
}

func (m *mockRepository) FindByManagerID(ctx context.Context, managerID uint) (*teamModel.Team, error) {
	args := m.Called(ctx, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*teamModel.Team), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, team *teamModel.Team) error {
	return m.Called(ctx, team).Error(0)
}

func (m *mockRepository) List(ctx context.Context) ([]teamModel.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]teamModel.Team), args.Error(1)
}

func (m *mockRepository) GetMembers(ctx context.Context, teamID, managerID uint) ([]userModel.User, error) {
	args := m.Called(ctx, teamID, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]userModel.User), args.Error(1)
}

var _ repository.Repository = (*mockRepository)(nil)

func TestService_GetTeam(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, zap.NewNop().Sugar())

		repo.On("FindByID", ctx, uint(1)).Return(&teamModel.Team{ID: 1, Name: "Ana Souza", ManagerID: 7}, nil)
		repo.On("GetMembers", ctx, uint(1), uint(7)).Return([]userModel.User{{ID: 8}, {ID: 9}}, nil)

		resp, err := svc.GetTeam(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Ana Souza", resp.Name)
		assert.Equal(t, uint(7), resp.ManagerID)
		assert.Len(t, resp.Members, 2)
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, zap.NewNop().Sugar())

		repo.On("FindByID", ctx, uint(2)).Return(nil, teamModel.ErrTeamNotFound)

		resp, err := svc.GetTeam(ctx, 2)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
		repo.AssertNotCalled(t, "GetMembers", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("members error", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, zap.NewNop().Sugar())
		dbErr := errors.New("connection reset")

		repo.On("FindByID", ctx, uint(1)).Return(&teamModel.Team{ID: 1, ManagerID: 7}, nil)
		repo.On("GetMembers", ctx, uint(1), uint(7)).Return(nil, dbErr)

		_, err := svc.GetTeam(ctx, 1)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := New(repo, zap.NewNop().Sugar())

	repo.On("List", ctx).Return([]teamModel.Team{{ID: 1, ManagerID: 10}, {ID: 2, ManagerID: 20}}, nil)
	repo.On("GetMembers", ctx, uint(1), uint(10)).Return([]userModel.User{{ID: 11}}, nil)
	repo.On("GetMembers", ctx, uint(2), uint(20)).Return([]userModel.User{}, nil)

	teams, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Len(t, teams[0].Members, 1)
	assert.Empty(t, teams[1].Members)
	repo.AssertExpectations(t)
}

func setupMembershipDB(t *testing.T) *gorm.DB {
	t.Helper()
	return dbtest.Open(t, &userModel.User{}, &teamModel.Team{})
}

func persistUser(t *testing.T, db *gorm.DB, email string, roles ...string) *userModel.User {
	t.Helper()
	u := &userModel.User{
		FirstName:   "Ana",
		LastName:    "Souza",
		Email:       email,
		PhoneNumber: email,
		Gender:      userModel.GenderFemale,
		Roles:       roles,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestMembership_EnsureManagerTeam(t *testing.T) {
	ctx := context.Background()

	t.Run("non manager is a no-op", func(t *testing.T) {
		db := setupMembershipDB(t)
		m := NewMembership(zap.NewNop().Sugar())
		u := persistUser(t, db, "seller@example.com", userModel.RoleSeller)

		team, err := m.EnsureManagerTeam(ctx, db, u)
		require.NoError(t, err)
		assert.Nil(t, team)
		assert.Nil(t, u.TeamID)

		var count int64
		require.NoError(t, db.Model(&teamModel.Team{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("creates team named after the manager", func(t *testing.T) {
		db := setupMembershipDB(t)
		m := NewMembership(zap.NewNop().Sugar())
		u := persistUser(t, db, "manager@example.com", userModel.RoleSeller, userModel.RoleManager)

		var team *teamModel.Team
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			team, err = m.EnsureManagerTeam(ctx, tx, u)
			return err
		})
		require.NoError(t, err)
		require.NotNil(t, team)
		assert.Equal(t, "Ana Souza", team.Name)
		assert.Equal(t, u.ID, team.ManagerID)
		require.NotNil(t, u.TeamID)
		assert.Equal(t, team.ID, *u.TeamID)

		var stored userModel.User
		require.NoError(t, db.First(&stored, u.ID).Error)
		require.NotNil(t, stored.TeamID)
		assert.Equal(t, team.ID, *stored.TeamID)
	})

	t.Run("reuses existing team", func(t *testing.T) {
		db := setupMembershipDB(t)
		m := NewMembership(zap.NewNop().Sugar())
		u := persistUser(t, db, "manager@example.com", userModel.RoleManager)

		first, err := m.EnsureManagerTeam(ctx, db, u)
		require.NoError(t, err)

		u.FirstName = "Renamed"
		second, err := m.EnsureManagerTeam(ctx, db, u)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Ana Souza", second.Name)

		var count int64
		require.NoError(t, db.Model(&teamModel.Team{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("rolls back with the caller transaction", func(t *testing.T) {
		db := setupMembershipDB(t)
		m := NewMembership(zap.NewNop().Sugar())
		u := persistUser(t, db, "manager@example.com", userModel.RoleManager)
		failure := errors.New("later step failed")

		err := db.Transaction(func(tx *gorm.DB) error {
			if _, err := m.EnsureManagerTeam(ctx, tx, u); err != nil {
				return err
			}
			return failure
		})
		assert.ErrorIs(t, err, failure)

		var count int64
		require.NoError(t, db.Model(&teamModel.Team{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}
