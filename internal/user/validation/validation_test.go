package validation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/deopraglabs/prysme/internal/user/model"
)

type MockLookup struct {
	mock.Mock
}

func (m *MockLookup) FindByEmailAndIDNot(ctx context.Context, email string, id uint) (*model.User, error) {
	args := m.Called(ctx, email, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockLookup) FindByPhoneNumberAndIDNot(ctx context.Context, phone string, id uint) (*model.User, error) {
	args := m.Called(ctx, phone, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func validCandidate() *model.User {
	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	return &model.User{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: "5511999999999",
		BirthDate:   &birth,
		Gender:      model.GenderFemale,
	}
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid candidate", func(t *testing.T) {
		lookup := new(MockLookup)
		lookup.On("FindByEmailAndIDNot", ctx, "ada@example.com", uint(0)).Return(nil, nil)
		lookup.On("FindByPhoneNumberAndIDNot", ctx, "5511999999999", uint(0)).Return(nil, nil)

		violations, err := Validate(ctx, validCandidate(), lookup)

		require.NoError(t, err)
		assert.Empty(t, violations)
		lookup.AssertExpectations(t)
	})

	t.Run("empty candidate reports every required field in order", func(t *testing.T) {
		lookup := new(MockLookup)

		violations, err := Validate(ctx, &model.User{}, lookup)

		require.NoError(t, err)
		assert.Equal(t, []string{
			MsgFirstNameRequired,
			MsgLastNameRequired,
			MsgEmailRequired,
			MsgBirthDateRequired,
			MsgGenderRequired,
			MsgPhoneRequired,
		}, violations)
		lookup.AssertNotCalled(t, "FindByEmailAndIDNot", mock.Anything, mock.Anything, mock.Anything)
		lookup.AssertNotCalled(t, "FindByPhoneNumberAndIDNot", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("whitespace counts as empty", func(t *testing.T) {
		c := validCandidate()
		c.FirstName = "   "
		c.PhoneNumber = "\t"

		lookup := new(MockLookup)
		lookup.On("FindByEmailAndIDNot", ctx, c.Email, uint(0)).Return(nil, nil)

		violations, err := Validate(ctx, c, lookup)

		require.NoError(t, err)
		assert.Equal(t, []string{MsgFirstNameRequired, MsgPhoneRequired}, violations)
	})

	t.Run("taken email and phone", func(t *testing.T) {
		c := validCandidate()
		c.ID = 5

		lookup := new(MockLookup)
		lookup.On("FindByEmailAndIDNot", ctx, c.Email, uint(5)).Return(&model.User{ID: 6}, nil)
		lookup.On("FindByPhoneNumberAndIDNot", ctx, c.PhoneNumber, uint(5)).Return(&model.User{ID: 7}, nil)

		violations, err := Validate(ctx, c, lookup)

		require.NoError(t, err)
		assert.Equal(t, []string{MsgEmailTaken, MsgPhoneTaken}, violations)
	})

	t.Run("missing gender with taken phone", func(t *testing.T) {
		c := validCandidate()
		c.Gender = ""

		lookup := new(MockLookup)
		lookup.On("FindByEmailAndIDNot", ctx, c.Email, uint(0)).Return(nil, nil)
		lookup.On("FindByPhoneNumberAndIDNot", ctx, c.PhoneNumber, uint(0)).Return(&model.User{ID: 2}, nil)

		violations, err := Validate(ctx, c, lookup)

		require.NoError(t, err)
		assert.Equal(t, []string{MsgGenderRequired, MsgPhoneTaken}, violations)
	})

	t.Run("store failure aborts", func(t *testing.T) {
		storeErr := errors.New("connection reset")
		lookup := new(MockLookup)
		lookup.On("FindByEmailAndIDNot", ctx, mock.Anything, mock.Anything).Return(nil, storeErr)

		violations, err := Validate(ctx, validCandidate(), lookup)

		assert.ErrorIs(t, err, storeErr)
		assert.Nil(t, violations)
		lookup.AssertNotCalled(t, "FindByPhoneNumberAndIDNot", mock.Anything, mock.Anything, mock.Anything)
	})
}
