package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasher(t *testing.T) {
	_, err := NewBcryptHasher(3)
	assert.Error(t, err)

	_, err = NewBcryptHasher(32)
	assert.Error(t, err)

	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotNil(t, h)
}

func TestBcryptHasher(t *testing.T) {
	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("hash verifies", func(t *testing.T) {
		hash, err := h.Encrypt("s3cret")
		require.NoError(t, err)

		assert.NotEqual(t, "s3cret", hash)
		assert.True(t, h.Compare(hash, "s3cret"))
		assert.False(t, h.Compare(hash, "wrong"))
	})

	t.Run("hashes are salted", func(t *testing.T) {
		a, err := h.Encrypt("same")
		require.NoError(t, err)
		b, err := h.Encrypt("same")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("cost is applied", func(t *testing.T) {
		hash, err := h.Encrypt("pw")
		require.NoError(t, err)
		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.MinCost, cost)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := h.Encrypt("")
		assert.ErrorIs(t, err, ErrEmptyPassword)
	})

	t.Run("malformed hash never matches", func(t *testing.T) {
		assert.False(t, h.Compare("not-a-hash", "pw"))
	})
}
