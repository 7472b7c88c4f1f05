package security

import (
	"SocialNetwork/internal/api/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *JWTManager {
	return NewJWTManager(config.JWTConfig{
		Secret:     "test-secret",
		Issuer:     "socialnetwork-test",
		AccessTTL:  5 * time.Minute,
		RefreshTTL: time.Hour,
	})
}

func TestJWTManager(t *testing.T) {
	t.Run("pair round trip", func(t *testing.T) {
		m := newTestManager()
		pair, err := m.GenerateTokenPair(42)
		require.NoError(t, err)

		claims, err := m.ValidateToken(pair.Access, TokenTypeAccess)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), claims.UserID)

		claims, err = m.ValidateToken(pair.Refresh, TokenTypeRefresh)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), claims.UserID)
	})

	t.Run("token type mismatch", func(t *testing.T) {
		m := newTestManager()
		pair, err := m.GenerateTokenPair(7)
		require.NoError(t, err)

		_, err = m.ValidateToken(pair.Refresh, TokenTypeAccess)
		assert.ErrorIs(t, err, ErrTokenType)
	})

	t.Run("expired", func(t *testing.T) {
		m := newTestManager()
		issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		m.now = func() time.Time { return issued }
		token, err := m.GenerateAccess(1)
		require.NoError(t, err)

		m.now = func() time.Time { return issued.Add(10 * time.Minute) }
		_, err = m.ValidateToken(token, TokenTypeAccess)
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := newTestManager().GenerateAccess(1)
		require.NoError(t, err)

		other := NewJWTManager(config.JWTConfig{Secret: "other", Issuer: "socialnetwork-test", AccessTTL: time.Minute})
		_, err = other.ValidateToken(token, TokenTypeAccess)
		assert.Error(t, err)
	})
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("LongEnough1")
	require.NoError(t, err)
	assert.NotEqual(t, "LongEnough1", hash)

	assert.NoError(t, CheckPasswordHash("LongEnough1", hash))
	assert.ErrorIs(t, CheckPasswordHash("WrongOne1", hash), ErrPasswordMismatch)

	_, err = HashPassword("")
	assert.Error(t, err)
}
