package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/pulse/internal/models"
)

// memUserStorage is an in-memory UserStorage for tests.
type memUserStorage struct {
	byEmail map[string]*models.User
}

func newMemUserStorage() *memUserStorage {
	return &memUserStorage{byEmail: make(map[string]*models.User)}
}

func (m *memUserStorage) CreateUser(_ context.Context, user *models.User) error {
	m.byEmail[user.Email] = user
	return nil
}

func (m *memUserStorage) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	return m.byEmail[email], nil
}

func (m *memUserStorage) GetUserByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	authenticator := NewPasswordAuthenticator(newMemUserStorage())

	user, err := authenticator.Register(ctx, "alice@example.com", "Alice", "sup3r-secret")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	assert.NotEqual(t, "sup3r-secret", user.PasswordHash, "password must be stored hashed")

	t.Run("correct password authenticates", func(t *testing.T) {
		got, err := authenticator.Authenticate(ctx, "alice@example.com", "sup3r-secret")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		_, err := authenticator.Authenticate(ctx, "alice@example.com", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email rejected", func(t *testing.T) {
		_, err := authenticator.Authenticate(ctx, "bob@example.com", "sup3r-secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := authenticator.Register(ctx, "alice@example.com", "Alice 2", "another-secret")
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("short password rejected", func(t *testing.T) {
		_, err := authenticator.Register(ctx, "carol@example.com", "Carol", "short")
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("email is case-insensitive", func(t *testing.T) {
		got, err := authenticator.Authenticate(ctx, "  ALICE@Example.com ", "sup3r-secret")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)

		_, err = authenticator.Register(ctx, "ALICE@example.com", "Alice 3", "another-secret")
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("malformed email rejected", func(t *testing.T) {
		for _, email := range []string{"", "   ", "no-at-sign"} {
			_, err := authenticator.Register(ctx, email, "X", "long-enough-pass")
			assert.ErrorIs(t, err, ErrInvalidEmail)
		}
	})
}

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret-key-32-bytes-long!!!", time.Hour)
	user := &models.User{ID: "user-1", Email: "alice@example.com"}

	token, err := manager.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestJWTManagerRejectsBadTokens(t *testing.T) {
	manager := NewJWTManager("test-secret-key-32-bytes-long!!!", time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := manager.Validate("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		other := NewJWTManager("a-completely-different-secret!!!", time.Hour)
		token, err := other.Generate(&models.User{ID: "user-1"})
		require.NoError(t, err)

		_, err = manager.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewJWTManager("test-secret-key-32-bytes-long!!!", -time.Minute)
		token, err := expired.Generate(&models.User{ID: "user-1"})
		require.NoError(t, err)

		_, err = manager.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
