//go:build unit

package user_test

import (
	"testing"

	"hall-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("valid addresses", func(t *testing.T) {
		for _, s := range []string{"a@b.co", "first.last+tag@example.org", " padded@example.com "} {
			email, err := user.NewEmail(s)
			require.NoError(t, err, s)
			assert.NotEmpty(t, email.Value())
		}
	})

	t.Run("invalid addresses", func(t *testing.T) {
		for _, s := range []string{"", "plain", "missing@tld", "@example.com", "user@.com"} {
			_, err := user.NewEmail(s)
			assert.ErrorIs(t, err, user.ErrInvalidEmail, s)
		}
	})
}

func TestNewPassword(t *testing.T) {
	t.Run("eight characters is the minimum", func(t *testing.T) {
		_, err := user.NewPassword("12345678")
		assert.NoError(t, err)
	})

	t.Run("seven characters fails", func(t *testing.T) {
		_, err := user.NewPassword("1234567")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestNewRole(t *testing.T) {
	t.Run("known roles", func(t *testing.T) {
		for _, s := range []string{"viewer", "operator", "admin"} {
			role, err := user.NewRole(s)
			require.NoError(t, err)
			assert.Equal(t, s, role.String())
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := user.NewRole("superuser")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("operator@example.com")
	require.NoError(t, err)

	u := user.NewUser(email, "hashed", user.RoleOperator)

	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, email, u.Email())
	assert.Equal(t, user.RoleOperator, u.Role())
	assert.True(t, u.IsActive())
	assert.Nil(t, u.LastLogin())
}
