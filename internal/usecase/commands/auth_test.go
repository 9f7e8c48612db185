//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/clock"
	"hall-booking/internal/pkg/jwt"
	"hall-booking/internal/pkg/password"
	"hall-booking/internal/usecase/commands"
	"hall-booking/tests/common/builder"
	commandsmock "hall-booking/tests/mock/commands"
	queriesmock "hall-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	auth     commands.AuthCommands
	userRepo *commandsmock.MockUserRepository
	store    *queriesmock.MockUserReadStore
	jwt      *jwt.Service
	now      time.Time
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	userRepo := commandsmock.NewMockUserRepository(ctrl)
	store := queriesmock.NewMockUserReadStore(ctrl)
	jwtService := jwt.NewService("test-secret-key", time.Hour)
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

	return &authFixture{
		auth:     commands.NewAuthCommands(nil, userRepo, store, jwtService, clock.NewMockClock(now)),
		userRepo: userRepo,
		store:    store,
		jwt:      jwtService,
		now:      now,
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	user := builder.NewUserBuilder()
	hash, err := password.HashPassword(user.Password)
	require.NoError(t, err)

	t.Run("issues a token and records the login", func(t *testing.T) {
		f := newAuthFixture(t)
		f.store.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user.BuildView(), hash, nil)
		f.userRepo.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), user.ID, f.now).Return(nil)

		result, err := f.auth.Login(ctx, user.Email, user.Password)
		require.NoError(t, err)
		assert.Equal(t, user.ID, result.UserID)
		assert.Equal(t, user.Role, result.Role)

		claims, err := f.jwt.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
	})

	t.Run("unknown email reads as bad credentials", func(t *testing.T) {
		f := newAuthFixture(t)
		f.store.EXPECT().FindByEmail(gomock.Any(), user.Email).
			Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, err := f.auth.Login(ctx, user.Email, user.Password)
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.store.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user.BuildView(), hash, nil)

		_, err := f.auth.Login(ctx, user.Email, "not-the-password")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		f := newAuthFixture(t)
		inactive := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
			b.IsActive = false
		})
		f.store.EXPECT().FindByEmail(gomock.Any(), inactive.Email).Return(inactive.BuildView(), hash, nil)

		_, err := f.auth.Login(ctx, inactive.Email, inactive.Password)
		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})

	t.Run("read store failure", func(t *testing.T) {
		f := newAuthFixture(t)
		f.store.EXPECT().FindByEmail(gomock.Any(), user.Email).
			Return(nil, "", infra.WrapRepoErr("query failed", assert.AnError))

		_, err := f.auth.Login(ctx, user.Email, user.Password)
		assert.ErrorIs(t, err, commands.ErrAuthenticationFailed)
	})

	t.Run("last login bookkeeping failure does not block login", func(t *testing.T) {
		f := newAuthFixture(t)
		f.store.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user.BuildView(), hash, nil)
		f.userRepo.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), user.ID, f.now).
			Return(infra.WrapRepoErr("update failed", assert.AnError))

		result, err := f.auth.Login(ctx, user.Email, user.Password)
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
	})
}
