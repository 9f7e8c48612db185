package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"hall-booking/internal/domain/user"
	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/clock"
	"hall-booking/internal/pkg/errs"
	"hall-booking/internal/pkg/jwt"
	"hall-booking/internal/pkg/password"
	"hall-booking/internal/usecase/queries"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	Role        string
	AccessToken string
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, db infra.DBTX, id uuid.UUID, at time.Time) error
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	db         infra.DBTX
	userRepo   UserRepository
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(
	db infra.DBTX,
	userRepo UserRepository,
	readStore queries.UserReadStore,
	jwtService *jwt.Service,
	clock clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		db:         db,
		userRepo:   userRepo,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clock,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	view, storedHash, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Keep the response indistinguishable from a wrong password.
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := password.ComparePassword(storedHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	// Last-login bookkeeping must not block a successful login.
	if err := a.userRepo.UpdateLastLogin(ctx, a.db, view.ID, a.clock.Now()); err != nil {
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err)
	}

	return &LoginResult{
		UserID:      view.ID,
		Role:        role.String(),
		AccessToken: token,
	}, nil
}
