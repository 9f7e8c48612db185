package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/pgconv"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const updateLastLoginSQL = `
UPDATE users
SET last_login = $2, updated_at = now()
WHERE id = $1
`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, db infra.DBTX, id uuid.UUID, at time.Time) error {
	tag, err := db.Exec(ctx, updateLastLoginSQL, id, pgtype.Timestamptz{Time: at, Valid: true})
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", pgconv.ErrNoRowsAffected, infra.KindNotFound)
	}
	return nil
}
