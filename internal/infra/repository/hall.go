package repository

import (
	"context"

	"github.com/google/uuid"

	"hall-booking/internal/domain/hall"
	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/pgconv"
)

type HallRepository struct{}

func NewHallRepository() *HallRepository {
	return &HallRepository{}
}

const createHallSQL = `
INSERT INTO halls (id, code, name, description, capacity)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

func (r *HallRepository) Create(ctx context.Context, db infra.DBTX, h *hall.Hall) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createHallSQL,
		h.ID(), h.Code(), h.Name(), h.Description(), h.Capacity(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create hall", err, infra.KindFromPgErr(err))
	}
	return id, nil
}

const updateHallSQL = `
UPDATE halls
SET code = $2, name = $3, description = $4, capacity = $5, updated_at = now()
WHERE id = $1
`

func (r *HallRepository) Update(ctx context.Context, db infra.DBTX, h *hall.Hall) error {
	tag, err := db.Exec(ctx, updateHallSQL,
		h.ID(), h.Code(), h.Name(), h.Description(), h.Capacity(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update hall", err, infra.KindFromPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hall not found", pgconv.ErrNoRowsAffected, infra.KindNotFound)
	}
	return nil
}

const deleteHallSQL = `DELETE FROM halls WHERE id = $1`

func (r *HallRepository) Delete(ctx context.Context, db infra.DBTX, id uuid.UUID) error {
	tag, err := db.Exec(ctx, deleteHallSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete hall", err, infra.KindFromPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hall not found", pgconv.ErrNoRowsAffected, infra.KindNotFound)
	}
	return nil
}
