package repository

import (
	"context"

	"github.com/google/uuid"

	"hall-booking/internal/domain/extra"
	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/pgconv"
)

type ExtraRepository struct{}

func NewExtraRepository() *ExtraRepository {
	return &ExtraRepository{}
}

const createExtraServiceSQL = `
INSERT INTO extra_services (id, code, name, scheme, unit_size)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

func (r *ExtraRepository) CreateService(ctx context.Context, db infra.DBTX, s *extra.Service) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createExtraServiceSQL,
		s.ID(), s.Code(), s.Name(), string(s.Scheme()),
		pgconv.Int32PtrToPgtype(intPtrToInt32Ptr(s.UnitSize())),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create extra service", err, infra.KindFromPgErr(err))
	}
	return id, nil
}

const updateExtraServiceSQL = `
UPDATE extra_services
SET code = $2, name = $3, scheme = $4, unit_size = $5, updated_at = now()
WHERE id = $1
`

func (r *ExtraRepository) UpdateService(ctx context.Context, db infra.DBTX, s *extra.Service) error {
	tag, err := db.Exec(ctx, updateExtraServiceSQL,
		s.ID(), s.Code(), s.Name(), string(s.Scheme()),
		pgconv.Int32PtrToPgtype(intPtrToInt32Ptr(s.UnitSize())),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update extra service", err, infra.KindFromPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("extra service not found", pgconv.ErrNoRowsAffected, infra.KindNotFound)
	}
	return nil
}

const deleteExtraServiceSQL = `DELETE FROM extra_services WHERE id = $1`

func (r *ExtraRepository) DeleteService(ctx context.Context, db infra.DBTX, id uuid.UUID) error {
	tag, err := db.Exec(ctx, deleteExtraServiceSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete extra service", err, infra.KindFromPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("extra service not found", pgconv.ErrNoRowsAffected, infra.KindNotFound)
	}
	return nil
}
