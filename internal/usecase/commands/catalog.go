package commands

import (
	"context"

	"github.com/google/uuid"

	"hall-booking/internal/domain/extra"
	"hall-booking/internal/domain/hall"
	"hall-booking/internal/domain/pricing"
	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/errs"
	"hall-booking/internal/pkg/patch"
	"hall-booking/internal/usecase/queries"
)

var (
	ErrHallNotFound     = errs.New("hall not found")
	ErrExtraNotFound    = errs.New("extra service not found")
	ErrDuplicateCode    = errs.New("code already in use")
	ErrDomainValidation = errs.New("domain validation error")
	ErrStorageFailed    = errs.New("storage operation failed")
	ErrEntityInUse      = errs.New("entity is referenced and cannot be deleted")
)

type HallRepository interface {
	Create(ctx context.Context, db infra.DBTX, h *hall.Hall) (uuid.UUID, error)
	Update(ctx context.Context, db infra.DBTX, h *hall.Hall) error
	Delete(ctx context.Context, db infra.DBTX, id uuid.UUID) error
}

type ExtraRepository interface {
	CreateService(ctx context.Context, db infra.DBTX, s *extra.Service) (uuid.UUID, error)
	UpdateService(ctx context.Context, db infra.DBTX, s *extra.Service) error
	DeleteService(ctx context.Context, db infra.DBTX, id uuid.UUID) error
}

type CreateHallParams struct {
	Code        string
	Name        string
	Description string
	Capacity    int
}

type UpdateHallParams struct {
	Name        *string
	Description *string
	Capacity    *int
}

type CreateExtraParams struct {
	Code     string
	Name     string
	Scheme   string
	UnitSize *int
}

type UpdateExtraParams struct {
	Name     *string
	Scheme   *string
	UnitSize *int
}

type CatalogCommands interface {
	CreateHall(ctx context.Context, params CreateHallParams) (uuid.UUID, error)
	UpdateHall(ctx context.Context, id uuid.UUID, params UpdateHallParams) error
	DeleteHall(ctx context.Context, id uuid.UUID) error
	CreateExtra(ctx context.Context, params CreateExtraParams) (uuid.UUID, error)
	UpdateExtra(ctx context.Context, id uuid.UUID, params UpdateExtraParams) error
	DeleteExtra(ctx context.Context, id uuid.UUID) error
}

type catalogCommandsImpl struct {
	db         infra.DBTX
	hallRepo   HallRepository
	extraRepo  ExtraRepository
	hallViews  queries.HallReadStore
	extraViews queries.ExtraReadStore
}

func NewCatalogCommands(db infra.DBTX, hallRepo HallRepository, extraRepo ExtraRepository, hallViews queries.HallReadStore, extraViews queries.ExtraReadStore) CatalogCommands {
	return &catalogCommandsImpl{
		db:         db,
		hallRepo:   hallRepo,
		extraRepo:  extraRepo,
		hallViews:  hallViews,
		extraViews: extraViews,
	}
}

func (c *catalogCommandsImpl) CreateHall(ctx context.Context, params CreateHallParams) (uuid.UUID, error) {
	entity, err := hall.NewHall(uuid.Nil, params.Code, params.Name, params.Description, params.Capacity)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := c.hallRepo.Create(ctx, c.db, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateCode
		}
		return uuid.Nil, errs.Mark(err, ErrStorageFailed)
	}
	return id, nil
}

func (c *catalogCommandsImpl) UpdateHall(ctx context.Context, id uuid.UUID, params UpdateHallParams) error {
	current, err := c.hallViews.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrHallNotFound
		}
		return errs.Mark(err, ErrStorageFailed)
	}

	entity, err := hall.NewHall(
		current.ID,
		current.Code,
		patch.Coalesce(params.Name, current.Name),
		patch.Coalesce(params.Description, current.Description),
		patch.Coalesce(params.Capacity, current.Capacity),
	)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	if err := c.hallRepo.Update(ctx, c.db, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrHallNotFound
		}
		return errs.Mark(err, ErrStorageFailed)
	}
	return nil
}

func (c *catalogCommandsImpl) DeleteHall(ctx context.Context, id uuid.UUID) error {
	if err := c.hallRepo.Delete(ctx, c.db, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrHallNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrEntityInUse
		default:
			return errs.Mark(err, ErrStorageFailed)
		}
	}
	return nil
}

func (c *catalogCommandsImpl) CreateExtra(ctx context.Context, params CreateExtraParams) (uuid.UUID, error) {
	entity, err := extra.NewService(uuid.Nil, params.Code, params.Name, pricing.Scheme(params.Scheme), params.UnitSize)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := c.extraRepo.CreateService(ctx, c.db, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateCode
		}
		return uuid.Nil, errs.Mark(err, ErrStorageFailed)
	}
	return id, nil
}

func (c *catalogCommandsImpl) UpdateExtra(ctx context.Context, id uuid.UUID, params UpdateExtraParams) error {
	current, err := c.extraViews.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrExtraNotFound
		}
		return errs.Mark(err, ErrStorageFailed)
	}

	unitSize := current.UnitSize
	if params.UnitSize != nil {
		unitSize = params.UnitSize
	}

	entity, err := extra.NewService(
		id,
		current.Code,
		patch.Coalesce(params.Name, current.Name),
		pricing.Scheme(patch.Coalesce(params.Scheme, current.Scheme)),
		unitSize,
	)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	if err := c.extraRepo.UpdateService(ctx, c.db, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrExtraNotFound
		}
		return errs.Mark(err, ErrStorageFailed)
	}
	return nil
}

func (c *catalogCommandsImpl) DeleteExtra(ctx context.Context, id uuid.UUID) error {
	if err := c.extraRepo.DeleteService(ctx, c.db, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrExtraNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrEntityInUse
		default:
			return errs.Mark(err, ErrStorageFailed)
		}
	}
	return nil
}
