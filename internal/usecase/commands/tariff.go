package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hall-booking/internal/domain/extra"
	"hall-booking/internal/domain/pricing"
	"hall-booking/internal/domain/tariff"
	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/errs"
)

var (
	ErrPriceSetNotFound   = errs.New("price set not found")
	ErrSeasonRuleNotFound = errs.New("season rule not found")
	ErrPriceSetInUse      = errs.New("price set is referenced and cannot be deleted")
)

type TariffRepository interface {
	CreatePriceSet(ctx context.Context, db infra.DBTX, ps *tariff.PriceSet) (uuid.UUID, error)
	DeletePriceSet(ctx context.Context, db infra.DBTX, id uuid.UUID) error
	CreateSeasonRule(ctx context.Context, db infra.DBTX, rule *tariff.SeasonRule) (int64, error)
	DeleteSeasonRule(ctx context.Context, db infra.DBTX, id int64) error
	UpsertRateCard(ctx context.Context, db infra.DBTX, card *tariff.RateCard) (uuid.UUID, error)
	DeleteRateCard(ctx context.Context, db infra.DBTX, hallID, priceSetID uuid.UUID) error
	UpsertExtraPrice(ctx context.Context, db infra.DBTX, price *extra.Price) (uuid.UUID, error)
	DeleteExtraPrice(ctx context.Context, db infra.DBTX, serviceID, priceSetID uuid.UUID) error
}

type CreatePriceSetParams struct {
	Code string
	Name string
}

type CreateSeasonRuleParams struct {
	PriceSetID  uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	Weekdays    []int
	Priority    int
	Description string
}

type PutRateCardParams struct {
	HallID     uuid.UUID
	PriceSetID uuid.UUID
	Rate       pricing.HallRate
}

type PutExtraPriceParams struct {
	ServiceID           uuid.UUID
	PriceSetID          uuid.UUID
	BasePrice           decimal.Decimal
	AdditionalUnitPrice *decimal.Decimal
	UnitLabel           string
}

type TariffCommands interface {
	CreatePriceSet(ctx context.Context, params CreatePriceSetParams) (uuid.UUID, error)
	DeletePriceSet(ctx context.Context, id uuid.UUID) error
	CreateSeasonRule(ctx context.Context, params CreateSeasonRuleParams) (int64, error)
	DeleteSeasonRule(ctx context.Context, id int64) error
	PutRateCard(ctx context.Context, params PutRateCardParams) (uuid.UUID, error)
	DeleteRateCard(ctx context.Context, hallID, priceSetID uuid.UUID) error
	PutExtraPrice(ctx context.Context, params PutExtraPriceParams) (uuid.UUID, error)
	DeleteExtraPrice(ctx context.Context, serviceID, priceSetID uuid.UUID) error
}

type tariffCommandsImpl struct {
	db   infra.DBTX
	repo TariffRepository
}

func NewTariffCommands(db infra.DBTX, repo TariffRepository) TariffCommands {
	return &tariffCommandsImpl{db: db, repo: repo}
}

func (t *tariffCommandsImpl) CreatePriceSet(ctx context.Context, params CreatePriceSetParams) (uuid.UUID, error) {
	entity, err := tariff.NewPriceSet(uuid.Nil, params.Code, params.Name)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := t.repo.CreatePriceSet(ctx, t.db, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateCode
		}
		return uuid.Nil, errs.Mark(err, ErrStorageFailed)
	}
	return id, nil
}

// DeletePriceSet refuses to remove a set that rate rows, season rules or
// extra prices still reference; quotes already issued keep their code.
func (t *tariffCommandsImpl) DeletePriceSet(ctx context.Context, id uuid.UUID) error {
	if err := t.repo.DeletePriceSet(ctx, t.db, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrPriceSetNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrPriceSetInUse
		default:
			return errs.Mark(err, ErrStorageFailed)
		}
	}
	return nil
}

func (t *tariffCommandsImpl) CreateSeasonRule(ctx context.Context, params CreateSeasonRuleParams) (int64, error) {
	rule, err := tariff.NewSeasonRule(
		params.PriceSetID,
		params.StartDate,
		params.EndDate,
		params.Weekdays,
		params.Priority,
		params.Description,
	)
	if err != nil {
		return 0, errs.Mark(err, ErrDomainValidation)
	}

	id, err := t.repo.CreateSeasonRule(ctx, t.db, rule)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return 0, ErrPriceSetNotFound
		}
		return 0, errs.Mark(err, ErrStorageFailed)
	}
	return id, nil
}

func (t *tariffCommandsImpl) DeleteSeasonRule(ctx context.Context, id int64) error {
	if err := t.repo.DeleteSeasonRule(ctx, t.db, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSeasonRuleNotFound
		}
		return errs.Mark(err, ErrStorageFailed)
	}
	return nil
}

func (t *tariffCommandsImpl) PutRateCard(ctx context.Context, params PutRateCardParams) (uuid.UUID, error) {
	card, err := tariff.NewRateCard(uuid.Nil, params.HallID, params.PriceSetID, params.Rate)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := t.repo.UpsertRateCard(ctx, t.db, card)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, ErrHallNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrStorageFailed)
	}
	return id, nil
}

func (t *tariffCommandsImpl) DeleteRateCard(ctx context.Context, hallID, priceSetID uuid.UUID) error {
	if err := t.repo.DeleteRateCard(ctx, t.db, hallID, priceSetID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrHallNotFound
		}
		return errs.Mark(err, ErrStorageFailed)
	}
	return nil
}

func (t *tariffCommandsImpl) PutExtraPrice(ctx context.Context, params PutExtraPriceParams) (uuid.UUID, error) {
	price, err := extra.NewPrice(
		uuid.Nil,
		params.ServiceID,
		params.PriceSetID,
		params.BasePrice,
		params.AdditionalUnitPrice,
		params.UnitLabel,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := t.repo.UpsertExtraPrice(ctx, t.db, price)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, ErrExtraNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrStorageFailed)
	}
	return id, nil
}

func (t *tariffCommandsImpl) DeleteExtraPrice(ctx context.Context, serviceID, priceSetID uuid.UUID) error {
	if err := t.repo.DeleteExtraPrice(ctx, t.db, serviceID, priceSetID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrExtraNotFound
		}
		return errs.Mark(err, ErrStorageFailed)
	}
	return nil
}
