package queries

import (
	"context"

	"github.com/google/uuid"

	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/errs"
)

var (
	ErrPriceSetNotFound = errs.New("price set not found")
	ErrCatalogFailed    = errs.New("catalog read failed")
)

type ExtraReadStore interface {
	List(ctx context.Context) ([]*ExtraServiceView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ExtraServiceView, error)
	ListPrices(ctx context.Context, serviceID uuid.UUID) ([]*ExtraPriceView, error)
}

type TariffReadStore interface {
	ListPriceSets(ctx context.Context) ([]*PriceSetView, error)
	FindPriceSetByCode(ctx context.Context, code string) (*PriceSetView, error)
	ListSeasonRules(ctx context.Context) ([]*SeasonRuleView, error)
	ListRateCards(ctx context.Context, hallID uuid.UUID) ([]*RateCardView, error)
}

// CatalogQueries serves the public site's hall/extras listings and the
// admin panel's tariff views.
type CatalogQueries interface {
	ListHalls(ctx context.Context) ([]*HallView, error)
	GetHallByCode(ctx context.Context, code string) (*HallView, error)
	ListExtras(ctx context.Context) ([]*ExtraServiceView, error)
	ListExtraPrices(ctx context.Context, serviceID uuid.UUID) ([]*ExtraPriceView, error)
	ListPriceSets(ctx context.Context) ([]*PriceSetView, error)
	ListSeasonRules(ctx context.Context) ([]*SeasonRuleView, error)
	ListRateCards(ctx context.Context, hallID uuid.UUID) ([]*RateCardView, error)
}

type catalogQueriesImpl struct {
	halls   HallReadStore
	extras  ExtraReadStore
	tariffs TariffReadStore
}

func NewCatalogQueries(halls HallReadStore, extras ExtraReadStore, tariffs TariffReadStore) CatalogQueries {
	return &catalogQueriesImpl{
		halls:   halls,
		extras:  extras,
		tariffs: tariffs,
	}
}

func (c *catalogQueriesImpl) ListHalls(ctx context.Context) ([]*HallView, error) {
	halls, err := c.halls.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogFailed)
	}
	return halls, nil
}

func (c *catalogQueriesImpl) GetHallByCode(ctx context.Context, code string) (*HallView, error) {
	hall, err := c.halls.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHallNotFound
		}
		return nil, errs.Mark(err, ErrCatalogFailed)
	}
	return hall, nil
}

func (c *catalogQueriesImpl) ListExtras(ctx context.Context) ([]*ExtraServiceView, error) {
	extras, err := c.extras.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogFailed)
	}
	return extras, nil
}

func (c *catalogQueriesImpl) ListExtraPrices(ctx context.Context, serviceID uuid.UUID) ([]*ExtraPriceView, error) {
	if _, err := c.extras.FindByID(ctx, serviceID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrExtraNotFound
		}
		return nil, errs.Mark(err, ErrCatalogFailed)
	}

	prices, err := c.extras.ListPrices(ctx, serviceID)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogFailed)
	}
	return prices, nil
}

func (c *catalogQueriesImpl) ListPriceSets(ctx context.Context) ([]*PriceSetView, error) {
	sets, err := c.tariffs.ListPriceSets(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogFailed)
	}
	return sets, nil
}

func (c *catalogQueriesImpl) ListSeasonRules(ctx context.Context) ([]*SeasonRuleView, error) {
	rules, err := c.tariffs.ListSeasonRules(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogFailed)
	}
	return rules, nil
}

func (c *catalogQueriesImpl) ListRateCards(ctx context.Context, hallID uuid.UUID) ([]*RateCardView, error) {
	cards, err := c.tariffs.ListRateCards(ctx, hallID)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogFailed)
	}
	return cards, nil
}
