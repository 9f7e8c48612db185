package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hall-booking/internal/domain/pricing"
	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/errs"
)

var (
	ErrHallNotFound  = errs.New("hall not found")
	ErrExtraNotFound = errs.New("extra service not found")
	ErrQuoteFailed   = errs.New("quote computation failed")
)

type QuoteParams struct {
	HallCode   string
	Date       time.Time
	StartMin   int
	EndMin     int
	GuestCount int
	Extras     []pricing.ExtraSelection
}

// PricingReadStore loads the read-only pricing snapshot for one hall:
// all season rules, the hall's rate card per price set, and every extra
// price keyed by price set.
type PricingReadStore interface {
	LoadSnapshot(ctx context.Context, hallID uuid.UUID) (*pricing.Snapshot, error)
}

type HallReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HallView, error)
	FindByCode(ctx context.Context, code string) (*HallView, error)
	List(ctx context.Context) ([]*HallView, error)
}

type QuoteQueries interface {
	GetQuote(ctx context.Context, params QuoteParams) (*QuoteView, error)
}

type quoteQueriesImpl struct {
	halls   HallReadStore
	pricing PricingReadStore
	engine  *pricing.Engine
}

func NewQuoteQueries(halls HallReadStore, pricingStore PricingReadStore, engine *pricing.Engine) QuoteQueries {
	return &quoteQueriesImpl{
		halls:   halls,
		pricing: pricingStore,
		engine:  engine,
	}
}

func (q *quoteQueriesImpl) GetQuote(ctx context.Context, params QuoteParams) (*QuoteView, error) {
	hall, err := q.halls.FindByCode(ctx, params.HallCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHallNotFound
		}
		return nil, errs.Mark(err, ErrQuoteFailed)
	}

	snap, err := q.pricing.LoadSnapshot(ctx, hall.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrQuoteFailed)
	}

	// Unknown extra codes are a caller mistake, not a pricing
	// configuration gap; report them before quoting.
	for _, sel := range params.Extras {
		if _, ok := snap.Extras[sel.Code]; !ok {
			return nil, ErrExtraNotFound
		}
	}

	quote, err := q.engine.Quote(*snap, pricing.QuoteRequest{
		Date:       params.Date,
		StartMin:   params.StartMin,
		EndMin:     params.EndMin,
		GuestCount: params.GuestCount,
		Extras:     params.Extras,
	})
	if err != nil {
		return nil, err
	}

	lines := make([]QuoteExtraLine, len(quote.Extras))
	for i, l := range quote.Extras {
		lines[i] = QuoteExtraLine{
			Code:     l.Code,
			Name:     l.Name,
			Quantity: l.Quantity,
			Amount:   l.Amount,
		}
	}

	return &QuoteView{
		HallCode:            params.HallCode,
		PriceSet:            quote.PriceSet,
		BaseCharge:          quote.BaseCharge,
		CleaningFee:         quote.CleaningFee,
		AfterHoursSurcharge: quote.AfterHoursSurcharge,
		BilledHours:         quote.BilledHours,
		FoodAlcoholAllowed:  quote.FoodAlcoholAllowed,
		Extras:              lines,
		Total:               quote.Total,
	}, nil
}
