//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hall-booking/internal/domain/pricing"
	"hall-booking/internal/infra"
	"hall-booking/internal/usecase/queries"
	"hall-booking/tests/common/builder"
	queriesmock "hall-booking/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func quoteSnapshot() *pricing.Snapshot {
	unitSize := 10

	return &pricing.Snapshot{
		Rules: []pricing.SeasonRule{
			{
				ID:        1,
				PriceSet:  "standard",
				StartDate: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
				Weekdays:  pricing.AllWeekdays,
			},
		},
		HallRates: map[string]pricing.HallRate{
			"standard": {
				WeekdayDayRate:       decimal.NewFromInt(2500),
				WeekdayEveningRate:   decimal.NewFromInt(1500),
				FridaySaturdayRate:   decimal.NewFromInt(3000),
				SundayRate:           decimal.NewFromInt(2000),
				CleaningFeeSmall:     decimal.NewFromInt(500),
				CleaningFeeLarge:     decimal.NewFromInt(900),
				AfterHoursSurcharge:  decimal.NewFromInt(600),
				MinHours:             2,
				MinHoursSaturday:     4,
				FoodAlcoholFromHours: 3,
			},
		},
		Extras: map[string]pricing.ExtraSpec{
			"projector": {Code: "projector", Name: "Projector", Scheme: pricing.SchemeFixed},
			"waiter":    {Code: "waiter", Name: "Waiter service", Scheme: pricing.SchemePerUnit, UnitSize: &unitSize},
		},
		ExtraPrices: map[string]map[string]pricing.ExtraPrice{
			"projector": {"standard": {BasePrice: decimal.NewFromInt(1000)}},
			"waiter":    {"standard": {BasePrice: decimal.NewFromInt(800)}},
		},
	}
}

func newQuoteQueries(t *testing.T) (queries.QuoteQueries, *queriesmock.MockHallReadStore, *queriesmock.MockPricingReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	halls := queriesmock.NewMockHallReadStore(ctrl)
	store := queriesmock.NewMockPricingReadStore(ctrl)
	return queries.NewQuoteQueries(halls, store, pricing.NewEngine()), halls, store
}

func TestGetQuote(t *testing.T) {
	ctx := context.Background()
	hall := builder.NewHallBuilder().BuildView()

	t.Run("prices the rental through the snapshot", func(t *testing.T) {
		q, halls, store := newQuoteQueries(t)
		halls.EXPECT().FindByCode(gomock.Any(), "grand-hall").Return(hall, nil)
		store.EXPECT().LoadSnapshot(gomock.Any(), hall.ID).Return(quoteSnapshot(), nil)

		params := builder.NewQuoteBuilder().BuildParams()
		params.Extras = []pricing.ExtraSelection{
			{Code: "projector", Quantity: 1},
			{Code: "waiter", Quantity: 25},
		}

		view, err := q.GetQuote(ctx, params)
		require.NoError(t, err)

		want := builder.NewQuoteBuilder().With(func(b *builder.QuoteBuilder) {
			b.Extras = []queries.QuoteExtraLine{
				{Code: "projector", Name: "Projector", Quantity: 1, Amount: decimal.NewFromInt(1000)},
				{Code: "waiter", Name: "Waiter service", Quantity: 25, Amount: decimal.NewFromInt(2400)},
			}
		}).BuildView()
		if diff := cmp.Diff(want, view, decimalComparer); diff != "" {
			t.Errorf("quote view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown hall code", func(t *testing.T) {
		q, halls, _ := newQuoteQueries(t)
		halls.EXPECT().FindByCode(gomock.Any(), "grand-hall").
			Return(nil, infra.WrapRepoErr("hall not found", nil, infra.KindNotFound))

		_, err := q.GetQuote(ctx, builder.NewQuoteBuilder().BuildParams())
		assert.ErrorIs(t, err, queries.ErrHallNotFound)
	})

	t.Run("unknown extra code fails before pricing", func(t *testing.T) {
		q, halls, store := newQuoteQueries(t)
		halls.EXPECT().FindByCode(gomock.Any(), "grand-hall").Return(hall, nil)
		store.EXPECT().LoadSnapshot(gomock.Any(), hall.ID).Return(quoteSnapshot(), nil)

		params := builder.NewQuoteBuilder().BuildParams()
		params.Extras = []pricing.ExtraSelection{{Code: "fireworks", Quantity: 1}}

		_, err := q.GetQuote(ctx, params)
		assert.ErrorIs(t, err, queries.ErrExtraNotFound)
	})

	t.Run("engine errors pass through unchanged", func(t *testing.T) {
		q, halls, store := newQuoteQueries(t)
		halls.EXPECT().FindByCode(gomock.Any(), "grand-hall").Return(hall, nil)
		store.EXPECT().LoadSnapshot(gomock.Any(), hall.ID).Return(quoteSnapshot(), nil)

		params := builder.NewQuoteBuilder().With(func(b *builder.QuoteBuilder) {
			b.Date = time.Date(2027, time.March, 1, 0, 0, 0, 0, time.UTC)
		}).BuildParams()

		_, err := q.GetQuote(ctx, params)
		assert.ErrorIs(t, err, pricing.ErrNoPriceSet)
	})

	t.Run("snapshot load failure", func(t *testing.T) {
		q, halls, store := newQuoteQueries(t)
		halls.EXPECT().FindByCode(gomock.Any(), "grand-hall").Return(hall, nil)
		store.EXPECT().LoadSnapshot(gomock.Any(), hall.ID).
			Return(nil, infra.WrapRepoErr("query failed", assert.AnError))

		_, err := q.GetQuote(ctx, builder.NewQuoteBuilder().BuildParams())
		assert.ErrorIs(t, err, queries.ErrQuoteFailed)
	})
}
