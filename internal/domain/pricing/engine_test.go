//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"hall-booking/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() pricing.Snapshot {
	unitSize := 10
	additional := decimal.NewFromInt(250)

	return pricing.Snapshot{
		Rules: []pricing.SeasonRule{
			{
				ID:        1,
				PriceSet:  "standard",
				StartDate: date(2026, time.January, 1),
				EndDate:   date(2026, time.December, 31),
				Weekdays:  pricing.AllWeekdays,
				Priority:  0,
			},
			{
				ID:        2,
				PriceSet:  "summer",
				StartDate: date(2026, time.July, 1),
				EndDate:   date(2026, time.August, 31),
				Weekdays:  pricing.AllWeekdays,
				Priority:  10,
			},
		},
		HallRates: map[string]pricing.HallRate{
			"standard": testRate(),
		},
		Extras: map[string]pricing.ExtraSpec{
			"projector": {Code: "projector", Name: "Projector", Scheme: pricing.SchemeFixed},
			"waiter":    {Code: "waiter", Name: "Waiter service", Scheme: pricing.SchemePerUnit, UnitSize: &unitSize},
			"decor":     {Code: "decor", Name: "Decoration", Scheme: pricing.SchemeComplex},
		},
		ExtraPrices: map[string]map[string]pricing.ExtraPrice{
			"projector": {"standard": {BasePrice: decimal.NewFromInt(1000)}},
			"waiter":    {"standard": {BasePrice: decimal.NewFromInt(800)}},
			"decor":     {"standard": {BasePrice: decimal.NewFromInt(1500), AdditionalUnitPrice: &additional}},
		},
	}
}

func TestEngineQuote(t *testing.T) {
	engine := pricing.NewEngine()
	snap := testSnapshot()

	t.Run("rental with extras totals every component", func(t *testing.T) {
		quote, err := engine.Quote(snap, pricing.QuoteRequest{
			Date:       monday,
			StartMin:   minutes(14, 0),
			EndMin:     minutes(17, 0),
			GuestCount: 25,
			Extras: []pricing.ExtraSelection{
				{Code: "projector", Quantity: 1},
				{Code: "waiter", Quantity: 25},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "standard", quote.PriceSet)
		assert.True(t, quote.BaseCharge.Equal(decimal.NewFromInt(7500)), "base = %s", quote.BaseCharge)
		assert.True(t, quote.CleaningFee.Equal(decimal.NewFromInt(500)))
		assert.True(t, quote.AfterHoursSurcharge.IsZero())
		assert.True(t, quote.BilledHours.Equal(decimal.NewFromInt(3)))
		assert.True(t, quote.FoodAlcoholAllowed)

		require.Len(t, quote.Extras, 2)
		assert.True(t, quote.Extras[0].Amount.Equal(decimal.NewFromInt(1000)))
		assert.Equal(t, "Waiter service", quote.Extras[1].Name)
		assert.True(t, quote.Extras[1].Amount.Equal(decimal.NewFromInt(2400)), "waiter = %s", quote.Extras[1].Amount)

		// 7500 + 500 + 1000 + 2400
		assert.True(t, quote.Total.Equal(decimal.NewFromInt(11400)), "total = %s", quote.Total)
	})

	t.Run("no season rule matches", func(t *testing.T) {
		_, err := engine.Quote(snap, pricing.QuoteRequest{
			Date:       date(2027, time.March, 1),
			StartMin:   minutes(14, 0),
			EndMin:     minutes(16, 0),
			GuestCount: 10,
		})
		assert.ErrorIs(t, err, pricing.ErrNoPriceSet)
	})

	t.Run("resolved price set has no hall rate", func(t *testing.T) {
		// July resolves to "summer", which has no rate row in the snapshot
		_, err := engine.Quote(snap, pricing.QuoteRequest{
			Date:       date(2026, time.July, 15),
			StartMin:   minutes(14, 0),
			EndMin:     minutes(16, 0),
			GuestCount: 10,
		})
		assert.ErrorIs(t, err, pricing.ErrNoRateConfigured)
	})

	t.Run("unknown extra code", func(t *testing.T) {
		_, err := engine.Quote(snap, pricing.QuoteRequest{
			Date:       monday,
			StartMin:   minutes(14, 0),
			EndMin:     minutes(16, 0),
			GuestCount: 10,
			Extras:     []pricing.ExtraSelection{{Code: "fireworks", Quantity: 1}},
		})
		assert.ErrorIs(t, err, pricing.ErrNoExtraPriceConfigured)
	})

	t.Run("extra has no price under the resolved set", func(t *testing.T) {
		partial := testSnapshot()
		delete(partial.ExtraPrices["decor"], "standard")

		_, err := engine.Quote(partial, pricing.QuoteRequest{
			Date:       monday,
			StartMin:   minutes(14, 0),
			EndMin:     minutes(16, 0),
			GuestCount: 10,
			Extras:     []pricing.ExtraSelection{{Code: "decor", Quantity: 2}},
		})
		assert.ErrorIs(t, err, pricing.ErrNoExtraPriceConfigured)
	})

	t.Run("invalid time range propagates", func(t *testing.T) {
		_, err := engine.Quote(snap, pricing.QuoteRequest{
			Date:       monday,
			StartMin:   minutes(16, 0),
			EndMin:     minutes(14, 0),
			GuestCount: 10,
		})
		assert.ErrorIs(t, err, pricing.ErrInvalidTimeRange)
	})

	t.Run("amounts are rounded to two decimal places", func(t *testing.T) {
		odd := testSnapshot()
		rate := odd.HallRates["standard"]
		rate.WeekdayDayRate = decimal.RequireFromString("2333.333")
		odd.HallRates["standard"] = rate

		quote, err := engine.Quote(odd, pricing.QuoteRequest{
			Date:       monday,
			StartMin:   minutes(14, 0),
			EndMin:     minutes(16, 0),
			GuestCount: 10,
		})
		require.NoError(t, err)
		assert.True(t, quote.BaseCharge.Equal(decimal.RequireFromString("4666.67")), "base = %s", quote.BaseCharge)
	})
}
