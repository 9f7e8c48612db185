//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"hall-booking/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolvePriceSet(t *testing.T) {
	june := pricing.SeasonRule{
		ID:        1,
		PriceSet:  "standard",
		StartDate: date(2026, time.June, 1),
		EndDate:   date(2026, time.June, 30),
		Weekdays:  pricing.AllWeekdays,
		Priority:  0,
	}

	t.Run("single covering rule matches", func(t *testing.T) {
		code, err := pricing.ResolvePriceSet([]pricing.SeasonRule{june}, date(2026, time.June, 15))
		require.NoError(t, err)
		assert.Equal(t, "standard", code)
	})

	t.Run("range boundaries are inclusive", func(t *testing.T) {
		for _, d := range []time.Time{june.StartDate, june.EndDate} {
			code, err := pricing.ResolvePriceSet([]pricing.SeasonRule{june}, d)
			require.NoError(t, err)
			assert.Equal(t, "standard", code)
		}
	})

	t.Run("date outside every range fails", func(t *testing.T) {
		_, err := pricing.ResolvePriceSet([]pricing.SeasonRule{june}, date(2026, time.July, 1))
		assert.ErrorIs(t, err, pricing.ErrNoPriceSet)
	})

	t.Run("weekday not in the rule set fails", func(t *testing.T) {
		weekendOnly := june
		weekendOnly.Weekdays = pricing.NewWeekdaySet(time.Saturday, time.Sunday)

		// 2026-06-15 is a Monday
		day := date(2026, time.June, 15)
		require.Equal(t, time.Monday, day.Weekday())

		_, err := pricing.ResolvePriceSet([]pricing.SeasonRule{weekendOnly}, day)
		assert.ErrorIs(t, err, pricing.ErrNoPriceSet)
	})

	t.Run("no rules at all fails", func(t *testing.T) {
		_, err := pricing.ResolvePriceSet(nil, date(2026, time.June, 15))
		assert.ErrorIs(t, err, pricing.ErrNoPriceSet)
	})

	t.Run("higher priority wins regardless of order", func(t *testing.T) {
		holiday := pricing.SeasonRule{
			ID:        2,
			PriceSet:  "holiday",
			StartDate: date(2026, time.June, 10),
			EndDate:   date(2026, time.June, 20),
			Weekdays:  pricing.AllWeekdays,
			Priority:  10,
		}

		for name, rules := range map[string][]pricing.SeasonRule{
			"low priority first": {june, holiday},
			"high priority first": {holiday, june},
		} {
			t.Run(name, func(t *testing.T) {
				code, err := pricing.ResolvePriceSet(rules, date(2026, time.June, 15))
				require.NoError(t, err)
				assert.Equal(t, "holiday", code)
			})
		}
	})

	t.Run("equal priority resolves to the lowest rule ID", func(t *testing.T) {
		other := june
		other.ID = 7
		other.PriceSet = "late-duplicate"

		code, err := pricing.ResolvePriceSet([]pricing.SeasonRule{other, june}, date(2026, time.June, 15))
		require.NoError(t, err)
		assert.Equal(t, "standard", code)
	})

	t.Run("time-of-day component is ignored", func(t *testing.T) {
		noon := time.Date(2026, time.June, 30, 12, 30, 0, 0, time.UTC)
		code, err := pricing.ResolvePriceSet([]pricing.SeasonRule{june}, noon)
		require.NoError(t, err)
		assert.Equal(t, "standard", code)
	})
}
