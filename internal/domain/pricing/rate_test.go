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

// 2026-06-01 is a Monday; the rest of that week follows.
var (
	monday   = date(2026, time.June, 1)
	friday   = date(2026, time.June, 5)
	saturday = date(2026, time.June, 6)
	sunday   = date(2026, time.June, 7)
)

func testRate() pricing.HallRate {
	return pricing.HallRate{
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
	}
}

func minutes(h, m int) int { return h*60 + m }

func TestComputeRental_Validation(t *testing.T) {
	rate := testRate()

	cases := []struct {
		name     string
		startMin int
		endMin   int
		guests   int
		errIs    error
	}{
		{name: "negative start", startMin: -1, endMin: 60, guests: 10, errIs: pricing.ErrInvalidTimeRange},
		{name: "start past midnight", startMin: minutes(24, 0), endMin: minutes(25, 0), guests: 10, errIs: pricing.ErrInvalidTimeRange},
		{name: "end equals start", startMin: 600, endMin: 600, guests: 10, errIs: pricing.ErrInvalidTimeRange},
		{name: "end before start", startMin: 600, endMin: 540, guests: 10, errIs: pricing.ErrInvalidTimeRange},
		{name: "slot longer than a day", startMin: 0, endMin: minutes(24, 1), guests: 10, errIs: pricing.ErrInvalidTimeRange},
		{name: "zero guests", startMin: 600, endMin: 720, guests: 0, errIs: pricing.ErrInvalidGuestCount},
		{name: "negative guests", startMin: 600, endMin: 720, guests: -5, errIs: pricing.ErrInvalidGuestCount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pricing.ComputeRental(rate, monday, tc.startMin, tc.endMin, tc.guests, pricing.ExtendRebanded)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestComputeRental_Banding(t *testing.T) {
	rate := testRate()

	t.Run("weekday daytime", func(t *testing.T) {
		// Monday 14:00-16:00 at 2500/h
		b, err := pricing.ComputeRental(rate, monday, minutes(14, 0), minutes(16, 0), 25, pricing.ExtendRebanded)
		require.NoError(t, err)
		assert.True(t, b.BaseCharge.Equal(decimal.NewFromInt(5000)), "base = %s", b.BaseCharge)
		assert.True(t, b.CleaningFee.Equal(decimal.NewFromInt(500)))
		assert.True(t, b.AfterHoursSurcharge.IsZero())
		assert.Equal(t, 120, b.BilledMinutes)
	})

	t.Run("weekday segment split at 22:00", func(t *testing.T) {
		// Monday 21:00-23:00: one daytime hour plus one evening hour
		b, err := pricing.ComputeRental(rate, monday, minutes(21, 0), minutes(23, 0), 25, pricing.ExtendRebanded)
		require.NoError(t, err)
		assert.True(t, b.BaseCharge.Equal(decimal.NewFromInt(4000)), "base = %s", b.BaseCharge)
	})

	t.Run("rollover past midnight stays in the evening band", func(t *testing.T) {
		// Monday 23:00-01:00
		b, err := pricing.ComputeRental(rate, monday, minutes(23, 0), minutes(25, 0), 25, pricing.ExtendRebanded)
		require.NoError(t, err)
		assert.True(t, b.BaseCharge.Equal(decimal.NewFromInt(3000)), "base = %s", b.BaseCharge)
	})

	t.Run("friday evening uses the weekend rate", func(t *testing.T) {
		// Friday 20:00-23:00: every hour from 17:00 onward is weekend-rated
		b, err := pricing.ComputeRental(rate, friday, minutes(20, 0), minutes(23, 0), 25, pricing.ExtendRebanded)
		require.NoError(t, err)
		assert.True(t, b.BaseCharge.Equal(decimal.NewFromInt(9000)), "base = %s", b.BaseCharge)
	})

	t.Run("friday morning uses weekday rates", func(t *testing.T) {
		// Friday 11:00-13:00 is still daytime-rated
		b, err := pricing.ComputeRental(rate, friday, minutes(11, 0), minutes(13, 0), 25, pricing.ExtendRebanded)
		require.NoError(t, err)
		assert.True(t, b.BaseCharge.Equal(decimal.NewFromInt(5000)), "base = %s", b.BaseCharge)
	})

	t.Run("sunday flat rate", func(t *testing.T) {
		b, err := pricing.ComputeRental(rate, sunday, minutes(9, 0), minutes(12, 0), 25, pricing.ExtendRebanded)
		require.NoError(t, err)
		assert.True(t, b.BaseCharge.Equal(decimal.NewFromInt(6000)), "base = %s", b.BaseCharge)
	})

	t.Run("fractional segments are prorated", func(t *testing.T) {
		// Monday 10:30-12:00 = 1.5h at 2500/h; minHours 1 keeps the
		// floor out of the way so only proration is measured.
		prorated := testRate()
		prorated.MinHours = 1
		b, err := pricing.ComputeRental(prorated, monday, minutes(10, 30), minutes(12, 0), 25, pricing.ExtendRebanded)
		require.NoError(t, err)
		assert.True(t, b.BaseCharge.Equal(decimal.NewFromInt(3750)), "base = %s", b.BaseCharge)
		assert.Equal(t, 90, b.BilledMinutes)
	})

	t.Run("fractional request below the minimum is floored first", func(t *testing.T) {
		// Monday 10:30-12:00 under minHours 2 bills 120 minutes
		b, err := pricing.ComputeRental(rate, monday, minutes(10, 30), minutes(12, 0), 25, pricing.ExtendRebanded)
		require.NoError(t, err)
		assert.Equal(t, 120, b.BilledMinutes)
		assert.True(t, b.BaseCharge.Equal(decimal.NewFromInt(5000)), "base = %s", b.BaseCharge)
	})
}

func TestComputeRental_MinimumHours(t *testing.T) {
	rate := testRate()

	t.Run("short request bills the minimum", func(t *testing.T) {
		short, err := pricing.ComputeRental(rate, monday, minutes(14, 0), minutes(15, 0), 25, pricing.ExtendRebanded)
		require.NoError(t, err)
		full, err := pricing.ComputeRental(rate, monday, minutes(14, 0), minutes(16, 0), 25, pricing.ExtendRebanded)
		require.NoError(t, err)

		assert.Equal(t, 120, short.BilledMinutes)
		assert.True(t, short.BaseCharge.Equal(full.BaseCharge))
	})

	t.Run("saturday minimum applies when saturday predominates", func(t *testing.T) {
		b, err := pricing.ComputeRental(rate, saturday, minutes(10, 0), minutes(12, 0), 25, pricing.ExtendRebanded)
		require.NoError(t, err)
		assert.Equal(t, 240, b.BilledMinutes)
		assert.True(t, b.BaseCharge.Equal(decimal.NewFromInt(12000)), "base = %s", b.BaseCharge)
	})

	t.Run("friday slot rolling into saturday keeps the general minimum", func(t *testing.T) {
		// Friday 22:00-02:00: two hours on each day, Saturday does not predominate
		b, err := pricing.ComputeRental(rate, friday, minutes(22, 0), minutes(26, 0), 25, pricing.ExtendRebanded)
		require.NoError(t, err)
		assert.Equal(t, 240, b.BilledMinutes)
	})

	t.Run("predominance is decided on the requested minutes, not the floored ones", func(t *testing.T) {
		// Friday 23:30-00:30 is a 30/30 split as requested; flooring to the
		// 2-hour minimum puts most of the billed time on Saturday, but that
		// must not retroactively switch the slot to the Saturday minimum.
		b, err := pricing.ComputeRental(rate, friday, minutes(23, 30), minutes(24, 30), 25, pricing.ExtendRebanded)
		require.NoError(t, err)
		assert.Equal(t, 120, b.BilledMinutes)
	})

	t.Run("rebanded extension crosses into the next band", func(t *testing.T) {
		// Monday 21:00-22:00 requested, three-hour minimum: the two added
		// hours continue past 22:00 and pick up the evening rate.
		threeHourMin := rate
		threeHourMin.MinHours = 3
		b, err := pricing.ComputeRental(threeHourMin, monday, minutes(21, 0), minutes(22, 0), 25, pricing.ExtendRebanded)
		require.NoError(t, err)
		assert.Equal(t, 180, b.BilledMinutes)
		assert.True(t, b.BaseCharge.Equal(decimal.NewFromInt(5500)), "base = %s", b.BaseCharge)
	})

	t.Run("last-rate extension keeps the final requested rate", func(t *testing.T) {
		threeHourMin := rate
		threeHourMin.MinHours = 3
		b, err := pricing.ComputeRental(threeHourMin, monday, minutes(21, 0), minutes(22, 0), 25, pricing.ExtendLastRate)
		require.NoError(t, err)
		assert.Equal(t, 180, b.BilledMinutes)
		assert.True(t, b.BaseCharge.Equal(decimal.NewFromInt(7500)), "base = %s", b.BaseCharge)
	})
}

func TestComputeRental_DurationMonotonic(t *testing.T) {
	rate := testRate()

	prev := decimal.Zero
	for endMin := minutes(15, 0); endMin <= minutes(26, 0); endMin += 30 {
		b, err := pricing.ComputeRental(rate, monday, minutes(14, 0), endMin, 25, pricing.ExtendRebanded)
		require.NoError(t, err)
		assert.True(t, b.BaseCharge.GreaterThanOrEqual(prev),
			"base charge decreased at endMin=%d: %s < %s", endMin, b.BaseCharge, prev)
		prev = b.BaseCharge
	}
}

func TestComputeRental_CleaningFee(t *testing.T) {
	rate := testRate()

	t.Run("thirty guests pay the small fee", func(t *testing.T) {
		b, err := pricing.ComputeRental(rate, monday, minutes(14, 0), minutes(16, 0), 30, pricing.ExtendRebanded)
		require.NoError(t, err)
		assert.True(t, b.CleaningFee.Equal(decimal.NewFromInt(500)))
	})

	t.Run("thirty-one guests pay the large fee", func(t *testing.T) {
		b, err := pricing.ComputeRental(rate, monday, minutes(14, 0), minutes(16, 0), 31, pricing.ExtendRebanded)
		require.NoError(t, err)
		assert.True(t, b.CleaningFee.Equal(decimal.NewFromInt(900)))
	})
}

func TestComputeRental_FoodAlcohol(t *testing.T) {
	rate := testRate()

	t.Run("below the threshold", func(t *testing.T) {
		b, err := pricing.ComputeRental(rate, monday, minutes(14, 0), minutes(16, 0), 25, pricing.ExtendRebanded)
		require.NoError(t, err)
		assert.False(t, b.FoodAlcoholAllowed)
	})

	t.Run("boundary equality counts as eligible", func(t *testing.T) {
		b, err := pricing.ComputeRental(rate, monday, minutes(14, 0), minutes(17, 0), 25, pricing.ExtendRebanded)
		require.NoError(t, err)
		assert.True(t, b.FoodAlcoholAllowed)
	})

	t.Run("minimum-hours floor counts toward eligibility", func(t *testing.T) {
		floor := rate
		floor.MinHours = 3
		b, err := pricing.ComputeRental(floor, monday, minutes(14, 0), minutes(15, 0), 25, pricing.ExtendRebanded)
		require.NoError(t, err)
		assert.True(t, b.FoodAlcoholAllowed)
	})
}

func TestComputeRental_AfterHours(t *testing.T) {
	open := minutes(10, 0)
	cutoff := minutes(22, 0)
	rate := testRate()
	rate.ServiceOpenMin = &open
	rate.LateCutoffMin = &cutoff

	t.Run("inside the service window no surcharge applies", func(t *testing.T) {
		b, err := pricing.ComputeRental(rate, monday, minutes(14, 0), minutes(16, 0), 25, pricing.ExtendRebanded)
		require.NoError(t, err)
		assert.True(t, b.AfterHoursSurcharge.IsZero())
	})

	t.Run("minutes past the cutoff are surcharged on top of the band rate", func(t *testing.T) {
		b, err := pricing.ComputeRental(rate, monday, minutes(21, 0), minutes(23, 0), 25, pricing.ExtendRebanded)
		require.NoError(t, err)
		assert.True(t, b.BaseCharge.Equal(decimal.NewFromInt(4000)), "base = %s", b.BaseCharge)
		assert.True(t, b.AfterHoursSurcharge.Equal(decimal.NewFromInt(600)), "surcharge = %s", b.AfterHoursSurcharge)
	})

	t.Run("minutes before opening are surcharged", func(t *testing.T) {
		b, err := pricing.ComputeRental(rate, monday, minutes(9, 0), minutes(11, 0), 25, pricing.ExtendRebanded)
		require.NoError(t, err)
		assert.True(t, b.BaseCharge.Equal(decimal.NewFromInt(4000)), "base = %s", b.BaseCharge)
		assert.True(t, b.AfterHoursSurcharge.Equal(decimal.NewFromInt(600)), "surcharge = %s", b.AfterHoursSurcharge)
	})

	t.Run("nil bounds disable the check", func(t *testing.T) {
		unbounded := testRate()
		b, err := pricing.ComputeRental(unbounded, monday, minutes(6, 0), minutes(8, 0), 25, pricing.ExtendRebanded)
		require.NoError(t, err)
		assert.True(t, b.AfterHoursSurcharge.IsZero())
	})
}

func TestRentalBreakdown_BilledHours(t *testing.T) {
	b := pricing.RentalBreakdown{BilledMinutes: 90}
	assert.True(t, b.BilledHours().Equal(decimal.NewFromFloat(1.5)))
}
