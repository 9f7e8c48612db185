//go:build unit

package tariff_test

import (
	"testing"

	"hall-booking/internal/domain/pricing"
	"hall-booking/internal/domain/tariff"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRate() pricing.HallRate {
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

func TestNewRateCard(t *testing.T) {
	hallID := uuid.New()
	priceSetID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		card, err := tariff.NewRateCard(uuid.Nil, hallID, priceSetID, validRate())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, card.ID())
		assert.Equal(t, hallID, card.HallID())
		assert.True(t, card.Rate().WeekdayDayRate.Equal(decimal.NewFromInt(2500)))
	})

	t.Run("service window past midnight is allowed", func(t *testing.T) {
		open := 10 * 60
		cutoff := 26 * 60
		rate := validRate()
		rate.ServiceOpenMin = &open
		rate.LateCutoffMin = &cutoff
		_, err := tariff.NewRateCard(uuid.Nil, hallID, priceSetID, rate)
		assert.NoError(t, err)
	})

	cases := []struct {
		name   string
		mutate func(*pricing.HallRate)
		errIs  error
	}{
		{
			name:   "negative hourly rate",
			mutate: func(r *pricing.HallRate) { r.SundayRate = decimal.NewFromInt(-1) },
			errIs:  tariff.ErrNegativeRate,
		},
		{
			name:   "negative cleaning fee",
			mutate: func(r *pricing.HallRate) { r.CleaningFeeLarge = decimal.NewFromInt(-100) },
			errIs:  tariff.ErrNegativeRate,
		},
		{
			name:   "zero minimum hours",
			mutate: func(r *pricing.HallRate) { r.MinHours = 0 },
			errIs:  tariff.ErrInvalidMinHours,
		},
		{
			name:   "zero saturday minimum",
			mutate: func(r *pricing.HallRate) { r.MinHoursSaturday = 0 },
			errIs:  tariff.ErrInvalidMinHours,
		},
		{
			name:   "negative food threshold",
			mutate: func(r *pricing.HallRate) { r.FoodAlcoholFromHours = -1 },
			errIs:  tariff.ErrInvalidFoodThreshold,
		},
		{
			name: "service open outside the day",
			mutate: func(r *pricing.HallRate) {
				open := 25 * 60
				r.ServiceOpenMin = &open
			},
			errIs: tariff.ErrInvalidServiceWindow,
		},
		{
			name: "cutoff before open",
			mutate: func(r *pricing.HallRate) {
				open := 12 * 60
				cutoff := 10 * 60
				r.ServiceOpenMin = &open
				r.LateCutoffMin = &cutoff
			},
			errIs: tariff.ErrServiceWindowInverted,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rate := validRate()
			tc.mutate(&rate)
			_, err := tariff.NewRateCard(uuid.Nil, hallID, priceSetID, rate)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
