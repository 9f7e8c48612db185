//go:build unit

package tariff_test

import (
	"testing"
	"time"

	"hall-booking/internal/domain/tariff"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewSeasonRule(t *testing.T) {
	priceSetID := uuid.New()
	start := day(2026, time.June, 1)
	end := day(2026, time.June, 30)

	t.Run("basic success case", func(t *testing.T) {
		rule, err := tariff.NewSeasonRule(priceSetID, start, end, []int{1, 2, 3, 4, 5}, 10, " weekday season ")
		require.NoError(t, err)

		assert.Equal(t, priceSetID, rule.PriceSetID())
		assert.Equal(t, 10, rule.Priority())
		assert.Equal(t, "weekday season", rule.Description())
		assert.True(t, rule.Weekdays().Contains(time.Monday))
		assert.False(t, rule.Weekdays().Contains(time.Sunday))
	})

	t.Run("single-day range", func(t *testing.T) {
		_, err := tariff.NewSeasonRule(priceSetID, start, start, []int{0, 1, 2, 3, 4, 5, 6}, 0, "")
		assert.NoError(t, err)
	})

	t.Run("time-of-day is dropped from the range", func(t *testing.T) {
		lateStart := time.Date(2026, time.June, 1, 23, 0, 0, 0, time.UTC)
		earlyEnd := time.Date(2026, time.June, 1, 1, 0, 0, 0, time.UTC)
		_, err := tariff.NewSeasonRule(priceSetID, lateStart, earlyEnd, []int{0}, 0, "")
		assert.NoError(t, err)
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := tariff.NewSeasonRule(priceSetID, end, start, []int{0}, 0, "")
		assert.ErrorIs(t, err, tariff.ErrInvalidDateRange)
	})

	t.Run("empty weekday set", func(t *testing.T) {
		_, err := tariff.NewSeasonRule(priceSetID, start, end, nil, 0, "")
		assert.ErrorIs(t, err, tariff.ErrEmptyWeekdays)
	})

	t.Run("weekday out of range", func(t *testing.T) {
		for _, days := range [][]int{{-1}, {7}, {1, 2, 9}} {
			_, err := tariff.NewSeasonRule(priceSetID, start, end, days, 0, "")
			assert.ErrorIs(t, err, tariff.ErrInvalidWeekday)
		}
	})
}

func TestNewPriceSet(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		ps, err := tariff.NewPriceSet(uuid.Nil, "december_2026", "December 2026")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, ps.ID())
		assert.Equal(t, "december_2026", ps.Code())
	})

	t.Run("code with dashes", func(t *testing.T) {
		_, err := tariff.NewPriceSet(uuid.Nil, "december-2026", "December")
		assert.ErrorIs(t, err, tariff.ErrInvalidPriceSetCode)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := tariff.NewPriceSet(uuid.Nil, "standard", "  ")
		assert.ErrorIs(t, err, tariff.ErrEmptyPriceSetName)
	})
}
