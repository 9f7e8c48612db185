//go:build unit

package extra_test

import (
	"testing"

	"hall-booking/internal/domain/extra"
	"hall-booking/internal/domain/pricing"
	"hall-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewExtraServiceBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "projector", actual.Code())
		assert.Equal(t, pricing.SchemeFixed, actual.Scheme())
		assert.Nil(t, actual.UnitSize())
	})

	t.Run("per-unit service with unit size", func(t *testing.T) {
		unitSize := 10
		actual, err := builder.NewExtraServiceBuilder().
			With(func(b *builder.ExtraServiceBuilder) {
				b.Code = "waiter_service"
				b.Scheme = pricing.SchemePerUnit
				b.UnitSize = &unitSize
			}).
			BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual.UnitSize())
		assert.Equal(t, 10, *actual.UnitSize())
	})

	cases := []struct {
		name   string
		mutate func(*builder.ExtraServiceBuilder)
		errIs  error
	}{
		{
			name:   "code with dashes",
			mutate: func(b *builder.ExtraServiceBuilder) { b.Code = "waiter-service" },
			errIs:  extra.ErrInvalidExtraCode,
		},
		{
			name:   "empty code",
			mutate: func(b *builder.ExtraServiceBuilder) { b.Code = "" },
			errIs:  extra.ErrInvalidExtraCode,
		},
		{
			name:   "empty name",
			mutate: func(b *builder.ExtraServiceBuilder) { b.Name = " " },
			errIs:  extra.ErrEmptyExtraName,
		},
		{
			name:   "unknown scheme",
			mutate: func(b *builder.ExtraServiceBuilder) { b.Scheme = pricing.Scheme("tiered") },
			errIs:  extra.ErrInvalidScheme,
		},
		{
			name: "zero unit size",
			mutate: func(b *builder.ExtraServiceBuilder) {
				zero := 0
				b.UnitSize = &zero
			},
			errIs: extra.ErrInvalidUnitSize,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewExtraServiceBuilder()
			tc.mutate(b)
			_, err := b.BuildDomain()
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestNewPrice(t *testing.T) {
	serviceID := uuid.New()
	priceSetID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		additional := decimal.NewFromInt(250)
		actual, err := extra.NewPrice(uuid.Nil, serviceID, priceSetID, decimal.NewFromInt(1000), &additional, "per person")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.BasePrice().Equal(decimal.NewFromInt(1000)))
		assert.Equal(t, "per person", actual.UnitLabel())
	})

	t.Run("zero base price is allowed", func(t *testing.T) {
		_, err := extra.NewPrice(uuid.Nil, serviceID, priceSetID, decimal.Zero, nil, "")
		assert.NoError(t, err)
	})

	t.Run("negative base price", func(t *testing.T) {
		_, err := extra.NewPrice(uuid.Nil, serviceID, priceSetID, decimal.NewFromInt(-1), nil, "")
		assert.ErrorIs(t, err, extra.ErrNegativePrice)
	})

	t.Run("negative additional unit price", func(t *testing.T) {
		negative := decimal.NewFromInt(-5)
		_, err := extra.NewPrice(uuid.Nil, serviceID, priceSetID, decimal.NewFromInt(1000), &negative, "")
		assert.ErrorIs(t, err, extra.ErrNegativePrice)
	})
}
