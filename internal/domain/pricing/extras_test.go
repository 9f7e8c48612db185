//go:build unit

package pricing_test

import (
	"testing"

	"hall-booking/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceExtra(t *testing.T) {
	base := decimal.NewFromInt(1000)
	additional := decimal.NewFromInt(250)

	t.Run("fixed is invariant to quantity", func(t *testing.T) {
		spec := pricing.ExtraSpec{Code: "projector", Scheme: pricing.SchemeFixed}
		price := pricing.ExtraPrice{BasePrice: base}

		for _, q := range []int{1, 5, 100} {
			amount, err := pricing.PriceExtra(price, spec, q)
			require.NoError(t, err)
			assert.True(t, amount.Equal(base), "quantity %d: %s", q, amount)
		}
	})

	t.Run("per-unit without unit size multiplies by quantity", func(t *testing.T) {
		spec := pricing.ExtraSpec{Code: "chair", Scheme: pricing.SchemePerUnit}
		price := pricing.ExtraPrice{BasePrice: decimal.NewFromInt(50)}

		amount, err := pricing.PriceExtra(price, spec, 12)
		require.NoError(t, err)
		assert.True(t, amount.Equal(decimal.NewFromInt(600)), "amount = %s", amount)
	})

	t.Run("per-unit with unit size rounds quantity up", func(t *testing.T) {
		unitSize := 10
		spec := pricing.ExtraSpec{Code: "waiter", Scheme: pricing.SchemePerUnit, UnitSize: &unitSize}
		price := pricing.ExtraPrice{BasePrice: base}

		cases := []struct {
			quantity int
			units    int64
		}{
			{quantity: 1, units: 1},
			{quantity: 10, units: 1},
			{quantity: 11, units: 2},
			{quantity: 25, units: 3},
		}
		for _, tc := range cases {
			amount, err := pricing.PriceExtra(price, spec, tc.quantity)
			require.NoError(t, err)
			expected := base.Mul(decimal.NewFromInt(tc.units))
			assert.True(t, amount.Equal(expected), "quantity %d: %s != %s", tc.quantity, amount, expected)
		}
	})

	t.Run("complex with quantity one charges exactly the base price", func(t *testing.T) {
		spec := pricing.ExtraSpec{Code: "decoration", Scheme: pricing.SchemeComplex}
		price := pricing.ExtraPrice{BasePrice: base, AdditionalUnitPrice: &additional}

		amount, err := pricing.PriceExtra(price, spec, 1)
		require.NoError(t, err)
		assert.True(t, amount.Equal(base))
	})

	t.Run("complex charges additional units past the first", func(t *testing.T) {
		spec := pricing.ExtraSpec{Code: "decoration", Scheme: pricing.SchemeComplex}
		price := pricing.ExtraPrice{BasePrice: base, AdditionalUnitPrice: &additional}

		amount, err := pricing.PriceExtra(price, spec, 4)
		require.NoError(t, err)
		assert.True(t, amount.Equal(decimal.NewFromInt(1750)), "amount = %s", amount)
	})

	t.Run("complex without an additional price stays at base", func(t *testing.T) {
		spec := pricing.ExtraSpec{Code: "decoration", Scheme: pricing.SchemeComplex}
		price := pricing.ExtraPrice{BasePrice: base}

		amount, err := pricing.PriceExtra(price, spec, 4)
		require.NoError(t, err)
		assert.True(t, amount.Equal(base))
	})

	t.Run("non-positive quantity fails", func(t *testing.T) {
		spec := pricing.ExtraSpec{Code: "projector", Scheme: pricing.SchemeFixed}
		price := pricing.ExtraPrice{BasePrice: base}

		for _, q := range []int{0, -1} {
			_, err := pricing.PriceExtra(price, spec, q)
			assert.ErrorIs(t, err, pricing.ErrInvalidQuantity)
		}
	})

	t.Run("unknown scheme fails", func(t *testing.T) {
		spec := pricing.ExtraSpec{Code: "mystery", Scheme: pricing.Scheme("tiered")}
		price := pricing.ExtraPrice{BasePrice: base}

		_, err := pricing.PriceExtra(price, spec, 1)
		assert.ErrorIs(t, err, pricing.ErrNoExtraPriceConfigured)
	})
}
