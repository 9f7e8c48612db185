package pricing

import "github.com/shopspring/decimal"

// PriceExtra computes the charge for one extra service under its scheme.
// Quantity semantics depend on the scheme: ignored for fixed, a unit count
// for per_unit (scaled down by the service's unit size when one is configured),
// and an item count for complex (first item at base price, the rest at the
// additional-unit price).
func PriceExtra(price ExtraPrice, spec ExtraSpec, quantity int) (decimal.Decimal, error) {
	if quantity <= 0 {
		return decimal.Zero, ErrInvalidQuantity
	}

	switch spec.Scheme {
	case SchemeFixed:
		return price.BasePrice, nil

	case SchemePerUnit:
		units := int64(quantity)
		if spec.UnitSize != nil && *spec.UnitSize > 0 {
			size := int64(*spec.UnitSize)
			units = (int64(quantity) + size - 1) / size
		}
		return price.BasePrice.Mul(decimal.NewFromInt(units)), nil

	case SchemeComplex:
		amount := price.BasePrice
		if quantity > 1 && price.AdditionalUnitPrice != nil {
			extra := decimal.NewFromInt(int64(quantity - 1))
			amount = amount.Add(price.AdditionalUnitPrice.Mul(extra))
		}
		return amount, nil

	default:
		return decimal.Zero, ErrNoExtraPriceConfigured
	}
}
