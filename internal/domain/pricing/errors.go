package pricing

import "errors"

var (
	ErrNoPriceSet             = errors.New("no applicable price set for date")
	ErrNoRateConfigured       = errors.New("no rate configured for hall under price set")
	ErrNoExtraPriceConfigured = errors.New("extra service price not configured")
	ErrInvalidTimeRange       = errors.New("invalid time range")
	ErrInvalidGuestCount      = errors.New("guest count must be positive")
	ErrInvalidQuantity        = errors.New("extra quantity must be positive")
)
