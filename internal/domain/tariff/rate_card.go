package tariff

import (
	"errors"
	"time"

	"hall-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrNegativeRate          = errors.New("hourly rates and fees cannot be negative")
	ErrInvalidMinHours       = errors.New("minimum billable hours must be at least 1")
	ErrInvalidFoodThreshold  = errors.New("food/alcohol threshold cannot be negative")
	ErrInvalidServiceWindow  = errors.New("service window bounds must be within a rental day")
	ErrServiceWindowInverted = errors.New("late cutoff must be after service open")
)

// RateCard is the admin-facing rate table for one (hall, price set) pair.
// Exactly one card per pair may exist; pricing fails without one.
type RateCard struct {
	id         uuid.UUID
	hallID     uuid.UUID
	priceSetID uuid.UUID
	rate       pricing.HallRate
	createdAt  time.Time
	updatedAt  time.Time
}

func NewRateCard(id, hallID, priceSetID uuid.UUID, rate pricing.HallRate) (*RateCard, error) {
	if err := validateRate(rate); err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}
	return &RateCard{
		id:         id,
		hallID:     hallID,
		priceSetID: priceSetID,
		rate:       rate,
	}, nil
}

func validateRate(rate pricing.HallRate) error {
	for _, d := range []interface{ IsNegative() bool }{
		rate.WeekdayDayRate, rate.WeekdayEveningRate, rate.FridaySaturdayRate,
		rate.SundayRate, rate.CleaningFeeSmall, rate.CleaningFeeLarge,
		rate.AfterHoursSurcharge,
	} {
		if d.IsNegative() {
			return ErrNegativeRate
		}
	}
	if rate.MinHours < 1 || rate.MinHoursSaturday < 1 {
		return ErrInvalidMinHours
	}
	if rate.FoodAlcoholFromHours < 0 {
		return ErrInvalidFoodThreshold
	}
	if rate.ServiceOpenMin != nil && (*rate.ServiceOpenMin < 0 || *rate.ServiceOpenMin >= 24*60) {
		return ErrInvalidServiceWindow
	}
	if rate.LateCutoffMin != nil && (*rate.LateCutoffMin <= 0 || *rate.LateCutoffMin > 48*60) {
		return ErrInvalidServiceWindow
	}
	if rate.ServiceOpenMin != nil && rate.LateCutoffMin != nil && *rate.LateCutoffMin <= *rate.ServiceOpenMin {
		return ErrServiceWindowInverted
	}
	return nil
}

func (c *RateCard) ID() uuid.UUID          { return c.id }
func (c *RateCard) HallID() uuid.UUID      { return c.hallID }
func (c *RateCard) PriceSetID() uuid.UUID  { return c.priceSetID }
func (c *RateCard) Rate() pricing.HallRate { return c.rate }
func (c *RateCard) CreatedAt() time.Time   { return c.createdAt }
func (c *RateCard) UpdatedAt() time.Time   { return c.updatedAt }
