package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hall-booking/internal/domain/pricing"
	"hall-booking/internal/usecase/commands"
)

type CreatePriceSetRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type CreateSeasonRuleRequest struct {
	PriceSetID  uuid.UUID `json:"price_set_id" binding:"required"`
	StartDate   string    `json:"start_date" binding:"required"`
	EndDate     string    `json:"end_date" binding:"required"`
	Weekdays    []int     `json:"weekdays" binding:"required"`
	Priority    int       `json:"priority"`
	Description string    `json:"description,omitempty"`
}

func (r CreateSeasonRuleRequest) ToParams() (commands.CreateSeasonRuleParams, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return commands.CreateSeasonRuleParams{}, err
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return commands.CreateSeasonRuleParams{}, err
	}

	return commands.CreateSeasonRuleParams{
		PriceSetID:  r.PriceSetID,
		StartDate:   start,
		EndDate:     end,
		Weekdays:    r.Weekdays,
		Priority:    r.Priority,
		Description: r.Description,
	}, nil
}

type PutRateCardRequest struct {
	PriceSetID           uuid.UUID       `json:"price_set_id" binding:"required"`
	WeekdayDayRate       decimal.Decimal `json:"weekday_day_rate" binding:"required"`
	WeekdayEveningRate   decimal.Decimal `json:"weekday_evening_rate" binding:"required"`
	FridaySaturdayRate   decimal.Decimal `json:"friday_saturday_rate" binding:"required"`
	SundayRate           decimal.Decimal `json:"sunday_rate" binding:"required"`
	CleaningFeeSmall     decimal.Decimal `json:"cleaning_fee_small"`
	CleaningFeeLarge     decimal.Decimal `json:"cleaning_fee_large"`
	AfterHoursSurcharge  decimal.Decimal `json:"after_hours_surcharge"`
	MinHours             int             `json:"min_hours" binding:"required"`
	MinHoursSaturday     int             `json:"min_hours_saturday" binding:"required"`
	FoodAlcoholFromHours int             `json:"food_alcohol_from_hours"`
	ServiceOpenMin       *int            `json:"service_open_min,omitempty"`
	LateCutoffMin        *int            `json:"late_cutoff_min,omitempty"`
}

func (r PutRateCardRequest) ToParams(hallID uuid.UUID) commands.PutRateCardParams {
	return commands.PutRateCardParams{
		HallID:     hallID,
		PriceSetID: r.PriceSetID,
		Rate: pricing.HallRate{
			WeekdayDayRate:       r.WeekdayDayRate,
			WeekdayEveningRate:   r.WeekdayEveningRate,
			FridaySaturdayRate:   r.FridaySaturdayRate,
			SundayRate:           r.SundayRate,
			CleaningFeeSmall:     r.CleaningFeeSmall,
			CleaningFeeLarge:     r.CleaningFeeLarge,
			AfterHoursSurcharge:  r.AfterHoursSurcharge,
			MinHours:             r.MinHours,
			MinHoursSaturday:     r.MinHoursSaturday,
			FoodAlcoholFromHours: r.FoodAlcoholFromHours,
			ServiceOpenMin:       r.ServiceOpenMin,
			LateCutoffMin:        r.LateCutoffMin,
		},
	}
}

type PutExtraPriceRequest struct {
	PriceSetID          uuid.UUID        `json:"price_set_id" binding:"required"`
	BasePrice           decimal.Decimal  `json:"base_price" binding:"required"`
	AdditionalUnitPrice *decimal.Decimal `json:"additional_unit_price,omitempty"`
	UnitLabel           string           `json:"unit_label,omitempty"`
}
