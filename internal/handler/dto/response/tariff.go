package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hall-booking/internal/usecase/queries"
)

type PriceSetResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromPriceSetView(rm *queries.PriceSetView) *PriceSetResponse {
	return &PriceSetResponse{
		ID:        rm.ID,
		Code:      rm.Code,
		Name:      rm.Name,
		CreatedAt: rm.CreatedAt,
	}
}

func FromPriceSetViews(rms []*queries.PriceSetView) []*PriceSetResponse {
	result := make([]*PriceSetResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromPriceSetView(rm)
	}
	return result
}

type SeasonRuleResponse struct {
	ID           int64     `json:"id"`
	PriceSetID   uuid.UUID `json:"priceSetId"`
	PriceSetCode string    `json:"priceSetCode"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	Weekdays     []int     `json:"weekdays"`
	Priority     int       `json:"priority"`
	Description  *string   `json:"description,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromSeasonRuleView(rm *queries.SeasonRuleView) *SeasonRuleResponse {
	return &SeasonRuleResponse{
		ID:           rm.ID,
		PriceSetID:   rm.PriceSetID,
		PriceSetCode: rm.PriceSetCode,
		StartDate:    rm.StartDate.Format("2006-01-02"),
		EndDate:      rm.EndDate.Format("2006-01-02"),
		Weekdays:     rm.Weekdays,
		Priority:     rm.Priority,
		Description:  rm.Description,
		CreatedAt:    rm.CreatedAt,
	}
}

func FromSeasonRuleViews(rms []*queries.SeasonRuleView) []*SeasonRuleResponse {
	result := make([]*SeasonRuleResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromSeasonRuleView(rm)
	}
	return result
}

type RateCardResponse struct {
	ID                   uuid.UUID       `json:"id"`
	HallID               uuid.UUID       `json:"hallId"`
	PriceSetID           uuid.UUID       `json:"priceSetId"`
	PriceSetCode         string          `json:"priceSetCode"`
	WeekdayDayRate       decimal.Decimal `json:"weekdayDayRate"`
	WeekdayEveningRate   decimal.Decimal `json:"weekdayEveningRate"`
	FridaySaturdayRate   decimal.Decimal `json:"fridaySaturdayRate"`
	SundayRate           decimal.Decimal `json:"sundayRate"`
	CleaningFeeSmall     decimal.Decimal `json:"cleaningFeeSmall"`
	CleaningFeeLarge     decimal.Decimal `json:"cleaningFeeLarge"`
	AfterHoursSurcharge  decimal.Decimal `json:"afterHoursSurcharge"`
	MinHours             int             `json:"minHours"`
	MinHoursSaturday     int             `json:"minHoursSaturday"`
	FoodAlcoholFromHours int             `json:"foodAlcoholFromHours"`
	ServiceOpenMin       *int            `json:"serviceOpenMin,omitempty"`
	LateCutoffMin        *int            `json:"lateCutoffMin,omitempty"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

func FromRateCardView(rm *queries.RateCardView) *RateCardResponse {
	return &RateCardResponse{
		ID:                   rm.ID,
		HallID:               rm.HallID,
		PriceSetID:           rm.PriceSetID,
		PriceSetCode:         rm.PriceSetCode,
		WeekdayDayRate:       rm.Rate.WeekdayDayRate,
		WeekdayEveningRate:   rm.Rate.WeekdayEveningRate,
		FridaySaturdayRate:   rm.Rate.FridaySaturdayRate,
		SundayRate:           rm.Rate.SundayRate,
		CleaningFeeSmall:     rm.Rate.CleaningFeeSmall,
		CleaningFeeLarge:     rm.Rate.CleaningFeeLarge,
		AfterHoursSurcharge:  rm.Rate.AfterHoursSurcharge,
		MinHours:             rm.Rate.MinHours,
		MinHoursSaturday:     rm.Rate.MinHoursSaturday,
		FoodAlcoholFromHours: rm.Rate.FoodAlcoholFromHours,
		ServiceOpenMin:       rm.Rate.ServiceOpenMin,
		LateCutoffMin:        rm.Rate.LateCutoffMin,
		UpdatedAt:            rm.UpdatedAt,
	}
}

func FromRateCardViews(rms []*queries.RateCardView) []*RateCardResponse {
	result := make([]*RateCardResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromRateCardView(rm)
	}
	return result
}
