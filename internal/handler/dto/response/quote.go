package response

import (
	"github.com/shopspring/decimal"

	"hall-booking/internal/usecase/queries"
)

type QuoteExtraLineResponse struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

type QuoteResponse struct {
	HallCode            string                   `json:"hallCode"`
	PriceSet            string                   `json:"priceSet"`
	BaseCharge          decimal.Decimal          `json:"baseCharge"`
	CleaningFee         decimal.Decimal          `json:"cleaningFee"`
	AfterHoursSurcharge decimal.Decimal          `json:"afterHoursSurcharge"`
	BilledHours         decimal.Decimal          `json:"billedHours"`
	FoodAlcoholAllowed  bool                     `json:"foodAlcoholAllowed"`
	Extras              []QuoteExtraLineResponse `json:"extras"`
	Total               decimal.Decimal          `json:"total"`
}

func FromQuoteView(rm *queries.QuoteView) *QuoteResponse {
	extras := make([]QuoteExtraLineResponse, len(rm.Extras))
	for i, l := range rm.Extras {
		extras[i] = QuoteExtraLineResponse{
			Code:     l.Code,
			Name:     l.Name,
			Quantity: l.Quantity,
			Amount:   l.Amount,
		}
	}

	return &QuoteResponse{
		HallCode:            rm.HallCode,
		PriceSet:            rm.PriceSet,
		BaseCharge:          rm.BaseCharge,
		CleaningFee:         rm.CleaningFee,
		AfterHoursSurcharge: rm.AfterHoursSurcharge,
		BilledHours:         rm.BilledHours,
		FoodAlcoholAllowed:  rm.FoodAlcoholAllowed,
		Extras:              extras,
		Total:               rm.Total,
	}
}
