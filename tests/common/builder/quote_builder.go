//go:build unit

package builder

import (
	"fmt"
	"time"

	reqdto "hall-booking/internal/handler/dto/request"
	"hall-booking/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

// clockTime renders minutes from midnight as the "HH:MM" wire format;
// past-midnight ends wrap back onto the clock face.
func clockTime(min int) string {
	return fmt.Sprintf("%02d:%02d", (min/60)%24, min%60)
}

type QuoteBuilder struct {
	HallCode            string
	Date                time.Time
	StartMin            int
	EndMin              int
	GuestCount          int
	PriceSet            string
	BaseCharge          decimal.Decimal
	CleaningFee         decimal.Decimal
	AfterHoursSurcharge decimal.Decimal
	BilledHours         decimal.Decimal
	FoodAlcoholAllowed  bool
	Extras              []queries.QuoteExtraLine
}

func NewQuoteBuilder() *QuoteBuilder {
	return &QuoteBuilder{
		HallCode:            "grand-hall",
		Date:                time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		StartMin:            14 * 60,
		EndMin:              17 * 60,
		GuestCount:          25,
		PriceSet:            "standard",
		BaseCharge:          decimal.NewFromInt(7500),
		CleaningFee:         decimal.NewFromInt(500),
		AfterHoursSurcharge: decimal.Zero,
		BilledHours:         decimal.NewFromInt(3),
		FoodAlcoholAllowed:  true,
	}
}

func (b *QuoteBuilder) With(mutate func(*QuoteBuilder)) *QuoteBuilder {
	mutate(b)
	return b
}

func (b *QuoteBuilder) BuildView() *queries.QuoteView {
	extrasTotal := decimal.Zero
	for _, l := range b.Extras {
		extrasTotal = extrasTotal.Add(l.Amount)
	}
	return &queries.QuoteView{
		HallCode:            b.HallCode,
		PriceSet:            b.PriceSet,
		BaseCharge:          b.BaseCharge,
		CleaningFee:         b.CleaningFee,
		AfterHoursSurcharge: b.AfterHoursSurcharge,
		BilledHours:         b.BilledHours,
		FoodAlcoholAllowed:  b.FoodAlcoholAllowed,
		Extras:              b.Extras,
		Total:               b.BaseCharge.Add(b.CleaningFee).Add(b.AfterHoursSurcharge).Add(extrasTotal),
	}
}

func (b *QuoteBuilder) BuildRequestDTO() reqdto.QuoteRequest {
	return reqdto.QuoteRequest{
		HallCode:   b.HallCode,
		Date:       b.Date.Format("2006-01-02"),
		StartTime:  clockTime(b.StartMin),
		EndTime:    clockTime(b.EndMin),
		GuestCount: b.GuestCount,
	}
}

func (b *QuoteBuilder) BuildParams() queries.QuoteParams {
	return queries.QuoteParams{
		HallCode:   b.HallCode,
		Date:       b.Date,
		StartMin:   b.StartMin,
		EndMin:     b.EndMin,
		GuestCount: b.GuestCount,
	}
}
