package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteRequest is one pricing computation over a snapshot. StartMin/EndMin
// count from the rental day's midnight; EndMin past 24:00 means the slot
// crosses midnight.
type QuoteRequest struct {
	Date       time.Time
	StartMin   int
	EndMin     int
	GuestCount int
	Extras     []ExtraSelection
}

type ExtraSelection struct {
	Code     string
	Quantity int
}

// ExtraLine is one priced extra in a quote.
type ExtraLine struct {
	Code     string
	Name     string
	Quantity int
	Amount   decimal.Decimal
}

// Quote is the transient computation result. All amounts are rounded to two
// decimal places here and nowhere earlier.
type Quote struct {
	PriceSet            string
	BaseCharge          decimal.Decimal
	CleaningFee         decimal.Decimal
	AfterHoursSurcharge decimal.Decimal
	BilledHours         decimal.Decimal
	FoodAlcoholAllowed  bool
	Extras              []ExtraLine
	Total               decimal.Decimal
}

// Engine composes the season resolver, rate calculator and extras pricer.
// It holds no mutable state; concurrent Quote calls over the same snapshot
// are safe.
type Engine struct {
	extend ExtendPolicy
}

func NewEngine() *Engine {
	return &Engine{extend: ExtendRebanded}
}

// NewEngineWithPolicy lets the caller pick how minimum-hours extensions are
// rated; see ExtendPolicy.
func NewEngineWithPolicy(policy ExtendPolicy) *Engine {
	return &Engine{extend: policy}
}

// Quote prices one requested slot against the snapshot. A missing rate or
// extra price row fails the whole quote; the engine never substitutes a
// zero or default charge.
func (e *Engine) Quote(snap Snapshot, req QuoteRequest) (*Quote, error) {
	priceSet, err := ResolvePriceSet(snap.Rules, req.Date)
	if err != nil {
		return nil, err
	}

	rate, ok := snap.HallRates[priceSet]
	if !ok {
		return nil, ErrNoRateConfigured
	}

	rental, err := ComputeRental(rate, req.Date, req.StartMin, req.EndMin, req.GuestCount, e.extend)
	if err != nil {
		return nil, err
	}

	lines := make([]ExtraLine, 0, len(req.Extras))
	extrasTotal := decimal.Zero
	for _, sel := range req.Extras {
		spec, ok := snap.Extras[sel.Code]
		if !ok {
			return nil, ErrNoExtraPriceConfigured
		}
		price, ok := snap.ExtraPrices[sel.Code][priceSet]
		if !ok {
			return nil, ErrNoExtraPriceConfigured
		}

		amount, err := PriceExtra(price, spec, sel.Quantity)
		if err != nil {
			return nil, err
		}
		amount = amount.Round(2)
		lines = append(lines, ExtraLine{
			Code:     sel.Code,
			Name:     spec.Name,
			Quantity: sel.Quantity,
			Amount:   amount,
		})
		extrasTotal = extrasTotal.Add(amount)
	}

	base := rental.BaseCharge.Round(2)
	cleaning := rental.CleaningFee.Round(2)
	surcharge := rental.AfterHoursSurcharge.Round(2)

	return &Quote{
		PriceSet:            priceSet,
		BaseCharge:          base,
		CleaningFee:         cleaning,
		AfterHoursSurcharge: surcharge,
		BilledHours:         rental.BilledHours(),
		FoodAlcoholAllowed:  rental.FoodAlcoholAllowed,
		Extras:              lines,
		Total:               base.Add(cleaning).Add(surcharge).Add(extrasTotal),
	}, nil
}
