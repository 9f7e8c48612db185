package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

const minutesPerDay = 24 * 60

// ExtendPolicy controls how minutes added by the minimum-hours floor are
// rated when the requested slot is shorter than the minimum.
type ExtendPolicy int

const (
	// ExtendRebanded rates the added minutes exactly as if they had been
	// requested: the extension continues past the requested end and picks
	// up a new band's rate when it crosses a band boundary.
	ExtendRebanded ExtendPolicy = iota

	// ExtendLastRate bills every added minute at the rate of the last
	// requested segment, regardless of band boundaries.
	ExtendLastRate
)

// RentalBreakdown is the rental portion of a quote, before extras.
// Monetary fields carry full precision; rounding happens at quote assembly.
type RentalBreakdown struct {
	BaseCharge          decimal.Decimal
	CleaningFee         decimal.Decimal
	AfterHoursSurcharge decimal.Decimal
	BilledMinutes       int
	FoodAlcoholAllowed  bool
}

func (b RentalBreakdown) BilledHours() decimal.Decimal {
	return decimal.NewFromInt(int64(b.BilledMinutes)).Div(decimal.NewFromInt(60))
}

// ComputeRental prices the slot [startMin, endMin) on the given rental day.
// Minutes count from the rental day's midnight; endMin may exceed 24:00 for
// slots crossing midnight (22:00-02:00 is 1320..1560). Each hour segment is
// rated independently by the band it falls in and the results are summed.
func ComputeRental(rate HallRate, date time.Time, startMin, endMin, guestCount int, policy ExtendPolicy) (RentalBreakdown, error) {
	if startMin < 0 || startMin >= minutesPerDay || endMin <= startMin || endMin-startMin > minutesPerDay {
		return RentalBreakdown{}, ErrInvalidTimeRange
	}
	if guestCount <= 0 {
		return RentalBreakdown{}, ErrInvalidGuestCount
	}

	requested := endMin - startMin
	minHours := rate.MinHours
	if saturdayPredominates(date, startMin, endMin) {
		minHours = rate.MinHoursSaturday
	}
	billed := requested
	if floor := minHours * 60; billed < floor {
		billed = floor
	}

	weekday := truncateToDate(date).Weekday()
	var base decimal.Decimal
	var surchargeMinutes int

	switch policy {
	case ExtendLastRate:
		base, surchargeMinutes = sumSegments(rate, weekday, startMin, endMin)
		if extra := billed - requested; extra > 0 {
			lastRate := bandRate(rate, weekday, endMin-1)
			base = base.Add(lastRate.Mul(decimal.NewFromInt(int64(extra))))
			if isAfterHours(rate, endMin-1) {
				surchargeMinutes += extra
			}
		}
	default:
		base, surchargeMinutes = sumSegments(rate, weekday, startMin, startMin+billed)
	}

	sixty := decimal.NewFromInt(60)
	breakdown := RentalBreakdown{
		BaseCharge:          base.Div(sixty),
		CleaningFee:         rate.CleaningFeeSmall,
		AfterHoursSurcharge: rate.AfterHoursSurcharge.Mul(decimal.NewFromInt(int64(surchargeMinutes))).Div(sixty),
		BilledMinutes:       billed,
		FoodAlcoholAllowed:  billed >= rate.FoodAlcoholFromHours*60,
	}
	if guestCount > 30 {
		breakdown.CleaningFee = rate.CleaningFeeLarge
	}
	return breakdown, nil
}

// sumSegments accumulates rate*minutes over [from, to), split at band and
// service-window boundaries. The caller divides by 60 once at the end so no
// intermediate rounding occurs.
func sumSegments(rate HallRate, weekday time.Weekday, from, to int) (decimal.Decimal, int) {
	total := decimal.Zero
	surchargeMinutes := 0

	for m := from; m < to; {
		next := nextBoundary(rate, m)
		if next > to {
			next = to
		}
		span := int64(next - m)
		total = total.Add(bandRate(rate, weekday, m).Mul(decimal.NewFromInt(span)))
		if isAfterHours(rate, m) {
			surchargeMinutes += int(span)
		}
		m = next
	}
	return total, surchargeMinutes
}

// bandRate returns the hourly rate for minute m of the rental day whose
// weekday is given. Rollover minutes (m >= 24:00) stay in the rental day's
// night band rather than switching to the next calendar day.
func bandRate(rate HallRate, weekday time.Weekday, m int) decimal.Decimal {
	switch weekday {
	case time.Sunday:
		return rate.SundayRate
	case time.Saturday:
		return rate.FridaySaturdayRate
	case time.Friday:
		if m >= 17*60 {
			return rate.FridaySaturdayRate
		}
		if m >= 10*60 {
			return rate.WeekdayDayRate
		}
		return rate.WeekdayEveningRate
	default:
		if m >= 10*60 && m < 22*60 {
			return rate.WeekdayDayRate
		}
		return rate.WeekdayEveningRate
	}
}

func isAfterHours(rate HallRate, m int) bool {
	if rate.ServiceOpenMin != nil && m < *rate.ServiceOpenMin {
		return true
	}
	if rate.LateCutoffMin != nil && m >= *rate.LateCutoffMin {
		return true
	}
	return false
}

// nextBoundary returns the first minute after m where the band or the
// service window can change.
func nextBoundary(rate HallRate, m int) int {
	candidates := []int{10 * 60, 17 * 60, 22 * 60, minutesPerDay}
	if rate.ServiceOpenMin != nil {
		candidates = append(candidates, *rate.ServiceOpenMin)
	}
	if rate.LateCutoffMin != nil {
		candidates = append(candidates, *rate.LateCutoffMin)
	}

	next := m + 2*minutesPerDay
	for _, c := range candidates {
		if c > m && c < next {
			next = c
		}
	}
	return next
}

// saturdayPredominates reports whether the majority of the requested minutes
// fall on a calendar Saturday, counting rollover minutes against the actual
// next day.
func saturdayPredominates(date time.Time, startMin, endMin int) bool {
	day := truncateToDate(date)
	saturday := 0
	total := endMin - startMin

	for offset := 0; offset*minutesPerDay < endMin; offset++ {
		if day.AddDate(0, 0, offset).Weekday() != time.Saturday {
			continue
		}
		lo := max(startMin, offset*minutesPerDay)
		hi := min(endMin, (offset+1)*minutesPerDay)
		if hi > lo {
			saturday += hi - lo
		}
	}
	return saturday*2 > total
}
