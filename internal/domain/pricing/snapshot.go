package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Scheme selects how an extra service is priced.
type Scheme string

const (
	SchemeFixed   Scheme = "fixed"
	SchemePerUnit Scheme = "per_unit"
	SchemeComplex Scheme = "complex"
)

func (s Scheme) IsValid() bool {
	switch s {
	case SchemeFixed, SchemePerUnit, SchemeComplex:
		return true
	default:
		return false
	}
}

// WeekdaySet is a bit set over time.Weekday (Sunday = bit 0).
type WeekdaySet uint8

func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s |= 1 << uint(d)
	}
	return s
}

// AllWeekdays covers Sunday through Saturday.
const AllWeekdays WeekdaySet = 0x7F

func (s WeekdaySet) Contains(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

func (s WeekdaySet) IsEmpty() bool {
	return s&AllWeekdays == 0
}

func (s WeekdaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

// SeasonRule maps a date range plus weekday subset to a price set.
// Higher priority wins when rules overlap.
type SeasonRule struct {
	ID        int64
	PriceSet  string
	StartDate time.Time
	EndDate   time.Time
	Weekdays  WeekdaySet
	Priority  int
}

// HallRate is the full rate table for one hall under one price set.
// Hourly rates are per full hour; fractional segments are prorated.
type HallRate struct {
	WeekdayDayRate       decimal.Decimal
	WeekdayEveningRate   decimal.Decimal
	FridaySaturdayRate   decimal.Decimal
	SundayRate           decimal.Decimal
	CleaningFeeSmall     decimal.Decimal
	CleaningFeeLarge     decimal.Decimal
	AfterHoursSurcharge  decimal.Decimal
	MinHours             int
	MinHoursSaturday     int
	FoodAlcoholFromHours int

	// Service window in minutes from rental-day midnight. A nil bound
	// disables the after-hours check on that side. LateCutoffMin may
	// exceed 24h for halls that serve past midnight.
	ServiceOpenMin *int
	LateCutoffMin  *int
}

// ExtraSpec describes how one extra service is priced, independent of
// the price set.
type ExtraSpec struct {
	Code     string
	Name     string
	Scheme   Scheme
	UnitSize *int
}

// ExtraPrice is the price row for one (extra service, price set) pair.
type ExtraPrice struct {
	BasePrice           decimal.Decimal
	AdditionalUnitPrice *decimal.Decimal
	UnitLabel           string
}

// Snapshot is the read-only pricing configuration handed to the engine.
// The caller fetches it once per quote; the engine never mutates it.
type Snapshot struct {
	Rules []SeasonRule

	// HallRates is keyed by price set code, for the hall being quoted.
	HallRates map[string]HallRate

	// Extras is keyed by extra service code.
	Extras map[string]ExtraSpec

	// ExtraPrices is keyed by extra service code, then price set code.
	ExtraPrices map[string]map[string]ExtraPrice
}
