package tariff

import (
	"errors"
	"strings"
	"time"

	"hall-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange = errors.New("season rule start date must not be after end date")
	ErrEmptyWeekdays    = errors.New("season rule must apply to at least one weekday")
	ErrInvalidWeekday   = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
)

// SeasonRule is the admin-authored mapping of a date range plus weekday
// subset to a price set, with priority resolving overlaps.
type SeasonRule struct {
	id          int64
	priceSetID  uuid.UUID
	startDate   time.Time
	endDate     time.Time
	weekdays    pricing.WeekdaySet
	priority    int
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSeasonRule(priceSetID uuid.UUID, startDate, endDate time.Time, weekdays []int, priority int, description string) (*SeasonRule, error) {
	start := dateOnly(startDate)
	end := dateOnly(endDate)
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	set, err := weekdaySetFromInts(weekdays)
	if err != nil {
		return nil, err
	}

	return &SeasonRule{
		priceSetID:  priceSetID,
		startDate:   start,
		endDate:     end,
		weekdays:    set,
		priority:    priority,
		description: strings.TrimSpace(description),
	}, nil
}

func weekdaySetFromInts(weekdays []int) (pricing.WeekdaySet, error) {
	if len(weekdays) == 0 {
		return 0, ErrEmptyWeekdays
	}
	days := make([]time.Weekday, 0, len(weekdays))
	for _, d := range weekdays {
		if d < 0 || d > 6 {
			return 0, ErrInvalidWeekday
		}
		days = append(days, time.Weekday(d))
	}
	return pricing.NewWeekdaySet(days...), nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (r *SeasonRule) ID() int64                    { return r.id }
func (r *SeasonRule) PriceSetID() uuid.UUID        { return r.priceSetID }
func (r *SeasonRule) StartDate() time.Time         { return r.startDate }
func (r *SeasonRule) EndDate() time.Time           { return r.endDate }
func (r *SeasonRule) Weekdays() pricing.WeekdaySet { return r.weekdays }
func (r *SeasonRule) Priority() int                { return r.priority }
func (r *SeasonRule) Description() string          { return r.description }
func (r *SeasonRule) CreatedAt() time.Time         { return r.createdAt }
func (r *SeasonRule) UpdatedAt() time.Time         { return r.updatedAt }
