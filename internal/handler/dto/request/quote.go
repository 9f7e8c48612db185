package request

import (
	"time"

	"hall-booking/internal/domain/pricing"
	"hall-booking/internal/usecase/queries"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// parseTimeRange converts "HH:MM" wall-clock bounds into minutes from
// the rental-day midnight. An end at or before the start means the
// rental runs into the next day.
func parseTimeRange(start, end string) (int, int, error) {
	st, err := time.Parse(timeLayout, start)
	if err != nil {
		return 0, 0, err
	}
	et, err := time.Parse(timeLayout, end)
	if err != nil {
		return 0, 0, err
	}

	startMin := st.Hour()*60 + st.Minute()
	endMin := et.Hour()*60 + et.Minute()
	if endMin <= startMin {
		endMin += 24 * 60
	}
	return startMin, endMin, nil
}

type ExtraSelectionRequest struct {
	Code     string `json:"code" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

type QuoteRequest struct {
	HallCode   string                  `json:"hall_code" binding:"required"`
	Date       string                  `json:"date" binding:"required"`
	StartTime  string                  `json:"start_time" binding:"required"`
	EndTime    string                  `json:"end_time" binding:"required"`
	GuestCount int                     `json:"guest_count" binding:"required"`
	Extras     []ExtraSelectionRequest `json:"extras,omitempty"`
}

func (r QuoteRequest) ToParams() (queries.QuoteParams, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return queries.QuoteParams{}, err
	}

	startMin, endMin, err := parseTimeRange(r.StartTime, r.EndTime)
	if err != nil {
		return queries.QuoteParams{}, err
	}

	extras := make([]pricing.ExtraSelection, len(r.Extras))
	for i, e := range r.Extras {
		extras[i] = pricing.ExtraSelection{Code: e.Code, Quantity: e.Quantity}
	}

	return queries.QuoteParams{
		HallCode:   r.HallCode,
		Date:       date,
		StartMin:   startMin,
		EndMin:     endMin,
		GuestCount: r.GuestCount,
		Extras:     extras,
	}, nil
}
