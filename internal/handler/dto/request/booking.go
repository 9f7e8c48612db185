package request

import (
	"time"

	"hall-booking/internal/domain/pricing"
	"hall-booking/internal/usecase/commands"
)

type CreateBookingRequest struct {
	HallCode      string                  `json:"hall_code" binding:"required"`
	Date          string                  `json:"date" binding:"required"`
	StartTime     string                  `json:"start_time" binding:"required"`
	EndTime       string                  `json:"end_time" binding:"required"`
	GuestCount    int                     `json:"guest_count" binding:"required"`
	Extras        []ExtraSelectionRequest `json:"extras,omitempty"`
	CustomerName  string                  `json:"customer_name" binding:"required"`
	CustomerPhone string                  `json:"customer_phone" binding:"required"`
	Comment       string                  `json:"comment,omitempty"`
}

func (r CreateBookingRequest) ToParams() (commands.SubmitBookingRequestParams, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return commands.SubmitBookingRequestParams{}, err
	}
	startMin, endMin, err := parseTimeRange(r.StartTime, r.EndTime)
	if err != nil {
		return commands.SubmitBookingRequestParams{}, err
	}

	extras := make([]pricing.ExtraSelection, len(r.Extras))
	for i, e := range r.Extras {
		extras[i] = pricing.ExtraSelection{Code: e.Code, Quantity: e.Quantity}
	}

	return commands.SubmitBookingRequestParams{
		HallCode:      r.HallCode,
		Date:          date,
		StartMin:      startMin,
		EndMin:        endMin,
		GuestCount:    r.GuestCount,
		Extras:        extras,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Comment:       r.Comment,
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
