package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hall-booking/internal/usecase/queries"
)

type BookingRequestResponse struct {
	ID            uuid.UUID       `json:"id"`
	HallID        uuid.UUID       `json:"hallId"`
	HallName      string          `json:"hallName"`
	EventDate     string          `json:"eventDate"`
	StartMin      int             `json:"startMin"`
	EndMin        int             `json:"endMin"`
	GuestCount    int             `json:"guestCount"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	Comment       *string         `json:"comment,omitempty"`
	PriceSet      string          `json:"priceSet"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func FromBookingRequestView(rm *queries.BookingRequestView) *BookingRequestResponse {
	return &BookingRequestResponse{
		ID:            rm.ID,
		HallID:        rm.HallID,
		HallName:      rm.HallName,
		EventDate:     rm.EventDate.Format("2006-01-02"),
		StartMin:      rm.StartMin,
		EndMin:        rm.EndMin,
		GuestCount:    rm.GuestCount,
		CustomerName:  rm.CustomerName,
		CustomerPhone: rm.CustomerPhone,
		Comment:       rm.Comment,
		PriceSet:      rm.PriceSet,
		Total:         rm.Total,
		Status:        rm.Status,
		CreatedAt:     rm.CreatedAt,
	}
}

func FromBookingRequestViews(rms []*queries.BookingRequestView) []*BookingRequestResponse {
	result := make([]*BookingRequestResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromBookingRequestView(rm)
	}
	return result
}
