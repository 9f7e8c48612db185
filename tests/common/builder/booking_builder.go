//go:build unit

package builder

import (
	"time"

	dombooking "hall-booking/internal/domain/booking"
	reqdto "hall-booking/internal/handler/dto/request"
	"hall-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingRequestBuilder struct {
	ID            uuid.UUID
	HallID        uuid.UUID
	HallCode      string
	HallName      string
	EventDate     time.Time
	StartMin      int
	EndMin        int
	GuestCount    int
	CustomerName  string
	CustomerPhone string
	Comment       string
	PriceSet      string
	Total         decimal.Decimal
	Status        string
}

func NewBookingRequestBuilder() *BookingRequestBuilder {
	return &BookingRequestBuilder{
		ID:            uuid.New(),
		HallID:        uuid.New(),
		HallCode:      "grand-hall",
		HallName:      "Grand Hall",
		EventDate:     time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		StartMin:      14 * 60,
		EndMin:        17 * 60,
		GuestCount:    25,
		CustomerName:  "Anna Petrova",
		CustomerPhone: "+7 900 123-45-67",
		Comment:       "Birthday party",
		PriceSet:      "standard",
		Total:         decimal.NewFromInt(11400),
		Status:        "new",
	}
}

func (b *BookingRequestBuilder) With(mutate func(*BookingRequestBuilder)) *BookingRequestBuilder {
	mutate(b)
	return b
}

func (b *BookingRequestBuilder) BuildDomain() (*dombooking.Request, error) {
	return dombooking.NewRequest(
		b.HallID, b.EventDate, b.StartMin, b.EndMin, b.GuestCount,
		b.CustomerName, b.CustomerPhone, b.Comment, b.PriceSet, b.Total,
	)
}

func (b *BookingRequestBuilder) BuildView() *queries.BookingRequestView {
	comment := b.Comment
	view := &queries.BookingRequestView{
		ID:            b.ID,
		HallID:        b.HallID,
		HallName:      b.HallName,
		EventDate:     b.EventDate,
		StartMin:      b.StartMin,
		EndMin:        b.EndMin,
		GuestCount:    b.GuestCount,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		PriceSet:      b.PriceSet,
		Total:         b.Total,
		Status:        b.Status,
		CreatedAt:     time.Now(),
	}
	if comment != "" {
		view.Comment = &comment
	}
	return view
}

func (b *BookingRequestBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		HallCode:      b.HallCode,
		Date:          b.EventDate.Format("2006-01-02"),
		StartTime:     clockTime(b.StartMin),
		EndTime:       clockTime(b.EndMin),
		GuestCount:    b.GuestCount,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Comment:       b.Comment,
	}
}
