package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/errs"
)

var ErrBookingRequestNotFound = errs.New("booking request not found")

type BookingRequestFilter struct {
	HallID   *uuid.UUID
	Status   *string
	DateFrom *time.Time
	DateTo   *time.Time
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingRequestView, error)
	List(ctx context.Context, filter BookingRequestFilter) ([]*BookingRequestView, error)
}

type BookingQueries interface {
	GetBookingRequest(ctx context.Context, id uuid.UUID) (*BookingRequestView, error)
	ListBookingRequests(ctx context.Context, filter BookingRequestFilter) ([]*BookingRequestView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (b *bookingQueriesImpl) GetBookingRequest(ctx context.Context, id uuid.UUID) (*BookingRequestView, error) {
	view, err := b.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingRequestNotFound
		}
		return nil, errs.Mark(err, ErrCatalogFailed)
	}
	return view, nil
}

func (b *bookingQueriesImpl) ListBookingRequests(ctx context.Context, filter BookingRequestFilter) ([]*BookingRequestView, error) {
	views, err := b.store.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogFailed)
	}
	return views, nil
}
