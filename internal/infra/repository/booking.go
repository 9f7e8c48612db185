package repository

import (
	"context"

	"github.com/google/uuid"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/pgconv"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingRequestSQL = `
INSERT INTO booking_requests (
    id, hall_id, event_date, start_min, end_min, guest_count,
    customer_name, customer_phone, comment, price_set_code, total, status
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id
`

func (r *BookingRepository) Create(ctx context.Context, db infra.DBTX, req *booking.Request) (uuid.UUID, error) {
	var comment *string
	if c := req.Comment(); c != "" {
		comment = &c
	}

	var id uuid.UUID
	err := db.QueryRow(ctx, createBookingRequestSQL,
		req.ID(), req.HallID(),
		pgconv.DateToPgtype(req.EventDate()),
		req.StartMin(), req.EndMin(), req.GuestCount(),
		req.CustomerName(), req.CustomerPhone(),
		pgconv.StringPtrToPgtype(comment),
		req.PriceSet(),
		pgconv.NumericFromDecimal(req.Total()),
		string(req.Status()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking request", err, infra.KindFromPgErr(err))
	}
	return id, nil
}

const updateBookingStatusSQL = `
UPDATE booking_requests
SET status = $2, updated_at = now()
WHERE id = $1
`

func (r *BookingRepository) UpdateStatus(ctx context.Context, db infra.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := db.Exec(ctx, updateBookingStatusSQL, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking request status", err, infra.KindFromPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking request not found", pgconv.ErrNoRowsAffected, infra.KindNotFound)
	}
	return nil
}
