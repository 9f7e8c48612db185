package readstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/pgconv"
	"hall-booking/internal/usecase/queries"
)

type BookingReadStore struct {
	db infra.DBTX
}

func NewBookingReadStore(db infra.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const bookingRequestColumns = `
br.id, br.hall_id, h.name, br.event_date, br.start_min, br.end_min, br.guest_count,
br.customer_name, br.customer_phone, br.comment, br.price_set_code, br.total,
br.status, br.created_at
`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingRequestView, error) {
	row := s.db.QueryRow(ctx, `
SELECT `+bookingRequestColumns+`
FROM booking_requests br
JOIN halls h ON h.id = br.hall_id
WHERE br.id = $1`, id)

	view, err := scanBookingRequestView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking request by ID", err)
	}
	return view, nil
}

// List filters are combined with AND; a nil filter field is skipped.
func (s *BookingReadStore) List(ctx context.Context, filter queries.BookingRequestFilter) ([]*queries.BookingRequestView, error) {
	sql := `
SELECT ` + bookingRequestColumns + `
FROM booking_requests br
JOIN halls h ON h.id = br.hall_id
WHERE 1=1`
	var args []any

	if filter.HallID != nil {
		args = append(args, *filter.HallID)
		sql += fmt.Sprintf(" AND br.hall_id = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		sql += fmt.Sprintf(" AND br.status = $%d", len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, pgconv.DateToPgtype(*filter.DateFrom))
		sql += fmt.Sprintf(" AND br.event_date >= $%d", len(args))
	}
	if filter.DateTo != nil {
		args = append(args, pgconv.DateToPgtype(*filter.DateTo))
		sql += fmt.Sprintf(" AND br.event_date <= $%d", len(args))
	}
	sql += " ORDER BY br.created_at DESC"

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking requests", err)
	}
	defer rows.Close()

	var result []*queries.BookingRequestView
	for rows.Next() {
		view, err := scanBookingRequestView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking request row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking request rows", err)
	}
	return result, nil
}

func scanBookingRequestView(row pgx.Row) (*queries.BookingRequestView, error) {
	var (
		view      queries.BookingRequestView
		eventDate pgtype.Date
		comment   pgtype.Text
		total     pgtype.Numeric
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(
		&view.ID, &view.HallID, &view.HallName, &eventDate,
		&view.StartMin, &view.EndMin, &view.GuestCount,
		&view.CustomerName, &view.CustomerPhone, &comment,
		&view.PriceSet, &total, &view.Status, &createdAt,
	); err != nil {
		return nil, err
	}

	var err error
	if view.Total, err = pgconv.DecimalFromNumeric(total); err != nil {
		return nil, err
	}
	view.EventDate = pgconv.DateFromPgtype(eventDate)
	view.Comment = pgconv.StringPtrFromPgtype(comment)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
