package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/domain/pricing"
	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/clock"
	"hall-booking/internal/pkg/errs"
	"hall-booking/internal/usecase/queries"
)

var (
	ErrBookingRequestNotFound = errs.New("booking request not found")
	ErrInvalidStatusValue     = errs.New("invalid booking request status")
)

const bookingNotificationTopic = "booking_request.created"

type BookingRepository interface {
	Create(ctx context.Context, db infra.DBTX, req *booking.Request) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, db infra.DBTX, id uuid.UUID, status booking.Status) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, db infra.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type SubmitBookingRequestParams struct {
	HallCode      string
	Date          time.Time
	StartMin      int
	EndMin        int
	GuestCount    int
	Extras        []pricing.ExtraSelection
	CustomerName  string
	CustomerPhone string
	Comment       string
}

type BookingCommands interface {
	SubmitBookingRequest(ctx context.Context, params SubmitBookingRequestParams) (*queries.BookingRequestView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type bookingCommandsImpl struct {
	bookingRepo      BookingRepository
	notificationRepo NotificationRepository
	halls            queries.HallReadStore
	quoteQueries     queries.QuoteQueries
	bookingQueries   queries.BookingQueries
	db               *pgxpool.Pool
	clock            clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	notificationRepo NotificationRepository,
	halls queries.HallReadStore,
	quoteQueries queries.QuoteQueries,
	bookingQueries queries.BookingQueries,
	db *pgxpool.Pool,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:      bookingRepo,
		notificationRepo: notificationRepo,
		halls:            halls,
		quoteQueries:     quoteQueries,
		bookingQueries:   bookingQueries,
		db:               db,
		clock:            clock,
	}
}

// SubmitBookingRequest prices the inquiry exactly as the public quote
// endpoint would, then stores the request together with the notification
// job in one transaction so a stored request always has a pending
// notification.
func (b *bookingCommandsImpl) SubmitBookingRequest(ctx context.Context, params SubmitBookingRequestParams) (*queries.BookingRequestView, error) {
	hallView, err := b.halls.FindByCode(ctx, params.HallCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, queries.ErrHallNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailed)
	}

	quote, err := b.quoteQueries.GetQuote(ctx, queries.QuoteParams{
		HallCode:   params.HallCode,
		Date:       params.Date,
		StartMin:   params.StartMin,
		EndMin:     params.EndMin,
		GuestCount: params.GuestCount,
		Extras:     params.Extras,
	})
	if err != nil {
		return nil, err
	}

	request, err := booking.NewRequest(
		hallView.ID,
		params.Date,
		params.StartMin,
		params.EndMin,
		params.GuestCount,
		params.CustomerName,
		params.CustomerPhone,
		params.Comment,
		quote.PriceSet,
		quote.Total,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	return b.executeSubmitTransaction(ctx, request, hallView.Name, quote)
}

func (b *bookingCommandsImpl) executeSubmitTransaction(
	ctx context.Context,
	request *booking.Request,
	hallName string,
	quote *queries.QuoteView,
) (*queries.BookingRequestView, error) {
	tx, err := b.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	requestID, err := b.bookingRepo.Create(ctx, tx, request)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailed)
	}

	payload, err := json.Marshal(map[string]any{
		"request_id":     requestID,
		"hall_name":      hallName,
		"event_date":     request.EventDate().Format("2006-01-02"),
		"start_min":      request.StartMin(),
		"end_min":        request.EndMin(),
		"guest_count":    request.GuestCount(),
		"customer_name":  request.CustomerName(),
		"customer_phone": request.CustomerPhone(),
		"comment":        request.Comment(),
		"price_set":      quote.PriceSet,
		"total":          quote.Total,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailed)
	}

	if err := b.notificationRepo.CreateJob(ctx, tx, "telegram", bookingNotificationTopic, payload, b.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrStorageFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrStorageFailed)
	}

	view, err := b.bookingQueries.GetBookingRequest(ctx, requestID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailed)
	}
	return view, nil
}

func (b *bookingCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	newStatus, err := booking.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrInvalidStatusValue)
	}

	if err := b.bookingRepo.UpdateStatus(ctx, b.db, id, newStatus); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingRequestNotFound
		}
		return errs.Mark(err, ErrStorageFailed)
	}
	return nil
}
