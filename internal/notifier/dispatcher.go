package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	cron "github.com/robfig/cron/v3"

	"hall-booking/internal/infra"
	"hall-booking/internal/usecase/queries"
)

const (
	pollBatchSize = 20
	maxAttempts   = 5
)

type MessageSender interface {
	SendMessage(ctx context.Context, text string) error
}

type PendingJobStore interface {
	GetPendingJobs(ctx context.Context, limit int32) ([]*queries.NotificationJobView, error)
}

type JobRepository interface {
	MarkSent(ctx context.Context, db infra.DBTX, jobID uuid.UUID) error
	MarkFailed(ctx context.Context, db infra.DBTX, jobID uuid.UUID, deliveryErr string, maxAttempts int32) error
}

// Dispatcher drains the notification outbox on a cron schedule. Delivery
// failures only touch the job row; the booking request they belong to is
// already committed.
type Dispatcher struct {
	cron   *cron.Cron
	db     infra.DBTX
	store  PendingJobStore
	repo   JobRepository
	sender MessageSender
}

func NewDispatcher(db infra.DBTX, store PendingJobStore, repo JobRepository, sender MessageSender) *Dispatcher {
	return &Dispatcher{
		cron:   cron.New(),
		db:     db,
		store:  store,
		repo:   repo,
		sender: sender,
	}
}

func (d *Dispatcher) Start() error {
	if _, err := d.cron.AddFunc("@every 1m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Second)
		defer cancel()
		d.DispatchPending(ctx)
	}); err != nil {
		return err
	}
	d.cron.Start()
	return nil
}

func (d *Dispatcher) Stop() {
	ctx := d.cron.Stop()
	<-ctx.Done()
}

func (d *Dispatcher) DispatchPending(ctx context.Context) {
	jobs, err := d.store.GetPendingJobs(ctx, pollBatchSize)
	if err != nil {
		slog.Error("failed to poll notification jobs", "error", err)
		return
	}

	for _, job := range jobs {
		d.dispatchOne(ctx, job)
	}
}

func (d *Dispatcher) dispatchOne(ctx context.Context, job *queries.NotificationJobView) {
	text, err := renderMessage(job)
	if err != nil {
		slog.Error("failed to render notification", "job_id", job.ID, "error", err)
		d.markFailed(ctx, job.ID, err)
		return
	}

	if err := d.sender.SendMessage(ctx, text); err != nil {
		slog.Warn("notification delivery failed", "job_id", job.ID, "attempts", job.Attempts+1, "error", err)
		d.markFailed(ctx, job.ID, err)
		return
	}

	if err := d.repo.MarkSent(ctx, d.db, job.ID); err != nil {
		slog.Error("failed to mark notification job sent", "job_id", job.ID, "error", err)
	}
}

func (d *Dispatcher) markFailed(ctx context.Context, jobID uuid.UUID, cause error) {
	if err := d.repo.MarkFailed(ctx, d.db, jobID, cause.Error(), maxAttempts); err != nil {
		slog.Error("failed to mark notification job failed", "job_id", jobID, "error", err)
	}
}

type bookingRequestPayload struct {
	RequestID     uuid.UUID       `json:"request_id"`
	HallName      string          `json:"hall_name"`
	EventDate     string          `json:"event_date"`
	StartMin      int             `json:"start_min"`
	EndMin        int             `json:"end_min"`
	GuestCount    int             `json:"guest_count"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	Comment       string          `json:"comment"`
	PriceSet      string          `json:"price_set"`
	Total         json.RawMessage `json:"total"`
}

func renderMessage(job *queries.NotificationJobView) (string, error) {
	var p bookingRequestPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New booking request %s\n", p.RequestID)
	fmt.Fprintf(&b, "Hall: %s\n", p.HallName)
	fmt.Fprintf(&b, "Date: %s, %s-%s\n", p.EventDate, formatMinutes(p.StartMin), formatMinutes(p.EndMin))
	fmt.Fprintf(&b, "Guests: %d\n", p.GuestCount)
	fmt.Fprintf(&b, "Customer: %s, %s\n", p.CustomerName, p.CustomerPhone)
	if p.Comment != "" {
		fmt.Fprintf(&b, "Comment: %s\n", p.Comment)
	}
	fmt.Fprintf(&b, "Quote: %s (price set %s)", strings.Trim(string(p.Total), `"`), p.PriceSet)
	return b.String(), nil
}

// formatMinutes prints minutes from the rental-day midnight as HH:MM;
// a value past 24:00 wraps into the next calendar day.
func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", (m/60)%24, m%60)
}
