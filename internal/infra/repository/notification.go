package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/pgconv"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

const createNotificationJobSQL = `
INSERT INTO notification_jobs (id, kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5, 'pending')
`

func (r *NotificationRepository) CreateJob(ctx context.Context, db infra.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := db.Exec(ctx, createNotificationJobSQL,
		uuid.New(), kind, topic, payload,
		pgtype.Timestamptz{Time: runAt, Valid: true},
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err, infra.KindFromPgErr(err))
	}
	return nil
}

const markJobSentSQL = `
UPDATE notification_jobs
SET status = 'sent', attempts = attempts + 1, last_error = NULL, updated_at = now()
WHERE id = $1
`

func (r *NotificationRepository) MarkSent(ctx context.Context, db infra.DBTX, jobID uuid.UUID) error {
	if _, err := db.Exec(ctx, markJobSentSQL, jobID); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

const markJobFailedSQL = `
UPDATE notification_jobs
SET attempts = attempts + 1,
    last_error = $2,
    status = CASE WHEN attempts + 1 >= $3 THEN 'failed' ELSE 'pending' END,
    updated_at = now()
WHERE id = $1
`

// MarkFailed records a delivery failure; once attempts reach maxAttempts
// the job leaves the pending pool for good.
func (r *NotificationRepository) MarkFailed(ctx context.Context, db infra.DBTX, jobID uuid.UUID, deliveryErr string, maxAttempts int32) error {
	if _, err := db.Exec(ctx, markJobFailedSQL, jobID, pgconv.StringToPgtype(deliveryErr), maxAttempts); err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
