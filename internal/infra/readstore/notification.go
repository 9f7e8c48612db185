package readstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/pgconv"
	"hall-booking/internal/usecase/queries"
)

type NotificationReadStore struct {
	db infra.DBTX
}

func NewNotificationReadStore(db infra.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: db}
}

const pendingNotificationJobsSQL = `
SELECT id, kind, topic, payload, run_at, attempts, status, last_error, created_at, updated_at
FROM notification_jobs
WHERE status = 'pending' AND run_at <= now()
ORDER BY run_at
LIMIT $1
`

func (s *NotificationReadStore) GetPendingJobs(ctx context.Context, limit int32) ([]*queries.NotificationJobView, error) {
	rows, err := s.db.Query(ctx, pendingNotificationJobsSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get pending notification jobs", err)
	}
	defer rows.Close()

	var result []*queries.NotificationJobView
	for rows.Next() {
		var (
			view      queries.NotificationJobView
			runAt     pgtype.Timestamptz
			lastError pgtype.Text
			createdAt pgtype.Timestamptz
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID, &view.Kind, &view.Topic, &view.Payload,
			&runAt, &view.Attempts, &view.Status, &lastError,
			&createdAt, &updatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job row", err)
		}
		view.RunAt = pgconv.TimeFromPgtype(runAt)
		view.LastError = pgconv.StringPtrFromPgtype(lastError)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification job rows", err)
	}
	return result, nil
}
