//go:build unit

package notifier_test

import (
	"context"
	"encoding/json"
	"testing"

	"hall-booking/internal/notifier"
	"hall-booking/internal/usecase/queries"
	notifiermock "hall-booking/tests/mock/notifier"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func pendingJob(t *testing.T) *queries.NotificationJobView {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"request_id":     "7e46ddde-1f0d-4d13-9a5a-3f4a1f6d1e22",
		"hall_name":      "Grand Hall",
		"event_date":     "2026-06-01",
		"start_min":      14 * 60,
		"end_min":        17 * 60,
		"guest_count":    25,
		"customer_name":  "Anna Petrova",
		"customer_phone": "+7 900 123-45-67",
		"comment":        "Wedding anniversary",
		"price_set":      "standard",
		"total":          "11400",
	})
	assert.NoError(t, err)

	return &queries.NotificationJobView{
		ID:      uuid.New(),
		Kind:    "telegram",
		Topic:   "booking_request.created",
		Payload: payload,
		Status:  "pending",
	}
}

func newDispatcher(t *testing.T) (*notifier.Dispatcher, *notifiermock.MockPendingJobStore, *notifiermock.MockJobRepository, *notifiermock.MockMessageSender) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := notifiermock.NewMockPendingJobStore(ctrl)
	repo := notifiermock.NewMockJobRepository(ctrl)
	sender := notifiermock.NewMockMessageSender(ctrl)
	return notifier.NewDispatcher(nil, store, repo, sender), store, repo, sender
}

func TestDispatchPending(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers and marks jobs sent", func(t *testing.T) {
		d, store, repo, sender := newDispatcher(t)
		job := pendingJob(t)
		store.EXPECT().GetPendingJobs(gomock.Any(), gomock.Any()).
			Return([]*queries.NotificationJobView{job}, nil)
		sender.EXPECT().SendMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, text string) error {
				assert.Contains(t, text, "Grand Hall")
				assert.Contains(t, text, "2026-06-01, 14:00-17:00")
				assert.Contains(t, text, "Anna Petrova, +7 900 123-45-67")
				assert.Contains(t, text, "Comment: Wedding anniversary")
				assert.Contains(t, text, "Quote: 11400 (price set standard)")
				return nil
			})
		repo.EXPECT().MarkSent(gomock.Any(), gomock.Any(), job.ID).Return(nil)

		d.DispatchPending(ctx)
	})

	t.Run("delivery failure marks the job failed", func(t *testing.T) {
		d, store, repo, sender := newDispatcher(t)
		job := pendingJob(t)
		store.EXPECT().GetPendingJobs(gomock.Any(), gomock.Any()).
			Return([]*queries.NotificationJobView{job}, nil)
		sender.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(assert.AnError)
		repo.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), job.ID, assert.AnError.Error(), int32(5)).Return(nil)

		d.DispatchPending(ctx)
	})

	t.Run("unparseable payload never reaches the sender", func(t *testing.T) {
		d, store, repo, _ := newDispatcher(t)
		job := pendingJob(t)
		job.Payload = []byte("not json")
		store.EXPECT().GetPendingJobs(gomock.Any(), gomock.Any()).
			Return([]*queries.NotificationJobView{job}, nil)
		repo.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), job.ID, gomock.Any(), int32(5)).Return(nil)

		d.DispatchPending(ctx)
	})

	t.Run("poll failure is swallowed", func(t *testing.T) {
		d, store, _, _ := newDispatcher(t)
		store.EXPECT().GetPendingJobs(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		d.DispatchPending(ctx)
	})

	t.Run("continues past a failing job", func(t *testing.T) {
		d, store, repo, sender := newDispatcher(t)
		first := pendingJob(t)
		second := pendingJob(t)
		store.EXPECT().GetPendingJobs(gomock.Any(), gomock.Any()).
			Return([]*queries.NotificationJobView{first, second}, nil)
		gomock.InOrder(
			sender.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(assert.AnError),
			sender.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(nil),
		)
		repo.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), first.ID, gomock.Any(), int32(5)).Return(nil)
		repo.EXPECT().MarkSent(gomock.Any(), gomock.Any(), second.ID).Return(nil)

		d.DispatchPending(ctx)
	})
}
