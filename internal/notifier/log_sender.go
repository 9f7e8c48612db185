package notifier

import (
	"context"
	"log/slog"
)

// LogSender writes notifications to the application log instead of an
// external channel. Used when Telegram delivery is disabled so the
// outbox still drains in development.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) SendMessage(_ context.Context, text string) error {
	slog.Info("notification", "message", text)
	return nil
}
