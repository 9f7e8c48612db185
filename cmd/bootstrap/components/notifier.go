package components

import (
	"context"

	"hall-booking/internal/integrations/telegram"
	"hall-booking/internal/notifier"
	"hall-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewMessageSender,
		notifier.NewDispatcher,
	),
	fx.Invoke(registerDispatcher),
)

func NewMessageSender(cfg config.Config) notifier.MessageSender {
	if !cfg.Telegram.Enabled {
		return notifier.NewLogSender()
	}
	return telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Telegram.Timeout)
}

func registerDispatcher(lc fx.Lifecycle, d *notifier.Dispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return d.Start()
		},
		OnStop: func(_ context.Context) error {
			d.Stop()
			return nil
		},
	})
}
