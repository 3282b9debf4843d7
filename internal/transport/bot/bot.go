// Package bot runs the admin's Telegram command interface.
package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"seatplan/internal/transport/bot/handler"
	"seatplan/pkg/contextx"
	"seatplan/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Bot struct {
	bot     *telego.Bot
	handler *handler.Handler
	adminID int64
}

func New(token string, adminID int64, h *handler.Handler) (*Bot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	return &Bot{
		bot:     bot,
		handler: h,
		adminID: adminID,
	}, nil
}

// Run long polls for updates until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: 60,
	})
	if err != nil {
		return fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
	}

	bh, err := th.NewBotHandler(b.bot, updates)
	if err != nil {
		return fmt.Errorf("th.NewBotHandler: %w", err)
	}

	b.handler.RegisterRoutes(bh, b.adminID)

	errCh := make(chan error, 1)

	go func() {
		errCh <- bh.Start()
	}()

	logger(ctx).Info("bot started")

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("botHandler.Start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	if err = bh.Stop(); err != nil {
		logger(ctx).Error("botHandler.Stop", logx.Error(err))
	}

	logger(ctx).Info("bot stopped")

	return nil
}
