// Package notifier tells the host chat when a cohort's layout changes.
package notifier

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/service/planner"
	"seatplan/internal/transport/bot/view"
	"seatplan/pkg/contextx"
	"seatplan/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type sender interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
}

type TelegramBot struct {
	bot    sender
	chatID int64
}

func NewTelegramBot(token string, chatID int64) (*TelegramBot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	return NewTelegramBotWithSender(bot, chatID), nil
}

func NewTelegramBotWithSender(bot sender, chatID int64) *TelegramBot {
	return &TelegramBot{bot: bot, chatID: chatID}
}

func (b *TelegramBot) LayoutRefreshed(ctx context.Context, plan planner.Plan, layout entity.ClassroomLayout) error {
	if err := b.SendHTML(ctx, view.Summary(plan, layout)); err != nil {
		return err
	}

	logger(ctx).Debug("layout summary sent", logx.FieldCohort, plan.Cohort.String(), logx.FieldChatID, b.chatID)

	return nil
}

func (b *TelegramBot) SendHTML(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}
