// Package middleware holds bot update middlewares.
package middleware

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"seatplan/pkg/contextx"
	"seatplan/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// AdminOnly drops updates not sent by adminID. Accepted updates carry the
// chat id and a chat scoped logger in the context.
func AdminOnly(adminID int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		userID, chatID, ok := Sender(update)
		if !ok {
			return nil
		}

		if userID != adminID {
			logger(ctx).Debug("update from non-admin dropped", "user-id", userID)
			return nil
		}

		c := contextx.WithChatID(ctx, contextx.ChatID(chatID))
		c = contextx.WithLogger(c, logger(ctx).With(logx.FieldChatID, chatID))

		return ctx.WithContext(c).Next(update)
	}
}

// Sender extracts the user and chat of a message or callback update.
func Sender(update telego.Update) (userID, chatID int64, ok bool) {
	switch {
	case update.Message != nil && update.Message.From != nil:
		return update.Message.From.ID, update.Message.Chat.ID, true
	case update.CallbackQuery != nil:
		chatID = update.CallbackQuery.From.ID
		if update.CallbackQuery.Message != nil {
			chatID = update.CallbackQuery.Message.GetChat().ID
		}
		return update.CallbackQuery.From.ID, chatID, true
	default:
		return 0, 0, false
	}
}
