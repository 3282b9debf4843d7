package handler

import (
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"seatplan/internal/domain/service/planner"
	"seatplan/internal/transport/bot/view"
	"seatplan/pkg/contextx"
	"seatplan/pkg/logx"
)

// OnShuffle redraws the grid of a /layout answer with a fresh seed.
func (h *Handler) OnShuffle(ctx *th.Context, query telego.CallbackQuery) error {
	cohort, columns, err := ParseShuffleData(query.Data)
	if err != nil {
		return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID).WithText(view.InvalidCohort))
	}

	layout, err := h.svc.Layout(ctx, cohort, planner.LayoutRequest{Columns: columns, Regenerate: true})
	if err != nil {
		logger(ctx).Warn("shuffle failed", slog.String(logx.FieldCohort, cohort.String()), logx.Error(err))

		return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID).
			WithText(err.Error()).WithShowAlert())
	}

	if query.Message != nil {
		_, err = ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
			ChatID:      tu.ID(query.Message.GetChat().ID),
			MessageID:   query.Message.GetMessageID(),
			Text:        view.Grid(layout),
			ParseMode:   telego.ModeHTML,
			ReplyMarkup: shuffleKeyboard(cohort, columns),
		})
		if err != nil {
			logger(ctx).Warn("bot.EditMessageText", logx.Error(err))
		}
	} else if chatID, err := contextx.ChatIDFromContext(ctx); err == nil {
		// no message to edit, answer with a new one
		if err = h.sendHTML(ctx, int64(chatID), view.Grid(layout)); err != nil {
			logger(ctx).Warn("bot.SendMessage", logx.Error(err))
		}
	}

	return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))
}
