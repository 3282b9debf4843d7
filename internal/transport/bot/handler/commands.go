package handler

import (
	"errors"
	"fmt"
	"html"
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"seatplan/internal/domain/service/planner"
	"seatplan/internal/domain/value"
	"seatplan/internal/transport/bot/view"
	"seatplan/pkg/logx"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnGroups(ctx *th.Context, msg telego.Message) error {
	cohort, err := ParseGroupsArgs(msg.Text)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, usage(err, view.UsageGroups))
	}

	plan, err := h.svc.Groups(ctx, cohort)
	if err != nil {
		return h.failed(ctx, msg.Chat.ID, cohort, err)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.Quality(plan)+"\n"+view.Groups(plan.Groups))
}

func (h *Handler) OnLayout(ctx *th.Context, msg telego.Message) error {
	cohort, columns, err := ParseLayoutArgs(msg.Text)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, usage(err, view.UsageLayout))
	}

	layout, err := h.svc.Layout(ctx, cohort, planner.LayoutRequest{Columns: columns})
	if err != nil {
		return h.failed(ctx, msg.Chat.ID, cohort, err)
	}

	_, err = ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(msg.Chat.ID), view.Grid(layout)).
		WithParseMode(telego.ModeHTML).
		WithReplyMarkup(shuffleKeyboard(cohort, columns)))

	return err
}

func shuffleKeyboard(cohort value.Cohort, columns int) *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton(view.Regenerate).WithCallbackData(ShuffleData(cohort, columns)),
		),
	)
}

func usage(err error, text string) string {
	if errors.Is(err, value.ErrInvalidCohort) {
		return view.InvalidCohort
	}
	return text
}

func (h *Handler) failed(ctx *th.Context, chatID int64, cohort value.Cohort, err error) error {
	logger(ctx).Warn("plan failed", slog.String(logx.FieldCohort, cohort.String()), logx.Error(err))

	return h.sendHTML(ctx, chatID, fmt.Sprintf(view.Failed, html.EscapeString(err.Error())))
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), text).WithParseMode(telego.ModeHTML))
	return err
}
