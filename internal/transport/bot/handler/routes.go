package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"seatplan/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	admin := bh.Group(th.AnyMessage())
	admin.Use(middleware.AdminOnly(adminID))

	admin.HandleMessage(h.OnStart, th.CommandEqual("start"))
	admin.HandleMessage(h.OnGroups, th.CommandEqual("groups"))
	admin.HandleMessage(h.OnLayout, th.CommandEqual("layout"))

	callbacks := bh.Group(th.AnyCallbackQuery())
	callbacks.Use(middleware.AdminOnly(adminID))

	callbacks.HandleCallbackQuery(h.OnShuffle, th.CallbackDataPrefix(callbackShuffle))
}
