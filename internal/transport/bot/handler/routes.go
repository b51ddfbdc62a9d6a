package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"deal_browser/internal/transport/bot/session"
)

// RegisterRoutes binds the commands and buttons. middlewares run before every handler.
func (h *Handler) RegisterRoutes(bh *th.BotHandler, middlewares ...th.Handler) {
	for _, m := range middlewares {
		bh.Use(m)
	}

	messages := bh.Group(th.AnyMessage())

	messages.HandleMessage(h.OnStart, th.CommandEqual("start"))
	messages.HandleMessage(h.OnHelp, th.CommandEqual("help"))
	messages.HandleMessage(h.OnDeals, th.CommandEqual("deals"))
	messages.HandleMessage(h.OnSearch, th.CommandEqual("search"))
	messages.HandleMessage(h.OnStore, th.CommandEqual("store"))
	messages.HandleMessage(h.OnStores, th.CommandEqual("stores"))
	messages.HandleMessage(h.OnSort, th.CommandEqual("sort"))
	messages.HandleMessage(h.OnMore, th.CommandEqual("more"))
	messages.HandleMessage(h.OnText, th.AnyMessageWithText(), th.Not(th.AnyCommand()))

	callbacks := bh.Group(th.AnyCallbackQuery())

	callbacks.HandleCallbackQuery(h.OnMoreCallback, th.CallbackDataEqual(session.CallbackMore))
	callbacks.HandleCallbackQuery(h.OnCloseCallback, th.CallbackDataEqual(session.CallbackClose))
	callbacks.HandleCallbackQuery(h.OnDetailCallback, th.CallbackDataPrefix(session.CallbackDetailPrefix))
	callbacks.HandleCallbackQuery(h.OnStoreCallback, th.CallbackDataPrefix(session.CallbackStorePrefix))
	callbacks.HandleCallbackQuery(h.OnSortCallback, th.CallbackDataPrefix(session.CallbackSortPrefix))
}
