package handler

import (
	"log/slog"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"deal_browser/internal/domain/entity"
	"deal_browser/internal/transport/bot/session"
	"deal_browser/pkg/logx"
)

func (h *Handler) OnMoreCallback(ctx *th.Context, query telego.CallbackQuery) error {
	sess, ok := h.lookup(ctx, query)
	if !ok {
		return nil
	}

	h.answer(ctx, query, "")
	sess.Controller.OnLoadMore(ctx)

	return nil
}

// OnDetailCallback opens the card behind a "detail:<token>" button.
func (h *Handler) OnDetailCallback(ctx *th.Context, query telego.CallbackQuery) error {
	sess, ok := h.lookup(ctx, query)
	if !ok {
		return nil
	}

	dealID, ok := sess.Display.DealFor(strings.TrimPrefix(query.Data, session.CallbackDetailPrefix))
	if !ok {
		h.answer(ctx, query, h.sessions.Messages().SessionExpired)
		return nil
	}

	h.answer(ctx, query, "")
	logger(ctx).Info("detail requested", slog.String(logx.FieldDealID, dealID))
	sess.Controller.OnOpenDetail(ctx, dealID)

	return nil
}

func (h *Handler) OnCloseCallback(ctx *th.Context, query telego.CallbackQuery) error {
	h.answer(ctx, query, "")

	if query.Message == nil {
		return nil
	}

	chatID := query.Message.GetChat().ID
	if sess, ok := h.sessions.Lookup(chatID); ok {
		sess.Controller.OnCloseDetail(ctx)
		return nil
	}

	// the session is gone, only the message is left to remove
	err := ctx.Bot().DeleteMessage(ctx, tu.Delete(tu.ID(chatID), query.Message.GetMessageID()))
	if err != nil {
		logger(ctx).Warn("bot.DeleteMessage", logx.Error(err))
	}

	return nil
}

func (h *Handler) OnStoreCallback(ctx *th.Context, query telego.CallbackQuery) error {
	h.answer(ctx, query, "")

	if query.Message == nil {
		return nil
	}

	chatID := query.Message.GetChat().ID
	h.dropPicker(ctx, query)
	h.session(ctx, chatID).Controller.OnStoreChange(ctx, strings.TrimPrefix(query.Data, session.CallbackStorePrefix))

	return nil
}

func (h *Handler) OnSortCallback(ctx *th.Context, query telego.CallbackQuery) error {
	h.answer(ctx, query, "")

	criterion, err := entity.ParseSortCriterion(strings.TrimPrefix(query.Data, session.CallbackSortPrefix))
	if err != nil || query.Message == nil {
		return nil
	}

	h.dropPicker(ctx, query)
	h.session(ctx, query.Message.GetChat().ID).Controller.OnSortChange(ctx, criterion)

	return nil
}

// lookup finds the session a grid button belongs to. A missing session is
// answered with an alert.
func (h *Handler) lookup(ctx *th.Context, query telego.CallbackQuery) (*session.Session, bool) {
	if query.Message != nil {
		if sess, ok := h.sessions.Lookup(query.Message.GetChat().ID); ok {
			return sess, true
		}
	}

	h.answer(ctx, query, h.sessions.Messages().SessionExpired)

	return nil, false
}

func (h *Handler) dropPicker(ctx *th.Context, query telego.CallbackQuery) {
	err := ctx.Bot().DeleteMessage(ctx, tu.Delete(tu.ID(query.Message.GetChat().ID), query.Message.GetMessageID()))
	if err != nil {
		logger(ctx).Warn("bot.DeleteMessage", logx.Error(err))
	}
}
