package handler

import (
	"log/slog"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"deal_browser/internal/domain/entity"
	"deal_browser/internal/transport/bot/view"
	"deal_browser/pkg/logx"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	if err := h.sendHTML(ctx, msg.Chat.ID, view.Help(h.sessions.Messages()), nil); err != nil {
		return err
	}

	h.session(ctx, msg.Chat.ID).Controller.Start(ctx)

	return nil
}

func (h *Handler) OnHelp(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.Help(h.sessions.Messages()), nil)
}

func (h *Handler) OnDeals(ctx *th.Context, msg telego.Message) error {
	h.session(ctx, msg.Chat.ID).Controller.Start(ctx)

	return nil
}

// OnSearch handles /search <title>.
func (h *Handler) OnSearch(ctx *th.Context, msg telego.Message) error {
	text := commandArgs(msg.Text)
	if text == "" {
		return h.sendHTML(ctx, msg.Chat.ID, view.Text(h.sessions.Messages().SearchUsage), nil)
	}

	logger(ctx).Info("search", slog.String(logx.FieldQuery, text))
	h.session(ctx, msg.Chat.ID).Controller.OnSearch(ctx, text)

	return nil
}

// OnText treats any plain message as a search.
func (h *Handler) OnText(ctx *th.Context, msg telego.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	h.session(ctx, msg.Chat.ID).Controller.OnSearch(ctx, text)

	return nil
}

// OnStore handles /store [id|all]. Without an argument it shows the store picker.
func (h *Handler) OnStore(ctx *th.Context, msg telego.Message) error {
	sess := h.session(ctx, msg.Chat.ID)

	arg := commandArgs(msg.Text)
	if arg == "" {
		stores, err := h.activeStores(ctx)
		if err != nil {
			logger(ctx).Warn("activeStores", logx.Error(err))
			return h.sendHTML(ctx, msg.Chat.ID, view.Text(h.sessions.Messages().LoadError), nil)
		}

		m := h.sessions.Messages()
		return h.sendHTML(ctx, msg.Chat.ID, view.Text(m.StoreFilter),
			storeKeyboard(stores, sess.Controller.State().StoreID, m))
	}

	if strings.EqualFold(arg, "all") {
		arg = ""
	}

	sess.Controller.OnStoreChange(ctx, arg)

	return nil
}

func (h *Handler) OnStores(ctx *th.Context, msg telego.Message) error {
	stores, err := h.activeStores(ctx)
	if err != nil {
		logger(ctx).Warn("activeStores", logx.Error(err))
		return h.sendHTML(ctx, msg.Chat.ID, view.Text(h.sessions.Messages().LoadError), nil)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.Stores(stores, h.sessions.Messages()), nil)
}

// OnSort handles /sort [criterion]. Without a valid argument it shows the picker.
func (h *Handler) OnSort(ctx *th.Context, msg telego.Message) error {
	sess := h.session(ctx, msg.Chat.ID)
	m := h.sessions.Messages()

	arg := commandArgs(msg.Text)
	if arg == "" {
		return h.sendHTML(ctx, msg.Chat.ID, view.Text(m.SortBy), sortKeyboard(sess.Controller.State().Sort, m))
	}

	criterion, err := entity.ParseSortCriterion(arg)
	if err != nil {
		logger(ctx).Info("entity.ParseSortCriterion", logx.Error(err))
		return h.sendHTML(ctx, msg.Chat.ID, view.Text(m.SortBy), sortKeyboard(sess.Controller.State().Sort, m))
	}

	sess.Controller.OnSortChange(ctx, criterion)

	return nil
}

func (h *Handler) OnMore(ctx *th.Context, msg telego.Message) error {
	h.session(ctx, msg.Chat.ID).Controller.OnLoadMore(ctx)

	return nil
}
