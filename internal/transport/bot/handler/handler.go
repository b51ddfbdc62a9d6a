package handler

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/samber/lo"

	"deal_browser/internal/domain/entity"
	"deal_browser/internal/transport/bot/session"
	"deal_browser/pkg/contextx"
	"deal_browser/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type StoreLister interface {
	ListStores(ctx context.Context) ([]entity.Store, error)
}

type Handler struct {
	sessions *session.Sessions
	stores   StoreLister
}

func New(sessions *session.Sessions, stores StoreLister) *Handler {
	return &Handler{
		sessions: sessions,
		stores:   stores,
	}
}

func (h *Handler) activeStores(ctx context.Context) ([]entity.Store, error) {
	stores, err := h.stores.ListStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("stores.ListStores: %w", err)
	}

	return lo.Filter(stores, func(s entity.Store, _ int) bool {
		return s.Active
	}), nil
}

func (h *Handler) session(ctx *th.Context, chatID int64) *session.Session {
	sess, created := h.sessions.Get(ctx.Bot(), chatID)
	if created {
		logger(ctx).Debug("session created", "sessions", h.sessions.Len())
	}

	return sess
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string, markup telego.ReplyMarkup) error {
	msg := tu.Message(tu.ID(chatID), text).WithParseMode(telego.ModeHTML)
	if markup != nil {
		msg = msg.WithReplyMarkup(markup)
	}

	if _, err := ctx.Bot().SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}

func (h *Handler) answer(ctx *th.Context, query telego.CallbackQuery, alert string) {
	params := tu.CallbackQuery(query.ID)
	if alert != "" {
		params = params.WithText(alert).WithShowAlert()
	}

	if err := ctx.Bot().AnswerCallbackQuery(ctx, params); err != nil {
		logger(ctx).Warn("bot.AnswerCallbackQuery", logx.Error(err))
	}
}
