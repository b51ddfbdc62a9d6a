package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"deal_browser/internal/config"
	"deal_browser/internal/transport/bot/handler"
	"deal_browser/pkg/contextx"
	"deal_browser/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Bot serves the deal browser over Telegram long polling.
type Bot struct {
	api         *telego.Bot
	cfg         config.Bot
	handler     *handler.Handler
	middlewares []th.Handler
	ready       atomic.Bool
}

func New(
	ctx context.Context,
	cfg config.Bot,
	h *handler.Handler,
	middlewares ...th.Handler,
) (*Bot, error) {
	api, err := telego.NewBot(cfg.Token, telego.WithLogger(newAPILogger(logger(ctx))))
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	return &Bot{
		api:         api,
		cfg:         cfg,
		handler:     h,
		middlewares: middlewares,
	}, nil
}

// Ready reports whether updates are being consumed.
func (b *Bot) Ready() bool {
	return b.ready.Load()
}

// Run polls updates until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	me, err := b.api.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("api.GetMe: %w", err)
	}

	updates, err := b.api.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout:        b.cfg.PollTimeout,
		AllowedUpdates: []string{"message", "callback_query"},
	})
	if err != nil {
		return fmt.Errorf("api.UpdatesViaLongPolling: %w", err)
	}

	botHandler, err := th.NewBotHandler(b.api, updates)
	if err != nil {
		return fmt.Errorf("th.NewBotHandler: %w", err)
	}

	b.handler.RegisterRoutes(botHandler, b.middlewares...)

	go func() {
		if err := botHandler.Start(); err != nil {
			logger(ctx).Error("botHandler.Start", logx.Error(err))
		}
	}()

	b.ready.Store(true)
	logger(ctx).Info("bot started", slog.String("username", me.Username))

	<-ctx.Done()

	b.ready.Store(false)

	if err := botHandler.Stop(); err != nil {
		logger(ctx).Error("botHandler.Stop", logx.Error(err))
	}

	return ctx.Err()
}

// apiLogger routes telego's own logs into slog with the bot token masked.
type apiLogger struct {
	log    *slog.Logger
	masker logx.SensitiveDataMaskerInterface
}

func newAPILogger(log *slog.Logger) apiLogger {
	return apiLogger{log: log.With(slog.String("module", "telego")), masker: logx.NewSensitiveDataMasker()}
}

func (l apiLogger) Debugf(format string, args ...any) {
	l.log.Debug(string(l.masker.Mask(fmt.Appendf(nil, format, args...))))
}

func (l apiLogger) Errorf(format string, args ...any) {
	l.log.Error(string(l.masker.Mask(fmt.Appendf(nil, format, args...))))
}
