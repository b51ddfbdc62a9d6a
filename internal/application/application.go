package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"deal_browser/internal/config"
	"deal_browser/internal/domain/service/browser"
	"deal_browser/internal/transport/bot"
	"deal_browser/internal/transport/bot/handler"
	"deal_browser/internal/transport/bot/middleware"
	"deal_browser/internal/transport/bot/session"
	"deal_browser/pkg/application/modules"
	"deal_browser/pkg/contextx"
	"deal_browser/pkg/logx"
)

// Run starts the Telegram bot with its probe and metric servers and blocks
// until ctx is done or one of them fails.
func Run(ctx context.Context) error {
	cfg, err := config.LoadBot()
	if err != nil {
		return fmt.Errorf("config.LoadBot: %w", err)
	}

	log := logx.NewLogger(os.Stdout, cfg.Log.Format, cfg.Log.SlogLevel()).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	slog.SetDefault(log)
	ctx = contextx.WithLogger(ctx, log)

	client := NewCheapSharkClient(cfg.CheapShark)

	sessions := session.NewSessions(client, cfg.Bot.SessionTTL).
		WithMessages(browser.MessagesFor(cfg.Browser.Language)).
		WithSearchLimit(cfg.Browser.SearchLimit)

	tgBot, err := bot.New(ctx, cfg.Bot, handler.New(sessions, client),
		middleware.Recovery,
		middleware.Logger(logx.NewSensitiveDataMasker(), cfg.CheapShark.LogFieldMaxLen),
		middleware.AllowList(cfg.Bot.AllowedUsers),
	)
	if err != nil {
		return fmt.Errorf("bot.New: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Ready:         tgBot.Ready,
	}.Run(gctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
	}.Run(gctx, g)

	modules.Background{Name: "bot"}.Run(gctx, g, tgBot)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	log.Info("application stopped")

	return nil
}
