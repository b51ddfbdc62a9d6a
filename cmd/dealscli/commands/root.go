package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"deal_browser/internal/application"
	"deal_browser/internal/config"
	"deal_browser/internal/domain/service/browser"
	"deal_browser/internal/infrastructure/cheapshark"
	"deal_browser/pkg/contextx"
	"deal_browser/pkg/httpx"
	"deal_browser/pkg/logx"
)

//nolint:gochecknoglobals // skip
var (
	cfg    config.Config
	client *cheapshark.Client
	trace  bool

	rootCmd = &cobra.Command{
		Use:           "dealscli",
		Short:         "dealscli browses game deals from CheapShark.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error

			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("config.Load: %w", err)
			}

			log := logx.NewLogger(os.Stderr, cfg.Log.Format, cfg.Log.SlogLevel())
			cmd.SetContext(contextx.WithLogger(cmd.Context(), log))

			var dump []httpx.Option
			if trace {
				dump = append(dump, httpx.WithLevel(slog.LevelInfo))
			}

			client = application.NewCheapSharkClient(cfg.CheapShark, dump...)

			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "log every CheapShark exchange")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func messages() browser.Messages {
	return browser.MessagesFor(cfg.Browser.Language)
}
