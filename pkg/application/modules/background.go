package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"deal_browser/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type runner interface {
	Run(ctx context.Context) error
}

// Background runs a long-lived component until ctx is done. Context
// cancellation is a normal stop, not a failure.
type Background struct {
	Name string
}

func (b Background) Run(ctx context.Context, g *errgroup.Group, r runner) {
	g.Go(func() error {
		logger(ctx).Info("module started", slog.String("module", b.Name))

		if err := r.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("%s.Run: %w", b.Name, err)
		}

		logger(ctx).Info("module stopped", slog.String("module", b.Name))

		return nil
	})
}
