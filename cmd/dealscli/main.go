package main

import (
	"context"
	"os/signal"
	"syscall"

	"deal_browser/cmd/dealscli/commands"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	commands.ExecuteContext(ctx)
}
