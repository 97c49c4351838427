package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/chlagouGhassen/pizza-petes/internal/di"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	run(ctx, fx.New(
		fx.Provide(func() context.Context { return ctx }),
		di.Module(),
	))
}
