package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

func run(ctx context.Context, app *fx.App) {
	if err := app.Start(ctx); err != nil {
		fail("start", err)
	}

	// Block until a shutdown signal arrives or the app stops itself.
	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		fail("stop", err)
	}
}

func fail(phase string, err error) {
	fmt.Fprintf(os.Stderr, "pizza-petes: %s: %v\n", phase, err)
	os.Exit(1)
}
