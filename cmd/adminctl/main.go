// Command adminctl administers the marketplace from a terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/servidz/console/internal/app"
	"github.com/servidz/console/internal/apperr"
	"github.com/servidz/console/internal/config"
	"github.com/servidz/console/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := newRootCmd(loadFromEnv).ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "adminctl: %v\n", err)
		if apperr.IsAuth(err) {
			fmt.Fprintln(os.Stderr, "run `adminctl login` to sign in")
		}
	}
	stop()
	os.Exit(exitCode(err))
}

func loadFromEnv(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger, _, err := logging.New(os.Stderr, cfg.Log.Level, "")
	if err != nil {
		return nil, err
	}
	return app.Build(ctx, cfg, logger)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, apperr.ErrValidation):
		return 2
	case errors.Is(err, apperr.ErrAuth):
		return 3
	default:
		return 1
	}
}
