package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/givers/contact/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logging.Fatal("command failed", "error", err)
	}
}
