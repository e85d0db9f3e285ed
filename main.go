package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mrclmr/lfdmusic/cmd/lfdmusic"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cmd.ExecuteContext(ctx, version)
	if errors.Is(err, cmd.ErrUsage) {
		os.Exit(1)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		_, _ = fmt.Fprintf(os.Stderr, "lfdmusic: %v\n", err)
		os.Exit(1)
	}
}
