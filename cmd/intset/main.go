package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/denismitr/intset/internal/cli"
	"github.com/denismitr/intset/internal/logger"
	"go.uber.org/zap"
)

var Version = "dev"

func main() {
	log := logger.NewLogger(false)
	defer func() {
		_ = log.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cli.NewRootCommand(Version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error("command failed", zap.Error(err))
		stop()
		os.Exit(1)
	}
}
