package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/msomdec/roster/internal/cli"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := cli.NewRootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}
