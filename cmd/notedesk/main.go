package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dstepanovs/notedesk/internal/cli"
	"github.com/dstepanovs/notedesk/internal/config"
	"github.com/dstepanovs/notedesk/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}

	app.Run(context.Background())
}
