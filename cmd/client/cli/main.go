package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/bidcars/bidcars-cli/internal/client/cli"
	"github.com/bidcars/bidcars-cli/internal/client/config"
	"github.com/bidcars/bidcars-cli/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.NewDefault(os.Stderr, slog.LevelWarn)

	app := cli.NewApp(cfg, log)
	app.Run(context.Background())
}
