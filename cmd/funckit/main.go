package main

import (
	"context"
	"os"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/funckit/internal/commands"
	"go.llib.dev/funckit/internal/config"
)

func main() {
	ctx := context.Background()
	logger := &logging.Logger{Out: os.Stderr}

	c, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load application config", logging.ErrField(err))
		os.Exit(cli.ExitCodeError)
	}
	logger.Level = c.Level()

	cli.Main(ctx, commands.NewMux(c, logger))
}
