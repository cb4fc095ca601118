package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/sunnygitgud/aniflow/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		logger := newLogger(os.Stderr, config.DefaultLogLevel)
		logger.Error().Err(err).Msg("Alas, there's been an error loading the configuration")
		return exitConfig
	}

	logger := newLogger(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return newApp(cfg, logger, os.Stdout).run(ctx)
}
