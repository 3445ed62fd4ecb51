package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikolayk812/foodstore/internal/config"
	"github.com/nikolayk812/foodstore/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:  "foodstore",
		Usage: "food ordering storefront backend",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API and, when Kafka is configured, the outbox relay",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "migrate", Usage: "apply pending migrations before serving"},
				},
				Action: serveCmd,
			},
			{
				Name:      "migrate",
				Usage:     "apply or roll back schema migrations",
				ArgsUsage: "up|down",
				Action:    migrateCmd,
			},
			{
				Name:   "relay",
				Usage:  "run only the outbox relay",
				Action: relayCmd,
			},
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup() (config.Config, *logrus.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("config.Load: %w", err)
	}

	log, err := logging.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("logging.New: %w", err)
	}

	return cfg, log, nil
}
