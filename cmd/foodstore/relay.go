package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodstore/internal/config"
	"github.com/nikolayk812/foodstore/internal/outbox"
	"github.com/nikolayk812/foodstore/internal/repository"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func relayCmd(c *cli.Context) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	if !cfg.RelayEnabled() {
		return cli.Exit("KAFKA_BROKERS is required for the relay command", 1)
	}

	pool, err := newPool(c.Context, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	var g errgroup.Group
	stop := startRelay(c.Context, &g, pool, cfg, log)
	defer stop()

	return g.Wait()
}

// startRelay runs the relay on g until ctx is done. The returned func closes
// the kafka writer and must be called after g.Wait.
func startRelay(ctx context.Context, g *errgroup.Group, pool *pgxpool.Pool, cfg config.Config, log logrus.FieldLogger) func() {
	writer := outbox.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
	relay := outbox.NewRelay(repository.NewOutbox(pool), writer, outbox.Config{
		PollInterval: cfg.OutboxPollInterval,
		BatchSize:    cfg.OutboxBatchSize,
	}, log.WithField("component", "outbox"))

	g.Go(func() error {
		log.WithFields(logrus.Fields{
			"brokers": cfg.KafkaBrokers,
			"topic":   cfg.KafkaTopic,
		}).Info("outbox relay starting")
		relay.Run(ctx)
		return nil
	})

	return func() {
		if err := writer.Close(); err != nil {
			log.WithError(err).Warn("kafka writer close failed")
		}
	}
}
