package main

import (
	"fmt"

	"github.com/nikolayk812/foodstore/internal/migrations"
	"github.com/urfave/cli/v2"
)

func migrateCmd(c *cli.Context) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	switch dir := c.Args().First(); dir {
	case "up":
		if err := migrations.Up(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("migrations.Up: %w", err)
		}
	case "down":
		if err := migrations.Down(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("migrations.Down: %w", err)
		}
	default:
		return cli.Exit(fmt.Sprintf("unknown direction %q, expected up or down", dir), 2)
	}

	log.WithField("direction", c.Args().First()).Info("migrations applied")
	return nil
}
