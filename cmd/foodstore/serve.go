package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodstore/internal/auth"
	"github.com/nikolayk812/foodstore/internal/cache"
	"github.com/nikolayk812/foodstore/internal/config"
	"github.com/nikolayk812/foodstore/internal/httpapi"
	"github.com/nikolayk812/foodstore/internal/migrations"
	"github.com/nikolayk812/foodstore/internal/port"
	"github.com/nikolayk812/foodstore/internal/repository"
	"github.com/nikolayk812/foodstore/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func serveCmd(c *cli.Context) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	if c.Bool("migrate") {
		if err := migrations.Up(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("migrations.Up: %w", err)
		}
		log.Info("migrations applied")
	}

	pool, err := newPool(c.Context, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	cartCache, closeCache := newCartCache(c.Context, cfg, log)
	defer closeCache()

	issuer, err := auth.NewIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTTTL)
	if err != nil {
		return fmt.Errorf("auth.NewIssuer: %w", err)
	}

	identity := service.NewIdentity(repository.NewUser(pool), issuer, log)
	e := httpapi.NewServer(httpapi.Deps{
		Catalog:        service.NewCatalog(repository.NewCatalog(pool)),
		Cart:           service.NewCart(repository.NewCart(pool), cartCache, log),
		Orders:         service.NewOrder(repository.NewOrder(pool), cartCache, log),
		Identity:       identity,
		Tokens:         issuer,
		Log:            log,
		Ping:           pool.Ping,
		RequestTimeout: cfg.RequestTimeout,
	})

	g, ctx := errgroup.WithContext(c.Context)

	if cfg.RelayEnabled() {
		stopRelay := startRelay(ctx, g, pool, cfg, log)
		defer stopRelay()
	} else {
		log.Info("KAFKA_BROKERS not set, outbox relay disabled")
	}

	g.Go(func() error {
		log.WithField("addr", cfg.HTTPAddr).Info("http server starting")
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("e.Start: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("e.Shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("server exited")
	return nil
}

func newPool(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}
	poolCfg.MaxConns = cfg.DBMaxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pool.Ping: %w", err)
	}

	return pool, nil
}

// newCartCache falls back to a no-op cache when redis is not configured.
// An unreachable redis is only logged: cart reads fall through to postgres.
func newCartCache(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (port.CartCache, func()) {
	if !cfg.CacheEnabled() {
		log.Info("REDIS_ADDR not set, cart cache disabled")
		return cache.Nop{}, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Warn("redis ping failed")
	}

	return cache.NewRedisCart(client, cfg.CartCacheTTL), func() {
		if err := client.Close(); err != nil {
			log.WithError(err).Warn("redis close failed")
		}
	}
}
