package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/nikolayk812/foodstore/internal/domain"
	"github.com/nikolayk812/foodstore/internal/port"
	"github.com/redis/go-redis/v9"
)

const (
	maxJitter  = 5 * time.Minute
	// outlives any single store read between Version and Set
	versionTTL = 24 * time.Hour
)

type redisCartCache struct {
	client  redis.UniversalClient
	baseTTL time.Duration
}

// NewRedisCart caches cart snapshots under cart:<ownerID> and their versions
// under cart:<ownerID>:version. Snapshots live for baseTTL plus up to five
// minutes of jitter.
func NewRedisCart(client redis.UniversalClient, baseTTL time.Duration) port.CartCache {
	return &redisCartCache{
		client:  client,
		baseTTL: baseTTL,
	}
}

func (c *redisCartCache) Get(ctx context.Context, ownerID int64) (domain.Cart, bool, error) {
	data, err := c.client.Get(ctx, cartKey(ownerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Cart{}, false, nil
	}
	if err != nil {
		return domain.Cart{}, false, fmt.Errorf("client.Get: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return domain.Cart{}, false, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return cart, true, nil
}

func (c *redisCartCache) Version(ctx context.Context, ownerID int64) (int64, error) {
	v, err := c.client.Get(ctx, versionKey(ownerID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("client.Get: %w", err)
	}

	return v, nil
}

// Set writes the snapshot under WATCH on the version key, so a Delete landing
// between the version check and the write aborts it.
func (c *redisCartCache) Set(ctx context.Context, cart domain.Cart, version int64) (bool, error) {
	data, err := json.Marshal(cart)
	if err != nil {
		return false, fmt.Errorf("json.Marshal: %w", err)
	}

	vKey := versionKey(cart.OwnerID)
	ttl := c.baseTTL + rand.N(maxJitter)
	stored := false

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, vKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("tx.Get: %w", err)
		}
		if current != version {
			return nil
		}

		if _, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, cartKey(cart.OwnerID), data, ttl)
			return nil
		}); err != nil {
			return err
		}

		stored = true
		return nil
	}, vKey)
	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("client.Watch: %w", err)
	}

	return stored, nil
}

// Delete drops the snapshot and bumps the version in one MULTI.
func (c *redisCartCache) Delete(ctx context.Context, ownerID int64) error {
	vKey := versionKey(ownerID)

	if _, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, vKey)
		pipe.Expire(ctx, vKey, versionTTL)
		pipe.Del(ctx, cartKey(ownerID))
		return nil
	}); err != nil {
		return fmt.Errorf("client.TxPipelined: %w", err)
	}

	return nil
}

func cartKey(ownerID int64) string {
	return "cart:" + strconv.FormatInt(ownerID, 10)
}

func versionKey(ownerID int64) string {
	return cartKey(ownerID) + ":version"
}
