package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nikolayk812/foodstore/internal/domain"
	"github.com/nikolayk812/foodstore/internal/port"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

type Cart struct {
	repo  port.CartRepository
	cache port.CartCache
	log   logrus.FieldLogger

	// collapses concurrent snapshot misses for the same user
	sfg singleflight.Group
}

func NewCart(repo port.CartRepository, cache port.CartCache, log logrus.FieldLogger) *Cart {
	return &Cart{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func (s *Cart) AddOrMerge(ctx context.Context, userID, productID int64, quantity int) (domain.CartLine, error) {
	if err := domain.ValidateQuantity(quantity); err != nil {
		return domain.CartLine{}, err
	}

	line, err := s.repo.AddOrMerge(ctx, userID, productID, quantity)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("repo.AddOrMerge: %w", err)
	}

	s.invalidate(ctx, userID)

	return line, nil
}

// Adjust parses rawAction before touching the store, so an unknown action leaves
// the cart untouched.
func (s *Cart) Adjust(ctx context.Context, userID, productID int64, rawAction string) (domain.CartLine, bool, error) {
	action, err := domain.ParseCartAction(rawAction)
	if err != nil {
		return domain.CartLine{}, false, err
	}

	line, removed, err := s.repo.Adjust(ctx, userID, productID, action)
	if err != nil {
		return domain.CartLine{}, false, fmt.Errorf("repo.Adjust: %w", err)
	}

	s.invalidate(ctx, userID)

	s.log.WithFields(logrus.Fields{
		"user_id":    userID,
		"product_id": productID,
		"action":     action,
		"removed":    removed,
	}).Debug("cart line adjusted")

	return line, removed, nil
}

// Snapshot serves the cart from cache when possible. On a miss the store is
// read once per user across concurrent callers, and the result is cached only
// if no write invalidated the cart while it was being read.
func (s *Cart) Snapshot(ctx context.Context, userID int64) (domain.Cart, error) {
	cart, ok, err := s.cache.Get(ctx, userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("cart cache read failed")
	}
	if ok {
		return cart, nil
	}

	v, err, _ := s.sfg.Do(strconv.FormatInt(userID, 10), func() (any, error) {
		// shared by every waiter, so one caller's cancellation must not fail the rest
		ctx := context.WithoutCancel(ctx)

		version, versionErr := s.cache.Version(ctx, userID)
		if versionErr != nil {
			s.log.WithError(versionErr).WithField("user_id", userID).Warn("cart cache version read failed")
		}

		cart, err := s.repo.GetCart(ctx, userID)
		if err != nil {
			return domain.Cart{}, err
		}

		if versionErr != nil {
			return cart, nil
		}

		stored, err := s.cache.Set(ctx, cart, version)
		switch {
		case err != nil:
			s.log.WithError(err).WithField("user_id", userID).Warn("cart cache write failed")
		case !stored:
			s.log.WithField("user_id", userID).Debug("cart changed during read, snapshot not cached")
		}

		return cart, nil
	})
	if err != nil {
		return domain.Cart{}, fmt.Errorf("repo.GetCart: %w", err)
	}

	return v.(domain.Cart), nil
}

func (s *Cart) invalidate(ctx context.Context, userID int64) {
	if err := s.cache.Delete(ctx, userID); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("cart cache invalidation failed")
	}
}
