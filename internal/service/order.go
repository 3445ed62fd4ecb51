package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/foodstore/internal/domain"
	"github.com/nikolayk812/foodstore/internal/port"
	"github.com/sirupsen/logrus"
)

type Order struct {
	repo  port.OrderRepository
	cache port.CartCache
	log   logrus.FieldLogger
	now   func() time.Time
}

func NewOrder(repo port.OrderRepository, cache port.CartCache, log logrus.FieldLogger) *Order {
	return &Order{
		repo:  repo,
		cache: cache,
		log:   log,
		now:   time.Now,
	}
}

// PlaceOrder converts the user's cart into an order stamped with the current
// time. An empty cart is reported as is; every other failure means nothing was
// persisted and is reported as ErrOrderPlacementFailed.
func (s *Order) PlaceOrder(ctx context.Context, userID int64, meta domain.OrderMetadata) (domain.Order, error) {
	placedAt := s.now().UTC()
	log := s.log.WithField("user_id", userID)

	order, err := s.repo.PlaceOrder(ctx, userID, meta, placedAt)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			return domain.Order{}, err
		}
		log.WithError(err).Error("order placement rolled back")
		return domain.Order{}, fmt.Errorf("%w: %w", domain.ErrOrderPlacementFailed, err)
	}

	if !order.ClaimMatches(meta) {
		log.WithFields(logrus.Fields{
			"order_id":      order.ID,
			"claimed_total": meta.ClaimedTotal.String(),
			"total":         order.Total.String(),
		}).Warn("client total differs from computed total")
	}

	if err := s.cache.Delete(ctx, userID); err != nil {
		log.WithError(err).Warn("cart cache invalidation failed")
	}

	log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"lines":    len(order.Details),
		"total":    order.Total.String(),
	}).Info("order placed")

	return order, nil
}

func (s *Order) OrderDetails(ctx context.Context, userID, orderID int64) ([]domain.OrderDetail, error) {
	return s.repo.GetOrderDetails(ctx, userID, orderID)
}

func (s *Order) OrdersByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.repo.ListOrdersByUser(ctx, userID)
}
