package port

import (
	"context"
	"time"

	"github.com/nikolayk812/foodstore/internal/domain"
)

type OrderRepository interface {
	// PlaceOrder turns the user's current cart into an order in one transaction.
	PlaceOrder(ctx context.Context, userID int64, meta domain.OrderMetadata, placedAt time.Time) (domain.Order, error)
	GetOrderDetails(ctx context.Context, userID, orderID int64) ([]domain.OrderDetail, error)
	ListOrdersByUser(ctx context.Context, userID int64) ([]domain.Order, error)
}
