package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodstore/internal/db"
	"github.com/nikolayk812/foodstore/internal/domain"
	"github.com/nikolayk812/foodstore/internal/port"
)

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

// PlaceOrder locks the user's cart lines, writes the order with one detail per
// locked line plus an order.placed outbox event, then deletes exactly the locked
// lines. Any failure rolls all of it back.
func (r *orderRepository) PlaceOrder(ctx context.Context, userID int64, meta domain.OrderMetadata, placedAt time.Time) (domain.Order, error) {
	if userID <= 0 {
		return domain.Order{}, fmt.Errorf("userID is not valid")
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Order, error) {
		rows, err := q.GetCartForUpdate(ctx, userID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.GetCartForUpdate: %w", err)
		}

		cart := domain.Cart{OwnerID: userID, Lines: make([]domain.CartLine, 0, len(rows))}
		for _, row := range rows {
			line, err := mapGetCartRowToDomain(db.GetCartRow(row))
			if err != nil {
				return domain.Order{}, fmt.Errorf("mapGetCartRowToDomain: %w", err)
			}
			cart.Lines = append(cart.Lines, line)
		}

		order, err := domain.NewOrder(userID, meta, placedAt, cart.Lines)
		if err != nil {
			return domain.Order{}, fmt.Errorf("domain.NewOrder: %w", err)
		}

		dbOrder, err := q.CreateOrder(ctx, db.CreateOrderParams{
			UserID:        order.UserID,
			Address:       order.Address,
			TotalAmount:   order.Total.Amount,
			TotalCurrency: order.Total.Currency.String(),
			OrderDate:     order.OrderDate,
		})
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.CreateOrder: %w", err)
		}
		order.ID = dbOrder.ID
		order.OrderDate = dbOrder.OrderDate

		for i, detail := range order.Details {
			dbDetail, err := q.CreateOrderDetail(ctx, db.CreateOrderDetailParams{
				OrderID:       order.ID,
				ProductID:     detail.ProductID,
				PriceAmount:   detail.Price.Amount,
				PriceCurrency: detail.Price.Currency.String(),
				Quantity:      int32(detail.Quantity),
				TotalAmount:   detail.Total.Amount,
			})
			if err != nil {
				return domain.Order{}, fmt.Errorf("q.CreateOrderDetail: %w", err)
			}
			order.Details[i].ID = dbDetail.ID
			order.Details[i].OrderID = order.ID
		}

		event, err := domain.NewOrderPlacedEvent(order)
		if err != nil {
			return domain.Order{}, fmt.Errorf("domain.NewOrderPlacedEvent: %w", err)
		}

		if err := q.InsertOutboxEvent(ctx, db.InsertOutboxEventParams{
			ID:          event.ID,
			AggregateID: event.AggregateID,
			EventType:   event.EventType,
			Payload:     event.Payload,
			CreatedAt:   order.OrderDate,
		}); err != nil {
			return domain.Order{}, fmt.Errorf("q.InsertOutboxEvent: %w", err)
		}

		if _, err := newCart(q).Clear(ctx, cart.LineIDs()); err != nil {
			return domain.Order{}, fmt.Errorf("cart.Clear: %w", err)
		}

		return order, nil
	})
}

func (r *orderRepository) GetOrderDetails(ctx context.Context, userID, orderID int64) ([]domain.OrderDetail, error) {
	rows, err := r.q.GetOrderDetails(ctx, db.GetOrderDetailsParams{
		OrderID: orderID,
		UserID:  userID,
	})
	if err != nil {
		return nil, fmt.Errorf("q.GetOrderDetails: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("order[%d]: %w", orderID, domain.ErrOrderDetailsNotFound)
	}

	details := make([]domain.OrderDetail, 0, len(rows))
	for _, row := range rows {
		detail, err := mapGetOrderDetailsRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapGetOrderDetailsRowToDomain: %w", err)
		}
		details = append(details, detail)
	}

	return details, nil
}

func (r *orderRepository) ListOrdersByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	rows, err := r.q.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("q.ListOrdersByUser: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("user[%d]: %w", userID, domain.ErrNoOrdersForUser)
	}

	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		total, err := toMoney(row.TotalAmount, row.TotalCurrency)
		if err != nil {
			return nil, fmt.Errorf("toMoney: %w", err)
		}

		orders = append(orders, domain.Order{
			ID:        row.ID,
			UserID:    row.UserID,
			Address:   row.Address,
			Total:     total,
			OrderDate: row.OrderDate,
		})
	}

	return orders, nil
}

func mapGetOrderDetailsRowToDomain(row db.GetOrderDetailsRow) (domain.OrderDetail, error) {
	price, err := toMoney(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.OrderDetail{}, fmt.Errorf("toMoney: %w", err)
	}

	productPrice, err := toMoney(row.ProductPriceAmount, row.ProductPriceCurrency)
	if err != nil {
		return domain.OrderDetail{}, fmt.Errorf("toMoney: %w", err)
	}

	return domain.OrderDetail{
		ID:              row.ID,
		OrderID:         row.OrderID,
		ProductID:       row.ProductID,
		Price:           price,
		Quantity:        int(row.Quantity),
		Total:           domain.Money{Amount: row.TotalAmount, Currency: price.Currency},
		ProductName:     row.ProductName,
		ProductImageURL: row.ProductImage,
		ProductPrice:    &productPrice,
	}, nil
}
