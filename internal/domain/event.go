package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const EventTypeOrderPlaced = "order.placed"

type OutboxEvent struct {
	ID          uuid.UUID
	AggregateID string
	EventType   string
	Payload     []byte
	CreatedAt   time.Time
}

type OrderPlaced struct {
	OrderID  int64         `json:"orderId"`
	UserID   int64         `json:"userId"`
	Address  string        `json:"address"`
	Total    Money         `json:"totalValue"`
	Items    []OrderDetail `json:"items"`
	PlacedAt time.Time     `json:"placedAt"`
}

func NewOrderPlacedEvent(order Order) (OutboxEvent, error) {
	payload, err := json.Marshal(OrderPlaced{
		OrderID:  order.ID,
		UserID:   order.UserID,
		Address:  order.Address,
		Total:    order.Total,
		Items:    order.Details,
		PlacedAt: order.OrderDate,
	})
	if err != nil {
		return OutboxEvent{}, fmt.Errorf("json.Marshal: %w", err)
	}

	return OutboxEvent{
		ID:          uuid.New(),
		AggregateID: strconv.FormatInt(order.ID, 10),
		EventType:   EventTypeOrderPlaced,
		Payload:     payload,
	}, nil
}
