package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"userId"`
	Address   string        `json:"address"`
	Total     Money         `json:"totalValue"`
	OrderDate time.Time     `json:"orderDate"`
	Details   []OrderDetail `json:"details,omitempty"`
}

type OrderDetail struct {
	ID        int64 `json:"id"`
	OrderID   int64 `json:"orderId"`
	ProductID int64 `json:"productId"`
	Price     Money `json:"price"`
	Quantity  int   `json:"quantity"`
	Total     Money `json:"subTotal"`

	// Populated by read projections only.
	ProductName     string `json:"productName,omitempty"`
	ProductImageURL string `json:"productImage,omitempty"`
	ProductPrice    *Money `json:"productPrice,omitempty"`
}

// OrderMetadata is what a client may supply when placing an order.
// ClaimedTotal is informational: the stored total is always recomputed.
type OrderMetadata struct {
	Address      string
	ClaimedTotal *decimal.Decimal
}

// NewOrder snapshots cart lines into an order. Detail totals are recomputed from
// unit price and quantity, and the order total is their sum.
func NewOrder(userID int64, meta OrderMetadata, placedAt time.Time, lines []CartLine) (Order, error) {
	if len(lines) == 0 {
		return Order{}, ErrEmptyCart
	}

	order := Order{
		UserID:    userID,
		Address:   meta.Address,
		OrderDate: placedAt,
		Total:     Money{Amount: decimal.Zero, Currency: lines[0].UnitPrice.Currency},
		Details:   make([]OrderDetail, 0, len(lines)),
	}

	for _, line := range lines {
		detail := OrderDetail{
			ProductID: line.ProductID,
			Price:     line.UnitPrice,
			Quantity:  line.Quantity,
			Total:     line.UnitPrice.Times(line.Quantity),
		}

		total, err := order.Total.Add(detail.Total)
		if err != nil {
			return Order{}, fmt.Errorf("product[%d]: %w", line.ProductID, err)
		}

		order.Total = total
		order.Details = append(order.Details, detail)
	}

	return order, nil
}

// ClaimMatches reports whether a client supplied total, if any, agrees with the
// computed one.
func (o Order) ClaimMatches(meta OrderMetadata) bool {
	return meta.ClaimedTotal == nil || meta.ClaimedTotal.Equal(o.Total.Amount)
}
