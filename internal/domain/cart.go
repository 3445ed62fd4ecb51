package domain

import (
	"strings"
	"time"
)

type Cart struct {
	OwnerID int64
	Lines   []CartLine
}

type CartLine struct {
	ID              int64  `json:"id"`
	ProductID       int64  `json:"productId"`
	ProductName     string `json:"productName"`
	ProductImageURL string `json:"urlImage"`
	UnitPrice       Money  `json:"price"`
	Quantity        int    `json:"quantity"`
	Total           Money  `json:"totalValue"`

	CreatedAt time.Time `json:"-"`
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c Cart) LineIDs() []int64 {
	ids := make([]int64, 0, len(c.Lines))
	for _, line := range c.Lines {
		ids = append(ids, line.ID)
	}

	return ids
}

// MaxLineQuantity caps a single cart line, merges included.
const MaxLineQuantity = 999

func ValidateQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxLineQuantity {
		return ErrInvalidQuantity
	}
	return nil
}

type CartAction string

const (
	ActionIncrease CartAction = "increase"
	ActionDecrease CartAction = "decrease"
	ActionDelete   CartAction = "delete"
)

func ParseCartAction(s string) (CartAction, error) {
	switch a := CartAction(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionIncrease, ActionDecrease, ActionDelete:
		return a, nil
	default:
		return "", ErrInvalidAction
	}
}

// Apply returns the quantity a line holds after the action and whether the line
// has to be removed instead. A line never reaches quantity zero.
func (a CartAction) Apply(quantity int) (int, bool) {
	switch a {
	case ActionIncrease:
		return quantity + 1, false
	case ActionDecrease:
		if quantity > 1 {
			return quantity - 1, false
		}
		return 0, true
	default:
		return 0, true
	}
}
