package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodstore/internal/db"
	"github.com/nikolayk812/foodstore/internal/domain"
	"github.com/nikolayk812/foodstore/internal/port"
)

type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

// NewCartWithTx returns a cart repository bound to tx. Its operations commit or
// roll back with tx.
func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return newCart(db.New(tx))
}

func newCart(q *db.Queries) *cartRepository {
	return &cartRepository{q: q}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID int64) (domain.Cart, error) {
	if ownerID <= 0 {
		return domain.Cart{}, fmt.Errorf("ownerID is not valid")
	}

	rows, err := r.q.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCart: %w", err)
	}

	lines, err := mapGetCartRowsToDomain(rows)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapGetCartRowsToDomain: %w", err)
	}

	return domain.Cart{
		OwnerID: ownerID,
		Lines:   lines,
	}, nil
}

func (r *cartRepository) AddOrMerge(ctx context.Context, ownerID, productID int64, quantity int) (domain.CartLine, error) {
	if ownerID <= 0 {
		return domain.CartLine{}, fmt.Errorf("ownerID is not valid")
	}
	if err := domain.ValidateQuantity(quantity); err != nil {
		return domain.CartLine{}, err
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.CartLine, error) {
		product, err := getProduct(ctx, q, productID)
		if err != nil {
			return domain.CartLine{}, err
		}

		// The catalog price only applies to a new line. On conflict the stored
		// unit price is kept and the total is recomputed from it.
		item, err := q.UpsertCartItem(ctx, db.UpsertCartItemParams{
			ClientID:        ownerID,
			ProductID:       productID,
			UnitPriceAmount: product.Price.Amount,
			PriceCurrency:   product.Price.Currency.String(),
			Quantity:        int32(quantity),
			TotalAmount:     product.Price.Times(quantity).Amount,
		})
		if err != nil {
			if pgErrorCode(err) == pgForeignKeyViolation {
				return domain.CartLine{}, fmt.Errorf("user[%d]: %w", ownerID, domain.ErrUserNotFound)
			}
			if isQuantityRejected(err) {
				return domain.CartLine{}, fmt.Errorf("product[%d]: %w", productID, domain.ErrInvalidQuantity)
			}
			return domain.CartLine{}, fmt.Errorf("q.UpsertCartItem: %w", err)
		}

		line, err := mapCartItemToDomain(item)
		if err != nil {
			return domain.CartLine{}, fmt.Errorf("mapCartItemToDomain: %w", err)
		}
		line.ProductName = product.Name
		line.ProductImageURL = product.ImageURL

		return line, nil
	})
}

type adjustResult struct {
	line    domain.CartLine
	removed bool
}

func (r *cartRepository) Adjust(ctx context.Context, ownerID, productID int64, action domain.CartAction) (domain.CartLine, bool, error) {
	if ownerID <= 0 {
		return domain.CartLine{}, false, fmt.Errorf("ownerID is not valid")
	}
	if _, err := domain.ParseCartAction(string(action)); err != nil {
		return domain.CartLine{}, false, err
	}

	res, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (adjustResult, error) {
		item, err := q.GetCartItemForUpdate(ctx, db.GetCartItemForUpdateParams{
			ClientID:  ownerID,
			ProductID: productID,
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return adjustResult{}, fmt.Errorf("product[%d]: %w", productID, domain.ErrCartLineNotFound)
			}
			return adjustResult{}, fmt.Errorf("q.GetCartItemForUpdate: %w", err)
		}

		line, err := mapCartItemToDomain(item)
		if err != nil {
			return adjustResult{}, fmt.Errorf("mapCartItemToDomain: %w", err)
		}

		quantity, remove := action.Apply(line.Quantity)
		if remove {
			if _, err := q.DeleteCartItem(ctx, item.ID); err != nil {
				return adjustResult{}, fmt.Errorf("q.DeleteCartItem: %w", err)
			}
			return adjustResult{line: line, removed: true}, nil
		}
		if err := domain.ValidateQuantity(quantity); err != nil {
			return adjustResult{}, fmt.Errorf("product[%d]: %w", productID, err)
		}

		updated, err := q.UpdateCartItemQuantity(ctx, db.UpdateCartItemQuantityParams{
			ID:          item.ID,
			Quantity:    int32(quantity),
			TotalAmount: line.UnitPrice.Times(quantity).Amount,
		})
		if err != nil {
			if isQuantityRejected(err) {
				return adjustResult{}, fmt.Errorf("product[%d]: %w", productID, domain.ErrInvalidQuantity)
			}
			return adjustResult{}, fmt.Errorf("q.UpdateCartItemQuantity: %w", err)
		}

		line, err = mapCartItemToDomain(updated)
		if err != nil {
			return adjustResult{}, fmt.Errorf("mapCartItemToDomain: %w", err)
		}

		return adjustResult{line: line}, nil
	})
	if err != nil {
		return domain.CartLine{}, false, err
	}

	return res.line, res.removed, nil
}

// Clear deletes exactly the given lines. It fails when any of them is already
// gone, so a caller inside a transaction can roll back.
func (r *cartRepository) Clear(ctx context.Context, lineIDs []int64) (int64, error) {
	if len(lineIDs) == 0 {
		return 0, nil
	}

	deleted, err := r.q.DeleteCartItems(ctx, lineIDs)
	if err != nil {
		return 0, fmt.Errorf("q.DeleteCartItems: %w", err)
	}

	if deleted != int64(len(lineIDs)) {
		return deleted, fmt.Errorf("deleted %d of %d cart lines", deleted, len(lineIDs))
	}

	return deleted, nil
}

func mapCartItemToDomain(item db.CartItem) (domain.CartLine, error) {
	unitPrice, err := toMoney(item.UnitPriceAmount, item.PriceCurrency)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("toMoney: %w", err)
	}

	return domain.CartLine{
		ID:        item.ID,
		ProductID: item.ProductID,
		UnitPrice: unitPrice,
		Quantity:  int(item.Quantity),
		Total:     domain.Money{Amount: item.TotalAmount, Currency: unitPrice.Currency},
		CreatedAt: item.CreatedAt,
	}, nil
}

func mapGetCartRowToDomain(row db.GetCartRow) (domain.CartLine, error) {
	unitPrice, err := toMoney(row.UnitPriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("toMoney: %w", err)
	}

	return domain.CartLine{
		ID:              row.ID,
		ProductID:       row.ProductID,
		ProductName:     row.ProductName,
		ProductImageURL: row.ProductImage,
		UnitPrice:       unitPrice,
		Quantity:        int(row.Quantity),
		Total:           domain.Money{Amount: row.TotalAmount, Currency: unitPrice.Currency},
		CreatedAt:       row.CreatedAt,
	}, nil
}

func mapGetCartRowsToDomain(rows []db.GetCartRow) ([]domain.CartLine, error) {
	lines := make([]domain.CartLine, 0, len(rows))

	for _, row := range rows {
		line, err := mapGetCartRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapGetCartRowToDomain: %w", err)
		}

		lines = append(lines, line)
	}

	return lines, nil
}
