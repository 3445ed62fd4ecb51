package port

import (
	"context"

	"github.com/nikolayk812/foodstore/internal/domain"
)

type CartRepository interface {
	GetCart(ctx context.Context, ownerID int64) (domain.Cart, error)
	// AddOrMerge inserts a line at the catalog price or adds quantity to the
	// existing line for the same product.
	AddOrMerge(ctx context.Context, ownerID, productID int64, quantity int) (domain.CartLine, error)
	// Adjust applies action to the owner's line for productID. removed is true when
	// the line no longer exists afterwards.
	Adjust(ctx context.Context, ownerID, productID int64, action domain.CartAction) (line domain.CartLine, removed bool, err error)
	Clear(ctx context.Context, lineIDs []int64) (int64, error)
}

// CartCache holds cart snapshots next to a per-owner version that every Delete
// bumps. A snapshot read from the store is cached only if the version it was
// read under is still current.
type CartCache interface {
	Get(ctx context.Context, ownerID int64) (domain.Cart, bool, error)
	// Version must be read before the cart is loaded from the store.
	Version(ctx context.Context, ownerID int64) (int64, error)
	// Set reports false when the version moved on and nothing was stored.
	Set(ctx context.Context, cart domain.Cart, version int64) (bool, error)
	Delete(ctx context.Context, ownerID int64) error
}
