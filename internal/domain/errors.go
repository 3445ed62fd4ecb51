package domain

import (
	"errors"
	"fmt"
)

// Error categories. Every specific error below wraps exactly one of them.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrConflict          = errors.New("conflict")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrTransactionFailed = errors.New("transaction failed")
)

var (
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrProductNotFound      = fmt.Errorf("product %w", ErrNotFound)
	ErrCartLineNotFound     = fmt.Errorf("cart line %w", ErrNotFound)
	ErrOrderDetailsNotFound = fmt.Errorf("order details %w", ErrNotFound)
	ErrNoOrdersForUser      = fmt.Errorf("orders for user %w", ErrNotFound)
	ErrEmptyCart            = fmt.Errorf("cart is empty: cart lines %w", ErrNotFound)

	ErrInvalidAction    = fmt.Errorf("%w: action must be one of 'increase', 'decrease' or 'delete'", ErrInvalidInput)
	ErrInvalidQuantity  = fmt.Errorf("%w: quantity must be between 1 and %d", ErrInvalidInput, MaxLineQuantity)
	ErrInvalidListing   = fmt.Errorf("%w: productType must be one of 'category', 'popular' or 'bestselling'", ErrInvalidInput)
	ErrInvalidEmail     = fmt.Errorf("%w: email format is not valid", ErrInvalidInput)
	ErrPasswordTooShort = fmt.Errorf("%w: password is too short", ErrInvalidInput)

	ErrEmailTaken = fmt.Errorf("email already registered: %w", ErrConflict)

	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", ErrUnauthorized)

	ErrOrderPlacementFailed = fmt.Errorf("order placement failed: %w", ErrTransactionFailed)
)
