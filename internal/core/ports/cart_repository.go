package ports

import (
	"context"

	"shop/internal/core/domain/model/cart"
	"shop/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// Every user has at most one cart; it is created lazily on first access.
type CartRepository interface {
	// GetOrCreateByUser retrieves the user's cart, creating an empty one
	// when the user does not have a cart yet.
	GetOrCreateByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)

	// Update persists changes to an existing cart aggregate, including
	// added, merged and removed lines.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// LockForCheckout serializes concurrent checkouts of the same cart for
	// the duration of the current transaction. Must be called before the
	// cart contents are read during checkout.
	LockForCheckout(ctx context.Context, cartID kernel.UUID) error
}
