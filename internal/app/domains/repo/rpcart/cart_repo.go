package rpcart

import (
	"context"

	"singsing/storefront/internal/app/domains/entity/etcart"
)

// CartRepository persists carts. Implementations normalize on every read and
// write, so callers only ever see repaired carts.
type CartRepository interface {
	// Get loads the cart; a cart never saved is empty, not missing.
	Get(ctx context.Context, cartID string) (*etcart.Cart, error)

	// Save normalizes and stores the cart.
	Save(ctx context.Context, cart *etcart.Cart) error

	// Update loads the cart, applies fn and stores the result as one atomic
	// step. Nothing is written when fn fails.
	Update(ctx context.Context, cartID string, fn func(cart *etcart.Cart) error) (*etcart.Cart, error)

	// Clear deletes the stored cart.
	Clear(ctx context.Context, cartID string) error
}
