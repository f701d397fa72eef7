package mdcart

import (
	"context"

	"singsing/storefront/internal/app/domains/entity/etcart"
	"singsing/storefront/internal/app/domains/repo/rpcart"
)

// CartModule cart data operations
type CartModule struct {
	cartRepo rpcart.CartRepository
}

// NewCartModule creates a CartModule.
func NewCartModule(cartRepo rpcart.CartRepository) *CartModule {
	return &CartModule{
		cartRepo: cartRepo,
	}
}

// GetCart loads a repaired cart.
func (m *CartModule) GetCart(ctx context.Context, cartID string) (*etcart.Cart, error) {
	return m.cartRepo.Get(ctx, cartID)
}

// SaveCart replaces the stored cart.
func (m *CartModule) SaveCart(ctx context.Context, cart *etcart.Cart) error {
	return m.cartRepo.Save(ctx, cart)
}

// MutateCart applies fn to the cart atomically.
func (m *CartModule) MutateCart(ctx context.Context, cartID string, fn func(cart *etcart.Cart) error) (*etcart.Cart, error) {
	return m.cartRepo.Update(ctx, cartID, fn)
}

// ClearCart deletes the stored cart.
func (m *CartModule) ClearCart(ctx context.Context, cartID string) error {
	return m.cartRepo.Clear(ctx, cartID)
}
