package svcart

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"singsing/storefront/internal/app/domains/entity/etcart"
	"singsing/storefront/internal/app/domains/entity/etnotice"
	"singsing/storefront/internal/app/domains/entity/etprice"
	"singsing/storefront/internal/app/domains/modules/mdcart"
	"singsing/storefront/internal/app/domains/modules/mdnotice"
	"singsing/storefront/internal/app/domains/modules/mdprice"
	"singsing/storefront/internal/app/pkg/dispatch"
	"singsing/storefront/internal/app/pkg/logger"
)

// CartService orchestrates cart mutations, the badge count and toasts
type CartService struct {
	cartModule   *mdcart.CartModule
	noticeModule *mdnotice.NoticeModule
	priceModule  *mdprice.PriceModule
	cutoff       *dispatch.Cutoff
	logger       logger.Logger
}

// NewCartService creates a CartService.
func NewCartService(
	cartModule *mdcart.CartModule,
	noticeModule *mdnotice.NoticeModule,
	priceModule *mdprice.PriceModule,
	cutoff *dispatch.Cutoff,
	log logger.Logger,
) *CartService {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &CartService{
		cartModule:   cartModule,
		noticeModule: noticeModule,
		priceModule:  priceModule,
		cutoff:       cutoff,
		logger:       log,
	}
}

// AddResult is what the storefront needs after an add: the cart, the merged
// row (nil when the row named no product and was dropped), the new badge
// count and the toast that was sent.
type AddResult struct {
	Cart  *etcart.Cart
	Item  *etcart.Item
	Count int
	Toast *etnotice.Toast
}

// NewCartID issues an identifier for a new shopper cart.
func (s *CartService) NewCartID() string {
	return uuid.New().String()
}

// GetCart returns the repaired cart.
func (s *CartService) GetCart(ctx context.Context, cartID string) (*etcart.Cart, error) {
	return s.cartModule.GetCart(ctx, cartID)
}

// SetCart replaces the whole cart with items.
func (s *CartService) SetCart(ctx context.Context, cartID string, items []etcart.RawItem) (*etcart.Cart, error) {
	normalized := make([]etcart.Item, 0, len(items))
	for _, raw := range items {
		normalized = append(normalized, raw.Normalize())
	}
	cart, err := etcart.NewCart(cartID, normalized)
	if err != nil {
		return nil, err
	}
	if err := s.cartModule.SaveCart(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart failed: %w", err)
	}
	return cart, nil
}

// AddToCart merges raw into the cart and notifies the shopper. An empty
// toastMsg sends the default message. A row naming no product is dropped and
// the cart returned unchanged. A failed notification does not undo the add.
func (s *CartService) AddToCart(ctx context.Context, cartID string, raw etcart.RawItem, toastMsg string) (*AddResult, error) {
	ctx = logger.WithCartID(ctx, cartID)

	var added *etcart.Item
	cart, err := s.cartModule.MutateCart(ctx, cartID, func(cart *etcart.Cart) error {
		if item, ok := cart.Add(raw.Normalize()); ok {
			added = &item
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("add to cart failed: %w", err)
	}

	result := &AddResult{Cart: cart, Item: added, Count: cart.Count()}
	if added != nil {
		s.logger.Infof(ctx, "cart item added: product=%s pack=%d qty=%d count=%d", added.ProductID, added.Pack, added.Qty, result.Count)
	} else {
		s.logger.Debugf(ctx, "add dropped a row without product: product=%q name=%q", raw.ProductID.String(), raw.Name.String())
	}

	toast, err := s.noticeModule.NewToast(cartID, toastMsg)
	if err != nil {
		s.logger.Warnf(ctx, "build toast failed: %v", err)
		return result, nil
	}
	result.Toast = toast
	if err := s.noticeModule.Publish(ctx, toast); err != nil {
		s.logger.Warnf(ctx, "publish toast failed: toast_id=%s, error=%v", toast.ID, err)
	}
	return result, nil
}

// RemoveFromCart deletes the (productID, pack) row. Removing a row that is
// not there still rewrites the repaired cart.
func (s *CartService) RemoveFromCart(ctx context.Context, cartID, productID string, pack etcart.Loose) (*etcart.Cart, error) {
	cart, err := s.cartModule.MutateCart(ctx, cartID, func(cart *etcart.Cart) error {
		if !cart.Remove(productID, pack) {
			s.logger.Debugf(logger.WithCartID(ctx, cartID), "remove: no row for product=%q pack=%s", productID, pack.String())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("remove from cart failed: %w", err)
	}
	return cart, nil
}

// UpdateQty sets the quantity of the (productID, pack) row when it exists.
// The cart is persisted either way.
func (s *CartService) UpdateQty(ctx context.Context, cartID, productID string, pack, qty etcart.Loose) (*etcart.Cart, error) {
	cart, err := s.cartModule.MutateCart(ctx, cartID, func(cart *etcart.Cart) error {
		cart.SetQty(productID, pack, qty)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update qty failed: %w", err)
	}
	return cart, nil
}

// CartCount returns the badge number.
func (s *CartService) CartCount(ctx context.Context, cartID string) (int, error) {
	cart, err := s.cartModule.GetCart(ctx, cartID)
	if err != nil {
		return 0, err
	}
	return cart.Count(), nil
}

// ClearCart empties the cart.
func (s *CartService) ClearCart(ctx context.Context, cartID string) error {
	return s.cartModule.ClearCart(ctx, cartID)
}

// Summary prices the cart with the loaded price table and adds the dispatch
// notice.
func (s *CartService) Summary(ctx context.Context, cartID string) (*etprice.Summary, error) {
	cart, err := s.cartModule.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	summary := etprice.Summarize(cart, s.priceModule.Table())
	if s.cutoff != nil {
		summary.DispatchText = s.cutoff.Text()
	}
	return summary, nil
}

// WaitToast blocks until the next toast of cartID (Smart Wait). It returns
// errorx.ErrNoToast when timeout passes first.
func (s *CartService) WaitToast(ctx context.Context, cartID string, timeout time.Duration) (*etnotice.Toast, error) {
	if cartID == "" {
		return nil, etcart.ErrInvalidCartID
	}
	return s.noticeModule.Wait(ctx, cartID, timeout)
}

// Catalog lists the products the storefront sells.
func (s *CartService) Catalog() []etcart.Product {
	return etcart.Catalog()
}

// PriceTable returns the loaded price table or errorx.ErrPriceTableMissing.
func (s *CartService) PriceTable() (*etprice.Table, error) {
	return s.priceModule.RequireTable()
}
