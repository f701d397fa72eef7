package rpcart

import (
	"context"
	"fmt"
	"sync"

	"singsing/storefront/internal/app/domains/entity/etcart"
	"singsing/storefront/internal/app/infra/persistence/kvstore"
	"singsing/storefront/internal/app/pkg/errorx"
	"singsing/storefront/internal/app/pkg/logger"
)

// CartRepositoryImpl stores each cart as a JSON array under
// "<keyPrefix>:<cartID>" in a key-value store.
type CartRepositoryImpl struct {
	store     kvstore.Store
	keyPrefix string
	locks     *keyLocks
	logger    logger.Logger
}

// NewCartRepository creates a repository over store.
func NewCartRepository(store kvstore.Store, keyPrefix string, log logger.Logger) CartRepository {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &CartRepositoryImpl{
		store:     store,
		keyPrefix: keyPrefix,
		locks:     newKeyLocks(),
		logger:    log,
	}
}

// Key returns the storage key of cartID.
func (r *CartRepositoryImpl) Key(cartID string) string {
	return r.keyPrefix + ":" + cartID
}

func (r *CartRepositoryImpl) Get(ctx context.Context, cartID string) (*etcart.Cart, error) {
	if cartID == "" {
		return nil, etcart.ErrInvalidCartID
	}
	unlock := r.locks.lock(r.Key(cartID))
	defer unlock()

	return r.load(ctx, cartID)
}

func (r *CartRepositoryImpl) Save(ctx context.Context, cart *etcart.Cart) error {
	if cart == nil || cart.ID == "" {
		return etcart.ErrInvalidCartID
	}
	unlock := r.locks.lock(r.Key(cart.ID))
	defer unlock()

	return r.write(ctx, cart)
}

func (r *CartRepositoryImpl) Update(ctx context.Context, cartID string, fn func(cart *etcart.Cart) error) (*etcart.Cart, error) {
	if cartID == "" {
		return nil, etcart.ErrInvalidCartID
	}
	unlock := r.locks.lock(r.Key(cartID))
	defer unlock()

	cart, err := r.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if err := fn(cart); err != nil {
		return nil, err
	}
	if err := r.write(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *CartRepositoryImpl) Clear(ctx context.Context, cartID string) error {
	if cartID == "" {
		return etcart.ErrInvalidCartID
	}
	unlock := r.locks.lock(r.Key(cartID))
	defer unlock()

	if err := r.store.RemoveItem(ctx, r.Key(cartID)); err != nil {
		return fmt.Errorf("%w: %v", errorx.ErrStorageUnavailable, err)
	}
	return nil
}

// load reads and normalizes the stored cart. When the stored text is not the
// canonical form of what it decodes to, the canonical form is written back;
// a failed write-back is logged and the repaired cart still returned.
func (r *CartRepositoryImpl) load(ctx context.Context, cartID string) (*etcart.Cart, error) {
	key := r.Key(cartID)
	value, found, err := r.store.GetItem(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errorx.ErrStorageUnavailable, err)
	}
	if !found {
		return etcart.NewCart(cartID, nil)
	}

	items := etcart.DecodeItems([]byte(value))
	canonical, err := etcart.EncodeItems(items)
	if err != nil {
		return nil, fmt.Errorf("encode cart failed: %w", err)
	}
	if string(canonical) != value {
		r.logger.Warnf(ctx, "repairing stored cart %s: %d bytes -> %d bytes", key, len(value), len(canonical))
		if err := r.store.SetItem(ctx, key, string(canonical)); err != nil {
			r.logger.Errorf(ctx, "write back repaired cart %s failed: %v", key, err)
		}
	}
	return &etcart.Cart{ID: cartID, Items: items}, nil
}

func (r *CartRepositoryImpl) write(ctx context.Context, cart *etcart.Cart) error {
	cart.Items = etcart.NormalizeItems(cart.Items)
	data, err := etcart.EncodeItems(cart.Items)
	if err != nil {
		return fmt.Errorf("encode cart failed: %w", err)
	}
	if err := r.store.SetItem(ctx, r.Key(cart.ID), string(data)); err != nil {
		return fmt.Errorf("%w: %v", errorx.ErrStorageUnavailable, err)
	}
	return nil
}

// keyLocks hands out one mutex per storage key and forgets it once no
// goroutine holds or waits for it.
type keyLocks struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sync.Mutex
	refs int
}

func newKeyLocks() *keyLocks {
	return &keyLocks{locks: make(map[string]*keyLock)}
}

func (k *keyLocks) lock(key string) (unlock func()) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyLocks) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
