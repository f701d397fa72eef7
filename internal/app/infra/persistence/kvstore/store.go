// Package kvstore defines the key-value storage carts are persisted in and the
// in-process backends. The contract mirrors browser localStorage: string keys,
// string values, missing keys are not an error.
package kvstore

import "context"

// Store key-value storage backend
type Store interface {
	// GetItem returns the value under key and whether it exists.
	GetItem(ctx context.Context, key string) (string, bool, error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing a missing key succeeds.
	RemoveItem(ctx context.Context, key string) error
}
