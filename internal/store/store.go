// Package store provides the durable local key-value store backing the
// session manager. Values are opaque byte strings; callers own serialization.
package store

import "context"

// Store is a small key-value store on durable local storage.
//
// Get returns (nil, nil) for a missing key so callers can treat absence and
// emptiness uniformly.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}
