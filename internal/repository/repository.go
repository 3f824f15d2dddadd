package repository

import (
	"context"
)

// KVStore is the durable key-value cache behind the history logs. Values are
// opaque JSON documents, rewritten in full on every Put.
type KVStore interface {
	// Get returns ErrNotFound when the key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
