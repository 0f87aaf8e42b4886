package storage

import "context"

// Store is the key-value storage the state containers persist their
// snapshots through. One JSON document per key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}
