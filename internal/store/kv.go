package store

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KV.Get when no snapshot exists for the key.
var ErrKeyNotFound = errors.New("key not found")

// KV is the snapshot persistence port. Implementations must be safe for
// concurrent use.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}
