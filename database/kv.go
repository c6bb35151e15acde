package database

import (
	"context"
	"errors"
)

// ErrNoKey is returned by KV.Get when the key has never been set or was
// deleted.
var ErrNoKey = errors.New("key not found")

// KV is the persistence contract for the whole service: string keys mapped to
// JSON-serialized string values. Backed by Redis in production and by an
// in-process map in tests.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}
