// Package sessionstore provides session-scoped key-value storage media.
// The payment record store and the purchase intent store are both built
// on the KV contract; an in-memory map serves tests and single-node runs,
// Redis serves anything that must survive a process restart.
package sessionstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key has no value (or it expired).
var ErrKeyNotFound = errors.New("key not found")

// ErrUnavailable is returned when the backing medium cannot be reached.
// Callers treat it as recoverable: "store unavailable" and "record
// absent" both mean the flow cannot proceed, never a crash.
var ErrUnavailable = errors.New("session store unavailable")

// KV is a minimal key-value medium with session-scoped lifetimes. Values
// expire after the TTL configured on the implementation.
type KV interface {
	Set(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
