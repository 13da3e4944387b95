// Package kv provides the key-value persistence layer backing the state
// containers. Each container owns exactly one key and writes its whole
// value on every mutation.
package kv

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Get when the key has never been written
	// (or was deleted). Callers treat it as the recognized "empty" case.
	ErrNotFound = errors.New("key not found")

	// ErrCorrupt marks a value that is present but cannot be decoded.
	// Unlike an absent key this is surfaced to the caller, not silently
	// treated as empty.
	ErrCorrupt = errors.New("stored value is corrupt")
)

// Well-known storage keys. One writer per key.
const (
	KeyUser           = "user"
	KeyAddresses      = "addresses"
	KeyPaymentMethods = "paymentMethods"
	KeyCart           = "cart"
	KeyWishlist       = "wishlist"
)

// Store defines the interface for raw key-value access.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
