// Package wishlist implements the wishlist state container: a persisted
// set of product ids with idempotent add and remove.
package wishlist

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"storefront/internal/kv"

	"go.uber.org/zap"
)

// Wishlist is a process-wide set of product ids. Insertion order is
// preserved so the serialized form is stable.
type Wishlist struct {
	mu     sync.Mutex
	ids    []string
	store  kv.Store
	logger *zap.Logger
}

// New creates an empty wishlist backed by the given store.
func New(store kv.Store, logger *zap.Logger) *Wishlist {
	return &Wishlist{
		ids:    []string{},
		store:  store,
		logger: logger,
	}
}

// Load restores the wishlist from storage. Absent and corrupt values
// both yield an empty wishlist; corruption is logged.
func (w *Wishlist) Load(ctx context.Context) error {
	ids, err := kv.Load[[]string](ctx, w.store, kv.KeyWishlist)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil
		}
		if errors.Is(err, kv.ErrCorrupt) {
			w.logger.Warn("Discarding corrupt stored wishlist", zap.Error(err))
			return nil
		}
		return fmt.Errorf("failed to load wishlist: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.ids = ids
	return nil
}

// Add inserts the product id if absent. Adding a present id changes
// nothing.
func (w *Wishlist) Add(ctx context.Context, productID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, id := range w.ids {
		if id == productID {
			return nil
		}
	}
	w.ids = append(w.ids, productID)
	return w.persist(ctx)
}

// Remove deletes the product id if present. Removing an absent id
// changes nothing.
func (w *Wishlist) Remove(ctx context.Context, productID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, id := range w.ids {
		if id == productID {
			w.ids = append(w.ids[:i], w.ids[i+1:]...)
			return w.persist(ctx)
		}
	}
	return nil
}

// Contains reports membership of the product id.
func (w *Wishlist) Contains(productID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, id := range w.ids {
		if id == productID {
			return true
		}
	}
	return false
}

// Clear empties the wishlist.
func (w *Wishlist) Clear(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.ids = []string{}
	return w.persist(ctx)
}

// IDs returns the wishlist contents in insertion order.
func (w *Wishlist) IDs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]string, len(w.ids))
	copy(out, w.ids)
	return out
}

// persist writes the full id list. Callers must hold the mutex.
func (w *Wishlist) persist(ctx context.Context) error {
	if err := kv.Save(ctx, w.store, kv.KeyWishlist, w.ids); err != nil {
		return fmt.Errorf("failed to persist wishlist: %w", err)
	}
	return nil
}
