// Package cart implements the shopping cart state container. The cart
// holds an ordered mapping from product id to quantity and persists the
// full item list to the key-value store on every mutation.
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/kv"

	"go.uber.org/zap"
)

// Cart is a process-wide shopping cart. All operations are atomic steps
// guarded by a mutex; derived values are recomputed on every read.
type Cart struct {
	mu     sync.Mutex
	items  []domain.CartItem
	store  kv.Store
	logger *zap.Logger
}

// New creates an empty cart backed by the given store.
func New(store kv.Store, logger *zap.Logger) *Cart {
	return &Cart{
		items:  []domain.CartItem{},
		store:  store,
		logger: logger,
	}
}

// Load restores the cart from storage. An absent key yields an empty
// cart; a corrupt value is logged and likewise treated as empty.
func (c *Cart) Load(ctx context.Context) error {
	items, err := kv.Load[[]domain.CartItem](ctx, c.store, kv.KeyCart)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil
		}
		if errors.Is(err, kv.ErrCorrupt) {
			c.logger.Warn("Discarding corrupt stored cart", zap.Error(err))
			return nil
		}
		return fmt.Errorf("failed to load cart: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	return nil
}

// AddItem adds qty units of the product. If the product is already in
// the cart the existing quantity is incremented, not replaced. The
// resulting quantity is clamped to the product's stock.
func (c *Cart) AddItem(ctx context.Context, product domain.Product, qty int) error {
	if qty <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	found := false
	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity = clampToStock(c.items[i].Quantity+qty, product.Stock)
			found = true
			break
		}
	}
	if !found {
		c.items = append(c.items, domain.CartItem{
			Product:  product,
			Quantity: clampToStock(qty, product.Stock),
		})
	}

	return c.persist(ctx)
}

// RemoveItem deletes the product's entry. Removing an absent product is
// a no-op.
func (c *Cart) RemoveItem(ctx context.Context, productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.persist(ctx)
		}
	}
	return nil
}

// UpdateQuantity sets the product's quantity to qty (replace, not add).
// A qty of zero or less removes the item entirely. The quantity is
// clamped to the product's stock.
func (c *Cart) UpdateQuantity(ctx context.Context, productID string, qty int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID != productID {
			continue
		}
		if qty <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = clampToStock(qty, c.items[i].Product.Stock)
		}
		return c.persist(ctx)
	}
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = []domain.CartItem{}
	return c.persist(ctx)
}

// Items returns the cart contents in insertion order.
func (c *Cart) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Subtotal returns the sum of effective price times quantity over all
// items.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

// TotalItems returns the sum of all quantities.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// persist writes the full item list. Callers must hold the mutex.
func (c *Cart) persist(ctx context.Context) error {
	if err := kv.Save(ctx, c.store, kv.KeyCart, c.items); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// clampToStock bounds qty to the available stock. Products without
// stock information (zero) are left unclamped.
func clampToStock(qty, stock int) int {
	if stock > 0 && qty > stock {
		return stock
	}
	return qty
}
