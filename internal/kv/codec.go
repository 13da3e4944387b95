package kv

import (
	"context"
	"encoding/json"
	"fmt"
)

// Load reads and decodes the JSON value stored under key. An absent key
// returns ErrNotFound with the zero value; a value that fails to decode
// returns ErrCorrupt so callers can distinguish "never written" from
// "written but unreadable".
func Load[T any](ctx context.Context, store Store, key string) (T, error) {
	var out T

	raw, err := store.Get(ctx, key)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: key %q: %v", ErrCorrupt, key, err)
	}

	return out, nil
}

// Save encodes value as JSON and writes it under key, replacing the
// previous value in full.
func Save[T any](ctx context.Context, store Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %q: %w", key, err)
	}

	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to persist key %q: %w", key, err)
	}

	return nil
}
