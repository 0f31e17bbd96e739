// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package collection

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/playcall-app/playcall/store"
)

// Entity is anything a Collection can manage.
type Entity interface {
	EntityID() string
}

// Collection is an ordered, in-memory list of entities bound to one
// (user, key) slot in a CollectionStore. Every mutation rewrites the whole
// serialized collection; order is append order and is preserved across
// save/load round-trips.
type Collection[T Entity] struct {
	store  store.CollectionStore
	userID string
	key    string
	items  []T
}

// Load hydrates a collection from the store. A missing slot or unreadable
// saved data both yield an empty collection; parse failures are logged and
// swallowed, never surfaced.
func Load[T Entity](ctx context.Context, st store.CollectionStore, userID, key string) (*Collection[T], error) {
	c := &Collection[T]{store: st, userID: userID, key: key}

	data, ok, err := st.Load(ctx, userID, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return c, nil
	}

	if err := json.Unmarshal(data, &c.items); err != nil {
		slog.Warn("discarding unreadable collection", "key", key, "error", err)
		c.items = nil
	}
	return c, nil
}

// List returns the entities in order. The returned slice is a copy.
func (c *Collection[T]) List() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Find returns the entity with the given id, or ok=false.
func (c *Collection[T]) Find(id string) (T, bool) {
	for _, e := range c.items {
		if e.EntityID() == id {
			return e, true
		}
	}
	var zero T
	return zero, false
}

// Add appends the entity and persists the collection.
func (c *Collection[T]) Add(ctx context.Context, e T) error {
	c.items = append(c.items, e)
	return c.persist(ctx)
}

// Update replaces the entity with a matching id and persists. An absent id
// is a no-op, reported through the bool, never as an error.
func (c *Collection[T]) Update(ctx context.Context, id string, e T) (bool, error) {
	for i, existing := range c.items {
		if existing.EntityID() == id {
			c.items[i] = e
			return true, c.persist(ctx)
		}
	}
	return false, nil
}

// Delete filters out the entity with the given id. Deleting a nonexistent
// id leaves the collection unchanged and returns no error.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	kept := c.items[:0]
	removed := false
	for _, e := range c.items {
		if e.EntityID() == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	c.items = kept
	if !removed {
		return nil
	}
	return c.persist(ctx)
}

// Replace swaps in a whole new ordered list and persists it.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	c.items = make([]T, len(items))
	copy(c.items, items)
	return c.persist(ctx)
}

// Len reports the number of entities.
func (c *Collection[T]) Len() int { return len(c.items) }

func (c *Collection[T]) persist(ctx context.Context) error {
	items := c.items
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.store.Save(ctx, c.userID, c.key, data)
}
