package localstore

import (
	"context"
	"encoding/json"
	"sync"

	"brokerage/internal/errors"

	"github.com/google/uuid"
)

// collection is the generic entity store: the authoritative in-memory list
// of one entity type, kept in sync with its mirror key. Every mutation
// serializes the full updated list and writes it through to the mirror
// before the in-memory snapshot changes, so readers never observe state the
// mirror does not hold.
//
// The product this models is single-threaded; the mutex exists only because
// the HTTP delivery layer serves requests concurrently.
type collection[T any] struct {
	mu     sync.RWMutex
	mirror Mirror
	key    string
	idOf   func(*T) uuid.UUID
	items  []*T
}

// newCollection loads the collection stored under key. When the key has
// never been written and seed is non-nil, the seed fixture is installed
// first.
func newCollection[T any](ctx context.Context, mirror Mirror, key string, idOf func(*T) uuid.UUID, seed []*T) (*collection[T], error) {
	raw, err := mirror.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	c := &collection[T]{mirror: mirror, key: key, idOf: idOf}

	if raw == nil {
		if len(seed) > 0 {
			if err := c.persistLocked(ctx, seed); err != nil {
				return nil, errors.Wrapf(err, "failed to seed collection %s", key)
			}
		}

		return c, nil
	}

	var items []*T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrapf(err, "failed to decode collection %s", key)
	}
	c.items = items

	return c, nil
}

// persistLocked writes next through to the mirror and, only on success,
// makes it the in-memory snapshot. Callers must hold the write lock (or be
// inside construction, before the collection is shared).
func (c *collection[T]) persistLocked(ctx context.Context, next []*T) error {
	raw, err := json.Marshal(next)
	if err != nil {
		return errors.Wrapf(err, "failed to encode collection %s", c.key)
	}

	if err := c.mirror.Save(ctx, c.key, raw); err != nil {
		return err
	}

	c.items = next

	return nil
}

// snapshot returns the current list in insertion order.
func (c *collection[T]) snapshot() []*T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*T, len(c.items))
	copy(out, c.items)

	return out
}

// findByID returns the item with the given id, if present.
func (c *collection[T]) findByID(id uuid.UUID) (*T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}

	return nil, false
}

// filter returns the items matching pred, in insertion order.
func (c *collection[T]) filter(pred func(*T) bool) []*T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []*T
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}

	return out
}

// append adds item to the end of the collection.
func (c *collection[T]) append(ctx context.Context, item *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]*T, 0, len(c.items)+1)
	next = append(next, c.items...)
	next = append(next, item)

	return c.persistLocked(ctx, next)
}

// replace swaps the item whose id matches item's id. It reports false when
// no such item exists, leaving the collection untouched.
func (c *collection[T]) replace(ctx context.Context, item *T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.idOf(item)
	next := make([]*T, len(c.items))
	copy(next, c.items)

	for i, existing := range next {
		if c.idOf(existing) == id {
			next[i] = item

			return true, c.persistLocked(ctx, next)
		}
	}

	return false, nil
}

// updateAll applies mutate to a copy of every item matching pred and
// persists the result. It returns the number of items changed.
func (c *collection[T]) updateAll(ctx context.Context, pred func(*T) bool, mutate func(*T)) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]*T, len(c.items))
	copy(next, c.items)

	changed := 0
	for i, existing := range next {
		if !pred(existing) {
			continue
		}

		copied := *existing
		mutate(&copied)
		next[i] = &copied
		changed++
	}

	if changed == 0 {
		return 0, nil
	}

	return changed, c.persistLocked(ctx, next)
}

// remove deletes the item with the given id. It reports false when no such
// item exists, leaving the collection untouched.
func (c *collection[T]) remove(ctx context.Context, id uuid.UUID) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]*T, 0, len(c.items))
	found := false
	for _, existing := range c.items {
		if c.idOf(existing) == id {
			found = true

			continue
		}
		next = append(next, existing)
	}

	if !found {
		return false, nil
	}

	return true, c.persistLocked(ctx, next)
}
