// Package dictionary defines the word-membership store used for stop-word
// detection and learning, plus two reference implementations: a lock-guarded
// in-memory set with optional write-through to a backing store, and an empty
// dictionary that knows nothing.
package dictionary

import (
	"fmt"
	"sync"
)

// Dictionary is a word set with cached reads and write-through learning.
// Contains answers from the in-memory state; Sync discards that state and
// replaces it wholesale from the backing store.
type Dictionary interface {
	// Contains reports membership. It never fails.
	Contains(word string) bool

	// Add inserts a word, reporting true iff it was newly added. Only a
	// genuinely new word is forwarded to any backing store.
	Add(word string) (bool, error)

	// Sync replaces the in-memory set with a fresh snapshot from the
	// backing store. It is not a merge.
	Sync() error

	// GetAll returns a point-in-time snapshot of the word set.
	GetAll() (map[string]struct{}, error)
}

// Cached is an in-memory Dictionary, optionally backed by an inner
// Dictionary. The set is guarded by a reader/writer lock, so Add is always
// legal and merely contends with concurrent readers. The in-memory set is
// authoritative for Contains; it lags the backing store until Sync.
type Cached struct {
	mu    sync.RWMutex
	words map[string]struct{}
	inner Dictionary
}

// NewCached creates a standalone in-memory dictionary seeded with words.
func NewCached(seed []string) *Cached {
	words := make(map[string]struct{}, len(seed))
	for _, w := range seed {
		words[w] = struct{}{}
	}
	return &Cached{words: words}
}

// NewCachedWith creates an empty in-memory dictionary that writes new words
// through to inner and refreshes from it on Sync.
func NewCachedWith(inner Dictionary) *Cached {
	return &Cached{words: make(map[string]struct{}), inner: inner}
}

// Contains reports membership in the in-memory set.
func (c *Cached) Contains(word string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.words[word]
	return ok
}

// Add inserts word into the in-memory set and, when it is genuinely new,
// forwards it to the backing store. The in-memory insert is kept even when
// the backing write fails; a later Sync reconciles.
func (c *Cached) Add(word string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.words[word]; ok {
		return false, nil
	}
	c.words[word] = struct{}{}

	if c.inner != nil {
		if _, err := c.inner.Add(word); err != nil {
			return true, fmt.Errorf("write through: %w", err)
		}
	}
	return true, nil
}

// Sync replaces the in-memory set with the backing store's snapshot. With no
// backing store it is a no-op.
func (c *Cached) Sync() error {
	if c.inner == nil {
		return nil
	}

	fresh, err := c.inner.GetAll()
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}

	c.mu.Lock()
	c.words = fresh
	c.mu.Unlock()
	return nil
}

// GetAll returns a copy of the in-memory set.
func (c *Cached) GetAll() (map[string]struct{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]struct{}, len(c.words))
	for w := range c.words {
		out[w] = struct{}{}
	}
	return out, nil
}

// Empty is a Dictionary with no members; every mutation is a trivial
// success.
type Empty struct{}

// Contains always reports false.
func (Empty) Contains(string) bool { return false }

// Add reports nothing new and succeeds.
func (Empty) Add(string) (bool, error) { return false, nil }

// Sync succeeds without effect.
func (Empty) Sync() error { return nil }

// GetAll returns an empty set.
func (Empty) GetAll() (map[string]struct{}, error) { return map[string]struct{}{}, nil }
