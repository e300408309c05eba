// SPDX-License-Identifier: MIT

package cache

import (
	"fmt"
	"maps"
	"sort"
	"strings"
	"sync"
)

// Key identifies a value of type T in a Cache.
type Key[T any] struct {
	name string
}

// NewKey returns a fresh key. Name is informative only.
func NewKey[T any](name string) *Key[T] {
	return &Key[T]{name: name}
}

// String returns the key name, or its address when unnamed.
func (k *Key[T]) String() string {
	if k.name == "" {
		return fmt.Sprintf("key(%p)", k)
	}
	return k.name
}

// Cache is a heterogeneous map. The zero value is ready to use.
type Cache struct {
	mu       sync.RWMutex
	values   map[fmt.Stringer]any
	defaults map[fmt.Stringer]any
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{}
}

// Put maps k to v, replacing any previous value.
func Put[T any](c *Cache, k *Key[T], v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.values == nil {
		c.values = make(map[fmt.Stringer]any)
	}
	c.values[k] = v
}

// Get returns the value mapped to k, and whether there was one.
func Get[T any](c *Cache, k *Key[T]) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.values[k]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Remove unmaps k.
func (c *Cache) Remove(k fmt.Stringer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, k)
}

// Clear removes every value. The saved default is kept.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.values)
}

// Len returns the number of mapped keys.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.values)
}

// SetAsDefault saves the current content as the default state.
func (c *Cache) SetAsDefault() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defaults = maps.Clone(c.values)
}

// ResetToDefault replaces the content with the last saved default.
func (c *Cache) ResetToDefault() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = maps.Clone(c.defaults)
}

// Snapshot returns a copy of the content. Its keys are the *Key values
// used with Put.
func (c *Cache) Snapshot() map[fmt.Stringer]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[fmt.Stringer]any, len(c.values))
	maps.Copy(out, c.values)
	return out
}

// String renders the content as {name:value ...}, sorted by name.
func (c *Cache) String() string {
	c.mu.RLock()
	parts := make([]string, 0, len(c.values))
	for k, v := range c.values {
		parts = append(parts, fmt.Sprintf("%s:%v", k, v))
	}
	c.mu.RUnlock()

	sort.Strings(parts)
	return "{" + strings.Join(parts, " ") + "}"
}
