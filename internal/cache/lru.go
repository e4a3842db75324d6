package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRU is a Store backed by hashicorp/golang-lru. Reads go through Peek and
// Contains so they never promote; only a re-Put of an existing key moves it
// to the newest slot.
type LRU[K comparable, V any] struct {
	cache    *lru.Cache[K, V]
	capacity int
}

// NewLRU returns an empty LRU store. onEvict may be nil.
func NewLRU[K comparable, V any](capacity int, onEvict EvictFunc[K, V]) (*LRU[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidCapacity, capacity)
	}
	var (
		c   *lru.Cache[K, V]
		err error
	)
	if onEvict != nil {
		c, err = lru.NewWithEvict[K, V](capacity, onEvict)
	} else {
		c, err = lru.New[K, V](capacity)
	}
	if err != nil {
		return nil, fmt.Errorf("cache: new lru: %w", err)
	}
	return &LRU[K, V]{cache: c, capacity: capacity}, nil
}

func (c *LRU[K, V]) Contains(key K) bool { return c.cache.Contains(key) }

func (c *LRU[K, V]) Get(key K) (V, bool) { return c.cache.Peek(key) }

func (c *LRU[K, V]) Put(key K, value V) { c.cache.Add(key, value) }

func (c *LRU[K, V]) Keys() []K { return c.cache.Keys() }

func (c *LRU[K, V]) Len() int { return c.cache.Len() }

func (c *LRU[K, V]) Cap() int { return c.capacity }
