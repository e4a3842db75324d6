package cache

import (
	"container/list"
	"fmt"
)

// FIFO is a Store that evicts in insertion order. Overwriting an existing
// key replaces the value in place and keeps the key's original slot.
type FIFO[K comparable, V any] struct {
	capacity int
	order    *list.List // front = oldest
	entries  map[K]*list.Element
	onEvict  EvictFunc[K, V]
}

type fifoEntry[K comparable, V any] struct {
	key   K
	value V
}

// NewFIFO returns an empty FIFO store. onEvict may be nil.
func NewFIFO[K comparable, V any](capacity int, onEvict EvictFunc[K, V]) (*FIFO[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidCapacity, capacity)
	}
	return &FIFO[K, V]{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[K]*list.Element, capacity+1),
		onEvict:  onEvict,
	}, nil
}

func (c *FIFO[K, V]) Contains(key K) bool {
	_, ok := c.entries[key]
	return ok
}

func (c *FIFO[K, V]) Get(key K) (V, bool) {
	if ele, ok := c.entries[key]; ok {
		return ele.Value.(fifoEntry[K, V]).value, true
	}
	var zero V
	return zero, false
}

func (c *FIFO[K, V]) Put(key K, value V) {
	if ele, ok := c.entries[key]; ok {
		ele.Value = fifoEntry[K, V]{key: key, value: value}
		return
	}
	c.entries[key] = c.order.PushBack(fifoEntry[K, V]{key: key, value: value})
	for c.order.Len() > c.capacity {
		c.evictOldest()
	}
}

func (c *FIFO[K, V]) evictOldest() {
	oldest := c.order.Front()
	if oldest == nil {
		return
	}
	entry := c.order.Remove(oldest).(fifoEntry[K, V])
	delete(c.entries, entry.key)
	if c.onEvict != nil {
		c.onEvict(entry.key, entry.value)
	}
}

func (c *FIFO[K, V]) Keys() []K {
	keys := make([]K, 0, c.order.Len())
	for ele := c.order.Front(); ele != nil; ele = ele.Next() {
		keys = append(keys, ele.Value.(fifoEntry[K, V]).key)
	}
	return keys
}

func (c *FIFO[K, V]) Len() int { return c.order.Len() }

func (c *FIFO[K, V]) Cap() int { return c.capacity }
