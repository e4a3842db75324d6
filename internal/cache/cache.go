// Package cache provides small fixed-capacity key/value stores used to keep
// recent filter results around while the user types.
package cache

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultCapacity is the number of entries a store keeps when no capacity is
// configured.
const DefaultCapacity = 16

var (
	ErrInvalidCapacity = errors.New("cache: capacity must be at least 1")
	ErrUnknownPolicy   = errors.New("cache: unknown eviction policy")
)

// Policy selects how a store picks its eviction victim.
type Policy string

const (
	// PolicyFIFO evicts the entry inserted earliest; reads never reorder.
	PolicyFIFO Policy = "fifo"
	// PolicyLRU evicts the least recently written entry.
	PolicyLRU Policy = "lru"
)

// ParsePolicy maps a config string onto a Policy. The empty string selects
// PolicyFIFO.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyFIFO:
		return PolicyFIFO, nil
	case PolicyLRU:
		return PolicyLRU, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Store is a bounded associative cache. Implementations are not safe for
// concurrent use.
type Store[K comparable, V any] interface {
	// Contains reports whether key is present.
	Contains(key K) bool
	// Get returns the stored value and true, or the zero value and false.
	Get(key K) (V, bool)
	// Put inserts or overwrites key. When the insertion pushes the store
	// past its capacity the oldest entry is evicted before Put returns.
	Put(key K, value V)
	// Keys returns the keys oldest first.
	Keys() []K
	Len() int
	Cap() int
}

// EvictFunc is called with every entry a store drops to stay within capacity.
type EvictFunc[K comparable, V any] func(key K, value V)

// New builds a store for the given policy.
func New[K comparable, V any](policy Policy, capacity int, onEvict EvictFunc[K, V]) (Store[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidCapacity, capacity)
	}
	switch policy {
	case "", PolicyFIFO:
		c, err := NewFIFO[K, V](capacity, onEvict)
		if err != nil {
			return nil, err
		}
		return c, nil
	case PolicyLRU:
		c, err := NewLRU[K, V](capacity, onEvict)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(policy))
	}
}
