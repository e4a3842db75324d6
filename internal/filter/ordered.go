package filter

import "strings"

// orderedMap maps folded names to items and remembers insertion order.
// Setting an existing key replaces its value without moving it.
type orderedMap[T any] struct {
	keys   []string
	values map[string]T
}

func newOrderedMap[T any](sizeHint int) *orderedMap[T] {
	return &orderedMap[T]{
		keys:   make([]string, 0, sizeHint),
		values: make(map[string]T, sizeHint),
	}
}

func (m *orderedMap[T]) set(key string, value T) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *orderedMap[T]) len() int { return len(m.keys) }

// narrow returns a new map holding the entries whose key contains text, in
// the same relative order. m is left untouched.
func (m *orderedMap[T]) narrow(text string) *orderedMap[T] {
	out := newOrderedMap[T](0)
	for _, key := range m.keys {
		if strings.Contains(key, text) {
			out.keys = append(out.keys, key)
			out.values[key] = m.values[key]
		}
	}
	return out
}

func (m *orderedMap[T]) items() []T {
	out := make([]T, len(m.keys))
	for i, key := range m.keys {
		out[i] = m.values[key]
	}
	return out
}
