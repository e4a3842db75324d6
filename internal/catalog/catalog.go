// Package catalog holds the static, ordered collection of items a picker
// filters over, plus loaders that build one from text files, directories,
// and JSON documents.
package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyName     = errors.New("catalog: empty display name")
	ErrInvalidName   = errors.New("catalog: invalid display name")
	ErrMissingField  = errors.New("catalog: name field missing")
	ErrNamePanic     = errors.New("catalog: display name extractor panicked")
	ErrUnknownFormat = errors.New("catalog: unknown format")
)

// NameFunc produces the human-readable display name of one item. It may fail
// for individual items; callers log and skip those.
type NameFunc func() (string, error)

// Entry pairs an item handle with the way to obtain its display name.
type Entry[T any] struct {
	Item T
	// Describe identifies the entry in log messages when its name cannot be
	// determined.
	Describe string
	Name     NameFunc
}

// DisplayName runs the entry's extractor. A panicking extractor is reported
// as an error wrapping ErrNamePanic rather than unwinding the caller.
func (e Entry[T]) DisplayName() (name string, err error) {
	if e.Name == nil {
		return "", ErrEmptyName
	}
	defer func() {
		if r := recover(); r != nil {
			name = ""
			err = fmt.Errorf("%w: %v", ErrNamePanic, r)
		}
	}()
	return e.Name()
}

// Catalog is an ordered, append-only list of entries.
type Catalog[T any] struct {
	entries []Entry[T]
}

// New returns an empty catalog with room for sizeHint entries.
func New[T any](sizeHint int) *Catalog[T] {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Catalog[T]{entries: make([]Entry[T], 0, sizeHint)}
}

// FromNames builds a catalog whose display names are the given strings and
// whose items are their positions in names.
func FromNames(names ...string) *Catalog[int] {
	c := New[int](len(names))
	for i, name := range names {
		c.AddName(i, fmt.Sprintf("#%d", i), name)
	}
	return c
}

// Add appends an item whose display name is computed by name.
func (c *Catalog[T]) Add(item T, describe string, name NameFunc) {
	c.entries = append(c.entries, Entry[T]{Item: item, Describe: describe, Name: name})
}

// AddName appends an item with a fixed display name.
func (c *Catalog[T]) AddName(item T, describe, name string) {
	c.Add(item, describe, func() (string, error) {
		if name == "" {
			return "", ErrEmptyName
		}
		return name, nil
	})
}

// Len reports the number of entries, including ones whose names may fail.
func (c *Catalog[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries returns the entries in insertion order. The slice must not be
// modified.
func (c *Catalog[T]) Entries() []Entry[T] {
	if c == nil {
		return nil
	}
	return c.entries
}
