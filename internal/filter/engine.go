// Package filter narrows a static catalog to the items whose display name
// contains a substring, reusing earlier results while the query is typed one
// character at a time.
//
// Results are cached per filter text in a bounded store. A query that misses
// the cache is built from the longest cached filter that is a prefix of it:
// every name containing "iron" also contains "iro", so the "iro" result is a
// superset of the "iron" result and only it needs to be scanned. When no
// cached prefix exists the whole catalog is scanned.
//
// An Engine is not safe for concurrent use.
package filter

import (
	"strings"

	"github.com/kk-code-lab/rpick/internal/cache"
	"github.com/kk-code-lab/rpick/internal/catalog"
	"github.com/kk-code-lab/rpick/internal/metrics"
	"github.com/kk-code-lab/rpick/internal/textutil"
	"go.uber.org/zap"
)

// Stats counts how results were produced since construction.
type Stats struct {
	MapCacheHits    int
	AncestorBuilds  int
	FullScans       int
	ListCacheHits   int
	ListCacheMisses int
	MapEvictions    int
	ListEvictions   int
}

// Engine holds the unfiltered catalog, the active filter, and the result
// caches.
type Engine[T any] struct {
	unfiltered *orderedMap[T]
	active     *orderedMap[T]
	filterText string

	maps  cache.Store[string, *orderedMap[T]]
	lists cache.Store[string, []T]

	skipped int
	stats   Stats
	log     *zap.SugaredLogger
	metrics *metrics.Filter
}

// New builds an engine over cat. Entries whose display name cannot be
// determined are logged and skipped. When two entries fold to the same name
// the later item replaces the earlier one, keeping the earlier position.
// The only errors come from invalid options.
func New[T any](cat *catalog.Catalog[T], opts ...Option) (*Engine[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine[T]{
		unfiltered: newOrderedMap[T](cat.Len()),
		log:        o.log,
		metrics:    o.metrics,
	}

	maps, err := cache.New[string, *orderedMap[T]](o.policy, o.capacity, func(string, *orderedMap[T]) {
		e.stats.MapEvictions++
		if e.metrics != nil {
			e.metrics.Evictions.WithLabelValues("map").Inc()
		}
	})
	if err != nil {
		return nil, err
	}
	lists, err := cache.New[string, []T](o.policy, o.capacity, func(string, []T) {
		e.stats.ListEvictions++
		if e.metrics != nil {
			e.metrics.Evictions.WithLabelValues("list").Inc()
		}
	})
	if err != nil {
		return nil, err
	}
	e.maps = maps
	e.lists = lists

	for idx, entry := range cat.Entries() {
		name, err := entry.DisplayName()
		if err != nil {
			e.skipped++
			e.log.Warnw("skipping catalog entry with broken display name",
				"index", idx,
				"entry", entry.Describe,
				"err", err,
			)
			continue
		}
		e.unfiltered.set(textutil.FoldName(name), entry.Item)
	}
	if e.metrics != nil && e.skipped > 0 {
		e.metrics.CatalogSkipped.Add(float64(e.skipped))
	}

	e.active = e.unfiltered
	e.SetFilterText("")
	e.observeActive()

	e.log.Debugw("filter engine ready",
		"entries", cat.Len(),
		"names", e.unfiltered.len(),
		"skipped", e.skipped,
		"cache_capacity", o.capacity,
		"cache_policy", string(o.policy),
	)
	return e, nil
}

// SetFilterText makes text (folded) the active filter. It reports whether
// the filter changed; setting the current text again is a no-op.
func (e *Engine[T]) SetFilterText(text string) bool {
	text = textutil.FoldName(text)
	if text == e.filterText {
		return false
	}

	e.active = e.filteredMap(text)
	e.filterText = text
	e.observeActive()
	return true
}

// FilterText returns the active, folded filter text.
func (e *Engine[T]) FilterText() string { return e.filterText }

// Size reports how many items match the active filter.
func (e *Engine[T]) Size() int { return e.active.len() }

// Total reports how many distinct names the catalog holds.
func (e *Engine[T]) Total() int { return e.unfiltered.len() }

// Skipped reports how many catalog entries were dropped at construction.
func (e *Engine[T]) Skipped() int { return e.skipped }

// Stats returns a snapshot of the result counters.
func (e *Engine[T]) Stats() Stats { return e.stats }

// ItemList returns the items matching the active filter in catalog order.
// The slice may be shared with later calls for the same filter text and
// must not be modified.
func (e *Engine[T]) ItemList() []T {
	if list, ok := e.lists.Get(e.filterText); ok {
		e.stats.ListCacheHits++
		if e.metrics != nil {
			e.metrics.ListCacheHits.Inc()
		}
		return list
	}

	list := e.active.items()
	e.lists.Put(e.filterText, list)
	e.stats.ListCacheMisses++
	if e.metrics != nil {
		e.metrics.ListCacheMisses.Inc()
	}
	return list
}

func (e *Engine[T]) filteredMap(text string) *orderedMap[T] {
	if text == "" {
		return e.unfiltered
	}

	if m, ok := e.maps.Get(text); ok {
		e.stats.MapCacheHits++
		if e.metrics != nil {
			e.metrics.MapCacheHits.Inc()
		}
		return m
	}

	base := e.unfiltered
	if ancestor := e.longestCachedPrefix(text); ancestor != "" {
		if m, ok := e.maps.Get(ancestor); ok {
			base = m
		}
	}
	if base == e.unfiltered {
		e.stats.FullScans++
		if e.metrics != nil {
			e.metrics.FullScans.Inc()
		}
	} else {
		e.stats.AncestorBuilds++
		if e.metrics != nil {
			e.metrics.AncestorBuilds.Inc()
		}
	}

	result := base.narrow(text)
	e.maps.Put(text, result)
	return result
}

// longestCachedPrefix scans cached filters oldest first and keeps the first
// one of each strictly greater length that prefixes text.
func (e *Engine[T]) longestCachedPrefix(text string) string {
	longest := ""
	for _, key := range e.maps.Keys() {
		if len(key) > len(longest) && strings.HasPrefix(text, key) {
			longest = key
		}
	}
	return longest
}

func (e *Engine[T]) observeActive() {
	if e.metrics != nil {
		e.metrics.ActiveResults.Set(float64(e.active.len()))
	}
}
