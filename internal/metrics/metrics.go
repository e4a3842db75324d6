// Package metrics holds the Prometheus instruments fed by the filter engine.
// Collectors are registered on the Registerer handed to NewFilter. Both the
// tests and the CLI pass a private registry, so only rpick's own collectors
// are exported.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rpick"

// Filter groups the counters describing how filter results were produced.
type Filter struct {
	MapCacheHits    prometheus.Counter
	AncestorBuilds  prometheus.Counter
	FullScans       prometheus.Counter
	ListCacheHits   prometheus.Counter
	ListCacheMisses prometheus.Counter
	Evictions       *prometheus.CounterVec
	CatalogSkipped  prometheus.Counter
	ActiveResults   prometheus.Gauge
}

// NewFilter creates and registers the filter collectors on reg.
func NewFilter(reg prometheus.Registerer) (*Filter, error) {
	m := &Filter{
		MapCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "map_cache_hits_total",
			Help:      "Filter changes answered straight from the filtered-map cache.",
		}),
		AncestorBuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "ancestor_builds_total",
			Help:      "Filtered maps built by narrowing a cached prefix result.",
		}),
		FullScans: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "full_scans_total",
			Help:      "Filtered maps built by scanning the whole catalog.",
		}),
		ListCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "list_cache_hits_total",
			Help:      "Item lists served from the list cache.",
		}),
		ListCacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "list_cache_misses_total",
			Help:      "Item lists materialised from the active filtered map.",
		}),
		Evictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "cache_evictions_total",
			Help:      "Entries evicted from the bounded filter caches.",
		}, []string{"cache"}),
		CatalogSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "skipped_total",
			Help:      "Catalog entries dropped because their display name could not be determined.",
		}),
		ActiveResults: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "active_results",
			Help:      "Number of items matching the active filter.",
		}),
	}

	collectors := []prometheus.Collector{
		m.MapCacheHits,
		m.AncestorBuilds,
		m.FullScans,
		m.ListCacheHits,
		m.ListCacheMisses,
		m.Evictions,
		m.CatalogSkipped,
		m.ActiveResults,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Serve exposes gatherer on addr at /metrics until the returned server is
// closed. Listen errors other than a clean shutdown are sent to errc.
func Serve(addr string, gatherer prometheus.Gatherer, errc chan<- error) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			if errc != nil {
				errc <- err
			}
		}
	}()
	return srv
}
