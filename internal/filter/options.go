package filter

import (
	"github.com/kk-code-lab/rpick/internal/cache"
	"github.com/kk-code-lab/rpick/internal/metrics"
	"go.uber.org/zap"
)

type options struct {
	capacity int
	policy   cache.Policy
	log      *zap.SugaredLogger
	metrics  *metrics.Filter
}

func defaultOptions() options {
	return options{
		capacity: cache.DefaultCapacity,
		policy:   cache.PolicyFIFO,
		log:      zap.NewNop().Sugar(),
	}
}

// Option configures an Engine.
type Option func(*options)

// WithCapacity sets how many filter results each cache keeps.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithPolicy selects the cache eviction policy.
func WithPolicy(p cache.Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithLogger routes construction warnings to log. A nil logger is ignored.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithMetrics feeds the engine counters into m.
func WithMetrics(m *metrics.Filter) Option {
	return func(o *options) { o.metrics = m }
}
