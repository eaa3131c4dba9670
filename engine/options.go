package engine

import (
	"github.com/avifenesh/sortrace/fairness"
	"github.com/avifenesh/sortrace/metrics"
)

// Option configures a RaceEngine. Use New(initialArray, opts...) to construct
// one via options.
type Option func(*config)

// WithAlgorithms selects which algorithms race, in report order. Names must
// be drawn from sorter.Names.
func WithAlgorithms(names ...string) Option {
	return func(c *config) { c.Algorithms = append([]string(nil), names...) }
}

// WithPolicy selects the fairness policy that allocates each tick's budget.
func WithPolicy(p fairness.Policy) Option {
	return func(c *config) { c.Policy = p }
}

// WithTotalBudget sets the total comparison budget divided among sorters
// every tick.
func WithTotalBudget(n int) Option {
	return func(c *config) { c.TotalBudget = n }
}

// WithMetricsProvider overrides the metrics.Provider used to record
// tick_step_duration_seconds and tick_total (default: a no-op provider).
func WithMetricsProvider(p metrics.Provider) Option {
	return func(c *config) { c.MetricsProvider = p }
}
