package engine

import (
	"fmt"

	"github.com/avifenesh/sortrace/fairness"
	"github.com/avifenesh/sortrace/metrics"
	"github.com/avifenesh/sortrace/sorter"
)

// config holds RaceEngine configuration.
type config struct {
	// Algorithms lists the sorter.Names entries to race, in the order they
	// will be reported in every TickResult.
	// Default: none (must be set via WithAlgorithms).
	Algorithms []string

	// Policy allocates each tick's TotalBudget across the active sorters.
	// Default: none (must be set via WithPolicy).
	Policy fairness.Policy

	// TotalBudget is the total comparison budget divided among sorters every
	// tick.
	// Default: 0 (invalid; must be set via WithTotalBudget).
	TotalBudget int

	// MetricsProvider receives tick_step_duration_seconds and tick_total
	// instrument recordings.
	// Default: metrics.NewNoopProvider()
	MetricsProvider metrics.Provider
}

// defaultConfig centralizes default values for config.
func defaultConfig() config {
	return config{
		MetricsProvider: metrics.NewNoopProvider(),
	}
}

// validateConfig performs the engine's configuration-time invariant checks.
// Everything caught here is an input-validation failure (bad host
// configuration), not a programming error, so it returns an error rather
// than panicking.
func validateConfig(cfg *config) error {
	if len(cfg.Algorithms) == 0 {
		return fmt.Errorf("%w: at least one algorithm must be selected", ErrInvalidConfig)
	}
	known := make(map[string]bool, len(sorter.Names))
	for _, n := range sorter.Names {
		known[n] = true
	}
	seen := make(map[string]bool, len(cfg.Algorithms))
	for _, name := range cfg.Algorithms {
		if !known[name] {
			return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidConfig, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: algorithm %q selected more than once", ErrInvalidConfig, name)
		}
		seen[name] = true
	}
	if cfg.Policy == nil {
		return fmt.Errorf("%w: a fairness policy must be selected", ErrInvalidConfig)
	}
	if cfg.TotalBudget < 1 {
		return fmt.Errorf("%w: total tick budget must be >= 1, got %d", ErrInvalidConfig, cfg.TotalBudget)
	}
	if cfg.MetricsProvider == nil {
		return fmt.Errorf("%w: metrics provider must not be nil", ErrInvalidConfig)
	}
	return nil
}
