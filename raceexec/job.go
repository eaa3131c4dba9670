package raceexec

import (
	"time"

	"github.com/avifenesh/sortrace/engine"
	"github.com/avifenesh/sortrace/fairness"
	"github.com/avifenesh/sortrace/sorter"
)

// Job fully specifies one race to run to completion (or to MaxTicks, if
// set).
type Job struct {
	// ID identifies this job in its Result; it need not be unique, but
	// making it so is the caller's responsibility if it matters.
	ID int

	InitialArray []sorter.Element
	Algorithms   []string
	TotalBudget  int

	// NewPolicy constructs a fresh fairness.Policy for this job. It is a
	// factory rather than a shared instance because WallTime and Adaptive
	// accumulate per-race state that must not be shared across concurrently
	// running races.
	NewPolicy func() fairness.Policy

	// MaxTicks bounds how many ticks a single job may run before raceexec
	// gives up on it and reports ErrMaxTicksExceeded. Zero means unbounded.
	MaxTicks int
}

// Result reports one Job's outcome.
type Result struct {
	JobID   int
	Ticks   uint64
	Elapsed time.Duration
	Sorters []engine.SorterSummary
	Err     error
}
