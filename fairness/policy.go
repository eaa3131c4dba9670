// Package fairness implements the four budget-allocation policies that
// divide a RaceEngine's per-tick comparison budget among the sorters that
// are still running. A policy only ever sees public telemetry — it knows
// nothing about how an algorithm works internally, which keeps the Sorter
// contract minimal and the policy set open for extension.
package fairness

import (
	"time"

	"github.com/avifenesh/sortrace/sorter"
)

// SorterView is the minimal read-only surface a policy needs from a sorter:
// its completion flag and its telemetry snapshot. Policies never reach into
// an algorithm's continuation state.
type SorterView interface {
	IsComplete() bool
	Telemetry() sorter.Telemetry
}

// StepObservation is fed back to a policy by the engine after it has driven
// one sorter through one step, so policies that adapt to measured behavior
// (WallTime, Adaptive) can update their internal state. Policies that ignore
// feedback (EqualComparisons, Weighted) implement Observe as a no-op.
type StepObservation struct {
	Index            int
	Elapsed          time.Duration
	ComparisonsUsed  int
	Budget           int
	ProgressBefore   float64
	ProgressAfter    float64
}

// Policy computes a per-tick allocation vector over a set of sorters from a
// total budget. Allocate's preconditions (total >= 1, at least one sorter)
// are the caller's responsibility — the engine validates them once at
// configuration time; a violation here is a programming error, not a
// recoverable result, so implementations panic rather than return an error.
type Policy interface {
	// Name returns a stable identifier for the policy.
	Name() string

	// Allocate returns one non-negative entry per input sorter, summing to
	// total exactly. A completed sorter always receives 0. An incomplete
	// sorter receives >= 1 whenever total >= the number of incomplete
	// sorters.
	Allocate(views []SorterView, total int) []int

	// Observe reports the outcome of driving one sorter through one step.
	Observe(obs StepObservation)
}

// Resettable is implemented by policies that accumulate per-sorter state
// across ticks (WallTime, Adaptive). A caller starting an unrelated race
// with a reused policy instance should call Reset, if implemented, so stale
// measurements from the previous race don't bias the new one.
type Resettable interface {
	Reset()
}
