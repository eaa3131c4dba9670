package fairness

import "fmt"

// EqualComparisons splits the tick budget as evenly as possible across every
// sorter that is not yet complete, independent of how each is actually
// progressing. It is the simplest policy and the natural default.
type EqualComparisons struct {
	// Default is the k_default budget a caller may fall back to when no
	// explicit total is otherwise available (e.g. a bare CLI invocation).
	// Allocate itself always uses the total passed to it.
	Default int
}

// NewEqualComparisons validates kDefault and returns a ready EqualComparisons
// policy.
func NewEqualComparisons(kDefault int) (*EqualComparisons, error) {
	if kDefault < 1 {
		return nil, fmt.Errorf("%w: EqualComparisons default budget must be >= 1, got %d", ErrInvalidParameter, kDefault)
	}
	return &EqualComparisons{Default: kDefault}, nil
}

func (p *EqualComparisons) Name() string { return "equal-comparisons" }

func (p *EqualComparisons) Allocate(views []SorterView, total int) []int {
	if len(views) == 0 {
		panic("fairness: Allocate requires at least one sorter")
	}
	if total < 1 {
		panic("fairness: Allocate requires total budget >= 1")
	}

	shares := make([]float64, len(views))
	active := make([]bool, len(views))
	for i, v := range views {
		if !v.IsComplete() {
			shares[i] = 1
			active[i] = true
		}
	}
	return allocateByShare(total, shares, active)
}

func (p *EqualComparisons) Observe(StepObservation) {}
