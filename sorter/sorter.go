// Package sorter implements the seven resumable sorting state machines that
// the race engine drives one bounded step at a time. Every algorithm shares
// the same contract: Step, IsComplete, Telemetry, Reset, ArrayView,
// MemoryUsage, Name. None of them knows about fairness, budgets shared with
// other sorters, or wall-clock time — they only know how to make bounded
// progress on their own copy of the array.
package sorter

// Element is the type sorted by every algorithm in this package. The key
// operations are comparison and positional move.
type Element = int32

// elementSize is the number of bytes accounted for each Element held by a
// Sorter's owned array or auxiliary structures.
const elementSize = 4

// Range identifies a contiguous run of array indices, used by Merge's
// markers to describe the two runs currently being merged.
type Range struct {
	Start, End int // half-open: [Start, End)
}

// Markers carries algorithm-specific visual-intent hints. All indices are in
// [0, N) for an N-element array; zero values mean "not applicable" for the
// optional pointer fields.
type Markers struct {
	Pivot    *int    // Quick: index of the active pivot, if any
	Boundary *int    // Heap: index separating the heap region from sorted tail
	Gap      *int    // Shell: current gap value
	Runs     []Range // Merge: the run(s) currently being merged
	Cursors  []int   // generic scan/compare cursor positions
}

func (m Markers) clone() Markers {
	out := Markers{}
	if m.Pivot != nil {
		v := *m.Pivot
		out.Pivot = &v
	}
	if m.Boundary != nil {
		v := *m.Boundary
		out.Boundary = &v
	}
	if m.Gap != nil {
		v := *m.Gap
		out.Gap = &v
	}
	if len(m.Runs) > 0 {
		out.Runs = append([]Range(nil), m.Runs...)
	}
	if len(m.Cursors) > 0 {
		out.Cursors = append([]int(nil), m.Cursors...)
	}
	return out
}

// StepResult reports what a single Step call actually did.
type StepResult struct {
	ComparisonsUsed int  // <= the requested budget
	MovesMade       int  // positional writes performed this call; a swap is 2
	Continued       bool // false iff the sorter became complete during this call
}

// Telemetry is a read-only, constant-time snapshot of a Sorter's observable
// state, safe to hand to an external renderer.
type Telemetry struct {
	TotalComparisons uint64
	TotalMoves       uint64
	MemoryCurrent    int
	MemoryPeak       int
	Highlights       []int
	Markers          Markers
	StatusText       string
	ProgressHint     float64
}

// Sorter is the uniform contract every algorithm implements. Out-of-range
// indices and multiset violations are programming errors: implementations
// may panic rather than return a recoverable error for them.
type Sorter interface {
	// Step performs bounded work: it stops after using exactly budget
	// comparisons, or sooner if the sort completes or an internal yield
	// point is reached. budget must be >= 1.
	Step(budget int) StepResult

	// IsComplete reports whether the owned array is sorted and no further
	// work remains. Latched: once true, stays true until the next Reset.
	IsComplete() bool

	// Telemetry returns a snapshot of observable state.
	Telemetry() Telemetry

	// Reset reinitializes the sorter with a new array, discarding all
	// continuation state and zeroing counters.
	Reset(newArray []Element)

	// ArrayView borrows the current array contents. Callers must not
	// mutate the returned slice.
	ArrayView() []Element

	// MemoryUsage returns bytes currently held for sorting.
	MemoryUsage() int

	// Name returns a stable algorithm identifier.
	Name() string
}
