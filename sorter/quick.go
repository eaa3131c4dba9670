package sorter

import "fmt"

// quickFrameSize approximates the bytes held per stacked partition frame
// (two ints) for memory accounting purposes.
const quickFrameSize = 16

// qframe is a pending partition range, inclusive of both ends.
type qframe struct {
	low, high int
}

// Quick is a resumable quicksort expressed as an incremental partitioner:
// a naive "partition a whole range" step is unbounded in comparisons, so
// partitioning is broken into one-comparison units with an explicit,
// depth-bounded range stack instead of call-stack recursion.
//
// Pivot choice: the last element of the range (classic Lomuto). Tie-break:
// equal keys are left in the right partition (the scan only advances the
// left cursor on strict "<"), so the algorithm is deterministic for a given
// input. Stack depth is bounded to O(log N): after every partition, the
// larger of the two resulting sub-ranges is pushed first and the smaller
// second, so the smaller (and therefore shallower-recursing) side is always
// processed next.
type Quick struct {
	base

	stack []qframe

	inProgress bool
	low, high  int
	pivot      Element
	i, j       int
}

// NewQuick constructs a Quick sorter over a copy of arr.
func NewQuick(arr []Element) *Quick {
	s := &Quick{base: newBase("quick", arr)}
	s.initStack()
	return s
}

func (s *Quick) Reset(arr []Element) {
	s.resetCommon(arr)
	s.initStack()
}

func (s *Quick) initStack() {
	s.stack = nil
	s.inProgress = false
	if n := len(s.array); n > 1 {
		s.stack = []qframe{{low: 0, high: n - 1}}
	}
}

func (s *Quick) Step(budget int) StepResult {
	if budget < 1 {
		panic("sorter: step budget must be >= 1")
	}
	if s.complete {
		return StepResult{Continued: false}
	}

	startCmp, startMv := s.comparisons, s.moves
	n := len(s.array)
	s.budgetLoop(budget, s.quickUnit)

	if !s.complete {
		s.setProgress(s.progress(n))
		if s.inProgress {
			pivotIdx := s.high
			cursors := []int{s.j}
			if s.i >= 0 {
				// i starts at low-1, which is -1 for a range starting at 0.
				cursors = []int{s.i, s.j}
			}
			s.markers = Markers{Pivot: &pivotIdx, Cursors: cursors}
		} else {
			s.markers = Markers{}
		}
		s.statusText = fmt.Sprintf("partitioning, %d frame(s) pending", len(s.stack))
	}
	return StepResult{s.usedCmp(startCmp), s.usedMv(startMv), !s.complete}
}

func (s *Quick) quickUnit() {
	if !s.inProgress {
		if len(s.stack) == 0 {
			s.finish()
			return
		}
		f := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		if f.high-f.low+1 <= 1 {
			return // tiny range: no comparison needed, try the next frame
		}
		s.low, s.high = f.low, f.high
		s.pivot = s.array[s.high]
		s.i = s.low - 1
		s.j = s.low
		s.inProgress = true
		return
	}

	if s.j >= s.high {
		s.swap(s.i+1, s.high)
		p := s.i + 1
		left := qframe{low: s.low, high: p - 1}
		right := qframe{low: p + 1, high: s.high}
		if (left.high - left.low) > (right.high - right.low) {
			s.stack = append(s.stack, left, right)
		} else {
			s.stack = append(s.stack, right, left)
		}
		s.inProgress = false
		return
	}

	s.highlights = []int{s.j, s.high}
	if s.lessVal(s.j, s.pivot) {
		s.i++
		s.swap(s.i, s.j)
	}
	s.j++
}

func (s *Quick) progress(n int) float64 {
	remaining := 0
	for _, f := range s.stack {
		remaining += f.high - f.low + 1
	}
	if s.inProgress {
		remaining += s.high - s.j + 1
	}
	if remaining < 0 {
		remaining = 0
	}
	if remaining > n {
		remaining = n
	}
	return 1 - float64(remaining)/float64(n)
}

func (s *Quick) MemoryUsage() int {
	depth := len(s.stack)
	if s.inProgress {
		depth++
	}
	return len(s.array)*elementSize + depth*quickFrameSize
}

func (s *Quick) Telemetry() Telemetry { return s.telemetry(s.MemoryUsage()) }
