package sorter

import "fmt"

// Bubble is a resumable bubble sort. Continuation state is the current pass
// index, the inner scan index, and whether a swap occurred during the
// current pass.
type Bubble struct {
	base

	i       int // pass index
	j       int // inner index
	swapped bool
}

// NewBubble constructs a Bubble sorter over a copy of arr.
func NewBubble(arr []Element) *Bubble {
	s := &Bubble{base: newBase("bubble", arr)}
	return s
}

func (s *Bubble) Reset(arr []Element) {
	s.resetCommon(arr)
	s.i, s.j, s.swapped = 0, 0, false
}

func (s *Bubble) Step(budget int) StepResult {
	if budget < 1 {
		panic("sorter: step budget must be >= 1")
	}
	if s.complete {
		return StepResult{Continued: false}
	}

	startCmp, startMv := s.comparisons, s.moves
	n := len(s.array)
	s.budgetLoop(budget, func() { s.bubbleUnit(n) })

	if !s.complete {
		s.setProgress(1 - float64((n-s.i)*(n-s.i))/float64(n*n))
		s.statusText = fmt.Sprintf("pass %d, comparing %d/%d", s.i+1, s.j, n-s.i-1)
	}
	return StepResult{s.usedCmp(startCmp), s.usedMv(startMv), !s.complete}
}

// bubbleUnit performs either one counted comparison (and possible swap) or a
// zero-comparison bookkeeping transition (closing a pass / completing).
func (s *Bubble) bubbleUnit(n int) {
	if s.i >= n-1 {
		s.finish()
		return
	}
	if s.j > n-s.i-2 {
		if !s.swapped {
			s.finish()
			return
		}
		s.i++
		s.j = 0
		s.swapped = false
		return
	}

	s.highlights = []int{s.j, s.j + 1}
	if s.less(s.j+1, s.j) {
		s.swap(s.j, s.j+1)
		s.swapped = true
	}
	s.j++
}

func (s *Bubble) MemoryUsage() int { return len(s.array) * elementSize }

func (s *Bubble) Telemetry() Telemetry { return s.telemetry(s.MemoryUsage()) }
