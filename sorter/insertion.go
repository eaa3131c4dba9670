package sorter

import "fmt"

// Insertion is a resumable insertion sort. Continuation state is the outer
// index, the inner shift index, and the held key for the element currently
// being inserted.
type Insertion struct {
	base

	i      int
	j      int
	key    Element
	active bool // true once key has been loaded for the current i
}

// NewInsertion constructs an Insertion sorter over a copy of arr.
func NewInsertion(arr []Element) *Insertion {
	s := &Insertion{base: newBase("insertion", arr)}
	s.i, s.j, s.key, s.active = 1, 0, 0, false
	return s
}

func (s *Insertion) Reset(arr []Element) {
	s.resetCommon(arr)
	s.i, s.j, s.key, s.active = 1, 0, 0, false
}

func (s *Insertion) Step(budget int) StepResult {
	if budget < 1 {
		panic("sorter: step budget must be >= 1")
	}
	if s.complete {
		return StepResult{Continued: false}
	}

	startCmp, startMv := s.comparisons, s.moves
	n := len(s.array)
	s.budgetLoop(budget, func() { s.insertionUnit(n) })

	if !s.complete {
		s.setProgress(float64(s.i) / float64(n))
		s.statusText = fmt.Sprintf("inserting position %d/%d", s.i, n)
	}
	return StepResult{s.usedCmp(startCmp), s.usedMv(startMv), !s.complete}
}

func (s *Insertion) insertionUnit(n int) {
	if s.i >= n {
		s.finish()
		return
	}
	if !s.active {
		s.key = s.array[s.i]
		s.j = s.i
		s.active = true
		s.highlights = []int{s.i}
		return
	}

	if s.j > 0 && s.valGreater(s.j-1, s.key) {
		s.set(s.j, s.array[s.j-1])
		s.j--
		s.highlights = []int{s.j, s.j + 1}
		return
	}

	if s.j != s.i {
		// Only a real shift displaced this key from its original position;
		// otherwise it is already sitting where it belongs and writing it
		// back would be a no-op move.
		s.set(s.j, s.key)
	}
	s.highlights = []int{s.j}
	s.i++
	s.active = false
	if s.i >= n {
		// Detect completion in the same call that placed the last element,
		// rather than waiting for a dedicated zero-comparison call to notice.
		s.finish()
	}
}

func (s *Insertion) MemoryUsage() int { return len(s.array) * elementSize }

func (s *Insertion) Telemetry() Telemetry { return s.telemetry(s.MemoryUsage()) }
