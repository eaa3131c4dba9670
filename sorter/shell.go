package sorter

import "fmt"

// Shell is a resumable shell sort using a Knuth (3k+1) gap sequence
// descending to 1. Continuation state is the current gap index, the
// gapped-insertion outer/inner indices, and the held key.
type Shell struct {
	base

	gaps   []int
	gapIdx int

	i, j   int
	key    Element
	active bool
}

// NewShell constructs a Shell sorter over a copy of arr.
func NewShell(arr []Element) *Shell {
	s := &Shell{base: newBase("shell", arr)}
	s.initGaps()
	return s
}

func (s *Shell) Reset(arr []Element) {
	s.resetCommon(arr)
	s.initGaps()
}

func (s *Shell) initGaps() {
	n := len(s.array)
	s.gaps = knuthGaps(n)
	s.gapIdx = 0
	s.active = false
	if len(s.gaps) > 0 {
		s.i = s.gaps[0]
	}
}

// knuthGaps returns the Knuth 3k+1 gap sequence applicable to an array of
// length n, in descending order ending at 1.
func knuthGaps(n int) []int {
	if n <= 1 {
		return nil
	}
	gaps := []int{1}
	g := 1
	for g < n/3 {
		g = g*3 + 1
		gaps = append(gaps, g)
	}
	for l, r := 0, len(gaps)-1; l < r; l, r = l+1, r-1 {
		gaps[l], gaps[r] = gaps[r], gaps[l]
	}
	return gaps
}

func (s *Shell) Step(budget int) StepResult {
	if budget < 1 {
		panic("sorter: step budget must be >= 1")
	}
	if s.complete {
		return StepResult{Continued: false}
	}

	startCmp, startMv := s.comparisons, s.moves
	n := len(s.array)
	s.budgetLoop(budget, func() { s.shellUnit(n) })

	if !s.complete {
		gapProgress := float64(s.gapIdx) / float64(len(s.gaps))
		withinGap := float64(s.i) / float64(n) / float64(len(s.gaps))
		s.setProgress(gapProgress + withinGap)
		gap := s.gaps[s.gapIdx]
		s.markers = Markers{Gap: &gap}
		s.statusText = fmt.Sprintf("gap %d, position %d/%d", gap, s.i, n)
	}
	return StepResult{s.usedCmp(startCmp), s.usedMv(startMv), !s.complete}
}

func (s *Shell) shellUnit(n int) {
	if s.gapIdx >= len(s.gaps) {
		s.finish()
		return
	}
	gap := s.gaps[s.gapIdx]

	if s.i >= n {
		s.gapIdx++
		if s.gapIdx >= len(s.gaps) {
			s.finish()
			return
		}
		s.i = s.gaps[s.gapIdx]
		s.active = false
		return
	}

	if !s.active {
		s.key = s.array[s.i]
		s.j = s.i
		s.active = true
		s.highlights = []int{s.i}
		return
	}

	if s.j >= gap && s.valGreater(s.j-gap, s.key) {
		s.set(s.j, s.array[s.j-gap])
		s.j -= gap
		s.highlights = []int{s.j, s.j + gap}
		return
	}

	if s.j != s.i {
		s.set(s.j, s.key)
	}
	s.highlights = []int{s.j}
	s.i++
	s.active = false
}

func (s *Shell) MemoryUsage() int { return len(s.array) * elementSize }

func (s *Shell) Telemetry() Telemetry { return s.telemetry(s.MemoryUsage()) }
