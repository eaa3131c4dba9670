package sorter

import (
	"fmt"
	"math"
)

// Merge is a resumable bottom-up iterative merge sort. Continuation state is
// the current run width, the current left-run start, and the within-merge
// cursors into the left run, right run, and output position. A single
// auxiliary buffer of N elements is allocated once (on construction/reset)
// and reused for every merge window. The merge is stable: on equal keys the
// left run's element is written first.
type Merge struct {
	base

	buf []Element

	w int // current run width: 1, 2, 4, ...
	L int // start of the current pair of runs

	mid, hi int // [L, mid) is the left run, [mid, hi) is the right run
	i, j, k int // left cursor, right cursor, output cursor

	active   bool // true once mid/hi/i/j/k are initialized for the current window
	loadDone bool // true once array[L:hi) has been copied into buf[L:hi)
	loadK    int
}

// NewMerge constructs a Merge sorter over a copy of arr.
func NewMerge(arr []Element) *Merge {
	s := &Merge{base: newBase("merge", arr)}
	s.initMerge()
	return s
}

func (s *Merge) Reset(arr []Element) {
	s.resetCommon(arr)
	s.initMerge()
}

func (s *Merge) initMerge() {
	n := len(s.array)
	s.buf = make([]Element, n)
	s.w = 1
	s.L = 0
	s.active = false
}

func (s *Merge) Step(budget int) StepResult {
	if budget < 1 {
		panic("sorter: step budget must be >= 1")
	}
	if s.complete {
		return StepResult{Continued: false}
	}

	startCmp, startMv := s.comparisons, s.moves
	n := len(s.array)
	s.budgetLoop(budget, func() { s.mergeUnit(n) })

	if !s.complete {
		s.setProgress(s.progress(n))
		s.statusText = fmt.Sprintf("merging width %d at %d", s.w, s.L)
	}
	return StepResult{s.usedCmp(startCmp), s.usedMv(startMv), !s.complete}
}

func (s *Merge) mergeUnit(n int) {
	if s.w >= n {
		s.finish()
		return
	}
	if s.L >= n {
		s.w *= 2
		s.L = 0
		return
	}
	if !s.active {
		s.mid = min(s.L+s.w, n)
		s.hi = min(s.L+2*s.w, n)
		if s.mid >= s.hi {
			// lone trailing run for this width: already in place.
			s.L += 2 * s.w
			return
		}
		s.i, s.j, s.k = s.L, s.mid, s.L
		s.loadK = s.L
		s.loadDone = false
		s.active = true
		s.markers = Markers{Runs: []Range{{Start: s.L, End: s.mid}, {Start: s.mid, End: s.hi}}}
		return
	}
	if !s.loadDone {
		s.buf[s.loadK] = s.array[s.loadK]
		s.loadK++
		if s.loadK >= s.hi {
			s.loadDone = true
		}
		return
	}
	if s.k >= s.hi {
		s.L += 2 * s.w
		s.active = false
		return
	}

	s.highlights = []int{s.i, s.j}
	switch {
	case s.i >= s.mid:
		s.set(s.k, s.buf[s.j])
		s.j++
	case s.j >= s.hi:
		s.set(s.k, s.buf[s.i])
		s.i++
	default:
		if s.bufLessEq(s.i, s.j) {
			s.set(s.k, s.buf[s.i])
			s.i++
		} else {
			s.set(s.k, s.buf[s.j])
			s.j++
		}
	}
	s.k++
}

// bufLessEq performs one counted comparison between two positions in the
// auxiliary buffer, in the "<=" direction; equal keys favor the left run to
// keep the merge stable.
func (s *Merge) bufLessEq(i, j int) bool {
	s.comparisons++
	return s.buf[i] <= s.buf[j]
}

func (s *Merge) progress(n int) float64 {
	if n <= 1 {
		return 1
	}
	logN := math.Log2(float64(n))
	if logN <= 0 {
		return 1
	}
	base := math.Log2(float64(s.w)) / logN
	levelSpan := 1.0 / logN
	var within float64
	if s.hi > s.L {
		within = float64(s.k-s.L) / float64(s.hi-s.L)
	}
	return base + within*levelSpan
}

func (s *Merge) MemoryUsage() int { return 2 * len(s.array) * elementSize }

func (s *Merge) Telemetry() Telemetry { return s.telemetry(s.MemoryUsage()) }
