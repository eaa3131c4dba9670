package sorter

import "fmt"

const (
	heapPhaseBuild = iota
	heapPhaseExtract
)

const (
	heapStagePickChild = iota
	heapStageCompareParent
)

// Heap is a resumable heap sort in two phases: build (sift-down from
// floor(N/2)-1 to 0) and extract (repeatedly pop the root into the shrinking
// unsorted region's boundary and sift-down). Each sift-down is itself
// interruptible mid-descent; every unit of work performs at most one counted
// comparison so a budget of 1 is always honored.
type Heap struct {
	base

	phase   int
	root    int // build phase: current root being sifted, descends to -1
	heapEnd int // size of the heap region; shrinks during extract

	cur     int // current position in the active sift-down, -1 means "idle, ready to pop"
	largest int
	stage   int
}

// NewHeap constructs a Heap sorter over a copy of arr.
func NewHeap(arr []Element) *Heap {
	s := &Heap{base: newBase("heap", arr)}
	s.initPhases()
	return s
}

func (s *Heap) Reset(arr []Element) {
	s.resetCommon(arr)
	s.initPhases()
}

func (s *Heap) initPhases() {
	n := len(s.array)
	if n <= 1 {
		return
	}
	s.phase = heapPhaseBuild
	s.root = n/2 - 1
	s.heapEnd = n
	s.cur = s.root
	s.stage = heapStagePickChild
}

func (s *Heap) Step(budget int) StepResult {
	if budget < 1 {
		panic("sorter: step budget must be >= 1")
	}
	if s.complete {
		return StepResult{Continued: false}
	}

	startCmp, startMv := s.comparisons, s.moves
	n := len(s.array)
	s.budgetLoop(budget, s.heapUnit)

	if !s.complete {
		s.setProgress(s.progress(n))
		var markers Markers
		if s.phase == heapPhaseExtract {
			// Only the extract phase has a sorted tail to separate from.
			boundary := s.heapEnd
			markers.Boundary = &boundary
		}
		if s.cur >= 0 {
			markers.Cursors = append(markers.Cursors, s.cur)
		}
		markers.Cursors = append(markers.Cursors, s.largest)
		s.markers = markers
		if s.phase == heapPhaseBuild {
			s.statusText = fmt.Sprintf("building heap, root %d", s.root)
		} else {
			s.statusText = fmt.Sprintf("extracting, boundary %d", s.heapEnd)
		}
	}
	return StepResult{s.usedCmp(startCmp), s.usedMv(startMv), !s.complete}
}

func (s *Heap) heapUnit() {
	switch s.phase {
	case heapPhaseBuild:
		if s.root < 0 {
			s.phase = heapPhaseExtract
			s.heapEnd = len(s.array)
			s.cur = -1
			return
		}
		if s.siftUnit(s.heapEnd) {
			s.root--
			if s.root >= 0 {
				s.cur = s.root
				s.stage = heapStagePickChild
			}
		}
	case heapPhaseExtract:
		if s.cur == -1 {
			if s.heapEnd <= 1 {
				s.finish()
				return
			}
			s.swap(0, s.heapEnd-1)
			s.heapEnd--
			s.cur = 0
			s.stage = heapStagePickChild
			return
		}
		if s.siftUnit(s.heapEnd) {
			s.cur = -1
		}
	}
}

// siftUnit performs one bounded unit of the sift-down rooted conceptually at
// s.cur within [0, heapEnd), consuming at most one comparison. It returns
// true when the sift-down for this subtree has completed.
func (s *Heap) siftUnit(heapEnd int) bool {
	left := 2*s.cur + 1
	right := left + 1

	switch s.stage {
	case heapStagePickChild:
		if left >= heapEnd {
			return true
		}
		if right < heapEnd {
			s.highlights = []int{left, right}
			if s.less(left, right) {
				s.largest = right
			} else {
				s.largest = left
			}
		} else {
			s.largest = left
		}
		s.stage = heapStageCompareParent
		return false
	case heapStageCompareParent:
		s.highlights = []int{s.cur, s.largest}
		if s.less(s.cur, s.largest) {
			s.swap(s.cur, s.largest)
			s.cur = s.largest
			s.stage = heapStagePickChild
			return false
		}
		return true
	}
	return true
}

func (s *Heap) progress(n int) float64 {
	buildTotal := float64(n / 2)
	if buildTotal == 0 {
		buildTotal = 1
	}
	var buildDone float64
	if s.phase == heapPhaseBuild {
		buildDone = buildTotal - float64(s.root+1)
		if buildDone < 0 {
			buildDone = 0
		}
	} else {
		buildDone = buildTotal
	}
	var extractDone float64
	if s.phase == heapPhaseExtract {
		extractDone = float64(n - s.heapEnd)
	}
	return 0.5*(buildDone/buildTotal) + 0.5*(extractDone/float64(n))
}

func (s *Heap) MemoryUsage() int { return len(s.array) * elementSize }

func (s *Heap) Telemetry() Telemetry { return s.telemetry(s.MemoryUsage()) }
