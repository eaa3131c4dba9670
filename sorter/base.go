package sorter

// base holds the state and bookkeeping common to every algorithm: the owned
// array, cumulative counters, completion latch, and the budget-driven step
// loop. Algorithm-specific continuation state lives on the embedding type.
type base struct {
	name string

	array []Element

	comparisons uint64
	moves       uint64
	complete    bool
	memPeak     int

	highlights []int
	markers    Markers

	statusText   string
	progressHint float64
}

func newBase(name string, arr []Element) base {
	b := base{name: name}
	b.resetCommon(arr)
	return b
}

// resetCommon restores the fields every algorithm shares. Algorithm-specific
// continuation fields must be reset by the embedding type's Reset method.
func (b *base) resetCommon(arr []Element) {
	b.array = append(make([]Element, 0, len(arr)), arr...)
	b.comparisons = 0
	b.moves = 0
	b.memPeak = 0
	b.highlights = nil
	b.markers = Markers{}
	b.complete = len(b.array) <= 1
	if b.complete {
		b.progressHint = 1
		b.statusText = "complete"
	} else {
		b.progressHint = 0
		b.statusText = "ready"
	}
}

func (b *base) Name() string         { return b.name }
func (b *base) IsComplete() bool     { return b.complete }
func (b *base) ArrayView() []Element { return b.array }

// usedCmp reports how many comparisons have been spent since start.
func (b *base) usedCmp(start uint64) int { return int(b.comparisons - start) }

// usedMv reports how many moves have been made since start.
func (b *base) usedMv(start uint64) int { return int(b.moves - start) }

// budgetLoop invokes unit (one bounded unit of algorithm-specific work) until
// the sorter completes or this call's comparison budget is exhausted. unit is
// expected to consume at most one comparison per invocation, except for pure
// bookkeeping transitions (closing a pass, popping an empty frame) that
// consume none; those are bounded in count per call by construction of each
// algorithm and so cannot loop forever even though they don't decrement the
// remaining budget.
func (b *base) budgetLoop(budget int, unit func()) {
	start := b.comparisons
	for !b.complete && b.usedCmp(start) < budget {
		unit()
	}
}

// less performs one counted comparison between two array positions.
func (b *base) less(i, j int) bool {
	b.comparisons++
	return b.array[i] < b.array[j]
}

// lessEq performs one counted comparison (<=) between two array positions.
func (b *base) lessEq(i, j int) bool {
	b.comparisons++
	return b.array[i] <= b.array[j]
}

// lessVal performs one counted comparison between an array position and a
// saved key value.
func (b *base) lessVal(i int, key Element) bool {
	b.comparisons++
	return b.array[i] < key
}

// valGreater performs one counted comparison between an array position and a
// saved key value, in the ">" direction.
func (b *base) valGreater(i int, key Element) bool {
	b.comparisons++
	return b.array[i] > key
}

// swap exchanges two positions and counts it as two moves.
func (b *base) swap(i, j int) {
	b.array[i], b.array[j] = b.array[j], b.array[i]
	b.moves += 2
}

// set performs a single positional write and counts it as one move.
func (b *base) set(i int, v Element) {
	b.array[i] = v
	b.moves++
}

// setProgress clamps progress to [0,1] and enforces monotonicity within a run.
func (b *base) setProgress(p float64) {
	if p < b.progressHint {
		p = b.progressHint
	}
	if p > 1 {
		p = 1
	}
	if p < 0 {
		p = 0
	}
	b.progressHint = p
}

// finish latches completion.
func (b *base) finish() {
	b.complete = true
	b.progressHint = 1
	b.statusText = "complete"
	b.highlights = nil
}

func (b *base) telemetry(memCurrent int) Telemetry {
	if memCurrent > b.memPeak {
		b.memPeak = memCurrent
	}
	return Telemetry{
		TotalComparisons: b.comparisons,
		TotalMoves:       b.moves,
		MemoryCurrent:    memCurrent,
		MemoryPeak:       b.memPeak,
		Highlights:       append([]int(nil), b.highlights...),
		Markers:          b.markers.clone(),
		StatusText:       b.statusText,
		ProgressHint:     b.progressHint,
	}
}
