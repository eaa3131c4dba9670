package fairness

// ema is a small per-index exponential moving average, grown lazily as new
// sorter indices are observed. It mirrors the windowed-average bookkeeping a
// rate limiter like a token bucket keeps per key, without pulling in an
// admission-control API this package has no use for: WallTime and Adaptive
// both just need "smoothed last sample per sorter", not rate gating.
type ema struct {
	alpha  float64
	values []float64
	seen   []bool
}

func newEMA(alpha float64) *ema {
	return &ema{alpha: alpha}
}

func (e *ema) ensure(n int) {
	if len(e.values) >= n {
		return
	}
	values := make([]float64, n)
	seen := make([]bool, n)
	copy(values, e.values)
	copy(seen, e.seen)
	e.values, e.seen = values, seen
}

// update folds sample into index i's running average, seeding it directly on
// the first observation rather than averaging against a fabricated zero.
func (e *ema) update(i int, sample float64) {
	e.ensure(i + 1)
	if !e.seen[i] {
		e.values[i] = sample
		e.seen[i] = true
		return
	}
	e.values[i] = (1-e.alpha)*e.values[i] + e.alpha*sample
}

// get returns index i's current average and whether it has been observed at
// least once.
func (e *ema) get(i int) (value float64, ok bool) {
	e.ensure(i + 1)
	return e.values[i], e.seen[i]
}

// reset discards every tracked average, as if no index had ever been
// observed.
func (e *ema) reset() {
	e.values = nil
	e.seen = nil
}
