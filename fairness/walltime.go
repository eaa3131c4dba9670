package fairness

// walltimeSmoothing is the EMA smoothing factor applied to each sorter's
// measured nanoseconds-per-comparison. Lower values trust history more;
// higher values react faster to a sorter's access pattern changing (e.g.
// Quick sort's scan becoming cache-unfriendly on a large partition).
const walltimeSmoothing = 0.3

// WallTime allocates more of the tick budget to sorters that are measured to
// be faster per comparison, so every sorter spends roughly the same amount
// of wall-clock time per tick rather than the same raw comparison count. It
// depends on the engine feeding back real step durations via Observe; until
// a sorter has at least one observation it is treated as average speed.
type WallTime struct {
	ns *ema
}

// NewWallTime returns a ready WallTime policy with no prior observations.
func NewWallTime() *WallTime {
	return &WallTime{ns: newEMA(walltimeSmoothing)}
}

func (p *WallTime) Name() string { return "wall-time" }

func (p *WallTime) Allocate(views []SorterView, total int) []int {
	if len(views) == 0 {
		panic("fairness: Allocate requires at least one sorter")
	}
	if total < 1 {
		panic("fairness: Allocate requires total budget >= 1")
	}

	// Average speed of the observed active sorters, used for the unobserved
	// ones; with nothing observed yet every sorter gets the same share.
	sumNs, observed := 0.0, 0
	for i, v := range views {
		if ns, ok := p.ns.get(i); ok && ns > 0 && !v.IsComplete() {
			sumNs += ns
			observed++
		}
	}
	averageShare := 1.0
	if observed > 0 {
		averageShare = float64(observed) / sumNs
	}

	shares := make([]float64, len(views))
	active := make([]bool, len(views))
	for i, v := range views {
		if v.IsComplete() {
			continue
		}
		active[i] = true
		if ns, ok := p.ns.get(i); ok && ns > 0 {
			shares[i] = 1 / ns
		} else {
			shares[i] = averageShare // no data yet: treat as average speed
		}
	}
	return allocateByShare(total, shares, active)
}

func (p *WallTime) Observe(obs StepObservation) {
	if obs.ComparisonsUsed <= 0 {
		return
	}
	nsPerComparison := float64(obs.Elapsed.Nanoseconds()) / float64(obs.ComparisonsUsed)
	p.ns.update(obs.Index, nsPerComparison)
}

// Reset discards every per-sorter average that has been observed so far, so
// a policy instance can be reused across an unrelated race.
func (p *WallTime) Reset() { p.ns.reset() }
