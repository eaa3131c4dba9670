package fairness

import "fmt"

// adaptiveEpsilon keeps a sorter with a zero measured progress rate from
// producing an infinite share; it also sets the ceiling on how much more
// budget a stalled sorter can draw relative to a fast one.
const adaptiveEpsilon = 1e-6

// Adaptive allocates more of the tick budget to sorters whose measured
// progress-per-comparison rate is lower, using an EMA with smoothing factor
// eta. Unlike WallTime it reacts to algorithmic progress rather than raw
// speed, so it tends to favor algorithms that are comparison-heavy relative
// to how close they are to finishing.
type Adaptive struct {
	eta  float64
	rate *ema
}

// NewAdaptive validates eta and returns a ready Adaptive policy.
func NewAdaptive(eta float64) (*Adaptive, error) {
	if eta <= 0 || eta > 1 {
		return nil, fmt.Errorf("%w: Adaptive eta must be in (0, 1], got %v", ErrInvalidParameter, eta)
	}
	return &Adaptive{eta: eta, rate: newEMA(eta)}, nil
}

func (p *Adaptive) Name() string { return "adaptive" }

func (p *Adaptive) Allocate(views []SorterView, total int) []int {
	if len(views) == 0 {
		panic("fairness: Allocate requires at least one sorter")
	}
	if total < 1 {
		panic("fairness: Allocate requires total budget >= 1")
	}

	shares := make([]float64, len(views))
	active := make([]bool, len(views))
	for i, v := range views {
		if v.IsComplete() {
			continue
		}
		active[i] = true
		r, ok := p.rate.get(i)
		if !ok {
			r = 0 // no data yet: treated as the slowest possible, maximizing its share
		}
		shares[i] = 1 / (adaptiveEpsilon + r)
	}
	return allocateByShare(total, shares, active)
}

func (p *Adaptive) Observe(obs StepObservation) {
	if obs.Budget <= 0 {
		return
	}
	sample := (obs.ProgressAfter - obs.ProgressBefore) / float64(obs.Budget)
	p.rate.update(obs.Index, sample)
}

// Reset discards every per-sorter progress rate observed so far, so a policy
// instance can be reused across an unrelated race.
func (p *Adaptive) Reset() { p.rate.reset() }
