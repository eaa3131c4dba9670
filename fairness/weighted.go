package fairness

import "fmt"

// Weighted favors sorters that have done comparatively less work so far,
// scored as alpha*comparisons + beta*moves. A sorter's share of the budget
// is the reciprocal of 1+score, so a sorter with zero work gets the largest
// share and the gap narrows as every sorter accumulates work.
type Weighted struct {
	Alpha, Beta float64
}

// NewWeighted validates alpha and beta and returns a ready Weighted policy.
func NewWeighted(alpha, beta float64) (*Weighted, error) {
	if alpha <= 0 {
		return nil, fmt.Errorf("%w: Weighted alpha must be > 0, got %v", ErrInvalidParameter, alpha)
	}
	if beta <= 0 {
		return nil, fmt.Errorf("%w: Weighted beta must be > 0, got %v", ErrInvalidParameter, beta)
	}
	return &Weighted{Alpha: alpha, Beta: beta}, nil
}

func (p *Weighted) Name() string { return "weighted" }

func (p *Weighted) Allocate(views []SorterView, total int) []int {
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
		tel := v.Telemetry()
		score := p.Alpha*float64(tel.TotalComparisons) + p.Beta*float64(tel.TotalMoves)
		shares[i] = 1 / (1 + score)
	}
	return allocateByShare(total, shares, active)
}

func (p *Weighted) Observe(StepObservation) {}
