package fairness

import "sort"

// allocateByShare distributes total across entries using the largest-
// remainder method over the given non-negative shares, restricted to the
// indices marked active. Every active index with a reachable floor receives
// at least 1 whenever total >= the number of active indices; every inactive
// index always receives 0. The returned vector always sums to exactly total.
//
// This is the one piece of rounding arithmetic shared by EqualComparisons,
// Weighted, WallTime, and Adaptive — they differ only in how they compute
// shares, not in how a fractional share becomes an integer allocation.
func allocateByShare(total int, shares []float64, active []bool) []int {
	n := len(shares)
	out := make([]int, n)

	activeCount := 0
	for _, a := range active {
		if a {
			activeCount++
		}
	}
	if activeCount == 0 || total <= 0 {
		return out
	}

	sum := 0.0
	for i, a := range active {
		if a {
			sum += shares[i]
		}
	}
	if sum <= 0 {
		// Degenerate shares (e.g. all zero): fall back to an equal split so
		// every active index still gets a fair shot at the remainder.
		for i, a := range active {
			if a {
				shares[i] = 1
			}
		}
		sum = float64(activeCount)
	}

	reserve := 0
	if total >= activeCount {
		reserve = 1
	}

	remainderPool := total - reserve*activeCount

	type frac struct {
		idx int
		f   float64
	}
	fracs := make([]frac, 0, activeCount)
	assigned := 0
	for i, a := range active {
		if !a {
			continue
		}
		extra := 0.0
		if remainderPool > 0 {
			extra = shares[i] / sum * float64(remainderPool)
		}
		whole := int(extra)
		out[i] = reserve + whole
		assigned += out[i]
		fracs = append(fracs, frac{idx: i, f: extra - float64(whole)})
	}

	leftover := total - assigned
	sort.SliceStable(fracs, func(a, b int) bool { return fracs[a].f > fracs[b].f })
	for k := 0; k < leftover && k < len(fracs); k++ {
		out[fracs[k].idx]++
	}
	return out
}
