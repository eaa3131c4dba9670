package fairness

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avifenesh/sortrace/sorter"
)

// fakeView is a minimal SorterView for exercising policies without a real
// sorter.
type fakeView struct {
	complete bool
	tel      sorter.Telemetry
}

func (f fakeView) IsComplete() bool           { return f.complete }
func (f fakeView) Telemetry() sorter.Telemetry { return f.tel }

func sumOf(v []int) int {
	total := 0
	for _, x := range v {
		total += x
	}
	return total
}

func TestEqualComparisons_SumAndFloor(t *testing.T) {
	p, err := NewEqualComparisons(8)
	require.NoError(t, err)

	views := []SorterView{
		fakeView{complete: false},
		fakeView{complete: false},
		fakeView{complete: true},
		fakeView{complete: false},
	}
	out := p.Allocate(views, 10)
	require.Equal(t, 10, sumOf(out))
	require.Equal(t, 0, out[2], "completed sorter must receive 0")
	require.GreaterOrEqual(t, out[0], 1)
	require.GreaterOrEqual(t, out[1], 1)
	require.GreaterOrEqual(t, out[3], 1)
}

func TestEqualComparisons_Deterministic(t *testing.T) {
	p, _ := NewEqualComparisons(8)
	views := []SorterView{
		fakeView{complete: false},
		fakeView{complete: false},
		fakeView{complete: false},
	}
	a := p.Allocate(views, 10)
	b := p.Allocate(views, 10)
	require.Equal(t, a, b)
}

func TestEqualComparisons_InvalidDefault(t *testing.T) {
	_, err := NewEqualComparisons(0)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestEqualComparisons_AllComplete(t *testing.T) {
	p, _ := NewEqualComparisons(8)
	views := []SorterView{fakeView{complete: true}, fakeView{complete: true}}
	out := p.Allocate(views, 10)
	require.Equal(t, []int{0, 0}, out)
}

func TestWeighted_FavorsLessWork(t *testing.T) {
	p, err := NewWeighted(1, 1)
	require.NoError(t, err)

	views := []SorterView{
		fakeView{tel: sorter.Telemetry{TotalComparisons: 0}},
		fakeView{tel: sorter.Telemetry{TotalComparisons: 1000}},
	}
	out := p.Allocate(views, 10)
	require.Equal(t, 10, sumOf(out))
	require.Greater(t, out[0], out[1], "sorter with less accumulated work should get a larger share")
}

func TestWeighted_InvalidParameters(t *testing.T) {
	_, err := NewWeighted(0, 1)
	require.Error(t, err)
	_, err = NewWeighted(1, -1)
	require.Error(t, err)
}

func TestWallTime_FavorsFasterObserved(t *testing.T) {
	p := NewWallTime()
	// Sorter 0 is slow (lots of elapsed time per comparison), sorter 1 fast.
	p.Observe(StepObservation{Index: 0, Elapsed: 100 * time.Millisecond, ComparisonsUsed: 1})
	p.Observe(StepObservation{Index: 1, Elapsed: 1 * time.Millisecond, ComparisonsUsed: 1})

	views := []SorterView{fakeView{}, fakeView{}}
	out := p.Allocate(views, 10)
	require.Equal(t, 10, sumOf(out))
	require.Greater(t, out[1], out[0], "faster sorter should receive more budget so wall-clock time per tick stays balanced")
}

func TestWallTime_NoDataYet_EqualShares(t *testing.T) {
	p := NewWallTime()
	views := []SorterView{fakeView{}, fakeView{}}
	out := p.Allocate(views, 10)
	require.Equal(t, out[0], out[1])
}

func TestAdaptive_FavorsSlowerProgressing(t *testing.T) {
	p, err := NewAdaptive(0.5)
	require.NoError(t, err)

	// Sorter 0 makes little progress per comparison; sorter 1 makes a lot.
	p.Observe(StepObservation{Index: 0, Budget: 10, ProgressBefore: 0, ProgressAfter: 0.01})
	p.Observe(StepObservation{Index: 1, Budget: 10, ProgressBefore: 0, ProgressAfter: 0.5})

	views := []SorterView{fakeView{}, fakeView{}}
	out := p.Allocate(views, 10)
	require.Equal(t, 10, sumOf(out))
	require.Greater(t, out[0], out[1], "slower-progressing sorter should receive more budget")
}

func TestAdaptive_InvalidEta(t *testing.T) {
	_, err := NewAdaptive(0)
	require.Error(t, err)
	_, err = NewAdaptive(1.5)
	require.Error(t, err)
}

func TestAllPolicies_AllocatePanicsOnBadInput(t *testing.T) {
	policies := []Policy{
		must(NewEqualComparisons(8)),
		must(NewWeighted(1, 1)),
		NewWallTime(),
		must(NewAdaptive(0.5)),
	}
	for _, p := range policies {
		p := p
		t.Run(p.Name()+"/empty", func(t *testing.T) {
			require.Panics(t, func() { p.Allocate(nil, 10) })
		})
		t.Run(p.Name()+"/zero-budget", func(t *testing.T) {
			require.Panics(t, func() { p.Allocate([]SorterView{fakeView{}}, 0) })
		})
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
