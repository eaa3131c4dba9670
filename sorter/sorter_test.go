package sorter

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func allConstructors() map[string]func([]Element) Sorter {
	return map[string]func([]Element) Sorter{
		"bubble":    func(a []Element) Sorter { return NewBubble(a) },
		"insertion": func(a []Element) Sorter { return NewInsertion(a) },
		"selection": func(a []Element) Sorter { return NewSelection(a) },
		"shell":     func(a []Element) Sorter { return NewShell(a) },
		"heap":      func(a []Element) Sorter { return NewHeap(a) },
		"merge":     func(a []Element) Sorter { return NewMerge(a) },
		"quick":     func(a []Element) Sorter { return NewQuick(a) },
	}
}

func isSortedNonDecreasing(a []Element) bool {
	for i := 1; i < len(a); i++ {
		if a[i] < a[i-1] {
			return false
		}
	}
	return true
}

func multiset(a []Element) map[Element]int {
	m := make(map[Element]int, len(a))
	for _, v := range a {
		m[v]++
	}
	return m
}

func runToCompletion(t *testing.T, s Sorter, budget int) (comparisons, moves uint64, steps int) {
	t.Helper()
	for !s.IsComplete() {
		res := s.Step(budget)
		require.LessOrEqual(t, res.ComparisonsUsed, budget)
		tel := s.Telemetry()
		comparisons = tel.TotalComparisons
		moves = tel.TotalMoves
		steps++
		if steps > 10_000_000 {
			t.Fatalf("%s: did not complete within a sane number of steps", s.Name())
		}
	}
	return
}

func randomArray(n int, seed int64) []Element {
	r := rand.New(rand.NewSource(seed))
	out := make([]Element, n)
	for i := range out {
		out[i] = Element(r.Intn(1000))
	}
	return out
}

func TestAllAlgorithms_SortCorrectly(t *testing.T) {
	inputs := [][]Element{
		{3, 1, 2},
		{5, 5, 5, 5},
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{1},
		{},
		randomArray(50, 1),
		randomArray(200, 2),
	}

	for name, ctor := range allConstructors() {
		name, ctor := name, ctor
		t.Run(name, func(t *testing.T) {
			for _, in := range inputs {
				s := ctor(append([]Element(nil), in...))
				before := multiset(in)
				runToCompletion(t, s, 16)

				require.True(t, s.IsComplete())
				require.True(t, isSortedNonDecreasing(s.ArrayView()), "%s left array unsorted: %v", name, s.ArrayView())
				require.Equal(t, before, multiset(s.ArrayView()), "%s changed the multiset", name)
			}
		})
	}
}

func TestAllAlgorithms_BudgetRespected(t *testing.T) {
	for name, ctor := range allConstructors() {
		name, ctor := name, ctor
		t.Run(name, func(t *testing.T) {
			for _, budget := range []int{1, 2, 3, 16, 100} {
				s := ctor(randomArray(80, 42))
				for !s.IsComplete() {
					res := s.Step(budget)
					require.LessOrEqual(t, res.ComparisonsUsed, budget, "%s budget=%d", name, budget)
				}
			}
		})
	}
}

func TestAllAlgorithms_ResumabilityEquivalence(t *testing.T) {
	for name, ctor := range allConstructors() {
		name, ctor := name, ctor
		t.Run(name, func(t *testing.T) {
			in := randomArray(60, 7)

			big := ctor(append([]Element(nil), in...))
			runToCompletion(t, big, 1_000_000)
			bigArr := append([]Element(nil), big.ArrayView()...)
			bigTel := big.Telemetry()

			small := ctor(append([]Element(nil), in...))
			runToCompletion(t, small, 1)
			smallArr := append([]Element(nil), small.ArrayView()...)
			smallTel := small.Telemetry()

			require.Equal(t, bigArr, smallArr, "%s: final array differs by budget granularity", name)
			require.Equal(t, bigTel.TotalComparisons, smallTel.TotalComparisons, "%s: comparison totals differ", name)
			require.Equal(t, bigTel.TotalMoves, smallTel.TotalMoves, "%s: move totals differ", name)
		})
	}
}

func TestAllAlgorithms_MonotoneProgress(t *testing.T) {
	for name, ctor := range allConstructors() {
		name, ctor := name, ctor
		t.Run(name, func(t *testing.T) {
			s := ctor(randomArray(120, 99))
			last := 0.0
			for !s.IsComplete() {
				s.Step(4)
				p := s.Telemetry().ProgressHint
				require.GreaterOrEqual(t, p, last, "%s: progress regressed", name)
				require.GreaterOrEqual(t, p, 0.0)
				require.LessOrEqual(t, p, 1.0)
				last = p
			}
			require.Equal(t, 1.0, last)
		})
	}
}

func TestAllAlgorithms_LatchedCompletion(t *testing.T) {
	for name, ctor := range allConstructors() {
		name, ctor := name, ctor
		t.Run(name, func(t *testing.T) {
			s := ctor([]Element{3, 1, 2})
			runToCompletion(t, s, 4)
			require.True(t, s.IsComplete())
			res := s.Step(10)
			require.False(t, res.Continued)
			require.Equal(t, 0, res.ComparisonsUsed)
			require.Equal(t, 0, res.MovesMade)
		})
	}
}

func TestAllAlgorithms_MemoryMonotonic(t *testing.T) {
	for name, ctor := range allConstructors() {
		name, ctor := name, ctor
		t.Run(name, func(t *testing.T) {
			s := ctor(randomArray(64, 5))
			peak := 0
			for !s.IsComplete() {
				s.Step(3)
				tel := s.Telemetry()
				require.GreaterOrEqual(t, tel.MemoryPeak, tel.MemoryCurrent)
				require.GreaterOrEqual(t, tel.MemoryPeak, peak)
				peak = tel.MemoryPeak
			}
		})
	}
}

// TestStability_KeyWithTag checks that Bubble, Insertion, and Merge keep
// elements that share a key in their original relative order, using a tag
// packed into the last decimal digit (values are multiplied by 10 before
// tagging). The sorters compare the whole tagged value, so the tag takes
// part in the comparison: tagged equal-key elements are not equal values,
// and this input comes out in key-then-tag order under any correct sort.
func TestStability_KeyWithTag(t *testing.T) {
	// (key*10 + original-position) lets us recover the key by integer
	// division and the original position as the remainder.
	raw := []Element{20, 10, 20, 10, 20}
	tagged := make([]Element, len(raw))
	for i, v := range raw {
		tagged[i] = v*10 + Element(i)
	}

	stableCtors := map[string]func([]Element) Sorter{
		"bubble":    func(a []Element) Sorter { return NewBubble(a) },
		"insertion": func(a []Element) Sorter { return NewInsertion(a) },
		"merge":     func(a []Element) Sorter { return NewMerge(a) },
	}

	for name, ctor := range stableCtors {
		name, ctor := name, ctor
		t.Run(name, func(t *testing.T) {
			s := ctor(append([]Element(nil), tagged...))
			runToCompletion(t, s, 8)

			out := s.ArrayView()
			// Group by original key (value / 10) and verify tags within each
			// group are increasing, i.e. original relative order survived.
			groups := map[Element][]Element{}
			for _, v := range out {
				key := v / 10
				groups[key] = append(groups[key], v%10)
			}
			for key, tags := range groups {
				for i := 1; i < len(tags); i++ {
					require.Less(t, tags[i-1], tags[i], "%s: key %d not stable", name, key)
				}
			}
		})
	}
}

func TestQuick_LargeShuffled_CompletesWithinTickBudget(t *testing.T) {
	s := NewQuick(randomArray(50, 123))
	ticks := 0
	for !s.IsComplete() && ticks < 200 {
		s.Step(16)
		ticks++
	}
	require.True(t, s.IsComplete(), "quick sort did not complete within 200 ticks of budget 16")
	require.True(t, isSortedNonDecreasing(s.ArrayView()))
}

func TestInsertion_AlreadySorted_BudgetOne_NoMoves(t *testing.T) {
	s := NewInsertion([]Element{1, 2, 3, 4, 5})
	ticks := 0
	for !s.IsComplete() {
		s.Step(1)
		ticks++
		require.LessOrEqual(t, ticks, 4, "insertion sort should finish an already-sorted array in at most N-1 ticks")
	}
	require.EqualValues(t, 0, s.Telemetry().TotalMoves)
}

func TestRegistry_New_UnknownName(t *testing.T) {
	_, err := New("cocktail-shaker", []Element{1})
	require.Error(t, err)
}

func TestRegistry_New_AllNames(t *testing.T) {
	for _, name := range Names {
		s, err := New(name, []Element{3, 1, 2})
		require.NoError(t, err)
		require.Equal(t, name, s.Name())
	}
}
