// Package engine implements the RaceEngine tick loop: it owns one Sorter per
// selected algorithm, asks a fairness.Policy how to split each tick's
// comparison budget across them, steps every sorter in turn, and reports the
// aggregate outcome. The loop itself is single-threaded and cooperative —
// there is no goroutine per sorter. Concurrency, where it is wanted at all,
// belongs to the raceexec package, which runs many independent RaceEngines
// side by side for benchmarking rather than interleaving one race's sorters.
package engine

import (
	"fmt"
	"time"

	"github.com/avifenesh/sortrace/fairness"
	"github.com/avifenesh/sortrace/metrics"
	"github.com/avifenesh/sortrace/sorter"
)

// SorterSummary is one algorithm's reported state after a tick.
type SorterSummary struct {
	Name            string
	ComparisonsUsed int
	MovesMade       int
	Array           []sorter.Element
	Telemetry       sorter.Telemetry
}

// TickResult reports what one Tick call did across every sorter in the
// race, in the order the engine was configured with.
type TickResult struct {
	TickSeq  uint64
	Elapsed  time.Duration
	Sorters  []SorterSummary
	Complete bool
}

// RaceEngine drives a fixed set of sorters through a shared, policy-
// allocated comparison budget, one tick at a time.
type RaceEngine struct {
	cfg config

	names   []string
	sorters []sorter.Sorter

	tickSeq      uint64
	elapsedTotal time.Duration
	complete     bool
	paused       bool

	stepDuration metrics.Histogram
	tickTotal    metrics.Counter

	comparisons map[string]metrics.Counter
	moves       map[string]metrics.Counter
	memory      map[string]metrics.UpDownCounter
	lastMemory  map[string]int
}

// New constructs a RaceEngine over a copy of initialArray, racing the
// algorithms named by WithAlgorithms under the policy set by WithPolicy,
// with the per-tick budget set by WithTotalBudget.
func New(initialArray []sorter.Element, opts ...Option) (*RaceEngine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			panic("engine: nil option")
		}
		opt(&cfg)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	e := &RaceEngine{cfg: cfg}
	e.stepDuration = cfg.MetricsProvider.Histogram(
		"tick_step_duration_seconds",
		metrics.WithDescription("wall-clock time spent in one sorter's Step call"),
		metrics.WithUnit("s"),
	)
	e.tickTotal = cfg.MetricsProvider.Counter(
		"tick_total",
		metrics.WithDescription("number of RaceEngine ticks completed"),
	)

	e.comparisons = make(map[string]metrics.Counter, len(cfg.Algorithms))
	e.moves = make(map[string]metrics.Counter, len(cfg.Algorithms))
	e.memory = make(map[string]metrics.UpDownCounter, len(cfg.Algorithms))
	for _, name := range cfg.Algorithms {
		attrs := metrics.WithAttributes(map[string]string{"algorithm": name})
		e.comparisons[name] = cfg.MetricsProvider.Counter("sorter_comparisons_total", attrs)
		e.moves[name] = cfg.MetricsProvider.Counter("sorter_moves_total", attrs)
		e.memory[name] = cfg.MetricsProvider.UpDownCounter("sorter_memory_current_bytes", attrs)
	}

	if err := e.ResetWith(initialArray); err != nil {
		return nil, err
	}
	return e, nil
}

// ResetWith discards all race progress and restarts with the same selected
// algorithms, policy, and budget over a copy of newArray. If the configured
// policy implements fairness.Resettable, its accumulated per-sorter state is
// cleared too, so measurements from the previous race don't bias the new one.
func (e *RaceEngine) ResetWith(newArray []sorter.Element) error {
	sorters := make([]sorter.Sorter, len(e.cfg.Algorithms))
	for i, name := range e.cfg.Algorithms {
		s, err := sorter.New(name, append([]sorter.Element(nil), newArray...))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		sorters[i] = s
	}

	if r, ok := e.cfg.Policy.(fairness.Resettable); ok {
		r.Reset()
	}

	e.names = append([]string(nil), e.cfg.Algorithms...)
	e.sorters = sorters
	e.tickSeq = 0
	e.elapsedTotal = 0
	e.complete = false
	e.paused = false

	prevMemory := e.lastMemory
	e.lastMemory = make(map[string]int, len(sorters))
	for i, s := range sorters {
		mem := s.MemoryUsage()
		e.memory[e.names[i]].Add(int64(mem - prevMemory[e.names[i]]))
		e.lastMemory[e.names[i]] = mem
	}
	return nil
}

// RaceComplete reports whether every sorter has finished.
func (e *RaceEngine) RaceComplete() bool { return e.complete }

// Pause suspends Tick: subsequent calls return ErrPaused until Resume.
func (e *RaceEngine) Pause() { e.paused = true }

// Resume clears a prior Pause, allowing Tick to proceed again.
func (e *RaceEngine) Resume() { e.paused = false }

// TickSeq returns the number of ticks completed since the last
// New/ResetWith.
func (e *RaceEngine) TickSeq() uint64 { return e.tickSeq }

// ElapsedTotal returns the cumulative wall-clock time spent inside Tick
// since the last New/ResetWith.
func (e *RaceEngine) ElapsedTotal() time.Duration { return e.elapsedTotal }

// Tick allocates the configured total budget across every sorter that is
// not yet complete, steps each of them once, and reports the outcome. Once
// RaceComplete is true, Tick is a no-op that returns the last TickSeq with
// Complete set.
func (e *RaceEngine) Tick() (TickResult, error) {
	if e.paused {
		return TickResult{}, ErrPaused
	}
	if e.complete {
		return TickResult{TickSeq: e.tickSeq, Sorters: e.snapshot(), Complete: true}, nil
	}

	start := time.Now()

	views := make([]fairness.SorterView, len(e.sorters))
	for i, s := range e.sorters {
		views[i] = s
	}
	budgets := e.cfg.Policy.Allocate(views, e.cfg.TotalBudget)

	summaries := make([]SorterSummary, len(e.sorters))
	allComplete := true
	for i, s := range e.sorters {
		if s.IsComplete() || budgets[i] == 0 {
			summaries[i] = SorterSummary{Name: e.names[i], Array: arrayCopy(s), Telemetry: s.Telemetry()}
			if !s.IsComplete() {
				allComplete = false
			}
			continue
		}

		progressBefore := s.Telemetry().ProgressHint
		stepStart := time.Now()
		res := s.Step(budgets[i])
		stepElapsed := time.Since(stepStart)
		progressAfter := s.Telemetry().ProgressHint

		e.stepDuration.Record(stepElapsed.Seconds())
		e.cfg.Policy.Observe(fairness.StepObservation{
			Index:           i,
			Elapsed:         stepElapsed,
			ComparisonsUsed: res.ComparisonsUsed,
			Budget:          budgets[i],
			ProgressBefore:  progressBefore,
			ProgressAfter:   progressAfter,
		})

		summaries[i] = SorterSummary{
			Name:            e.names[i],
			ComparisonsUsed: res.ComparisonsUsed,
			MovesMade:       res.MovesMade,
			Array:           arrayCopy(s),
			Telemetry:       s.Telemetry(),
		}
		if !s.IsComplete() {
			allComplete = false
		}

		name := e.names[i]
		if res.ComparisonsUsed > 0 {
			e.comparisons[name].Add(int64(res.ComparisonsUsed))
		}
		if res.MovesMade > 0 {
			e.moves[name].Add(int64(res.MovesMade))
		}
		mem := s.MemoryUsage()
		e.memory[name].Add(int64(mem - e.lastMemory[name]))
		e.lastMemory[name] = mem
	}

	e.tickSeq++
	tickElapsed := time.Since(start)
	e.elapsedTotal += tickElapsed
	e.complete = allComplete
	e.tickTotal.Add(1)

	return TickResult{TickSeq: e.tickSeq, Elapsed: tickElapsed, Sorters: summaries, Complete: e.complete}, nil
}

func (e *RaceEngine) snapshot() []SorterSummary {
	out := make([]SorterSummary, len(e.sorters))
	for i, s := range e.sorters {
		out[i] = SorterSummary{Name: e.names[i], Array: arrayCopy(s), Telemetry: s.Telemetry()}
	}
	return out
}

// arrayCopy returns a defensive copy of a sorter's current array contents, so
// the renderer-facing TickResult never aliases a Sorter's live backing array.
func arrayCopy(s sorter.Sorter) []sorter.Element {
	return append([]sorter.Element(nil), s.ArrayView()...)
}
