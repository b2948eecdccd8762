package scheduler

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/vk/stepgrid/internal/ctxlog"
	"github.com/vk/stepgrid/internal/dag"
)

// state is the mutable bookkeeping of one simulation run. It is owned by
// a single Simulate call and discarded when the run ends.
type state[S cmp.Ordered] struct {
	steps     []S
	prereqs   map[S][]S
	durations map[S]int

	open    map[S]bool
	closed  map[S]bool
	workers []WorkerState[S]

	elapsed     int
	order       []S
	assignments []Assignment[S]
}

// Simulate runs the worker simulation over g until every step is closed.
//
// The graph is validated up front: a cycle, a missing or non-positive
// duration, or fewer than one worker is rejected before the first tick.
// A nil graph is treated as empty.
func Simulate[S cmp.Ordered](ctx context.Context, g *dag.Graph[S], cfg Config[S]) (*Report[S], error) {
	logger := ctxlog.FromContext(ctx)

	s, err := newState(g, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("Simulation started.", "steps", len(s.steps), "workers", cfg.Workers)

	for {
		completed := s.complete()
		started := s.assign()

		if len(completed) > 0 || len(started) > 0 {
			logger.Debug("Tick processed.",
				"tick", s.elapsed,
				"completed", fmt.Sprint(completed),
				"started", len(started),
				"open", len(s.open),
				"closed", len(s.closed),
			)
		}
		if cfg.Observer != nil {
			cfg.Observer(Tick[S]{
				Number:    s.elapsed,
				Completed: completed,
				Started:   started,
				Workers:   slices.Clone(s.workers),
				Open:      len(s.open),
				Closed:    len(s.closed),
			})
		}

		if s.finished() {
			break
		}
		s.elapsed++
	}

	logger.Debug("Simulation finished.", "ticks", s.elapsed, "steps", len(s.order))
	return &Report[S]{
		TotalTicks:      s.elapsed,
		CompletionOrder: s.order,
		Assignments:     s.assignments,
	}, nil
}

// Order returns the completion order of g with one worker and unit
// durations: a topological sort that always picks the smallest ready step.
func Order[S cmp.Ordered](ctx context.Context, g *dag.Graph[S]) ([]S, error) {
	report, err := Simulate(ctx, g, Config[S]{Workers: 1, Duration: UnitDuration[S]()})
	if err != nil {
		return nil, err
	}
	return report.CompletionOrder, nil
}

func newState[S cmp.Ordered](g *dag.Graph[S], cfg Config[S]) (*state[S], error) {
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoWorkers, cfg.Workers)
	}
	if cfg.Duration == nil {
		return nil, fmt.Errorf("%w: duration function is nil", ErrMissingDuration)
	}
	if err := g.DetectCycles(); err != nil {
		return nil, err
	}

	steps := g.Steps()
	s := &state[S]{
		steps:     steps,
		prereqs:   make(map[S][]S, len(steps)),
		durations: make(map[S]int, len(steps)),
		open:      make(map[S]bool, len(steps)),
		closed:    make(map[S]bool, len(steps)),
		workers:   make([]WorkerState[S], cfg.Workers),
		order:     make([]S, 0, len(steps)),
	}
	for i := range s.workers {
		s.workers[i].ID = i
	}

	for _, step := range steps {
		d, ok := cfg.Duration(step)
		if !ok {
			return nil, fmt.Errorf("%w %v", ErrMissingDuration, step)
		}
		if d < 1 {
			return nil, fmt.Errorf("%w: step %v has duration %d", ErrInvalidDuration, step, d)
		}
		prereqs, err := g.Prerequisites(step)
		if err != nil {
			return nil, err
		}
		s.durations[step] = d
		s.prereqs[step] = prereqs
		s.open[step] = true
	}
	return s, nil
}

// complete ticks every busy worker down by one and closes the steps whose
// time ran out. Closed steps are returned in ascending order.
func (s *state[S]) complete() []S {
	var done []S
	for i := range s.workers {
		w := &s.workers[i]
		if !w.Busy {
			continue
		}
		w.Remaining--
		if w.Remaining > 0 {
			continue
		}
		s.closed[w.Current] = true
		done = append(done, w.Current)

		var zero S
		w.Busy, w.Current, w.Remaining = false, zero, 0
	}
	slices.Sort(done)
	s.order = append(s.order, done...)
	return done
}

// ready returns the open steps whose prerequisites are all closed. Steps
// are kept sorted, so the result is already in ascending order.
func (s *state[S]) ready() []S {
	var ready []S
	for _, step := range s.steps {
		if !s.open[step] {
			continue
		}
		if s.satisfied(step) {
			ready = append(ready, step)
		}
	}
	return ready
}

func (s *state[S]) satisfied(step S) bool {
	for _, p := range s.prereqs[step] {
		if !s.closed[p] {
			return false
		}
	}
	return true
}

// assign hands ready steps to idle workers, lowest worker index first.
func (s *state[S]) assign() []Assignment[S] {
	var started []Assignment[S]
	next := 0
	for _, step := range s.ready() {
		for next < len(s.workers) && s.workers[next].Busy {
			next++
		}
		if next == len(s.workers) {
			break
		}

		w := &s.workers[next]
		d := s.durations[step]
		w.Busy, w.Current, w.Remaining = true, step, d
		delete(s.open, step)

		a := Assignment[S]{Tick: s.elapsed, Worker: w.ID, Step: step, Duration: d}
		started = append(started, a)
		s.assignments = append(s.assignments, a)
	}
	return started
}

func (s *state[S]) finished() bool {
	if len(s.open) > 0 {
		return false
	}
	for _, w := range s.workers {
		if w.Busy {
			return false
		}
	}
	return true
}
