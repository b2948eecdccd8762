package scheduler

import (
	"cmp"
	"errors"
)

var (
	// ErrNoWorkers is returned when a simulation is requested with fewer than one worker.
	ErrNoWorkers = errors.New("at least one worker is required")
	// ErrMissingDuration is returned when the duration function has no entry for a step.
	ErrMissingDuration = errors.New("no duration for step")
	// ErrInvalidDuration is returned when a step's duration is not a positive number of ticks.
	ErrInvalidDuration = errors.New("step duration must be at least one tick")
)

// DurationFunc reports how many ticks a step takes. ok is false when the
// step has no known duration.
type DurationFunc[S cmp.Ordered] func(step S) (ticks int, ok bool)

// UnitDuration gives every step a duration of one tick.
func UnitDuration[S cmp.Ordered]() DurationFunc[S] {
	return func(S) (int, bool) { return 1, true }
}

// DurationTable looks durations up in a fixed table.
func DurationTable[S cmp.Ordered](table map[S]int) DurationFunc[S] {
	return func(step S) (int, bool) {
		d, ok := table[step]
		return d, ok
	}
}

// Config parameterizes a single simulation run.
type Config[S cmp.Ordered] struct {
	// Workers is the size of the worker pool. Must be at least 1.
	Workers int
	// Duration reports the length of each step in ticks.
	Duration DurationFunc[S]
	// Observer, when set, is called once per tick after the assignment
	// phase with a snapshot of that tick.
	Observer func(Tick[S])
}

// WorkerState is a worker's slot in the pool.
type WorkerState[S cmp.Ordered] struct {
	ID        int
	Busy      bool
	Current   S
	Remaining int
}

// Assignment records one step being handed to a worker.
type Assignment[S cmp.Ordered] struct {
	Tick     int
	Worker   int
	Step     S
	Duration int
}

// Tick is the snapshot passed to Config.Observer.
type Tick[S cmp.Ordered] struct {
	Number    int
	Completed []S
	Started   []Assignment[S]
	Workers   []WorkerState[S]
	Open      int
	Closed    int
}

// Report is the outcome of a simulation.
type Report[S cmp.Ordered] struct {
	// TotalTicks is the number of ticks elapsed until every step closed.
	TotalTicks int
	// CompletionOrder lists steps in the order they closed. Steps
	// closing in the same tick appear in ascending order.
	CompletionOrder []S
	// Assignments lists every start, in tick then worker order.
	Assignments []Assignment[S]
}
