package executor

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/vk/stepgrid/internal/config"
	"github.com/vk/stepgrid/internal/ctxlog"
	"github.com/vk/stepgrid/internal/fsutil"
	"github.com/vk/stepgrid/internal/registry"
)

// ErrNothingToRun is returned when filters leave no job to execute.
var ErrNothingToRun = errors.New("nothing to run")

// Filter narrows a plan. Zero values select everything.
type Filter struct {
	Puzzle string
	Part   int
}

// Job is one part of one puzzle, ready to run.
type Job struct {
	Puzzle   string
	Part     int
	Input    string
	Options  any
	Expected string
	Run      registry.PartFunc
}

// Plan resolves the puzzles of model into jobs, in puzzle then part order.
func (e *Executor) Plan(ctx context.Context, model *config.Model, filter Filter) ([]Job, error) {
	logger := ctxlog.FromContext(ctx)

	if filter.Puzzle != "" {
		if _, ok := model.Find(filter.Puzzle); !ok {
			return nil, fmt.Errorf("puzzle %q is not declared in the run file", filter.Puzzle)
		}
	}

	var jobs []Job
	for _, puzzle := range model.Puzzles {
		if filter.Puzzle != "" && puzzle.Name != filter.Puzzle {
			continue
		}
		planned, err := e.planPuzzle(ctx, puzzle, filter.Part)
		if err != nil {
			return nil, fmt.Errorf("puzzle %q (%s): %w", puzzle.Name, puzzle.Source, err)
		}
		jobs = append(jobs, planned...)
	}

	if len(jobs) == 0 {
		return nil, ErrNothingToRun
	}
	logger.Debug("Run planned.", "jobs", len(jobs))
	return jobs, nil
}

func (e *Executor) planPuzzle(ctx context.Context, puzzle *config.Puzzle, onlyPart int) ([]Job, error) {
	solver, err := e.registry.Lookup(puzzle.Name)
	if err != nil {
		return nil, err
	}

	parts := puzzle.Parts
	if len(parts) == 0 {
		parts = solver.PartNumbers()
	}
	parts = slices.Compact(slices.Sorted(slices.Values(parts)))

	for _, key := range slices.Sorted(maps.Keys(puzzle.Expect)) {
		known := false
		for _, n := range solver.PartNumbers() {
			if config.ExpectKey(n) == key {
				known = true
			}
		}
		if !known {
			return nil, fmt.Errorf("expect key %q does not name a part of this puzzle", key)
		}
	}

	opts := solver.Options()
	switch {
	case opts != nil:
		if err := e.converter.DecodeOptions(ctx, opts, puzzle.Options); err != nil {
			return nil, fmt.Errorf("invalid options: %w", err)
		}
	case len(puzzle.Options) > 0:
		return nil, errors.New("solver takes no options")
	}

	input := puzzle.InputText
	if puzzle.InputPath != "" {
		input, err = fsutil.ReadText(puzzle.InputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
	}

	var jobs []Job
	for _, n := range parts {
		if onlyPart != 0 && n != onlyPart {
			continue
		}
		fn, err := solver.Part(n)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, Job{
			Puzzle:   puzzle.Name,
			Part:     n,
			Input:    input,
			Options:  opts,
			Expected: puzzle.Expect[config.ExpectKey(n)],
			Run:      fn,
		})
	}

	planned := make(map[string]bool, len(jobs))
	for _, job := range jobs {
		planned[config.ExpectKey(job.Part)] = true
	}
	for _, key := range slices.Sorted(maps.Keys(puzzle.Expect)) {
		if !planned[key] {
			ctxlog.FromContext(ctx).Warn("Expectation skipped, its part is not run.", "puzzle", puzzle.Name, "expect", key)
		}
	}
	return jobs, nil
}
