package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vk/stepgrid/internal/config"
	"github.com/vk/stepgrid/internal/ctxlog"
	"github.com/vk/stepgrid/internal/registry"
	"github.com/vk/stepgrid/internal/report"
	"golang.org/x/sync/errgroup"
)

// ErrUnexpectedAnswer is returned when an answer differs from the expected one.
var ErrUnexpectedAnswer = errors.New("unexpected answer")

// Executor plans and runs puzzle jobs.
type Executor struct {
	registry  *registry.Registry
	converter config.Converter
	workers   int
}

// New creates an Executor. workers below one are treated as one.
func New(reg *registry.Registry, converter config.Converter, workers int) *Executor {
	return &Executor{
		registry:  reg,
		converter: converter,
		workers:   max(workers, 1),
	}
}

// Execute runs jobs on the worker pool. Results are returned in job order.
// The first failure cancels the remaining jobs and no results are returned.
func (e *Executor) Execute(ctx context.Context, jobs []Job) ([]report.Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Executor starting run.", "jobs", len(jobs), "workers", e.workers)

	results := make([]report.Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := e.runJob(gctx, job)
			if err != nil {
				return fmt.Errorf("%s part %d: %w", job.Puzzle, job.Part, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Debug("Executor finished run.")
	return results, nil
}

// runJob solves a single part and checks it against its expectation.
func (e *Executor) runJob(ctx context.Context, job Job) (report.Result, error) {
	ctx, logger := ctxlog.With(ctx, "puzzle", job.Puzzle, "part", job.Part)
	logger.Debug("Job started.")

	start := time.Now()
	value, err := job.Run(ctx, job.Input, job.Options)
	elapsed := time.Since(start)
	if err != nil {
		logger.Error("Job failed.", "error", err)
		return report.Result{}, err
	}

	answer := fmt.Sprint(value)
	if job.Expected != "" && answer != job.Expected {
		return report.Result{}, fmt.Errorf("%w: got %q, want %q", ErrUnexpectedAnswer, answer, job.Expected)
	}

	logger.Info("Solved.", "answer", answer, "elapsed", elapsed)
	return report.Result{
		Puzzle:   job.Puzzle,
		Part:     job.Part,
		Answer:   answer,
		Expected: job.Expected,
		Elapsed:  elapsed,
	}, nil
}
