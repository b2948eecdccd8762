package app

import (
	"context"
	"fmt"

	"github.com/vk/stepgrid/internal/ctxlog"
	"github.com/vk/stepgrid/internal/executor"
	"github.com/vk/stepgrid/internal/report"
)

// Run plans the requested puzzles, solves them and writes the report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	exec := executor.New(a.registry, a.converter, a.cfg.Workers)
	jobs, err := exec.Plan(ctx, a.model, executor.Filter{Puzzle: a.cfg.Puzzle, Part: a.cfg.Part})
	if err != nil {
		return fmt.Errorf("failed to plan run: %w", err)
	}

	a.logger.Info("Starting run.", "jobs", len(jobs), "workers", a.cfg.Workers)
	results, err := exec.Execute(ctx, jobs)
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	a.logger.Info("Run finished.", "results", len(results))

	run := &report.Run{ID: a.runID, Results: results}
	if err := report.Render(a.outW, run, report.Options{Format: a.cfg.Output, Color: a.cfg.Color}); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
