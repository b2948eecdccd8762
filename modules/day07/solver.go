// Package day07 orders assembly steps by their prerequisites and
// simulates a team of workers completing them.
package day07

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/stepgrid/internal/ctxlog"
	"github.com/vk/stepgrid/internal/scheduler"
)

// AlphabetDuration gives step A base+1 ticks, B base+2, and so on to Z.
// Steps outside A-Z have no duration.
func AlphabetDuration(base int) scheduler.DurationFunc[Step] {
	return func(s Step) (int, bool) {
		if s < 'A' || s > 'Z' {
			return 0, false
		}
		return base + 1 + int(s-'A'), true
	}
}

// Part1 returns the order in which a single worker completes the steps.
func (p *Parser) Part1(ctx context.Context, input string, _ *Options) (any, error) {
	g, err := p.Graph(input)
	if err != nil {
		return nil, err
	}
	order, err := scheduler.Order(ctx, g)
	if err != nil {
		return nil, err
	}
	return join(order), nil
}

// Part2 returns how many ticks opts.Workers workers need to complete
// every step when each takes AlphabetDuration(opts.BaseDuration).
func (p *Parser) Part2(ctx context.Context, input string, opts *Options) (any, error) {
	g, err := p.Graph(input)
	if err != nil {
		return nil, err
	}
	if opts.BaseDuration < 0 {
		return nil, fmt.Errorf("base_duration must not be negative, got %d", opts.BaseDuration)
	}

	cfg := scheduler.Config[Step]{
		Workers:  opts.Workers,
		Duration: AlphabetDuration(opts.BaseDuration),
	}
	if opts.Trace {
		cfg.Observer = traceTicks(ctx)
	}

	report, err := scheduler.Simulate(ctx, g, cfg)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Assembly simulated.",
		"ticks", report.TotalTicks,
		"order", join(report.CompletionOrder),
		"assignments", len(report.Assignments),
	)
	return report.TotalTicks, nil
}

// traceTicks logs one line per tick: the step each worker holds ('.' when
// idle) and the steps closed so far.
func traceTicks(ctx context.Context) func(scheduler.Tick[Step]) {
	logger := ctxlog.FromContext(ctx)
	var done []Step
	return func(t scheduler.Tick[Step]) {
		done = append(done, t.Completed...)
		workers := make([]string, len(t.Workers))
		for i, w := range t.Workers {
			workers[i] = "."
			if w.Busy {
				workers[i] = w.Current.String()
			}
		}
		logger.Info("Tick.", "tick", t.Number, "workers", strings.Join(workers, " "), "done", join(done))
	}
}

func join(steps []Step) string {
	var b strings.Builder
	for _, s := range steps {
		b.WriteRune(rune(s))
	}
	return b.String()
}
