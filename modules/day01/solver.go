// Package day01 sums frequency changes and finds the first repeated
// running frequency.
package day01

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/stepgrid/internal/ctxlog"
	"github.com/vk/stepgrid/internal/textparse"
)

var (
	// ErrNoChanges is returned for an input without any frequency change.
	ErrNoChanges = errors.New("no frequency changes")
	// ErrNoRepeat is returned when no frequency repeats within the pass limit.
	ErrNoRepeat = errors.New("no frequency repeated")
)

// Parse reads one signed change per line.
func Parse(input string) ([]int, error) {
	changes, err := textparse.Ints(input)
	if err != nil {
		return nil, fmt.Errorf("failed to parse frequency changes: %w", err)
	}
	if len(changes) == 0 {
		return nil, ErrNoChanges
	}
	return changes, nil
}

// Part1 returns the frequency reached after applying every change once.
func Part1(_ context.Context, input string, _ *Options) (any, error) {
	changes, err := Parse(input)
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, c := range changes {
		sum += c
	}
	return sum, nil
}

// Part2 returns the first running frequency reached twice, starting from
// zero and replaying the change list as often as needed.
func Part2(ctx context.Context, input string, opts *Options) (any, error) {
	changes, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return FirstRepeat(ctx, changes, opts.MaxPasses)
}

// FirstRepeat replays changes at most maxPasses times.
func FirstRepeat(ctx context.Context, changes []int, maxPasses int) (int, error) {
	seen := map[int]struct{}{0: {}}
	freq := 0
	for pass := 1; pass <= maxPasses; pass++ {
		for _, c := range changes {
			freq += c
			if _, ok := seen[freq]; ok {
				ctxlog.FromContext(ctx).Debug("Frequency repeated.", "frequency", freq, "pass", pass)
				return freq, nil
			}
			seen[freq] = struct{}{}
		}
	}
	return 0, fmt.Errorf("%w within %d passes", ErrNoRepeat, maxPasses)
}
