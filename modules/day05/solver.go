// Package day05 reduces polymers whose adjacent units of the same type
// and opposite polarity annihilate each other.
package day05

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/vk/stepgrid/internal/ctxlog"
)

// ErrEmptyPolymer is returned for an input without units.
var ErrEmptyPolymer = errors.New("empty polymer")

// Unit is one polymer unit. Its type is the lowercase letter; uppercase
// units have positive polarity.
type Unit rune

// Type returns the unit's letter regardless of polarity.
func (u Unit) Type() rune {
	return unicode.ToLower(rune(u))
}

// Positive reports the unit's polarity.
func (u Unit) Positive() bool {
	return unicode.IsUpper(rune(u))
}

// ReactsWith reports whether u and o annihilate when adjacent.
func (u Unit) ReactsWith(o Unit) bool {
	return u.Type() == o.Type() && u.Positive() != o.Positive()
}

// Parse reads the polymer, ignoring surrounding whitespace.
func Parse(input string) ([]Unit, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return nil, ErrEmptyPolymer
	}
	units := make([]Unit, 0, len(text))
	for i, r := range text {
		if !unicode.IsLetter(r) {
			return nil, fmt.Errorf("invalid unit %q at offset %d", r, i)
		}
		units = append(units, Unit(r))
	}
	return units, nil
}

// React fully reduces the polymer and returns the remaining length.
// skip, when non-zero, removes every unit of that type first.
func React(units []Unit, skip rune) int {
	stack := make([]Unit, 0, len(units))
	for _, u := range units {
		if skip != 0 && u.Type() == skip {
			continue
		}
		if n := len(stack); n > 0 && stack[n-1].ReactsWith(u) {
			stack = stack[:n-1]
			continue
		}
		stack = append(stack, u)
	}
	return len(stack)
}

// Part1 returns the length of the fully reacted polymer.
func Part1(_ context.Context, input string, _ any) (any, error) {
	units, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return React(units, 0), nil
}

// Part2 returns the shortest length reachable by removing all units of a
// single type before reacting.
func Part2(ctx context.Context, input string, _ any) (any, error) {
	units, err := Parse(input)
	if err != nil {
		return nil, err
	}

	seen := make(map[rune]bool)
	best, bestType := len(units), rune(0)
	for _, u := range units {
		t := u.Type()
		if seen[t] {
			continue
		}
		seen[t] = true
		if n := React(units, t); n < best || (n == best && t < bestType) {
			best, bestType = n, t
		}
	}
	ctxlog.FromContext(ctx).Debug("Best unit type to remove.", "type", string(bestType), "length", best)
	return best, nil
}
