// Package day02 checksums box ids and finds the letters shared by the two
// most similar ids.
package day02

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/stepgrid/internal/textparse"
)

var (
	// ErrNoIDs is returned for an input without box ids.
	ErrNoIDs = errors.New("no box ids")
	// ErrLengthMismatch is returned when two ids being compared differ in length.
	ErrLengthMismatch = errors.New("box ids differ in length")
)

// Parse returns the box ids, one per line.
func Parse(input string) ([]string, error) {
	ids := textparse.Lines(input)
	if len(ids) == 0 {
		return nil, ErrNoIDs
	}
	return ids, nil
}

// Part1 multiplies the number of ids containing some letter exactly twice
// by the number containing some letter exactly three times.
func Part1(_ context.Context, input string, _ any) (any, error) {
	ids, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return Checksum(ids), nil
}

// Checksum is the twos times threes product over ids.
func Checksum(ids []string) int {
	twos, threes := 0, 0
	for _, id := range ids {
		counts := make(map[rune]int)
		for _, r := range id {
			counts[r]++
		}
		hasTwo, hasThree := false, false
		for _, c := range counts {
			switch c {
			case 2:
				hasTwo = true
			case 3:
				hasThree = true
			}
		}
		if hasTwo {
			twos++
		}
		if hasThree {
			threes++
		}
	}
	return twos * threes
}

// Part2 returns the letters common to the pair of ids that share the most
// letters in the same positions.
func Part2(_ context.Context, input string, _ any) (any, error) {
	ids, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return BestCommon(ids)
}

// BestCommon compares every pair of ids. The first pair found wins ties.
func BestCommon(ids []string) (string, error) {
	best := ""
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			c, err := Common(ids[i], ids[j])
			if err != nil {
				return "", err
			}
			if len(c) > len(best) {
				best = c
			}
		}
	}
	return best, nil
}

// Common returns the letters a and b share at the same positions.
func Common(a, b string) (string, error) {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return "", fmt.Errorf("%w: %q and %q", ErrLengthMismatch, a, b)
	}
	out := make([]rune, 0, len(ra))
	for i := range ra {
		if ra[i] == rb[i] {
			out = append(out, ra[i])
		}
	}
	return string(out), nil
}
