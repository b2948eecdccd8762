package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// Model is the unified, format-agnostic representation of a run file.
type Model struct {
	// Puzzles are kept sorted by name.
	Puzzles []*Puzzle
}

// Puzzle is one `puzzle` block: which solver to run, on what input, and
// with which options.
type Puzzle struct {
	// Name selects the registered solver, e.g. "day07".
	Name string
	// InputPath is the resolved path of the puzzle input. Empty when the
	// input is given inline.
	InputPath string
	// InputText is the inline puzzle input.
	InputText string
	// Parts restricts which parts run. Empty means every registered part.
	Parts []int
	// Expect maps "part1", "part2", ... to the expected answer.
	Expect map[string]string
	// Options are the raw solver options, decoded later by a Converter.
	Options map[string]hcl.Expression
	// Source is the file the block was declared in.
	Source string
}

// Find returns the puzzle with the given name.
func (m *Model) Find(name string) (*Puzzle, bool) {
	for _, p := range m.Puzzles {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// ExpectKey is the key used in Puzzle.Expect for the given part.
func ExpectKey(part int) string {
	return fmt.Sprintf("part%d", part)
}
