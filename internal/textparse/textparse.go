// Package textparse holds the small line and number helpers shared by the
// puzzle parsers.
package textparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Lines splits input into lines, trimming surrounding whitespace and
// dropping blank lines.
func Lines(input string) []string {
	var lines []string
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Ints parses whitespace-separated integers. A leading '+' is accepted.
func Ints(input string) ([]int, error) {
	fields := strings.Fields(input)
	out := make([]int, 0, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Atoi parses one decimal field, naming it in the error.
func Atoi(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return n, nil
}
