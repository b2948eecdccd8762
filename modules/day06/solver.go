// Package day06 measures manhattan-distance regions around a set of
// coordinates.
package day06

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vk/stepgrid/internal/ctxlog"
	"github.com/vk/stepgrid/internal/textparse"
)

var (
	// ErrNoCoords is returned for an input without coordinates.
	ErrNoCoords = errors.New("no coordinates")
	// ErrNoFiniteRegion is returned when every region reaches the edge.
	ErrNoFiniteRegion = errors.New("no finite region")
)

// Coord is a point on the grid.
type Coord struct {
	X, Y int
}

// Distance is the manhattan distance between c and o.
func (c Coord) Distance(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Bounds is the smallest box containing every coordinate.
type Bounds struct {
	Min, Max Coord
}

// OnEdge reports whether p lies on the border of the box.
func (b Bounds) OnEdge(p Coord) bool {
	return p.X == b.Min.X || p.X == b.Max.X || p.Y == b.Min.Y || p.Y == b.Max.Y
}

// BoundsOf returns the bounding box of coords.
func BoundsOf(coords []Coord) Bounds {
	b := Bounds{Min: coords[0], Max: coords[0]}
	for _, c := range coords[1:] {
		b.Min.X, b.Min.Y = min(b.Min.X, c.X), min(b.Min.Y, c.Y)
		b.Max.X, b.Max.Y = max(b.Max.X, c.X), max(b.Max.Y, c.Y)
	}
	return b
}

// Parse reads one "x, y" coordinate per line.
func Parse(input string) ([]Coord, error) {
	var coords []Coord
	for i, line := range textparse.Lines(input) {
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("line %d: malformed coordinate %q", i+1, line)
		}
		x, err := textparse.Atoi("x", strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		y, err := textparse.Atoi("y", strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		coords = append(coords, Coord{X: x, Y: y})
	}
	if len(coords) == 0 {
		return nil, ErrNoCoords
	}
	return coords, nil
}

// closest returns the index of the single coordinate nearest to p, or -1
// when two or more are equally near.
func closest(coords []Coord, p Coord) int {
	best, bestDist, tied := -1, 0, false
	for i, c := range coords {
		d := c.Distance(p)
		switch {
		case best < 0 || d < bestDist:
			best, bestDist, tied = i, d, false
		case d == bestDist:
			tied = true
		}
	}
	if tied {
		return -1
	}
	return best
}

// Part1 returns the size of the largest region that does not extend to
// infinity. A region touching the bounding box is infinite.
func Part1(ctx context.Context, input string, _ *Options) (any, error) {
	coords, err := Parse(input)
	if err != nil {
		return nil, err
	}
	b := BoundsOf(coords)

	sizes := make([]int, len(coords))
	infinite := make([]bool, len(coords))
	for y := b.Min.Y; y <= b.Max.Y; y++ {
		for x := b.Min.X; x <= b.Max.X; x++ {
			p := Coord{X: x, Y: y}
			i := closest(coords, p)
			if i < 0 {
				continue
			}
			sizes[i]++
			if b.OnEdge(p) {
				infinite[i] = true
			}
		}
	}

	largest, owner := 0, -1
	for i, size := range sizes {
		if !infinite[i] && size > largest {
			largest, owner = size, i
		}
	}
	if owner < 0 {
		return nil, ErrNoFiniteRegion
	}
	ctxlog.FromContext(ctx).Debug("Largest finite region found.", "coord", coords[owner], "size", largest)
	return largest, nil
}

// Part2 counts the points whose summed distance to every coordinate is
// below opts.MaxTotalDistance.
func Part2(_ context.Context, input string, opts *Options) (any, error) {
	coords, err := Parse(input)
	if err != nil {
		return nil, err
	}
	if opts.MaxTotalDistance < 0 {
		return nil, fmt.Errorf("max_total_distance must not be negative, got %d", opts.MaxTotalDistance)
	}

	// Beyond this margin every coordinate is farther than the limit allows.
	margin := opts.MaxTotalDistance/len(coords) + 1
	b := BoundsOf(coords)

	count := 0
	for y := b.Min.Y - margin; y <= b.Max.Y+margin; y++ {
		for x := b.Min.X - margin; x <= b.Max.X+margin; x++ {
			p := Coord{X: x, Y: y}
			total := 0
			for _, c := range coords {
				total += c.Distance(p)
			}
			if total < opts.MaxTotalDistance {
				count++
			}
		}
	}
	return count, nil
}
