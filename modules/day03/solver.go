// Package day03 counts overlapping fabric claims and finds the one claim
// that overlaps no other.
package day03

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/vk/stepgrid/internal/textparse"
)

var (
	// ErrNoClaims is returned for an input without claims.
	ErrNoClaims = errors.New("no claims")
	// ErrNoUniqueClaim is returned unless exactly one claim overlaps nothing.
	ErrNoUniqueClaim = errors.New("expected exactly one non-overlapping claim")
)

// Claim is a rectangle of fabric reserved by an elf.
type Claim struct {
	ID, X, Y, Width, Height int
}

type square struct{ x, y int }

func (c Claim) each(fn func(square)) {
	for x := c.X; x < c.X+c.Width; x++ {
		for y := c.Y; y < c.Y+c.Height; y++ {
			fn(square{x, y})
		}
	}
}

// Parser reads claim lines such as "#1 @ 1,3: 4x4".
type Parser struct {
	claimRE *regexp.Regexp
}

// NewParser compiles the claim pattern.
func NewParser() *Parser {
	return &Parser{claimRE: regexp.MustCompile(`^#(\d+) @ (\d+),(\d+): (\d+)x(\d+)$`)}
}

// Parse returns every claim in input order.
func (p *Parser) Parse(input string) ([]Claim, error) {
	var claims []Claim
	for i, line := range textparse.Lines(input) {
		m := p.claimRE.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("line %d: malformed claim %q", i+1, line)
		}
		var fields [5]int
		for j, name := range []string{"id", "x", "y", "width", "height"} {
			n, err := textparse.Atoi(name, m[j+1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			fields[j] = n
		}
		claims = append(claims, Claim{ID: fields[0], X: fields[1], Y: fields[2], Width: fields[3], Height: fields[4]})
	}
	if len(claims) == 0 {
		return nil, ErrNoClaims
	}
	return claims, nil
}

// coverage counts how many claims cover each square.
func coverage(claims []Claim) map[square]int {
	counts := make(map[square]int)
	for _, c := range claims {
		c.each(func(s square) { counts[s]++ })
	}
	return counts
}

// Part1 counts the squares covered by two or more claims.
func (p *Parser) Part1(_ context.Context, input string, _ any) (any, error) {
	claims, err := p.Parse(input)
	if err != nil {
		return nil, err
	}
	overlapped := 0
	for _, n := range coverage(claims) {
		if n > 1 {
			overlapped++
		}
	}
	return overlapped, nil
}

// Part2 returns the id of the only claim that overlaps no other.
func (p *Parser) Part2(_ context.Context, input string, _ any) (any, error) {
	claims, err := p.Parse(input)
	if err != nil {
		return nil, err
	}
	counts := coverage(claims)

	var intact []int
	for _, c := range claims {
		alone := true
		c.each(func(s square) {
			if counts[s] > 1 {
				alone = false
			}
		})
		if alone {
			intact = append(intact, c.ID)
		}
	}
	if len(intact) != 1 {
		return nil, fmt.Errorf("%w, found %d: %v", ErrNoUniqueClaim, len(intact), intact)
	}
	return intact[0], nil
}
