package day07

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/vk/stepgrid/internal/dag"
	"github.com/vk/stepgrid/internal/textparse"
)

// ErrNoRules is returned for an input without rules.
var ErrNoRules = errors.New("no rules")

// Step names one assembly step by a single character.
type Step rune

func (s Step) String() string {
	return string(s)
}

// Parser reads rule lines such as
// "Step C must be finished before step A can begin.".
type Parser struct {
	ruleRE *regexp.Regexp
}

// NewParser compiles the rule pattern.
func NewParser() *Parser {
	return &Parser{ruleRE: regexp.MustCompile(`^Step (\S) must be finished before step (\S) can begin\.$`)}
}

// Parse returns one rule per line: the second step depends on the first.
func (p *Parser) Parse(input string) ([]dag.Rule[Step], error) {
	var rules []dag.Rule[Step]
	for i, line := range textparse.Lines(input) {
		m := p.ruleRE.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("line %d: malformed rule %q", i+1, line)
		}
		rules = append(rules, dag.Rule[Step]{
			Step:         Step([]rune(m[2])[0]),
			Prerequisite: Step([]rune(m[1])[0]),
		})
	}
	if len(rules) == 0 {
		return nil, ErrNoRules
	}
	return rules, nil
}

// Graph parses input and builds its dependency graph.
func (p *Parser) Graph(input string) (*dag.Graph[Step], error) {
	rules, err := p.Parse(input)
	if err != nil {
		return nil, err
	}
	return dag.Build(rules), nil
}
