package hcl

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/stepgrid/internal/config"
)

// translatePuzzle converts the HCL-specific puzzle schema into the agnostic model.
func (l *Loader) translatePuzzle(file string, p *puzzleBlock) (*config.Puzzle, error) {
	out := &config.Puzzle{
		Name:   p.Name,
		Parts:  p.Parts,
		Expect: p.Expect,
		Source: file,
	}

	switch {
	case p.Input != nil && p.InputText != nil:
		return nil, fmt.Errorf("%s: puzzle %q sets both input and input_text", p.DeclRange, p.Name)
	case p.Input != nil:
		path := *p.Input
		if !filepath.IsAbs(path) {
			path = filepath.Join(filepath.Dir(file), path)
		}
		out.InputPath = path
	case p.InputText != nil:
		out.InputText = *p.InputText
	default:
		return nil, fmt.Errorf("%s: puzzle %q needs input or input_text", p.DeclRange, p.Name)
	}

	for _, part := range p.Parts {
		if part < 1 {
			return nil, fmt.Errorf("%s: puzzle %q: invalid part %d", p.DeclRange, p.Name, part)
		}
	}

	options, err := l.extractBodyAttributes(p.Options)
	if err != nil {
		return nil, fmt.Errorf("puzzle %q options: %w", p.Name, err)
	}
	out.Options = options
	return out, nil
}

func (l *Loader) extractBodyAttributes(block *optionsBlock) (map[string]hcl.Expression, error) {
	if block == nil || block.Body == nil {
		return nil, nil
	}
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	exprMap := make(map[string]hcl.Expression, len(attrs))
	for name, attr := range attrs {
		exprMap[name] = attr.Expr
	}
	return exprMap, nil
}
