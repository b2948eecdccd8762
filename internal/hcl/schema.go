package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of a run file.
type fileRoot struct {
	Puzzles []*puzzleBlock `hcl:"puzzle,block"`
}

// puzzleBlock represents a `puzzle "<name>" { ... }` block.
type puzzleBlock struct {
	Name      string            `hcl:"name,label"`
	Input     *string           `hcl:"input,optional"`
	InputText *string           `hcl:"input_text,optional"`
	Parts     []int             `hcl:"parts,optional"`
	Expect    map[string]string `hcl:"expect,optional"`
	Options   *optionsBlock     `hcl:"options,block"`
	DeclRange hcl.Range         `hcl:",def_range"`
}

// optionsBlock holds solver options as raw attributes; their types are
// only known once the solver is resolved.
type optionsBlock struct {
	Body hcl.Body `hcl:",remain"`
}
