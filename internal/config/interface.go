package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
)

// Loader is the interface for a format-specific run file loader.
type Loader interface {
	// Load reads configuration from the given paths, translates it into the
	// format-agnostic model, and returns a matching Converter.
	Load(ctx context.Context, paths ...string) (*Model, Converter, error)
}

// Converter binds raw option expressions to the Go types declared by
// solver modules.
type Converter interface {
	// DecodeOptions evaluates every option expression and stores it in the
	// matching `cty`-tagged field of target, which must be a non-nil pointer
	// to a struct. Fields without a matching option keep their value, so
	// callers pre-fill target with defaults. An option with no matching
	// field is an error.
	DecodeOptions(ctx context.Context, target any, options map[string]hcl.Expression) error
}
