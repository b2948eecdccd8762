package day08

import (
	"context"

	"github.com/vk/stepgrid/internal/ctxlog"
)

// Part1 returns the sum of all metadata entries.
func Part1(ctx context.Context, input string, opts *Options) (any, error) {
	root, err := Parse(input, opts.CycleNames)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Licence decoded.", "root", string(root.Name), "children", len(root.Children))
	return root.MetadataSum(), nil
}

// Part2 returns the value of the root node.
func Part2(_ context.Context, input string, opts *Options) (any, error) {
	root, err := Parse(input, opts.CycleNames)
	if err != nil {
		return nil, err
	}
	return root.Value(), nil
}
