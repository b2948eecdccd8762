// Package day08 decodes the navigation licence tree and computes its
// checksum and root value.
package day08

import (
	"errors"
	"fmt"

	"github.com/vk/stepgrid/internal/textparse"
)

var (
	// ErrNamesExhausted is returned when a tree has more nodes than names
	// and cycling is disabled.
	ErrNamesExhausted = errors.New("ran out of node names")
	// ErrTruncated is returned when the numbers end in the middle of a node.
	ErrTruncated = errors.New("licence truncated")
)

// Alphabet is the sequence node names are drawn from, in tree pre-order.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789abcdefghijklmnopqrstuvwxyz"

// Node is one licence tree node.
type Node struct {
	Name     rune
	Metadata []int
	Children []Node
}

// MetadataSum adds up the metadata of n and all of its descendants.
func (n Node) MetadataSum() int {
	sum := 0
	for _, c := range n.Children {
		sum += c.MetadataSum()
	}
	for _, m := range n.Metadata {
		sum += m
	}
	return sum
}

// Value is the metadata sum of a leaf. For other nodes each metadata entry
// is a 1-based child index and the values of the referenced children are
// summed; indexes that match no child count as zero.
func (n Node) Value() int {
	if len(n.Children) == 0 {
		return n.MetadataSum()
	}
	value := 0
	for _, m := range n.Metadata {
		if m >= 1 && m <= len(n.Children) {
			value += n.Children[m-1].Value()
		}
	}
	return value
}

// names hands out node names in order.
type names struct {
	alphabet []rune
	next     int
	cycle    bool
}

func (ns *names) take() (rune, error) {
	if ns.next == len(ns.alphabet) {
		if !ns.cycle {
			return 0, fmt.Errorf("%w after %d nodes", ErrNamesExhausted, len(ns.alphabet))
		}
		ns.next = 0
	}
	r := ns.alphabet[ns.next]
	ns.next++
	return r, nil
}

// treeParser walks the number list with an explicit cursor.
type treeParser struct {
	names *names
}

// Parse decodes the licence from whitespace-separated numbers. Every
// number must belong to the tree.
func Parse(input string, cycleNames bool) (Node, error) {
	nums, err := textparse.Ints(input)
	if err != nil {
		return Node{}, fmt.Errorf("failed to parse licence: %w", err)
	}
	p := treeParser{names: &names{alphabet: []rune(Alphabet), cycle: cycleNames}}

	root, pos, err := p.parseNode(nums, 0)
	if err != nil {
		return Node{}, err
	}
	if pos != len(nums) {
		return Node{}, fmt.Errorf("%d trailing numbers after the root node", len(nums)-pos)
	}
	return root, nil
}

// parseNode decodes the node starting at pos and returns the position
// just past it.
func (p treeParser) parseNode(nums []int, pos int) (Node, int, error) {
	if pos+2 > len(nums) {
		return Node{}, pos, fmt.Errorf("%w: header expected at position %d", ErrTruncated, pos)
	}
	childCount, metaCount := nums[pos], nums[pos+1]
	if childCount < 0 || metaCount < 0 {
		return Node{}, pos, fmt.Errorf("negative header (%d, %d) at position %d", childCount, metaCount, pos)
	}
	pos += 2

	name, err := p.names.take()
	if err != nil {
		return Node{}, pos, err
	}
	node := Node{Name: name}

	for range childCount {
		var child Node
		child, pos, err = p.parseNode(nums, pos)
		if err != nil {
			return Node{}, pos, err
		}
		node.Children = append(node.Children, child)
	}

	if metaCount > len(nums)-pos {
		return Node{}, pos, fmt.Errorf("%w: node %c needs %d metadata entries at position %d", ErrTruncated, name, metaCount, pos)
	}
	node.Metadata = append([]int(nil), nums[pos:pos+metaCount]...)
	return node, pos + metaCount, nil
}
