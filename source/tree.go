package source

import (
	"strings"

	"github.com/viant/confmerge/tree"
)

// Tree exposes a configuration tree as a read-only Source addressed with
// dotted keys ("server.port"). A key matching a single valued node yields its
// scalar; a key matching several valued nodes yields an ordered []any list.
type Tree struct {
	root *tree.Node
}

// NewTree creates a source over the given tree root.
func NewTree(root *tree.Node) *Tree {
	return &Tree{root: root}
}

// Get resolves a dotted key against the tree.
func (t *Tree) Get(key string) (any, bool) {
	nodes := []*tree.Node{t.root}
	for _, segment := range strings.Split(key, ".") {
		var next []*tree.Node
		for _, node := range nodes {
			next = append(next, node.ChildrenByName(segment)...)
		}
		nodes = next
	}

	var values []any
	for _, node := range nodes {
		if node.Value != nil {
			values = append(values, node.Value)
		}
	}
	switch len(values) {
	case 0:
		return nil, false
	case 1:
		return values[0], true
	default:
		return values, true
	}
}

// Keys returns the dotted paths of all valued nodes in depth-first order,
// repeated names reported once.
func (t *Tree) Keys() []string {
	var result []string
	seen := make(map[string]bool)
	var walk func(node *tree.Node, prefix string)
	walk = func(node *tree.Node, prefix string) {
		for _, child := range node.Children {
			path := child.Name
			if prefix != "" {
				path = prefix + "." + child.Name
			}
			if child.Value != nil && !seen[path] {
				seen[path] = true
				result = append(result, path)
			}
			walk(child, path)
		}
	}
	if t.root != nil {
		walk(t.root, "")
	}
	return result
}

// Set always fails: the source is read-only.
func (t *Tree) Set(key string, value any) error {
	return ErrReadOnly
}

// Clear always fails: the source is read-only.
func (t *Tree) Clear() error {
	return ErrReadOnly
}
