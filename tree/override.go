package tree

// OverrideCombiner combines two node hierarchies with node1 taking
// precedence. A child of node1 overrides the same-named child of node2 when
// the name occurs exactly once on both sides and is not registered as a list
// node; the pair is then combined recursively. All other children are
// appended, node1's first, then the node2 children without a counterpart.
type OverrideCombiner struct {
	ListNodes
}

// NewOverrideCombiner creates an override combiner with an empty list-node
// registry.
func NewOverrideCombiner() *OverrideCombiner {
	return &OverrideCombiner{}
}

// Combine merges the two node hierarchies into a new tree. The result node
// carries node1's value; node2's value is used only when node1 has none.
func (c *OverrideCombiner) Combine(node1, node2 *Node) *Node {
	result := NewNode(node1.Name)
	combineAttributes(result, node1, node2)

	for _, child1 := range node1.Children {
		child2 := c.overriddenChild(node1, node2, child1)
		if child2 != nil {
			result.AddChild(c.Combine(child1, child2))
		} else {
			result.AddChild(child1)
		}
	}
	for _, child2 := range node2.Children {
		if node1.ChildCount(child2.Name) == 0 || c.IsListNode(child2) {
			result.AddChild(child2)
		}
	}

	if node1.Value != nil {
		result.Value = node1.Value
	} else {
		result.Value = node2.Value
	}
	return result
}

// overriddenChild returns the node2 child overridden by child1, or nil when
// the pair is ambiguous or the name is registered as a list node.
func (c *OverrideCombiner) overriddenChild(node1, node2, child1 *Node) *Node {
	if c.IsListNode(child1) {
		return nil
	}
	if node1.ChildCount(child1.Name) != 1 || node2.ChildCount(child1.Name) != 1 {
		return nil
	}
	return node2.ChildrenByName(child1.Name)[0]
}
