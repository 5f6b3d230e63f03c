package tree

// UnionCombiner constructs a union of two node hierarchies: the result holds
// the attribute union (node1 winning on name collision) and all children of
// both nodes, node1's first, without any matching. Repeated names are kept.
type UnionCombiner struct{}

// NewUnionCombiner creates a union combiner.
func NewUnionCombiner() *UnionCombiner {
	return &UnionCombiner{}
}

// Combine builds the union of the two node hierarchies. The result node
// carries node1's name and value.
func (c *UnionCombiner) Combine(node1, node2 *Node) *Node {
	result := NewValueNode(node1.Name, node1.Value)
	combineAttributes(result, node1, node2)
	result.Children = append(result.Children, node1.Children...)
	result.Children = append(result.Children, node2.Children...)
	return result
}
