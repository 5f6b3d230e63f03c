package tree

import "reflect"

// MergeCombiner merges two node hierarchies by matching children across
// trees. The merge follows a few rules:
//
//  1. Children can be merged when every attribute they share holds the same
//     value; node1's side anchors the walk and takes precedence on values.
//  2. Only a single child of node2 is considered a match for a child of
//     node1. When several node2 children match equally and the name is not
//     registered as a list node, all of them are dropped from the result.
//  3. Attributes of merged nodes are united, node1 winning on name collision.
//  4. Children of either tree without a match are carried into the result
//     unchanged.
type MergeCombiner struct {
	ListNodes
}

// NewMergeCombiner creates a merge combiner with an empty list-node registry.
func NewMergeCombiner() *MergeCombiner {
	return &MergeCombiner{}
}

// Combine merges the two node hierarchies into a new tree. The result node
// carries node1's name and value; node2's value is discarded.
func (c *MergeCombiner) Combine(node1, node2 *Node) *Node {
	result := NewValueNode(node1.Name, node1.Value)
	combineAttributes(result, node1, node2)

	pool := make([]*Node, len(node2.Children))
	copy(pool, node2.Children)
	for _, child1 := range node1.Children {
		var child2 *Node
		child2, pool = c.canCombine(node2, child1, pool)
		if child2 != nil {
			result.AddChild(c.Combine(child1, child2))
			pool = removeNode(pool, child2)
		} else {
			result.AddChild(child1)
		}
	}

	// Carry over the remaining children of node2 in their original order.
	for _, child2 := range pool {
		result.AddChild(child2)
	}
	return result
}

// canCombine searches node2's children for the unique counterpart of child.
// Candidates share the child's name and are rejected only when one of the
// child's attributes occurs exactly once on the candidate with a different
// value; an absent attribute, or one present multiple times, does not reject.
//
// Exactly one surviving candidate is a match. With several survivors and a
// name not registered as a list node, every survivor is removed from the
// pool, so none of them reaches the result; list-node survivors stay in the
// pool and are appended later as remainder children. Either way no match is
// reported.
func (c *MergeCombiner) canCombine(node2, child *Node, pool []*Node) (*Node, []*Node) {
	var accepted []*Node
	for _, candidate := range node2.ChildrenByName(child.Name) {
		if matchesAttributes(child, candidate) {
			accepted = append(accepted, candidate)
		}
	}

	if len(accepted) == 1 {
		return accepted[0], pool
	}
	if len(accepted) > 1 && !c.IsListNode(child) {
		for _, candidate := range accepted {
			pool = removeNode(pool, candidate)
		}
	}
	return nil, pool
}

// matchesAttributes reports whether none of child's attributes contradicts
// the candidate. A nil attribute value never constrains the match.
func matchesAttributes(child, candidate *Node) bool {
	for _, attr := range child.Attributes {
		matches := candidate.AttributesByName(attr.Name)
		if len(matches) == 1 && attr.Value != nil && !reflect.DeepEqual(attr.Value, matches[0].Value) {
			return false
		}
	}
	return true
}
