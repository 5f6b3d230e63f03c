package tree

// Combiner merges two node hierarchies into one combined tree. Combiners are
// pure over their inputs: source trees are only read, never mutated, and the
// result is built bottom-up during a single call. A result tree may share
// subtrees with its inputs; inputs are treated as immutable for the duration
// of the call.
type Combiner interface {
	Combine(node1, node2 *Node) *Node
}

// ListNodes tracks node names that are expected to repeat without positional
// disambiguation, e.g. because they commonly carry no distinguishing
// attributes. Registered names are exempt from a combiner's ambiguity
// handling. The registry is not synchronized; callers coordinate concurrent
// access.
type ListNodes struct {
	names map[string]bool
}

// AddListNode registers one or more names as repeatable list nodes.
func (l *ListNodes) AddListNode(names ...string) {
	if l.names == nil {
		l.names = make(map[string]bool)
	}
	for _, name := range names {
		l.names[name] = true
	}
}

// IsListNode reports whether the node's name is registered as a list node.
func (l *ListNodes) IsListNode(node *Node) bool {
	if node == nil {
		return false
	}
	return l.names[node.Name]
}

// combineAttributes copies all of node1's attributes to the result and then
// appends every node2 attribute whose name does not appear on node1. On a
// name collision node1 wins; attribute values are never compared here, only
// existence by name matters.
func combineAttributes(result, node1, node2 *Node) {
	result.Attributes = append(result.Attributes, node1.Attributes...)
	for _, attr := range node2.Attributes {
		if node1.AttributeCount(attr.Name) == 0 {
			result.AddAttribute(attr)
		}
	}
}

// removeNode removes the first occurrence of target (by identity) from nodes.
func removeNode(nodes []*Node, target *Node) []*Node {
	for i, node := range nodes {
		if node == target {
			return append(nodes[:i], nodes[i+1:]...)
		}
	}
	return nodes
}
