package tree

// Node is a named element of a configuration tree. A node carries an optional
// scalar value, an ordered list of attribute nodes and an ordered list of
// child nodes. Attributes and children share the Node type and are
// distinguished only by the list they live in; names are not unique in either
// list, several entries may share a name.
type Node struct {
	Name       string  // node name
	Value      any     // optional scalar value (nil when absent)
	Attributes []*Node // ordered attribute nodes
	Children   []*Node // ordered child nodes
}

// NewNode creates a node with the given name and no value.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// NewValueNode creates a node with the given name and value.
func NewValueNode(name string, value any) *Node {
	return &Node{Name: name, Value: value}
}

// AddChild appends a child node.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// AddAttribute appends an attribute node.
func (n *Node) AddAttribute(attr *Node) *Node {
	n.Attributes = append(n.Attributes, attr)
	return n
}

// ChildrenByName returns all children with the given name in order.
// A nil node or nil child list yields no results.
func (n *Node) ChildrenByName(name string) []*Node {
	if n == nil {
		return nil
	}
	var result []*Node
	for _, child := range n.Children {
		if child.Name == name {
			result = append(result, child)
		}
	}
	return result
}

// AttributesByName returns all attributes with the given name in order.
func (n *Node) AttributesByName(name string) []*Node {
	if n == nil {
		return nil
	}
	var result []*Node
	for _, attr := range n.Attributes {
		if attr.Name == name {
			result = append(result, attr)
		}
	}
	return result
}

// Attribute returns the first attribute with the given name, or nil.
func (n *Node) Attribute(name string) *Node {
	if n == nil {
		return nil
	}
	for _, attr := range n.Attributes {
		if attr.Name == name {
			return attr
		}
	}
	return nil
}

// AttributeCount returns the number of attributes with the given name.
func (n *Node) AttributeCount(name string) int {
	if n == nil {
		return 0
	}
	count := 0
	for _, attr := range n.Attributes {
		if attr.Name == name {
			count++
		}
	}
	return count
}

// ChildCount returns the number of children with the given name.
func (n *Node) ChildCount(name string) int {
	if n == nil {
		return 0
	}
	count := 0
	for _, child := range n.Children {
		if child.Name == name {
			count++
		}
	}
	return count
}

// Clone creates a deep copy of the node tree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	result := &Node{
		Name:  n.Name,
		Value: n.Value,
	}
	if len(n.Attributes) > 0 {
		result.Attributes = make([]*Node, len(n.Attributes))
		for i, attr := range n.Attributes {
			result.Attributes[i] = attr.Clone()
		}
	}
	if len(n.Children) > 0 {
		result.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			result.Children[i] = child.Clone()
		}
	}
	return result
}
