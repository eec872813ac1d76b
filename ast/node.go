// Package ast models the consumed, external interfaces this module builds
// on: the compiled AST (produced by a Solidity-to-AST compiler driver, out
// of scope here) and the Dictionary that offers lookup by id/name/role
// over it.
//
// Node is a generic, solc-AST-shaped document node: nodeType, name, a flat
// attribute bag, and ordered children. It is deliberately permissive — the
// real compiler driver and AST walker are named interfaces only, so this
// gives the core analyzer something concrete to run against and gives
// tests a document to build by hand.
package ast

// Node is one node of the compiled AST document.
type Node struct {
	ID         string
	NodeType   string
	Name       string
	Attributes map[string]interface{}
	Children   []*Node
	parent     *Node
}

// NewNode constructs a Node and wires parent pointers for its children.
func NewNode(id, nodeType, name string, attrs map[string]interface{}, children ...*Node) *Node {
	n := &Node{ID: id, NodeType: nodeType, Name: name, Attributes: attrs, Children: children}
	if n.Attributes == nil {
		n.Attributes = map[string]interface{}{}
	}
	for _, c := range children {
		c.parent = n
	}
	return n
}

// AddChild appends a child and wires its parent pointer.
func (n *Node) AddChild(c *Node) {
	c.parent = n
	n.Children = append(n.Children, c)
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() Walker {
	if n == nil || n.parent == nil {
		return nil
	}
	return n.parent
}

// Attribute returns a string-typed attribute.
func (n *Node) Attribute(key string) (string, bool) {
	v, ok := n.Attributes[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// AttributeInt returns a uint32-typed attribute (AST node ids, byte offsets).
func (n *Node) AttributeInt(key string) (int, bool) {
	v, ok := n.Attributes[key]
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case int:
		return t, true
	case float64:
		return int(t), true
	}
	return 0, false
}

// AttributeBool returns a bool-typed attribute.
func (n *Node) AttributeBool(key string) (bool, bool) {
	v, ok := n.Attributes[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// ReferencedDeclaration returns the "referencedDeclaration" attribute, the
// solc-AST convention for "this Identifier/MemberAccess names that decl id".
func (n *Node) ReferencedDeclaration() (string, bool) {
	return n.Attribute("referencedDeclaration")
}

// TypeString returns the "typeString" attribute — the AST's recorded kind,
// e.g. "uint256", "struct Foo", "mapping(uint256 => Bar)".
func (n *Node) TypeString() (string, bool) {
	return n.Attribute("typeString")
}

// Source returns the "source" attribute — the original textual form,
// preserved for diagnostics (Variable.Src).
func (n *Node) Source() (string, bool) {
	return n.Attribute("source")
}

// WalkerChildren adapts Children to the Walker interface.
func (n *Node) WalkerChildren() []Walker {
	out := make([]Walker, 0, len(n.Children))
	for _, c := range n.Children {
		out = append(out, c)
	}
	return out
}

var _ Walker = (*Node)(nil)

func (n *Node) GetID() string   { return n.ID }
func (n *Node) Type() string    { return n.NodeType }
func (n *Node) GetName() string { return n.Name }
func (n *Node) Child(i int) Walker {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}
func (n *Node) ChildCount() int { return len(n.Children) }
