package ast

import "github.com/viant/solgraph/sgerr"

// QueryKind enumerates the six lookup shapes FindIDs/FindWalkers support.
type QueryKind int

const (
	ContractByName QueryKind = iota
	StructByName
	LibraryByKind
	StatesByContractID
	FunctionsByContractID
	IndexesByContractID
)

// Query is one find_ids/find_walkers request.
type Query struct {
	Kind QueryKind
	Arg  string
}

// Dictionary is the consumed external lookup interface this module builds
// on.
type Dictionary interface {
	Lookup(id string) (Walker, bool)
	WalkerAt(id string) (Walker, bool)
	FindIDs(q Query) []string
	FindWalkers(q Query) []Walker
}

// Dict is an in-memory reference Dictionary built from a root Node,
// sufficient to drive the flattening/DFG/Network algorithms without a real
// Solidity-to-AST compiler. Construct with NewDict and the root SourceUnit.
type Dict struct {
	root      *Node
	byID      map[string]*Node
	named     map[string][]*Node // nodeType -> nodes, insertion order
	usingFor  map[string]string  // typeName -> libraryName, from "using L for T" directives
}

// NewDict indexes every node reachable from root by id and by nodeType.
func NewDict(root *Node) *Dict {
	d := &Dict{root: root, byID: map[string]*Node{}, named: map[string][]*Node{}, usingFor: map[string]string{}}
	d.index(root)
	return d
}

func (d *Dict) index(n *Node) {
	if n == nil {
		return
	}
	d.byID[n.ID] = n
	d.named[n.NodeType] = append(d.named[n.NodeType], n)
	if n.NodeType == "UsingForDirective" {
		lib, _ := n.Attribute("libraryName")
		typ, _ := n.Attribute("typeName")
		if lib != "" && typ != "" {
			d.usingFor[typ] = lib
		}
	}
	for _, c := range n.Children {
		d.index(c)
	}
}

func (d *Dict) Lookup(id string) (Walker, bool) {
	n, ok := d.byID[id]
	if !ok {
		return nil, false
	}
	return n, true
}

// WalkerAt is an alias for Lookup.
func (d *Dict) WalkerAt(id string) (Walker, bool) { return d.Lookup(id) }

func (d *Dict) FindWalkers(q Query) []Walker {
	nodes := d.find(q)
	out := make([]Walker, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n)
	}
	return out
}

func (d *Dict) FindIDs(q Query) []string {
	nodes := d.find(q)
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID)
	}
	return out
}

func (d *Dict) find(q Query) []*Node {
	switch q.Kind {
	case ContractByName:
		if q.Arg == "" {
			return d.named["ContractDefinition"]
		}
		return filterByName(d.named["ContractDefinition"], q.Arg)
	case StructByName:
		return filterByName(d.named["StructDefinition"], q.Arg)
	case LibraryByKind:
		// q.Arg is a bare type name; resolve it through "using L for T"
		// directives first, falling back to
		// treating q.Arg itself as a library name so a flatten call that
		// already knows the library's own name still works.
		libName := q.Arg
		if bound, ok := d.usingFor[q.Arg]; ok {
			libName = bound
		}
		var out []*Node
		for _, n := range d.named["ContractDefinition"] {
			if kind, _ := n.Attribute("contractKind"); kind == "library" && n.Name == libName {
				out = append(out, n)
			}
		}
		return out
	case StatesByContractID:
		return d.inheritedMembers(q.Arg, "VariableDeclaration")
	case FunctionsByContractID:
		return d.inheritedMembers(q.Arg, "FunctionDefinition")
	case IndexesByContractID:
		return d.descendantsOfType(q.Arg, "IndexAccess")
	}
	return nil
}

func filterByName(nodes []*Node, name string) []*Node {
	var out []*Node
	for _, n := range nodes {
		if n.Name == name {
			out = append(out, n)
		}
	}
	return out
}

// inheritedMembers returns direct children of kind childType from every
// contract in the linearized base-contract chain (solc's
// "linearizedBaseContracts", most-derived-first), reordered parents-first
// and deduplicated by name keeping the most-derived override.
func (d *Dict) inheritedMembers(contractID, childType string) []*Node {
	contract, ok := d.byID[contractID]
	if !ok {
		return nil
	}
	chain := d.linearizedChain(contract)
	// chain is most-derived-first; walk it in reverse for parents-first order.
	var order []string
	byName := map[string]*Node{}
	for i := len(chain) - 1; i >= 0; i-- {
		base := chain[i]
		for _, c := range base.Children {
			if c.NodeType != childType {
				continue
			}
			if _, seen := byName[c.Name]; !seen {
				order = append(order, c.Name)
			}
			byName[c.Name] = c // later (more-derived) occurrence wins, same slot
		}
	}
	out := make([]*Node, 0, len(order))
	for _, name := range order {
		out = append(out, byName[name])
	}
	return out
}

// linearizedChain resolves "linearizedBaseContracts" (a list of contract
// ids, most-derived-first) into Nodes, falling back to just the contract
// itself when the attribute is absent or a base id is unresolved — an
// unresolved base is not fatal, in the same spirit as promoting an
// unresolved identifier to Global during flattening.
func (d *Dict) linearizedChain(contract *Node) []*Node {
	ids, ok := contract.Attributes["linearizedBaseContracts"]
	if !ok {
		return []*Node{contract}
	}
	list, ok := baseContractIDs(ids)
	if !ok {
		return []*Node{contract}
	}
	out := make([]*Node, 0, len(list))
	for _, id := range list {
		if n, ok := d.byID[id]; ok {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return []*Node{contract}
	}
	return out
}

// baseContractIDs normalizes "linearizedBaseContracts" into a []string.
// A document loaded through ast.Decode/encoding/json always materializes a
// JSON array into []interface{}, never []string, so both shapes must be
// accepted — []string only ever occurs when a Node is built directly in
// Go, e.g. in tests.
func baseContractIDs(ids interface{}) ([]string, bool) {
	switch v := ids.(type) {
	case []string:
		return v, true
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, elem := range v {
			s, ok := elem.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

func (d *Dict) descendantsOfType(rootID, nodeType string) []*Node {
	root, ok := d.byID[rootID]
	if !ok {
		return nil
	}
	var out []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.NodeType == nodeType {
			out = append(out, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return out
}

// ErrMissingRoot is the Malformed error value for a Dictionary with no root
// node. No function in this package returns it.
var ErrMissingRoot = sgerr.New(sgerr.Malformed, "dictionary has no root node")
