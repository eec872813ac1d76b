// Package cfg models the consumed, external per-function control-flow
// graph: shape-tagged vertices, directed edges, execution paths, and the
// index/call/return/parameter site tables the Network stitches across
// functions.
package cfg

import "github.com/viant/solgraph/ast"

// Shape tags a vertex with one of the five closed CFG vertex shapes. A
// tagged enum with exhaustive switches, never dynamic dispatch, since the
// variant set is small and fixed.
type Shape int

const (
	// Point is a synthetic entry/exit vertex; it generates no actions.
	Point Shape = iota
	// Box is a statement vertex.
	Box
	// Diamond is a branch-condition vertex.
	Diamond
	// DoubleCircle is a function-call vertex.
	DoubleCircle
	// Mdiamond is a modifier-invocation vertex.
	Mdiamond
)

// DotString renders the shape the way the DOT exporter spells it.
func (s Shape) DotString() string {
	switch s {
	case Box:
		return "box"
	case Diamond:
		return "diamond"
	case DoubleCircle:
		return "doublecircle"
	case Mdiamond:
		return "Mdiamond"
	default:
		return "point"
	}
}

func (s Shape) String() string {
	switch s {
	case Point:
		return "Point"
	case Box:
		return "Box"
	case Diamond:
		return "Diamond"
	case DoubleCircle:
		return "DoubleCircle"
	case Mdiamond:
		return "Mdiamond"
	default:
		return "Unknown"
	}
}

// Vertex is one CFG node: its id, shape, and (for every shape but Point)
// the AST node whose actions it carries.
type Vertex struct {
	ID    string
	Shape Shape
	Node  ast.Walker
}

// Edge is one directed CFG edge.
type Edge struct {
	From string
	To   string
}

// IndexSite records one IndexAccess site's AST-id shape:
// base, index, and any extra children (e.g. a chained "extra" argument to
// a library call resolved through the base).
type IndexSite struct {
	ID    string
	Base  string
	Index string
	Extra []string
}

// CallSite records one FunctionCall site's AST-id shape: the callee
// expression id and the invoked argument ids, in order.
type CallSite struct {
	ID     string
	Callee string
	Args   []string
}

// CFG is the per-function consumed interface this module builds on.
type CFG interface {
	FunctionID() string
	Vertices() []Vertex
	Edges() []Edge
	ExecutionPaths() [][]string
	Indexes() map[string]IndexSite
	FCalls() map[string]CallSite
	Returns() map[string][]string
	Parameters() map[string][]string
}
