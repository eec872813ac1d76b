// Package action implements the Action tagged union: a Use or a
// Kill of a Variable, attached to the CFG vertex id it occurred at.
package action

import "github.com/viant/solgraph/variable"

// Kind distinguishes a Use from a Kill. A tagged struct with an exhaustive
// switch, not an interface — the Use/Kill variant set is small and closed,
// so dynamic dispatch would only add indirection.
type Kind int

const (
	Use Kind = iota
	Kill
)

func (k Kind) String() string {
	if k == Kill {
		return "Kill"
	}
	return "Use"
}

// Action is one Use(Variable, vertex_id) or Kill(Variable, vertex_id)
// record.
type Action struct {
	Kind     Kind
	Variable variable.Variable
	VertexID string
}

// NewUse builds a Use action.
func NewUse(v variable.Variable, vertexID string) Action {
	return Action{Kind: Use, Variable: v, VertexID: vertexID}
}

// NewKill builds a Kill action.
func NewKill(v variable.Variable, vertexID string) Action {
	return Action{Kind: Kill, Variable: v, VertexID: vertexID}
}
