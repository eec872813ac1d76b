// Package link defines DataLink, the directed data-dependency edge both
// the per-function DFG and the whole-contract Network produce, plus a
// highwayhash-keyed Set that deduplicates them by full tuple equality.
package link

import "github.com/viant/solgraph/variable"

// Endpoint is one (Variable, vertex_id) pair — a DataLink's From or To.
type Endpoint struct {
	Variable variable.Variable
	VertexID string
}

// StackOp tags what a Network-level link does to the context-sensitive
// traversal's call stack.
type StackOp int

const (
	// NoOp links carry no stack annotation — every intra-DFG link and the
	// assignment/index links the Network builds within a single function.
	NoOp StackOp = iota
	Push
	Pop
)

// StackContext is the per-link Push/Pop annotation a call/return link
// carries for Traverse's call-stack discipline.
type StackContext struct {
	Op     StackOp
	CallID string
}

// DataLink is the directed edge of a (Variable, vertex) pair flowing into
// another, carrying the label variable the link was derived from and (for
// Network-level call links) a stack context.
type DataLink struct {
	From  Endpoint
	To    Endpoint
	Label variable.Variable
	Stack StackContext
}

// Key is DataLink's full-tuple identity, used for dedup.
func (d DataLink) Key() string {
	return d.From.VertexID + "\x00" + d.From.Variable.Attributes + "\x00" +
		d.To.VertexID + "\x00" + d.To.Variable.Attributes + "\x00" +
		d.Label.Attributes + "\x00" + stackKey(d.Stack)
}

func stackKey(s StackContext) string {
	switch s.Op {
	case Push:
		return "push:" + s.CallID
	case Pop:
		return "pop:" + s.CallID
	default:
		return ""
	}
}
