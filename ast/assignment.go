package ast

import "github.com/viant/solgraph/sgerr"

// AssignOp distinguishes a plain "=" from a compound operator ("+=", "|=",
// "^=", …).
type AssignOp int

const (
	OpEqual AssignOp = iota
	OpOther
)

// Assignment is one (lhs, rhs, op) triple extracted from a statement.
// Lhs/Rhs hold expression roots, not yet flattened variables.
type Assignment struct {
	Lhs []Walker
	Rhs []Walker
	Op  AssignOp
}

// Assignments extracts the assignment(s) a statement-shaped vertex carries:
//
//   - "Assignment" nodes: operator attribute decides Equal vs Other; child 0
//     is lhs, child 1 is rhs (see the redesign note below).
//   - "VariableDeclarationStatement": child 0 is lhs, child 1 (if present)
//     is rhs — documented assumption, not validated against tuple
//     destructuring shapes.
//   - "VariableDeclaration" with no children (a state variable with no
//     initializer): Equal with empty rhs.
//   - "ParameterList": one Equal assignment per parameter, empty rhs.
//
// A nil, nil return means the vertex carries no assignment at all (the
// caller falls back to a plain USE of every referenced variable).
//
// Using child index 0/1 as lhs/rhs is fragile for tuple assignments
// ("(a, b) = f"); a production implementation should validate the node
// shape against the compiler's own AST documentation before trusting
// positional children. This reference implementation keeps that behavior
// and documents the assumption rather than guessing at an undocumented
// tuple encoding.
func Assignments(w Walker) ([]Assignment, error) {
	switch w.Type() {
	case "Assignment":
		if w.ChildCount() < 2 {
			return nil, sgerr.New(sgerr.Malformed, "Assignment node %s missing lhs/rhs children", w.GetID())
		}
		op := OpEqual
		if operator, ok := w.Attribute("operator"); ok && operator != "=" {
			op = OpOther
		}
		return []Assignment{{Lhs: []Walker{w.Child(0)}, Rhs: []Walker{w.Child(1)}, Op: op}}, nil

	case "VariableDeclarationStatement":
		if w.ChildCount() == 0 {
			return nil, sgerr.New(sgerr.Malformed, "VariableDeclarationStatement %s has no declarations", w.GetID())
		}
		a := Assignment{Lhs: []Walker{w.Child(0)}, Op: OpEqual}
		if w.ChildCount() > 1 {
			a.Rhs = []Walker{w.Child(1)}
		}
		return []Assignment{a}, nil

	case "VariableDeclaration":
		if w.ChildCount() != 0 {
			return nil, nil
		}
		return []Assignment{{Lhs: []Walker{w}, Op: OpEqual}}, nil

	case "ParameterList":
		out := make([]Assignment, 0, w.ChildCount())
		for i := 0; i < w.ChildCount(); i++ {
			out = append(out, Assignment{Lhs: []Walker{w.Child(i)}, Op: OpEqual})
		}
		return out, nil
	}
	return nil, nil
}
