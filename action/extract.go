package action

import (
	"github.com/viant/solgraph/ast"
	"github.com/viant/solgraph/cfg"
	"github.com/viant/solgraph/sgerr"
	"github.com/viant/solgraph/variable"
)

// Extract computes the Use/Kill actions a CFG vertex generates, dispatched
// on its shape.
func Extract(v cfg.Vertex, dict ast.Dictionary) ([]Action, error) {
	switch v.Shape {
	case cfg.Point:
		return nil, nil
	case cfg.DoubleCircle, cfg.Mdiamond:
		return useInvocationArgs(v, dict)
	case cfg.Diamond:
		return useEveryReferenced(v, dict)
	case cfg.Box:
		return extractBox(v, dict)
	}
	return nil, sgerr.New(sgerr.Malformed, "vertex %s has unknown shape", v.ID)
}

// useInvocationArgs handles DoubleCircle/Mdiamond: USE of each invoked
// argument's variables. The invocation node's children follow the
// [callee/modifier, arg1, arg2, …] convention; the callee itself is not a
// variable use.
func useInvocationArgs(v cfg.Vertex, dict ast.Dictionary) ([]Action, error) {
	var out []Action
	for i := 1; i < v.Node.ChildCount(); i++ {
		acts, err := useRoots(ast.CollectAccessRoots(v.Node.Child(i)), v.ID, dict)
		if err != nil {
			return nil, err
		}
		out = append(out, acts...)
	}
	return out, nil
}

// useEveryReferenced handles Diamond (and the no-assignment Box fallback):
// USE of every variable referenced anywhere in the vertex's AST node.
func useEveryReferenced(v cfg.Vertex, dict ast.Dictionary) ([]Action, error) {
	return useRoots(ast.CollectAccessRoots(v.Node), v.ID, dict)
}

func useRoots(roots []ast.Walker, vertexID string, dict ast.Dictionary) ([]Action, error) {
	var out []Action
	for _, root := range roots {
		vars, err := variable.GetVariables(root, dict)
		if err != nil {
			return nil, err
		}
		for _, vr := range vars {
			out = append(out, NewUse(vr, vertexID))
		}
	}
	return out, nil
}

// extractBox emits, per (lhs, rhs, op) assignment, Kill/Use actions under
// the Equal/Other rule; a statement with no assignments at all falls back
// to USE of every referenced variable.
func extractBox(v cfg.Vertex, dict ast.Dictionary) ([]Action, error) {
	assigns, err := ast.Assignments(v.Node)
	if err != nil {
		return nil, err
	}
	if len(assigns) == 0 {
		return useEveryReferenced(v, dict)
	}

	var out []Action
	for _, a := range assigns {
		lhsVars, err := flattenExpr(a.Lhs, dict, true)
		if err != nil {
			return nil, err
		}
		rhsVars, err := flattenExpr(a.Rhs, dict, false)
		if err != nil {
			return nil, err
		}
		switch a.Op {
		case ast.OpEqual:
			for _, l := range lhsVars {
				out = append(out, NewKill(l, v.ID))
			}
			for _, r := range rhsVars {
				out = append(out, NewUse(r, v.ID))
			}
		case ast.OpOther:
			for _, l := range lhsVars {
				out = append(out, NewKill(l, v.ID))
				out = append(out, NewUse(l, v.ID))
			}
			for _, r := range rhsVars {
				out = append(out, NewUse(r, v.ID))
			}
		}
	}
	return out, nil
}

// flattenExpr resolves an assignment side (lhs or rhs) into its flat
// variables. Each side may be an arbitrary expression (e.g. "y + 20"), so it
// is first decomposed into its access-chain roots before flattening each —
// an lhs target (target true) that is already a single access chain or a
// declaration yields itself unchanged, so the index of "m[k] = …" is not
// killed.
func flattenExpr(sides []ast.Walker, dict ast.Dictionary, target bool) ([]variable.Variable, error) {
	var out []variable.Variable
	for _, side := range sides {
		roots := ast.CollectAccessRoots(side)
		switch side.Type() {
		case "Identifier", "MemberAccess", "IndexAccess", "VariableDeclaration":
			if target {
				roots = []ast.Walker{side}
			}
		}
		for _, root := range roots {
			vars, err := variable.GetVariables(root, dict)
			if err != nil {
				return nil, err
			}
			out = append(out, vars...)
		}
	}
	return out, nil
}
