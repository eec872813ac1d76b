package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/solgraph/ast"
)

// TestAssignmentsEqualOperator covers a plain "=" Assignment node.
func TestAssignmentsEqualOperator(t *testing.T) {
	lhs := ast.NewNode("lhs", "Identifier", "x", nil)
	rhs := ast.NewNode("rhs", "Identifier", "y", nil)
	assign := ast.NewNode("a1", "Assignment", "", attr("operator", "="), lhs, rhs)

	as, err := ast.Assignments(assign)
	require.NoError(t, err)
	require.Len(t, as, 1)
	assert.Equal(t, ast.OpEqual, as[0].Op)
	assert.Equal(t, []ast.Walker{lhs}, as[0].Lhs)
	assert.Equal(t, []ast.Walker{rhs}, as[0].Rhs)
}

// TestAssignmentsCompoundOperator covers "+=" and friends classifying as
// OpOther.
func TestAssignmentsCompoundOperator(t *testing.T) {
	lhs := ast.NewNode("lhs", "Identifier", "x", nil)
	rhs := ast.NewNode("rhs", "Identifier", "y", nil)
	assign := ast.NewNode("a1", "Assignment", "", attr("operator", "+="), lhs, rhs)

	as, err := ast.Assignments(assign)
	require.NoError(t, err)
	require.Len(t, as, 1)
	assert.Equal(t, ast.OpOther, as[0].Op)
}

// TestAssignmentsMissingChildIsMalformed covers the malformed case: an
// Assignment node with fewer than 2 children is a fatal-per-function error.
func TestAssignmentsMissingChildIsMalformed(t *testing.T) {
	lhs := ast.NewNode("lhs", "Identifier", "x", nil)
	assign := ast.NewNode("a1", "Assignment", "", attr("operator", "="), lhs)

	_, err := ast.Assignments(assign)
	require.Error(t, err)
}

// TestAssignmentsVariableDeclarationStatementWithInitializer covers
// "uint256 x = y;" — lhs is the declaration, rhs (if present) is child 1.
func TestAssignmentsVariableDeclarationStatementWithInitializer(t *testing.T) {
	declX := ast.NewNode("declX", "VariableDeclaration", "x", attr("typeString", "uint256"))
	rhs := ast.NewNode("rhs", "Identifier", "y", nil)
	stmt := ast.NewNode("stmt1", "VariableDeclarationStatement", "", nil, declX, rhs)

	as, err := ast.Assignments(stmt)
	require.NoError(t, err)
	require.Len(t, as, 1)
	assert.Equal(t, ast.OpEqual, as[0].Op)
	assert.Equal(t, []ast.Walker{declX}, as[0].Lhs)
	assert.Equal(t, []ast.Walker{rhs}, as[0].Rhs)
}

// TestAssignmentsVariableDeclarationStatementWithoutInitializer covers
// "uint256 x;" as a statement — no rhs.
func TestAssignmentsVariableDeclarationStatementWithoutInitializer(t *testing.T) {
	declX := ast.NewNode("declX", "VariableDeclaration", "x", attr("typeString", "uint256"))
	stmt := ast.NewNode("stmt1", "VariableDeclarationStatement", "", nil, declX)

	as, err := ast.Assignments(stmt)
	require.NoError(t, err)
	require.Len(t, as, 1)
	assert.Nil(t, as[0].Rhs)
}

// TestAssignmentsBareStateVariableDeclaration covers a state variable with
// no initializer: a leaf VariableDeclaration with no children at all.
func TestAssignmentsBareStateVariableDeclaration(t *testing.T) {
	declX := ast.NewNode("declX", "VariableDeclaration", "x", attr("typeString", "uint256"))

	as, err := ast.Assignments(declX)
	require.NoError(t, err)
	require.Len(t, as, 1)
	assert.Equal(t, ast.OpEqual, as[0].Op)
	assert.Equal(t, []ast.Walker{declX}, as[0].Lhs)
	assert.Nil(t, as[0].Rhs)
}

// TestAssignmentsParameterList covers a function's parameter list: one
// Equal assignment per parameter, each with empty rhs (the defined
// parameter is killed, not assigned from an expression).
func TestAssignmentsParameterList(t *testing.T) {
	p1 := ast.NewNode("p1", "VariableDeclaration", "a", attr("typeString", "uint256"))
	p2 := ast.NewNode("p2", "VariableDeclaration", "b", attr("typeString", "uint256"))
	params := ast.NewNode("params1", "ParameterList", "", nil, p1, p2)

	as, err := ast.Assignments(params)
	require.NoError(t, err)
	require.Len(t, as, 2)
	assert.Equal(t, []ast.Walker{p1}, as[0].Lhs)
	assert.Equal(t, []ast.Walker{p2}, as[1].Lhs)
	for _, a := range as {
		assert.Equal(t, ast.OpEqual, a.Op)
		assert.Nil(t, a.Rhs)
	}
}

// TestAssignmentsUnhandledNodeTypeReturnsNil covers the "no assignment at
// all" fallback (the caller falls back to USE of every referenced variable).
func TestAssignmentsUnhandledNodeTypeReturnsNil(t *testing.T) {
	cond := ast.NewNode("cond1", "BinaryOperation", "", nil)
	as, err := ast.Assignments(cond)
	require.NoError(t, err)
	assert.Nil(t, as)
}
