package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/solgraph/ast"
)

func attr(kv ...interface{}) map[string]interface{} {
	m := map[string]interface{}{}
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i].(string)] = kv[i+1]
	}
	return m
}

// TestDictionaryInheritanceParentsFirstDedup builds Base (state "a", fn
// "shared") and Derived (state "b", fn "shared" override), with
// linearizedBaseContracts = [Derived, Base] (solc's most-derived-first
// convention). StatesByContractID/FunctionsByContractID on Derived must
// return parents-first, with the derived override of "shared" winning.
func TestDictionaryInheritanceParentsFirstDedup(t *testing.T) {
	baseA := ast.NewNode("baseA", "VariableDeclaration", "a", attr("typeString", "uint256"))
	baseShared := ast.NewNode("baseShared", "FunctionDefinition", "shared", nil)
	base := ast.NewNode("base", "ContractDefinition", "Base", attr("contractKind", "contract"), baseA, baseShared)

	derivedB := ast.NewNode("derivedB", "VariableDeclaration", "b", attr("typeString", "uint256"))
	derivedShared := ast.NewNode("derivedShared", "FunctionDefinition", "shared", nil)
	derived := ast.NewNode("derived", "ContractDefinition", "Derived",
		attr("contractKind", "contract", "linearizedBaseContracts", []string{"derived", "base"}),
		derivedB, derivedShared)

	root := ast.NewNode("root", "SourceUnit", "", nil, base, derived)
	dict := ast.NewDict(root)

	states := dict.FindWalkers(ast.Query{Kind: ast.StatesByContractID, Arg: "derived"})
	require.Len(t, states, 2)
	assert.Equal(t, "a", states[0].GetName()) // parent's state first
	assert.Equal(t, "b", states[1].GetName())

	fns := dict.FindWalkers(ast.Query{Kind: ast.FunctionsByContractID, Arg: "derived"})
	require.Len(t, fns, 1) // deduplicated by name
	assert.Equal(t, "derivedShared", fns[0].GetID(), "the derived override must win, not the base definition")
}

// TestDictionaryInheritanceFallsBackWithoutLinearizedChain covers a contract
// with no linearizedBaseContracts attribute: the chain is just itself.
func TestDictionaryInheritanceFallsBackWithoutLinearizedChain(t *testing.T) {
	fieldA := ast.NewNode("fieldA", "VariableDeclaration", "a", attr("typeString", "uint256"))
	contract := ast.NewNode("c", "ContractDefinition", "C", attr("contractKind", "contract"), fieldA)
	root := ast.NewNode("root", "SourceUnit", "", nil, contract)
	dict := ast.NewDict(root)

	states := dict.FindWalkers(ast.Query{Kind: ast.StatesByContractID, Arg: "c"})
	require.Len(t, states, 1)
	assert.Equal(t, "a", states[0].GetName())
}

// TestDictionaryLibraryByKindResolvesUsingFor covers a "using L for T"
// directive: a LibraryByKind query for the bound type resolves through the
// directive to the library contract.
func TestDictionaryLibraryByKindResolvesUsingFor(t *testing.T) {
	libFn := ast.NewNode("libFn", "FunctionDefinition", "add", nil)
	lib := ast.NewNode("lib", "ContractDefinition", "SafeMath", attr("contractKind", "library"), libFn)
	using := ast.NewNode("using1", "UsingForDirective", "", attr("libraryName", "SafeMath", "typeName", "uint256"))
	root := ast.NewNode("root", "SourceUnit", "", nil, lib, using)
	dict := ast.NewDict(root)

	libs := dict.FindWalkers(ast.Query{Kind: ast.LibraryByKind, Arg: "uint256"})
	require.Len(t, libs, 1)
	assert.Equal(t, "lib", libs[0].GetID())
}

// TestDictionaryLibraryByKindFallsBackToDirectName covers calling
// LibraryByKind with the library's own name when no "using for" directive
// binds it.
func TestDictionaryLibraryByKindFallsBackToDirectName(t *testing.T) {
	lib := ast.NewNode("lib", "ContractDefinition", "SafeMath", attr("contractKind", "library"))
	root := ast.NewNode("root", "SourceUnit", "", nil, lib)
	dict := ast.NewDict(root)

	libs := dict.FindWalkers(ast.Query{Kind: ast.LibraryByKind, Arg: "SafeMath"})
	require.Len(t, libs, 1)
}

// TestDictionaryLookupAndWalkerAt covers the plain id-based accessors.
func TestDictionaryLookupAndWalkerAt(t *testing.T) {
	n := ast.NewNode("n1", "VariableDeclaration", "x", attr("typeString", "uint256"))
	root := ast.NewNode("root", "SourceUnit", "", nil, n)
	dict := ast.NewDict(root)

	w, ok := dict.Lookup("n1")
	require.True(t, ok)
	assert.Equal(t, "x", w.GetName())

	w2, ok := dict.WalkerAt("n1")
	require.True(t, ok)
	assert.Equal(t, w, w2)

	_, ok = dict.Lookup("missing")
	assert.False(t, ok)
}

// TestDictionaryIndexesByContractID covers the descendantsOfType query used
// by the index-link family.
func TestDictionaryIndexesByContractID(t *testing.T) {
	declM := ast.NewNode("declM", "VariableDeclaration", "m", attr("typeString", "mapping(uint256 => uint256)"))
	idM := ast.NewNode("idM", "Identifier", "m", attr("referencedDeclaration", "declM"))
	idK := ast.NewNode("idK", "Identifier", "k", nil)
	index := ast.NewNode("index1", "IndexAccess", "", nil, idM, idK)
	fn := ast.NewNode("fn1", "FunctionDefinition", "get", nil, index)
	contract := ast.NewNode("c", "ContractDefinition", "C", attr("contractKind", "contract"), declM, fn)
	root := ast.NewNode("root", "SourceUnit", "", nil, contract)
	dict := ast.NewDict(root)

	ids := dict.FindIDs(ast.Query{Kind: ast.IndexesByContractID, Arg: "c"})
	require.Len(t, ids, 1)
	assert.Equal(t, "index1", ids[0])
}

// TestDictionaryContractByNameAndStructByName cover name-filtered lookups.
func TestDictionaryContractByNameAndStructByName(t *testing.T) {
	contractA := ast.NewNode("ca", "ContractDefinition", "A", attr("contractKind", "contract"))
	contractB := ast.NewNode("cb", "ContractDefinition", "B", attr("contractKind", "contract"))
	structS := ast.NewNode("s", "StructDefinition", "S", nil)
	root := ast.NewNode("root", "SourceUnit", "", nil, contractA, contractB, structS)
	dict := ast.NewDict(root)

	assert.Len(t, dict.FindWalkers(ast.Query{Kind: ast.ContractByName, Arg: "A"}), 1)
	assert.Len(t, dict.FindWalkers(ast.Query{Kind: ast.ContractByName}), 2) // empty Arg: every contract
	assert.Len(t, dict.FindWalkers(ast.Query{Kind: ast.StructByName, Arg: "S"}), 1)
	assert.Empty(t, dict.FindWalkers(ast.Query{Kind: ast.StructByName, Arg: "Missing"}))
}
