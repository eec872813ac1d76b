package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/solgraph/ast"
	"github.com/viant/solgraph/cfg"
	"github.com/viant/solgraph/network"
	"github.com/viant/solgraph/report"
)

func attr(kv ...string) map[string]interface{} {
	m := map[string]interface{}{}
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	return m
}

func assignNode(id, op string, lhs, rhs *ast.Node) *ast.Node {
	a := map[string]interface{}{"operator": op}
	return ast.NewNode(id, "Assignment", "", a, lhs, rhs)
}

func buildKillUseNetwork(t *testing.T) *network.Network {
	t.Helper()
	declX := ast.NewNode("declX", "VariableDeclaration", "x", attr("typeString", "uint256"))
	declY := ast.NewNode("declY", "VariableDeclaration", "y", attr("typeString", "uint256"))
	root := ast.NewNode("root", "SourceUnit", "", nil, declX, declY)
	dict := ast.NewDict(root)

	litY1 := ast.NewNode("lit1", "Literal", "", attr("typeString", "int_const_1"))
	idY1 := ast.NewNode("idY1", "Identifier", "y", attr("typeString", "uint256", "referencedDeclaration", "declY"))
	v1Node := assignNode("assign1", "=", idY1, litY1)

	idX2 := ast.NewNode("idX2", "Identifier", "x", attr("typeString", "uint256", "referencedDeclaration", "declX"))
	idY2 := ast.NewNode("idY2", "Identifier", "y", attr("typeString", "uint256", "referencedDeclaration", "declY"))
	v2Node := assignNode("assign2", "=", idX2, idY2)

	g := cfg.NewGraph("f")
	g.AddVertex(cfg.Vertex{ID: "entry", Shape: cfg.Point}).SetEntry("entry")
	g.AddVertex(cfg.Vertex{ID: "v1", Shape: cfg.Box, Node: v1Node})
	g.AddVertex(cfg.Vertex{ID: "v2", Shape: cfg.Box, Node: v2Node})
	g.AddVertex(cfg.Vertex{ID: "exit", Shape: cfg.Point}).SetExit("exit")
	g.AddEdge("entry", "v1")
	g.AddEdge("v1", "v2")
	g.AddEdge("v2", "exit")

	net, err := network.Build("c", []cfg.CFG{g}, dict)
	require.NoError(t, err)
	return net
}

func TestReportFromNetwork(t *testing.T) {
	net := buildKillUseNetwork(t)
	r := report.From(net)

	assert.Equal(t, "c", r.ContractID)
	require.Len(t, r.Links, 1)
	assert.Equal(t, "y", r.Links[0].From.Variable)
	assert.Equal(t, "v2", r.Links[0].From.VertexID)
	assert.Equal(t, "y", r.Links[0].To.Variable)
	assert.Equal(t, "v1", r.Links[0].To.VertexID)
	assert.Empty(t, r.Links[0].Push)
	assert.Empty(t, r.Links[0].Pop)
}

func TestReportYAMLRoundTrip(t *testing.T) {
	net := buildKillUseNetwork(t)
	r := report.From(net)

	out, err := r.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "contractId: c")
	assert.Contains(t, string(out), "variable: y")
}

func TestReportJSONRoundTrip(t *testing.T) {
	net := buildKillUseNetwork(t)
	r := report.From(net)

	out, err := r.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(out), `"contractId": "c"`)
	assert.Contains(t, string(out), `"variable": "y"`)
}
