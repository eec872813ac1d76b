package cfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/solgraph/cfg"
)

// buildDiamond builds entry -> cond -> {thenB, elseB} -> exit.
func buildDiamond() *cfg.Graph {
	g := cfg.NewGraph("f")
	g.AddVertex(cfg.Vertex{ID: "entry", Shape: cfg.Point}).SetEntry("entry")
	g.AddVertex(cfg.Vertex{ID: "cond", Shape: cfg.Diamond})
	g.AddVertex(cfg.Vertex{ID: "thenB", Shape: cfg.Box})
	g.AddVertex(cfg.Vertex{ID: "elseB", Shape: cfg.Box})
	g.AddVertex(cfg.Vertex{ID: "exit", Shape: cfg.Point}).SetExit("exit")

	g.AddEdge("entry", "cond")
	g.AddEdge("cond", "thenB")
	g.AddEdge("cond", "elseB")
	g.AddEdge("thenB", "exit")
	g.AddEdge("elseB", "exit")
	return g
}

func TestGraphPredsSuccsSorted(t *testing.T) {
	g := buildDiamond()
	assert.ElementsMatch(t, []string{"thenB", "elseB"}, g.Succs("cond"))
	assert.Equal(t, []string{"elseB", "thenB"}, g.Succs("cond")) // sorted lexicographically
	assert.Equal(t, []string{"cond"}, g.Preds("thenB"))
	assert.Equal(t, []string{"elseB", "thenB"}, g.Preds("exit"))
}

func TestGraphExecutionPathsCoversBothBranches(t *testing.T) {
	g := buildDiamond()
	paths := g.ExecutionPaths()
	require.Len(t, paths, 2)
	var last []string
	for _, p := range paths {
		last = append(last, p[len(p)-2]) // the branch vertex right before exit
	}
	assert.ElementsMatch(t, []string{"thenB", "elseB"}, last)
	for _, p := range paths {
		assert.Equal(t, "entry", p[0])
		assert.Equal(t, "exit", p[len(p)-1])
	}
}

func TestGraphVerticesAndEdgesRoundTrip(t *testing.T) {
	g := buildDiamond()
	assert.Len(t, g.Vertices(), 5)
	assert.Len(t, g.Edges(), 5)
}

func TestGraphIndexAndCallSites(t *testing.T) {
	g := cfg.NewGraph("f")
	g.AddIndex(cfg.IndexSite{ID: "idx1", Base: "m", Index: "k"})
	g.AddCall(cfg.CallSite{ID: "call1", Callee: "f", Args: []string{"a1"}})
	g.AddReturn("ret1", "a")
	g.SetParameters("f", "p1", "p2")

	assert.Equal(t, cfg.IndexSite{ID: "idx1", Base: "m", Index: "k"}, g.Indexes()["idx1"])
	assert.Equal(t, cfg.CallSite{ID: "call1", Callee: "f", Args: []string{"a1"}}, g.FCalls()["call1"])
	assert.Equal(t, []string{"a"}, g.Returns()["ret1"])
	assert.Equal(t, []string{"p1", "p2"}, g.Parameters()["f"])
}
