// Package dfg implements the reverse-worklist intra-procedural data-flow
// algorithm over one function's CFG. It generates a per-vertex USE/KILL
// action sequence and performs a USE-before-KILL reduction to emit
// DataLinks, iterating to a fixpoint.
package dfg

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/viant/solgraph/action"
	"github.com/viant/solgraph/ast"
	"github.com/viant/solgraph/cfg"
	"github.com/viant/solgraph/link"
	"github.com/viant/solgraph/sgerr"
	"github.com/viant/solgraph/variable"
)

// FindLinks runs the algorithm for one function's CFG and returns its
// DataLinks. A non-fatal error from a vertex's action extraction is
// recorded as a diagnostic and that vertex is dropped: its predecessors are
// not reached through it on that path, while the rest of the function is
// still analysed. A missing exit vertex is fatal.
func FindLinks(graph cfg.CFG, dict ast.Dictionary) ([]link.DataLink, []string, error) {
	vertices := map[string]cfg.Vertex{}
	for _, v := range graph.Vertices() {
		vertices[v.ID] = v
	}
	preds := predecessors(graph)

	stopID := exitVertexID(graph)
	if stopID == "" {
		return nil, nil, sgerr.New(sgerr.MissingVertex, "CFG %s has no exit vertex", graph.FunctionID())
	}

	an := &analyzer{dict: dict, vertices: vertices, preds: preds, tables: map[string]*bitset.BitSet{}, visited: map[string]bool{}, index: map[string]uint{}}
	links := link.NewSet()

	type frame struct {
		from, v string
		actions []action.Action
	}
	var stack []frame
	for _, p := range preds[stopID] {
		stack = append(stack, frame{from: stopID, v: p})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		vertex, ok := vertices[f.v]
		if !ok {
			return nil, an.diagnostics, sgerr.New(sgerr.MissingVertex, "CFG %s: predecessor %s is not a known vertex", graph.FunctionID(), f.v)
		}

		newActs, err := action.Extract(vertex, dict)
		if err != nil {
			if sgErr, ok := err.(*sgerr.Error); ok && !sgErr.Kind.IsFatal() {
				an.diagnostics = append(an.diagnostics, sgErr.Error())
				continue
			}
			return nil, an.diagnostics, err
		}

		preTable := an.tables[f.from]
		grew := an.unionInto(f.v, preTable, newActs)

		actions := append(copyActions(f.actions), newActs...)
		actions = reduce(actions, links, an.tables[f.v], an.indexOf)

		if grew || !an.visited[f.v] {
			an.visited[f.v] = true
			for _, p := range preds[f.v] {
				stack = append(stack, frame{from: f.v, v: p, actions: copyActions(actions)})
			}
		}
	}

	return links.Links(), an.diagnostics, nil
}

type analyzer struct {
	dict        ast.Dictionary
	vertices    map[string]cfg.Vertex
	preds       map[string][]string
	tables      map[string]*bitset.BitSet
	visited     map[string]bool
	index       map[string]uint
	nextIndex   uint
	diagnostics []string
}

func (a *analyzer) indexOf(sig string) uint {
	if idx, ok := a.index[sig]; ok {
		return idx
	}
	idx := a.nextIndex
	a.index[sig] = idx
	a.nextIndex++
	return idx
}

// unionInto unions preTable and newActs's signatures into tables[v],
// reporting whether tables[v] grew.
func (a *analyzer) unionInto(v string, preTable *bitset.BitSet, newActs []action.Action) bool {
	bs := a.tables[v]
	if bs == nil {
		bs = bitset.New(1)
		a.tables[v] = bs
	}
	before := bs.Clone()
	if preTable != nil {
		bs.InPlaceUnion(preTable)
	}
	for _, act := range newActs {
		bs.Set(a.indexOf(signature(act)))
	}
	return !bs.Equal(before)
}

func signature(a action.Action) string {
	return a.Kind.String() + "\x00" + a.Variable.Attributes + "\x00" + a.VertexID
}

func predecessors(graph cfg.CFG) map[string][]string {
	preds := map[string][]string{}
	for _, e := range graph.Edges() {
		preds[e.To] = append(preds[e.To], e.From)
	}
	return preds
}

// exitVertexID locates the function's synthetic exit vertex: the Point
// vertex with no outgoing edge. The CFG interface doesn't name entry/exit
// directly, so this is derived from shape + edge shape alone.
func exitVertexID(graph cfg.CFG) string {
	hasSucc := map[string]bool{}
	for _, e := range graph.Edges() {
		hasSucc[e.From] = true
	}
	for _, v := range graph.Vertices() {
		if v.Shape == cfg.Point && !hasSucc[v.ID] {
			return v.ID
		}
	}
	return ""
}

func copyActions(a []action.Action) []action.Action {
	out := make([]action.Action, len(a))
	copy(out, a)
	return out
}

// reduce runs the USE-before-KILL reduction loop: repeatedly find the
// first Kill, resolve every preceding Use against it, and drop the Kill,
// until no Kill remains. table is the current vertex's accumulated
// action-signature set (tables[v]); every action dropped from, or fully
// consumed within, the returned sequence has its signature cleared from
// table too, the same way the original's cur_table.remove keeps that set
// down to what's still pending rather than everything ever seen.
func reduce(actions []action.Action, links *link.Set, table *bitset.BitSet, indexOf func(string) uint) []action.Action {
	clearBit := func(act action.Action) {
		if table != nil {
			table.Clear(indexOf(signature(act)))
		}
	}
	for {
		p := firstKillIndex(actions)
		if p < 0 {
			return actions
		}
		kill := actions[p]
		kept := make([]action.Action, 0, len(actions))
		for i, act := range actions {
			if i == p {
				clearBit(act)
				continue // drop the Kill itself; restart the scan
			}
			if act.Kind != action.Use || i > p {
				kept = append(kept, act)
				continue
			}
			switch kill.Variable.Contains(act.Variable) {
			case variable.Equal:
				emitLink(links, act, kill, kill.Variable)
				clearBit(act) // drop this Use — fully subsumed by the kill
			case variable.Partial:
				emitLink(links, act, kill, moreSpecific(kill.Variable, act.Variable))
				clearBit(act)
				kept = append(kept, act) // partial kill does not fully subsume
			default:
				kept = append(kept, act)
			}
		}
		actions = kept
	}
}

func firstKillIndex(actions []action.Action) int {
	for i, a := range actions {
		if a.Kind == action.Kill {
			return i
		}
	}
	return -1
}

func emitLink(links *link.Set, use, kill action.Action, label variable.Variable) {
	if use.VertexID == kill.VertexID && use.Variable.Equal(kill.Variable) {
		return // no self-link with an identical variable invariant
	}
	links.Add(link.DataLink{
		From:  link.Endpoint{Variable: use.Variable, VertexID: use.VertexID},
		To:    link.Endpoint{Variable: kill.Variable, VertexID: kill.VertexID},
		Label: label,
	})
}

func moreSpecific(a, b variable.Variable) variable.Variable {
	if strings.Count(a.Attributes, ".") >= strings.Count(b.Attributes, ".") {
		return a
	}
	return b
}
