package cfg

import "sort"

// vertexState tracks one vertex's immediate neighbors, mirroring the
// vMap/preds/succs adjacency-list pattern of a classic statement-level CFG
// builder.
type vertexState struct {
	preds map[string]bool
	succs map[string]bool
}

func newVertexState() *vertexState {
	return &vertexState{preds: map[string]bool{}, succs: map[string]bool{}}
}

// Graph is an in-memory, hand-built CFG: enough to drive the DFG and
// Network algorithms without a real compiler driver. Construct with
// NewGraph and wire it up with AddVertex/AddEdge/SetEntry/SetExit and the
// site tables.
type Graph struct {
	functionID  string
	vMap        map[string]*Vertex
	state       map[string]*vertexState
	order       []string
	indexes     map[string]IndexSite
	fcalls      map[string]CallSite
	returns     map[string][]string
	params      map[string][]string
	entry, exit string
}

// NewGraph builds an empty Graph for the given function id.
func NewGraph(functionID string) *Graph {
	return &Graph{
		functionID: functionID,
		vMap:       map[string]*Vertex{},
		state:      map[string]*vertexState{},
		indexes:    map[string]IndexSite{},
		fcalls:     map[string]CallSite{},
		returns:    map[string][]string{},
		params:     map[string][]string{},
	}
}

// AddVertex registers a vertex, in insertion order.
func (g *Graph) AddVertex(v Vertex) *Graph {
	g.vMap[v.ID] = &v
	if g.state[v.ID] == nil {
		g.state[v.ID] = newVertexState()
	}
	g.order = append(g.order, v.ID)
	return g
}

// AddEdge wires a directed edge, updating both endpoints' adjacency sets.
func (g *Graph) AddEdge(from, to string) *Graph {
	if g.state[from] == nil {
		g.state[from] = newVertexState()
	}
	if g.state[to] == nil {
		g.state[to] = newVertexState()
	}
	g.state[from].succs[to] = true
	g.state[to].preds[from] = true
	return g
}

// SetEntry records the function's synthetic entry vertex id.
func (g *Graph) SetEntry(id string) *Graph { g.entry = id; return g }

// SetExit records the function's synthetic exit vertex id.
func (g *Graph) SetExit(id string) *Graph { g.exit = id; return g }

// AddIndex registers one IndexAccess site.
func (g *Graph) AddIndex(site IndexSite) *Graph { g.indexes[site.ID] = site; return g }

// AddCall registers one FunctionCall site.
func (g *Graph) AddCall(site CallSite) *Graph { g.fcalls[site.ID] = site; return g }

// AddReturn appends the variable-bearing AST ids a return statement
// carries.
func (g *Graph) AddReturn(returnID string, varIDs ...string) *Graph {
	g.returns[returnID] = append(g.returns[returnID], varIDs...)
	return g
}

// SetParameters records a function's defined-parameter ids, in order.
func (g *Graph) SetParameters(functionID string, paramIDs ...string) *Graph {
	g.params[functionID] = paramIDs
	return g
}

func (g *Graph) FunctionID() string { return g.functionID }
func (g *Graph) Entry() string      { return g.entry }
func (g *Graph) Exit() string       { return g.exit }

// Preds returns id's immediate predecessors, sorted for determinism.
func (g *Graph) Preds(id string) []string {
	st := g.state[id]
	if st == nil {
		return nil
	}
	return sortedKeys(st.preds)
}

// Succs returns id's immediate successors, sorted for determinism.
func (g *Graph) Succs(id string) []string {
	st := g.state[id]
	if st == nil {
		return nil
	}
	return sortedKeys(st.succs)
}

func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.vMap[id])
	}
	return out
}

func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, from := range g.order {
		for _, to := range g.Succs(from) {
			out = append(out, Edge{From: from, To: to})
		}
	}
	return out
}

// ExecutionPaths enumerates every entry-to-exit path by DFS. A path that
// would revisit a vertex (a loop back-edge) stops there instead of
// looping forever.
func (g *Graph) ExecutionPaths() [][]string {
	if g.entry == "" || g.exit == "" {
		return nil
	}
	var out [][]string
	var walk func(id string, path []string, seen map[string]bool)
	walk = func(id string, path []string, seen map[string]bool) {
		path = append(path, id)
		if id == g.exit {
			out = append(out, append([]string(nil), path...))
			return
		}
		if seen[id] {
			return
		}
		next := make(map[string]bool, len(seen)+1)
		for k, v := range seen {
			next[k] = v
		}
		next[id] = true
		for _, to := range g.Succs(id) {
			walk(to, path, next)
		}
	}
	walk(g.entry, nil, map[string]bool{})
	return out
}

func (g *Graph) Indexes() map[string]IndexSite   { return g.indexes }
func (g *Graph) FCalls() map[string]CallSite     { return g.fcalls }
func (g *Graph) Returns() map[string][]string    { return g.returns }
func (g *Graph) Parameters() map[string][]string { return g.params }

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var _ CFG = (*Graph)(nil)
