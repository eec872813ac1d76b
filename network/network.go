// Package network stitches every per-function DFG of a contract into a
// whole-contract Network via assignment-, index-, and call/return-induced
// links, and offers a context-sensitive traversal over the resulting
// directed multigraph.
package network

import (
	"strings"

	"github.com/viant/solgraph/action"
	"github.com/viant/solgraph/ast"
	"github.com/viant/solgraph/cfg"
	"github.com/viant/solgraph/dfg"
	"github.com/viant/solgraph/link"
	"github.com/viant/solgraph/sgerr"
	"github.com/viant/solgraph/variable"
)

// Network is the whole-contract aggregation of every function's DFG plus
// the cross-function links Build derives from assignments, indexing, and
// calls/returns.
type Network struct {
	ContractID  string
	links       *link.Set
	diagnostics []string
}

// Links returns every distinct DataLink the Network holds.
func (n *Network) Links() []link.DataLink { return n.links.Links() }

// Diagnostics returns the non-fatal malformed-vertex/site notices recorded
// while building the Network.
func (n *Network) Diagnostics() []string { return n.diagnostics }

// Build runs every function's DFG, then computes the (a) assignment, (b)
// index, and (c) call/return link families and unions them with the (d)
// per-function DFG links already computed. Equivalent to
// BuildWithOptions(contractID, cfgs, dict, Options{Interprocedural: true}).
func Build(contractID string, cfgs []cfg.CFG, dict ast.Dictionary) (*Network, error) {
	return BuildWithOptions(contractID, cfgs, dict, Options{Interprocedural: true})
}

// Options toggles which link families a Build run computes.
type Options struct {
	// Interprocedural enables the (c) call/return link family. Disabled,
	// a run still gets (a) assignment, (b) index, and (d) per-function DFG
	// links — for a caller that only needs intra-procedural DFGs stitched
	// by assignment/index links, without resolving call sites.
	Interprocedural bool
}

// BuildWithOptions is Build with explicit control over which link families
// run.
func BuildWithOptions(contractID string, cfgs []cfg.CFG, dict ast.Dictionary, opts Options) (*Network, error) {
	n := &Network{ContractID: contractID, links: link.NewSet()}

	actionsByVertex := map[string][]action.Action{}
	allParams := map[string][]string{}
	allReturns := map[string][]string{}

	for _, g := range cfgs {
		links, diags, err := dfg.FindLinks(g, dict)
		if err != nil {
			return nil, err
		}
		n.diagnostics = append(n.diagnostics, diags...)
		for _, l := range links {
			n.links.Add(l) // (d) internal DFG links
		}

		for _, v := range g.Vertices() {
			acts, err := action.Extract(v, dict)
			if err != nil {
				if sgErr, ok := err.(*sgerr.Error); ok && !sgErr.Kind.IsFatal() {
					n.diagnostics = append(n.diagnostics, sgErr.Error())
					continue
				}
				return nil, err
			}
			actionsByVertex[v.ID] = append(actionsByVertex[v.ID], acts...)
		}
		for fid, ps := range g.Parameters() {
			allParams[fid] = ps
		}
		var rets []string
		for _, rs := range g.Returns() {
			rets = append(rets, rs...)
		}
		if len(rets) > 0 {
			allReturns[g.FunctionID()] = append(allReturns[g.FunctionID()], rets...)
		}
	}

	containing := containingVertices(cfgs)

	n.buildAssignmentLinks(actionsByVertex)
	if err := n.buildIndexLinks(cfgs, dict, containing); err != nil {
		return nil, err
	}
	if opts.Interprocedural {
		if err := n.buildCallLinks(cfgs, dict, contractID, containing, allParams, allReturns); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// buildAssignmentLinks implements: for every vertex, every
// (kill, use) pair whose comparison is Equal or Partial gets a same-vertex
// link, labeled by the use (the value actually read).
func (n *Network) buildAssignmentLinks(actionsByVertex map[string][]action.Action) {
	for vID, acts := range actionsByVertex {
		var kills, uses []variable.Variable
		for _, a := range acts {
			if a.Kind == action.Kill {
				kills = append(kills, a.Variable)
			} else {
				uses = append(uses, a.Variable)
			}
		}
		for _, k := range kills {
			for _, u := range uses {
				if cmp := k.Contains(u); cmp == variable.Equal || cmp == variable.Partial {
					addLink(n.links, vID, k, vID, u, u, link.StackContext{})
				}
			}
		}
	}
}

// buildIndexLinks links the variables touched by each IndexAccess site:
// index -> each extra child (mix semantics, e.g. a library call resolved
// through the base) and base -> index when the base isn't itself an
// IndexAccess (strict semantics). See DESIGN.md for why a third,
// index-to-index rule some readings suggest is treated as redundant with
// the base->index rule here.
func (n *Network) buildIndexLinks(cfgs []cfg.CFG, dict ast.Dictionary, containing map[string]string) error {
	for _, g := range cfgs {
		for siteID, site := range g.Indexes() {
			vID, ok := containing[siteID]
			if !ok {
				continue
			}
			indexNode, ok := dict.Lookup(site.Index)
			if !ok {
				continue
			}
			indexVars, err := variable.GetVariables(indexNode, dict)
			if err != nil {
				return err
			}
			for _, extraID := range site.Extra {
				extraNode, ok := dict.Lookup(extraID)
				if !ok {
					continue
				}
				extraVars, err := variable.GetVariables(extraNode, dict)
				if err != nil {
					return err
				}
				linkAllPairs(n.links, vID, indexVars, vID, extraVars, link.StackContext{})
			}
			baseNode, ok := dict.Lookup(site.Base)
			if ok && baseNode.Type() != "IndexAccess" {
				baseVars, err := variable.GetVariables(baseNode, dict)
				if err != nil {
					return err
				}
				linkAllPairs(n.links, vID, baseVars, vID, indexVars, link.StackContext{})
			}
		}
	}
	return nil
}

// buildCallLinks links a call site's argument/callee variables to the
// resolved callee's parameters and return values for an internal call, or
// to the call's own arguments/callee expression for an external one.
func (n *Network) buildCallLinks(cfgs []cfg.CFG, dict ast.Dictionary, contractID string, containing map[string]string, allParams, allReturns map[string][]string) error {
	for _, g := range cfgs {
		for siteID, site := range g.FCalls() {
			vID, ok := containing[siteID]
			if !ok {
				continue
			}
			callNode, ok := dict.Lookup(siteID)
			if !ok {
				continue
			}
			callVars, err := variable.GetVariables(callNode, dict)
			if err != nil {
				return err
			}

			calleeNode, hasCallee := dict.Lookup(site.Callee)
			calleeFn, internal := resolveInternalCallee(calleeNode, hasCallee, contractID, dict)

			if internal {
				for _, retID := range allReturns[calleeFn.GetID()] {
					retVID, ok := containing[retID]
					if !ok {
						retVID = retID
					}
					retNode, ok := dict.Lookup(retID)
					if !ok {
						continue
					}
					retVars, err := variable.GetVariables(retNode, dict)
					if err != nil {
						return err
					}
					linkCallPairs(n.links, vID, callVars, retVID, retVars, link.StackContext{Op: link.Push, CallID: siteID})
				}

				params := allParams[calleeFn.GetID()]
				for i, paramID := range params {
					if i >= len(site.Args) {
						break
					}
					paramNode, ok := dict.Lookup(paramID)
					if !ok {
						continue
					}
					argNode, ok := dict.Lookup(site.Args[i])
					if !ok {
						continue
					}
					paramVars, err := variable.GetVariables(paramNode, dict)
					if err != nil {
						return err
					}
					argVars, err := variable.GetVariables(argNode, dict)
					if err != nil {
						return err
					}
					linkCallPairs(n.links, vID, paramVars, vID, argVars, link.StackContext{Op: link.Pop, CallID: siteID})
				}
				continue
			}

			// External/unresolved call: treat like (b) with the call's own
			// argument list playing [index=arg1, extra=rest].
			if len(site.Args) > 0 {
				arg1Node, ok := dict.Lookup(site.Args[0])
				if ok {
					arg1Vars, err := variable.GetVariables(arg1Node, dict)
					if err != nil {
						return err
					}
					linkAllPairs(n.links, vID, callVars, vID, arg1Vars, link.StackContext{})
				}
				for _, extraID := range site.Args[1:] {
					extraNode, ok := dict.Lookup(extraID)
					if !ok {
						continue
					}
					extraVars, err := variable.GetVariables(extraNode, dict)
					if err != nil {
						return err
					}
					linkAllPairs(n.links, vID, callVars, vID, extraVars, link.StackContext{})
				}
			}
			if hasCallee {
				baseVars, err := variable.GetVariables(calleeNode, dict)
				if err != nil {
					return err
				}
				linkAllPairs(n.links, vID, baseVars, vID, callVars, link.StackContext{})
			}
		}
	}
	return nil
}

func resolveInternalCallee(calleeNode ast.Walker, hasCallee bool, contractID string, dict ast.Dictionary) (ast.Walker, bool) {
	if !hasCallee {
		return nil, false
	}
	declID, ok := calleeNode.ReferencedDeclaration()
	if !ok || declID == "" {
		return nil, false
	}
	fn, found := dict.Lookup(declID)
	if !found || fn.Type() != "FunctionDefinition" {
		return nil, false
	}
	for _, id := range dict.FindIDs(ast.Query{Kind: ast.FunctionsByContractID, Arg: contractID}) {
		if id == fn.GetID() {
			return fn, true
		}
	}
	return nil, false
}

// containingVertices maps every AST node id reachable from a vertex's node
// to that vertex's id, so index/call sites (keyed by their own AST id) can
// be translated to the CFG vertex id a DataLink endpoint requires.
func containingVertices(cfgs []cfg.CFG) map[string]string {
	out := map[string]string{}
	var walk func(w ast.Walker, vID string)
	walk = func(w ast.Walker, vID string) {
		if w == nil {
			return
		}
		out[w.GetID()] = vID
		for _, c := range w.WalkerChildren() {
			walk(c, vID)
		}
	}
	for _, g := range cfgs {
		for _, v := range g.Vertices() {
			if v.Node != nil {
				walk(v.Node, v.ID)
			}
		}
	}
	return out
}

func addLink(set *link.Set, fromV string, fromVar variable.Variable, toV string, toVar variable.Variable, label variable.Variable, stack link.StackContext) {
	if fromV == toV && fromVar.Equal(toVar) {
		return // no self-link with an identical variable invariant
	}
	set.Add(link.DataLink{
		From:  link.Endpoint{Variable: fromVar, VertexID: fromV},
		To:    link.Endpoint{Variable: toVar, VertexID: toV},
		Label: label,
		Stack: stack,
	})
}

func linkAllPairs(set *link.Set, fromV string, fromVars []variable.Variable, toV string, toVars []variable.Variable, stack link.StackContext) {
	for _, fv := range fromVars {
		for _, tv := range toVars {
			if fv.Contains(tv) == variable.NotEqual {
				continue
			}
			addLink(set, fromV, fv, toV, tv, tv, stack)
		}
	}
}

// linkCallPairs links every (fromVar, toVar) combination unconditionally —
// unlike linkAllPairs, it does not filter by variable.Contains. A call's
// argument/callee variables and the resolved callee's parameter/return
// variables are deliberately distinct identities bound together by the call
// edge itself, not by sharing an attribute path.
func linkCallPairs(set *link.Set, fromV string, fromVars []variable.Variable, toV string, toVars []variable.Variable, stack link.StackContext) {
	for _, fv := range fromVars {
		for _, tv := range toVars {
			addLink(set, fromV, fv, toV, tv, tv, stack)
		}
	}
}

func endpointKey(e link.Endpoint) string {
	return e.VertexID + "\x00" + e.Variable.Attributes
}

type edgeOut struct {
	to    link.Endpoint
	stack link.StackContext
}

func (n *Network) adjacency() map[string][]edgeOut {
	adj := map[string][]edgeOut{}
	for _, l := range n.links.Links() {
		key := endpointKey(l.From)
		adj[key] = append(adj[key], edgeOut{to: l.To, stack: l.Stack})
	}
	return adj
}

// Traverse enumerates context-sensitive paths from source: a DFS over the
// links multigraph with a call stack — a Pop must match the stack's top or
// the transition is rejected, and (node, stack) pairs are visited at most
// once. Returns every discovered path from source to a node with no
// outgoing link.
func (n *Network) Traverse(source link.Endpoint) [][]link.Endpoint {
	adj := n.adjacency()
	visited := map[string]bool{}
	var paths [][]link.Endpoint

	var walk func(cur link.Endpoint, stack []string, path []link.Endpoint)
	walk = func(cur link.Endpoint, stack []string, path []link.Endpoint) {
		path = append(path, cur)
		visitKey := endpointKey(cur) + "\x00" + strings.Join(stack, ",")
		if visited[visitKey] {
			return
		}
		visited[visitKey] = true

		outs := adj[endpointKey(cur)]
		if len(outs) == 0 {
			paths = append(paths, append([]link.Endpoint(nil), path...))
			return
		}
		for _, e := range outs {
			nextStack := stack
			switch e.stack.Op {
			case link.Push:
				nextStack = append(append([]string(nil), stack...), e.stack.CallID)
			case link.Pop:
				if len(stack) == 0 || stack[len(stack)-1] != e.stack.CallID {
					continue
				}
				nextStack = stack[:len(stack)-1]
			}
			walk(e.to, nextStack, path)
		}
	}
	walk(source, nil, nil)
	return paths
}
