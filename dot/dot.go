// Package dot renders a Network and its contributing CFGs as DOT source:
// `digraph { <vertices…><edges…> }`, one subgraph worth of vertices per
// function plus the Network's DataLinks as dotted edges.
package dot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/viant/solgraph/cfg"
	"github.com/viant/solgraph/link"
	"github.com/viant/solgraph/network"
)

// Render writes a single `digraph { … }` document: every CFG's vertices
// and edges, shape-tagged per Shape.DotString
// (`point|box|diamond|doublecircle|Mdiamond`), followed by the Network's
// DataLinks rendered `from -> to [label=var.source, style=dotted];`.
func Render(cfgs []cfg.CFG, net *network.Network) string {
	var b strings.Builder
	b.WriteString("digraph {\n")

	for _, g := range cfgs {
		for _, v := range g.Vertices() {
			fmt.Fprintf(&b, "  %q [shape=%s];\n", v.ID, v.Shape.DotString())
		}
	}
	for _, g := range cfgs {
		for _, e := range g.Edges() {
			fmt.Fprintf(&b, "  %q -> %q;\n", e.From, e.To)
		}
	}

	links := net.Links()
	sort.Slice(links, func(i, j int) bool {
		return linkKey(links[i]) < linkKey(links[j])
	})
	for _, l := range links {
		fmt.Fprintf(&b, "  %q -> %q [label=%q, style=dotted];\n", l.From.VertexID, l.To.VertexID, l.Label.Src)
	}

	b.WriteString("}\n")
	return b.String()
}

func linkKey(l link.DataLink) string {
	return l.From.VertexID + "\x00" + l.To.VertexID + "\x00" + l.Label.Attributes
}
