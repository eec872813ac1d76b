package analyzer

import (
	"github.com/viant/solgraph/ast"
	"github.com/viant/solgraph/cfg"
	"github.com/viant/solgraph/network"
)

// Builder accumulates the inputs one analysis run needs — a Dictionary,
// the contract's per-function CFGs, and the chosen contract id — and runs
// the CFG -> DFG -> Network pipeline with Analyze.
type Builder struct {
	dict            ast.Dictionary
	cfgs            []cfg.CFG
	contractID      string
	interprocedural bool
}

// New builds a Builder from the given Options, defaulting to
// inter-procedural call/return links enabled (matching network.Build).
func New(opts ...Option) *Builder {
	b := &Builder{interprocedural: true}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Analyze runs network.BuildWithOptions over the configured Dictionary,
// CFGs, and contract id.
func (b *Builder) Analyze() (*network.Network, error) {
	return network.BuildWithOptions(b.contractID, b.cfgs, b.dict, network.Options{Interprocedural: b.interprocedural})
}
