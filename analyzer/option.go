// Package analyzer wires the ast.Dictionary, the supplied per-function
// cfg.CFGs, and network.Build into the single configured pipeline run
// downstream bug oracles drive. Configuration follows the
// teacher's functional-options style (its own analyzer/option.go).
package analyzer

import (
	"github.com/viant/solgraph/ast"
	"github.com/viant/solgraph/cfg"
)

// Option configures a Builder before Analyze runs.
type Option func(*Builder)

// WithDictionary sets the ast.Dictionary the run resolves declarations
// and structural kinds against.
func WithDictionary(dict ast.Dictionary) Option {
	return func(b *Builder) { b.dict = dict }
}

// WithCFGs adds one or more per-function CFGs to the run. The compiler
// driver and CFG builder are external collaborators; a caller supplies
// already-built CFGs rather than this package deriving them from raw
// source.
func WithCFGs(cfgs ...cfg.CFG) Option {
	return func(b *Builder) { b.cfgs = append(b.cfgs, cfgs...) }
}

// WithContractID selects which contract's functions the run covers.
func WithContractID(id string) Option {
	return func(b *Builder) { b.contractID = id }
}

// WithInterprocedural enables the Network's call/return link family;
// disabled runs still get assignment and index links but skip resolving
// call sites, for callers that only need intra-procedural DFGs stitched
// by assignment/index links.
func WithInterprocedural(enabled bool) Option {
	return func(b *Builder) { b.interprocedural = enabled }
}
