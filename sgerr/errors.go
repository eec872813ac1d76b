// Package sgerr defines the recoverable/fatal error taxonomy shared by every
// analysis package: Malformed AST, Unresolved reference, Unknown kind
// string, Missing CFG vertex/parent.
package sgerr

import "fmt"

// Kind classifies an Error. Only MissingVertex is fatal to the whole run;
// Malformed is recorded as a diagnostic and the analysis goes on;
// Unresolved and UnknownKind are recovered inline by callers and are
// rarely surfaced as errors at all (see variable.Flatten).
type Kind string

const (
	// Malformed marks an AST that is missing a required attribute or
	// carries an unrecognized vertex shape. Recorded as a diagnostic: the
	// offending vertex yields no actions and the reverse DFG walk does not
	// continue past it on that path; the rest of the function is still
	// analysed, not skipped.
	Malformed Kind = "MalformedAST"
	// Unresolved marks a referencedDeclaration pointing outside the
	// dictionary. Recovered by promoting the identifier to Global(name).
	Unresolved Kind = "UnresolvedReference"
	// UnknownKind marks a kind string matching none of the structural
	// patterns. Recovered by treating it as a leaf kind.
	UnknownKind Kind = "UnknownKind"
	// MissingVertex marks a CFG edge or parent pointer referring to a
	// vertex absent from the graph. Fatal for the whole analysis run.
	MissingVertex Kind = "MissingCFGVertex"
)

// Error is the graph-error value used across solgraph's packages.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("solgraph error (%s): %s", e.Kind, e.Message)
}

// New builds an *Error with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsFatal reports whether errors of this kind must abort the whole
// analysis (MissingVertex) versus being recorded as a diagnostic while the
// analysis goes on (every other kind).
func (k Kind) IsFatal() bool {
	return k == MissingVertex
}
