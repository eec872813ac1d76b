// Package variable implements the Member/Variable data model, the
// flattening algorithm that turns a compound AST expression into a
// canonical set of flat variables, and the prefix/alias comparison those
// flats are compared with.
package variable

// MemberKind tags which of the three Member variants a step in a
// variable's path is. Encoded as a tagged struct with exhaustive switches
// rather than an interface — the variant set is small and closed.
type MemberKind int

const (
	// Reference is a step naming a declared AST entity by node id.
	Reference MemberKind = iota
	// IndexAccess is an array or mapping subscript; its attribute segment
	// is always the wildcard "$".
	IndexAccess
	// Global is a non-AST entity: a built-in namespace member or an
	// unresolved identifier promoted to a named global.
	Global
)

func (k MemberKind) String() string {
	switch k {
	case Reference:
		return "Reference"
	case IndexAccess:
		return "IndexAccess"
	case Global:
		return "Global"
	default:
		return "Unknown"
	}
}

// Member is one step in the canonical path from a Variable's root
// declaration.
type Member struct {
	Kind MemberKind
	// DeclID is populated for Reference.
	DeclID string
	// Name is populated for Global.
	Name string
}

// NewReference builds a Reference member to the given AST node id.
func NewReference(declID string) Member { return Member{Kind: Reference, DeclID: declID} }

// NewIndexAccess builds an IndexAccess member (wildcard "$" segment).
func NewIndexAccess() Member { return Member{Kind: IndexAccess} }

// NewGlobal builds a Global member naming a built-in/unresolved entity.
func NewGlobal(name string) Member { return Member{Kind: Global, Name: name} }

// Segment returns this member's attribute-path segment: "$" for
// IndexAccess, the declared name for Reference/Global.
func (m Member) Segment(attrName string) string {
	if m.Kind == IndexAccess {
		return "$"
	}
	return attrName
}

// Equal compares two members for identity (same kind and same identity
// field); used by Variable equality, not by the $-wildcard path comparison.
func (m Member) Equal(o Member) bool {
	if m.Kind != o.Kind {
		return false
	}
	switch m.Kind {
	case Reference:
		return m.DeclID == o.DeclID
	case Global:
		return m.Name == o.Name
	default: // IndexAccess
		return true
	}
}
