package variable

import "strings"

// Comparison is the three-way result of Variable.Contains.
type Comparison int

const (
	Equal Comparison = iota
	Partial
	NotEqual
)

func (c Comparison) String() string {
	switch c {
	case Equal:
		return "Equal"
	case Partial:
		return "Partial"
	default:
		return "NotEqual"
	}
}

// Variable is the tuple of a canonical member path, its human-readable
// dotted form, the AST kind string, and the original source text for
// diagnostics.
type Variable struct {
	Members    []Member
	Attributes string
	Kind       string
	Src        string
}

// New builds a Variable, joining segs with "." to produce Attributes.
func New(members []Member, segs []string, kind, src string) Variable {
	return Variable{
		Members:    append([]Member(nil), members...),
		Attributes: strings.Join(segs, "."),
		Kind:       kind,
		Src:        src,
	}
}

// Equal reports whether two variables denote the exact same flat location.
func (v Variable) Equal(o Variable) bool {
	return v.Attributes == o.Attributes
}

// Contains implements the three-way comparison: wildcard-aware
// segment-by-segment equality, then (if unequal) a proper-prefix test in
// either direction.
func (v Variable) Contains(o Variable) Comparison {
	a := strings.Split(v.Attributes, ".")
	b := strings.Split(o.Attributes, ".")
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] == "$" || b[i] == "$" || a[i] == b[i] {
			continue
		}
		return NotEqual
	}
	if len(a) == len(b) {
		return Equal
	}
	return Partial
}

// HasPrefix reports whether v's attribute path equals prefix or begins with
// prefix+"." — the attribute-focus selection rule GetVariables filters by.
func (v Variable) HasPrefix(prefix string) bool {
	if v.Attributes == prefix {
		return true
	}
	return strings.HasPrefix(v.Attributes, prefix+".")
}
