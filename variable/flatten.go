package variable

import (
	"strconv"
	"strings"

	"github.com/viant/solgraph/ast"
	"github.com/viant/solgraph/variable/kindparser"
)

// Flatten implements: walk up from the focused AST expression
// to the root of its access chain, seed a Member path at the root, then
// recursively expand the root's kind string into the full set of flat
// Variables reachable from it. It returns that set plus attributesFocus —
// the dotted path the caller actually wrote — for GetVariables to filter by.
func Flatten(focus ast.Walker, dict ast.Dictionary) (flats []Variable, attributesFocus string, err error) {
	root, focusSegs := walkToRoot(focus)
	members := seedRoot(root, dict)
	src, _ := focus.Source()

	kindStr, _ := root.TypeString()
	k, perr := kindparser.Parse(kindStr)
	state := &flattenState{dict: dict, src: src}
	if perr != nil {
		// Unknown kind string (: treat as a leaf and proceed.
		flats = []Variable{New(members, focusSegs[:1], kindStr, src)}
	} else {
		flats, err = state.expand(members, focusSegs[:1], k)
		if err != nil {
			return nil, "", err
		}
	}
	return flats, strings.Join(focusSegs, "."), nil
}

// GetVariables implements step 4: the flats whose attribute
// path equals attributesFocus or extends it with a "." boundary.
func GetVariables(focus ast.Walker, dict ast.Dictionary) ([]Variable, error) {
	flats, focusPath, err := Flatten(focus, dict)
	if err != nil {
		return nil, err
	}
	out := make([]Variable, 0, len(flats))
	for _, f := range flats {
		if f.HasPrefix(focusPath) {
			out = append(out, f)
		}
	}
	return out, nil
}

// walkToRoot descends through an access-chain node's base expression
// (MemberAccess/IndexAccess/type-conversion FunctionCall) until it reaches
// an Identifier, VariableDeclaration, or any other node, which becomes the
// chain's root. It returns that root and the root-to-focus dotted segments
// ( step 1): IndexAccess -> "$", MemberAccess -> member name,
// Identifier -> its value, VariableDeclaration -> its name, a type
// conversion FunctionCall -> its target type string.
func walkToRoot(w ast.Walker) (ast.Walker, []string) {
	switch w.Type() {
	case "MemberAccess":
		root, segs := walkToRoot(w.Child(0))
		return root, append(segs, segmentOf(w))
	case "IndexAccess":
		root, segs := walkToRoot(w.Child(0))
		return root, append(segs, "$")
	case "FunctionCall":
		if isTypeConversion(w) {
			inner := conversionOperand(w)
			root, segs := walkToRoot(inner)
			target, _ := w.TypeString()
			return root, append(segs, target)
		}
		return w, []string{segmentOf(w)}
	default:
		return w, []string{segmentOf(w)}
	}
}

func conversionOperand(w ast.Walker) ast.Walker {
	if w.ChildCount() > 1 {
		return w.Child(1)
	}
	return w.Child(0)
}

func isTypeConversion(w ast.Walker) bool {
	kind, ok := w.Attribute("kind")
	return ok && kind == "typeConversion"
}

func segmentOf(w ast.Walker) string {
	if n := w.GetName(); n != "" {
		return n
	}
	if v, ok := w.Attribute("value"); ok && v != "" {
		return v
	}
	if src, ok := w.Source(); ok && src != "" {
		return src
	}
	return w.GetID()
}

// seedRoot implements step 2: a VariableDeclaration root seeds
// a Reference to itself; anything else attempts to resolve
// referencedDeclaration through the dictionary, falling back to a Global
// (the unresolved-reference recovery).
func seedRoot(root ast.Walker, dict ast.Dictionary) []Member {
	if root.Type() == "VariableDeclaration" {
		return []Member{NewReference(root.GetID())}
	}
	if declID, ok := root.ReferencedDeclaration(); ok && declID != "" {
		if _, found := dict.Lookup(declID); found {
			return []Member{NewReference(declID)}
		}
	}
	return []Member{NewGlobal(segmentOf(root))}
}

// flattenState carries the read-only Dictionary, the diagnostic source
// text, and the cyclic-recursion guard (the set of contract ids currently
// being expanded on the active recursion stack), local to one Flatten
// call.
type flattenState struct {
	dict   ast.Dictionary
	src    string
	active map[string]bool
}

// expand recursively unfolds k's structure per step 3, in
// struct -> mapping -> contract -> conversion -> plain/array/builtin/
// library/leaf order (kindparser.Kind's alternation already encodes that
// precedence).
func (s *flattenState) expand(members []Member, segs []string, k *kindparser.Kind) ([]Variable, error) {
	switch {
	case k.Struct != nil:
		return s.expandStruct(members, segs, k.Struct)
	case k.Mapping != nil:
		return s.expandMapping(members, segs, k.Mapping)
	case k.Contract != nil:
		return s.expandContract(members, segs, k.Contract)
	case k.Conversion != nil:
		return s.expand(members, segs, k.Conversion.Inner)
	case k.Plain != nil:
		return s.expandPlain(members, segs, k.Plain)
	}
	return []Variable{New(members, segs, render(k), s.src)}, nil
}

func (s *flattenState) expandStruct(members []Member, segs []string, sk *kindparser.StructKind) ([]Variable, error) {
	members, segs = appendDims(members, segs, sk.Dims)
	nodes := s.dict.FindWalkers(ast.Query{Kind: ast.StructByName, Arg: sk.Name})
	if len(nodes) == 0 {
		return []Variable{New(members, segs, "struct "+sk.Name, s.src)}, nil
	}
	var out []Variable
	for _, field := range nodes[0].WalkerChildren() {
		flats, err := s.expandField(members, segs, field)
		if err != nil {
			return nil, err
		}
		out = append(out, flats...)
	}
	return out, nil
}

func (s *flattenState) expandContract(members []Member, segs []string, ck *kindparser.ContractKind) ([]Variable, error) {
	members, segs = appendDims(members, segs, ck.Dims)
	out := []Variable{New(extendMembers(members, NewGlobal("balance")), extendSegs(segs, "balance"), "uint", s.src)}

	contracts := s.dict.FindWalkers(ast.Query{Kind: ast.ContractByName, Arg: ck.Name})
	if len(contracts) == 0 {
		return out, nil
	}
	contractID := contracts[0].GetID()

	// Cyclic contract references: a contract whose own field (directly
	// or transitively) is of its own type would otherwise recurse forever.
	// Guarding by (contractID, path) doesn't work — a self-referential
	// field lengthens the path by one segment every level, so that key is
	// always fresh and the cycle is never caught. Instead track which
	// contract ids are on the *active* recursion stack: re-entering the
	// same contract id while it is already being expanded is the cycle,
	// not re-visiting the same path string.
	if s.active[contractID] {
		return out, nil
	}
	if s.active == nil {
		s.active = map[string]bool{}
	}
	s.active[contractID] = true
	defer delete(s.active, contractID)

	for _, st := range s.dict.FindWalkers(ast.Query{Kind: ast.StatesByContractID, Arg: contractID}) {
		flats, err := s.expandField(members, segs, st)
		if err != nil {
			return nil, err
		}
		out = append(out, flats...)
	}
	for _, fn := range s.dict.FindWalkers(ast.Query{Kind: ast.FunctionsByContractID, Arg: contractID}) {
		flats, err := s.expandFunction(members, segs, fn)
		if err != nil {
			return nil, err
		}
		out = append(out, flats...)
	}
	return out, nil
}

func (s *flattenState) expandMapping(members []Member, segs []string, mk *kindparser.MappingKind) ([]Variable, error) {
	members, segs = appendDims(members, segs, mk.Dims)
	members = extendMembers(members, NewIndexAccess)
	segs = extendSegs(segs, "$")
	return s.expand(members, segs, mk.Value)
}

func (s *flattenState) expandPlain(members []Member, segs []string, pk *kindparser.PlainKind) ([]Variable, error) {
	if len(pk.Dims) > 0 {
		return s.expandArray(members, segs, pk)
	}
	name := pk.Name

	if IsBuiltinNamespace(name) {
		out := make([]Variable, 0, len(BuiltinMembers(name)))
		for _, bm := range BuiltinMembers(name) {
			out = append(out, New(extendMembers(members, NewGlobal(bm.Name)), extendSegs(segs, bm.Name), bm.Kind, s.src))
		}
		return out, nil
	}

	if libs := s.dict.FindWalkers(ast.Query{Kind: ast.LibraryByKind, Arg: name}); len(libs) > 0 {
		var out []Variable
		for _, fn := range s.dict.FindWalkers(ast.Query{Kind: ast.FunctionsByContractID, Arg: libs[0].GetID()}) {
			flats, err := s.expandFunction(members, segs, fn)
			if err != nil {
				return nil, err
			}
			out = append(out, flats...)
		}
		return out, nil
	}

	return []Variable{New(members, segs, name, s.src)}, nil
}

// expandArray implements the T[]...[] case: one IndexAccess + one
// Global("push"):void per remaining dimension, then recurses on the kind
// stripped of that dimension.
func (s *flattenState) expandArray(members []Member, segs []string, pk *kindparser.PlainKind) ([]Variable, error) {
	members = extendMembers(members, NewIndexAccess)
	segs = extendSegs(segs, "$")
	out := []Variable{New(extendMembers(members, NewGlobal("push")), extendSegs(segs, "push"), "void", s.src)}

	rest := &kindparser.Kind{Plain: &kindparser.PlainKind{Name: pk.Name, Dims: pk.Dims[1:]}}
	flats, err := s.expand(members, segs, rest)
	if err != nil {
		return nil, err
	}
	return append(out, flats...), nil
}

// expandField expands a struct field or contract state variable: one
// Reference member keyed by the field's own declaration id, recursed on
// its recorded kind.
func (s *flattenState) expandField(members []Member, segs []string, field ast.Walker) ([]Variable, error) {
	m := extendMembers(members, NewReference(field.GetID()))
	sg := extendSegs(segs, field.GetName())
	kindStr, _ := field.TypeString()
	k, err := kindparser.Parse(kindStr)
	if err != nil {
		return []Variable{New(m, sg, kindStr, s.src)}, nil
	}
	return s.expand(m, sg, k)
}

// expandFunction expands a contract/library function: one Reference member
// keyed by the function's declaration id, recursed on its first return
// kind (the "returnKind" attribute, convention of this reference
// Dictionary) or "void" if it declares none.
func (s *flattenState) expandFunction(members []Member, segs []string, fn ast.Walker) ([]Variable, error) {
	m := extendMembers(members, NewReference(fn.GetID()))
	sg := extendSegs(segs, fn.GetName())
	retKind, ok := fn.Attribute("returnKind")
	if !ok || retKind == "" {
		return []Variable{New(m, sg, "void", s.src)}, nil
	}
	k, err := kindparser.Parse(retKind)
	if err != nil {
		return []Variable{New(m, sg, retKind, s.src)}, nil
	}
	return s.expand(m, sg, k)
}

func appendDims(members []Member, segs []string, dims []*kindparser.Dim) ([]Member, []string) {
	for range dims {
		members = extendMembers(members, NewIndexAccess)
		segs = extendSegs(segs, "$")
	}
	return members, segs
}

func extendMembers(base []Member, m Member) []Member {
	out := make([]Member, len(base)+1)
	copy(out, base)
	out[len(base)] = m
	return out
}

func extendSegs(base []string, seg string) []string {
	out := make([]string, len(base)+1)
	copy(out, base)
	out[len(base)] = seg
	return out
}

// render reconstructs a textual kind from a parsed Kind tree, for the
// diagnostic Variable.Kind field when no original substring is at hand
// (nested mapping values, array element types, conversion targets).
func render(k *kindparser.Kind) string {
	switch {
	case k == nil:
		return ""
	case k.Struct != nil:
		return "struct " + k.Struct.Name + dimsString(k.Struct.Dims)
	case k.Mapping != nil:
		return "mapping(" + render(k.Mapping.Key) + " => " + render(k.Mapping.Value) + ")" + dimsString(k.Mapping.Dims)
	case k.Contract != nil:
		return k.Contract.Namespace + " " + k.Contract.Name + dimsString(k.Contract.Dims)
	case k.Conversion != nil:
		return "type(" + render(k.Conversion.Inner) + ")"
	case k.Plain != nil:
		return k.Plain.Name + dimsString(k.Plain.Dims)
	}
	return ""
}

func dimsString(dims []*kindparser.Dim) string {
	var b strings.Builder
	for _, d := range dims {
		b.WriteString("[")
		if d.Size != nil {
			b.WriteString(strconv.Itoa(*d.Size))
		}
		b.WriteString("]")
	}
	return b.String()
}
