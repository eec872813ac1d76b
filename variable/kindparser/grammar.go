// Package kindparser parses a compiler-recorded "kind" string (solc's
// typeString convention: "struct Foo", "mapping(uint256 => Bar)",
// "contract Baz", "type(uint256)", "uint256[3][]", …) into a structured
// Kind tree for variable.Flatten to walk, replacing a brittle
// regex/paren-depth scanner with a real grammar.
package kindparser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var kindLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `(?i)\b(struct|mapping|contract|library|interface|type)\b`},
	{Name: "Arrow", Pattern: `=>`},
	{Name: "Ident", Pattern: `[A-Za-z_$][A-Za-z0-9_$.]*`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[,()\[\]]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// Kind is the top-level grammar node. Alternatives are tried in order —
// struct, mapping, contract-family, explicit conversion, then plain — so
// the first structural match wins.
type Kind struct {
	Struct     *StructKind     `parser:"(  @@"`
	Mapping    *MappingKind    `parser:"| @@"`
	Contract   *ContractKind   `parser:"| @@"`
	Conversion *ConversionKind `parser:"| @@"`
	Plain      *PlainKind      `parser:"| @@ )"`
}

// Dim is one "[" size? "]" array-dimension suffix. Size is nil for a
// dynamic array ("T[]"), set for a fixed-size one ("T[3]").
type Dim struct {
	Size *int `parser:"\"[\" @Int? \"]\""`
}

// StructKind: "struct" <name> <dims>*
type StructKind struct {
	Name string `parser:"\"struct\" @Ident"`
	Dims []*Dim `parser:"@@*"`
}

// MappingKind: "mapping" "(" <key> "=>" <value> ")" <dims>*
type MappingKind struct {
	Key   *Kind  `parser:"\"mapping\" \"(\" @@"`
	Value *Kind  `parser:"\"=>\" @@ \")\""`
	Dims  []*Dim `parser:"@@*"`
}

// ContractKind: ("contract"|"library"|"interface") <name> <dims>*
type ContractKind struct {
	Namespace string `parser:"@(\"contract\"|\"library\"|\"interface\")"`
	Name      string `parser:"@Ident"`
	Dims      []*Dim `parser:"@@*"`
}

// ConversionKind: "type" "(" <inner> ")" — a type(T) conversion expression.
type ConversionKind struct {
	Inner *Kind `parser:"\"type\" \"(\" @@ \")\""`
}

// PlainKind: <name> <dims>* — a builtin, leaf, or bare contract/library
// reference by name, with zero or more trailing array dimensions.
type PlainKind struct {
	Name string `parser:"@Ident"`
	Dims []*Dim `parser:"@@*"`
}

var kindParser = participle.MustBuild[Kind](
	participle.Lexer(kindLexer),
	participle.CaseInsensitive("Keyword"),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse parses a recorded kind string into a Kind tree.
func Parse(kind string) (*Kind, error) {
	return kindParser.ParseString("", kind)
}

