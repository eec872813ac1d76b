package variable

// builtinMember is one entry of a built-in namespace's fixed member table.
type builtinMember struct {
	Name string
	Kind string
}

// builtinNamespaces is the fixed member table for block/msg/tx/abi/address.
// Namespace lookups from flatten.go expand a Global(namespace) root into
// one flat per entry here, each keyed by the namespace's own leaf kind.
var builtinNamespaces = map[string][]builtinMember{
	"block": {
		{"blockhash", "bytes32"},
		{"coinbase", "address"},
		{"difficulty", "uint256"},
		{"gaslimit", "uint256"},
		{"number", "uint256"},
		{"timestamp", "uint256"},
	},
	"msg": {
		{"data", "bytes"},
		{"gas", "uint256"},
		{"sender", "address"},
		{"sig", "bytes4"},
		{"value", "uint256"},
	},
	"tx": {
		{"gasprice", "uint256"},
		{"origin", "address"},
	},
	"abi": {
		{"encode", "bytes"},
		{"encodePacked", "bytes"},
		{"encodeWithSelector", "bytes"},
		{"encodeWithSignature", "bytes"},
	},
	"address": {
		{"balance", "uint256"},
		{"transfer", "void"},
		{"send", "bool"},
		{"call", "bool"},
		{"callcode", "bool"},
		{"delegatecall", "bool"},
	},
}

// IsBuiltinNamespace reports whether name is one of the fixed built-in
// namespaces above (block/msg/tx/abi/address).
func IsBuiltinNamespace(name string) bool {
	_, ok := builtinNamespaces[name]
	return ok
}

// BuiltinMembers returns the fixed member table for a built-in namespace,
// or nil if name isn't one.
func BuiltinMembers(name string) []builtinMember {
	return builtinNamespaces[name]
}
