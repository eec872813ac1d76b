package ast

// CollectAccessRoots walks w's subtree and returns every maximal access-chain
// expression — an Identifier, MemberAccess, or IndexAccess node that is not
// itself the base of an enclosing MemberAccess/IndexAccess. Each returned
// root is the "focus" expression that variable.Flatten expects: flattening
// "s.a.b" once at the outermost MemberAccess, never also at "s.a" or "s".
//
// IndexAccess's index and extra children (everything but the base, in the
// "[base, index, extra…]" child shape) are independent sub-expressions and
// are still walked for their own roots.
func CollectAccessRoots(w Walker) []Walker {
	var roots []Walker
	var walk func(n Walker)
	walk = func(n Walker) {
		if n == nil {
			return
		}
		switch n.Type() {
		case "Identifier":
			roots = append(roots, n)
			return
		case "MemberAccess":
			roots = append(roots, n)
			return
		case "IndexAccess":
			roots = append(roots, n)
			for i := 1; i < n.ChildCount(); i++ {
				walk(n.Child(i))
			}
			return
		default:
			for i := 0; i < n.ChildCount(); i++ {
				walk(n.Child(i))
			}
		}
	}
	walk(w)
	return roots
}
