package avltree

import "golang.org/x/exp/constraints"

// collectKeys appends the in-order traversal of the subtree rooted at n to
// out, returning the extended slice. This is the only traversal the core
// offers: one eager, ascending []K, with no exposed tree structure or lazy
// iterator.
func collectKeys[K constraints.Ordered, P any](n *node[K, P], out []K) []K {
	if n == nil {
		return out
	}
	out = collectKeys(n.left, out)
	out = append(out, n.key)
	out = collectKeys(n.right, out)
	return out
}
