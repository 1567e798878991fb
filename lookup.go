package avltree

import "golang.org/x/exp/constraints"

// findNode performs an iterative, non-recursive descent for key. It
// returns nil if key is absent.
func findNode[K constraints.Ordered, P any](n *node[K, P], key K) *node[K, P] {
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case n.key < key:
			n = n.right
		default:
			return n
		}
	}
	return nil
}
