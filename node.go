package avltree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// node is a single node in the AVL core shared by Set and Map. P is the
// per-node payload: a duplicate count for Set, a value for Map.
type node[K constraints.Ordered, P any] struct {
	key     K
	payload P

	// bal is the balance factor: height(right) - height(left). Always in
	// {-1, 0, +1} once the node has settled after its owning operation
	// returns.
	bal int8

	left  *node[K, P]
	right *node[K, P]
}

// rotationCounters tallies the eight rotation kinds distinguished by
// insert-path vs erase-path and by rotation shape. Set never surfaces these;
// Map exposes them through Stats.
type rotationCounters struct {
	lli, lri, rli, rri uint64
	lle, lre, rle, rre uint64
}

// rotateLL restructures p (left-heavy) around its left child, returning the
// new subtree root. Balance factors are left untouched; callers stamp them
// since the correct values depend on whether this is an insert or an erase.
func rotateLL[K constraints.Ordered, P any](p *node[K, P]) *node[K, P] {
	p1 := p.left
	p.left = p1.right
	p1.right = p
	return p1
}

// rotateRR is the mirror of rotateLL.
func rotateRR[K constraints.Ordered, P any](p *node[K, P]) *node[K, P] {
	p1 := p.right
	p.right = p1.left
	p1.left = p
	return p1
}

// rotateLR rotates p1 (p.left) and its right child left, then p and that
// former grandchild right. The grandchild becomes the new subtree root.
func rotateLR[K constraints.Ordered, P any](p *node[K, P]) *node[K, P] {
	p.left = rotateRR(p.left)
	return rotateLL(p)
}

// rotateRL is the mirror of rotateLR.
func rotateRL[K constraints.Ordered, P any](p *node[K, P]) *node[K, P] {
	p.right = rotateLL(p.right)
	return rotateRR(p)
}

// stampSingle sets the post-rotation balance factors for a single rotation
// that resolves an overflow in direction dir (+1 for an RR rotation, -1 for
// an LL rotation). p1Bal is p1's balance factor captured before the
// rotation ran. It reports whether the rotation reduced the subtree's
// height, which on the insertion path is always true and on the deletion
// path is false only when p1Bal was 0.
func stampSingle[K constraints.Ordered, P any](p, p1 *node[K, P], dir, p1Bal int8) bool {
	if p1Bal == 0 {
		p.bal = dir
		p1.bal = -dir
		return false
	}
	p.bal = 0
	p1.bal = 0
	return true
}

// stampDoubleLR sets the post-rotation balance factors for an LR double
// rotation. p2Bal is p2's balance factor (p1.right, before the rotation
// ran).
func stampDoubleLR[K constraints.Ordered, P any](p, p1, p2 *node[K, P], p2Bal int8) {
	switch p2Bal {
	case -1:
		p.bal, p1.bal = 1, 0
	case 0:
		p.bal, p1.bal = 0, 0
	case 1:
		p.bal, p1.bal = 0, -1
	}
	p2.bal = 0
}

// stampDoubleRL is the mirror of stampDoubleLR.
func stampDoubleRL[K constraints.Ordered, P any](p, p1, p2 *node[K, P], p2Bal int8) {
	switch p2Bal {
	case -1:
		p.bal, p1.bal = 0, 1
	case 0:
		p.bal, p1.bal = 0, 0
	case 1:
		p.bal, p1.bal = -1, 0
	}
	p2.bal = 0
}

// invariantViolation reports a corrupted balance factor. The tree is
// presumed corrupt at this point, a programming error rather than a
// recoverable condition, so this aborts the operation instead of
// returning an error value.
func invariantViolation(format string, args ...any) {
	panic(fmt.Sprintf("avltree: invariant violation: "+format, args...))
}

// checkBalance asserts n's balance factor is within the AVL-valid range
// after a rebalance step has stamped it.
func checkBalance[K constraints.Ordered, P any](n *node[K, P]) {
	if n.bal < -1 || n.bal > 1 {
		invariantViolation("node with key %v has balance factor %d, want [-1,1]", n.key, n.bal)
	}
}

// height computes the height of the subtree rooted at n the slow way, by
// walking both children. It exists for invariant checking in tests, not for
// use on any hot path; the core never stores or recomputes full heights.
func (n *node[K, P]) height() int {
	if n == nil {
		return 0
	}
	lh, rh := n.left.height(), n.right.height()
	if lh > rh {
		return lh + 1
	}
	return rh + 1
}
