package avltree

import "golang.org/x/exp/constraints"

// insertRec descends to key's position, creating a new node if absent or
// invoking onDup against the existing payload otherwise. It returns the
// (possibly new) subtree root, whether the subtree grew in height, and
// whether a new node was created.
func insertRec[K constraints.Ordered, P any](n *node[K, P], key K, payload P, onDup func(existing *P), rc *rotationCounters) (*node[K, P], bool, bool) {
	if n == nil {
		return &node[K, P]{key: key, payload: payload}, true, true
	}

	switch {
	case key < n.key:
		newLeft, grew, isNew := insertRec(n.left, key, payload, onDup, rc)
		n.left = newLeft
		if !grew {
			return n, false, isNew
		}
		newRoot, stillGrew := growLeft(n, rc)
		return newRoot, stillGrew, isNew

	case n.key < key:
		newRight, grew, isNew := insertRec(n.right, key, payload, onDup, rc)
		n.right = newRight
		if !grew {
			return n, false, isNew
		}
		newRoot, stillGrew := growRight(n, rc)
		return newRoot, stillGrew, isNew

	default:
		onDup(&n.payload)
		return n, false, false
	}
}

// growLeft rebalances n after its left subtree grew by one. It reports
// whether n's own subtree grew, so the caller knows whether to keep
// climbing.
func growLeft[K constraints.Ordered, P any](n *node[K, P], rc *rotationCounters) (*node[K, P], bool) {
	switch n.bal {
	case 1:
		n.bal = 0
		return n, false
	case 0:
		n.bal = -1
		return n, true
	default: // -1, now overflowing to -2: left-heavy imbalance
		p1 := n.left
		if p1.bal <= 0 {
			p1Bal := p1.bal
			newRoot := rotateLL(n)
			stampSingle(n, p1, -1, p1Bal)
			rc.lli++
			checkBalance(n)
			checkBalance(p1)
			return newRoot, false
		}
		p2 := p1.right
		p2Bal := p2.bal
		newRoot := rotateLR(n)
		stampDoubleLR(n, p1, p2, p2Bal)
		rc.lri++
		checkBalance(n)
		checkBalance(p1)
		checkBalance(p2)
		return newRoot, false
	}
}

// growRight is the mirror of growLeft.
func growRight[K constraints.Ordered, P any](n *node[K, P], rc *rotationCounters) (*node[K, P], bool) {
	switch n.bal {
	case -1:
		n.bal = 0
		return n, false
	case 0:
		n.bal = 1
		return n, true
	default: // +1, now overflowing to +2: right-heavy imbalance
		p1 := n.right
		if p1.bal >= 0 {
			p1Bal := p1.bal
			newRoot := rotateRR(n)
			stampSingle(n, p1, 1, p1Bal)
			rc.rri++
			checkBalance(n)
			checkBalance(p1)
			return newRoot, false
		}
		p2 := p1.left
		p2Bal := p2.bal
		newRoot := rotateRL(n)
		stampDoubleRL(n, p1, p2, p2Bal)
		rc.rli++
		checkBalance(n)
		checkBalance(p1)
		checkBalance(p2)
		return newRoot, false
	}
}
