package avltree

import "golang.org/x/exp/constraints"

// deleteRec descends to key's node and removes it, reporting the (possibly
// new) subtree root, whether the subtree's height shrank, and whether a key
// was actually removed.
func deleteRec[K constraints.Ordered, P any](n *node[K, P], key K, rc *rotationCounters) (*node[K, P], bool, bool) {
	if n == nil {
		return nil, false, false
	}

	switch {
	case key < n.key:
		newLeft, shrank, removed := deleteRec(n.left, key, rc)
		n.left = newLeft
		if !removed {
			return n, false, false
		}
		if !shrank {
			return n, false, true
		}
		newRoot, stillShrank := balanceLeft(n, rc)
		return newRoot, stillShrank, true

	case n.key < key:
		newRight, shrank, removed := deleteRec(n.right, key, rc)
		n.right = newRight
		if !removed {
			return n, false, false
		}
		if !shrank {
			return n, false, true
		}
		newRoot, stillShrank := balanceRight(n, rc)
		return newRoot, stillShrank, true

	default:
		return eraseTarget(n, rc)
	}
}

// eraseTarget removes the located node n, choosing the replacement from
// whichever subtree n.bal says is deeper rather than always favoring the
// left (predecessor) subtree as the classical algorithm does. Drawing
// from the deeper side avoids an unnecessary second height-decrease
// propagation on the shallow side.
func eraseTarget[K constraints.Ordered, P any](n *node[K, P], rc *rotationCounters) (*node[K, P], bool, bool) {
	if n.left == nil {
		return n.right, true, true
	}
	if n.right == nil {
		return n.left, true, true
	}

	if n.bal <= 0 {
		// Balanced or left-heavy: extract the rightmost (predecessor)
		// of the left subtree, the deeper side.
		newLeft, shrank := eraseRight(n.left, n, rc)
		n.left = newLeft
		if !shrank {
			return n, false, true
		}
		newRoot, stillShrank := balanceLeft(n, rc)
		return newRoot, stillShrank, true
	}

	// Right-heavy: extract the leftmost (successor) of the right subtree.
	newRight, shrank := eraseLeft(n.right, n, rc)
	n.right = newRight
	if !shrank {
		return n, false, true
	}
	newRoot, stillShrank := balanceRight(n, rc)
	return newRoot, stillShrank, true
}

// eraseLeft descends to the leftmost node of the subtree rooted at n,
// copies its key and payload into replacement, and splices out the
// extremum. It reports whether the subtree (n's original position) shrank.
func eraseLeft[K constraints.Ordered, P any](n *node[K, P], replacement *node[K, P], rc *rotationCounters) (*node[K, P], bool) {
	if n.left != nil {
		newLeft, shrank := eraseLeft(n.left, replacement, rc)
		n.left = newLeft
		if !shrank {
			return n, false
		}
		return balanceLeft(n, rc)
	}

	replacement.key = n.key
	replacement.payload = n.payload
	return n.right, true
}

// eraseRight is the mirror of eraseLeft: it descends to the rightmost node.
func eraseRight[K constraints.Ordered, P any](n *node[K, P], replacement *node[K, P], rc *rotationCounters) (*node[K, P], bool) {
	if n.right != nil {
		newRight, shrank := eraseRight(n.right, replacement, rc)
		n.right = newRight
		if !shrank {
			return n, false
		}
		return balanceRight(n, rc)
	}

	replacement.key = n.key
	replacement.payload = n.payload
	return n.left, true
}

// balanceLeft rebalances n after its left subtree shrank by one. It
// reports whether n's own subtree shrank, so the caller knows whether to
// keep climbing.
func balanceLeft[K constraints.Ordered, P any](n *node[K, P], rc *rotationCounters) (*node[K, P], bool) {
	switch n.bal {
	case -1:
		n.bal = 0
		return n, true
	case 0:
		n.bal = 1
		return n, false
	default: // +1, now overflowing to +2: right-heavy imbalance
		p1 := n.right
		if p1.bal >= 0 {
			p1Bal := p1.bal
			newRoot := rotateRR(n)
			reduced := stampSingle(n, p1, 1, p1Bal)
			rc.rre++
			checkBalance(n)
			checkBalance(p1)
			return newRoot, reduced
		}
		p2 := p1.left
		p2Bal := p2.bal
		newRoot := rotateRL(n)
		stampDoubleRL(n, p1, p2, p2Bal)
		rc.rle++
		checkBalance(n)
		checkBalance(p1)
		checkBalance(p2)
		return newRoot, true
	}
}

// balanceRight is the mirror of balanceLeft.
func balanceRight[K constraints.Ordered, P any](n *node[K, P], rc *rotationCounters) (*node[K, P], bool) {
	switch n.bal {
	case 1:
		n.bal = 0
		return n, true
	case 0:
		n.bal = -1
		return n, false
	default: // -1, now overflowing to -2: left-heavy imbalance
		p1 := n.left
		if p1.bal <= 0 {
			p1Bal := p1.bal
			newRoot := rotateLL(n)
			reduced := stampSingle(n, p1, -1, p1Bal)
			rc.lle++
			checkBalance(n)
			checkBalance(p1)
			return newRoot, reduced
		}
		p2 := p1.right
		p2Bal := p2.bal
		newRoot := rotateLR(n)
		stampDoubleLR(n, p1, p2, p2Bal)
		rc.lre++
		checkBalance(n)
		checkBalance(p1)
		checkBalance(p2)
		return newRoot, true
	}
}
