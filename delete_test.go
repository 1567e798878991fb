package avltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T, keys []int) (*node[int, struct{}], *rotationCounters) {
	t.Helper()
	rc := &rotationCounters{}
	var root *node[int, struct{}]
	for _, k := range keys {
		root, _, _ = insertRec(root, k, struct{}{}, func(*struct{}) {}, rc)
	}
	return root, rc
}

func TestDeleteRecLeafRemoval(t *testing.T) {
	root, rc := buildTree(t, []int{10})

	newRoot, shrank, removed := deleteRec(root, 10, rc)

	assert.True(t, shrank)
	assert.True(t, removed)
	assert.Nil(t, newRoot)
}

func TestDeleteRecAbsentKey(t *testing.T) {
	root, rc := buildTree(t, []int{10, 5, 15})

	newRoot, shrank, removed := deleteRec(root, 99, rc)

	assert.False(t, shrank)
	assert.False(t, removed)
	require.NotNil(t, newRoot)
	checkBalance(newRoot)
}

func TestDeleteRecOneChild(t *testing.T) {
	root, rc := buildTree(t, []int{10, 5})

	newRoot, _, removed := deleteRec(root, 10, rc)

	assert.True(t, removed)
	require.NotNil(t, newRoot)
	assert.Equal(t, 5, newRoot.key)
}

func TestDeleteRecTwoChildrenBalancedPicksPredecessor(t *testing.T) {
	// bal == 0 at the target: spec chooses the left subtree's
	// predecessor (rightmost of the left side).
	root, rc := buildTree(t, []int{10, 5, 15})
	require.Equal(t, int8(0), root.bal)

	newRoot, _, removed := deleteRec(root, 10, rc)

	assert.True(t, removed)
	require.NotNil(t, newRoot)
	assert.Equal(t, 5, newRoot.key, "balanced two-children erase should draw the predecessor")
	checkBalance(newRoot)
}

func TestDeleteRecTwoChildrenRightHeavyPicksSuccessor(t *testing.T) {
	// Build a target node whose balance factor is +1 (right subtree
	// deeper), then confirm deletion draws the successor instead.
	root, rc := buildTree(t, []int{10, 5, 20, 15, 25})
	target := findNode(root, 10)
	require.NotNil(t, target)
	require.Equal(t, int8(1), target.bal)

	newRoot, _, removed := deleteRec(root, 10, rc)

	assert.True(t, removed)
	checkBalance(newRoot)
	assert.Nil(t, findNode(newRoot, 10))
	assert.Equal(t, 15, newRoot.key, "right-heavy two-children erase should draw the successor")
}

func TestDeleteRecFullSequenceStaysBalanced(t *testing.T) {
	keys := []int{8, 9, 11, 15, 19, 20, 21, 7, 3, 2, 1, 5, 6, 4, 13, 14, 10, 12, 17, 16, 18}
	root, rc := buildTree(t, keys)

	for _, k := range keys {
		newRoot, _, removed := deleteRec(root, k, rc)
		assert.True(t, removed)
		root = newRoot
		if root != nil {
			var walk func(n *node[int, struct{}])
			walk = func(n *node[int, struct{}]) {
				if n == nil {
					return
				}
				checkBalance(n)
				walk(n.left)
				walk(n.right)
			}
			walk(root)
		}
	}
	assert.Nil(t, root)
}
