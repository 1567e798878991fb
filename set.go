package avltree

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// Set is an ordered, multiset-like collection: each distinct key is stored
// once, with a duplicate count tracking how many times it has been
// inserted. It is backed by the AVL core in node.go, insert.go, and
// delete.go.
type Set[K constraints.Ordered] struct {
	root  *node[K, uint]
	count int
	rot   rotationCounters
}

// NewSet returns an empty Set ready to use.
func NewSet[K constraints.Ordered]() *Set[K] {
	return &Set[K]{}
}

// Insert adds key to the set, or increments its duplicate count if it is
// already present. It reports true iff a new node was created; a duplicate
// insertion returns false even though it mutates the stored count.
func (s *Set[K]) Insert(key K) bool {
	newRoot, _, isNew := insertRec(s.root, key, uint(1), func(existing *uint) {
		*existing++
	}, &s.rot)
	s.root = newRoot
	if isNew {
		s.count++
	}
	return isNew
}

// Erase decrements key's duplicate count. It reports true iff that
// decrement caused the key's node to be physically removed (the 1→0
// transition); a decrement that leaves the count ≥ 1, or an erase of an
// absent key, returns false and leaves the tree structurally unchanged.
func (s *Set[K]) Erase(key K) bool {
	n := findNode(s.root, key)
	if n == nil {
		return false
	}
	if n.payload > 1 {
		n.payload--
		return false
	}

	newRoot, _, removed := deleteRec(s.root, key, &s.rot)
	s.root = newRoot
	if removed {
		s.count--
	}
	return removed
}

// Contains reports whether key is currently present.
func (s *Set[K]) Contains(key K) bool {
	return findNode(s.root, key) != nil
}

// Count reports the current duplicate count for key, and whether key is
// present at all. It surfaces the count Erase already tracks internally.
func (s *Set[K]) Count(key K) (uint, bool) {
	n := findNode(s.root, key)
	if n == nil {
		return 0, false
	}
	return n.payload, true
}

// Size returns the number of distinct keys currently stored.
func (s *Set[K]) Size() int {
	return s.count
}

// Empty reports whether the set holds no keys.
func (s *Set[K]) Empty() bool {
	return s.count == 0
}

// Clear removes every key from the set.
func (s *Set[K]) Clear() {
	s.root = nil
	s.count = 0
}

// Keys returns every key in ascending order.
func (s *Set[K]) Keys() []K {
	return collectKeys(s.root, make([]K, 0, s.count))
}

// PrintTree writes an indented, right-subtree-first dump of the set to w,
// annotating each key with its balance factor and duplicate count.
func (s *Set[K]) PrintTree(w io.Writer) {
	printTree(w, s.root, 0, func(key K, count uint, bal int8) string {
		return fmt.Sprintf("%v (bal=%+d, count=%d)", key, bal, count)
	})
}
