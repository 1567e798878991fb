package avltree

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// RotationStats is a snapshot of the eight rotation counters a Map
// accumulates over its lifetime: insert-path LL/LR/RL/RR and erase-path
// LL/LR/RL/RR. Clients reset the count by constructing a new Map.
type RotationStats struct {
	InsertLL, InsertLR, InsertRL, InsertRR uint64
	EraseLL, EraseLR, EraseRL, EraseRR     uint64
}

// Map is an ordered key-to-value container backed by the same AVL core as
// Set. Unlike Set, a duplicate insertion overwrites the existing value
// rather than counting it.
type Map[K constraints.Ordered, V any] struct {
	root  *node[K, V]
	count int
	rot   rotationCounters
}

// NewMap returns an empty Map ready to use.
func NewMap[K constraints.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// Insert sets key's value, creating the key if absent. It reports true iff
// an existing key's value was overwritten (false for a brand new key).
func (m *Map[K, V]) Insert(key K, value V) bool {
	newRoot, _, isNew := insertRec(m.root, key, value, func(existing *V) {
		*existing = value
	}, &m.rot)
	m.root = newRoot
	if isNew {
		m.count++
	}
	return !isNew
}

// Erase removes key. It reports true iff key was present.
func (m *Map[K, V]) Erase(key K) bool {
	newRoot, _, removed := deleteRec(m.root, key, &m.rot)
	m.root = newRoot
	if removed {
		m.count--
	}
	return removed
}

// Contains reports whether key is currently present.
func (m *Map[K, V]) Contains(key K) bool {
	return findNode(m.root, key) != nil
}

// Find returns key's value and true, or the zero value and false if key is
// absent.
func (m *Map[K, V]) Find(key K) (V, bool) {
	n := findNode(m.root, key)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.payload, true
}

// Update applies fn to key's current value in place and reports whether key
// was present. It never changes the tree's shape, so it runs as a single
// iterative descent rather than through the insertion engine.
func (m *Map[K, V]) Update(key K, fn func(V) V) bool {
	n := findNode(m.root, key)
	if n == nil {
		return false
	}
	n.payload = fn(n.payload)
	return true
}

// Size returns the number of keys currently stored.
func (m *Map[K, V]) Size() int {
	return m.count
}

// Empty reports whether the map holds no keys.
func (m *Map[K, V]) Empty() bool {
	return m.count == 0
}

// Clear removes every key from the map. It does not reset the rotation
// counters; construct a new Map for that.
func (m *Map[K, V]) Clear() {
	m.root = nil
	m.count = 0
}

// Keys returns every key in ascending order.
func (m *Map[K, V]) Keys() []K {
	return collectKeys(m.root, make([]K, 0, m.count))
}

// Stats returns a snapshot of the rotation counters accumulated so far.
func (m *Map[K, V]) Stats() RotationStats {
	return RotationStats{
		InsertLL: m.rot.lli,
		InsertLR: m.rot.lri,
		InsertRL: m.rot.rli,
		InsertRR: m.rot.rri,
		EraseLL:  m.rot.lle,
		EraseLR:  m.rot.lre,
		EraseRL:  m.rot.rle,
		EraseRR:  m.rot.rre,
	}
}

// PrintTree writes an indented, right-subtree-first dump of the map to w,
// annotating each key with its balance factor and value.
func (m *Map[K, V]) PrintTree(w io.Writer) {
	printTree(w, m.root, 0, func(key K, value V, bal int8) string {
		return fmt.Sprintf("%v -> %v (bal=%+d)", key, value, bal)
	})
}
