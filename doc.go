// Package avltree implements an in-memory ordered associative container on
// top of a single height-balanced binary search tree (AVL) core.
//
// Two surface containers are built on that core: Set, a multiset-like
// ordered collection that counts duplicate insertions, and Map, an ordered
// key-to-value container. Both share the same node layout, rotation
// primitives, and recursive insertion/deletion engines; they differ only in
// the per-node payload and in how a duplicate key is handled.
//
// The deletion engine departs from the classical (Wirth) algorithm: instead
// of always drawing a two-children node's replacement from the left
// subtree's predecessor, it chooses the predecessor or successor based on
// which side is deeper (the node's own balance factor), via the mirror
// eraseLeft/eraseRight routines in delete.go. This avoids unnecessary
// height-decrease propagation on the shallow side and fixes a known
// balance-factor inconsistency in the naive version of that algorithm.
package avltree
