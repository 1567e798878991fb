package avltree

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// printTree writes an indented visual dump of the subtree rooted at n to w,
// right subtree first, so that reading top to bottom matches the tree
// rotated a quarter turn counter-clockwise. describe formats a node's
// payload (and anything else worth showing, e.g. balance factor) next to
// its key.
func printTree[K constraints.Ordered, P any](w io.Writer, n *node[K, P], depth int, describe func(K, P, int8) string) {
	if n == nil {
		return
	}
	printTree(w, n.right, depth+1, describe)
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("    ", depth), describe(n.key, n.payload, n.bal))
	printTree(w, n.left, depth+1, describe)
}
