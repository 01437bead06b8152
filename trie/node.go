package trie

import (
	"cmp"
	"slices"
)

// Edge from a node to one of its children. A node's edges are kept sorted by symbol, which makes every traversal lexicographic without sorting.
type edge struct {
	sym   rune
	child *node
}

type node struct {
	edges    []edge
	terminal bool
}

// Returns index of the edge for sym, and whether it exists. If it does not exist, the index is where it would be inserted.
func (n *node) find(sym rune) (int, bool) {
	return slices.BinarySearchFunc(n.edges, sym, func(e edge, s rune) int {
		return cmp.Compare(e.sym, s)
	})
}

func (n *node) child(sym rune) *node {
	idx, ok := n.find(sym)
	if !ok {
		return nil
	}
	return n.edges[idx].child
}

// Returns the child for sym, creating an empty one if needed.
func (n *node) ensureChild(sym rune) *node {
	idx, ok := n.find(sym)
	if ok {
		return n.edges[idx].child
	}
	c := &node{}
	n.edges = slices.Insert(n.edges, idx, edge{sym: sym, child: c})
	return c
}

// Follows path down from n. Returns nil if any step is missing.
func (n *node) lookup(path []rune) *node {
	cur := n
	for _, sym := range path {
		cur = cur.child(sym)
		if cur == nil {
			return nil
		}
	}
	return cur
}

func (n *node) isLeaf() bool {
	return len(n.edges) == 0
}

// Number of nodes in the sub-tree, including n itself.
func (n *node) count() int {
	total := 1
	for _, e := range n.edges {
		total += e.child.count()
	}
	return total
}
