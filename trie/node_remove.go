package trie

import (
	"slices"
)

// Removes the word spelled by path from the sub-tree at n.
//
// Returns whether the word was found, and whether n itself is no longer needed (non-terminal with no children) and should be pruned by the caller. The caller decides whether pruning applies; the root is never pruned.
func (n *node) remove(path []rune) (found bool, prune bool) {
	if len(path) == 0 {
		if !n.terminal {
			// only a prefix of other words; nothing to do
			return false, false
		}
		n.terminal = false
		return true, n.isLeaf()
	}

	idx, ok := n.find(path[0])
	if !ok {
		// word not in tree
		return false, false
	}

	found, prune = n.edges[idx].child.remove(path[1:])
	if !prune {
		return found, false
	}

	// child sub-tree is now empty; drop the edge. this node might now be unneeded as well
	n.edges = slices.Delete(n.edges, idx, idx+1)
	return found, !n.terminal && n.isLeaf()
}
