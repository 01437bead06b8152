package trie

import (
	"iter"
	"slices"
)

// Returns an iterator over every word in the tree starting with prefix, in lexicographic order of symbols. If prefix is itself a word it is yielded first.
//
// The iterator yields nothing if prefix contains an invalid character or no word starts with it. Words are yielded in canonical (stored) form. Each call to the returned iterator walks the tree again, so it can be ranged over more than once.
func (t *Tree) WordsWithPrefix(prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		path, err := t.canonical(prefix)
		if err != nil {
			return
		}
		n := t.root.lookup(path)
		if n == nil {
			return
		}
		n.walk(path, yield)
	}
}

// Collects [Tree.WordsWithPrefix] into a slice. Never returns nil.
func (t *Tree) Words(prefix string) []string {
	out := slices.Collect(t.WordsWithPrefix(prefix))
	if out == nil {
		return []string{}
	}
	return out
}

// Depth-first, pre-order walk of the sub-tree at n, which is reached by path. Returns false if the consumer stopped early.
func (n *node) walk(path []rune, yield func(string) bool) bool {
	if n.terminal && !yield(string(path)) {
		return false
	}
	for _, e := range n.edges {
		// siblings re-use the same backing array; string() copies before it gets overwritten
		if !e.child.walk(append(path, e.sym), yield) {
			return false
		}
	}
	return true
}
