package trie

import (
	"errors"
	"fmt"
)

var ErrInvalidCharacter = errors.New("character not in alphabet")

var ErrEmptyWord = errors.New("word must not be empty")

// Tree is a set of words indexed by prefix.
//
// The zero value is not usable; create trees with [New].
type Tree struct {
	root     *node
	alphabet Alphabet
	size     int
}

type Option func(*Tree)

// Configures the [Alphabet] of the tree. The default is [Lowercase].
func WithAlphabet(a Alphabet) Option {
	return func(t *Tree) {
		if a != nil {
			t.alphabet = a
		}
	}
}

// Creates an empty tree: a single non-terminal root node.
func New(opts ...Option) *Tree {
	t := &Tree{
		root:     &node{},
		alphabet: Lowercase,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tree) Alphabet() Alphabet {
	return t.alphabet
}

// Converts word to the sequence of symbols it is stored under. Fails if any character is outside the alphabet.
func (t *Tree) canonical(word string) ([]rune, error) {
	if n, ok := t.alphabet.(Normalizer); ok {
		word = n.Normalize(word)
	}
	path := make([]rune, 0, len(word))
	for i, r := range word {
		sym, ok := t.alphabet.Symbol(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, r, i)
		}
		path = append(path, sym)
	}
	return path, nil
}

// Adds word to the tree. Inserting a word which is already present is a no-op.
//
// If any character of word is outside the tree's alphabet, returns an error wrapping [ErrInvalidCharacter] and the tree is not modified. Empty words are rejected with [ErrEmptyWord].
func (t *Tree) Insert(word string) error {
	if word == "" {
		return ErrEmptyWord
	}
	path, err := t.canonical(word)
	if err != nil {
		return err
	}
	cur := t.root
	for _, sym := range path {
		cur = cur.ensureChild(sym)
	}
	if !cur.terminal {
		cur.terminal = true
		t.size++
	}
	return nil
}

// Returns true if word was inserted and has not been deleted since. A word which only exists as a prefix of other words is not contained.
func (t *Tree) Contains(word string) bool {
	if word == "" {
		return false
	}
	path, err := t.canonical(word)
	if err != nil {
		return false
	}
	n := t.root.lookup(path)
	return n != nil && n.terminal
}

// Removes word from the tree, pruning any nodes which are no longer needed. Returns true if the word was present.
//
// Deleting a word which is not present (including words with invalid characters) is a no-op.
func (t *Tree) Delete(word string) bool {
	if word == "" {
		return false
	}
	path, err := t.canonical(word)
	if err != nil {
		return false
	}
	// the root is never pruned, so the second return value is ignored here
	found, _ := t.root.remove(path)
	if found {
		t.size--
	}
	return found
}

// Removes all words, resetting the tree to the same state as a new one.
func (t *Tree) Clear() {
	t.root = &node{}
	t.size = 0
}

// Number of words in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Number of nodes in the tree, including the root. An empty tree has exactly one node.
func (t *Tree) NodeCount() int {
	return t.root.count()
}

// Returns the longest extension of prefix which is shared by every word starting with prefix: what a shell would fill in when tab-completing. The second return value is false if no stored word starts with prefix.
//
// The result is in canonical (stored) form, so it may differ in case from prefix.
func (t *Tree) LongestCompletion(prefix string) (string, bool) {
	path, err := t.canonical(prefix)
	if err != nil {
		return "", false
	}
	n := t.root.lookup(path)
	if n == nil || (n.isLeaf() && !n.terminal) {
		return "", false
	}
	for !n.terminal && len(n.edges) == 1 {
		path = append(path, n.edges[0].sym)
		n = n.edges[0].child
	}
	return string(path), true
}
