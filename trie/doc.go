/*
Package trie implements an in-memory prefix tree ("trie") of words, used for autocomplete-style lookups.

## Terminology

node: any position in the tree. every node except the root is reached from the root by exactly one path of symbols. the root represents the empty prefix

symbol: the canonical rune a node is stored under. an [Alphabet] maps input characters to symbols (eg, folding upper case to lower case), and rejects characters outside the alphabet

terminal: a node is terminal if the path from the root to it spells a word that was inserted and not yet deleted

## Invariants

A node exists only if it is needed: it is the root, it is terminal, or it has at least one child. Insertion never breaks this. Deletion restores it by pruning nodes on the way back up from the deleted word, stopping at the first ancestor which is terminal, has another child, or is the root.

Input is fully canonicalized before any mutation, so a word with an invalid character never leaves a partial path behind.

## Hacking

A [Tree] is not safe for concurrent use; wrap it with a lock if it is shared between goroutines. Mutating the tree while ranging over [Tree.WordsWithPrefix] has undefined results.
*/
package trie
