package trie

import (
	"bufio"
	"io"
	"strings"

	"github.com/xlab/treeprint"
)

// Renders the whole tree, one line per node, for debugging.
//
// Each line is the prefix spelled by the path to that node, indented two spaces per level below the first. Terminal nodes (complete words) are wrapped in asterisks, eg "*app*". The root is the first line, and is empty.
func (t *Tree) Display() string {
	var sb strings.Builder
	t.Fprint(&sb)
	return sb.String()
}

// Writes the same output as [Tree.Display] to w.
func (t *Tree) Fprint(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fprintNode(bw, t.root, nil)
	// bufio.Writer errors are sticky, and returned by Flush
	return bw.Flush()
}

func fprintNode(w *bufio.Writer, n *node, path []rune) {
	if len(path) > 1 {
		w.WriteString(strings.Repeat("  ", len(path)-1))
	}
	if n.terminal {
		w.WriteString("*" + string(path) + "*\n")
	} else {
		w.WriteString(string(path) + "\n")
	}
	for _, e := range n.edges {
		fprintNode(w, e.child, append(path, e.sym))
	}
}

// Builds a box-drawing rendering of the tree. Each node is labeled with its symbol; terminal nodes are labeled with the complete word in asterisks.
func (t *Tree) TreePrint() treeprint.Tree {
	root := treeprint.New()
	addBranches(root, t.root, nil)
	return root
}

func addBranches(tree treeprint.Tree, n *node, path []rune) {
	for _, e := range n.edges {
		p := append(path, e.sym)
		label := string(e.sym)
		if e.child.terminal {
			label = "*" + string(p) + "*"
		}
		if e.child.isLeaf() {
			tree.AddNode(label)
			continue
		}
		addBranches(tree.AddBranch(label), e.child, p)
	}
}
