package styledtree

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders sn's subtree as an indented text tree, useful for
// debugging cascade results. Mirrors the xlab/treeprint usage seen in
// github.com/npillmayer/fp's persistent/btree tests, swapped in here as
// a lighter-weight replacement for the teacher's GraphViz-based
// dom/domdbg package, which has no consumer in this project.
func Dump(sn *StyNode) string {
	root := treeprint.New()
	addNode(root, sn)
	return root.String()
}

func addNode(branch treeprint.Tree, sn *StyNode) {
	label := sn.String()
	if display, ok := sn.LocalProperty("display"); ok {
		label = fmt.Sprintf("%s display=%s", label, display)
	}
	child := branch.AddBranch(label)
	for _, kid := range sn.Children() {
		addNode(child, kid)
	}
}
