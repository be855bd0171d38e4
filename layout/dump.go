package layout

import (
	"github.com/xlab/treeprint"
)

// Dump renders b's subtree as an indented text tree, analogous to
// styledtree.Dump — useful for inspecting anonymous-box wrapping and
// line packing in tests and debugging.
func Dump(b *Box) string {
	root := treeprint.New()
	addBox(root, b)
	return root.String()
}

func addBox(branch treeprint.Tree, b *Box) {
	child := branch.AddBranch(b.String())
	for _, kid := range b.Children() {
		addBox(child, kid)
	}
}
