package layout

import (
	"testing"

	"github.com/npillmayer/canopy/dom"
	"github.com/npillmayer/canopy/fontsvc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBoxTreePureInlineContext(t *testing.T) {
	root := dom.NewElement("p")
	root.AppendChild(dom.NewText("hello"))
	sn := styledDoc(t, root)

	box := buildBoxTree(sn, fontsvc.New())
	require.NotNil(t, box)
	assert.Equal(t, BlockBox, box.Kind)
	children := box.Children()
	require.Len(t, children, 1)
	assert.Equal(t, AnonymousInlineBox, children[0].Kind)
}

func TestBuildBoxTreeWrapsInlineRunsWhenBlockSiblingPresent(t *testing.T) {
	root := dom.NewElement("div")
	root.AppendChild(dom.NewText("intro"))
	root.AppendChild(dom.NewElement("p"))
	root.AppendChild(dom.NewText("outro"))
	sn := styledDoc(t, root)

	box := buildBoxTree(sn, fontsvc.New())
	require.NotNil(t, box)
	children := box.Children()
	require.Len(t, children, 3)
	assert.Equal(t, AnonymousBlockBox, children[0].Kind)
	assert.Equal(t, BlockBox, children[1].Kind)
	assert.Equal(t, AnonymousBlockBox, children[2].Kind)

	// the anonymous blocks carry raw, unpacked leaves — not yet Line boxes
	leafChildren := children[0].Children()
	require.Len(t, leafChildren, 1)
	assert.Equal(t, AnonymousInlineBox, leafChildren[0].Kind)
}

func TestBuildBoxTreeDisplayNoneIsOmitted(t *testing.T) {
	root := dom.NewElement("div")
	root.AppendChild(dom.NewElement("script")) // user-agent default display:none
	root.AppendChild(dom.NewElement("p"))
	sn := styledDoc(t, root)

	box := buildBoxTree(sn, fontsvc.New())
	require.NotNil(t, box)
	assert.Len(t, box.Children(), 1)
}
