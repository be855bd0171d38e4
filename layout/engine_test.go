package layout

import (
	"testing"

	"github.com/npillmayer/canopy/dom"
	"github.com/npillmayer/canopy/fontsvc"
	"github.com/npillmayer/canopy/style"
	"github.com/npillmayer/canopy/styledtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutAccumulatesBlockHeightsBottomUp(t *testing.T) {
	root := dom.NewElement("html")
	for i := 0; i < 3; i++ {
		p := dom.NewElement("p")
		p.AppendChild(dom.NewText("line"))
		root.AppendChild(p)
	}
	sn := styledDoc(t, root)

	box, err := Layout(sn, 200, fontsvc.New())
	require.NoError(t, err)
	require.Len(t, box.Children(), 3)

	var sum float64
	for _, child := range box.Children() {
		sum += child.MarginBox().Height
	}
	assert.Equal(t, sum, box.Content.Height)
}

func TestLayoutPacksInlineLeavesIntoPositionedLines(t *testing.T) {
	root := dom.NewElement("p")
	root.AppendChild(dom.NewText("hello"))
	sn := styledDoc(t, root)

	box, err := Layout(sn, 400, fontsvc.New())
	require.NoError(t, err)
	lines := box.Children()
	require.Len(t, lines, 1)
	assert.Equal(t, LineBox, lines[0].Kind)
	leaves := lines[0].Children()
	require.Len(t, leaves, 1)
	assert.Equal(t, box.Content.X, leaves[0].Content.X)
	assert.Equal(t, box.Content.Y, leaves[0].Content.Y)
}

func TestLayoutRootDisplayNoneReturnsError(t *testing.T) {
	root := dom.NewElement("script")
	sn := styledDoc(t, root)
	_, err := Layout(sn, 400, fontsvc.New())
	assert.Error(t, err)
}

func TestMarginBoxContainmentInvariant(t *testing.T) {
	root := dom.NewElement("div")
	sheet, err := style.ParseStylesheet(`div { padding-left: 5px; border-left-width: 2px; margin-left: 3px; width: 100px; }`)
	require.NoError(t, err)
	doc := &dom.Document{Root: dom.NewElement("html")}
	doc.Root.AppendChild(root)
	doc.Stylesheets = []*style.Stylesheet{sheet}
	sn, err := styledtree.Resolve(doc)
	require.NoError(t, err)

	box, err := Layout(sn, 400, fontsvc.New())
	require.NoError(t, err)
	div := box.Children()[0]
	mb := div.MarginBox()
	assert.Equal(t, div.Content.X-div.Padding.Left-div.Border.Left-div.Margin.Left, mb.X)
	assert.Equal(t, div.Content.Width+div.Padding.Left+div.Padding.Right+div.Border.Left+div.Border.Right+div.Margin.Left+div.Margin.Right, mb.Width)
}
