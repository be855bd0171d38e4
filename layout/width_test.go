package layout

import (
	"testing"

	"github.com/npillmayer/canopy/dom"
	"github.com/npillmayer/canopy/style"
	"github.com/npillmayer/canopy/styledtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func styledWith(t *testing.T, tag string, decls string) *styledtree.StyNode {
	t.Helper()
	root := dom.NewElement("html")
	el := dom.NewElement(tag)
	root.AppendChild(el)
	doc := &dom.Document{Root: root}
	if decls != "" {
		sheet, err := style.ParseStylesheet(tag + " { " + decls + " }")
		require.NoError(t, err)
		doc.Stylesheets = []*style.Stylesheet{sheet}
	}
	sn, err := styledtree.Resolve(doc)
	require.NoError(t, err)
	return sn.Children()[0]
}

func TestCalcBlockWidthAllFixed(t *testing.T) {
	sn := styledWith(t, "div", "width: 100px; margin-left: 10px; margin-right: 10px;")
	sol := calcBlockWidth(sn, 300)
	assert.Equal(t, 100.0, sol.width)
	// case 1: over-constrained, right margin absorbs the remainder
	assert.Equal(t, 10.0, sol.marginLeft)
	assert.Equal(t, 190.0, sol.marginRight)
}

func TestCalcBlockWidthRightMarginAuto(t *testing.T) {
	sn := styledWith(t, "div", "width: 100px; margin-left: 10px; margin-right: auto;")
	sol := calcBlockWidth(sn, 300)
	assert.Equal(t, 100.0, sol.width)
	assert.Equal(t, 190.0, sol.marginRight)
}

func TestCalcBlockWidthLeftMarginAuto(t *testing.T) {
	sn := styledWith(t, "div", "width: 100px; margin-left: auto; margin-right: 10px;")
	sol := calcBlockWidth(sn, 300)
	assert.Equal(t, 190.0, sol.marginLeft)
}

func TestCalcBlockWidthBothMarginsAutoSplitEvenly(t *testing.T) {
	sn := styledWith(t, "div", "width: 100px; margin-left: auto; margin-right: auto;")
	sol := calcBlockWidth(sn, 300)
	assert.Equal(t, 100.0, sol.marginLeft)
	assert.Equal(t, 100.0, sol.marginRight)
}

func TestCalcBlockWidthAutoFillsContainer(t *testing.T) {
	sn := styledWith(t, "div", "margin-left: 10px; margin-right: 10px;")
	sol := calcBlockWidth(sn, 300)
	assert.Equal(t, 280.0, sol.width)
}

func TestCalcBlockWidthAutoWithAutoMarginsPinnedToZero(t *testing.T) {
	sn := styledWith(t, "div", "margin-left: auto; margin-right: auto;")
	sol := calcBlockWidth(sn, 300)
	assert.Equal(t, 0.0, sol.marginLeft)
	assert.Equal(t, 0.0, sol.marginRight)
	assert.Equal(t, 300.0, sol.width)
}

func TestCalcBlockWidthNegativeUnderflowAbsorbedByRightMargin(t *testing.T) {
	sn := styledWith(t, "div", "width: auto; padding-left: 400px;")
	sol := calcBlockWidth(sn, 300)
	assert.Equal(t, 0.0, sol.width)
	assert.Equal(t, -100.0, sol.marginRight)
}

func TestCalcBlockWidthOverConstrainedFixedMarginsOverflow(t *testing.T) {
	sn := styledWith(t, "div", "width: 100px; margin-left: 50px; margin-right: 50px; padding-left: 150px;")
	sol := calcBlockWidth(sn, 300)
	// total (350) exceeds containing width (300): margin-right absorbs underflow
	assert.Equal(t, 100.0, sol.width)
	assert.Equal(t, 0.0, sol.marginRight)
}

func TestCalcBlockWidthMarginShorthandAppliesToAllSides(t *testing.T) {
	sn := styledWith(t, "div", "width: 100px; margin: 20px;")
	sol := calcBlockWidth(sn, 300)
	assert.Equal(t, 20.0, sol.marginLeft)
	e := edgesOf(sn)
	assert.Equal(t, 20.0, e.marginTop)
	assert.Equal(t, 20.0, e.marginBottom)
}

func TestCalcBlockWidthLonghandOverridesMarginShorthand(t *testing.T) {
	sn := styledWith(t, "div", "width: 100px; margin: 20px; margin-left: 5px;")
	sol := calcBlockWidth(sn, 300)
	assert.Equal(t, 5.0, sol.marginLeft)
}

func TestEdgesOfPaddingAndBorderWidthShorthands(t *testing.T) {
	sn := styledWith(t, "div", "padding: 8px; border-width: 2px;")
	e := edgesOf(sn)
	assert.Equal(t, 8.0, e.paddingLeft)
	assert.Equal(t, 8.0, e.paddingTop)
	assert.Equal(t, 2.0, e.borderLeft)
	assert.Equal(t, 2.0, e.borderBottom)
}
