package raster

import (
	"testing"

	"github.com/npillmayer/canopy/dom"
	"github.com/npillmayer/canopy/fontsvc"
	"github.com/npillmayer/canopy/layout"
	"github.com/npillmayer/canopy/style"
	"github.com/npillmayer/canopy/styledtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildLayout(t *testing.T, sheet string, build func(root *dom.Node)) *layout.Box {
	t.Helper()
	root := dom.NewElement("div")
	build(root)
	doc := &dom.Document{Root: root}
	if sheet != "" {
		s, err := style.ParseStylesheet(sheet)
		require.NoError(t, err)
		doc.Stylesheets = []*style.Stylesheet{s}
	}
	sn, err := styledtree.Resolve(doc)
	require.NoError(t, err)
	box, err := layout.Layout(sn, 400, fontsvc.New())
	require.NoError(t, err)
	return box
}

func TestGenerateEmitsBackgroundWhenSet(t *testing.T) {
	box := buildLayout(t, `div { background-color: #ff0000; }`, func(root *dom.Node) {})
	list := Generate(box)
	require.Len(t, list, 1)
	assert.Equal(t, RectCommand, list[0].Kind)
	assert.Equal(t, style.Color{R: 0xff, A: 255}, list[0].Color)
}

func TestGenerateSkipsBackgroundWhenUnset(t *testing.T) {
	box := buildLayout(t, "", func(root *dom.Node) {})
	list := Generate(box)
	assert.Len(t, list, 0)
}

func TestGenerateSkipsTransparentBorder(t *testing.T) {
	box := buildLayout(t, `div { border-left-width: 2px; }`, func(root *dom.Node) {})
	list := Generate(box)
	assert.Len(t, list, 0) // width set but no color: falls back to transparent
}

func TestGenerateEmitsBorderWithFallbackColor(t *testing.T) {
	box := buildLayout(t, `div { border-left-width: 2px; border-color: #00ff00; }`,
		func(root *dom.Node) {})
	list := Generate(box)
	require.Len(t, list, 1)
	assert.Equal(t, style.Color{G: 0xff, A: 255}, list[0].Color)
}

func TestGenerateEmitsTextCommandForLeaves(t *testing.T) {
	box := buildLayout(t, "", func(root *dom.Node) {
		root.AppendChild(dom.NewText("hi"))
	})
	list := Generate(box)
	require.Len(t, list, 1)
	assert.Equal(t, TextCommand, list[0].Kind)
	assert.Equal(t, "hi", list[0].Text)
}
