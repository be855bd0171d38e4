package styledtree

import (
	"testing"

	"github.com/npillmayer/canopy/dom"
	"github.com/npillmayer/canopy/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDoc(t *testing.T, sheets ...string) *dom.Document {
	t.Helper()
	root := dom.NewElement("html")
	head := dom.NewElement("head")
	root.AppendChild(head)
	body := dom.NewElement("div")
	body.SetAttr("id", "main")
	body.SetAttr("class", "box")
	root.AppendChild(body)

	doc := &dom.Document{Root: root}
	for _, s := range sheets {
		sheet, err := style.ParseStylesheet(s)
		require.NoError(t, err)
		doc.Stylesheets = append(doc.Stylesheets, sheet)
	}
	return doc
}

func TestResolvePrunesHead(t *testing.T) {
	doc := buildDoc(t, "")
	root, err := Resolve(doc)
	require.NoError(t, err)
	for _, child := range root.Children() {
		assert.NotEqual(t, "head", child.DOM.Tag)
	}
	require.Len(t, root.Children(), 1)
}

func TestResolveCascadeSpecificityWins(t *testing.T) {
	doc := buildDoc(t, `
		div { color: #111111; }
		.box { color: #222222; }
		#main { color: #333333; }
	`)
	root, err := Resolve(doc)
	require.NoError(t, err)
	div := root.Children()[0]
	v := div.GetProperty("color")
	c, ok := v.AsColor()
	require.True(t, ok)
	assert.Equal(t, style.Color{R: 0x33, G: 0x33, B: 0x33, A: 255}, c)
}

func TestResolveLaterRuleWinsOnTie(t *testing.T) {
	doc := buildDoc(t, `
		div { color: #111111; }
		div { color: #222222; }
	`)
	root, err := Resolve(doc)
	require.NoError(t, err)
	div := root.Children()[0]
	v := div.GetProperty("color")
	c, _ := v.AsColor()
	assert.Equal(t, style.Color{R: 0x22, G: 0x22, B: 0x22, A: 255}, c)
}

func TestResolveInlineStyleOverridesCascade(t *testing.T) {
	doc := buildDoc(t, `#main { color: #333333; }`)
	doc.Root.Children()[1].SetAttr("style", "color: #abcdef;")
	root, err := Resolve(doc)
	require.NoError(t, err)
	div := root.Children()[0]
	v := div.GetProperty("color")
	c, _ := v.AsColor()
	assert.Equal(t, style.Color{R: 0xab, G: 0xcd, B: 0xef, A: 255}, c)
}

func TestResolveInheritanceForColor(t *testing.T) {
	doc := dom.NewElement("html")
	p := dom.NewElement("p")
	doc.AppendChild(p)
	document := &dom.Document{Root: doc}
	sheet, err := style.ParseStylesheet(`html { color: #102030; }`)
	require.NoError(t, err)
	document.Stylesheets = []*style.Stylesheet{sheet}

	root, err := Resolve(document)
	require.NoError(t, err)
	child := root.Children()[0]
	v := child.GetProperty("color")
	c, ok := v.AsColor()
	require.True(t, ok)
	assert.Equal(t, style.Color{R: 0x10, G: 0x20, B: 0x30, A: 255}, c)
}

func TestResolveUserAgentDefaultDisplay(t *testing.T) {
	doc := buildDoc(t, "")
	root, err := Resolve(doc)
	require.NoError(t, err)
	div := root.Children()[0]
	assert.Equal(t, "block", mustKeyword(t, div.GetProperty("display")))
}

func mustKeyword(t *testing.T, v style.Value) string {
	t.Helper()
	kw, ok := v.AsKeyword()
	require.True(t, ok)
	return kw
}
