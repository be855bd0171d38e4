package markup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withNoDefaultStylesheet(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	old := DefaultStylesheetPath
	DefaultStylesheetPath = filepath.Join(dir, "missing.css")
	t.Cleanup(func() { DefaultStylesheetPath = old })
}

func TestParseSingleTopLevelNodeBecomesRootUnwrapped(t *testing.T) {
	withNoDefaultStylesheet(t)
	doc, err := Parse(`<div id="a" class="box"><p>hello</p></div>`)
	require.NoError(t, err)

	div := doc.Root
	assert.Equal(t, "div", div.Tag)
	assert.Equal(t, "a", div.ID())
	assert.True(t, div.HasClass("box"))

	require.Len(t, div.Children(), 1)
	p := div.Children()[0]
	assert.Equal(t, "p", p.Tag)
	require.Len(t, p.Children(), 1)
	assert.Equal(t, "hello", p.Children()[0].Text)
}

func TestParseMultipleTopLevelSiblingsWrappedInHTML(t *testing.T) {
	withNoDefaultStylesheet(t)
	doc, err := Parse(`<p>one</p><p>two</p>`)
	require.NoError(t, err)
	assert.Equal(t, "html", doc.Root.Tag)
	assert.Len(t, doc.Root.Children(), 2)
}

func TestParseRejectsMismatchedClosingTag(t *testing.T) {
	withNoDefaultStylesheet(t)
	_, err := Parse(`<div><p>oops</div></p>`)
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
}

func TestParseExtractsStyleElement(t *testing.T) {
	withNoDefaultStylesheet(t)
	doc, err := Parse(`<style>p { color: #ff0000; }</style><p>hi</p>`)
	require.NoError(t, err)

	// style element contributes no tree node; the remaining <p> is the
	// sole top-level node and becomes the root unwrapped
	assert.Equal(t, "p", doc.Root.Tag)

	// default (empty) stylesheet first, then the inline one
	require.Len(t, doc.Stylesheets, 2)
	assert.Empty(t, doc.Stylesheets[0].Rules)
	require.Len(t, doc.Stylesheets[1].Rules, 1)
}

func TestParseSkipsComments(t *testing.T) {
	withNoDefaultStylesheet(t)
	doc, err := Parse(`<div><!-- a comment --><p>x</p></div>`)
	require.NoError(t, err)
	div := doc.Root
	require.Len(t, div.Children(), 1)
	assert.Equal(t, "p", div.Children()[0].Tag)
}

func TestLoadDefaultStylesheetFallsBackWhenMissing(t *testing.T) {
	withNoDefaultStylesheet(t)
	sheet := loadDefaultStylesheet()
	assert.NotNil(t, sheet)
	assert.Empty(t, sheet.Rules)
}

func TestLoadDefaultStylesheetFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "default.css")
	require.NoError(t, os.WriteFile(path, []byte(`div { color: #112233; }`), 0o644))
	old := DefaultStylesheetPath
	DefaultStylesheetPath = path
	defer func() { DefaultStylesheetPath = old }()

	sheet := loadDefaultStylesheet()
	require.Len(t, sheet.Rules, 1)
}
