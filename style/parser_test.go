package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStylesheetSimpleSelectors(t *testing.T) {
	sheet, err := ParseStylesheet(`
		div.box#main, p {
			color: #ff0000;
			width: 10px;
		}
		* { margin: 0px; }
	`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 2)

	r0 := sheet.Rules[0]
	require.Len(t, r0.Selectors, 2)
	assert.Equal(t, "div", r0.Selectors[0].Tag)
	assert.Equal(t, "main", r0.Selectors[0].ID)
	assert.Equal(t, []string{"box"}, r0.Selectors[0].Classes)
	assert.Equal(t, "p", r0.Selectors[1].Tag)

	color, ok := r0.Declarations.Get("color")
	require.True(t, ok)
	c, ok := color.AsColor()
	require.True(t, ok)
	assert.Equal(t, Color{R: 0xff, G: 0, B: 0, A: 255}, c)

	width, ok := r0.Declarations.Get("width")
	require.True(t, ok)
	l, ok := width.AsLength()
	require.True(t, ok)
	assert.Equal(t, Length{Value: 10, Unit: UnitPx}, l)

	assert.Equal(t, "*", sheet.Rules[1].Selectors[0].Tag)
}

func TestParseValueLengthUnits(t *testing.T) {
	cases := map[string]Unit{
		"1px;":  UnitPx,
		"1em;":  UnitEm,
		"1rem;": UnitRem,
		"1%;":   UnitPercent,
		"1xy;":  UnitPx, // unrecognized unit falls back to px
	}
	for src, want := range cases {
		p := &parser{input: src}
		v := p.parseValueLength()
		assert.Equal(t, want, v.Length.Unit, "source %q", src)
	}
}

func TestParseHexColorRequiresSixDigits(t *testing.T) {
	_, err := ParseStylesheet(`p { color: #fff; }`)
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
}

func TestParseDeclarationsInlineStyle(t *testing.T) {
	decls, err := ParseDeclarations(`color: #00ff00; width: 2em;`)
	require.NoError(t, err)
	require.Len(t, *decls, 2)
	v, ok := decls.Get("width")
	require.True(t, ok)
	l, _ := v.AsLength()
	assert.Equal(t, Length{Value: 2, Unit: UnitEm}, l)
}

func TestSpecificityOrdering(t *testing.T) {
	tag := Selector{Tag: "p"}.Specificity()
	class := Selector{Tag: "p", Classes: []string{"a"}}.Specificity()
	id := Selector{Tag: "p", ID: "x"}.Specificity()
	assert.True(t, tag.Less(class))
	assert.True(t, class.Less(id))
}

func TestSelectorMatches(t *testing.T) {
	sel := Selector{Tag: "div", Classes: []string{"a", "b"}}
	assert.True(t, sel.Matches("div", "", []string{"a", "b", "c"}))
	assert.False(t, sel.Matches("div", "", []string{"a"}))
	assert.False(t, sel.Matches("span", "", []string{"a", "b"}))

	universal := Selector{Tag: "*"}
	assert.True(t, universal.Matches("anything", "x", nil))
}
