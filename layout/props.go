package layout

import (
	"github.com/npillmayer/canopy/style"
	"github.com/npillmayer/canopy/styledtree"
)

// autoValue and zeroValue are the literal defaults look_up falls back to
// for the width-axis properties: auto for width/height/margins, 0 for
// padding and border-width, matching spec.md §4.4.2.
var (
	autoValue = style.Value{Kind: style.KindKeyword, Keyword: "auto"}
	zeroValue = style.Value{Kind: style.KindLength, Length: style.Zero}
)

func valueAsLengthOrAuto(v style.Value) (px float64, auto bool) {
	if kw, ok := v.AsKeyword(); ok && kw == "auto" {
		return 0, true
	}
	if l, ok := v.AsLength(); ok {
		return l.Resolve(), false
	}
	return 0, false
}

// lengthOrAuto resolves primary (falling back to the shorthand fallback,
// then to "auto") to a pixel value, reporting whether the resolved
// value was the keyword "auto" (as opposed to a length), matching the
// tri-state calcBlockWidth (width.go) needs: every one of
// margin-left, width, margin-right may independently be "auto". Pass an
// empty fallback for properties with no shorthand (width, height).
func lengthOrAuto(sn *styledtree.StyNode, primary, fallback string) (px float64, auto bool) {
	return valueAsLengthOrAuto(sn.LookUp(primary, fallback, autoValue))
}

// length resolves primary (falling back to the shorthand fallback, then
// to 0) to a pixel value — used for padding and border-width, which CSS
// never allows to be auto.
func length(sn *styledtree.StyNode, primary, fallback string) float64 {
	px, _ := valueAsLengthOrAuto(sn.LookUp(primary, fallback, zeroValue))
	return px
}

func fontSizePx(sn *styledtree.StyNode) float64 {
	v := sn.GetProperty("font-size")
	if l, ok := v.AsLength(); ok {
		px := l.Resolve()
		if px > 0 {
			return px
		}
	}
	return style.BaseFontSizePx
}

func colorOf(sn *styledtree.StyNode, prop string) style.Color {
	v := sn.GetProperty(prop)
	c, _ := v.AsColor()
	return c
}

func displayOf(sn *styledtree.StyNode) string {
	kw, _ := sn.GetProperty("display").AsKeyword()
	return kw
}

type edges struct {
	marginLeft, marginRight, marginTop, marginBottom     float64
	marginLeftAuto, marginRightAuto                      bool
	borderLeft, borderRight, borderTop, borderBottom     float64
	paddingLeft, paddingRight, paddingTop, paddingBottom float64
}

func edgesOf(sn *styledtree.StyNode) edges {
	var e edges
	e.marginLeft, e.marginLeftAuto = lengthOrAuto(sn, "margin-left", "margin")
	e.marginRight, e.marginRightAuto = lengthOrAuto(sn, "margin-right", "margin")
	e.marginTop, _ = lengthOrAuto(sn, "margin-top", "margin")
	e.marginBottom, _ = lengthOrAuto(sn, "margin-bottom", "margin")
	e.borderLeft = length(sn, "border-left-width", "border-width")
	e.borderRight = length(sn, "border-right-width", "border-width")
	e.borderTop = length(sn, "border-top-width", "border-width")
	e.borderBottom = length(sn, "border-bottom-width", "border-width")
	e.paddingLeft = length(sn, "padding-left", "padding")
	e.paddingRight = length(sn, "padding-right", "padding")
	e.paddingTop = length(sn, "padding-top", "padding")
	e.paddingBottom = length(sn, "padding-bottom", "padding")
	return e
}
