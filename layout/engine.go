package layout

import (
	"errors"

	"github.com/npillmayer/canopy/fontsvc"
	"github.com/npillmayer/canopy/styledtree"
)

// Layout builds a box tree from the styled tree rooted at root and
// solves every box's geometry against a viewport of the given width.
// fonts is threaded through explicitly for all text measurement — see
// package fontsvc's doc comment.
func Layout(root *styledtree.StyNode, viewportWidth float64, fonts fontsvc.Service) (*Box, error) {
	box := buildBoxTree(root, fonts)
	if box == nil {
		return nil, errors.New("layout: root node has display:none")
	}
	containing := Rect{X: 0, Y: 0, Width: viewportWidth}
	layoutBlock(box, containing, fonts)
	return box, nil
}

// layoutBlock solves b's box model against containing (whose X/Y give
// the margin box's origin and whose Width gives the available width),
// then lays out its children and accumulates its own content height —
// from an explicit non-auto height property if one is set, else as the
// sum of its children's margin-box heights (spec.md §4.4.3).
func layoutBlock(b *Box, containing Rect, fonts fontsvc.Service) {
	sol := calcBlockWidth(b.Styled, containing.Width)
	b.Margin.Left, b.Margin.Right = sol.marginLeft, sol.marginRight
	b.Border.Left, b.Border.Right = sol.borderLeft, sol.borderRight
	b.Padding.Left, b.Padding.Right = sol.paddingLeft, sol.paddingRight
	b.Content.Width = sol.width

	e := edgesOf(b.Styled)
	b.Margin.Top, b.Margin.Bottom = e.marginTop, e.marginBottom
	b.Border.Top, b.Border.Bottom = e.borderTop, e.borderBottom
	b.Padding.Top, b.Padding.Bottom = e.paddingTop, e.paddingBottom

	b.Content.X = containing.X + b.Margin.Left + b.Border.Left + b.Padding.Left
	b.Content.Y = containing.Y + b.Margin.Top + b.Border.Top + b.Padding.Top

	height := layoutChildren(b, fonts)
	if hpx, auto := lengthOrAuto(b.Styled, "height", ""); !auto {
		height = hpx
	}
	b.Content.Height = height
}

// layoutChildren lays out b's children in normal flow, accumulating
// their margin-box heights, OR — if b's children are an unpacked inline
// run (leaves produced by buildBoxTree for a pure inline formatting
// context) — packs and lays them out as Line boxes. Returns the
// resulting content height.
func layoutChildren(b *Box, fonts fontsvc.Service) float64 {
	children := b.Children()
	if len(children) == 0 {
		return 0
	}
	if children[0].Kind == AnonymousInlineBox {
		return layoutInlineContext(b, children)
	}

	offsetY := 0.0
	for _, child := range children {
		switch child.Kind {
		case BlockBox:
			layoutBlock(child, Rect{X: b.Content.X, Y: b.Content.Y + offsetY, Width: b.Content.Width}, fonts)
			offsetY += child.MarginBox().Height
		case AnonymousBlockBox:
			offsetY += layoutAnonymousBlock(child, Rect{X: b.Content.X, Y: b.Content.Y + offsetY, Width: b.Content.Width})
		default:
			tracer().Infof("unexpected child kind %v under block box, skipping", child.Kind)
		}
	}
	return offsetY
}

// layoutAnonymousBlock packs and lays out an AnonymousBlock's inline
// leaves into Line boxes within the given containing rect, returning its
// resulting content height. AnonymousBlock boxes carry no margin/border/
// padding of their own.
func layoutAnonymousBlock(b *Box, containing Rect) float64 {
	b.Content.X, b.Content.Y, b.Content.Width = containing.X, containing.Y, containing.Width
	height := layoutInlineContext(b, b.Children())
	b.Content.Height = height
	return height
}

// layoutInlineContext packs leaves (AnonymousInline boxes, not yet
// grouped under Line boxes) into Line boxes sized to b's content width,
// replacing them as b's children, then lays out each line in turn.
// Returns the summed line heights.
func layoutInlineContext(b *Box, leaves []*Box) float64 {
	for _, leaf := range leaves {
		leaf.Self.Isolate()
	}
	lines := packLines(leaves, b.Content.Width)
	offsetY := 0.0
	for _, line := range lines {
		b.AppendChild(line)
		layoutLine(line, Rect{X: b.Content.X, Y: b.Content.Y + offsetY, Width: b.Content.Width})
		offsetY += line.Content.Height
	}
	return offsetY
}

// layoutLine positions a Line box's origin from its containing block's
// content box (X/Y) and sets its height to the max of its children's
// heights, matching spec.md §4.4.5's Line-type dispatch rule. Children
// are placed left to right, top-aligned within the line.
func layoutLine(line *Box, containing Rect) {
	line.Content.X, line.Content.Y, line.Content.Width = containing.X, containing.Y, containing.Width
	x := containing.X
	maxHeight := 0.0
	for _, child := range line.Children() {
		child.Content.X = x
		child.Content.Y = containing.Y
		x += child.Content.Width
		if child.Content.Height > maxHeight {
			maxHeight = child.Content.Height
		}
	}
	line.Content.Height = maxHeight
}
