package layout

import (
	"fmt"

	"github.com/npillmayer/canopy/styledtree"
	"github.com/npillmayer/canopy/tree"
)

// EdgeSizes holds four edge widths, used for margin, border and padding
// thicknesses alike, matching original_source/src/layout.rs's EdgeSizes.
type EdgeSizes struct {
	Top, Right, Bottom, Left float64
}

// Rect is an axis-aligned rectangle in layout-logical (device-pixel-ratio
// independent) coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// ExpandedBy returns r expanded outward by edge on every side, matching
// layout.rs's RectArea::expanded_by.
func (r Rect) ExpandedBy(edge EdgeSizes) Rect {
	return Rect{
		X:      r.X - edge.Left,
		Y:      r.Y - edge.Top,
		Width:  r.Width + edge.Left + edge.Right,
		Height: r.Height + edge.Top + edge.Bottom,
	}
}

// Kind discriminates the box-tree node shapes spec.md's layout model
// produces.
type Kind uint8

const (
	// BlockBox is a block-level box with its own styled node.
	BlockBox Kind = iota
	// InlineBox is never constructed: inline elements are flattened
	// straight from the styled tree into AnonymousInline leaves (see
	// DESIGN.md Open Question 1).
	InlineBox
	// AnonymousBlockBox wraps a run of inline/AnonymousInline children
	// that share a parent block with block-level siblings.
	AnonymousBlockBox
	// AnonymousInlineBox is the canonical leaf box after flattening: a
	// single run of text positioned on a Line.
	AnonymousInlineBox
	// LineBox packs a horizontal run of AnonymousInline children that
	// fit within the available width.
	LineBox
)

func (k Kind) String() string {
	switch k {
	case BlockBox:
		return "Block"
	case InlineBox:
		return "Inline"
	case AnonymousBlockBox:
		return "AnonymousBlock"
	case AnonymousInlineBox:
		return "AnonymousInline"
	case LineBox:
		return "Line"
	default:
		return "Unknown"
	}
}

// Box is one node of the layout tree: content/padding/border/margin
// rectangles nested per the CSS box model (content ⊆ padding ⊆ border ⊆
// margin), a Kind, an optional reference to the styled node it was built
// from, and for AnonymousInline leaves, the text run it lays out.
type Box struct {
	Self *tree.Node[*Box]

	Kind   Kind
	// Styled is nil for AnonymousBlock/Line boxes. For AnonymousInline
	// leaves it is not the box's own style (anonymous boxes have none)
	// but the originating text node, kept only so inherited properties
	// like color can be resolved at render time.
	Styled *styledtree.StyNode

	Content Rect
	Padding EdgeSizes
	Border  EdgeSizes
	Margin  EdgeSizes

	// Text is the run an AnonymousInline leaf renders; empty otherwise.
	Text string
	// FontSizePx is the pixel font size Text was measured at; 0 for
	// every other box kind.
	FontSizePx float64
}

// NewBox creates a detached box of the given kind.
func NewBox(kind Kind, styled *styledtree.StyNode) *Box {
	b := &Box{Kind: kind, Styled: styled}
	b.Self = tree.NewNode[*Box](b)
	return b
}

func (b *Box) String() string {
	if b.Kind == AnonymousInlineBox {
		t := b.Text
		if len(t) > 16 {
			t = t[:16] + "…"
		}
		return fmt.Sprintf("%s(%q) @ %.0f,%.0f %.0fx%.0f", b.Kind, t, b.Content.X, b.Content.Y, b.Content.Width, b.Content.Height)
	}
	return fmt.Sprintf("%s @ %.0f,%.0f %.0fx%.0f", b.Kind, b.Content.X, b.Content.Y, b.Content.Width, b.Content.Height)
}

// AppendChild adds child as b's last child.
func (b *Box) AppendChild(child *Box) {
	b.Self.AddChild(child.Self)
}

// Children returns b's children in order.
func (b *Box) Children() []*Box {
	kids := b.Self.Children(true)
	out := make([]*Box, 0, len(kids))
	for _, k := range kids {
		out = append(out, k.Payload)
	}
	return out
}

// Parent returns b's parent box, or nil at the root.
func (b *Box) Parent() *Box {
	p := b.Self.Parent()
	if p == nil {
		return nil
	}
	return p.Payload
}

// PaddingBox returns the content rect expanded by the padding edges.
func (b *Box) PaddingBox() Rect { return b.Content.ExpandedBy(b.Padding) }

// BorderBox returns the padding box expanded by the border edges.
func (b *Box) BorderBox() Rect { return b.PaddingBox().ExpandedBy(b.Border) }

// MarginBox returns the border box expanded by the margin edges. This
// is the box-model containment invariant spec.md §8 calls out as a
// testable property: margin_box == sum of edges + content.
func (b *Box) MarginBox() Rect { return b.BorderBox().ExpandedBy(b.Margin) }
