package raster

import (
	"github.com/npillmayer/canopy/layout"
	"github.com/npillmayer/canopy/style"
	"github.com/npillmayer/canopy/styledtree"
)

// blackOpaque is the fallback text color when neither the cascade nor
// the user-agent default table produces one (should not normally
// happen, since "color" always has a user-agent default — see
// styledtree.UserAgentDefault).
var blackOpaque = style.Color{A: 255}

// Generate walks root depth-first and returns its display list, matching
// original_source/src/raster.rs's get_display_list/get_display_command
// ordering: a box's own border and background commands are emitted
// before its children's commands.
func Generate(root *layout.Box) DisplayList {
	var list DisplayList
	walk(root, &list)
	return list
}

func walk(b *layout.Box, list *DisplayList) {
	switch b.Kind {
	case layout.AnonymousInlineBox:
		emitText(b, list)
	default:
		if b.Styled != nil {
			emitBorder(b, list)
			emitBackground(b, list)
		}
	}
	for _, child := range b.Children() {
		walk(child, list)
	}
}

func colorOrFallback(sn *styledtree.StyNode, specific, general string) (style.Color, bool) {
	if v, ok := sn.LocalProperty(specific); ok {
		if c, ok := v.AsColor(); ok {
			return c, true
		}
	}
	if v, ok := sn.LocalProperty(general); ok {
		if c, ok := v.AsColor(); ok {
			return c, true
		}
	}
	return style.Transparent, false
}

// emitBorder pushes up to four border-edge rectangles, skipping any
// edge whose resolved color is fully transparent.
func emitBorder(b *layout.Box, list *DisplayList) {
	border := b.BorderBox()
	edges := []struct {
		name   string
		width  float64
		rect   layout.Rect
	}{
		{"border-top-color", b.Border.Top, layout.Rect{
			X: border.X, Y: border.Y, Width: border.Width, Height: b.Border.Top,
		}},
		{"border-right-color", b.Border.Right, layout.Rect{
			X: border.X + border.Width - b.Border.Right, Y: border.Y,
			Width: b.Border.Right, Height: border.Height,
		}},
		{"border-bottom-color", b.Border.Bottom, layout.Rect{
			X: border.X, Y: border.Y + border.Height - b.Border.Bottom,
			Width: border.Width, Height: b.Border.Bottom,
		}},
		{"border-left-color", b.Border.Left, layout.Rect{
			X: border.X, Y: border.Y, Width: b.Border.Left, Height: border.Height,
		}},
	}
	for _, e := range edges {
		if e.width <= 0 {
			continue
		}
		color, ok := colorOrFallback(b.Styled, e.name, "border-color")
		if !ok || color.A == 0 {
			continue
		}
		*list = append(*list, Command{Kind: RectCommand, Rect: e.rect, Color: color})
	}
}

func emitBackground(b *layout.Box, list *DisplayList) {
	v, ok := b.Styled.LocalProperty("background-color")
	if !ok {
		return
	}
	color, ok := v.AsColor()
	if !ok {
		return
	}
	*list = append(*list, Command{Kind: RectCommand, Rect: b.PaddingBox(), Color: color})
}

func emitText(b *layout.Box, list *DisplayList) {
	if b.Text == "" {
		return
	}
	color := blackOpaque
	if b.Styled != nil {
		if c, ok := b.Styled.GetProperty("color").AsColor(); ok {
			color = c
		}
	}
	*list = append(*list, Command{
		Kind: TextCommand, Rect: b.Content, Color: color,
		Text: b.Text, FontSizePx: b.FontSizePx,
	})
}
