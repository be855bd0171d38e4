package layout

import (
	"strings"

	"github.com/npillmayer/canopy/dom"
	"github.com/npillmayer/canopy/fontsvc"
	"github.com/npillmayer/canopy/style"
	"github.com/npillmayer/canopy/styledtree"
)

// flattenInline walks a run of inline-level styled children depth-first,
// collapsing nested inline elements away and producing one
// AnonymousInline leaf per text run — the only leaf kind that survives
// past this step, per DESIGN.md Open Question 1. Matches
// original_source/src/layout.rs's flat_inline_box.
func flattenInline(children []*styledtree.StyNode, fonts fontsvc.Service) []*Box {
	var leaves []*Box
	for _, child := range children {
		if child.DOM.Kind == dom.TextKind {
			text := child.DOM.Text
			if strings.TrimSpace(text) == "" {
				continue // whitespace-only text nodes contribute no box
			}
			fs := fontSizePx(child)
			w, h := fonts.Measure(text, style.Length{Value: fs, Unit: style.UnitPx})
			// Styled carries the originating text node purely so the
			// rasterizer can resolve inherited color for this run; the
			// leaf has no box-model properties of its own.
			leaf := NewBox(AnonymousInlineBox, child)
			leaf.Text = text
			leaf.FontSizePx = fs
			leaf.Content.Width = w.Resolve()
			leaf.Content.Height = h.Resolve()
			leaves = append(leaves, leaf)
			continue
		}
		switch displayOf(child) {
		case "none":
			continue
		case "block":
			// A block box nested inside an inline formatting context has
			// no normal-flow placement in canopy's model (floats and
			// out-of-flow positioning are explicit Non-goals); the
			// simplest faithful choice is to skip it rather than
			// fabricate a placement spec.md does not define.
			tracer().Infof("skipping block-level node %v inside inline run", child.DOM)
			continue
		default: // "inline"
			leaves = append(leaves, flattenInline(child.Children(), fonts)...)
		}
	}
	return leaves
}

// packLines packs a flattened run of AnonymousInline leaves into Line
// boxes, each as wide as availableWidth allows. A leaf wider than an
// empty line is still placed alone on its own line rather than dropped,
// matching original_source/src/layout.rs's calc_block_line_box packing
// decision ("if rest_width >= w" create vs. reuse the current line).
func packLines(leaves []*Box, availableWidth float64) []*Box {
	var lines []*Box
	var current *Box
	var restWidth float64

	for _, leaf := range leaves {
		if current == nil {
			current = NewBox(LineBox, nil)
			restWidth = availableWidth
		}
		if len(current.Children()) == 0 || leaf.Content.Width <= restWidth {
			current.AppendChild(leaf)
			restWidth -= leaf.Content.Width
			continue
		}
		lines = append(lines, current)
		current = NewBox(LineBox, nil)
		current.AppendChild(leaf)
		restWidth = availableWidth - leaf.Content.Width
	}
	if current != nil {
		lines = append(lines, current)
	}
	return lines
}
