package layout

import (
	"github.com/npillmayer/canopy/dom"
	"github.com/npillmayer/canopy/fontsvc"
	"github.com/npillmayer/canopy/styledtree"
)

// classify reports whether a styled node behaves as a block-level or
// inline-level participant in its parent's formatting context. Text
// nodes are always inline-level.
func classify(sn *styledtree.StyNode) string {
	if sn.DOM.Kind == dom.TextKind {
		return "inline"
	}
	return displayOf(sn)
}

// buildBoxTree constructs the box tree for sn, returning nil if sn's
// computed display is "none". A block whose children are entirely
// inline-level gets its flattened AnonymousInline leaves as direct
// children (they are packed into Line boxes later, at layout time); a
// block with at least one block-level child instead wraps
// every contiguous run of inline-level siblings in an AnonymousBlock box
// — spec.md's anonymous-box-wrapping rule, grounded on
// original_source/src/layout.rs's get_inline_container.
func buildBoxTree(sn *styledtree.StyNode, fonts fontsvc.Service) *Box {
	if displayOf(sn) == "none" {
		return nil
	}
	box := NewBox(BlockBox, sn)

	children := sn.Children()
	hasBlockChild := false
	for _, c := range children {
		if classify(c) == "block" {
			hasBlockChild = true
			break
		}
	}

	if !hasBlockChild {
		// Pure inline formatting context: leaves become this box's
		// direct children and are packed into Line boxes once this
		// box's content width is known (see layoutInlineContext).
		for _, leaf := range flattenInline(children, fonts) {
			box.AppendChild(leaf)
		}
		return box
	}

	var run []*styledtree.StyNode
	flushRun := func() {
		if len(run) == 0 {
			return
		}
		anon := NewBox(AnonymousBlockBox, nil)
		for _, leaf := range flattenInline(run, fonts) {
			anon.AppendChild(leaf) // packed into Line boxes at layout time
		}
		box.AppendChild(anon)
		run = nil
	}
	for _, c := range children {
		switch classify(c) {
		case "none":
			continue
		case "block":
			flushRun()
			if childBox := buildBoxTree(c, fonts); childBox != nil {
				box.AppendChild(childBox)
			}
		default:
			run = append(run, c)
		}
	}
	flushRun()
	return box
}
