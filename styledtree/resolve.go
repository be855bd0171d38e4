package styledtree

import (
	"sort"

	"github.com/npillmayer/canopy/dom"
	"github.com/npillmayer/canopy/style"
	"github.com/npillmayer/canopy/tree"
)

// flatRule is one selector out of a Stylesheet's rules, with the
// document-order sequence number of the rule it came from. Flattening
// selector lists this way means each selector carries its own
// specificity for matching purposes, as CSS requires for comma-separated
// selector lists.
type flatRule struct {
	selector style.Selector
	decls    style.Declarations
	seq      int
}

func flattenRules(sheets []*style.Stylesheet) []flatRule {
	var flat []flatRule
	seq := 0
	for _, sheet := range sheets {
		if sheet == nil {
			continue
		}
		for _, rule := range sheet.Rules {
			for _, sel := range rule.Selectors {
				flat = append(flat, flatRule{selector: sel, decls: rule.Declarations, seq: seq})
			}
			seq++
		}
	}
	return flat
}

// Resolve builds the styled tree for doc: it copies the document tree
// (pruning the <head> subtree), then computes every node's cascaded,
// inherited property map. Matches
// github.com/npillmayer/fp/dom/style/cssom.CSSOM.Style's two-pass
// structure (build, then style), using the same concurrent tree.Walker.
func Resolve(doc *dom.Document) (*StyNode, error) {
	root := NewStyNode(doc.Root)
	flat := flattenRules(doc.Stylesheets)

	tracer().Debugf("--- building styled tree structure ---")
	buildWalker := tree.NewWalker(root.Self())
	buildAction := func(n *tree.Node[*StyNode], _ *tree.Node[*StyNode], _ int) (*tree.Node[*StyNode], error) {
		return buildChildren(n), nil
	}
	buildFuture := buildWalker.TopDown(buildAction).Promise()
	if _, err := buildFuture(); err != nil {
		return nil, err
	}

	tracer().Debugf("--- cascading styled tree ---")
	styleWalker := tree.NewWalker(root.Self())
	styleAction := func(n *tree.Node[*StyNode], _ *tree.Node[*StyNode], _ int) (*tree.Node[*StyNode], error) {
		cascade(n.Payload, flat)
		return n, nil
	}
	styleFuture := styleWalker.TopDown(styleAction).Promise()
	if _, err := styleFuture(); err != nil {
		return nil, err
	}
	return root, nil
}

// buildChildren creates a styled child for every child of n's DOM node,
// skipping <head> elements (and their entire subtree, since they are
// simply never visited once excluded here), matching spec.md's
// requirement that the <head> subtree is pruned before styling.
func buildChildren(n *tree.Node[*StyNode]) *tree.Node[*StyNode] {
	domNode := n.Payload.DOM
	if domNode.Kind != dom.ElementKind && domNode.Kind != dom.TextKind {
		return n
	}
	for _, child := range domNode.Children() {
		if child.Kind == dom.ElementKind && child.Tag == "head" {
			tracer().Debugf("pruning <head> subtree")
			continue
		}
		sn := NewStyNode(child)
		n.AddChild(sn.Self())
	}
	return n
}

// cascade computes sn's computed property map: every flat-rule selector
// matching sn's DOM node is collected, stable-sorted ascending by
// specificity (document order is preserved for ties, per DESIGN.md Open
// Question 3: later wins), and applied in that order so later entries
// overwrite earlier ones. An inline style="" attribute is applied last,
// overriding the entire cascade.
func cascade(sn *StyNode, flat []flatRule) {
	if sn.DOM.Kind != dom.ElementKind {
		return
	}
	tag, id, classes := sn.DOM.Tag, sn.DOM.ID(), sn.DOM.Classes()

	var matches []flatRule
	for _, fr := range flat {
		if fr.selector.Matches(tag, id, classes) {
			matches = append(matches, fr)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].selector.Specificity().Less(matches[j].selector.Specificity())
	})
	for _, m := range matches {
		for _, d := range m.decls {
			sn.SetProperty(d.Property, d.Value)
		}
	}
	if sn.DOM.Inline != nil {
		for _, d := range *sn.DOM.Inline {
			sn.SetProperty(d.Property, d.Value)
		}
	}
	tracer().Debugf("styled %v: %d local properties", sn.DOM, len(sn.styles))
}
