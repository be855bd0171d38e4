package styledtree

import (
	"fmt"

	"github.com/npillmayer/canopy/dom"
	"github.com/npillmayer/canopy/style"
	"github.com/npillmayer/canopy/tree"
)

// StyNode is a document node plus its cascaded, computed style. It
// embeds a generic tree.Node so the styled tree carries the same
// parent-back-reference/concurrency-safety guarantees as the document
// tree it is built from, matching github.com/npillmayer/fp's
// dom/styledtree.StyNode.
type StyNode struct {
	tree.Node[*StyNode]

	DOM     *dom.Node
	styles  map[string]style.Value
}

// NewStyNode creates a detached styled-tree node wrapping domNode, with
// an empty computed style map.
func NewStyNode(domNode *dom.Node) *StyNode {
	sn := &StyNode{DOM: domNode, styles: map[string]style.Value{}}
	sn.Payload = sn
	return sn
}

func (sn *StyNode) String() string {
	return fmt.Sprintf("%v{%d props}", sn.DOM, len(sn.styles))
}

// Self returns sn's generic tree node, for use with tree.Walker.
func (sn *StyNode) Self() *tree.Node[*StyNode] { return &sn.Node }

// Parent returns sn's styled parent, or nil at the root.
func (sn *StyNode) Parent() *StyNode {
	p := sn.Node.Parent()
	if p == nil {
		return nil
	}
	return p.Payload
}

// Children returns sn's styled children in document order.
func (sn *StyNode) Children() []*StyNode {
	kids := sn.Node.Children(true)
	out := make([]*StyNode, 0, len(kids))
	for _, k := range kids {
		out = append(out, k.Payload)
	}
	return out
}

// SetProperty records prop's computed value locally on sn.
func (sn *StyNode) SetProperty(prop string, v style.Value) {
	sn.styles[prop] = v
}

// LocalProperty returns prop's value as set locally on sn, without
// consulting inheritance or the user-agent default table.
func (sn *StyNode) LocalProperty(prop string) (style.Value, bool) {
	v, ok := sn.styles[prop]
	return v, ok
}

// LookUp tries primary, then fallback, then def — the look_up(primary,
// fallback, default) resolver operation. Unlike GetProperty it never
// walks ancestors or consults the user-agent default table: it is meant
// for non-inheritable, shorthand-backed properties (margin, padding,
// border-width and their longhands) whose fallback chain is fixed by
// the caller, not by the cascade.
func (sn *StyNode) LookUp(primary, fallback string, def style.Value) style.Value {
	if v, ok := sn.LocalProperty(primary); ok {
		return v
	}
	if v, ok := sn.LocalProperty(fallback); ok {
		return v
	}
	return def
}

// GetProperty returns prop's computed value for sn: the locally cascaded
// value if one was set, else — for inheritable properties — the nearest
// ancestor's computed value, else the user-agent default for sn's tag.
// Matches github.com/npillmayer/fp's cascade.GetProperty.
func (sn *StyNode) GetProperty(prop string) style.Value {
	if v, ok := sn.LocalProperty(prop); ok {
		return v
	}
	if IsInheritable(prop) {
		for p := sn.Parent(); p != nil; p = p.Parent() {
			if v, ok := p.LocalProperty(prop); ok {
				return v
			}
		}
	}
	return UserAgentDefault(sn.DOM, prop)
}
