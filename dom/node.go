package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/canopy/style"
	"github.com/npillmayer/canopy/tree"
)

// Kind distinguishes the two node shapes the markup parser produces.
type Kind uint8

const (
	// ElementKind nodes carry a tag name, attributes and children.
	ElementKind Kind = iota
	// TextKind nodes carry only text content and have no children.
	TextKind
)

func (k Kind) String() string {
	if k == TextKind {
		return "text"
	}
	return "element"
}

// Node is a single document-tree node: either an element (tag name,
// attributes, children) or a text run. Node holds a generic tree.Node
// in its Self field, so every Node carries a non-owning parent back-reference and supports
// concurrency-safe child mutation, as required for the shared tree the
// pipeline stages operate on.
type Node struct {
	Self *tree.Node[*Node]

	Kind    Kind
	Tag     string            // element tag name, lower-cased; empty for text nodes
	Attrs   map[string]string // element attributes; nil for text nodes
	Text    string            // text content; empty for element nodes
	Inline  *style.Declarations // parsed inline style="" attribute, if present

	id      string
	classes []string
}

// NewElement creates a detached element node for tag.
func NewElement(tag string) *Node {
	n := &Node{Kind: ElementKind, Tag: strings.ToLower(tag), Attrs: map[string]string{}}
	n.Self = tree.NewNode[*Node](n)
	return n
}

// NewText creates a detached text node.
func NewText(text string) *Node {
	n := &Node{Kind: TextKind, Text: text}
	n.Self = tree.NewNode[*Node](n)
	return n
}

func (n *Node) String() string {
	if n.Kind == TextKind {
		t := n.Text
		if len(t) > 20 {
			t = t[:20] + "…"
		}
		return fmt.Sprintf("#text(%q)", t)
	}
	return fmt.Sprintf("<%s>", n.Tag)
}

// AppendChild adds child as the last child of n. It is concurrency-safe.
func (n *Node) AppendChild(child *Node) {
	n.Self.AddChild(child.Self)
}

// Parent returns the parent node, or nil for the document root.
func (n *Node) Parent() *Node {
	p := n.Self.Parent()
	if p == nil {
		return nil
	}
	return p.Payload
}

// Children returns the node's children in document order.
func (n *Node) Children() []*Node {
	kids := n.Self.Children(true)
	out := make([]*Node, 0, len(kids))
	for _, k := range kids {
		out = append(out, k.Payload)
	}
	return out
}

// SetAttr records an attribute, handling id= and class= specially so
// selector matching (style.Selector.Matches, via ID and Classes) can
// query them cheaply.
func (n *Node) SetAttr(key, value string) {
	if n.Attrs == nil {
		n.Attrs = map[string]string{}
	}
	n.Attrs[key] = value
	switch key {
	case "id":
		n.id = value
	case "class":
		n.classes = strings.Fields(value)
	case "style":
		decls, err := style.ParseDeclarations(value)
		if err != nil {
			tracer().Infof("node <%s>: ignoring malformed inline style: %v", n.Tag, err)
		} else {
			n.Inline = decls
		}
	}
}

// ID returns the element's id attribute, or "" if unset.
func (n *Node) ID() string { return n.id }

// Classes returns the element's class list, possibly empty.
func (n *Node) Classes() []string { return n.classes }

// HasClass reports whether n carries class c.
func (n *Node) HasClass(c string) bool {
	for _, have := range n.classes {
		if have == c {
			return true
		}
	}
	return false
}

// Document is the root artifact the markup parser produces: the element
// tree plus every stylesheet gathered while parsing (the default
// stylesheet first, followed by any <style> blocks in document order).
type Document struct {
	Root        *Node
	Stylesheets []*style.Stylesheet
}
