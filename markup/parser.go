package markup

import (
	"os"
	"strings"

	"github.com/npillmayer/canopy/dom"
	"github.com/npillmayer/canopy/style"
)

// parser is a hand-rolled recursive-descent cursor over a markup source
// string, in the shape of original_source/src/html.rs's own Parser:
// a cursor position plus a family of small consume* helpers, and an
// accumulator for stylesheets discovered while parsing <style> elements.
type parser struct {
	input       string
	pos         int
	stylesheets []*style.Stylesheet
}

func (p *parser) eof() bool { return p.pos >= len(p.input) }

func (p *parser) nextRune() rune {
	for _, r := range p.input[p.pos:] {
		return r
	}
	return 0
}

func (p *parser) startsWith(s string) bool {
	return strings.HasPrefix(p.input[p.pos:], s)
}

func (p *parser) consumeRune() rune {
	r := p.nextRune()
	p.pos += len(string(r))
	return r
}

func (p *parser) consumeWhile(test func(rune) bool) string {
	var b strings.Builder
	for !p.eof() && test(p.nextRune()) {
		b.WriteRune(p.consumeRune())
	}
	return b.String()
}

func (p *parser) consumeWhitespace() {
	p.consumeWhile(isSpace)
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' }

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// parseTagName parses an alphanumeric tag name, matching html.rs's
// parse_tag_name.
func (p *parser) parseTagName() string {
	return p.consumeWhile(isAlnum)
}

// parseText consumes text up to the next '<', matching html.rs's
// parse_text.
func (p *parser) parseText() *dom.Node {
	text := p.consumeWhile(func(r rune) bool { return r != '<' })
	return dom.NewText(text)
}

// parseAttrValue parses a quote-delimited attribute value (either ' or
// "), matching html.rs's parse_attr_val.
func (p *parser) parseAttrValue() (string, error) {
	if p.eof() {
		return "", newSyntaxError(p.pos, "expected attribute value, got EOF")
	}
	quote := p.consumeRune()
	if quote != '"' && quote != '\'' {
		return "", newSyntaxError(p.pos, "expected quote to start attribute value")
	}
	val := p.consumeWhile(func(r rune) bool { return r != quote })
	if p.eof() {
		return "", newSyntaxError(p.pos, "unterminated attribute value")
	}
	p.consumeRune() // closing quote
	return val, nil
}

// parseAttr parses one `name="value"` pair, matching html.rs's
// parse_attr.
func (p *parser) parseAttr() (string, string, error) {
	name := p.consumeWhile(isAlnum)
	if name == "" {
		return "", "", newSyntaxError(p.pos, "expected attribute name")
	}
	p.consumeWhitespace()
	if p.eof() || p.consumeRune() != '=' {
		return "", "", newSyntaxError(p.pos, "expected '=' after attribute name %q", name)
	}
	p.consumeWhitespace()
	val, err := p.parseAttrValue()
	return name, val, err
}

// parseAttrs parses the whitespace-separated attribute list following a
// tag name, up to (not including) the closing '>'.
func (p *parser) parseAttrs(n *dom.Node) error {
	for {
		p.consumeWhitespace()
		if p.eof() || p.nextRune() == '>' {
			return nil
		}
		name, val, err := p.parseAttr()
		if err != nil {
			return err
		}
		n.SetAttr(strings.ToLower(name), val)
	}
}

// parseComment skips a `<!-- ... -->` comment, matching html.rs's
// parse_comment.
func (p *parser) parseComment() error {
	if !p.startsWith("<!--") {
		return newSyntaxError(p.pos, "expected comment start")
	}
	p.pos += len("<!--")
	for !p.eof() && !p.startsWith("-->") {
		p.consumeRune()
	}
	if p.eof() {
		return newSyntaxError(p.pos, "unterminated comment")
	}
	p.pos += len("-->")
	return nil
}

// parseStyleElement captures a <style> element's raw text content and
// parses it as a stylesheet, rather than building a text/element node
// for it. Matches html.rs's special-casing of the style tag inside
// parse_element.
func (p *parser) parseStyleElement() error {
	var b strings.Builder
	for !p.eof() && !p.startsWith("</style>") {
		b.WriteRune(p.consumeRune())
	}
	if p.eof() {
		return newSyntaxError(p.pos, "unterminated <style> element")
	}
	sheet, err := style.ParseStylesheet(b.String())
	if err != nil {
		return err
	}
	p.stylesheets = append(p.stylesheets, sheet)
	p.pos += len("</style>")
	return nil
}

// parseElement parses `<tag attrs>children</tag>`, asserting the
// closing tag name matches, matching html.rs's parse_element. Returns a
// nil node (with no error) for a <style> element, since its content
// becomes a stylesheet rather than a tree node.
func (p *parser) parseElement() (*dom.Node, error) {
	if p.eof() || p.consumeRune() != '<' {
		return nil, newSyntaxError(p.pos, "expected '<' to start element")
	}
	tag := p.parseTagName()
	if tag == "" {
		return nil, newSyntaxError(p.pos, "expected tag name")
	}
	n := dom.NewElement(tag)
	if err := p.parseAttrs(n); err != nil {
		return nil, err
	}
	if p.eof() || p.consumeRune() != '>' {
		return nil, newSyntaxError(p.pos, "expected '>' to close start tag <%s>", tag)
	}

	if strings.ToLower(tag) == "style" {
		if err := p.parseStyleElement(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	children, err := p.parseNodes()
	if err != nil {
		return nil, err
	}
	for _, c := range children {
		n.AppendChild(c)
	}

	if !p.startsWith("</") {
		return nil, newSyntaxError(p.pos, "expected closing tag </%s>", tag)
	}
	p.pos += len("</")
	closeTag := p.parseTagName()
	if !strings.EqualFold(closeTag, tag) {
		return nil, newSyntaxError(p.pos, "mismatched closing tag: expected </%s>, got </%s>", tag, closeTag)
	}
	if p.eof() || p.consumeRune() != '>' {
		return nil, newSyntaxError(p.pos, "expected '>' to close </%s>", tag)
	}
	return n, nil
}

// parseNode parses a single node: a comment (skipped, yielding no
// node), an element, or a text run.
func (p *parser) parseNode() (*dom.Node, error) {
	if p.startsWith("<!--") {
		if err := p.parseComment(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if !p.eof() && p.nextRune() == '<' {
		return p.parseElement()
	}
	return p.parseText(), nil
}

// parseNodes parses a run of sibling nodes, stopping at EOF or at a
// closing tag `</`, matching html.rs's parse_nodes.
func (p *parser) parseNodes() ([]*dom.Node, error) {
	var nodes []*dom.Node
	for {
		if p.eof() || p.startsWith("</") {
			return nodes, nil
		}
		n, err := p.parseNode()
		if err != nil {
			return nodes, err
		}
		if n != nil {
			nodes = append(nodes, n)
		}
	}
}

// loadDefaultStylesheet reads DefaultStylesheetPath, falling back to an
// empty stylesheet on any read or parse error, matching html.rs's
// get_default_stylesheet().unwrap_or(...) fallback.
func loadDefaultStylesheet() *style.Stylesheet {
	data, err := os.ReadFile(DefaultStylesheetPath)
	if err != nil {
		tracer().Infof("markup: no default stylesheet at %q (%v), using empty stylesheet", DefaultStylesheetPath, err)
		return style.EmptyStylesheet()
	}
	sheet, err := style.ParseStylesheet(string(data))
	if err != nil {
		tracer().Errorf("markup: default stylesheet %q failed to parse (%v), using empty stylesheet", DefaultStylesheetPath, err)
		return style.EmptyStylesheet()
	}
	return sheet
}

// Parse parses source into a Document. A single top-level node becomes
// the document root as-is; multiple top-level siblings are wrapped in a
// synthetic <html> root, matching html.rs's top-level parse() function
// (which only wraps when nodes.len() != 1). The default stylesheet is
// always present at Stylesheets[0], followed by any <style> elements
// encountered, in document order.
func Parse(source string) (*dom.Document, error) {
	p := &parser{input: source}
	top, err := p.parseNodes()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, newSyntaxError(p.pos, "unexpected closing tag at top level")
	}

	var root *dom.Node
	if len(top) == 1 {
		root = top[0]
	} else {
		root = dom.NewElement("html")
		for _, n := range top {
			root.AppendChild(n)
		}
	}

	doc := &dom.Document{Root: root}
	doc.Stylesheets = append(doc.Stylesheets, loadDefaultStylesheet())
	doc.Stylesheets = append(doc.Stylesheets, p.stylesheets...)
	return doc, nil
}
