package style

import (
	"strconv"
	"strings"
)

// parser is a hand-rolled recursive-descent cursor over a style-sheet
// source string, in the same shape as original_source/src/css.rs's own
// Parser: a position into the input plus a family of small consume*
// helpers. Re-expressed idiomatically (rune-aware advance over a byte
// cursor) rather than ported line for line.
type parser struct {
	input string
	pos   int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

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

func isIdentChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHex(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// parseIdentifier parses a CSS identifier: alphanumeric (plus '-'/'_'),
// must not start with a digit, matching css.rs's parse_identifier.
func (p *parser) parseIdentifier() (string, error) {
	if p.eof() {
		return "", newSyntaxError(p.pos, "expected identifier, got EOF")
	}
	if isDigit(p.nextRune()) {
		return "", newSyntaxError(p.pos, "identifier must not start with a digit")
	}
	id := p.consumeWhile(isIdentChar)
	if id == "" {
		return "", newSyntaxError(p.pos, "expected identifier")
	}
	return id, nil
}

// parseValueLength parses a numeric value followed by an optional unit
// (px/em/rem/%), defaulting to px for any other or absent suffix,
// matching css.rs's parse_value_length.
func (p *parser) parseValueLength() Value {
	num := p.consumeWhile(func(r rune) bool { return isDigit(r) || r == '.' })
	unit := p.consumeWhile(func(r rune) bool { return r != ';' && r != '}' })
	unit = strings.TrimSpace(unit)
	n, _ := strconv.ParseFloat(num, 64)
	u := UnitPx
	switch unit {
	case "em":
		u = UnitEm
	case "rem":
		u = UnitRem
	case "%":
		u = UnitPercent
	}
	return Value{Kind: KindLength, Length: Length{Value: n, Unit: u}}
}

// parseHexColor parses a 6-digit hex color, matching css.rs's
// parse_hex_color. Canopy supports only the 6-digit form (#RRGGBB).
func (p *parser) parseHexColor() (Value, error) {
	hex := p.consumeWhile(isHex)
	if len(hex) != 6 {
		return Value{}, newSyntaxError(p.pos, "expected 6-digit hex color, got %q", hex)
	}
	r := parseChannel(hex[0:2])
	g := parseChannel(hex[2:4])
	b := parseChannel(hex[4:6])
	return Value{Kind: KindColor, Color: Color{R: r, G: g, B: b, A: 255}}, nil
}

func parseChannel(s string) uint8 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

// parseValue dispatches on the next rune: a digit starts a length, '#'
// starts a hex color, anything else is consumed verbatim up to the
// declaration terminator and kept as an unstructured keyword/unknown
// value — matching css.rs's parse_value.
func (p *parser) parseValue() (Value, error) {
	if p.eof() {
		return Value{}, newSyntaxError(p.pos, "expected value, got EOF")
	}
	switch {
	case isDigit(p.nextRune()):
		return p.parseValueLength(), nil
	case p.nextRune() == '#':
		p.consumeRune()
		return p.parseHexColor()
	default:
		raw := strings.TrimSpace(p.consumeWhile(func(r rune) bool { return r != ';' && r != '}' }))
		return Value{Kind: KindKeyword, Keyword: raw, Raw: raw}, nil
	}
}

// parseDeclaration parses one `prop: value;` pair.
func (p *parser) parseDeclaration() (Declaration, error) {
	prop, err := p.parseIdentifier()
	if err != nil {
		return Declaration{}, err
	}
	p.consumeWhitespace()
	if p.eof() || p.consumeRune() != ':' {
		return Declaration{}, newSyntaxError(p.pos, "expected ':' after property %q", prop)
	}
	p.consumeWhitespace()
	val, err := p.parseValue()
	if err != nil {
		return Declaration{}, err
	}
	p.consumeWhitespace()
	if p.eof() || p.consumeRune() != ';' {
		return Declaration{}, newSyntaxError(p.pos, "expected ';' after value for property %q", prop)
	}
	return Declaration{Property: prop, Value: val}, nil
}

// parseDeclarations parses a `{ prop: value; ... }` body's contents,
// given the cursor positioned just after the opening '{' (or, for
// ParseDeclarations, at the start of an inline style="" attribute with
// no braces at all).
func (p *parser) parseDeclarations(stopAt rune) (Declarations, error) {
	var decls Declarations
	for {
		p.consumeWhitespace()
		if p.eof() || p.nextRune() == stopAt {
			break
		}
		d, err := p.parseDeclaration()
		if err != nil {
			return decls, err
		}
		decls = append(decls, d)
	}
	return decls, nil
}

// parseSimpleSelector parses one simple selector: any sequence of a
// leading tag name or '*', followed by any number of .class/#id
// fragments, with no combinators between them.
func (p *parser) parseSimpleSelector() (Selector, error) {
	var sel Selector
	sawAny := false
	if !p.eof() && p.nextRune() == '*' {
		p.consumeRune()
		sel.Tag = "*"
		sawAny = true
	} else if !p.eof() && isIdentChar(p.nextRune()) && !isDigit(p.nextRune()) {
		tag, err := p.parseIdentifier()
		if err != nil {
			return sel, err
		}
		sel.Tag = tag
		sawAny = true
	}
	for !p.eof() {
		switch p.nextRune() {
		case '.':
			p.consumeRune()
			class, err := p.parseIdentifier()
			if err != nil {
				return sel, err
			}
			sel.Classes = append(sel.Classes, class)
			sawAny = true
		case '#':
			p.consumeRune()
			id, err := p.parseIdentifier()
			if err != nil {
				return sel, err
			}
			sel.ID = id
			sawAny = true
		default:
			if !sawAny {
				return sel, newSyntaxError(p.pos, "expected selector")
			}
			return sel, nil
		}
	}
	if !sawAny {
		return sel, newSyntaxError(p.pos, "expected selector, got EOF")
	}
	return sel, nil
}

// parseSelectorList parses a comma-separated list of simple selectors.
func (p *parser) parseSelectorList() ([]Selector, error) {
	var sels []Selector
	for {
		p.consumeWhitespace()
		sel, err := p.parseSimpleSelector()
		if err != nil {
			return nil, err
		}
		sels = append(sels, sel)
		p.consumeWhitespace()
		if !p.eof() && p.nextRune() == ',' {
			p.consumeRune()
			continue
		}
		break
	}
	return sels, nil
}

// parseRule parses one `selector-list { declarations }` rule.
func (p *parser) parseRule() (Rule, error) {
	sels, err := p.parseSelectorList()
	if err != nil {
		return Rule{}, err
	}
	p.consumeWhitespace()
	if p.eof() || p.consumeRune() != '{' {
		return Rule{}, newSyntaxError(p.pos, "expected '{' to start rule body")
	}
	decls, err := p.parseDeclarations('}')
	if err != nil {
		return Rule{}, err
	}
	p.consumeWhitespace()
	if p.eof() || p.consumeRune() != '}' {
		return Rule{}, newSyntaxError(p.pos, "expected '}' to close rule body")
	}
	return Rule{Selectors: sels, Declarations: decls}, nil
}

// ParseStylesheet parses a complete style sheet (a sequence of rules).
// A rule that fails to parse aborts the whole sheet with a *SyntaxError
// carrying the offset parsing stopped at.
func ParseStylesheet(source string) (*Stylesheet, error) {
	p := &parser{input: source}
	sheet := &Stylesheet{}
	for {
		p.consumeWhitespace()
		if p.eof() {
			break
		}
		rule, err := p.parseRule()
		if err != nil {
			return sheet, err
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
	return sheet, nil
}

// ParseDeclarations parses a bare `prop: value; prop: value;` list with
// no enclosing braces, the grammar of an inline style="" attribute.
func ParseDeclarations(source string) (*Declarations, error) {
	p := &parser{input: source}
	decls, err := p.parseDeclarations(0)
	if err != nil {
		return nil, err
	}
	return &decls, nil
}

// EmptyStylesheet returns a stylesheet with no rules, the fallback used
// when the default stylesheet cannot be read from disk.
func EmptyStylesheet() *Stylesheet {
	return &Stylesheet{}
}
