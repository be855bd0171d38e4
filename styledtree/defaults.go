package styledtree

import (
	"github.com/npillmayer/canopy/dom"
	"github.com/npillmayer/canopy/style"
)

// blockTags and noneTags give every element's user-agent default
// `display` value when no stylesheet rule sets it explicitly (any other
// tag defaults to inline), grounded
// in github.com/npillmayer/fp's dom/style/defaults.go
// (DisplayPropertyForHTMLNode), trimmed to the handful of tags a
// minimal markup grammar actually produces.
var blockTags = map[string]bool{
	"html": true, "body": true, "div": true, "p": true, "ul": true,
	"ol": true, "li": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "section": true, "article": true,
	"header": true, "footer": true, "table": true, "tr": true,
}

var noneTags = map[string]bool{
	"head": true, "style": true, "script": true,
}

// defaultDisplay returns "none", "block" or "inline" for tag, defaulting
// unknown tags to "inline" (the permissive HTML default).
func defaultDisplay(tag string) string {
	switch {
	case noneTags[tag]:
		return "none"
	case blockTags[tag]:
		return "block"
	default:
		return "inline"
	}
}

// userAgentDefaults are baseline property values applied when neither
// the cascade nor inheritance produced a value, mirroring
// GetUserAgentDefaultProperty.
var userAgentDefaults = map[string]style.Value{
	"color":      {Kind: style.KindColor, Color: style.Color{A: 255}}, // black
	"background": {Kind: style.KindColor, Color: style.Transparent},
}

// UserAgentDefault returns the built-in fallback value for prop on a
// DOM node of n's tag, used only once cascading and inheritance have
// both failed to produce a value.
func UserAgentDefault(n *dom.Node, prop string) style.Value {
	if prop == "display" {
		return style.Value{Kind: style.KindKeyword, Keyword: defaultDisplay(n.Tag)}
	}
	if v, ok := userAgentDefaults[prop]; ok {
		return v
	}
	return style.Value{Kind: style.KindKeyword, Keyword: "initial"}
}
