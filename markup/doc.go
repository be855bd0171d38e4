/*
Package markup implements canopy's markup parser: a hand-rolled
recursive-descent parser over a restricted HTML-like grammar.

The grammar is deliberately minimal: there are no void elements (every
opened tag must be explicitly closed), no implied tag insertion, and no
foster parenting — none of the machinery golang.org/x/net/html exists to
implement. <style> elements are recognized specially: their raw text is
captured and immediately parsed as a style.Stylesheet rather than kept as
a text child node.

Parse also loads a default stylesheet from a fixed path, falling back to
an empty stylesheet if the file cannot be read, matching
original_source/src/html.rs's get_default_stylesheet.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'canopy.markup'.
func tracer() tracing.Trace {
	return tracing.Select("canopy.markup")
}

// DefaultStylesheetPath is the fixed path Parse reads the user-agent
// default stylesheet from. It is a var, not a const, so tests and
// embedders may point it elsewhere.
var DefaultStylesheetPath = "default.css"
