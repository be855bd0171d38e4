/*
Package style implements canopy's CSS subset: value types (Length,
Color), the Stylesheet/Rule/Declaration storage shape, and the
hand-rolled tokenizer that parses a style sheet's text into that shape.

The Stylesheet/Rule/Declaration storage shape is hand-rolled rather than
reusing github.com/aymerick/douceur/css's types of the same name: douceur
stores a declaration's value as a bare string, whereas canopy's Value is
a typed union (Length, Color, Keyword, Raw) that layout and raster read
through AsLength/AsColor/AsKeyword accessors, so the shapes diverge at
the one field that matters. The parser supports only simple selectors
(tag, .class, #id, *, comma lists) and a small value grammar (Length,
#RRGGBB color, bare keyword fallback) — a strict subset of what douceur's
own parser accepts.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'canopy.style'.
func tracer() tracing.Trace {
	return tracing.Select("canopy.style")
}
