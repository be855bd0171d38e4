/*
Package fontsvc provides canopy's text-measurement and glyph-rasterization
service: an explicit value threaded into the layout engine and the
rasterizer, rather than a package-level global.

This directly replaces original_source/src/layout.rs's
`static mut TEXT_LAYOUTS: Vec<TextLayout>` and its accompanying
`get_text_layout()` accessor — flagged by spec.md §9 as the one piece of
process-wide mutable state a faithful redesign must remove. Measure and
RenderMask are ordinary methods on a Service value; callers (the layout
engine, the rasterizer) receive a Service at construction time and never
reach for ambient global state.

Glyph metrics and coverage masks come from golang.org/x/image/font/basicfont,
a real embedded bitmap font, and golang.org/x/image/math/fixed's
fixed-point glyph-advance arithmetic — the same module
(golang.org/x/image) github.com/rupor-github/fb2converter already
depends on, there for image-format decoders; fontsvc exercises one of its
font subpackages instead of embedding and parsing an external .ttf/.otf.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontsvc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'canopy.layout'.
func tracer() tracing.Trace {
	return tracing.Select("canopy.layout")
}
