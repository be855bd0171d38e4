/*
Package layout implements canopy's layout engine: building a box tree
from the styled tree, solving each block's width and position, wrapping
runs of inline content into AnonymousBlock/AnonymousInline boxes, packing
inline content into Line boxes, and accumulating box heights bottom-up.

The algorithms (the 8-case block width solver, block vertical placement,
anonymous-box wrapping, inline flattening and line packing) are grounded
on original_source/src/layout.rs's calc_block_width, calc_block_position,
get_inline_container, flat_inline_box and calc_block_line_box, re-expressed
idiomatically rather than ported line for line. Box-tree nodes reuse the
same generic, concurrency-safe tree.Node the document and styled trees are
built on.

Text measurement goes through an explicit fontsvc.Service value passed
into the engine at construction time, rather than through a package-level
global — see package fontsvc's doc comment for why.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'canopy.layout'.
func tracer() tracing.Trace {
	return tracing.Select("canopy.layout")
}
