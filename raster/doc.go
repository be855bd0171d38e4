/*
Package raster turns a layout.Box tree into a flat display list — an
ordered sequence of rectangle and text paint commands — and draws that
list into an image.RGBA destination.

Generation walks the box tree depth-first; for every box other than an
AnonymousInline leaf that has a styled node it emits up to four
border-edge rectangles followed by one background rectangle, and for
every AnonymousInline leaf it emits only a text command. Drawing consumes the list against a destination surface,
scaling every coordinate and size by a device-pixel-ratio factor applied
only at draw time — the box tree itself stays in device-independent
logical coordinates. Grounded on original_source/src/raster.rs's
get_display_list/get_display_command and draw_border/draw_background/
draw_content, and its dpr-scaled WindowState::draw_commands.

Solid fills use image/draw.Draw with image.Uniform, the same primitive
rupor-github-fb2cng/utils/images/svg.go uses for its own background
fill. srwiley/rasterx and oksvg are deliberately not used here: both
rasterize arbitrary vector paths, and this package's display list only
ever contains axis-aligned rectangles and pre-measured glyph masks,
neither of which need path scan-conversion.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package raster

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'canopy.raster'.
func tracer() tracing.Trace {
	return tracing.Select("canopy.raster")
}
