/*
Package window implements canopy's windowing/event-loop collaborator: a
terminal UI, built on charmbracelet/bubbletea and lipgloss, that reads
the pipeline's shared display-list slot once per tick and renders its
rectangles and text as styled terminal cells.

spec.md treats the window/event loop as an external collaborator at the
interface level only: it must read (never write) the shared display-list
slot, and it must run on the process's own main goroutine rather than as
one of the four pipeline stages. bubbletea's Program.Run already
requires and enforces exactly that, so Run here is a thin wrapper around
it.

Grounded in github.com/speier/smith/internal/repl's tea.NewProgram/
p.Run wiring and its tick()-driven periodic-redraw Model, and in
github.com/fwojciec/pipe/bubbletea's Model/Update/View shape and its
direct (non-teatest) Update/View test style.

Terminal cells have no native pixel geometry, so this package maps the
layout engine's logical pixel coordinates onto the terminal's character
grid using a fixed assumed cell size (cellWidthPx × cellHeightPx) —
the terminal's own analogue of spec.md's device-pixel-ratio scalar, also
applied only at render time, never to the box tree or display list
themselves. github.com/mattn/go-runewidth measures how many terminal
columns a text command's runes occupy, so double-width runes advance
the cursor correctly.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package window

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'canopy.window'.
func tracer() tracing.Trace {
	return tracing.Select("canopy.window")
}
