package raster

import (
	"github.com/npillmayer/canopy/layout"
	"github.com/npillmayer/canopy/style"
)

// Kind discriminates the two paint command shapes canopy's display list
// ever contains.
type Kind uint8

const (
	// RectCommand fills Rect with a solid Color.
	RectCommand Kind = iota
	// TextCommand blits Text's rasterized glyph mask, tinted by Color,
	// with its origin at Rect.X/Rect.Y.
	TextCommand
)

// Command is one paint operation in a DisplayList, in device-independent
// logical coordinates.
type Command struct {
	Kind  Kind
	Rect  layout.Rect
	Color style.Color

	// Text and FontSizePx are set only for TextCommand.
	Text       string
	FontSizePx float64
}

// DisplayList is an ordered sequence of paint commands, back-to-front in
// the sense that later commands are painted on top of earlier ones.
type DisplayList []Command
