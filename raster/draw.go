package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/npillmayer/canopy/fontsvc"
	"github.com/npillmayer/canopy/style"
)

// Draw paints list into dst, scaling every command's coordinates and
// sizes by dpr — the box-tree coordinates the display list carries stay
// device-independent; only drawing applies the device pixel ratio,
// matching original_source/src/raster.rs's WindowState::draw_commands.
func Draw(dst *image.RGBA, list DisplayList, fonts fontsvc.Service, dpr float64) {
	for _, cmd := range list {
		switch cmd.Kind {
		case RectCommand:
			drawRect(dst, cmd, dpr)
		case TextCommand:
			drawText(dst, cmd, fonts, dpr)
		}
	}
}

func scaledRect(dst *image.RGBA, r image.Rectangle) image.Rectangle {
	return r.Intersect(dst.Bounds())
}

func drawRect(dst *image.RGBA, cmd Command, dpr float64) {
	r := image.Rect(
		int(cmd.Rect.X*dpr),
		int(cmd.Rect.Y*dpr),
		int((cmd.Rect.X+cmd.Rect.Width)*dpr),
		int((cmd.Rect.Y+cmd.Rect.Height)*dpr),
	)
	r = scaledRect(dst, r)
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, &image.Uniform{C: toRGBA(cmd.Color)}, image.Point{}, draw.Src)
}

// drawText blits the command's rasterized glyph mask as an alpha into
// dst, tinted by the command's color, offset to the command's origin.
// Coordinates outside the surface are skipped; a zero-sized mask is
// skipped.
func drawText(dst *image.RGBA, cmd Command, fonts fontsvc.Service, dpr float64) {
	mask := fonts.RenderMask(cmd.Text, style.Length{Value: cmd.FontSizePx, Unit: style.UnitPx})
	bounds := mask.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}
	originX := int(cmd.Rect.X * dpr)
	originY := int(cmd.Rect.Y * dpr)
	tint := toRGBA(cmd.Color)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			a := mask.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			dx := originX + int(float64(x-bounds.Min.X)*dpr)
			dy := originY + int(float64(y-bounds.Min.Y)*dpr)
			if !(image.Point{X: dx, Y: dy}.In(dst.Bounds())) {
				continue
			}
			dst.Set(dx, dy, color.RGBA{R: tint.R, G: tint.G, B: tint.B, A: a})
		}
	}
}

func toRGBA(c style.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
