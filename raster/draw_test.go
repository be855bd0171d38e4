package raster

import (
	"image"
	"testing"

	"github.com/npillmayer/canopy/fontsvc"
	"github.com/npillmayer/canopy/layout"
	"github.com/npillmayer/canopy/style"
	"github.com/stretchr/testify/assert"
)

func TestDrawRectFillsClippedRegion(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	list := DisplayList{
		{Kind: RectCommand, Rect: layout.Rect{X: 0, Y: 0, Width: 5, Height: 5}, Color: style.Color{R: 0xff, A: 255}},
	}
	Draw(dst, list, fontsvc.New(), 1)
	r, _, _, a := dst.At(2, 2).RGBA()
	assert.NotZero(t, r)
	assert.NotZero(t, a)
	// outside the filled rect stays untouched
	r2, _, _, a2 := dst.At(8, 8).RGBA()
	assert.Zero(t, r2)
	assert.Zero(t, a2)
}

func TestDrawRectClipsToSurfaceBounds(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	list := DisplayList{
		{Kind: RectCommand, Rect: layout.Rect{X: -2, Y: -2, Width: 6, Height: 6}, Color: style.Color{B: 0xff, A: 255}},
	}
	assert.NotPanics(t, func() {
		Draw(dst, list, fontsvc.New(), 1)
	})
}

func TestDrawTextBlitsGlyphMask(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 50, 20))
	list := DisplayList{
		{Kind: TextCommand, Rect: layout.Rect{X: 0, Y: 0}, Color: style.Color{A: 255}, Text: "x", FontSizePx: 16},
	}
	assert.NotPanics(t, func() {
		Draw(dst, list, fontsvc.New(), 1)
	})
}

func TestDrawAppliesDevicePixelRatio(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	list := DisplayList{
		{Kind: RectCommand, Rect: layout.Rect{X: 5, Y: 5, Width: 2, Height: 2}, Color: style.Color{R: 0xff, A: 255}},
	}
	Draw(dst, list, fontsvc.New(), 2)
	_, _, _, a := dst.At(10, 10).RGBA()
	assert.NotZero(t, a)
}
