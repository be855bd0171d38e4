package fontsvc

import (
	"image"
	"image/draw"

	"github.com/npillmayer/canopy/style"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// nominalSizePx is basicfont.Face7x13's own native size: text requested
// at this size is drawn 1:1; any other requested size scales the
// natively-rasterized glyphs by a nearest-neighbor integer-ish factor.
const nominalSizePx = 13.0

// Service measures and rasterizes text. It carries no mutable state of
// its own beyond the immutable font face it wraps, so a single Service
// value may be shared freely across the pipeline's worker goroutines.
type Service interface {
	// Measure returns the width and height text would occupy when set
	// at fontSize (interpreted as pixels; callers are responsible for
	// resolving em/rem/% lengths to pixels before calling in).
	Measure(text string, fontSize style.Length) (width, height style.Length)
	// RenderMask rasterizes text at fontSize into an alpha coverage
	// mask suitable for compositing with a foreground color.
	RenderMask(text string, fontSize style.Length) *image.Alpha
}

type basicFontService struct {
	face font.Face
}

// New returns the default Service, backed by basicfont.Face7x13.
func New() Service {
	return &basicFontService{face: basicfont.Face7x13}
}

func (s *basicFontService) scale(fontSize style.Length) float64 {
	if fontSize.Value <= 0 {
		return 1
	}
	return fontSize.Value / nominalSizePx
}

func (s *basicFontService) nativeWidth(text string) fixed.Int26_6 {
	var w fixed.Int26_6
	for _, r := range text {
		adv, ok := s.face.GlyphAdvance(r)
		if !ok {
			adv, _ = s.face.GlyphAdvance(' ')
		}
		w += adv
	}
	return w
}

func (s *basicFontService) Measure(text string, fontSize style.Length) (style.Length, style.Length) {
	scale := s.scale(fontSize)
	metrics := s.face.Metrics()
	w := fixedToFloat(s.nativeWidth(text)) * scale
	h := fixedToFloat(metrics.Height) * scale
	tracer().Debugf("fontsvc: measured %q at %v -> %gx%g", text, fontSize, w, h)
	return style.Length{Value: w, Unit: style.UnitPx}, style.Length{Value: h, Unit: style.UnitPx}
}

func fixedToFloat(f fixed.Int26_6) float64 {
	return float64(f) / 64
}

// RenderMask rasterizes text at the face's native resolution, then
// nearest-neighbor scales the coverage mask to the size Measure would
// report for fontSize. No external resize library is wired in for this:
// nearest-neighbor scaling of a small glyph-coverage bitmap is a handful
// of lines and does not need srwiley/rasterx-class path rasterization,
// which operates on vector paths canopy's display list never produces.
func (s *basicFontService) RenderMask(text string, fontSize style.Length) *image.Alpha {
	metrics := s.face.Metrics()
	nativeW := int(fixedToFloat(s.nativeWidth(text))) + 1
	nativeH := int(fixedToFloat(metrics.Height)) + 1
	if nativeW < 1 {
		nativeW = 1
	}
	if nativeH < 1 {
		nativeH = 1
	}
	native := image.NewAlpha(image.Rect(0, 0, nativeW, nativeH))
	draw.Draw(native, native.Bounds(), image.Transparent, image.Point{}, draw.Src)

	dot := fixed.Point26_6{X: 0, Y: fixed.I(int(fixedToFloat(metrics.Ascent)))}
	d := &font.Drawer{
		Dst:  native,
		Src:  image.Opaque,
		Face: s.face,
		Dot:  dot,
	}
	d.DrawString(text)

	scale := s.scale(fontSize)
	if scale == 1 {
		return native
	}
	outW := int(float64(nativeW) * scale)
	outH := int(float64(nativeH) * scale)
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}
	scaled := image.NewAlpha(image.Rect(0, 0, outW, outH))
	for y := 0; y < outH; y++ {
		sy := int(float64(y) / scale)
		if sy >= nativeH {
			sy = nativeH - 1
		}
		for x := 0; x < outW; x++ {
			sx := int(float64(x) / scale)
			if sx >= nativeW {
				sx = nativeW - 1
			}
			scaled.SetAlpha(x, y, native.AlphaAt(sx, sy))
		}
	}
	return scaled
}
