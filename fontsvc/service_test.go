package fontsvc

import (
	"testing"

	"github.com/npillmayer/canopy/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureScalesWithFontSize(t *testing.T) {
	svc := New()
	w1, h1 := svc.Measure("hello", style.Length{Value: nominalSizePx, Unit: style.UnitPx})
	w2, h2 := svc.Measure("hello", style.Length{Value: nominalSizePx * 2, Unit: style.UnitPx})
	assert.InDelta(t, w1.Value*2, w2.Value, 0.5)
	assert.InDelta(t, h1.Value*2, h2.Value, 0.5)
}

func TestMeasureEmptyStringIsZeroWidth(t *testing.T) {
	svc := New()
	w, _ := svc.Measure("", style.Length{Value: nominalSizePx, Unit: style.UnitPx})
	assert.Equal(t, 0.0, w.Value)
}

func TestRenderMaskProducesNonEmptyBounds(t *testing.T) {
	svc := New()
	mask := svc.RenderMask("hi", style.Length{Value: nominalSizePx, Unit: style.UnitPx})
	require.NotNil(t, mask)
	assert.Greater(t, mask.Bounds().Dx(), 0)
	assert.Greater(t, mask.Bounds().Dy(), 0)
}
