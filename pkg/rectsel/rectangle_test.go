package rectsel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRectangle(t *testing.T) {
	anchor := Point{X: 10, Y: -5}
	for _, to := range []Point{
		{X: 10, Y: -5},
		{X: 0, Y: 0},
		{X: 25, Y: -30},
		{X: -7, Y: 40},
		{X: 100, Y: 100},
	} {
		r := NormalizeRectangle(anchor, to)
		assert.Equal(t, min(anchor.X, to.X), r.X, to)
		assert.Equal(t, min(anchor.Y, to.Y), r.Y, to)
		assert.Equal(t, uint(max(anchor.X, to.X)-min(anchor.X, to.X)), r.Width, to)
		assert.Equal(t, uint(max(anchor.Y, to.Y)-min(anchor.Y, to.Y)), r.Height, to)
		assert.Equal(t, r, NormalizeRectangle(to, anchor), "the rectangle must not depend on the drag direction")
	}
}

func TestNewRegionFarOffsets(t *testing.T) {
	root := SurfaceGeometry{Width: 800, Height: 600, BorderWidth: 2, Depth: 32}

	r := NewRegion(Rectangle{X: 700, Y: 550, Width: 200, Height: 100}, root)
	assert.Equal(t, -100, r.FarX)
	assert.Equal(t, -50, r.FarY)
	assert.Equal(t, uint(2), r.BorderWidth)
	assert.Equal(t, uint(32), r.Depth)

	r = NewRegion(Rectangle{X: 0, Y: 0}, root)
	assert.Equal(t, 800, r.FarX)
	assert.Equal(t, 600, r.FarY)
}

func TestOverlayInvertedDrawsCancel(t *testing.T) {
	ctx := testContext(t)
	gw := newFakeGateway()
	dc, err := gw.CreateInvertingContext(ctx, gw.root, 1)
	assert.NoError(t, err)
	o := newOverlay(gw, gw.root, dc)

	a := Rectangle{X: 1, Y: 2, Width: 3, Height: 4}
	b := Rectangle{X: 1, Y: 2, Width: 5, Height: 6}
	assert.NoError(t, o.show(ctx, a))
	assert.Equal(t, []Rectangle{a}, gw.visibleRectangles())
	assert.NoError(t, o.show(ctx, b))
	assert.Equal(t, []Rectangle{b}, gw.visibleRectangles())
	assert.NoError(t, o.show(ctx, b))
	assert.Equal(t, []Rectangle{b}, gw.visibleRectangles())
	assert.NoError(t, o.hide(ctx))
	assert.Empty(t, gw.visibleRectangles())
	assert.NoError(t, o.hide(ctx))
	assert.Len(t, gw.draws, 6)
}

func TestCursorStyle_String(t *testing.T) {
	for c := UndefinedCursorStyle + 1; c < endOfCursorStyle; c++ {
		assert.NotContains(t, c.String(), "unknown", "CursorStyle %d does not have a proper string defined", c)
		parsed, ok := ParseCursorStyle(c.String())
		assert.True(t, ok)
		assert.Equal(t, c, parsed)
	}
	_, ok := ParseCursorStyle("pirate")
	assert.False(t, ok)
}
