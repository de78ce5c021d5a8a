package render_test

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ItzUsui/MOTO-DASH/pkg/arc"
	"github.com/ItzUsui/MOTO-DASH/pkg/render"
)

func testGauge(t *testing.T) *arc.Gauge {
	t.Helper()
	g, err := arc.New(arc.Config{
		Values: arc.ValueRange{Min: 0, Max: 100},
		Angles: arc.AngularRange{Start: 150, End: 390},
		Style: arc.Style{
			OuterRadius: 100,
			Thickness:   20,
			Background:  color.RGBA{0x20, 0x20, 0x20, 0xFF},
			Zones: []arc.ColorZone{
				{From: 0, To: 0.6, Color: color.RGBA{G: 0xA5, A: 0xFF}},
				{From: 0.6, To: 0.9, Color: color.RGBA{R: 0xA5, G: 0xA5, A: 0xFF}},
				{From: 0.9, To: 1, Color: color.RGBA{R: 0xA5, A: 0xFF}},
			},
		},
		Ticks: arc.TickSpec{MajorStep: 20, MinorStep: 10},
	})
	require.NoError(t, err)
	return g
}

func TestDrawPassOrder(t *testing.T) {
	rec := &render.Recorder{}
	render.Draw(rec, testGauge(t), 75, render.Options{Center: arc.Point{X: 128, Y: 128}})

	order := rec.Order()
	require.NotEmpty(t, order)
	assert.Equal(t, "fill", order[0], "track pass must come first")

	// track + full green + partial yellow, no red
	require.Len(t, rec.Fills, 3)
	assert.Equal(t, color.RGBA{0x20, 0x20, 0x20, 0xFF}, rec.Fills[0].Color)
	assert.Equal(t, color.RGBA{G: 0xA5, A: 0xFF}, rec.Fills[1].Color)
	assert.Equal(t, color.RGBA{R: 0xA5, G: 0xA5, A: 0xFF}, rec.Fills[2].Color)

	// 11 tick lines, 6 labels (0,20,40,60,80,100)
	assert.Len(t, rec.Lines, 11)
	assert.Len(t, rec.Texts, 6)
}

func TestDrawPolygonSampling(t *testing.T) {
	rec := &render.Recorder{}
	render.Draw(rec, testGauge(t), 100, render.Options{Center: arc.Point{X: 128, Y: 128}, Steps: 90})
	for _, f := range rec.Fills {
		assert.Len(t, f.Points, 2*(90+1))
	}
}

func TestDrawOverlapCosmeticOnly(t *testing.T) {
	g := testGauge(t)

	plain := &render.Recorder{}
	render.Draw(plain, g, 75, render.Options{Center: arc.Point{X: 128, Y: 128}, OverlapDeg: 0.5})

	// Overlap pads polygon seams but must not change which zones draw or
	// where the fill front sits.
	assert.Len(t, plain.Fills, 3)
	segs := g.Segments(75)
	front := segs[len(segs)-1].End
	assert.InDelta(t, 150+0.75*240, front, 1e-9)
}

func TestDrawMinimumReading(t *testing.T) {
	rec := &render.Recorder{}
	render.Draw(rec, testGauge(t), 0, render.Options{Center: arc.Point{X: 128, Y: 128}})
	// Only the track fills at the bottom of the scale.
	assert.Len(t, rec.Fills, 1)
}

func TestRasterProducesPixels(t *testing.T) {
	r := render.NewRaster(256, 256)
	r.Clear(color.RGBA{A: 0xFF})
	render.Draw(r, testGauge(t), 60, render.Options{Center: arc.Point{X: 128, Y: 128}})

	img := r.Image()
	require.Equal(t, image.Rect(0, 0, 256, 256), img.Bounds())

	// The fill front at 60% sits mid-sweep; probe a pixel inside the green
	// zone near the start of the arc.
	p := arc.PointOn(arc.Point{X: 128, Y: 128}, 90, 160)
	cr, cg, _, _ := img.At(int(p.X), int(p.Y)).RGBA()
	assert.Greater(t, cg, cr, "start of the arc should read green")
}

func TestCompositeTiles(t *testing.T) {
	g := testGauge(t)
	tiles := []render.Tile{
		{Gauge: g, Value: 30, Opt: render.Options{Center: arc.Point{X: 110, Y: 110}}, Rect: image.Rect(0, 0, 220, 220)},
		{Gauge: g, Value: 95, Opt: render.Options{Center: arc.Point{X: 110, Y: 110}}, Rect: image.Rect(220, 0, 440, 220)},
	}
	img, err := render.Composite(context.Background(), 440, 220, color.RGBA{A: 0xFF}, tiles)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 440, 220), img.Bounds())
}

func TestCompositeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := render.Composite(ctx, 64, 64, color.RGBA{}, []render.Tile{
		{Gauge: testGauge(t), Value: 10, Opt: render.Options{Center: arc.Point{X: 32, Y: 32}}, Rect: image.Rect(0, 0, 64, 64)},
	})
	require.ErrorIs(t, err, context.Canceled)
}
