package arc_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ItzUsui/MOTO-DASH/pkg/arc"
)

func tachoConfig() arc.Config {
	return arc.Config{
		Values: arc.ValueRange{Min: 0, Max: 12000},
		Angles: arc.AngularRange{Start: 150, End: 390},
		Style: arc.Style{
			OuterRadius: 200,
			Thickness:   30,
			Background:  color.RGBA{0x20, 0x20, 0x20, 0xFF},
			Zones: []arc.ColorZone{
				{From: 0, To: 0.6, Color: color.RGBA{G: 0xA5, A: 0xFF}},
				{From: 0.6, To: 0.9, Color: color.RGBA{R: 0xA5, G: 0xA5, A: 0xFF}},
				{From: 0.9, To: 1, Color: color.RGBA{R: 0xA5, A: 0xFF}},
			},
		},
		Ticks: arc.TickSpec{MajorStep: 2000, MinorStep: 1000},
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*arc.Config)
	}{
		{"angular end before start", func(c *arc.Config) { c.Angles = arc.AngularRange{Start: 390, End: 150} }},
		{"angular zero sweep", func(c *arc.Config) { c.Angles = arc.AngularRange{Start: 90, End: 90} }},
		{"value max below min", func(c *arc.Config) { c.Values = arc.ValueRange{Min: 100, Max: 0} }},
		{"zero minor step", func(c *arc.Config) { c.Ticks.MinorStep = 0 }},
		{"negative major step", func(c *arc.Config) { c.Ticks.MajorStep = -1 }},
		{"inverted zone", func(c *arc.Config) { c.Style.Zones[1] = arc.ColorZone{From: 0.9, To: 0.6} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tachoConfig()
			tt.mutate(&cfg)
			_, err := arc.New(cfg)
			require.ErrorIs(t, err, arc.ErrInvalidConfig)
		})
	}
}

func TestAngleEndpointsAndClamp(t *testing.T) {
	g, err := arc.New(tachoConfig())
	require.NoError(t, err)

	assert.InDelta(t, 150, g.Angle(0), 1e-9)
	assert.InDelta(t, 390, g.Angle(12000), 1e-9)
	assert.InDelta(t, g.Angle(0), g.Angle(-500), 1e-9)
	assert.InDelta(t, g.Angle(12000), g.Angle(90000), 1e-9)
}

func TestAngleMonotonic(t *testing.T) {
	cfg := tachoConfig()
	forward, err := arc.New(cfg)
	require.NoError(t, err)

	cfg.Direction = arc.Reversed
	reversed, err := arc.New(cfg)
	require.NoError(t, err)

	prevF := forward.Angle(0)
	prevR := reversed.Angle(0)
	for v := 100.0; v <= 12000; v += 100 {
		af, ar := forward.Angle(v), reversed.Angle(v)
		if af < prevF {
			t.Fatalf("forward mapping decreased at %v: %v -> %v", v, prevF, af)
		}
		if ar > prevR {
			t.Fatalf("reversed mapping increased at %v: %v -> %v", v, prevR, ar)
		}
		prevF, prevR = af, ar
	}
}

func TestReversedEndpoints(t *testing.T) {
	cfg := tachoConfig()
	cfg.Direction = arc.Reversed
	g, err := arc.New(cfg)
	require.NoError(t, err)

	assert.InDelta(t, 390, g.Angle(0), 1e-9)
	assert.InDelta(t, 150, g.Angle(12000), 1e-9)
}

func TestSurfaceAngle(t *testing.T) {
	assert.InDelta(t, 90, arc.SurfaceAngle(0), 1e-9)
	assert.InDelta(t, 0, arc.SurfaceAngle(90), 1e-9)
	assert.InDelta(t, -90, arc.SurfaceAngle(180), 1e-9)
}

func TestPointOn(t *testing.T) {
	center := arc.Point{X: 100, Y: 100}

	up := arc.PointOn(center, 50, 0)
	assert.InDelta(t, 100, up.X, 1e-9)
	assert.InDelta(t, 50, up.Y, 1e-9)

	right := arc.PointOn(center, 50, 90)
	assert.InDelta(t, 150, right.X, 1e-9)
	assert.InDelta(t, 100, right.Y, 1e-9)

	down := arc.PointOn(center, 50, 180)
	assert.InDelta(t, 100, down.X, 1e-9)
	assert.InDelta(t, 150, down.Y, 1e-9)
}
