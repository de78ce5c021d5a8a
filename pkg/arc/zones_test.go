package arc_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ItzUsui/MOTO-DASH/pkg/arc"
)

var (
	green  = color.RGBA{G: 0xA5, A: 0xFF}
	yellow = color.RGBA{R: 0xA5, G: 0xA5, A: 0xFF}
	red    = color.RGBA{R: 0xA5, A: 0xFF}
)

func zoneGauge(t *testing.T, zones []arc.ColorZone) *arc.Gauge {
	t.Helper()
	g, err := arc.New(arc.Config{
		Values: arc.ValueRange{Min: 0, Max: 100},
		Angles: arc.AngularRange{Start: 0, End: 200},
		Style:  arc.Style{OuterRadius: 100, Thickness: 20, Zones: zones},
		Ticks:  arc.TickSpec{MajorStep: 20, MinorStep: 10},
	})
	require.NoError(t, err)
	return g
}

func TestSegmentsPartialFill(t *testing.T) {
	g := zoneGauge(t, []arc.ColorZone{
		{From: 0, To: 0.6, Color: green},
		{From: 0.6, To: 0.9, Color: yellow},
		{From: 0.9, To: 1, Color: red},
	})

	// Reading at fraction 0.75: full green, yellow cut at 0.75, no red.
	segs := g.Segments(75)
	require.Len(t, segs, 2)

	assert.Equal(t, green, segs[0].Color)
	assert.InDelta(t, 0, segs[0].Start, 1e-9)
	assert.InDelta(t, 120, segs[0].End, 1e-9)

	assert.Equal(t, yellow, segs[1].Color)
	assert.InDelta(t, 120, segs[1].Start, 1e-9)
	assert.InDelta(t, 150, segs[1].End, 1e-9)
}

func TestSegmentsBoundaries(t *testing.T) {
	zones := []arc.ColorZone{
		{From: 0, To: 0.6, Color: green},
		{From: 0.6, To: 0.9, Color: yellow},
		{From: 0.9, To: 1, Color: red},
	}
	tests := []struct {
		name  string
		value float64
		want  int
	}{
		{"at minimum", 0, 0},
		{"inside first zone", 30, 1},
		{"exactly on zone edge", 60, 1},
		{"at maximum", 100, 3},
		{"clamped above maximum", 250, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := zoneGauge(t, zones)
			assert.Len(t, g.Segments(tt.value), tt.want)
		})
	}
}

func TestSegmentsEarlyExit(t *testing.T) {
	// The second zone straddles the reading, so the scan must stop there
	// even though the third zone claims a span that starts below it.
	g := zoneGauge(t, []arc.ColorZone{
		{From: 0, To: 0.5, Color: green},
		{From: 0.5, To: 0.8, Color: yellow},
		{From: 0.55, To: 1, Color: red},
	})
	segs := g.Segments(70)
	require.Len(t, segs, 2)
	assert.Equal(t, yellow, segs[1].Color)
}

func TestSegmentsSparseZones(t *testing.T) {
	// A gap between zones leaves only the track; a reading inside the gap
	// still draws the zone below it in full.
	g := zoneGauge(t, []arc.ColorZone{
		{From: 0, To: 0.3, Color: green},
		{From: 0.7, To: 1, Color: red},
	})
	segs := g.Segments(50)
	require.Len(t, segs, 1)
	assert.Equal(t, green, segs[0].Color)
}

func TestTrackCoversSweep(t *testing.T) {
	g := zoneGauge(t, nil)
	track := g.Track()
	assert.InDelta(t, 0, track.Start, 1e-9)
	assert.InDelta(t, 200, track.End, 1e-9)
}
