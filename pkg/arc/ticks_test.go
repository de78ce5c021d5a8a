package arc_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ItzUsui/MOTO-DASH/pkg/arc"
)

func tickGauge(t *testing.T, cfg arc.Config) *arc.Gauge {
	t.Helper()
	g, err := arc.New(cfg)
	require.NoError(t, err)
	return g
}

func TestTickMarksCounts(t *testing.T) {
	g := tickGauge(t, arc.Config{
		Values: arc.ValueRange{Min: 0, Max: 180},
		Angles: arc.AngularRange{Start: 150, End: 390},
		Style:  arc.Style{OuterRadius: 100, Thickness: 15},
		Ticks:  arc.TickSpec{MajorStep: 20, MinorStep: 10},
	})

	ticks := g.TickMarks()
	require.Len(t, ticks, 19)

	var labels int
	for _, tick := range ticks {
		if tick.Major {
			labels++
		}
	}
	assert.Equal(t, 10, labels)

	assert.Equal(t, "0", ticks[0].Label)
	assert.Equal(t, "180", ticks[18].Label)
	assert.Empty(t, ticks[1].Label)
}

func TestTickMarksTerminalAlwaysLabeled(t *testing.T) {
	// 0..90 in steps of 20: the terminal 90 misses the major grid but must
	// carry a label anyway.
	g := tickGauge(t, arc.Config{
		Values: arc.ValueRange{Min: 0, Max: 90},
		Angles: arc.AngularRange{Start: 0, End: 180},
		Style:  arc.Style{OuterRadius: 100, Thickness: 15},
		Ticks:  arc.TickSpec{MajorStep: 20, MinorStep: 10},
	})
	ticks := g.TickMarks()
	require.Len(t, ticks, 10)
	last := ticks[len(ticks)-1]
	assert.True(t, last.Major)
	assert.Equal(t, "90", last.Label)
}

func TestTickMarksNoDriftOnLongScale(t *testing.T) {
	// 0..12000 by 100: naive accumulation of 0.1-style steps loses the
	// terminal tick; index stepping must not.
	g := tickGauge(t, arc.Config{
		Values: arc.ValueRange{Min: 0, Max: 12000},
		Angles: arc.AngularRange{Start: 150, End: 390},
		Style:  arc.Style{OuterRadius: 100, Thickness: 15},
		Ticks:  arc.TickSpec{MajorStep: 1000, MinorStep: 100},
	})
	ticks := g.TickMarks()
	require.Len(t, ticks, 121)
	assert.InDelta(t, 12000, ticks[len(ticks)-1].Value, 1e-6)
}

func TestTickMarksCustomFormat(t *testing.T) {
	g := tickGauge(t, arc.Config{
		Values: arc.ValueRange{Min: 0, Max: 12000},
		Angles: arc.AngularRange{Start: 150, End: 390},
		Style:  arc.Style{OuterRadius: 100, Thickness: 15},
		Ticks: arc.TickSpec{
			MajorStep: 1000,
			MinorStep: 500,
			Format:    func(v float64) string { return fmt.Sprintf("%.0f", v/1000) },
		},
	})
	ticks := g.TickMarks()
	assert.Equal(t, "0", ticks[0].Label)
	assert.Equal(t, "12", ticks[len(ticks)-1].Label)
}

func TestLabelRotationUprightFlip(t *testing.T) {
	// One gauge whose major ticks land at dashboard 20 and 200 degrees:
	// the 200 degree label sits in the upside-down half and must come out
	// a half turn off its tangent rotation, matching the 20 degree label.
	g := tickGauge(t, arc.Config{
		Values: arc.ValueRange{Min: 0, Max: 180},
		Angles: arc.AngularRange{Start: 20, End: 200},
		Style:  arc.Style{OuterRadius: 100, Thickness: 15},
		Ticks:  arc.TickSpec{MajorStep: 180, MinorStep: 180},
	})
	ticks := g.TickMarks()
	require.Len(t, ticks, 2)

	lower, upper := ticks[0], ticks[1]
	require.InDelta(t, 20, lower.Angle, 1e-9)
	require.InDelta(t, 200, upper.Angle, 1e-9)

	tangent := upper.Angle - 90
	assert.InDelta(t, 180, math.Abs(angleDiff(upper.LabelRotation, tangent)), 1e-9)
	assert.InDelta(t, 0, angleDiff(upper.LabelRotation, lower.LabelRotation), 1e-9)
}

func TestLabelRotationOverride(t *testing.T) {
	base := arc.Config{
		Values: arc.ValueRange{Min: 0, Max: 100},
		Angles: arc.AngularRange{Start: 150, End: 390},
		Style:  arc.Style{OuterRadius: 100, Thickness: 15},
		Ticks:  arc.TickSpec{MajorStep: 25, MinorStep: 25},
	}
	plain := tickGauge(t, base)

	base.FlipLabels = []float64{25}
	flipped := tickGauge(t, base)

	p, f := plain.TickMarks()[1], flipped.TickMarks()[1]
	require.InDelta(t, 25, p.Value, 1e-9)
	assert.InDelta(t, 180, math.Abs(angleDiff(f.LabelRotation, p.LabelRotation)), 1e-9)

	// The override is per value, neighbours stay untouched.
	assert.InDelta(t, 0, angleDiff(plain.TickMarks()[2].LabelRotation, flipped.TickMarks()[2].LabelRotation), 1e-9)
}

// angleDiff returns the signed smallest difference between two angles.
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d < -180 {
		d += 360
	}
	if d >= 180 {
		d -= 360
	}
	return d
}
