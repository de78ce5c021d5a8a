package arc

import (
	"math"
	"strconv"
)

// Tick is one scale mark. Major ticks carry a label and the rotation that
// keeps it tangent to the arc and upright for the viewer.
type Tick struct {
	Value float64
	Angle float64 // dashboard degrees
	Major bool

	Label         string
	LabelRotation float64 // screen degrees, clockwise
}

// TickMarks lays out the scale: a mark at every multiple of MinorStep from
// Min through Max inclusive, labels at multiples of MajorStep. The terminal
// tick is always labeled even when it misses a clean major step.
func (g *Gauge) TickMarks() []Tick {
	minor := g.cfg.Ticks.MinorStep
	major := g.cfg.Ticks.MajorStep
	eps := minor * 1e-6

	format := g.cfg.Ticks.Format
	if format == nil {
		format = func(v float64) string { return strconv.FormatFloat(v, 'f', 0, 64) }
	}

	// Step by index, not by accumulation, so long scales don't drift off
	// the terminal tick.
	count := int(math.Floor(g.cfg.Values.Span()/minor+eps)) + 1
	ticks := make([]Tick, 0, count)
	for i := 0; i < count; i++ {
		v := g.cfg.Values.Min + float64(i)*minor
		terminal := i == count-1
		t := Tick{
			Value: v,
			Angle: g.angleAt((v - g.cfg.Values.Min) / g.cfg.Values.Span()),
			Major: terminal || onStep(v, major, eps),
		}
		if t.Major {
			t.Label = format(v)
			t.LabelRotation = g.labelRotation(t.Angle, v)
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// labelRotation makes the label tangent to the arc and flips it upright when
// the tick sits in the half of the face where tangent text would read
// upside-down. Values in the flip override set get one more half turn.
func (g *Gauge) labelRotation(angleDeg, value float64) float64 {
	rot := angleDeg - 90
	if m := normDeg(angleDeg); m > 180 {
		rot += 180
	}
	if _, ok := g.flip[value]; ok {
		rot += 180
	}
	return normDeg(rot+180) - 180 // into [-180, 180)
}

func onStep(v, step, eps float64) bool {
	return math.Abs(math.Remainder(v, step)) < eps
}

// normDeg wraps an angle into [0, 360).
func normDeg(a float64) float64 {
	m := math.Mod(a, 360)
	if m < 0 {
		m += 360
	}
	return m
}
