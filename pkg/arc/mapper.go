package arc

import (
	"math"

	"github.com/ItzUsui/MOTO-DASH/pkg/common"
)

// Point is a position on the drawing surface, y grows downwards.
type Point struct {
	X, Y float64
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Fraction returns the clamped position of value within the value range,
// normalized to [0,1].
func (g *Gauge) Fraction(value float64) float64 {
	v := Clamp(value, g.cfg.Values.Min, g.cfg.Values.Max)
	return (v - g.cfg.Values.Min) / g.cfg.Values.Span()
}

// Angle maps a reading to its dashboard angle. Out-of-range readings clamp,
// they never leave the sweep.
func (g *Gauge) Angle(value float64) float64 {
	return g.angleAt(g.Fraction(value))
}

func (g *Gauge) angleAt(fraction float64) float64 {
	if g.cfg.Direction == Reversed {
		return g.cfg.Angles.End - fraction*g.cfg.Angles.Sweep()
	}
	return g.cfg.Angles.Start + fraction*g.cfg.Angles.Sweep()
}

// SurfaceAngle converts a dashboard angle to the usual drawing-surface
// convention (0 degrees right, counter-clockwise positive).
func SurfaceAngle(dashboardDeg float64) float64 {
	return 90 - dashboardDeg
}

// PointOn returns the screen point at the given radius and dashboard angle
// around center. Screen y grows downwards, hence the negated cosine.
func PointOn(center Point, radius, dashboardDeg float64) Point {
	s, c := math.Sincos(dashboardDeg * common.PiDiv180)
	return Point{
		X: center.X + radius*s,
		Y: center.Y - radius*c,
	}
}
