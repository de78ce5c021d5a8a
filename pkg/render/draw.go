package render

import (
	"image/color"

	"github.com/ItzUsui/MOTO-DASH/pkg/arc"
)

// Options tunes one gauge render pass. The zero value picks sensible
// defaults for everything but Center.
type Options struct {
	Center arc.Point

	// Scale multiplies the gauge radii, 1 when 0. Used for supersampled
	// offscreen rendering.
	Scale float64

	// Steps is the arc polygon sample count, DefaultPolygonSteps when 0.
	Steps int

	// OverlapDeg extends abutting zone segments slightly so anti-aliasing
	// never shows a seam between colors. Cosmetic only.
	OverlapDeg float64

	TickWidth  float64
	TickColor  color.RGBA
	LabelInset float64 // label center distance inside the inner edge
	LabelSize  float64
	LabelColor color.RGBA
}

const (
	defaultOverlapDeg = 0.2
	defaultTickWidth  = 2
	defaultLabelInset = 20
	defaultLabelSize  = 18
)

func (o *Options) applyDefaults() {
	if o.Scale == 0 {
		o.Scale = 1
	}
	if o.Steps == 0 {
		o.Steps = arc.DefaultPolygonSteps
	}
	if o.OverlapDeg == 0 {
		o.OverlapDeg = defaultOverlapDeg
	}
	if o.TickWidth == 0 {
		o.TickWidth = defaultTickWidth
	}
	if o.TickColor == (color.RGBA{}) {
		o.TickColor = color.RGBA{0xF0, 0xF0, 0xF0, 0xFF}
	}
	if o.LabelInset == 0 {
		o.LabelInset = defaultLabelInset
	}
	if o.LabelSize == 0 {
		o.LabelSize = defaultLabelSize
	}
	if o.LabelColor == (color.RGBA{}) {
		o.LabelColor = color.RGBA{0xF0, 0xF0, 0xF0, 0xFF}
	}
}

// DrawArc renders only the annulus: track pass then zone fill. Fyne
// widgets use this for their backing image and place ticks and labels as
// retained canvas objects themselves.
func DrawArc(s Surface, g *arc.Gauge, value float64, opt Options) {
	opt.applyDefaults()
	style := g.Style()
	outer := style.OuterRadius * opt.Scale
	thickness := style.Thickness * opt.Scale

	fill := func(seg arc.Segment) {
		pts := arc.Polygon(opt.Center, seg.Start, seg.End, outer, thickness, opt.Steps)
		if len(pts) > 0 {
			s.FillPolygon(pts, seg.Color)
		}
	}

	fill(g.Track())

	segs := g.Segments(value)
	for i, seg := range segs {
		// Pad shared boundaries, not the leading edge of the fill.
		if i < len(segs)-1 {
			if seg.End > seg.Start {
				seg.End += opt.OverlapDeg
			} else {
				seg.End -= opt.OverlapDeg
			}
		}
		fill(seg)
	}
}

// Draw renders one gauge reading: track pass, zone fill, tick marks, then
// labels. It is a pure function of its inputs and safe to call from any
// goroutine as long as the surface is not shared.
func Draw(s Surface, g *arc.Gauge, value float64, opt Options) {
	opt.applyDefaults()
	style := g.Style()
	outer := style.OuterRadius * opt.Scale
	thickness := style.Thickness * opt.Scale

	DrawArc(s, g, value, opt)

	inner := outer - thickness
	if inner < 0 {
		inner = 0
	}
	ticks := g.TickMarks()
	for _, tick := range ticks {
		s.StrokeLine(
			arc.PointOn(opt.Center, outer, tick.Angle),
			arc.PointOn(opt.Center, inner, tick.Angle),
			opt.TickColor, opt.TickWidth,
		)
	}
	for _, tick := range ticks {
		if !tick.Major {
			continue
		}
		at := arc.PointOn(opt.Center, inner-opt.LabelInset, tick.Angle)
		s.DrawText(tick.Label, at, tick.LabelRotation, opt.LabelSize, opt.LabelColor)
	}
}
