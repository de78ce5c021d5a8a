package arc

import "image/color"

// Segment is one colored slice of the sweep, in dashboard degrees. For
// reversed gauges End may be smaller than Start; Polygon handles either
// order.
type Segment struct {
	Start, End float64
	Color      color.RGBA
}

// Track returns the full-sweep background segment. Callers draw it before
// any zone fill so the unreached part of the scale shows the track color.
func (g *Gauge) Track() Segment {
	return Segment{
		Start: g.angleAt(0),
		End:   g.angleAt(1),
		Color: g.cfg.Style.Background,
	}
}

// Segments returns the zone fill for a reading as an ordered ascending scan
// over the configured zones: zones fully below the reading draw whole, the
// zone holding the reading draws up to it, and the scan stops there. Zones
// past the straddling one are never drawn, even when their own bounds would
// reach further.
func (g *Gauge) Segments(value float64) []Segment {
	f := g.Fraction(value)
	var out []Segment
	for _, z := range g.cfg.Style.Zones {
		if z.To <= f {
			out = append(out, Segment{Start: g.angleAt(z.From), End: g.angleAt(z.To), Color: z.Color})
			continue
		}
		if z.From < f {
			out = append(out, Segment{Start: g.angleAt(z.From), End: g.angleAt(f), Color: z.Color})
		}
		break
	}
	return out
}
