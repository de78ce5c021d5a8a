// Package arc holds the gauge geometry model: the mapping from a scalar
// reading to an annular arc with color zones, tick marks and labels.
//
// All angles use the dashboard convention: 0 degrees is straight up and
// angles grow clockwise. A sweep may pass 360 to express wraparound, so a
// classic tachometer face runs 150..390. Conversion to screen coordinates
// happens at the edge, see PointOn and SurfaceAngle.
package arc

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidConfig is returned by New for configuration that violates the
// model invariants. Per-frame readings are never errors, they are clamped.
var ErrInvalidConfig = errors.New("invalid gauge configuration")

// Direction fixes which end of the angular range represents Min.
type Direction int

const (
	Forward  Direction = iota // Min at Start, Max at End
	Reversed                  // Min at End, Max at Start
)

// AngularRange is a clockwise sweep in dashboard degrees, End > Start.
type AngularRange struct {
	Start, End float64
}

// Sweep returns the angular span in degrees.
func (a AngularRange) Sweep() float64 { return a.End - a.Start }

// ValueRange is the closed value interval a gauge displays, Max > Min.
type ValueRange struct {
	Min, Max float64
}

// Span returns Max - Min.
func (v ValueRange) Span() float64 { return v.Max - v.Min }

// ColorZone colors the fraction interval [From, To) of the value range.
// Zones are ordered ascending and may be sparse.
type ColorZone struct {
	From, To float64
	Color    color.RGBA
}

// Style describes the annulus and its fill colors.
type Style struct {
	OuterRadius float64
	Thickness   float64 // >= OuterRadius degrades to a filled wedge
	Zones       []ColorZone
	Background  color.RGBA // track color, drawn over the full sweep
}

// TickSpec controls tick marks and labels. Every multiple of MinorStep gets
// a mark, multiples of MajorStep (and the terminal tick) get a label.
type TickSpec struct {
	MajorStep float64
	MinorStep float64
	Format    func(value float64) string
}

// Config is the immutable setup of one gauge.
type Config struct {
	Values    ValueRange
	Angles    AngularRange
	Direction Direction
	Style     Style
	Ticks     TickSpec

	// FlipLabels lists tick values whose label gets an extra half turn on
	// top of the computed upright rotation. Some faces need this for ticks
	// that sit right on the flip boundary.
	FlipLabels []float64
}

// Gauge is a pure mapper from readings to drawable geometry. It owns no
// mutable state, one instance may serve any number of render calls.
type Gauge struct {
	cfg  Config
	flip map[float64]struct{}
}

// New validates cfg and returns the gauge. Validation happens here, at
// style-setup time, never per frame.
func New(cfg Config) (*Gauge, error) {
	if cfg.Angles.End <= cfg.Angles.Start {
		return nil, fmt.Errorf("%w: angular range %0.1f..%0.1f", ErrInvalidConfig, cfg.Angles.Start, cfg.Angles.End)
	}
	if cfg.Values.Max <= cfg.Values.Min {
		return nil, fmt.Errorf("%w: value range %0.2f..%0.2f", ErrInvalidConfig, cfg.Values.Min, cfg.Values.Max)
	}
	if cfg.Ticks.MinorStep <= 0 {
		return nil, fmt.Errorf("%w: minor step %0.2f", ErrInvalidConfig, cfg.Ticks.MinorStep)
	}
	if cfg.Ticks.MajorStep <= 0 {
		return nil, fmt.Errorf("%w: major step %0.2f", ErrInvalidConfig, cfg.Ticks.MajorStep)
	}
	for i, z := range cfg.Style.Zones {
		if z.From >= z.To {
			return nil, fmt.Errorf("%w: zone %d spans %0.2f..%0.2f", ErrInvalidConfig, i, z.From, z.To)
		}
	}
	g := &Gauge{cfg: cfg}
	if len(cfg.FlipLabels) > 0 {
		g.flip = make(map[float64]struct{}, len(cfg.FlipLabels))
		for _, v := range cfg.FlipLabels {
			g.flip[v] = struct{}{}
		}
	}
	return g, nil
}

// Config returns a copy of the gauge configuration.
func (g *Gauge) Config() Config { return g.cfg }

// Values returns the value range.
func (g *Gauge) Values() ValueRange { return g.cfg.Values }

// Angles returns the angular range.
func (g *Gauge) Angles() AngularRange { return g.cfg.Angles }

// Style returns the arc style.
func (g *Gauge) Style() Style { return g.cfg.Style }
