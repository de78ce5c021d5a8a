// Package render turns gauge geometry into draw calls against a small
// surface abstraction, so the same pass drives the offscreen rasterizer,
// test recorders and anything else a host supplies.
package render

import (
	"image/color"

	"github.com/ItzUsui/MOTO-DASH/pkg/arc"
)

// Surface is the drawing-primitive contract a host provides for one render
// call. The renderer never retains the surface beyond the call.
type Surface interface {
	FillPolygon(pts []arc.Point, c color.RGBA)
	StrokeLine(from, to arc.Point, c color.RGBA, width float64)
	// DrawText centers text at position, rotated rotationDeg clockwise.
	DrawText(text string, position arc.Point, rotationDeg, size float64, c color.RGBA)
}
