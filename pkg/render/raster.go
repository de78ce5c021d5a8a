package render

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"github.com/ItzUsui/MOTO-DASH/pkg/arc"
	"github.com/ItzUsui/MOTO-DASH/pkg/common"
)

// Raster is an offscreen Surface over a gg drawing context. Labels need a
// font face; without one DrawText is a no-op, which keeps headless use and
// tests free of font files.
type Raster struct {
	dc *gg.Context
}

// NewRaster returns a surface backed by a fresh w x h software context.
func NewRaster(w, h int) *Raster {
	return &Raster{dc: gg.NewContext(w, h)}
}

// LoadFontFace loads a TTF for label drawing, size in points.
func (r *Raster) LoadFontFace(path string, points float64) error {
	return r.dc.LoadFontFace(path, points)
}

// Clear fills the whole surface with c.
func (r *Raster) Clear(c color.RGBA) {
	r.dc.SetColor(c)
	r.dc.DrawRectangle(0, 0, float64(r.dc.Width()), float64(r.dc.Height()))
	r.dc.Fill()
}

func (r *Raster) FillPolygon(pts []arc.Point, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	r.dc.SetColor(c)
	r.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		r.dc.LineTo(p.X, p.Y)
	}
	r.dc.ClosePath()
	r.dc.Fill()
}

func (r *Raster) StrokeLine(from, to arc.Point, c color.RGBA, width float64) {
	r.dc.SetColor(c)
	r.dc.SetLineWidth(width)
	r.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	r.dc.Stroke()
}

// DrawText centers and rotates text. The face size is fixed when the font
// loads, so size here is advisory.
func (r *Raster) DrawText(text string, position arc.Point, rotationDeg, _ float64, c color.RGBA) {
	if r.dc.Font() == nil {
		return
	}
	r.dc.SetColor(c)
	r.dc.Push()
	r.dc.RotateAbout(rotationDeg*common.PiDiv180, position.X, position.Y)
	r.dc.DrawStringAnchored(text, position.X, position.Y, 0.5, 0.5)
	r.dc.Pop()
}

// Image returns the rendered pixels.
func (r *Raster) Image() image.Image { return r.dc.Image() }

// EncodePNG writes the surface as PNG.
func (r *Raster) EncodePNG(w io.Writer) error { return r.dc.EncodePNG(w) }
