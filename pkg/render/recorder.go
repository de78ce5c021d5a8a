package render

import (
	"image/color"

	"github.com/ItzUsui/MOTO-DASH/pkg/arc"
)

// Recorder is a Surface that captures draw calls in order. Test helper.
type Recorder struct {
	Fills []FillCall
	Lines []LineCall
	Texts []TextCall
	order []string
}

type FillCall struct {
	Points []arc.Point
	Color  color.RGBA
}

type LineCall struct {
	From, To arc.Point
	Color    color.RGBA
	Width    float64
}

type TextCall struct {
	Text     string
	Position arc.Point
	Rotation float64
	Size     float64
	Color    color.RGBA
}

func (r *Recorder) FillPolygon(pts []arc.Point, c color.RGBA) {
	r.Fills = append(r.Fills, FillCall{Points: pts, Color: c})
	r.order = append(r.order, "fill")
}

func (r *Recorder) StrokeLine(from, to arc.Point, c color.RGBA, width float64) {
	r.Lines = append(r.Lines, LineCall{From: from, To: to, Color: c, Width: width})
	r.order = append(r.order, "line")
}

func (r *Recorder) DrawText(text string, position arc.Point, rotationDeg, size float64, c color.RGBA) {
	r.Texts = append(r.Texts, TextCall{Text: text, Position: position, Rotation: rotationDeg, Size: size, Color: c})
	r.order = append(r.order, "text")
}

// Order returns the call kinds in emission order.
func (r *Recorder) Order() []string { return r.order }
