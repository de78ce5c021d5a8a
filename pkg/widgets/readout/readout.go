package readout

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/ItzUsui/MOTO-DASH/pkg/common"
	"github.com/ItzUsui/MOTO-DASH/pkg/widgets"
)

// Readout shows speed as a large number with the unit and engaged gear
// beneath it. Gear 0 renders as N.
type Readout struct {
	widget.BaseWidget

	cfg *widgets.GaugeConfig

	speed float64
	gear  int

	speedText *canvas.Text
	unitText  *canvas.Text
	gearText  *canvas.Text

	size fyne.Size
	buf  []byte
}

func New(cfg *widgets.GaugeConfig) *Readout {
	r := &Readout{cfg: cfg, gear: -1}
	r.ExtendBaseWidget(r)

	r.speedText = &canvas.Text{Text: "0", Color: color.RGBA{R: 0x2c, G: 0xfc, B: 0x03, A: 0xFF}, TextSize: 72}
	r.speedText.TextStyle.Monospace = true
	r.speedText.Alignment = fyne.TextAlignCenter

	r.unitText = &canvas.Text{Text: cfg.Title, Color: color.RGBA{0xF0, 0xF0, 0xF0, 0xFF}, TextSize: 20}
	r.unitText.TextStyle.Monospace = true
	r.unitText.Alignment = fyne.TextAlignCenter

	r.gearText = &canvas.Text{Text: "N", Color: color.RGBA{R: 0xFF, G: 0x67, B: 0, A: 0xFF}, TextSize: 48}
	r.gearText.TextStyle.Monospace = true
	r.gearText.Alignment = fyne.TextAlignCenter

	return r
}

func (r *Readout) GetConfig() *widgets.GaugeConfig { return r.cfg }

func (r *Readout) SetValue(value float64) {
	if value == r.speed {
		return
	}
	r.speed = value
	r.buf = strconv.AppendFloat(r.buf[:0], value, 'f', 0, 64)
	r.speedText.Text = string(r.buf)
	canvas.Refresh(r.speedText)
}

// SetGear updates the gear indicator. Values are rounded, zero is neutral.
func (r *Readout) SetGear(value float64) {
	g := int(value + 0.5)
	if g == r.gear {
		return
	}
	r.gear = g
	if g == 0 {
		r.gearText.Text = "N"
	} else {
		r.gearText.Text = strconv.Itoa(g)
	}
	canvas.Refresh(r.gearText)
}

func (r *Readout) Value() float64 { return r.speed }

func (r *Readout) CreateRenderer() fyne.WidgetRenderer {
	return &readoutRenderer{r}
}

type readoutRenderer struct {
	*Readout
}

func (r *readoutRenderer) MinSize() fyne.Size {
	if r.cfg.MinSize.Width > 0 {
		return r.cfg.MinSize
	}
	return fyne.NewSize(120, 120)
}

func (r *readoutRenderer) Refresh() {}

func (r *readoutRenderer) Destroy() {}

func (r *readoutRenderer) Layout(space fyne.Size) {
	if r.size == space {
		return
	}
	r.size = space

	middleX := space.Width * common.OneHalf

	r.speedText.TextSize = space.Height * common.OneThird
	r.speedText.Move(fyne.NewPos(middleX, space.Height*common.OneEight))

	r.unitText.TextSize = space.Height * common.OneEight
	r.unitText.Move(fyne.NewPos(middleX, space.Height*common.OneHalf))

	r.gearText.TextSize = space.Height * common.OneFourth
	r.gearText.Move(fyne.NewPos(middleX, space.Height*common.OneHalf+r.unitText.MinSize().Height+4))

	for _, o := range []fyne.CanvasObject{r.speedText, r.unitText, r.gearText} {
		canvas.Refresh(o)
	}
}

func (r *readoutRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.speedText, r.unitText, r.gearText}
}
