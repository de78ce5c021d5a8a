package tacho

import (
	"image/color"
	"math"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/ItzUsui/MOTO-DASH/pkg/arc"
	"github.com/ItzUsui/MOTO-DASH/pkg/common"
	"github.com/ItzUsui/MOTO-DASH/pkg/render"
	"github.com/ItzUsui/MOTO-DASH/pkg/widgets"
)

// fillSteps quantizes the zone fill so the backing image only re-renders
// when the reading moves far enough to change a visible segment.
const fillSteps = 180

type Tacho struct {
	widget.BaseWidget
	displayString string

	cfg   *widgets.GaugeConfig
	gauge *arc.Gauge

	value float64
	lastQ int

	needle      *canvas.Line
	zoneImg     *canvas.Image
	pips        []*canvas.Line
	labels      []*canvas.Text
	displayText *canvas.Text
	titleText   *canvas.Text

	size    fyne.Size
	minsize fyne.Size

	diameter     float32
	radius       float32
	middle       fyne.Position
	needleOffset float32
	needleLength float32

	ticks []arc.Tick
	// Precomputed trig per tick, size-independent.
	tickSin []float32
	tickCos []float32

	fmtPrec int
	buf     []byte
}

func New(cfg *widgets.GaugeConfig) *Tacho {
	c := &Tacho{
		cfg:           cfg,
		gauge:         cfg.Gauge,
		displayString: "%.0f",
		minsize:       fyne.NewSize(100, 100),
		fmtPrec:       -1,
	}
	c.ExtendBaseWidget(c)

	if cfg.DisplayString != "" {
		c.displayString = cfg.DisplayString
		if n := parseFixedPrec(c.displayString); n >= 0 {
			c.fmtPrec = n
		}
	}
	if cfg.MinSize.Width > 0 && cfg.MinSize.Height > 0 {
		c.minsize = cfg.MinSize
	}
	if c.gauge == nil {
		c.gauge = defaultGauge(cfg)
	}

	c.zoneImg = &canvas.Image{FillMode: canvas.ImageFillContain, ScaleMode: canvas.ImageScaleFastest}
	c.needle = &canvas.Line{StrokeColor: color.RGBA{R: 0xFF, G: 0x67, B: 0, A: 0xFF}, StrokeWidth: 3}

	c.titleText = &canvas.Text{Text: cfg.Title, Color: color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}, TextSize: 25}
	c.titleText.TextStyle.Monospace = true
	c.titleText.Alignment = fyne.TextAlignCenter

	c.displayText = &canvas.Text{Text: "0", Color: color.RGBA{R: 0x2c, G: 0xfc, B: 0x03, A: 0xFF}, TextSize: 52}
	c.displayText.TextStyle.Monospace = true
	c.displayText.Alignment = fyne.TextAlignCenter

	c.ticks = c.gauge.TickMarks()
	c.tickSin = make([]float32, len(c.ticks))
	c.tickCos = make([]float32, len(c.ticks))
	for i, tick := range c.ticks {
		s, co := math.Sincos(tick.Angle * common.PiDiv180)
		c.tickSin[i] = float32(s)
		c.tickCos[i] = float32(co)

		pip := &canvas.Line{StrokeColor: color.RGBA{0xF0, 0xF0, 0xF0, 0xFF}, StrokeWidth: 2}
		c.pips = append(c.pips, pip)

		if tick.Major {
			label := &canvas.Text{Text: tick.Label, Color: color.RGBA{0xF0, 0xF0, 0xF0, 0xFF}, TextSize: 16}
			label.TextStyle.Monospace = true
			label.Alignment = fyne.TextAlignCenter
			c.labels = append(c.labels, label)
		} else {
			c.labels = append(c.labels, nil)
		}
	}

	return c
}

// defaultGauge builds tachometer geometry from the flat config values when
// no explicit arc gauge is supplied.
func defaultGauge(cfg *widgets.GaugeConfig) *arc.Gauge {
	redline := cfg.Redline
	if redline == 0 {
		redline = cfg.Max * 0.9
	}
	warn := (redline - cfg.Min) / (cfg.Max - cfg.Min)
	span := cfg.Max - cfg.Min
	step := span / float64(max(cfg.Steps, 1))
	g, err := arc.New(arc.Config{
		Values:    arc.ValueRange{Min: cfg.Min, Max: cfg.Max},
		Angles:    arc.AngularRange{Start: 150, End: 390},
		Direction: arc.Forward,
		Style: arc.Style{
			OuterRadius: 100,
			Thickness:   18,
			Background:  color.RGBA{0x30, 0x30, 0x30, 0xFF},
			Zones: []arc.ColorZone{
				{From: 0, To: warn * 0.75, Color: color.RGBA{G: 0xA5, A: 0xFF}},
				{From: warn * 0.75, To: warn, Color: color.RGBA{R: 0xA5, G: 0xA5, A: 0xFF}},
				{From: warn, To: 1, Color: color.RGBA{R: 0xA5, A: 0xFF}},
			},
		},
		Ticks: arc.TickSpec{MajorStep: step * 2, MinorStep: step},
	})
	if err != nil {
		// Static geometry above, only reachable with a broken GaugeConfig.
		panic(err)
	}
	return g
}

func (c *Tacho) GetConfig() *widgets.GaugeConfig { return c.cfg }

func (c *Tacho) applySinCos(hand *canvas.Line, sinRot, cosRot float32, offset, length float32) {
	x2 := length * sinRot
	y2 := -length * cosRot
	offX := offset * sinRot
	offY := -offset * cosRot
	midX := c.middle.X + offX
	midY := c.middle.Y + offY
	hand.Position1 = fyne.Position{X: midX, Y: midY}
	hand.Position2 = fyne.Position{X: midX + x2, Y: midY + y2}
}

func (c *Tacho) rotateNeedleNoRefresh(value float64) {
	s, co := math.Sincos(c.gauge.Angle(value) * common.PiDiv180)
	c.applySinCos(c.needle, float32(s), float32(co), c.needleOffset, c.needleLength)
}

func (c *Tacho) SetValue(value float64) {
	if value == c.value {
		return
	}
	c.value = value

	c.rotateNeedleNoRefresh(value)

	c.buf = c.buf[:0]
	if c.fmtPrec >= 0 {
		c.buf = strconv.AppendFloat(c.buf, value, 'f', c.fmtPrec, 64)
	} else {
		c.buf = strconv.AppendFloat(c.buf, value, 'f', 0, 64)
	}
	c.displayText.Text = string(c.buf)

	canvas.Refresh(c.needle)
	canvas.Refresh(c.displayText)

	// The zone fill only moves a pixel or two per frame; re-render the
	// backing image when the quantized fraction changes.
	if q := int(c.gauge.Fraction(value) * fillSteps); q != c.lastQ {
		c.lastQ = q
		c.renderZones()
		canvas.Refresh(c.zoneImg)
	}
}

func (c *Tacho) Value() float64 { return c.value }

// Gauge exposes the arc geometry so offscreen renderers can draw the
// same face the widget shows.
func (c *Tacho) Gauge() *arc.Gauge { return c.gauge }

func (c *Tacho) renderZones() {
	d := int(c.diameter)
	if d <= 0 {
		return
	}
	r := render.NewRaster(d, d)
	render.DrawArc(r, c.gauge, c.value, render.Options{
		Center: arc.Point{X: float64(d) / 2, Y: float64(d) / 2},
		Scale:  float64(c.radius) / c.gauge.Style().OuterRadius,
	})
	c.zoneImg.Image = r.Image()
}

func (c *Tacho) CreateRenderer() fyne.WidgetRenderer { return &TachoRenderer{Tacho: c} }

type TachoRenderer struct {
	*Tacho
	objects []fyne.CanvasObject
}

func (c *TachoRenderer) Layout(space fyne.Size) {
	if c.size == space {
		return
	}
	c.size = space

	c.diameter = fyne.Min(space.Width, space.Height)
	c.radius = c.diameter * common.OneHalf
	c.middle = fyne.NewPos(space.Width*common.OneHalf, space.Height*common.OneHalf)
	c.needleOffset = -c.radius * .15
	c.needleLength = c.radius * 1.08

	stroke := c.diameter * common.OneSixthieth
	midStroke := c.diameter * common.OneEighthieth
	smallStroke := c.diameter * common.OneTwohundredth

	topleft := fyne.NewPos(c.middle.X-c.radius, c.middle.Y-c.radius)
	size := fyne.Size{Width: c.diameter, Height: c.diameter}

	c.zoneImg.Move(topleft)
	c.zoneImg.Resize(size)
	c.renderZones()

	c.titleText.TextSize = c.radius * common.OneFourth
	c.titleText.Move(c.middle.Add(fyne.NewPos(0, c.diameter*common.OneFourth)))

	c.displayText.TextSize = c.radius * common.OneHalf
	c.displayText.Move(topleft.AddXY(0, c.diameter*common.OneSixth))
	c.displayText.Resize(size)

	c.needle.StrokeWidth = stroke
	c.rotateNeedleNoRefresh(c.value)

	// Pips span the annulus, labels sit inside the inner edge.
	style := c.gauge.Style()
	pxPerUnit := c.radius / float32(style.OuterRadius)
	innerRadius := c.radius - float32(style.Thickness)*pxPerUnit
	labelRadius := innerRadius - c.radius*common.OneFifth

	for i := range c.ticks {
		p := c.pips[i]
		if c.ticks[i].Major {
			p.StrokeWidth = fyne.Max(2.0, midStroke)
			c.applySinCos(p, c.tickSin[i], c.tickCos[i], innerRadius, c.radius-innerRadius)
		} else {
			p.StrokeWidth = fyne.Max(2.0, smallStroke)
			half := (c.radius - innerRadius) * common.OneHalf
			c.applySinCos(p, c.tickSin[i], c.tickCos[i], innerRadius+half, c.radius-innerRadius-half)
		}

		if label := c.labels[i]; label != nil {
			label.TextSize = fyne.Max(12, c.radius*common.OneEight)
			label.Move(fyne.Position{
				X: c.middle.X + labelRadius*c.tickSin[i],
				Y: c.middle.Y - labelRadius*c.tickCos[i] - label.MinSize().Height*0.5,
			})
		}
	}

	for _, o := range c.Objects() {
		canvas.Refresh(o)
	}
}

func (c *TachoRenderer) MinSize() fyne.Size { return c.minsize }

func (c *TachoRenderer) Refresh() {}

func (c *TachoRenderer) Destroy() {}

func (c *TachoRenderer) Objects() []fyne.CanvasObject {
	if c.objects == nil {
		objs := make([]fyne.CanvasObject, 0, len(c.pips)+len(c.labels)+4)
		objs = append(objs, c.zoneImg)
		for _, v := range c.pips {
			objs = append(objs, v)
		}
		for _, v := range c.labels {
			if v != nil {
				objs = append(objs, v)
			}
		}
		objs = append(objs, c.titleText, c.needle, c.displayText)
		c.objects = objs
	}
	return c.objects
}

// --- helpers ---

// parseFixedPrec parses formats like "%.0f", "%.1f" and returns the
// precision, or -1 if unknown.
func parseFixedPrec(format string) int {
	if len(format) >= 4 && format[0] == '%' && format[1] == '.' && format[len(format)-1] == 'f' {
		n := 0
		has := false
		for i := 2; i < len(format)-1; i++ {
			ch := format[i]
			if ch < '0' || ch > '9' {
				return -1
			}
			has = true
			n = n*10 + int(ch-'0')
		}
		if has {
			return n
		}
	}
	return -1
}
