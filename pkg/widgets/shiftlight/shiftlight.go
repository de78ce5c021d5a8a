package shiftlight

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/ItzUsui/MOTO-DASH/pkg/widgets"
)

// ShiftLight is a row of LEDs that fills from the left as RPM approaches
// the redline and lights solid once past it.
type ShiftLight struct {
	widget.BaseWidget

	cfg *widgets.GaugeConfig

	// OnRedline fires once per redline crossing, debounced. The cluster
	// hangs the warning tone on it.
	OnRedline func()

	leds  []*canvas.Circle
	value float64
	lit   int
	over  bool

	lastBeep time.Time

	size fyne.Size
}

const beepDebounce = 500 * time.Millisecond

func New(cfg *widgets.GaugeConfig) *ShiftLight {
	if cfg.Steps == 0 {
		cfg.Steps = 8
	}
	if cfg.Redline == 0 {
		cfg.Redline = cfg.Max * 0.9
	}
	s := &ShiftLight{cfg: cfg}
	s.ExtendBaseWidget(s)

	for i := 0; i < cfg.Steps; i++ {
		led := &canvas.Circle{
			FillColor:   ledOff,
			StrokeColor: color.RGBA{0x40, 0x40, 0x40, 0xFF},
			StrokeWidth: 1,
		}
		s.leds = append(s.leds, led)
	}
	return s
}

var (
	ledOff = color.RGBA{0x20, 0x20, 0x20, 0xFF}
	ledRed = color.RGBA{0xFF, 0x10, 0x10, 0xFF}
)

func (s *ShiftLight) GetConfig() *widgets.GaugeConfig { return s.cfg }

// SetValue maps the reading onto the LED row. LEDs start lighting at the
// fraction of the range where the first amber zone would sit and all lock
// red past the redline.
func (s *ShiftLight) SetValue(value float64) {
	if value == s.value {
		return
	}
	s.value = value

	span := s.cfg.Redline - s.cfg.Min
	lit := 0
	if span > 0 {
		f := (value - s.cfg.Min) / span
		if f > 1 {
			f = 1
		}
		if f > 0 {
			lit = int(f * float64(len(s.leds)))
		}
	}
	over := value >= s.cfg.Redline
	if over {
		lit = len(s.leds)
	}

	if lit == s.lit && over == s.over {
		return
	}
	s.lit = lit

	if over && !s.over && s.OnRedline != nil {
		if now := time.Now(); now.Sub(s.lastBeep) > beepDebounce {
			s.lastBeep = now
			s.OnRedline()
		}
	}
	s.over = over

	for i, led := range s.leds {
		led.FillColor = s.ledColor(i)
		canvas.Refresh(led)
	}
}

func (s *ShiftLight) Value() float64 { return s.value }

func (s *ShiftLight) ledColor(i int) color.RGBA {
	if i >= s.lit {
		return ledOff
	}
	if s.over {
		return ledRed
	}
	return widgets.GetColorInterpolation(0, float64(len(s.leds)-1), float64(i))
}

func (s *ShiftLight) CreateRenderer() fyne.WidgetRenderer {
	return &shiftLightRenderer{s}
}

type shiftLightRenderer struct {
	*ShiftLight
}

func (r *shiftLightRenderer) MinSize() fyne.Size {
	if r.cfg.MinSize.Width > 0 {
		return r.cfg.MinSize
	}
	return fyne.NewSize(float32(len(r.leds))*14, 18)
}

func (r *shiftLightRenderer) Refresh() {}

func (r *shiftLightRenderer) Destroy() {}

func (r *shiftLightRenderer) Layout(space fyne.Size) {
	if r.size == space {
		return
	}
	r.size = space

	n := float32(len(r.leds))
	cell := space.Width / n
	d := fyne.Min(cell*0.8, space.Height*0.9)
	y := (space.Height - d) * 0.5
	for i, led := range r.leds {
		led.Resize(fyne.NewSize(d, d))
		led.Move(fyne.NewPos(float32(i)*cell+(cell-d)*0.5, y))
	}
}

func (r *shiftLightRenderer) Objects() []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, len(r.leds))
	for _, led := range r.leds {
		objs = append(objs, led)
	}
	return objs
}
