package cluster

import (
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ItzUsui/MOTO-DASH/pkg/arc"
	"github.com/ItzUsui/MOTO-DASH/pkg/common"
	"github.com/ItzUsui/MOTO-DASH/pkg/sound"
	"github.com/ItzUsui/MOTO-DASH/pkg/widgets"
	"github.com/ItzUsui/MOTO-DASH/pkg/widgets/readout"
	"github.com/ItzUsui/MOTO-DASH/pkg/widgets/shiftlight"
	"github.com/ItzUsui/MOTO-DASH/pkg/widgets/tacho"
	"github.com/ItzUsui/MOTO-DASH/pkg/widgets/vbar"
)

// Cluster is the full instrument panel. It owns the gauges, routes bus
// values to them and lays everything out in one custom renderer.
type Cluster struct {
	cfg *Config

	metricRouter map[string]func(float64)

	gauges   Gauges
	snapArcs snapshotArcs

	fullscreenBtn *widget.Button
	snapshotBtn   *widget.Button

	size fyne.Size

	widget.BaseWidget
}

type Gauges struct {
	tacho   *tacho.Tacho
	shift   *shiftlight.ShiftLight
	speed   *readout.Readout
	battery *vbar.VBar
	coolant *vbar.VBar
}

// snapshotArcs are annular renditions of the bar gauges, used only by the
// offscreen snapshot compositor. The on-screen bars stay bars.
type snapshotArcs struct {
	battery *arc.Gauge
	coolant *arc.Gauge
}

type Config struct {
	UseMPH  bool
	MaxRPM  float64 // 0 means 12000
	Redline float64 // 0 means MaxRPM * 0.875
	Mute    bool

	// SnapshotFont is a TTF path for labels on saved snapshots. Labels are
	// skipped when empty.
	SnapshotFont string

	FullscreenFunc func(bool)
}

func New(cfg *Config) *Cluster {
	if cfg.MaxRPM == 0 {
		cfg.MaxRPM = 12000
	}
	if cfg.Redline == 0 {
		cfg.Redline = cfg.MaxRPM * 0.875
	}

	speedometerText := "km/h"
	if cfg.UseMPH {
		speedometerText = "mph"
	}

	c := &Cluster{
		cfg: cfg,
		gauges: Gauges{
			tacho: tacho.New(&widgets.GaugeConfig{
				Type:          "Tacho",
				Title:         "RPM",
				Min:           0,
				Max:           cfg.MaxRPM,
				Steps:         12,
				Redline:       cfg.Redline,
				DisplayString: "%.0f",
				MinSize:       fyne.NewSize(200, 200),
			}),
			shift: shiftlight.New(&widgets.GaugeConfig{
				Type:    "ShiftLight",
				Min:     0,
				Max:     cfg.MaxRPM,
				Steps:   8,
				Redline: cfg.Redline,
			}),
			speed: readout.New(&widgets.GaugeConfig{
				Type:          "Readout",
				Title:         speedometerText,
				DisplayString: "%.0f",
				MinSize:       fyne.NewSize(120, 80),
			}),
			battery: vbar.New(&widgets.GaugeConfig{
				Type:          "VBar",
				Title:         "VOLT",
				Min:           10,
				Max:           16,
				Steps:         12,
				DisplayString: "%.1f",
				MinSize:       fyne.NewSize(50, 50),
				ColorScale:    widgets.BlueYellowScale,
			}),
			coolant: vbar.New(&widgets.GaugeConfig{
				Type:       "VBar",
				Title:      "TEMP",
				Min:        0,
				Max:        130,
				Steps:      13,
				MinSize:    fyne.NewSize(50, 50),
				ColorScale: widgets.TraditionalScale,
			}),
		},
		snapArcs: snapshotArcs{
			battery: snapshotArc(10, 16, 1, 2, []arc.ColorZone{
				{From: 0, To: 0.33, Color: color.RGBA{R: 0xA5, A: 0xFF}},
				{From: 0.33, To: 0.83, Color: color.RGBA{G: 0xA5, A: 0xFF}},
				{From: 0.83, To: 1, Color: color.RGBA{R: 0xA5, G: 0xA5, A: 0xFF}},
			}),
			coolant: snapshotArc(0, 130, 10, 20, []arc.ColorZone{
				{From: 0, To: 0.45, Color: color.RGBA{B: 0xA5, A: 0xFF}},
				{From: 0.45, To: 0.8, Color: color.RGBA{G: 0xA5, A: 0xFF}},
				{From: 0.8, To: 1, Color: color.RGBA{R: 0xA5, A: 0xFF}},
			}),
		},
	}
	c.ExtendBaseWidget(c)

	if !cfg.Mute {
		c.gauges.shift.OnRedline = func() {
			sound.Beep(880, 150*time.Millisecond)
		}
	}

	c.metricRouter = c.createRouter()

	var isFullscreen bool
	c.fullscreenBtn = widget.NewButtonWithIcon("", theme.ViewFullScreenIcon(), func() {
		if c.cfg.FullscreenFunc != nil {
			isFullscreen = !isFullscreen
			c.cfg.FullscreenFunc(isFullscreen)
		}
	})

	// Native save dialog blocks, keep it off the event loop.
	c.snapshotBtn = widget.NewButtonWithIcon("", theme.DocumentSaveIcon(), func() {
		go c.saveSnapshot()
	})

	return c
}

// snapshotArc builds the annular geometry for one bar gauge snapshot tile.
func snapshotArc(min, max, minor, major float64, zones []arc.ColorZone) *arc.Gauge {
	g, err := arc.New(arc.Config{
		Values:    arc.ValueRange{Min: min, Max: max},
		Angles:    arc.AngularRange{Start: 150, End: 390},
		Direction: arc.Forward,
		Style: arc.Style{
			OuterRadius: 100,
			Thickness:   16,
			Background:  color.RGBA{0x30, 0x30, 0x30, 0xFF},
			Zones:       zones,
		},
		Ticks: arc.TickSpec{MajorStep: major, MinorStep: minor},
	})
	if err != nil {
		panic(err)
	}
	return g
}

func (c *Cluster) CreateRenderer() fyne.WidgetRenderer {
	return &ClusterRenderer{c: c}
}

func (c *Cluster) GetMetricNames() []string {
	names := make([]string, 0, len(c.metricRouter))
	for k := range c.metricRouter {
		names = append(names, k)
	}
	return names
}

// SetValue routes one bus reading to whatever gauge follows that topic.
func (c *Cluster) SetValue(topic string, value float64) {
	if setFunc, ok := c.metricRouter[topic]; ok {
		setFunc(value)
	}
}

func (c *Cluster) Set(gauge GaugeType, value float64) {
	switch gauge {
	case TachoDial:
		c.gauges.tacho.SetValue(value)
	case ShiftLightRow:
		c.gauges.shift.SetValue(value)
	case SpeedReadout:
		c.gauges.speed.SetValue(value)
	case GearIndicator:
		c.gauges.speed.SetGear(value)
	case BatteryBar:
		c.gauges.battery.SetValue(value)
	case CoolantBar:
		c.gauges.coolant.SetValue(value)
	default:
		log.Println("Unknown gauge", gauge)
	}
}

type dims struct {
	sixthWidth  float32
	thirdHeight float32
	tenthHeight float32
	centerX     float32
	centerY     float32
}

func (c *Cluster) layoutBars(d *dims) {
	vbarSize := fyne.Size{Width: min(d.sixthWidth*common.OneThird, 70), Height: c.size.Height - 120}

	c.gauges.battery.Resize(vbarSize)
	c.gauges.battery.Move(fyne.Position{X: 8, Y: 25})

	c.gauges.coolant.Resize(vbarSize)
	c.gauges.coolant.Move(fyne.Position{X: c.size.Width - vbarSize.Width - 8, Y: 25})
}

func (c *Cluster) layoutDial(d *dims) {
	left := c.gauges.battery.Position().X + c.gauges.battery.Size().Width
	right := c.gauges.coolant.Position().X
	width := right - left

	dialSize := fyne.Size{
		Width:  width,
		Height: c.size.Height - c.gauges.shift.Size().Height - 20,
	}
	c.gauges.tacho.Resize(dialSize)
	c.gauges.tacho.Move(fyne.Position{
		X: d.centerX - dialSize.Width*0.5,
		Y: c.gauges.shift.Size().Height + 10,
	})
}

func (c *Cluster) layoutShift(d *dims) {
	shiftSize := fyne.Size{Width: d.sixthWidth * 3, Height: min(d.tenthHeight, 40)}
	c.gauges.shift.Resize(shiftSize)
	c.gauges.shift.Move(fyne.Position{X: d.centerX - shiftSize.Width*0.5, Y: 4})
}

func (c *Cluster) layoutReadout(d *dims) {
	readoutSize := fyne.Size{Width: d.sixthWidth * 1.5, Height: d.thirdHeight}
	c.gauges.speed.Resize(readoutSize)
	c.gauges.speed.Move(fyne.Position{
		X: c.gauges.coolant.Position().X - readoutSize.Width - 8,
		Y: c.size.Height - readoutSize.Height - 45,
	})
}

type ClusterRenderer struct {
	c *Cluster
}

func (cr *ClusterRenderer) Layout(space fyne.Size) {
	if cr.c.size == space {
		return
	}
	cr.c.size = space

	d := &dims{
		sixthWidth:  space.Width * common.OneSixth,
		thirdHeight: (space.Height - 50) * .33,
		tenthHeight: (space.Height - 50) * .1,
		centerX:     space.Width * 0.5,
		centerY:     space.Height * 0.5,
	}

	cr.c.layoutBars(d)
	cr.c.layoutShift(d)
	cr.c.layoutDial(d)
	cr.c.layoutReadout(d)

	btnWidth := d.sixthWidth * 0.8
	btnHeight := min(d.tenthHeight*0.8, 36)
	cr.c.fullscreenBtn.Resize(fyne.NewSize(btnWidth, btnHeight))
	cr.c.fullscreenBtn.Move(fyne.NewPos(space.Width-btnWidth, space.Height-btnHeight))

	cr.c.snapshotBtn.Resize(fyne.NewSize(btnWidth, btnHeight))
	cr.c.snapshotBtn.Move(fyne.NewPos(0, space.Height-btnHeight))
}

func (cr *ClusterRenderer) MinSize() fyne.Size {
	return fyne.Size{Width: 480, Height: 300}
}

func (cr *ClusterRenderer) Refresh() {
}

func (cr *ClusterRenderer) Destroy() {
}

func (cr *ClusterRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{
		cr.c.gauges.tacho,
		cr.c.gauges.shift,
		cr.c.gauges.speed,
		cr.c.gauges.battery,
		cr.c.gauges.coolant,
		cr.c.fullscreenBtn,
		cr.c.snapshotBtn,
	}
}
