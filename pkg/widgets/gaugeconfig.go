package widgets

import (
	"fyne.io/fyne/v2"

	"github.com/ItzUsui/MOTO-DASH/pkg/arc"
)

type GaugeConfig struct {
	Type            string // "Tacho", "VBar", "ShiftLight", "Readout"
	Title           string
	DisplayString   string // default "%.0f"
	DisplayTextSize int
	Min, Max        float64
	Steps           int
	MinSize         fyne.Size
	TextPosition    TextPosition
	ColorScale      ColorScheme

	// Topic is the telemetry bus subject this gauge follows.
	Topic string
	// TopicSecondary feeds widgets with a second input, like the gear
	// indicator on the speed readout.
	TopicSecondary string

	// Gauge supplies arc geometry for annular widgets.
	Gauge *arc.Gauge

	// Redline marks where the shift light takes over, in gauge units.
	Redline float64
}

type TextPosition int

const (
	TextAtTop TextPosition = iota
	TextAtBottom
	TextAtCenter
)
