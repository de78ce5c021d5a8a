package cluster

type GaugeType int

const (
	TachoDial GaugeType = iota
	ShiftLightRow
	SpeedReadout
	GearIndicator
	BatteryBar
	CoolantBar
)

func (g GaugeType) String() string {
	switch g {
	case TachoDial:
		return "TachoDial"
	case ShiftLightRow:
		return "ShiftLightRow"
	case SpeedReadout:
		return "SpeedReadout"
	case GearIndicator:
		return "GearIndicator"
	case BatteryBar:
		return "BatteryBar"
	case CoolantBar:
		return "CoolantBar"
	default:
		return "Unknown"
	}
}
