package gauge

import (
	"github.com/ItzUsui/MOTO-DASH/pkg/ebus"
	"github.com/ItzUsui/MOTO-DASH/pkg/widgets"
	"github.com/ItzUsui/MOTO-DASH/pkg/widgets/readout"
	"github.com/ItzUsui/MOTO-DASH/pkg/widgets/shiftlight"
	"github.com/ItzUsui/MOTO-DASH/pkg/widgets/tacho"
	"github.com/ItzUsui/MOTO-DASH/pkg/widgets/vbar"
)

// New builds a gauge widget wired to its telemetry topics and returns it
// with the subscription cancel funcs.
func New(cfg *widgets.GaugeConfig) (widgets.IGauge, []func()) {
	switch cfg.Type {
	case "Tacho":
		t := tacho.New(cfg)
		cancel := ebus.SubscribeFunc(cfg.Topic, t.SetValue)
		return t, []func(){cancel}
	case "ShiftLight":
		sl := shiftlight.New(cfg)
		cancel := ebus.SubscribeFunc(cfg.Topic, sl.SetValue)
		return sl, []func(){cancel}
	case "Readout":
		ro := readout.New(cfg)
		cancel1 := ebus.SubscribeFunc(cfg.Topic, ro.SetValue)
		cancel2 := ebus.SubscribeFunc(cfg.TopicSecondary, ro.SetGear)
		return ro, []func(){cancel1, cancel2}
	case "VBar":
		vb := vbar.New(cfg)
		cancel := ebus.SubscribeFunc(cfg.Topic, vb.SetValue)
		return vb, []func(){cancel}
	}
	return nil, nil
}
