package cluster

import (
	"github.com/ItzUsui/MOTO-DASH/pkg/ebus"
)

const kmhToMph = 0.621371

func (c *Cluster) createRouter() map[string]func(float64) {
	// RPM feeds both the dial and the shift light row.
	rpmSetter := func(value float64) {
		c.gauges.tacho.SetValue(value)
		c.gauges.shift.SetValue(value)
	}

	setVehicleSpeed := c.gauges.speed.SetValue
	if c.cfg.UseMPH {
		setVehicleSpeed = func(value float64) {
			c.gauges.speed.SetValue(value * kmhToMph)
		}
	}

	return map[string]func(float64){
		ebus.TopicRPM:     rpmSetter,
		ebus.TopicSpeed:   setVehicleSpeed,
		ebus.TopicGear:    c.gauges.speed.SetGear,
		ebus.TopicBattery: c.gauges.battery.SetValue,
		ebus.TopicTemp:    c.gauges.coolant.SetValue,
	}
}
