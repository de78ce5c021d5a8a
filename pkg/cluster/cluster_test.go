package cluster

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ItzUsui/MOTO-DASH/pkg/ebus"
)

func TestNewDefaults(t *testing.T) {
	c := New(&Config{Mute: true})
	assert.Equal(t, 12000.0, c.cfg.MaxRPM)
	assert.Equal(t, 10500.0, c.cfg.Redline)

	names := c.GetMetricNames()
	assert.ElementsMatch(t, []string{
		ebus.TopicRPM,
		ebus.TopicSpeed,
		ebus.TopicGear,
		ebus.TopicBattery,
		ebus.TopicTemp,
	}, names)
}

func TestRouterFansOutRPM(t *testing.T) {
	c := New(&Config{Mute: true})

	c.SetValue(ebus.TopicRPM, 6500)
	assert.Equal(t, 6500.0, c.gauges.tacho.Value())
	assert.Equal(t, 6500.0, c.gauges.shift.Value())
}

func TestRouterSpeedUnits(t *testing.T) {
	kmh := New(&Config{Mute: true})
	kmh.SetValue(ebus.TopicSpeed, 100)
	assert.Equal(t, 100.0, kmh.gauges.speed.Value())

	mph := New(&Config{Mute: true, UseMPH: true})
	mph.SetValue(ebus.TopicSpeed, 100)
	assert.InDelta(t, 62.1371, mph.gauges.speed.Value(), 0.001)
}

func TestRouterIgnoresUnknownTopic(t *testing.T) {
	c := New(&Config{Mute: true})
	c.SetValue("lean_angle", 42) // no gauge follows this, must not panic
}

func TestSetByGaugeType(t *testing.T) {
	c := New(&Config{Mute: true})

	c.Set(TachoDial, 3000)
	c.Set(BatteryBar, 13.8)
	c.Set(CoolantBar, 88)

	assert.Equal(t, 3000.0, c.gauges.tacho.Value())
	assert.Equal(t, 13.8, c.gauges.battery.Value())
	assert.Equal(t, 88.0, c.gauges.coolant.Value())
}

func TestRenderSnapshot(t *testing.T) {
	c := New(&Config{Mute: true})
	c.SetValue(ebus.TopicRPM, 8000)
	c.SetValue(ebus.TopicBattery, 14.2)
	c.SetValue(ebus.TopicTemp, 92)

	img, err := c.RenderSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, snapshotWidth, snapshotHeight), img.Bounds())
}

func TestGaugeTypeString(t *testing.T) {
	assert.Equal(t, "TachoDial", TachoDial.String())
	assert.Equal(t, "CoolantBar", CoolantBar.String())
	assert.Equal(t, "Unknown", GaugeType(99).String())
}
