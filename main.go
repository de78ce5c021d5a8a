package main

import (
	"context"
	"flag"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ItzUsui/MOTO-DASH/pkg/cluster"
	"github.com/ItzUsui/MOTO-DASH/pkg/debug"
	"github.com/ItzUsui/MOTO-DASH/pkg/ebus"
	"github.com/ItzUsui/MOTO-DASH/pkg/sim"
	"github.com/ItzUsui/MOTO-DASH/pkg/sound"
	"github.com/ItzUsui/MOTO-DASH/pkg/theme"
	"github.com/ItzUsui/MOTO-DASH/pkg/widgets"
	"github.com/ItzUsui/MOTO-DASH/pkg/widgets/gauge"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	useMPH := flag.Bool("mph", false, "show speed in mph")
	mute := flag.Bool("mute", false, "disable the shift warning tone")
	singleGauge := flag.String("gauge", "", "show one gauge instead of the cluster (Tacho, ShiftLight, Readout, Battery, Coolant)")
	flag.Parse()

	defer debug.Close()

	a := app.NewWithID("com.itzusui.motodash")
	a.Settings().SetTheme(&theme.ClusterTheme{})

	if !*mute {
		if err := sound.Init(); err != nil {
			log.Println("audio disabled:", err)
			*mute = true
		}
	}

	simulator := sim.New(sim.Config{})
	simCfg := simulator.Config()

	ebus.RegisterAggregator(
		ebus.GearAggregator(ebus.TopicRPM, ebus.TopicSpeed, ebus.TopicGear, simCfg.IdleRPM, simCfg.GearRatios),
	)

	w := a.NewWindow("MOTO-DASH")

	if *singleGauge != "" {
		gcfg := singleGaugeConfig(*singleGauge, simCfg)
		if gcfg == nil {
			log.Fatalf("unknown gauge %q", *singleGauge)
		}
		wdg, cancels := gauge.New(gcfg)
		for _, cancel := range cancels {
			defer cancel()
		}
		w.SetContent(wdg)
		w.Resize(fyne.NewSize(400, 400))
	} else {
		c := cluster.New(&cluster.Config{
			UseMPH:  *useMPH,
			MaxRPM:  simCfg.MaxRPM,
			Redline: simCfg.ShiftRPM,
			Mute:    *mute,
			FullscreenFunc: func(fullscreen bool) {
				w.SetFullScreen(fullscreen)
			},
		})
		cancel := ebus.SubscribeAllFunc(c.SetValue)
		defer cancel()
		w.SetContent(c)
		w.Resize(fyne.NewSize(1024, 600))
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go func() {
		if err := simulator.Run(ctx); err != nil && err != context.Canceled {
			log.Println("simulator:", err)
		}
	}()

	w.ShowAndRun()
}

func singleGaugeConfig(name string, simCfg sim.Config) *widgets.GaugeConfig {
	switch name {
	case "Tacho":
		return &widgets.GaugeConfig{
			Type:    "Tacho",
			Title:   "RPM",
			Max:     simCfg.MaxRPM,
			Steps:   12,
			Redline: simCfg.ShiftRPM,
			Topic:   ebus.TopicRPM,
		}
	case "ShiftLight":
		return &widgets.GaugeConfig{
			Type:    "ShiftLight",
			Max:     simCfg.MaxRPM,
			Redline: simCfg.ShiftRPM,
			Topic:   ebus.TopicRPM,
		}
	case "Readout":
		return &widgets.GaugeConfig{
			Type:           "Readout",
			Title:          "km/h",
			Topic:          ebus.TopicSpeed,
			TopicSecondary: ebus.TopicGear,
		}
	case "Battery":
		return &widgets.GaugeConfig{
			Type:          "VBar",
			Title:         "VOLT",
			Min:           10,
			Max:           16,
			Steps:         12,
			DisplayString: "%.1f",
			ColorScale:    widgets.BlueYellowScale,
			Topic:         ebus.TopicBattery,
		}
	case "Coolant":
		return &widgets.GaugeConfig{
			Type:  "VBar",
			Title: "TEMP",
			Max:   130,
			Steps: 13,
			Topic: ebus.TopicTemp,
		}
	}
	return nil
}
