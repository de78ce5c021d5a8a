// Command snapshot renders the instrument cluster to a PNG without opening
// a window. Handy for docs, theming work and render regressions.
package main

import (
	"context"
	"image/png"
	"os"
	"time"

	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"

	"github.com/ItzUsui/MOTO-DASH/pkg/cluster"
	"github.com/ItzUsui/MOTO-DASH/pkg/sim"
)

var (
	flagOut     string
	flagFont    string
	flagOpen    bool
	flagMPH     bool
	flagElapsed time.Duration

	flagRPM     float64
	flagSpeed   float64
	flagBattery float64
	flagTemp    float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the gauge cluster to a PNG",
		Long: `Renders the tachometer, battery and coolant gauges offscreen and
writes the composite to a PNG file.

Readings come from the flags, or from the ride simulator at a given
elapsed time with --elapsed.`,
		RunE: run,
	}

	rootCmd.Flags().StringVar(&flagOut, "out", "cluster.png", "Output PNG path")
	rootCmd.Flags().StringVar(&flagFont, "font", "", "TTF font for gauge labels (labels skipped when unset)")
	rootCmd.Flags().BoolVar(&flagOpen, "open", false, "Open the image when done")
	rootCmd.Flags().BoolVar(&flagMPH, "mph", false, "Show speed in mph")
	rootCmd.Flags().DurationVar(&flagElapsed, "elapsed", 0, "Take readings from the simulator at this elapsed time")

	rootCmd.Flags().Float64Var(&flagRPM, "rpm", 7500, "Engine RPM")
	rootCmd.Flags().Float64Var(&flagSpeed, "speed", 120, "Vehicle speed in km/h")
	rootCmd.Flags().Float64Var(&flagBattery, "battery", 13.9, "Battery voltage")
	rootCmd.Flags().Float64Var(&flagTemp, "temp", 92, "Coolant temperature")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagElapsed > 0 {
		snap := sim.New(sim.Config{}).At(flagElapsed)
		flagRPM = snap.RPM
		flagSpeed = snap.Speed
		flagBattery = snap.Battery
		flagTemp = snap.Coolant
	}

	c := cluster.New(&cluster.Config{
		UseMPH:       flagMPH,
		Mute:         true,
		SnapshotFont: flagFont,
	})
	c.Set(cluster.TachoDial, flagRPM)
	c.Set(cluster.ShiftLightRow, flagRPM)
	c.Set(cluster.SpeedReadout, flagSpeed)
	c.Set(cluster.BatteryBar, flagBattery)
	c.Set(cluster.CoolantBar, flagTemp)

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	img, err := c.RenderSnapshot(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(flagOut)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return err
	}

	if flagOpen {
		return open.Run(flagOut)
	}
	return nil
}
