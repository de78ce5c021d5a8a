// Package sim generates the synthetic, self-cycling telemetry that drives
// the demo cluster. The ride is a deterministic function of elapsed time:
// speed sweeps a triangle wave, the rider shifts to keep RPM under the
// shift point, coolant warms asymptotically and the battery sags with load.
package sim

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/ItzUsui/MOTO-DASH/pkg/ebus"
)

type Config struct {
	Interval    time.Duration // publish rate, default 50ms
	SweepPeriod time.Duration // one full accelerate/decelerate cycle, default 24s

	IdleRPM  float64 // default 1300
	ShiftRPM float64 // rider shifts up here, default 10500
	MaxRPM   float64 // default 12000

	TopSpeed   float64   // km/h, default 260
	GearRatios []float64 // km/h per 1000 RPM per gear, lowest first

	AmbientTemp float64       // default 19
	RunningTemp float64       // default 92
	Warmup      time.Duration // temperature time constant, default 90s

	NominalVolts float64 // default 14.4
}

// Snapshot is the full set of simulated readings at one instant.
type Snapshot struct {
	RPM     float64
	Speed   float64
	Gear    float64
	Battery float64
	Coolant float64
}

type Simulator struct {
	cfg Config
}

func New(cfg Config) *Simulator {
	if cfg.Interval == 0 {
		cfg.Interval = 50 * time.Millisecond
	}
	if cfg.SweepPeriod == 0 {
		cfg.SweepPeriod = 24 * time.Second
	}
	if cfg.IdleRPM == 0 {
		cfg.IdleRPM = 1300
	}
	if cfg.ShiftRPM == 0 {
		cfg.ShiftRPM = 10500
	}
	if cfg.MaxRPM == 0 {
		cfg.MaxRPM = 12000
	}
	if cfg.TopSpeed == 0 {
		cfg.TopSpeed = 260
	}
	if len(cfg.GearRatios) == 0 {
		cfg.GearRatios = []float64{8, 12, 16, 20, 24, 28}
	}
	if cfg.AmbientTemp == 0 {
		cfg.AmbientTemp = 19
	}
	if cfg.RunningTemp == 0 {
		cfg.RunningTemp = 92
	}
	if cfg.Warmup == 0 {
		cfg.Warmup = 90 * time.Second
	}
	if cfg.NominalVolts == 0 {
		cfg.NominalVolts = 14.4
	}
	return &Simulator{cfg: cfg}
}

func (s *Simulator) Config() Config { return s.cfg }

// At returns the readings after the given elapsed time. Pure, so tests can
// sample a whole cycle without a clock.
func (s *Simulator) At(elapsed time.Duration) Snapshot {
	cfg := s.cfg

	// Triangle wave through one sweep: 0 -> 1 -> 0.
	phase := math.Mod(elapsed.Seconds(), cfg.SweepPeriod.Seconds()) / cfg.SweepPeriod.Seconds()
	tri := 2 * phase
	if phase >= 0.5 {
		tri = 2 - 2*phase
	}
	speed := cfg.TopSpeed * tri

	// Lowest gear that keeps RPM at or under the shift point.
	gear := 0
	rpm := cfg.IdleRPM
	if speed >= 1 {
		gear = len(cfg.GearRatios)
		for i, ratio := range cfg.GearRatios {
			if 1000*speed/ratio <= cfg.ShiftRPM {
				gear = i + 1
				break
			}
		}
		rpm = 1000 * speed / cfg.GearRatios[gear-1]
		if rpm < cfg.IdleRPM {
			rpm = cfg.IdleRPM
		}
		if rpm > cfg.MaxRPM {
			rpm = cfg.MaxRPM
		}
	}

	load := rpm / cfg.MaxRPM
	warm := 1 - math.Exp(-elapsed.Seconds()/cfg.Warmup.Seconds())
	coolant := cfg.AmbientTemp + (cfg.RunningTemp-cfg.AmbientTemp)*warm + 6*load*warm

	// Charging settles a little under load, idles slightly low.
	battery := cfg.NominalVolts - 0.5*load
	if rpm <= cfg.IdleRPM {
		battery = cfg.NominalVolts - 1.2
	}

	return Snapshot{
		RPM:     rpm,
		Speed:   speed,
		Gear:    float64(gear),
		Battery: battery,
		Coolant: coolant,
	}
}

// Run publishes snapshots on the telemetry bus until ctx is done. Gear is
// deliberately not published; the cluster derives it from speed and RPM
// through the bus aggregator.
func (s *Simulator) Run(ctx context.Context) error {
	log.Println("simulator started")
	defer log.Println("simulator stopped")

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			snap := s.At(now.Sub(start))
			ebus.Publish(ebus.TopicRPM, snap.RPM)
			ebus.Publish(ebus.TopicSpeed, snap.Speed)
			ebus.Publish(ebus.TopicBattery, snap.Battery)
			ebus.Publish(ebus.TopicTemp, snap.Coolant)
		}
	}
}
