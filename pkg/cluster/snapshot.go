package cluster

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"time"

	sdialog "github.com/sqweek/dialog"

	"github.com/ItzUsui/MOTO-DASH/pkg/arc"
	"github.com/ItzUsui/MOTO-DASH/pkg/debug"
	"github.com/ItzUsui/MOTO-DASH/pkg/render"
)

const (
	snapshotWidth  = 900
	snapshotHeight = 600
)

// saveSnapshot renders the current readings to a PNG picked by the user.
// Runs on its own goroutine, the save dialog is a blocking native call.
func (c *Cluster) saveSnapshot() {
	filename, err := sdialog.File().Filter("PNG image", "png").Title("Save cluster snapshot").Save()
	if err != nil {
		if err.Error() != "Cancelled" {
			debug.Log("snapshot dialog: " + err.Error())
		}
		return
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".png") {
		filename += ".png"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	img, err := c.RenderSnapshot(ctx)
	if err != nil {
		debug.Log("snapshot render: " + err.Error())
		return
	}

	f, err := os.Create(filename)
	if err != nil {
		debug.Log("snapshot create: " + err.Error())
		return
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		debug.Log("snapshot encode: " + err.Error())
	}
}

// RenderSnapshot composites the current readings offscreen. The snapshot
// button and the snapshot CLI both go through here.
func (c *Cluster) RenderSnapshot(ctx context.Context) (image.Image, error) {
	tiles := []render.Tile{
		{
			Gauge:    c.gauges.tacho.Gauge(),
			Value:    c.gauges.tacho.Value(),
			Opt:      render.Options{Center: arc.Point{X: 300, Y: 300}, Scale: 2.4},
			Rect:     image.Rect(0, 0, 600, 600),
			FontPath: c.cfg.SnapshotFont,
			FontSize: 20,
		},
		{
			Gauge:    c.snapArcs.battery,
			Value:    c.gauges.battery.Value(),
			Opt:      render.Options{Center: arc.Point{X: 150, Y: 150}, Scale: 1.2},
			Rect:     image.Rect(600, 0, 900, 300),
			FontPath: c.cfg.SnapshotFont,
			FontSize: 13,
		},
		{
			Gauge:    c.snapArcs.coolant,
			Value:    c.gauges.coolant.Value(),
			Opt:      render.Options{Center: arc.Point{X: 150, Y: 150}, Scale: 1.2},
			Rect:     image.Rect(600, 300, 900, 600),
			FontPath: c.cfg.SnapshotFont,
			FontSize: 13,
		},
	}
	return render.Composite(ctx, snapshotWidth, snapshotHeight, color.RGBA{0x10, 0x10, 0x10, 0xFF}, tiles)
}
