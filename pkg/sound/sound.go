// Package sound plays the shift-light warning tone. Samples are generated
// PCM, no audio assets.
package sound

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/ebitengine/oto/v3"
)

const sampleRate = 44100

var octx *oto.Context

// Init prepares the audio context. Audio devices can lag behind app start,
// so we retry a few times before giving up.
func Init() error {
	if octx != nil {
		return nil
	}
	return retry.Do(
		func() error {
			op := &oto.NewContextOptions{
				SampleRate:   sampleRate,
				ChannelCount: 2,
				Format:       oto.FormatSignedInt16LE,
			}
			otoCtx, readyChan, err := oto.NewContext(op)
			if err != nil {
				return fmt.Errorf("sound.Init failed: %w", err)
			}
			select {
			case <-readyChan:
				octx = otoCtx
				return nil
			case <-time.After(5 * time.Second):
				return fmt.Errorf("sound.Init timed out")
			}
		},
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
	)
}

// NewPlayer wraps a PCM stream in a player. Paused by default.
func NewPlayer(r io.Reader) *oto.Player {
	if octx == nil {
		if err := Init(); err != nil {
			panic("sound.NewPlayer: " + err.Error())
		}
	}
	return octx.NewPlayer(r)
}

// Beep plays a sine tone and returns without waiting for it to finish.
func Beep(freq float64, dur time.Duration) {
	p := NewPlayer(bytes.NewReader(Tone(freq, dur)))
	p.Play()
}

// Tone renders a stereo 16-bit sine burst with a short linear fade at both
// ends to avoid clicks.
func Tone(freq float64, dur time.Duration) []byte {
	n := int(float64(sampleRate) * dur.Seconds())
	fade := sampleRate / 100 // 10ms
	if fade > n/2 {
		fade = n / 2
	}
	buf := make([]byte, 0, n*4)
	for i := 0; i < n; i++ {
		amp := 0.6
		if i < fade {
			amp *= float64(i) / float64(fade)
		} else if n-i < fade {
			amp *= float64(n-i) / float64(fade)
		}
		s := int16(amp * math.MaxInt16 * math.Sin(2*math.Pi*freq*float64(i)/sampleRate))
		lo, hi := byte(s), byte(s>>8)
		buf = append(buf, lo, hi, lo, hi)
	}
	return buf
}
