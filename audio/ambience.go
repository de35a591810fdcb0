// Package audio plays an optional rain-hiss ambience under the
// animation. Playback failures are never fatal; the animation runs
// silently when no audio device is available.
package audio

import (
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Ambience owns the speaker lifecycle for the looping hiss.
type Ambience struct {
	started bool
}

// Start initializes the speaker and begins the loop. Returns an error
// when the audio device cannot be opened; the caller decides whether to
// continue without sound. The streamer runs on the speaker goroutine,
// so it gets its own random source.
func (a *Ambience) Start() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(newHiss(rand.New(rand.NewSource(time.Now().UnixNano()))))
	a.started = true
	return nil
}

// Stop shuts the speaker down. Safe to call when Start failed.
func (a *Ambience) Stop() {
	if a.started {
		speaker.Close()
		a.started = false
	}
}

// hiss is an endless low-passed white noise streamer. The filter takes
// the edge off the raw noise so it reads as rainfall rather than static.
type hiss struct {
	rng  *rand.Rand
	prev float64
}

// hissLevel keeps the ambience well under any terminal bell.
const hissLevel = 0.08

// hissSmoothing is the one-pole filter coefficient.
const hissSmoothing = 0.15

func newHiss(rng *rand.Rand) *hiss {
	return &hiss{rng: rng}
}

func (h *hiss) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		raw := (h.rng.Float64()*2 - 1) * hissLevel
		h.prev += hissSmoothing * (raw - h.prev)
		samples[i][0] = h.prev
		samples[i][1] = h.prev
	}
	return len(samples), true
}

func (h *hiss) Err() error {
	return nil
}
