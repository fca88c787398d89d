// Package sfx synthesizes short sound effects as beep streamers and renders
// them to 16-bit stereo PCM, the format ebiten's audio players read.
package sfx

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// BytesPerFrame is the size of one stereo 16-bit sample frame.
const BytesPerFrame = 4

// Tone describes a decaying square wave sweeping from StartHz to EndHz,
// mixed with white noise.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration float64 // seconds
	Noise    float64 // 0.0 - 1.0 share of white noise
	Volume   float64 // 0.0 - 1.0
}

// sweep is a square oscillator whose frequency moves linearly from start to
// end over its duration.
type sweep struct {
	start, end float64
	phase      float64
	position   int
	total      int
	rate       beep.SampleRate
}

// NewSweep creates a square wave sweeping from startHz to endHz over n samples.
func NewSweep(startHz, endHz float64, n int, rate beep.SampleRate) beep.Streamer {
	return &sweep{start: startHz, end: endHz, total: n, rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.position >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.position >= s.total {
			return i, true
		}
		progress := float64(s.position) / float64(s.total)
		freq := s.start + (s.end-s.start)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)

		val := 1.0
		if s.phase >= 0.5 {
			val = -1
		}
		samples[i][0] = val
		samples[i][1] = val
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noise is white noise drawn from a caller-owned source.
type noise struct {
	rng      *rand.Rand
	position int
	total    int
}

// NewNoise creates n samples of white noise. Both channels carry the same
// sample.
func NewNoise(rng *rand.Rand, n int) beep.Streamer {
	return &noise{rng: rng, total: n}
}

func (w *noise) Stream(samples [][2]float64) (n int, ok bool) {
	if w.position >= w.total {
		return 0, false
	}
	for i := range samples {
		if w.position >= w.total {
			return i, true
		}
		val := w.rng.Float64()*2 - 1
		samples[i][0] = val
		samples[i][1] = val
		w.position++
	}
	return len(samples), true
}

func (w *noise) Err() error { return nil }

// decay fades a stream out quadratically over n samples.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

// NewDecay wraps s in a quadratic fade reaching silence after n samples.
func NewDecay(s beep.Streamer, n int) beep.Streamer {
	return &decay{streamer: s, total: n}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		rest := 1 - float64(d.position)/float64(d.total)
		vol := max(rest, 0) * max(rest, 0)
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// gain scales a stream by a linear factor. effects.Volume works on a log
// scale, so zero maps to Silent.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// NewTone builds the streamer for a tone. It ends after the tone's duration.
func NewTone(rate beep.SampleRate, t Tone, rng *rand.Rand) beep.Streamer {
	n := rate.N(time.Duration(t.Duration * float64(time.Second)))
	share := min(max(t.Noise, 0), 1)

	mixed := beep.Mix(
		gain(NewSweep(t.StartHz, t.EndHz, n, rate), 1-share),
		gain(NewNoise(rng, n), share),
	)
	return gain(NewDecay(mixed, n), min(max(t.Volume, 0), 1))
}

// Synthesize renders a tone at the given sample rate. The noise source is
// passed in so the output is reproducible.
func Synthesize(sampleRate int, t Tone, rng *rand.Rand) []byte {
	rate := beep.SampleRate(sampleRate)
	n := rate.N(time.Duration(t.Duration * float64(time.Second)))
	if n <= 0 {
		return nil
	}

	buf := make([]byte, 0, n*BytesPerFrame)
	samples := make([][2]float64, 512)
	s := NewTone(rate, t, rng)
	for {
		read, ok := s.Stream(samples)
		for _, frame := range samples[:read] {
			buf = binary.LittleEndian.AppendUint16(buf, uint16(toInt16(frame[0])))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(toInt16(frame[1])))
		}
		if !ok || read == 0 {
			break
		}
	}
	return buf
}

func toInt16(v float64) int16 {
	return int16(min(max(v, -1), 1) * math.MaxInt16)
}
