package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects the oscillator waveform.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

type oscillator struct {
	freq     float64
	phase    float64
	total    int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator returns a streamer producing d worth of a single tone.
func NewOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:  freq,
		total: rate.N(d),
		wave:  wave,
		rate:  rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.position >= o.total {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.total {
			return i, true
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveTriangle:
			v = 4*math.Abs(o.phase-0.5) - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a streamer in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with a linear attack and release over a total length d.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{streamer: s, attack: att, release: rel, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	if e.position >= e.total {
		return 0, false
	}
	if room := e.total - e.position; len(samples) > room {
		samples = samples[:room]
	}

	n, ok := e.streamer.Stream(samples)
	releaseAt := e.total - e.release
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		} else if e.position >= releaseAt && e.release > 0 {
			gain = float64(e.total-e.position) / float64(e.release)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s by a linear gain; zero or negative gain silences it.
func withVolume(s beep.Streamer, gain float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setGain(v, gain)
	return v
}

// setGain changes the linear gain of v in place.
func setGain(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = math.Log2(gain)
}

type note struct {
	freq float64
	dur  time.Duration
}

// tune plays notes back to back, each with a short click-free envelope.
// Notes without a frequency are rests.
func tune(wave Wave, rate beep.SampleRate, notes ...note) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		if n.freq <= 0 {
			parts = append(parts, beep.Silence(rate.N(n.dur)))
			continue
		}
		osc := NewOscillator(n.freq, n.dur, wave, rate)
		parts = append(parts, NewEnvelope(osc, n.dur, 3*time.Millisecond, n.dur/3, rate))
	}
	return beep.Seq(parts...)
}
