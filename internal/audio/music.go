package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// themeStep is the length of one eighth note in the background tune.
const themeStep = 160 * time.Millisecond

// Melody and bass of one pass of the theme, in eighth notes.
// A frequency of 0 is a rest.
var (
	themeMelody = []float64{
		659, 494, 523, 587, 523, 494, 440, 440,
		523, 659, 587, 523, 494, 494, 523, 587,
		659, 523, 440, 440, 0, 587, 698, 880,
		784, 698, 659, 523, 659, 587, 523, 494,
	}
	themeBass = []float64{
		165, 165, 165, 165, 110, 110, 110, 110,
		104, 104, 104, 104, 110, 110, 110, 110,
		147, 147, 147, 147, 131, 131, 131, 131,
		165, 165, 165, 165, 110, 110, 0, 0,
	}
)

// themePass synthesizes one pass of the background tune.
func themePass(rate beep.SampleRate) beep.Streamer {
	return beep.Mix(
		withVolume(voice(WaveTriangle, rate, themeMelody), 0.6),
		withVolume(voice(WaveSquare, rate, themeBass), 0.15),
	)
}

// voice plays one eighth note per frequency, resting on zeros.
func voice(wave Wave, rate beep.SampleRate, freqs []float64) beep.Streamer {
	notes := make([]note, len(freqs))
	for i, f := range freqs {
		notes[i] = note{freq: f, dur: themeStep}
	}
	return tune(wave, rate, notes...)
}

// ThemeLength is the duration of one pass of the background tune.
func ThemeLength() time.Duration {
	return time.Duration(len(themeMelody)) * themeStep
}

// Theme renders the background tune once and loops it forever.
func Theme(rate beep.SampleRate) beep.Streamer {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(themePass(rate))
	return beep.Loop(-1, buf.Streamer(0, buf.Len()))
}
