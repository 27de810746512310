package audio

import (
	"testing"

	"github.com/gopxl/beep"
)

func TestThemeVoicesMatch(t *testing.T) {
	if len(themeMelody) != len(themeBass) {
		t.Fatalf("melody has %d notes, bass has %d", len(themeMelody), len(themeBass))
	}
}

func TestThemePassLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	total, peak := drain(t, themePass(rate))
	if want := rate.N(ThemeLength()); total != want {
		t.Errorf("one pass = %d samples, expected %d", total, want)
	}
	if peak == 0 || peak > 1 {
		t.Errorf("peak = %v, expected an audible tune without clipping", peak)
	}
}

func TestThemeLoops(t *testing.T) {
	rate := beep.SampleRate(8000)
	theme := Theme(rate)
	buf := make([][2]float64, 1024)

	// Three passes worth of samples must all come through.
	remaining := 3 * rate.N(ThemeLength())
	for remaining > 0 {
		n, ok := theme.Stream(buf[:min(len(buf), remaining)])
		if !ok || n == 0 {
			t.Fatalf("theme stopped with %d samples left", remaining)
		}
		remaining -= n
	}
}

func TestRestIsSilent(t *testing.T) {
	rate := beep.SampleRate(8000)
	total, peak := drain(t, voice(WaveSquare, rate, []float64{0, 0}))
	if total != rate.N(2*themeStep) {
		t.Errorf("rests = %d samples, expected %d", total, rate.N(2*themeStep))
	}
	if peak != 0 {
		t.Errorf("peak = %v, expected silence", peak)
	}
}
