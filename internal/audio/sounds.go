package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/spacetris/internal/world"
)

// Sound identifies one of the effects the game can play.
type Sound int

const (
	SoundNone Sound = iota
	SoundMove
	SoundRotate
	SoundDrop
	SoundLineClear
	SoundLevelUp
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundMove:
		return "move"
	case SoundRotate:
		return "rotate"
	case SoundDrop:
		return "drop"
	case SoundLineClear:
		return "line-clear"
	case SoundLevelUp:
		return "level-up"
	case SoundGameOver:
		return "game-over"
	default:
		return "none"
	}
}

// SoundFor maps a world event to the effect announcing it.
func SoundFor(e world.Event) Sound {
	switch e {
	case world.EventMove:
		return SoundMove
	case world.EventRotate:
		return SoundRotate
	case world.EventDrop:
		return SoundDrop
	case world.EventLineClear:
		return SoundLineClear
	case world.EventLevelUp:
		return SoundLevelUp
	case world.EventGameOver:
		return SoundGameOver
	default:
		return SoundNone
	}
}

// Build synthesizes s at the given rate. It returns nil for SoundNone.
func Build(s Sound, rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch s {
	case SoundMove:
		return withVolume(tune(WaveSquare, rate, note{440, 25 * ms}), 0.35)
	case SoundRotate:
		return withVolume(tune(WaveSquare, rate, note{660, 20 * ms}, note{880, 20 * ms}), 0.35)
	case SoundDrop:
		body := tune(WaveSine, rate, note{110, 90 * ms})
		click := tune(WaveTriangle, rate, note{220, 30 * ms})
		return beep.Mix(withVolume(body, 0.9), withVolume(click, 0.4))
	case SoundLineClear:
		return tune(WaveTriangle, rate, note{988, 70 * ms}, note{1319, 140 * ms})
	case SoundLevelUp:
		return tune(WaveSquare, rate,
			note{523, 80 * ms}, note{659, 80 * ms}, note{784, 80 * ms}, note{1047, 200 * ms})
	case SoundGameOver:
		return withVolume(tune(WaveSaw, rate,
			note{392, 180 * ms}, note{330, 180 * ms}, note{262, 180 * ms}, note{196, 400 * ms}), 0.6)
	default:
		return nil
	}
}
