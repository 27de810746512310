// Package audio plays short synthesized effects for game events and a
// looping background tune.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/spacetris/internal/world"
)

const sampleRate = beep.SampleRate(48000)

// DefaultMusicVolume is the music gain until a saved one is applied.
const DefaultMusicVolume = 0.25

// SoundManager owns the speaker and mixes effects and music into it.
// Every method is safe to call before Initialize or after it failed.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
	volume      float64
	musicOn     bool
	musicVolume float64
	music       *beep.Ctrl
	musicGain   *effects.Volume
	logger      *log.Logger
}

// NewSoundManager returns a manager with effects and music enabled and
// the given effects volume.
func NewSoundManager(volume float64, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.Default()
	}
	return &SoundManager{
		mixer:       &beep.Mixer{},
		enabled:     true,
		volume:      clampGain(volume),
		musicOn:     true,
		musicVolume: DefaultMusicVolume,
		logger:      logger,
	}
}

func clampGain(v float64) float64 {
	return min(max(v, 0), 1)
}

// Initialize opens the audio device. Terminals without one get an error
// and the game carries on silently.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.startMusic()
	return nil
}

// startMusic adds the looping theme to the mixer, paused when music is off.
// The caller holds sm.mu.
func (sm *SoundManager) startMusic() {
	if !sm.initialized || sm.music != nil {
		return
	}
	sm.musicGain = withVolume(Theme(sampleRate), sm.musicVolume)
	sm.music = &beep.Ctrl{Streamer: sm.musicGain, Paused: !sm.musicOn}

	speaker.Lock()
	sm.mixer.Add(sm.music)
	speaker.Unlock()
}

// Cleanup silences anything still playing and closes the device.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.music = nil
	sm.musicGain = nil
	sm.initialized = false
}

func (sm *SoundManager) SetEnabled(on bool) {
	sm.mu.Lock()
	sm.enabled = on
	sm.mu.Unlock()
}

func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

// Volume returns the effects gain in [0, 1].
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// SetVolume sets the effects gain, clamped to [0, 1]. Effects already
// playing keep their gain.
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	sm.volume = clampGain(v)
	sm.mu.Unlock()
}

// SetMusicEnabled pauses or resumes the background tune.
func (sm *SoundManager) SetMusicEnabled(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.musicOn = on
	if sm.music != nil {
		speaker.Lock()
		sm.music.Paused = !on
		speaker.Unlock()
	}
}

func (sm *SoundManager) MusicEnabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.musicOn
}

// MusicVolume returns the music gain in [0, 1].
func (sm *SoundManager) MusicVolume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.musicVolume
}

// SetMusicVolume sets the music gain, clamped to [0, 1], and applies it to
// the tune while it plays.
func (sm *SoundManager) SetMusicVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.musicVolume = clampGain(v)
	if sm.musicGain != nil {
		speaker.Lock()
		setGain(sm.musicGain, sm.musicVolume)
		speaker.Unlock()
	}
}

// MusicPlaying reports whether the theme is on the mixer and not paused.
func (sm *SoundManager) MusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.music == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !sm.music.Paused
}

// Play queues s on the mixer. It is a no-op when muted or uninitialized.
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled || s == SoundNone {
		return
	}
	streamer := Build(s, sampleRate)
	if streamer == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(withVolume(streamer, sm.volume))
	speaker.Unlock()
	sm.logger.Debug("sound", "effect", s)
}

// Attach plays the matching effect for every event w emits.
func (sm *SoundManager) Attach(w *world.World) {
	w.OnEvent(func(e world.Event) {
		sm.Play(SoundFor(e))
	})
}

// Active reports how many streamers are on the mixer, the theme included.
func (sm *SoundManager) Active() int {
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}
