package audio

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/arcade-asteroids/internal/audio/cue"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager synthesizes the game's cues and plays them on the local speaker.
// Every method is safe to call before Initialize; cues are then dropped.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager. Call Initialize to open the device.
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. It fails on machines without an audio device;
// the game keeps running silently in that case.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops every playing cue.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayCue starts the named cue. Unknown names are ignored.
func (sm *SoundManager) PlayCue(name string) {
	streamer := cueStreamer(name)
	if streamer == nil {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// cueStreamer builds a fresh streamer for a cue.
func cueStreamer(name string) beep.Streamer {
	switch name {
	case cue.Shoot:
		return newTone(sweep(900, 400), 80*time.Millisecond, waveSquare, 0.15)
	case cue.Hit:
		return newTone(constant(0), 120*time.Millisecond, waveNoise, 0.25)
	case cue.LifeLost:
		return newTone(constant(110), 300*time.Millisecond, waveSquare, 0.25)
	case cue.BonusLife:
		return beep.Seq(
			newTone(constant(523.25), 90*time.Millisecond, waveSine, 0.3),
			newTone(constant(659.25), 90*time.Millisecond, waveSine, 0.3),
			newTone(constant(783.99), 180*time.Millisecond, waveSine, 0.3),
		)
	}
	return nil
}

// waveType defines oscillator wave shapes.
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveNoise
)

// freqFunc returns the frequency at progress p in [0, 1].
type freqFunc func(p float64) float64

func constant(hz float64) freqFunc {
	return func(float64) float64 { return hz }
}

func sweep(from, to float64) freqFunc {
	return func(p float64) float64 { return from + (to-from)*p }
}

// tone is a finite oscillator with a linear fade-out.
type tone struct {
	freq     freqFunc
	wave     waveType
	volume   float64
	phase    float64
	position int
	duration int
}

func newTone(freq freqFunc, d time.Duration, wave waveType, volume float64) *tone {
	return &tone{
		freq:     freq,
		wave:     wave,
		volume:   volume,
		duration: sampleRate.N(d),
	}
}

// Stream implements beep.Streamer.
func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}

		progress := float64(t.position) / float64(t.duration)

		var val float64
		switch t.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case waveNoise:
			val = rand.Float64()*2 - 1
		}
		val *= t.volume * (1 - progress)

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq(progress) / float64(sampleRate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (t *tone) Err() error { return nil }
