// Package audio plays the game's sound cues.
package audio

import (
	"io"
	"sync"

	"github.com/tomz197/arcade-asteroids/internal/audio/cue"
)

// Nop discards every cue.
type Nop struct{}

// PlayCue implements the game's audio collaborator.
func (Nop) PlayCue(string) {}

// Bell rings the terminal bell for the cues worth interrupting a remote
// player for. Used where no sound device is available, e.g. over SSH.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// PlayCue writes BEL for life-lost and bonus-life cues.
func (b *Bell) PlayCue(name string) {
	switch name {
	case cue.LifeLost, cue.BonusLife:
	default:
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = io.WriteString(b.w, "\a")
}
