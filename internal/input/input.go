// Package input turns raw terminal bytes into abstract control bindings.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report presses (and auto-repeat), never releases.
const keyHoldDuration = 30 * time.Millisecond

// Binding identifies an abstract control.
type Binding uint8

const (
	ShipLeft Binding = iota
	ShipRight
	ShipForward
	ShipBack
	ShipFire
	Pause
	Confirm
	Quit
	numBindings
)

var bindingNames = [numBindings]string{
	ShipLeft:    "ship_left",
	ShipRight:   "ship_right",
	ShipForward: "ship_forward",
	ShipBack:    "ship_back",
	ShipFire:    "ship_fire",
	Pause:       "pause",
	Confirm:     "confirm",
	Quit:        "quit",
}

// String returns the binding name.
func (b Binding) String() string {
	if b < numBindings {
		return bindingNames[b]
	}
	return "unknown"
}

// Bindings is the set of bindings active in a frame.
type Bindings uint16

// NewBindings returns a set holding the given bindings.
func NewBindings(bs ...Binding) Bindings {
	var set Bindings
	for _, b := range bs {
		set |= 1 << b
	}
	return set
}

// Has reports whether b is in the set.
func (s Bindings) Has(b Binding) bool {
	return s&(1<<b) != 0
}

// Frame is the binding snapshot for one frame.
type Frame struct {
	Held    Bindings // Bindings currently held
	Pressed Bindings // Bindings that became held this frame
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch       chan byte
	lastSeen [numBindings]time.Time
	prevHeld Bindings
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// Poll drains all available bytes from the stream (non-blocking) and returns
// the bindings for this frame. A closed stream reports Quit.
func (s *Stream) Poll() Frame {
	now := time.Now()
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	s.apply(buf, now)
	if closed {
		s.lastSeen[Quit] = now
	}
	return s.frame(now)
}

// Reset forgets all held keys, e.g. when a new screen takes over.
func (s *Stream) Reset() {
	s.lastSeen = [numBindings]time.Time{}
	s.prevHeld = 0
}

// apply parses the collected bytes and updates key state timestamps.
func (s *Stream) apply(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// Check for escape sequences (arrow keys, etc.)
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if binding, ok := arrowBinding(buf[i+2]); ok {
				s.lastSeen[binding] = now
				i += 2
				continue
			}
		}

		if binding, ok := keyBinding(b); ok {
			s.lastSeen[binding] = now
		}
	}
}

// frame builds the snapshot: keys are held if seen within the hold duration.
func (s *Stream) frame(now time.Time) Frame {
	var held Bindings
	for b := range numBindings {
		if !s.lastSeen[b].IsZero() && now.Sub(s.lastSeen[b]) < keyHoldDuration {
			held |= 1 << b
		}
	}

	f := Frame{Held: held, Pressed: held &^ s.prevHeld}
	s.prevHeld = held
	return f
}

// arrowBinding maps the final byte of a CSI arrow sequence.
func arrowBinding(code byte) (Binding, bool) {
	switch code {
	case 'A':
		return ShipForward, true
	case 'B':
		return ShipBack, true
	case 'C':
		return ShipRight, true
	case 'D':
		return ShipLeft, true
	}
	return 0, false
}

// keyBinding maps a single byte to its binding.
func keyBinding(b byte) (Binding, bool) {
	switch b {
	case 'q', 'Q':
		return Quit, true
	case 'a', 'A', 'j', 'J':
		return ShipLeft, true
	case 'd', 'D', 'l', 'L':
		return ShipRight, true
	case 'w', 'W', 'i', 'I':
		return ShipForward, true
	case 's', 'S', 'k', 'K':
		return ShipBack, true
	case ' ':
		return ShipFire, true
	case '\n', '\r':
		return Confirm, true
	case '\x1b', 'p', 'P':
		return Pause, true
	case '\x03': // Ctrl+C arrives as a byte in raw mode
		return Quit, true
	}
	return 0, false
}
