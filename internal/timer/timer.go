// Package timer provides named deferred and repeating callbacks driven by frame time.
package timer

// Callback is invoked when a timer fires.
type Callback func()

type entry struct {
	name      string
	duration  float64
	remaining float64
	callback  Callback
	repeating bool
	live      bool // false once canceled, replaced or fired (non-repeating)
}

// Service tracks named timers. At most one timer exists per name.
// It is not safe for concurrent use; the game advances it once per frame.
type Service struct {
	entries []*entry // registration order
	scratch []*entry // reused snapshot for Advance
}

// New creates an empty timer service.
func New() *Service {
	return &Service{}
}

// Schedule registers callback to fire after duration seconds.
// A timer already registered under name is replaced; the new registration
// takes the last position in firing order.
func (s *Service) Schedule(name string, duration float64, callback Callback, repeating bool) {
	s.Cancel(name)
	s.entries = append(s.entries, &entry{
		name:      name,
		duration:  duration,
		remaining: duration,
		callback:  callback,
		repeating: repeating,
		live:      true,
	})
}

// Cancel removes the timer registered under name. Unknown names are ignored.
func (s *Service) Cancel(name string) {
	for i, e := range s.entries {
		if e.name == name {
			e.live = false
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// Clear removes every timer.
func (s *Service) Clear() {
	for _, e := range s.entries {
		e.live = false
	}
	clear(s.entries)
	s.entries = s.entries[:0]
}

// Advance moves every timer forward by dt seconds and fires the expired ones
// in registration order. Callbacks may schedule or cancel timers: timers
// added during the pass start counting on the next Advance, timers removed
// during the pass are skipped.
func (s *Service) Advance(dt float64) {
	if len(s.entries) == 0 {
		return
	}

	snapshot := append(s.scratch[:0], s.entries...)
	for _, e := range snapshot {
		if !e.live {
			continue
		}
		e.remaining -= dt
		if e.remaining > 0 {
			continue
		}
		if e.repeating {
			e.remaining = e.duration
		} else {
			// Unlink before firing so the callback can re-register the same name.
			s.Cancel(e.name)
		}
		if e.callback != nil {
			e.callback()
		}
	}

	clear(snapshot)
	s.scratch = snapshot[:0]
}

// Active reports whether a timer is registered under name.
func (s *Service) Active(name string) bool {
	_, ok := s.Remaining(name)
	return ok
}

// Remaining returns the seconds left on the named timer.
func (s *Service) Remaining(name string) (float64, bool) {
	for _, e := range s.entries {
		if e.name == name {
			return e.remaining, true
		}
	}
	return 0, false
}

// Len returns the number of registered timers.
func (s *Service) Len() int {
	return len(s.entries)
}
