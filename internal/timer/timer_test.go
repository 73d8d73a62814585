package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleFiresOnceAfterDuration(t *testing.T) {
	s := New()
	fired := 0
	s.Schedule("respawn", 3.0, func() { fired++ }, false)

	s.Advance(1.0)
	s.Advance(1.0)
	assert.Equal(t, 0, fired)
	assert.True(t, s.Active("respawn"))

	s.Advance(1.0)
	assert.Equal(t, 1, fired)
	assert.False(t, s.Active("respawn"), "one-shot timer is removed after firing")

	s.Advance(5.0)
	assert.Equal(t, 1, fired)
}

func TestScheduleReplacesExistingName(t *testing.T) {
	s := New()
	var fired []string
	s.Schedule("invulnerable", 2.0, func() { fired = append(fired, "first") }, false)
	s.Advance(1.5)
	s.Schedule("invulnerable", 2.0, func() { fired = append(fired, "second") }, false)

	assert.Equal(t, 1, s.Len())
	remaining, ok := s.Remaining("invulnerable")
	require.True(t, ok)
	assert.InDelta(t, 2.0, remaining, 1e-9, "replacement restarts the countdown")

	s.Advance(1.0)
	assert.Empty(t, fired)
	s.Advance(1.0)
	assert.Equal(t, []string{"second"}, fired)
}

func TestCancel(t *testing.T) {
	s := New()
	fired := false
	s.Schedule("allow firing", 0.5, func() { fired = true }, false)
	s.Cancel("allow firing")
	s.Cancel("allow firing")
	s.Cancel("never registered")

	s.Advance(1.0)
	assert.False(t, fired)
	assert.Zero(t, s.Len())
}

func TestRepeatingResetsToDuration(t *testing.T) {
	s := New()
	count := 0
	s.Schedule("flashShip", 0.2, func() { count++ }, true)

	for range 10 {
		s.Advance(0.1)
	}
	assert.Equal(t, 5, count)
	assert.True(t, s.Active("flashShip"))

	s.Advance(0.5)
	assert.Equal(t, 6, count, "a large step fires a repeating timer once")
	remaining, _ := s.Remaining("flashShip")
	assert.InDelta(t, 0.2, remaining, 1e-9)
}

func TestFiringOrderFollowsRegistration(t *testing.T) {
	s := New()
	var order []string
	s.Schedule("b", 1.0, func() { order = append(order, "b") }, false)
	s.Schedule("a", 1.0, func() { order = append(order, "a") }, false)
	s.Schedule("c", 1.0, func() { order = append(order, "c") }, false)
	s.Schedule("b", 1.0, func() { order = append(order, "b2") }, false)

	s.Advance(1.0)
	assert.Equal(t, []string{"a", "c", "b2"}, order)
}

func TestCallbackMayRescheduleSameName(t *testing.T) {
	s := New()
	count := 0
	var tick Callback
	tick = func() {
		count++
		s.Schedule("tick", 1.0, tick, false)
	}
	s.Schedule("tick", 1.0, tick, false)

	s.Advance(1.0)
	assert.Equal(t, 1, count, "rescheduled timer does not fire in the same pass")
	assert.True(t, s.Active("tick"))

	s.Advance(1.0)
	assert.Equal(t, 2, count)
}

func TestCallbackMayCancelLaterTimer(t *testing.T) {
	s := New()
	var fired []string
	s.Schedule("invulnerable", 1.0, func() {
		fired = append(fired, "invulnerable")
		s.Cancel("flashShip")
	}, false)
	s.Schedule("flashShip", 1.0, func() { fired = append(fired, "flashShip") }, true)

	s.Advance(1.0)
	assert.Equal(t, []string{"invulnerable"}, fired)
	assert.Zero(t, s.Len())
}

func TestClear(t *testing.T) {
	s := New()
	fired := false
	s.Schedule("a", 1.0, func() { fired = true }, false)
	s.Schedule("b", 1.0, func() { fired = true }, true)
	s.Clear()

	s.Advance(2.0)
	assert.False(t, fired)
	assert.Zero(t, s.Len())
}

func TestCallbackMayClear(t *testing.T) {
	s := New()
	var fired []string
	s.Schedule("a", 1.0, func() {
		fired = append(fired, "a")
		s.Clear()
	}, false)
	s.Schedule("b", 1.0, func() { fired = append(fired, "b") }, false)

	s.Advance(1.0)
	assert.Equal(t, []string{"a"}, fired)
}
