package object

import (
	"github.com/tomz197/arcade-asteroids/internal/physics"
	"github.com/tomz197/arcade-asteroids/internal/timer"
)

// Missile tuning.
const (
	MissileLifetime = 2.0  // Seconds before a missile destroys itself
	MissileScale    = 0.05 // Uniform scale applied to the missile model
	missileRadius   = 2.0  // Model radius before scaling
)

const selfDestructTimer = "destroy self"

// Missile is a projectile fired by the ship.
type Missile struct {
	body   Body
	timers *timer.Service
}

// NewMissile creates a missile at pos travelling with vel. expire is called
// once MissileLifetime seconds of updates have passed.
func NewMissile(pos, vel physics.Vec3, expire func(*Missile)) *Missile {
	m := &Missile{
		body: Body{
			Position: pos,
			Velocity: vel,
			Scale:    MissileScale,
			Enabled:  true,
			radius:   missileRadius,
		},
		timers: timer.New(),
	}
	m.timers.Schedule(selfDestructTimer, MissileLifetime, func() {
		if expire != nil {
			expire(m)
		}
	}, false)
	return m
}

// Lifetime returns the seconds left before the missile destroys itself.
func (m *Missile) Lifetime() float64 {
	remaining, _ := m.timers.Remaining(selfDestructTimer)
	return remaining
}

// Body implements Object.
func (m *Missile) Body() *Body {
	return &m.body
}

// Load implements Object.
func (m *Missile) Load() error {
	return m.body.validate("missile")
}

// Unload drops the pending self-destruct.
func (m *Missile) Unload() {
	m.timers.Clear()
}

// Update moves the missile and counts down its lifetime.
func (m *Missile) Update(ctx UpdateContext) {
	m.body.Integrate(ctx.Delta, ctx.Area)
	m.timers.Advance(ctx.Delta)
}

// Draw renders the missile as a single pixel.
func (m *Missile) Draw(ctx DrawContext) {
	ctx.Canvas.SetFloat(m.body.Position.X, m.body.Position.Y)
}
