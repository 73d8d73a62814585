package game

import (
	"github.com/tomz197/arcade-asteroids/internal/audio/cue"
	"github.com/tomz197/arcade-asteroids/internal/input"
)

// control steers the ship from the bindings held this frame.
// Thrust is refused once the speed along the heading exceeds MaxForwardSpeed;
// sideways drift is not limited.
func (g *Game) control(dt float64, held input.Bindings) {
	if g.ship == nil {
		return
	}
	body := g.ship.Body()

	if held.Has(input.ShipLeft) {
		body.Angle += RotationSpeed * dt
	}
	if held.Has(input.ShipRight) {
		body.Angle -= RotationSpeed * dt
	}

	forward := body.Forward()
	if held.Has(input.ShipForward) && body.Velocity.Dot(forward) <= MaxForwardSpeed {
		body.Velocity = body.Velocity.Add(forward.Scale(dt * ThrustAcceleration))
	}
	if held.Has(input.ShipBack) && body.Velocity.Dot(forward) <= MaxForwardSpeed {
		body.Velocity = body.Velocity.Sub(forward.Scale(dt * ThrustAcceleration))
	}

	if held.Has(input.ShipFire) {
		g.fire()
	}
}

// fire launches a missile unless the cooldown is running or the ship is down.
func (g *Game) fire() {
	if !g.canFire || !g.ship.Body().Enabled {
		return
	}

	g.spawnMissile()
	g.audio.PlayCue(cue.Shoot)

	g.canFire = false
	g.timers.Schedule(timerFire, FireCooldown, g.resetFire, false)
}

func (g *Game) resetFire() {
	g.canFire = true
}
