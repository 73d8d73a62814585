package game

import (
	"github.com/tomz197/arcade-asteroids/internal/audio/cue"
	"github.com/tomz197/arcade-asteroids/internal/object"
)

// resolveCollisions applies missile hits on asteroids, then asteroid hits on the ship.
func (g *Game) resolveCollisions() {
	g.resolveMissileHits()
	g.resolveShipHits()
}

// resolveMissileHits destroys every asteroid hit by a missile. A missile destroys
// at most one asteroid per frame: the first one it overlaps in spawn order.
// Asteroids split during the scan can be hit by later missiles in the same frame.
func (g *Game) resolveMissileHits() {
	for i := 0; i < len(g.missiles); i++ {
		m := g.missiles[i]
		bounds := m.Body().WorldBounds()

		for j := 0; j < len(g.asteroids); j++ {
			a := g.asteroids[j]
			if !bounds.Intersects(a.Body().WorldBounds()) {
				continue
			}

			if a.Size == object.AsteroidLarge {
				g.spawnSmallAsteroidPair(a.Body().Position)
				g.addScore(ScoreLargeAsteroid)
			} else {
				g.addScore(ScoreSmallAsteroid)
			}

			g.removeMissile(m)
			g.removeAsteroid(a)
			g.audio.PlayCue(cue.Hit)

			// The next missile slid into slot i.
			i--
			break
		}
	}
}

// resolveShipHits costs a life when a vulnerable ship touches an asteroid.
// The ship is disabled by the first hit, so one frame costs at most one life.
func (g *Game) resolveShipHits() {
	if g.ship == nil {
		return
	}
	body := g.ship.Body()
	for _, a := range g.asteroids {
		if !body.Enabled || !g.vulnerable {
			return
		}
		if a.Body().WorldBounds().Intersects(body.WorldBounds()) {
			g.loseLife()
		}
	}
}
