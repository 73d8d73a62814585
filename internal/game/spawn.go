package game

import (
	"math"

	"go.uber.org/zap"

	"github.com/tomz197/arcade-asteroids/internal/object"
	"github.com/tomz197/arcade-asteroids/internal/physics"
)

// spawnWave fills the area with 10+wave large asteroids and gives the ship a
// fresh invulnerability window, since the new rocks may appear on top of it.
func (g *Game) spawnWave() {
	count := BaseWaveSize + g.wave
	for range count {
		a := g.newAsteroid(LargeAsteroidSpeed)
		a.Body().Position = g.samplePoint()
		g.spawnAsteroid(a)
	}
	g.wave++

	g.vulnerable = false
	g.timers.Schedule(timerInvulnerable, InvulnerableTime, g.setVulnerable, false)

	g.log.Debug("wave spawned",
		zap.Int("wave", g.wave),
		zap.Int("asteroids", count),
		zap.Float64("speed_factor", g.difficulty()),
	)
}

// spawnSmallAsteroidPair splits a destroyed large asteroid into two small ones.
func (g *Game) spawnSmallAsteroidPair(pos physics.Vec3) {
	for range 2 {
		a := g.newAsteroid(SmallAsteroidSpeed)
		a.Body().Position = pos
		a.Shrink()
		g.spawnAsteroid(a)
	}
}

// newAsteroid creates an asteroid with a random heading and direction moving
// at speed scaled by the wave difficulty.
func (g *Game) newAsteroid(speed float64) *object.Asteroid {
	a := object.NewAsteroid(g.rng)
	body := a.Body()
	body.Angle = g.rng.Float64() * 2 * math.Pi
	body.Velocity = g.sampleDirection().Scale(speed)
	a.ScaleVelocity(g.difficulty())
	return a
}

// difficulty is the asteroid speed multiplier for the wave being spawned.
func (g *Game) difficulty() float64 {
	return 1 + float64(g.wave-1)/WaveDifficultyDivisor
}

// samplePoint picks a position in the play area on a 0.1 unit grid.
func (g *Game) samplePoint() physics.Vec3 {
	return physics.Vec3{
		X: g.area.Min.X + float64(g.rng.IntN(int(g.area.Width()*10)))/10,
		Y: g.area.Min.Y + float64(g.rng.IntN(int(g.area.Height()*10)))/10,
	}
}

// sampleDirection picks a unit vector from the area's center toward a sampled point.
func (g *Game) sampleDirection() physics.Vec3 {
	center := physics.Vec3{
		X: g.area.Min.X + g.area.Width()/2,
		Y: g.area.Min.Y + g.area.Height()/2,
	}
	return g.samplePoint().Sub(center).Normalize()
}

func (g *Game) spawnAsteroid(a *object.Asteroid) {
	if err := g.registry.Spawn(a); err != nil {
		g.log.Error("spawn asteroid", zap.Error(err))
		return
	}
	g.asteroids = append(g.asteroids, a)
}

func (g *Game) removeAsteroid(a *object.Asteroid) {
	g.registry.Remove(a, true)
	g.asteroids = removeFrom(g.asteroids, a)
}

// spawnMissile launches a missile from the ship's nose.
func (g *Game) spawnMissile() {
	body := g.ship.Body()
	forward := body.Forward()
	m := object.NewMissile(
		body.Position.Add(forward.Scale(MissileOffset)),
		forward.Scale(MissileSpeed),
		g.removeMissile,
	)
	if err := g.registry.Spawn(m); err != nil {
		g.log.Error("spawn missile", zap.Error(err))
		return
	}
	g.missiles = append(g.missiles, m)
}

func (g *Game) removeMissile(m *object.Missile) {
	g.registry.Remove(m, true)
	g.missiles = removeFrom(g.missiles, m)
}

// removeFrom deletes the first occurrence of v, preserving order.
func removeFrom[T comparable](s []T, v T) []T {
	for i, x := range s {
		if x == v {
			copy(s[i:], s[i+1:])
			var zero T
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}
