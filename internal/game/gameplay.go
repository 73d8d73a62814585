package game

import (
	"go.uber.org/zap"

	"github.com/tomz197/arcade-asteroids/internal/audio/cue"
	"github.com/tomz197/arcade-asteroids/internal/input"
	"github.com/tomz197/arcade-asteroids/internal/object"
)

// updateGameplay advances one unpaused frame:
// input, objects, timers, collisions, then the next wave if this one is cleared.
func (g *Game) updateGameplay(dt float64, frame input.Frame) {
	if g.paused {
		return
	}

	g.control(dt, frame.Held)

	g.registry.Update(object.UpdateContext{Delta: dt, Area: g.area})
	g.timers.Advance(dt)

	g.resolveCollisions()

	if len(g.asteroids) == 0 {
		g.spawnWave()
	}
}

// loseLife disables the ship and either schedules a respawn or ends the game.
func (g *Game) loseLife() {
	g.audio.PlayCue(cue.LifeLost)
	g.ship.Body().Enabled = false

	lives := g.score.LoseLife()
	g.log.Info("life lost", zap.Int("lives", lives), zap.Int("score", g.score.Score()))
	if lives <= 0 {
		g.gameOver()
		return
	}
	g.timers.Schedule(timerRespawn, RespawnDelay, g.respawn, false)
}

// respawn puts the ship back at the origin with a fresh invulnerability window.
func (g *Game) respawn() {
	g.ship.Reset()

	g.vulnerable = false
	g.timers.Schedule(timerInvulnerable, InvulnerableTime, g.setVulnerable, false)
	g.timers.Schedule(timerFlash, FlashInterval, g.flashShip, true)
	g.ship.Body().Enabled = true
}

// setVulnerable closes the invulnerability window.
func (g *Game) setVulnerable() {
	g.timers.Cancel(timerFlash)
	g.vulnerable = true
	g.ship.Visible = true
}

func (g *Game) flashShip() {
	g.ship.Visible = !g.ship.Visible
}

// gameOver freezes the simulation and shows the final score.
func (g *Game) gameOver() {
	g.paused = true
	g.over = true
	g.overlay.Push(ScreenGameOver)
	g.log.Info("game over", zap.Int("score", g.score.Score()), zap.Int("wave", g.wave))
}

// addScore awards points and plays a cue for every bonus life they earn.
func (g *Game) addScore(points int) {
	granted := g.score.Add(points)
	for range granted {
		g.audio.PlayCue(cue.BonusLife)
	}
	if granted > 0 {
		g.log.Info("bonus life", zap.Int("granted", granted), zap.Int("lives", g.score.Lives()))
	}
}
