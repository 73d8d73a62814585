package game

import (
	"fmt"

	"go.uber.org/zap"
)

// changeState tears down the active state and builds the requested one.
// On failure the request is dropped and the previous state is rebuilt.
func (g *Game) changeState(next State) error {
	prev := g.current

	switch next {
	case StateMainMenu:
		g.enterMainMenu()
	case StateGameplay:
		if err := g.setupGameplay(); err != nil {
			g.log.Error("state change failed",
				zap.Stringer("from", prev),
				zap.Stringer("to", next),
				zap.Error(err),
			)
			g.pending = prev
			g.clearEntities()
			g.timers.Clear()
			g.overlay.Clear()
			if prev == StateMainMenu {
				g.enterMainMenu()
			}
			return fmt.Errorf("enter %s: %w", next, err)
		}
	}

	g.current = next
	g.log.Info("state changed", zap.Stringer("from", prev), zap.Stringer("to", next))
	return nil
}

// enterMainMenu drops every gameplay resource and shows the main menu.
func (g *Game) enterMainMenu() {
	g.overlay.Clear()
	g.timers.Clear()
	g.overlay.Push(ScreenMainMenu)
	g.clearEntities()
}

// setupGameplay starts a fresh session: new ship, first wave, full lives.
func (g *Game) setupGameplay() error {
	g.clearEntities()
	g.overlay.Clear()
	g.overlay.Push(ScreenGameplay)

	g.paused = false
	g.over = false
	g.renderer.ResetProjection()
	g.timers.Clear()

	ship := g.newShip()
	if err := g.registry.Spawn(ship); err != nil {
		return fmt.Errorf("spawn ship: %w", err)
	}
	g.ship = ship

	g.canFire = true
	g.score.Reset()
	g.wave = 0
	g.spawnWave()
	g.respawn()
	return nil
}

// clearEntities removes every object from the world.
func (g *Game) clearEntities() {
	g.registry.ClearAll()
	g.ship = nil
	clear(g.asteroids)
	g.asteroids = g.asteroids[:0]
	clear(g.missiles)
	g.missiles = g.missiles[:0]
}
