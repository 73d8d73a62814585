// Package game runs the gameplay simulation: deferred state transitions,
// waves of asteroids, collisions, scoring and the ship's lives.
package game

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/tomz197/arcade-asteroids/internal/input"
	"github.com/tomz197/arcade-asteroids/internal/object"
	"github.com/tomz197/arcade-asteroids/internal/physics"
	"github.com/tomz197/arcade-asteroids/internal/timer"
	"github.com/tomz197/arcade-asteroids/internal/world"
)

// State is the top-level game phase.
type State int

const (
	StateNone State = iota
	StateMainMenu
	StateGameplay
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateMainMenu:
		return "main_menu"
	case StateGameplay:
		return "gameplay"
	default:
		return "unknown"
	}
}

// ScreenKind identifies an overlay screen.
type ScreenKind int

const (
	ScreenMainMenu ScreenKind = iota
	ScreenGameplay
	ScreenPause
	ScreenGameOver
)

// Renderer keeps the set of drawn objects in sync with the world.
type Renderer interface {
	world.Renderer
	ResetProjection()
}

// Audio plays named sound cues.
type Audio interface {
	PlayCue(name string)
}

// Overlay is the stack of UI screens drawn over the world.
type Overlay interface {
	Push(kind ScreenKind)
	Pop()
	Clear()
	Update(g *Game, dt float64, frame input.Frame)
}

// ShipFactory builds the player's ship for a new Gameplay session.
type ShipFactory func() *object.Ship

// Options configures a Game. Every field is optional.
type Options struct {
	Logger      *zap.Logger
	Renderer    Renderer
	Audio       Audio
	Overlay     Overlay
	Rand        *rand.Rand
	Area        physics.Area // Defaults to DefaultArea
	ShipFactory ShipFactory  // Defaults to object.NewShip
}

// Game owns the simulation of one player.
// It is not safe for concurrent use; drive it from a single frame loop.
type Game struct {
	log      *zap.Logger
	renderer Renderer
	audio    Audio
	overlay  Overlay
	rng      *rand.Rand
	area     physics.Area
	newShip  ShipFactory

	registry *world.Registry
	timers   *timer.Service

	current State
	pending State
	paused  bool
	over    bool
	exited  bool

	ship      *object.Ship
	asteroids []*object.Asteroid
	missiles  []*object.Missile

	score      Scoreboard
	wave       int
	vulnerable bool
	canFire    bool
}

// New creates a game in StateNone. Request a state to start it.
func New(opts Options) *Game {
	g := &Game{
		log:      opts.Logger,
		renderer: opts.Renderer,
		audio:    opts.Audio,
		overlay:  opts.Overlay,
		rng:      opts.Rand,
		area:     opts.Area,
		newShip:  opts.ShipFactory,
		timers:   timer.New(),
		score:    NewScoreboard(),
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	if g.renderer == nil {
		g.renderer = nopRenderer{}
	}
	if g.audio == nil {
		g.audio = nopAudio{}
	}
	if g.overlay == nil {
		g.overlay = nopOverlay{}
	}
	if g.rng == nil {
		g.rng = NewRand("")
	}
	if g.area.Width()*10 < 1 || g.area.Height()*10 < 1 {
		g.area = DefaultArea
	}
	if g.newShip == nil {
		g.newShip = object.NewShip
	}
	g.registry = world.NewRegistry(g.renderer)
	return g
}

// RequestState asks for a transition on the next Update.
// Requesting the current state cancels a pending transition.
func (g *Game) RequestState(s State) {
	g.pending = s
}

// Update runs one frame: the pending transition, the active state and the
// overlay, in that order. It returns an error only when a transition cannot
// be completed; the game then stays in its previous state.
func (g *Game) Update(dt float64, frame input.Frame) error {
	if g.pending != g.current {
		if err := g.changeState(g.pending); err != nil {
			return err
		}
	}

	if g.current == StateGameplay {
		g.updateGameplay(dt, frame)
	}

	g.overlay.Update(g, dt, frame)
	return nil
}

// Pause stops the simulation and opens the pause menu.
func (g *Game) Pause() {
	if g.current != StateGameplay || g.paused {
		return
	}
	g.paused = true
	g.overlay.Push(ScreenPause)
}

// Resume closes the pause menu. A finished game cannot be resumed.
func (g *Game) Resume() {
	if !g.paused || g.over {
		return
	}
	g.paused = false
	g.overlay.Pop()
}

// Exit asks the frame driver to stop.
func (g *Game) Exit() {
	g.exited = true
}

// Exited reports whether Exit was called.
func (g *Game) Exited() bool { return g.exited }

// State returns the active state.
func (g *Game) State() State { return g.current }

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool { return g.paused }

// Over reports whether the last session ended with all lives lost.
func (g *Game) Over() bool { return g.over }

// Score returns the current score.
func (g *Game) Score() int { return g.score.Score() }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.score.Lives() }

// Wave returns the number of waves spawned this session.
func (g *Game) Wave() int { return g.wave }

// Vulnerable reports whether asteroids can currently hurt the ship.
func (g *Game) Vulnerable() bool { return g.vulnerable }

// CanFire reports whether the fire cooldown has elapsed.
func (g *Game) CanFire() bool { return g.canFire }

// Ship returns the player's ship, or nil outside Gameplay.
func (g *Game) Ship() *object.Ship { return g.ship }

// Asteroids returns the live asteroids. The slice is owned by the game.
func (g *Game) Asteroids() []*object.Asteroid { return g.asteroids }

// Missiles returns the live missiles. The slice is owned by the game.
func (g *Game) Missiles() []*object.Missile { return g.missiles }

// Timers exposes the game's timer service.
func (g *Game) Timers() *timer.Service { return g.timers }

// Area returns the play area.
func (g *Game) Area() physics.Area { return g.area }

type nopRenderer struct{}

func (nopRenderer) RegisterDrawable(object.Object)   {}
func (nopRenderer) UnregisterDrawable(object.Object) {}
func (nopRenderer) ResetProjection()                 {}

type nopAudio struct{}

func (nopAudio) PlayCue(string) {}

type nopOverlay struct{}

func (nopOverlay) Push(ScreenKind)                    {}
func (nopOverlay) Pop()                               {}
func (nopOverlay) Clear()                             {}
func (nopOverlay) Update(*Game, float64, input.Frame) {}
