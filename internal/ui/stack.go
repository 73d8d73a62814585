// Package ui implements the screens drawn over the game world.
package ui

import (
	"github.com/tomz197/arcade-asteroids/internal/draw"
	"github.com/tomz197/arcade-asteroids/internal/game"
	"github.com/tomz197/arcade-asteroids/internal/input"
)

// Screen is one layer of the overlay.
type Screen interface {
	// Kind identifies the screen.
	Kind() game.ScreenKind

	// Update advances animations. Every screen on the stack is updated.
	Update(g *game.Game, dt float64)

	// HandleInput reacts to the frame's bindings. Only the top screen receives input.
	HandleInput(g *game.Game, frame input.Frame)

	// Draw writes the screen's text. Screens are drawn bottom to top.
	Draw(cw *draw.ChunkWriter, g *game.Game, width, height int)
}

// Stack is the overlay the game pushes screens onto.
type Stack struct {
	screens []Screen
}

// NewStack creates an empty overlay.
func NewStack() *Stack {
	return &Stack{}
}

// Push opens a new screen of the given kind on top.
func (s *Stack) Push(kind game.ScreenKind) {
	s.screens = append(s.screens, newScreen(kind))
}

// Pop closes the top screen. Popping an empty stack does nothing.
func (s *Stack) Pop() {
	if len(s.screens) == 0 {
		return
	}
	s.screens[len(s.screens)-1] = nil
	s.screens = s.screens[:len(s.screens)-1]
}

// Clear closes every screen.
func (s *Stack) Clear() {
	clear(s.screens)
	s.screens = s.screens[:0]
}

// Top returns the top screen, or nil.
func (s *Stack) Top() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Kinds returns the kinds of the open screens, bottom first.
func (s *Stack) Kinds() []game.ScreenKind {
	kinds := make([]game.ScreenKind, len(s.screens))
	for i, sc := range s.screens {
		kinds[i] = sc.Kind()
	}
	return kinds
}

// Update advances every screen, then lets the top one handle input.
// Quit works from any screen.
func (s *Stack) Update(g *game.Game, dt float64, frame input.Frame) {
	if frame.Pressed.Has(input.Quit) {
		g.Exit()
		return
	}

	top := s.Top()
	for _, sc := range s.screens {
		sc.Update(g, dt)
	}
	if top != nil {
		top.HandleInput(g, frame)
	}
}

// Draw writes every screen, bottom first, so the top one ends up on top.
func (s *Stack) Draw(cw *draw.ChunkWriter, g *game.Game, width, height int) {
	for _, sc := range s.screens {
		sc.Draw(cw, g, width, height)
	}
}

func newScreen(kind game.ScreenKind) Screen {
	switch kind {
	case game.ScreenGameplay:
		return &hud{}
	case game.ScreenPause:
		return &pauseMenu{}
	case game.ScreenGameOver:
		return &gameOver{}
	default:
		return &mainMenu{}
	}
}
