package object

import (
	"github.com/tomz197/arcade-asteroids/internal/draw"
	"github.com/tomz197/arcade-asteroids/internal/physics"
)

// ShipRadius is the collision radius of the ship.
const ShipRadius = 0.4

// Ship is the player-controlled spaceship.
type Ship struct {
	body    Body
	Visible bool // Toggled while flashing during invulnerability
}

// NewShip creates an enabled, visible ship at the origin.
func NewShip() *Ship {
	return &Ship{
		body: Body{
			Scale:   1,
			Enabled: true,
			radius:  ShipRadius,
		},
		Visible: true,
	}
}

// Reset puts the ship back at the origin, at rest, facing +X.
func (s *Ship) Reset() {
	s.body.Position = physics.Zero
	s.body.Velocity = physics.Zero
	s.body.Angle = 0
}

// Body implements Object.
func (s *Ship) Body() *Body {
	return &s.body
}

// Load implements Object.
func (s *Ship) Load() error {
	return s.body.validate("ship")
}

// Unload implements Object.
func (s *Ship) Unload() {}

// Update applies momentum. Steering is driven by the game's input controller.
func (s *Ship) Update(ctx UpdateContext) {
	s.body.Integrate(ctx.Delta, ctx.Area)
}

// Draw renders the spaceship as a triangle pointing along its heading.
func (s *Ship) Draw(ctx DrawContext) {
	if !s.Visible {
		return
	}

	// Nose along the heading, wings ~143 degrees either side
	size := s.body.Radius() * 1.25
	pos := s.body.Position
	triangle := []draw.Point{
		point(pos.Add(physics.Heading(s.body.Angle).Scale(size))),
		point(pos.Add(physics.Heading(s.body.Angle + 2.5).Scale(size * 0.7))),
		point(pos.Add(physics.Heading(s.body.Angle - 2.5).Scale(size * 0.7))),
	}

	ctx.Canvas.DrawPolygon(triangle, true)
}
