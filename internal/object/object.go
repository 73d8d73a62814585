package object

import (
	"errors"
	"fmt"

	"github.com/tomz197/arcade-asteroids/internal/draw"
	"github.com/tomz197/arcade-asteroids/internal/physics"
)

// ErrInvalidShape is returned by Load when an object has no collision extent.
var ErrInvalidShape = errors.New("object has non-positive scale or radius")

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta float64      // Seconds since the previous frame
	Area  physics.Area // Play area; objects wrap around its edges
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas // Canvas addressed in world coordinates
}

// Object is a simulation entity owned by the world registry.
type Object interface {
	// Body returns the shared physical state of the object.
	Body() *Body

	// Load prepares the object before it joins the world.
	Load() error

	// Unload releases anything the object acquired in Load or during its life.
	Unload()

	// Update advances the object by ctx.Delta seconds.
	Update(ctx UpdateContext)

	// Draw draws the object onto the canvas.
	Draw(ctx DrawContext)
}

// Body is the positionable, collidable state every object carries.
type Body struct {
	Position physics.Vec3
	Velocity physics.Vec3
	Angle    float64 // Heading in radians (0 = +X, increases counter-clockwise)
	Scale    float64 // Uniform size multiplier
	Enabled  bool    // Disabled objects are skipped by update and collision

	radius float64 // Collision radius of the unscaled model
}

// Forward returns the unit vector the body is facing.
func (b *Body) Forward() physics.Vec3 {
	return physics.Heading(b.Angle)
}

// Radius returns the scaled collision radius.
func (b *Body) Radius() float64 {
	return b.radius * b.Scale
}

// WorldBounds returns the bounding sphere used for collision tests.
func (b *Body) WorldBounds() physics.Sphere {
	return physics.Sphere{Center: b.Position, Radius: b.Radius()}
}

// Integrate moves the body along its velocity and wraps it around the play area.
func (b *Body) Integrate(dt float64, area physics.Area) {
	b.Position = area.Wrap(b.Position.Add(b.Velocity.Scale(dt)))
}

// validate checks the body has a usable collision extent.
func (b *Body) validate(kind string) error {
	if b.Scale <= 0 || b.radius <= 0 {
		return fmt.Errorf("load %s (scale %.2f, radius %.2f): %w", kind, b.Scale, b.radius, ErrInvalidShape)
	}
	return nil
}

// point converts a world position to a canvas point.
func point(v physics.Vec3) draw.Point {
	return draw.Point{X: v.X, Y: v.Y}
}
