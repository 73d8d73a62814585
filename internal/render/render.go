// Package render draws the world's objects onto a terminal canvas.
package render

import (
	"slices"

	"github.com/tomz197/arcade-asteroids/internal/draw"
	"github.com/tomz197/arcade-asteroids/internal/object"
	"github.com/tomz197/arcade-asteroids/internal/physics"
)

// Renderer keeps the set of drawable objects in registration order and
// draws the enabled ones through a projection of the play area.
type Renderer struct {
	drawables []object.Object
	home      draw.View
	view      draw.View
}

// New creates a renderer whose default projection shows area.
func New(area physics.Area) *Renderer {
	home := draw.View{
		MinX:   area.Min.X,
		MinY:   area.Min.Y,
		Width:  area.Width(),
		Height: area.Height(),
	}
	return &Renderer{home: home, view: home}
}

// RegisterDrawable starts drawing obj. Registering twice has no effect.
func (r *Renderer) RegisterDrawable(obj object.Object) {
	if slices.Contains(r.drawables, obj) {
		return
	}
	r.drawables = append(r.drawables, obj)
}

// UnregisterDrawable stops drawing obj.
func (r *Renderer) UnregisterDrawable(obj object.Object) {
	if i := slices.Index(r.drawables, obj); i >= 0 {
		r.drawables = slices.Delete(r.drawables, i, i+1)
	}
}

// ResetProjection returns the view to the whole play area.
func (r *Renderer) ResetProjection() {
	r.view = r.home
}

// View returns the current projection.
func (r *Renderer) View() draw.View {
	return r.view
}

// Len returns the number of registered drawables.
func (r *Renderer) Len() int {
	return len(r.drawables)
}

// Draw clears the canvas and draws every enabled object, oldest first.
func (r *Renderer) Draw(c *draw.Canvas) {
	if c.View() != r.view {
		c.SetView(r.view)
	}
	c.Clear()

	ctx := object.DrawContext{Canvas: c}
	for _, obj := range r.drawables {
		if obj.Body().Enabled {
			obj.Draw(ctx)
		}
	}
}
