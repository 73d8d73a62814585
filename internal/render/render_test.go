package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomz197/arcade-asteroids/internal/draw"
	"github.com/tomz197/arcade-asteroids/internal/object"
	"github.com/tomz197/arcade-asteroids/internal/physics"
)

var area = physics.Area{
	Min: physics.Vec3{X: -10, Y: -7.5},
	Max: physics.Vec3{X: 10, Y: 7.5},
}

func TestRegisterAndUnregister(t *testing.T) {
	r := New(area)
	ship := object.NewShip()
	m := object.NewMissile(physics.Zero, physics.Zero, nil)

	r.RegisterDrawable(ship)
	r.RegisterDrawable(m)
	r.RegisterDrawable(ship)
	assert.Equal(t, 2, r.Len())

	r.UnregisterDrawable(ship)
	r.UnregisterDrawable(ship)
	assert.Equal(t, 1, r.Len())
}

func TestDrawSkipsDisabledAndInvisible(t *testing.T) {
	r := New(area)
	c := draw.NewCanvas(20, 15, draw.View{Width: 1, Height: 1})

	m := object.NewMissile(physics.Vec3{X: 5, Y: 5}, physics.Zero, nil)
	dead := object.NewMissile(physics.Vec3{X: -5, Y: -5}, physics.Zero, nil)
	dead.Body().Enabled = false
	ship := object.NewShip()
	ship.Visible = false

	r.RegisterDrawable(m)
	r.RegisterDrawable(dead)
	r.RegisterDrawable(ship)
	r.Draw(c)

	assert.Equal(t, r.View(), c.View(), "canvas follows the projection")
	assert.True(t, c.Pixel(15, 5))
	assert.False(t, c.Pixel(5, 25))
	assert.False(t, c.Pixel(10, 15), "invisible ship is not drawn")
}

func TestResetProjection(t *testing.T) {
	r := New(area)
	r.view = draw.View{Width: 1, Height: 1}
	r.ResetProjection()
	assert.Equal(t, draw.View{MinX: -10, MinY: -7.5, Width: 20, Height: 15}, r.View())
}
