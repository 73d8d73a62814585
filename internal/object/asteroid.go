package object

import (
	"math"
	"math/rand/v2"

	"github.com/tomz197/arcade-asteroids/internal/draw"
)

// AsteroidSize represents the size category of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall AsteroidSize = iota + 1
	AsteroidLarge
)

// String returns the size name.
func (s AsteroidSize) String() string {
	switch s {
	case AsteroidSmall:
		return "small"
	case AsteroidLarge:
		return "large"
	default:
		return "unknown"
	}
}

// AsteroidRadius is the collision radius of an unscaled asteroid.
const AsteroidRadius = 1.0

// Asteroid is a destructible space rock.
type Asteroid struct {
	body          Body
	Size          AsteroidSize
	RotationSpeed float64   // Visual spin (radians/sec), does not affect bounds
	Vertices      []float64 // Vertex distances from center (for irregular shape)
}

// NewAsteroid creates a large asteroid at the origin with an irregular outline.
// Callers place it and set its velocity.
func NewAsteroid(rng *rand.Rand) *Asteroid {
	// Generate irregular polygon vertices (8-12 vertices)
	numVerts := 8 + rng.IntN(5)
	vertices := make([]float64, numVerts)
	for i := range vertices {
		// Vary radius by ±30% for irregular shape
		vertices[i] = AsteroidRadius * (0.7 + rng.Float64()*0.6)
	}

	return &Asteroid{
		body: Body{
			Scale:   1,
			Enabled: true,
			radius:  AsteroidRadius,
		},
		Size:          AsteroidLarge,
		RotationSpeed: (rng.Float64() - 0.5) * 2.0,
		Vertices:      vertices,
	}
}

// Shrink turns the asteroid into a small one at half scale.
func (a *Asteroid) Shrink() {
	a.Size = AsteroidSmall
	a.body.Scale *= 0.5
}

// ScaleVelocity multiplies the asteroid's velocity by f.
func (a *Asteroid) ScaleVelocity(f float64) {
	a.body.Velocity = a.body.Velocity.Scale(f)
}

// Body implements Object.
func (a *Asteroid) Body() *Body {
	return &a.body
}

// Load implements Object.
func (a *Asteroid) Load() error {
	return a.body.validate("asteroid")
}

// Unload implements Object.
func (a *Asteroid) Unload() {}

// Update moves the asteroid and handles rotation.
func (a *Asteroid) Update(ctx UpdateContext) {
	a.body.Angle += a.RotationSpeed * ctx.Delta
	a.body.Integrate(ctx.Delta, ctx.Area)
}

// Draw renders the asteroid as an irregular polygon.
func (a *Asteroid) Draw(ctx DrawContext) {
	numVerts := len(a.Vertices)
	points := ctx.Canvas.BorrowPoints(numVerts)

	for i, dist := range a.Vertices {
		vertAngle := a.body.Angle + float64(i)*2*math.Pi/float64(numVerts)
		r := dist * a.body.Scale
		points[i] = draw.Point{
			X: a.body.Position.X + math.Cos(vertAngle)*r,
			Y: a.body.Position.Y + math.Sin(vertAngle)*r,
		}
	}

	ctx.Canvas.DrawPolygon(points, false)
}
