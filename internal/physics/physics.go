// Package physics provides vector math, bounding volumes and play-area wrapping.
package physics

import "math"

// Vec3 is a 3-component vector. Z is carried but unused by the 2D simulation.
type Vec3 struct {
	X, Y, Z float64
}

// Zero is the zero vector.
var Zero = Vec3{}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// LengthSquared returns the squared length of v.
// Use this when comparing lengths to avoid the sqrt cost.
func (v Vec3) LengthSquared() float64 {
	return v.Dot(v)
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns v scaled to unit length.
// The zero vector has no direction, so it normalizes to +X.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{X: 1}
	}
	return v.Scale(1 / l)
}

// Heading returns the unit vector in the XY plane for an angle in radians.
func Heading(angle float64) Vec3 {
	return Vec3{X: math.Cos(angle), Y: math.Sin(angle)}
}

// DistanceSquared calculates the squared distance between two points.
func DistanceSquared(a, b Vec3) float64 {
	return b.Sub(a).LengthSquared()
}

// Sphere is a circular bounding region used for collision tests.
type Sphere struct {
	Center Vec3
	Radius float64
}

// Intersects checks if two spheres overlap. Touching spheres intersect.
func (s Sphere) Intersects(o Sphere) bool {
	minDist := s.Radius + o.Radius
	return DistanceSquared(s.Center, o.Center) <= minDist*minDist
}

// Area is an axis-aligned rectangle in the XY plane. Min is inclusive, Max exclusive.
type Area struct {
	Min, Max Vec3
}

// Width returns the extent of the area along X.
func (a Area) Width() float64 {
	return a.Max.X - a.Min.X
}

// Height returns the extent of the area along Y.
func (a Area) Height() float64 {
	return a.Max.Y - a.Min.Y
}

// Contains reports whether p lies within the area.
func (a Area) Contains(p Vec3) bool {
	return p.X >= a.Min.X && p.X < a.Max.X && p.Y >= a.Min.Y && p.Y < a.Max.Y
}

// Wrap wraps a position around the area boundaries (Asteroids-style).
// An empty area leaves the position untouched.
func (a Area) Wrap(p Vec3) Vec3 {
	p.X = wrap(p.X, a.Min.X, a.Width())
	p.Y = wrap(p.Y, a.Min.Y, a.Height())
	return p
}

func wrap(v, lo, size float64) float64 {
	if size <= 0 {
		return v
	}
	v = math.Mod(v-lo, size)
	if v < 0 {
		v += size
	}
	return v + lo
}
