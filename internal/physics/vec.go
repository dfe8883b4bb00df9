package physics

import (
	"github.com/chewxy/math32"
)

// Vec2 is a 2D vector. The whole simulation runs on float32, same as the
// rest of the engine, so math comes from math32 rather than the float64
// standard library.
type Vec2 struct {
	X, Y float32
}

// NewVec2 returns the vector (x, y).
func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the 2D cross product (the scalar z component) of v and o.
func (v Vec2) Cross(o Vec2) float32 {
	return v.X*o.Y - v.Y*o.X
}

// Length returns the magnitude of v.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared magnitude of v (no sqrt).
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalized returns v scaled to unit length, or the zero vector when v
// has zero length.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	inv := 1 / l
	return Vec2{X: v.X * inv, Y: v.Y * inv}
}

// clamp01 clamps x into [0, 1]. Material properties (restitution,
// friction, damping) are clamped on every write.
func clamp01(x float32) float32 {
	return math32.Max(0, math32.Min(1, x))
}
