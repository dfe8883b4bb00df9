package physics

import "github.com/chewxy/math32"

// AABB is an axis-aligned bounding box, the collision proxy for every
// body regardless of its declared shape.
type AABB struct {
	Min Vec2
	Max Vec2
}

// Overlaps reports whether the two boxes intersect (touching counts).
func (a AABB) Overlaps(o AABB) bool {
	return a.Min.X <= o.Max.X && a.Max.X >= o.Min.X &&
		a.Min.Y <= o.Max.Y && a.Max.Y >= o.Min.Y
}

// Contains reports whether the point lies inside the box (edges count).
func (a AABB) Contains(p Vec2) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y
}

// Center returns the box center.
func (a AABB) Center() Vec2 {
	return Vec2{X: (a.Min.X + a.Max.X) * 0.5, Y: (a.Min.Y + a.Max.Y) * 0.5}
}

// AABB returns the body's current world-space bounding box.
func (b *Body) AABB() AABB {
	hw := b.boundsW * 0.5
	hh := b.boundsH * 0.5
	return AABB{
		Min: Vec2{X: b.position.X - hw, Y: b.position.Y - hh},
		Max: Vec2{X: b.position.X + hw, Y: b.position.Y + hh},
	}
}

// CollisionInfo describes one detected contact between two bodies. It is
// a value: construct once, never mutate. The bodies are referenced, not
// owned.
type CollisionInfo struct {
	// BodyA and BodyB are the pair as enumerated by the broad phase.
	BodyA *Body
	BodyB *Body
	// Normal is a unit vector pointing from BodyA's center toward BodyB's.
	Normal Vec2
	// Penetration is always zero: the AABB broad phase detects overlap but
	// computes no depth.
	Penetration float32
	// Contact is the midpoint of the two body centers, an approximation of
	// the true contact point.
	Contact Vec2
}

// overlapPair tests the two bodies' bounds against each other using half
// extents and center deltas; on overlap it returns the unit normal from
// a's center toward b's ((1, 0) when the centers coincide).
func overlapPair(a, b *Body) (normal Vec2, ok bool) {
	dx := b.position.X - a.position.X
	dy := b.position.Y - a.position.Y
	if math32.Abs(dx) > (a.boundsW+b.boundsW)*0.5 {
		return Vec2{}, false
	}
	if math32.Abs(dy) > (a.boundsH+b.boundsH)*0.5 {
		return Vec2{}, false
	}
	n := Vec2{X: dx, Y: dy}.Normalized()
	if n.X == 0 && n.Y == 0 {
		n = Vec2{X: 1, Y: 0}
	}
	return n, true
}
