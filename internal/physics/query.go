package physics

import "github.com/chewxy/math32"

// RaycastHit describes the closest body intersected by a ray.
type RaycastHit struct {
	Body  *Body
	Point Vec2
	// Normal is the negated ray direction, not a true face normal. Good
	// enough for the axis-aligned proxies the ray is tested against.
	Normal   Vec2
	Distance float32
}

// Raycast casts a ray from start to end against every body's bounding
// box (slab method) and returns the closest hit. Returns false when the
// ray is degenerate or hits nothing.
func (w *World) Raycast(start, end Vec2) (RaycastHit, bool) {
	delta := end.Sub(start)
	length := delta.Length()
	if length == 0 {
		return RaycastHit{}, false
	}
	dir := delta.Scale(1 / length)

	var best RaycastHit
	found := false
	for _, b := range w.bodies {
		t, ok := rayBoxEntry(start, dir, length, b.AABB())
		if !ok {
			continue
		}
		if !found || t < best.Distance {
			found = true
			best = RaycastHit{
				Body:     b,
				Point:    start.Add(dir.Scale(t)),
				Normal:   dir.Scale(-1),
				Distance: t,
			}
		}
	}
	return best, found
}

// rayBoxEntry intersects a ray (unit direction, limited to maxDist) with
// a box and returns the entry distance, clamped to 0 when the ray starts
// inside the box.
func rayBoxEntry(origin, dir Vec2, maxDist float32, box AABB) (float32, bool) {
	tmin := float32(0)
	tmax := maxDist

	if dir.X != 0 {
		inv := 1 / dir.X
		t1 := (box.Min.X - origin.X) * inv
		t2 := (box.Max.X - origin.X) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
	} else if origin.X < box.Min.X || origin.X > box.Max.X {
		return 0, false
	}

	if dir.Y != 0 {
		inv := 1 / dir.Y
		t1 := (box.Min.Y - origin.Y) * inv
		t2 := (box.Max.Y - origin.Y) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
	} else if origin.Y < box.Min.Y || origin.Y > box.Max.Y {
		return 0, false
	}

	if tmin > tmax {
		return 0, false
	}
	return tmin, true
}

// QueryAABB returns every body whose bounding box overlaps the query
// box, in insertion order. Empty when nothing overlaps.
func (w *World) QueryAABB(min, max Vec2) []*Body {
	query := AABB{Min: min, Max: max}
	var out []*Body
	for _, b := range w.bodies {
		if b.AABB().Overlaps(query) {
			out = append(out, b)
		}
	}
	return out
}

// QueryPoint returns every body whose bounding box contains the point,
// in insertion order. Empty when nothing contains it.
func (w *World) QueryPoint(x, y float32) []*Body {
	p := Vec2{X: x, Y: y}
	var out []*Body
	for _, b := range w.bodies {
		if b.AABB().Contains(p) {
			out = append(out, b)
		}
	}
	return out
}
