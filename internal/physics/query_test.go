package physics

import "testing"

func TestRaycast(t *testing.T) {
	w := NewWorld(0, 0)
	box := placedBox(BodyStatic, 0, 0, 2, 2)
	w.AddBody(box)

	tests := []struct {
		name     string
		start    Vec2
		end      Vec2
		wantHit  bool
		wantT    float32
		wantP    Vec2
		wantN    Vec2
	}{
		{
			name:    "horizontal_hit",
			start:   Vec2{X: -10}, end: Vec2{X: 10},
			wantHit: true, wantT: 9,
			wantP: Vec2{X: -1}, wantN: Vec2{X: -1},
		},
		{
			name:    "vertical_hit_from_above",
			start:   Vec2{Y: 5}, end: Vec2{Y: -5},
			wantHit: true, wantT: 4,
			wantP: Vec2{Y: 1}, wantN: Vec2{Y: 1},
		},
		{
			name:  "parallel_miss",
			start: Vec2{X: -10, Y: 5}, end: Vec2{X: 10, Y: 5},
		},
		{
			name:  "stops_short",
			start: Vec2{X: -10}, end: Vec2{X: -2},
		},
		{
			name:    "starts_inside",
			start:   Vec2{X: 0.5}, end: Vec2{X: 10},
			wantHit: true, wantT: 0,
			wantP: Vec2{X: 0.5}, wantN: Vec2{X: -1},
		},
		{
			name:  "degenerate_zero_length",
			start: Vec2{X: -10}, end: Vec2{X: -10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := w.Raycast(tt.start, tt.end)
			if ok != tt.wantHit {
				t.Fatalf("hit = %v, want %v", ok, tt.wantHit)
			}
			if !ok {
				return
			}
			if hit.Body != box {
				t.Fatalf("hit body %p, want %p", hit.Body, box)
			}
			if !approx(hit.Distance, tt.wantT, 1e-4) {
				t.Fatalf("distance = %v, want %v", hit.Distance, tt.wantT)
			}
			if !approx(hit.Point.X, tt.wantP.X, 1e-4) || !approx(hit.Point.Y, tt.wantP.Y, 1e-4) {
				t.Fatalf("point = %v, want %v", hit.Point, tt.wantP)
			}
			if !approx(hit.Normal.X, tt.wantN.X, 1e-4) || !approx(hit.Normal.Y, tt.wantN.Y, 1e-4) {
				t.Fatalf("normal = %v, want %v", hit.Normal, tt.wantN)
			}
		})
	}
}

func TestRaycastReturnsClosest(t *testing.T) {
	w := NewWorld(0, 0)
	near := placedBox(BodyStatic, 3, 0, 2, 2)
	far := placedBox(BodyStatic, 8, 0, 2, 2)
	w.AddBody(far)
	w.AddBody(near)

	hit, ok := w.Raycast(Vec2{}, Vec2{X: 20})
	if !ok {
		t.Fatal("ray missed both boxes")
	}
	if hit.Body != near {
		t.Fatalf("hit %p, want the nearer box %p", hit.Body, near)
	}
	if !approx(hit.Distance, 2, 1e-4) {
		t.Fatalf("distance = %v, want 2", hit.Distance)
	}
}

func TestRaycastUsesBoundsForCircles(t *testing.T) {
	w := NewWorld(0, 0)
	b := NewBody(BodyStatic)
	b.SetCircleShape(1)
	b.SetPosition(5, 0)
	w.AddBody(b)

	// The ray clips the corner of the 2x2 bounding box while staying
	// outside the circle itself; it still hits because every query runs
	// against axis-aligned bounds.
	hit, ok := w.Raycast(Vec2{X: 3.9, Y: 1.05}, Vec2{X: 4.1, Y: 0.85})
	if !ok {
		t.Fatal("ray missed the circle's bounding box")
	}
	if hit.Body != b {
		t.Fatalf("hit %p, want %p", hit.Body, b)
	}
}

func TestQueryPoint(t *testing.T) {
	w := NewWorld(0, 0)
	a := placedBox(BodyStatic, 0, 0, 2, 2)
	b := placedBox(BodyStatic, 0.5, 0, 2, 2)
	w.AddBody(a)
	w.AddBody(b)

	tests := []struct {
		name string
		x, y float32
		want int
	}{
		{"inside_both", 0.2, 0, 2},
		{"inside_one", -0.8, 0, 1},
		{"on_edge", 1, 0, 2},
		{"outside", 5, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.QueryPoint(tt.x, tt.y)
			if len(got) != tt.want {
				t.Fatalf("QueryPoint(%v, %v) returned %d bodies, want %d", tt.x, tt.y, len(got), tt.want)
			}
		})
	}
}

func TestQueryAABB(t *testing.T) {
	w := NewWorld(0, 0)
	a := placedBox(BodyStatic, 0, 0, 2, 2)
	b := placedBox(BodyStatic, 3, 0, 2, 2)
	c := placedBox(BodyStatic, 10, 10, 2, 2)
	w.AddBody(a)
	w.AddBody(b)
	w.AddBody(c)

	got := w.QueryAABB(Vec2{X: -2, Y: -2}, Vec2{X: 4, Y: 2})
	if len(got) != 2 {
		t.Fatalf("query returned %d bodies, want 2", len(got))
	}
	for _, body := range got {
		if body == c {
			t.Fatal("query returned a body outside the region")
		}
	}

	if got := w.QueryAABB(Vec2{X: 50, Y: 50}, Vec2{X: 60, Y: 60}); len(got) != 0 {
		t.Fatalf("empty region returned %d bodies", len(got))
	}
}
