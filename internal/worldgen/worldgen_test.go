package worldgen

import "testing"

func TestPyramidShape(t *testing.T) {
	opts := DefaultPyramidOptions()
	opts.Rows = 4
	opts.Seed = 7
	defs := Pyramid(opts)

	// 4 + 3 + 2 + 1 boxes.
	if len(defs) != 10 {
		t.Fatalf("pyramid of 4 rows produced %d boxes, want 10", len(defs))
	}
	for i, d := range defs {
		if d.Shape == nil || d.Shape.Kind != "box" {
			t.Fatalf("def %d has shape %+v, want box", i, d.Shape)
		}
		if d.Position == nil {
			t.Fatalf("def %d has no position", i)
		}
	}
	// Bottom course rests on BaseY; top box is the highest.
	if defs[0].Position.Y >= defs[len(defs)-1].Position.Y {
		t.Fatalf("rows not stacked upward: first y=%v, last y=%v",
			defs[0].Position.Y, defs[len(defs)-1].Position.Y)
	}
}

func TestPyramidDeterministicForSeed(t *testing.T) {
	opts := DefaultPyramidOptions()
	opts.Seed = 42
	a := Pyramid(opts)
	b := Pyramid(opts)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if *a[i].Position != *b[i].Position {
			t.Fatalf("def %d differs across runs: %v vs %v", i, *a[i].Position, *b[i].Position)
		}
	}
}

func TestPyramidGuards(t *testing.T) {
	if defs := Pyramid(PyramidOptions{Rows: 0}); defs != nil {
		t.Fatalf("zero rows produced %d defs", len(defs))
	}
}

func TestRain(t *testing.T) {
	opts := DefaultRainOptions()
	opts.Count = 50
	opts.Seed = 3
	defs := Rain(opts)

	if len(defs) != 50 {
		t.Fatalf("got %d defs, want 50", len(defs))
	}
	circles := 0
	for i, d := range defs {
		p := d.Position
		if p == nil {
			t.Fatalf("def %d has no position", i)
		}
		if p.X < opts.MinX || p.X > opts.MaxX || p.Y < opts.MinY || p.Y > opts.MaxY {
			t.Fatalf("def %d at (%v, %v) outside the configured band", i, p.X, p.Y)
		}
		if d.Shape.Kind == "circle" {
			circles++
		}
	}
	if circles == 0 || circles == len(defs) {
		t.Fatalf("circle ratio 0.5 produced %d circles of %d", circles, len(defs))
	}
}

func TestRainAllBoxes(t *testing.T) {
	opts := DefaultRainOptions()
	opts.Seed = 3
	opts.CircleRatio = 0
	for i, d := range Rain(opts) {
		if d.Shape.Kind != "box" {
			t.Fatalf("def %d is a %s, want box", i, d.Shape.Kind)
		}
	}
}
