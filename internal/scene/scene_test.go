package scene

import (
	"testing"

	"physics-engine/internal/physics"
)

const sampleScene = `
name: stack test
gravity: {x: 0, y: -9.81}
fixed_timestep: 0.02
velocity_iterations: 10
position_iterations: 4
prefabs:
  crate:
    type: dynamic
    mass: 2
    friction: 0.8
    restitution: 0.1
    shape: {kind: box, width: 1, height: 1}
bodies:
  - name: ground
    type: static
    position: {x: 0, y: -5}
    shape: {kind: box, width: 40, height: 1}
  - name: crate_a
    prefab: crate
    position: {x: 0, y: 2}
  - name: crate_b
    prefab: crate
    position: {x: 0.2, y: 4}
    mass: 5
  - name: sensor
    type: static
    trigger: true
    position: {x: 10, y: 0}
    shape: {kind: circle, radius: 3}
`

func TestParseAndBuild(t *testing.T) {
	def, err := Parse([]byte(sampleScene))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if def.Name != "stack test" {
		t.Fatalf("name = %q", def.Name)
	}

	w, named, err := Build(def)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if w.BodyCount() != 4 {
		t.Fatalf("body count = %d, want 4", w.BodyCount())
	}
	if w.FixedTimestep() != 0.02 {
		t.Fatalf("fixed timestep = %v, want 0.02", w.FixedTimestep())
	}
	if g := w.Gravity(); g.Y != -9.81 {
		t.Fatalf("gravity.Y = %v, want -9.81", g.Y)
	}
	if w.VelocityIterations() != 10 || w.PositionIterations() != 4 {
		t.Fatalf("iterations = %d/%d, want 10/4", w.VelocityIterations(), w.PositionIterations())
	}

	ground := named["ground"]
	if ground == nil || ground.Type() != physics.BodyStatic {
		t.Fatal("ground missing or not static")
	}
	if w, h := ground.ShapeBounds(); w != 40 || h != 1 {
		t.Fatalf("ground bounds = (%v, %v)", w, h)
	}

	sensor := named["sensor"]
	if sensor == nil || !sensor.IsTrigger() {
		t.Fatal("sensor missing or not a trigger")
	}
	if sensor.Shape().Kind != physics.ShapeCircle {
		t.Fatalf("sensor shape = %v, want circle", sensor.Shape().Kind)
	}
}

func TestPrefabMerge(t *testing.T) {
	def, err := Parse([]byte(sampleScene))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, named, err := Build(def)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	a := named["crate_a"]
	b := named["crate_b"]
	if a == nil || b == nil {
		t.Fatal("crate instances missing")
	}

	// crate_a takes everything from the prefab except position.
	if a.Mass() != 2 || a.Friction() != 0.8 {
		t.Fatalf("crate_a mass/friction = %v/%v, want 2/0.8", a.Mass(), a.Friction())
	}
	if p := a.Position(); p.X != 0 || p.Y != 2 {
		t.Fatalf("crate_a position = %v", p)
	}

	// crate_b overrides mass, keeps the rest.
	if b.Mass() != 5 {
		t.Fatalf("crate_b mass = %v, want override 5", b.Mass())
	}
	if b.Friction() != 0.8 {
		t.Fatalf("crate_b friction = %v, want prefab 0.8", b.Friction())
	}
	if w, h := b.ShapeBounds(); w != 1 || h != 1 {
		t.Fatalf("crate_b bounds = (%v, %v), want prefab 1x1", w, h)
	}

	// Instances must not alias each other or the template.
	a.SetMass(9)
	if b.Mass() != 5 {
		t.Fatal("mutating one instance reached another")
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown_prefab", "bodies:\n  - prefab: missing\n"},
		{"unknown_type", "bodies:\n  - type: squishy\n"},
		{"unknown_shape", "bodies:\n  - shape: {kind: triangle}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if _, _, err := Build(def); err == nil {
				t.Fatal("Build accepted an invalid definition")
			}
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte(": not yaml {")); err == nil {
		t.Fatal("Parse accepted malformed input")
	}
}
