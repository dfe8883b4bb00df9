// Package scene loads world definitions from YAML files and instantiates
// them into physics worlds. A definition carries world settings (gravity,
// fixed timestep, iteration hints), reusable body prefabs, and the body
// instances themselves; instances may reference a prefab and override any
// subset of its fields.
package scene

import (
	"fmt"
	"os"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"physics-engine/internal/physics"
)

// VecDef is a 2D vector in a scene file.
type VecDef struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// ShapeDef describes a body's collision shape. Kind is "box" (width,
// height) or "circle" (radius).
type ShapeDef struct {
	Kind   string  `yaml:"kind"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	Radius float32 `yaml:"radius"`
}

// BodyDef describes one body, either a prefab template or an instance.
// Optional fields are pointers so an instance override is distinguishable
// from an omitted field.
type BodyDef struct {
	Name            string    `yaml:"name"`
	Prefab          string    `yaml:"prefab,omitempty"`
	Type            string    `yaml:"type,omitempty"`
	Position        *VecDef   `yaml:"position,omitempty"`
	Rotation        *float32  `yaml:"rotation,omitempty"`
	Velocity        *VecDef   `yaml:"velocity,omitempty"`
	AngularVelocity *float32  `yaml:"angular_velocity,omitempty"`
	Mass            *float32  `yaml:"mass,omitempty"`
	Restitution     *float32  `yaml:"restitution,omitempty"`
	Friction        *float32  `yaml:"friction,omitempty"`
	LinearDamping   *float32  `yaml:"linear_damping,omitempty"`
	AngularDamping  *float32  `yaml:"angular_damping,omitempty"`
	GravityScale    *float32  `yaml:"gravity_scale,omitempty"`
	Trigger         *bool     `yaml:"trigger,omitempty"`
	Shape           *ShapeDef `yaml:"shape,omitempty"`
}

// Def is a complete scene file.
type Def struct {
	Name               string             `yaml:"name"`
	Gravity            VecDef             `yaml:"gravity"`
	FixedTimestep      float32            `yaml:"fixed_timestep,omitempty"`
	VelocityIterations int                `yaml:"velocity_iterations,omitempty"`
	PositionIterations int                `yaml:"position_iterations,omitempty"`
	Prefabs            map[string]BodyDef `yaml:"prefabs,omitempty"`
	Bodies             []BodyDef          `yaml:"bodies"`
}

// Load reads and parses a scene file.
func Load(path string) (*Def, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses scene YAML.
func Parse(data []byte) (*Def, error) {
	var def Def
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("scene: unmarshal: %w", err)
	}
	return &def, nil
}

// Build instantiates the definition: a world with the file's settings and
// one body per entry in Bodies, prefab fields merged under instance
// overrides. The returned map indexes the bodies that carry a name.
func Build(def *Def) (*physics.World, map[string]*physics.Body, error) {
	w := physics.NewWorld(def.Gravity.X, def.Gravity.Y)
	if def.FixedTimestep > 0 {
		w.SetFixedTimestep(def.FixedTimestep)
	}
	if def.VelocityIterations > 0 {
		w.SetVelocityIterations(def.VelocityIterations)
	}
	if def.PositionIterations > 0 {
		w.SetPositionIterations(def.PositionIterations)
	}

	named := make(map[string]*physics.Body)
	for i, inst := range def.Bodies {
		merged, err := resolve(def, inst)
		if err != nil {
			return nil, nil, fmt.Errorf("scene: body %d: %w", i, err)
		}
		body, err := makeBody(merged)
		if err != nil {
			return nil, nil, fmt.Errorf("scene: body %d (%s): %w", i, merged.Name, err)
		}
		w.AddBody(body)
		if merged.Name != "" {
			named[merged.Name] = body
		}
	}
	return w, named, nil
}

// resolve merges an instance over its prefab, if it names one. The prefab
// is deep-copied first so instances never alias template state; the
// instance's set fields then win over the template's.
func resolve(def *Def, inst BodyDef) (BodyDef, error) {
	if inst.Prefab == "" {
		return inst, nil
	}
	tmpl, ok := def.Prefabs[inst.Prefab]
	if !ok {
		return BodyDef{}, fmt.Errorf("unknown prefab %q", inst.Prefab)
	}
	var merged BodyDef
	if err := copier.CopyWithOption(&merged, &tmpl, copier.Option{DeepCopy: true}); err != nil {
		return BodyDef{}, fmt.Errorf("copy prefab %q: %w", inst.Prefab, err)
	}
	if err := copier.CopyWithOption(&merged, &inst, copier.Option{DeepCopy: true, IgnoreEmpty: true}); err != nil {
		return BodyDef{}, fmt.Errorf("apply overrides: %w", err)
	}
	return merged, nil
}

func makeBody(def BodyDef) (*physics.Body, error) {
	t, err := bodyType(def.Type)
	if err != nil {
		return nil, err
	}
	b := physics.NewBody(t)
	if def.Mass != nil {
		b.SetMass(*def.Mass)
	}
	if def.Restitution != nil {
		b.SetRestitution(*def.Restitution)
	}
	if def.Friction != nil {
		b.SetFriction(*def.Friction)
	}
	if def.LinearDamping != nil {
		b.SetLinearDamping(*def.LinearDamping)
	}
	if def.AngularDamping != nil {
		b.SetAngularDamping(*def.AngularDamping)
	}
	if def.GravityScale != nil {
		b.SetGravityScale(*def.GravityScale)
	}
	if def.Trigger != nil {
		b.SetTrigger(*def.Trigger)
	}
	if def.Shape != nil {
		switch def.Shape.Kind {
		case "box", "":
			b.SetBoxShape(def.Shape.Width, def.Shape.Height)
		case "circle":
			b.SetCircleShape(def.Shape.Radius)
		default:
			return nil, fmt.Errorf("unknown shape kind %q", def.Shape.Kind)
		}
	}
	if def.Position != nil {
		b.SetPosition(def.Position.X, def.Position.Y)
	}
	if def.Rotation != nil {
		b.SetRotation(*def.Rotation)
	}
	if def.Velocity != nil {
		b.SetVelocity(def.Velocity.X, def.Velocity.Y)
	}
	if def.AngularVelocity != nil {
		b.SetAngularVelocity(*def.AngularVelocity)
	}
	return b, nil
}

func bodyType(s string) (physics.BodyType, error) {
	switch s {
	case "dynamic", "":
		return physics.BodyDynamic, nil
	case "kinematic":
		return physics.BodyKinematic, nil
	case "static":
		return physics.BodyStatic, nil
	default:
		return 0, fmt.Errorf("unknown body type %q", s)
	}
}
