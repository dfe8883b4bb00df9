package main

import (
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/debug"
	"physics-engine/internal/engineconfig"
	"physics-engine/internal/graphics"
	"physics-engine/internal/logger"
	"physics-engine/internal/physics"
	"physics-engine/internal/scene"
	"physics-engine/internal/worldgen"
)

const (
	pixelsPerMeter = 32
	// maxFrameDelta caps the time fed into the world per frame so a stall
	// (window drag, breakpoint) does not trigger a sub-step avalanche.
	maxFrameDelta = 0.25
	spawnBoxSize  = 1
)

// sandbox owns the world, the renderer, and the per-frame bookkeeping the
// overlay needs.
type sandbox struct {
	prefs    engineconfig.EnginePrefs
	log      *logger.Logger
	world    *physics.World
	renderer *graphics.Renderer
	overlay  *debug.Debug
	watcher  *scene.Watcher

	// contacts reported during the current frame's Step, redrawn until the
	// next frame.
	contacts []physics.CollisionInfo
	subSteps int

	rayStart  physics.Vec2
	rayEnd    physics.Vec2
	rayHit    physics.RaycastHit
	rayOK     bool
	rayActive bool
}

func main() {
	prefs, _ := engineconfig.Load()
	log := logger.New()

	s := &sandbox{
		prefs:    prefs,
		log:      log,
		renderer: graphics.NewRenderer(graphics.NewCamera(pixelsPerMeter)),
		overlay:  debug.New(),
	}
	s.renderer.DrawAABBs = prefs.DrawAABBs
	s.renderer.DrawVelocities = prefs.DrawVelocities
	s.renderer.DrawContacts = prefs.DrawContacts
	s.overlay.SetShowFPS(prefs.ShowFPS)
	s.overlay.SetShowStats(prefs.ShowDebug)

	s.loadScene()

	if w, err := scene.NewWatcher(filepath.Dir(prefs.ScenePath)); err == nil {
		s.watcher = w
		defer w.Close()
	} else {
		log.Logf("scene watcher disabled: %v", err)
	}

	graphics.Run(prefs.WindowWidth, prefs.WindowHeight, "physics sandbox", s.update, s.draw)
}

// loadScene builds (or rebuilds) the world from the configured scene file.
// On failure the current world is kept; with no world yet, an empty one is
// created so the sandbox still runs.
func (s *sandbox) loadScene() {
	def, err := scene.Load(s.prefs.ScenePath)
	if err == nil {
		var w *physics.World
		w, _, err = scene.Build(def)
		if err == nil {
			s.installWorld(w)
			s.log.Logf("scene loaded: %s (%d bodies)", s.prefs.ScenePath, w.BodyCount())
			return
		}
	}
	s.log.Logf("scene load failed: %v", err)
	if s.world == nil {
		s.installWorld(physics.NewWorld(0, -9.81))
	}
}

// loadStressScene swaps in a generated world: a ground slab, a box
// pyramid, and a shower of falling bodies.
func (s *sandbox) loadStressScene() {
	ground := scene.BodyDef{
		Name:     "ground",
		Type:     "static",
		Position: &scene.VecDef{Y: -8},
		Shape:    &scene.ShapeDef{Kind: "box", Width: 40, Height: 1},
	}
	popts := worldgen.DefaultPyramidOptions()
	popts.BaseY = -7.5 // rest on the ground slab
	def := &scene.Def{
		Name:    "stress",
		Gravity: scene.VecDef{Y: -9.81},
		Bodies: append([]scene.BodyDef{ground}, append(
			worldgen.Pyramid(popts),
			worldgen.Rain(worldgen.DefaultRainOptions())...)...),
	}
	w, _, err := scene.Build(def)
	if err != nil {
		s.log.Logf("stress scene build failed: %v", err)
		return
	}
	s.installWorld(w)
	s.log.Logf("stress scene generated (%d bodies)", w.BodyCount())
}

func (s *sandbox) installWorld(w *physics.World) {
	s.world = w
	s.contacts = s.contacts[:0]
	w.OnCollision(func(info physics.CollisionInfo) {
		s.contacts = append(s.contacts, info)
	})
	w.PreStep = func(float32) { s.subSteps++ }
}

func (s *sandbox) update() {
	select {
	case path := <-s.watcherEvents():
		if path != "" {
			s.loadScene()
		}
	default:
	}

	s.handleInput()

	s.contacts = s.contacts[:0]
	s.subSteps = 0
	dt := rl.GetFrameTime()
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	s.world.Step(dt)
}

// watcherEvents returns the watcher channel, or nil (blocks forever in
// select) when watching is disabled.
func (s *sandbox) watcherEvents() <-chan string {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Events
}

func (s *sandbox) handleInput() {
	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		s.world.SetPaused(!s.world.IsPaused())
	case rl.IsKeyPressed(rl.KeyR):
		s.loadScene()
	case rl.IsKeyPressed(rl.KeyG):
		s.loadStressScene()
	case rl.IsKeyPressed(rl.KeyF1):
		s.overlay.ShowFPS = !s.overlay.ShowFPS
	case rl.IsKeyPressed(rl.KeyF2):
		s.overlay.ShowStats = !s.overlay.ShowStats
	case rl.IsKeyPressed(rl.KeyF3):
		s.renderer.DrawAABBs = !s.renderer.DrawAABBs
	case rl.IsKeyPressed(rl.KeyF4):
		s.renderer.DrawVelocities = !s.renderer.DrawVelocities
	case rl.IsKeyPressed(rl.KeyF5):
		s.renderer.DrawContacts = !s.renderer.DrawContacts
	}

	// Left click drops a dynamic box at the cursor.
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		p := s.renderer.Camera.ScreenToWorld(rl.GetMousePosition())
		b := physics.NewBody(physics.BodyDynamic)
		b.SetBoxShape(spawnBoxSize, spawnBoxSize)
		b.SetPosition(p.X, p.Y)
		s.world.AddBody(b)
	}

	// Right drag casts a ray from the press point to the cursor.
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		s.rayStart = s.renderer.Camera.ScreenToWorld(rl.GetMousePosition())
		s.rayActive = true
	}
	if s.rayActive && rl.IsMouseButtonDown(rl.MouseButtonRight) {
		s.rayEnd = s.renderer.Camera.ScreenToWorld(rl.GetMousePosition())
		s.rayHit, s.rayOK = s.world.Raycast(s.rayStart, s.rayEnd)
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonRight) {
		if s.rayOK {
			s.log.Logf("raycast hit at (%.2f, %.2f), distance %.2f",
				s.rayHit.Point.X, s.rayHit.Point.Y, s.rayHit.Distance)
		}
		s.rayActive = false
		s.rayOK = false
	}
}

func (s *sandbox) draw() {
	s.renderer.DrawWorld(s.world)
	for _, info := range s.contacts {
		s.renderer.DrawContact(info)
	}
	if s.rayActive {
		s.renderer.DrawRay(s.rayStart, s.rayEnd, s.rayHit, s.rayOK)
	}

	sleeping := 0
	for _, b := range s.world.Bodies() {
		if b.IsSleeping() {
			sleeping++
		}
	}
	s.overlay.SetStats(debug.Stats{
		Bodies:   s.world.BodyCount(),
		Sleeping: sleeping,
		Contacts: len(s.contacts),
		SubSteps: s.subSteps,
		Paused:   s.world.IsPaused(),
	})
	s.overlay.Draw()
}
