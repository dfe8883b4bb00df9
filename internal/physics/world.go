package physics

// DefaultFixedTimestep is the default fixed sub-step size (60 Hz).
const DefaultFixedTimestep = float32(1.0 / 60.0)

// Default solver iteration counts. Stored and exposed for a future
// constraint solver; the current report-only pipeline never reads them.
const (
	DefaultVelocityIterations = 8
	DefaultPositionIterations = 3
)

// WorldCollisionHandler receives every world-level collision event.
type WorldCollisionHandler func(info CollisionInfo)

type worldHandler struct {
	id HandlerID
	fn WorldCollisionHandler
}

// World owns a set of rigid bodies and drives the simulation: fixed-step
// scheduling, integration, AABB broad-phase detection, collision
// reporting, and spatial queries. Single-threaded; Step runs to
// completion before returning and nothing else may mutate bodies while
// it runs.
type World struct {
	bodies []*Body

	gravity            Vec2
	fixedTimestep      float32
	velocityIterations int
	positionIterations int

	paused      bool
	accumulator float32

	// Optional hooks around every fixed sub-step, for callers layering
	// extra per-step work (spawning, custom response) on the simulation.
	PreStep  func(dt float32)
	PostStep func(dt float32)

	nextHandlerID     HandlerID
	collisionHandlers []worldHandler
}

// NewWorld returns a world with the given gravity, the default 1/60s
// fixed timestep, and no bodies.
func NewWorld(gravityX, gravityY float32) *World {
	return &World{
		gravity:            Vec2{X: gravityX, Y: gravityY},
		fixedTimestep:      DefaultFixedTimestep,
		velocityIterations: DefaultVelocityIterations,
		positionIterations: DefaultPositionIterations,
	}
}

// AddBody adds a body to the world. Nil bodies and bodies already in the
// world are ignored.
func (w *World) AddBody(b *Body) {
	if b == nil {
		return
	}
	for _, existing := range w.bodies {
		if existing == b {
			return
		}
	}
	w.bodies = append(w.bodies, b)
}

// RemoveBody removes a body and reports whether it was present.
func (w *World) RemoveBody(b *Body) bool {
	for i, existing := range w.bodies {
		if existing == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return true
		}
	}
	return false
}

// BodyCount returns the number of bodies in the world.
func (w *World) BodyCount() int {
	return len(w.bodies)
}

// Bodies returns the world's bodies in insertion order. The slice is a
// copy; the bodies are shared.
func (w *World) Bodies() []*Body {
	out := make([]*Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// Clear removes every body from the world.
func (w *World) Clear() {
	w.bodies = nil
}

// Gravity returns the world gravity vector.
func (w *World) Gravity() Vec2 {
	return w.gravity
}

// SetGravity sets the world gravity vector.
func (w *World) SetGravity(x, y float32) {
	w.gravity = Vec2{X: x, Y: y}
}

// FixedTimestep returns the fixed sub-step size in seconds.
func (w *World) FixedTimestep() float32 {
	return w.fixedTimestep
}

// SetFixedTimestep sets the fixed sub-step size. Non-positive values are
// a caller bug and are ignored.
func (w *World) SetFixedTimestep(dt float32) {
	if dt <= 0 {
		return
	}
	w.fixedTimestep = dt
}

// VelocityIterations returns the stored velocity iteration count.
func (w *World) VelocityIterations() int {
	return w.velocityIterations
}

// SetVelocityIterations stores the velocity iteration count for a future
// constraint solver. The current pipeline does not consume it.
func (w *World) SetVelocityIterations(n int) {
	w.velocityIterations = n
}

// PositionIterations returns the stored position iteration count.
func (w *World) PositionIterations() int {
	return w.positionIterations
}

// SetPositionIterations stores the position iteration count for a future
// constraint solver. The current pipeline does not consume it.
func (w *World) SetPositionIterations(n int) {
	w.positionIterations = n
}

// SetPaused halts or resumes sub-stepping without clearing any state.
func (w *World) SetPaused(p bool) {
	w.paused = p
}

// IsPaused reports whether the world is paused.
func (w *World) IsPaused() bool {
	return w.paused
}

// OnCollision subscribes a world-level collision handler and returns an
// id for OffCollision. Handlers run in subscription order, before the
// per-body notifications for the same contact.
func (w *World) OnCollision(fn WorldCollisionHandler) HandlerID {
	if fn == nil {
		return -1
	}
	w.nextHandlerID++
	w.collisionHandlers = append(w.collisionHandlers, worldHandler{id: w.nextHandlerID, fn: fn})
	return w.nextHandlerID
}

// OffCollision removes a handler previously added with OnCollision.
func (w *World) OffCollision(id HandlerID) {
	for i, h := range w.collisionHandlers {
		if h.id == id {
			w.collisionHandlers = append(w.collisionHandlers[:i], w.collisionHandlers[i+1:]...)
			return
		}
	}
}

// Step advances the simulation by deltaTime seconds of wall time. The
// time is added to an internal accumulator and consumed in fixed-size
// sub-steps, so the simulation rate is independent of frame-rate jitter:
// a single call may run zero or many sub-steps. Callers worried about a
// spiral of death should cap deltaTime themselves. No-op while paused.
func (w *World) Step(deltaTime float32) {
	if w.paused {
		return
	}
	w.accumulator += deltaTime
	for w.accumulator >= w.fixedTimestep {
		w.subStep(w.fixedTimestep)
		w.accumulator -= w.fixedTimestep
	}
}

// subStep runs one fixed increment: pre-step hook, integration, AABB
// broad phase, collision reporting, post-step hook. Contacts are
// reported only; there is no velocity or position correction.
func (w *World) subStep(dt float32) {
	if w.PreStep != nil {
		w.PreStep(dt)
	}

	for _, b := range w.bodies {
		if b.bodyType != BodyDynamic || b.sleeping {
			continue
		}
		b.integrate(w.gravity, dt)
	}

	w.detectCollisions()

	if w.PostStep != nil {
		w.PostStep(dt)
	}
}

// detectCollisions scans every unordered pair of bodies (insertion
// order, i < j) with the AABB overlap test and reports each overlap.
// Pairs with no Dynamic member are skipped.
func (w *World) detectCollisions() {
	for i := 0; i < len(w.bodies); i++ {
		a := w.bodies[i]
		for j := i + 1; j < len(w.bodies); j++ {
			b := w.bodies[j]
			if a.bodyType != BodyDynamic && b.bodyType != BodyDynamic {
				continue
			}
			normal, ok := overlapPair(a, b)
			if !ok {
				continue
			}
			w.reportCollision(a, b, normal)
		}
	}
}

// reportCollision emits notifications for one overlapping pair. Trigger
// overlaps raise only the per-body notifications; physical overlaps
// raise the world-level event first, then the per-body notifications.
// Body A receives the A-to-B normal, body B the negated normal.
func (w *World) reportCollision(a, b *Body, normal Vec2) {
	if !a.trigger && !b.trigger {
		info := CollisionInfo{
			BodyA:  a,
			BodyB:  b,
			Normal: normal,
			Contact: Vec2{
				X: (a.position.X + b.position.X) * 0.5,
				Y: (a.position.Y + b.position.Y) * 0.5,
			},
		}
		for _, h := range w.collisionHandlers {
			h.fn(info)
		}
	}
	a.emitCollision(b, normal.X, normal.Y)
	b.emitCollision(a, -normal.X, -normal.Y)
}
