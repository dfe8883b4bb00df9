package physics

// BodyType selects how a body participates in the simulation.
type BodyType int

const (
	// BodyDynamic bodies integrate motion and respond to forces.
	BodyDynamic BodyType = iota
	// BodyKinematic bodies never move under simulation; callers drive them
	// by setting position/velocity directly.
	BodyKinematic
	// BodyStatic bodies never move at all (ground, walls).
	BodyStatic
)

// ForceMode selects how AddForce/AddTorque interpret their argument.
type ForceMode int

const (
	// ModeForce accumulates a continuous force, applied over the next
	// integration sub-step as dv = F/m * dt.
	ModeForce ForceMode = iota
	// ModeImpulse applies an instantaneous momentum change: dv = F/m.
	ModeImpulse
	// ModeAcceleration accumulates a mass-independent acceleration; the net
	// effect after integration is dv = a * dt regardless of mass.
	ModeAcceleration
	// ModeVelocityChange applies a mass-independent instantaneous velocity
	// delta: dv = F.
	ModeVelocityChange
)

// ShapeKind identifies a body's collision shape.
type ShapeKind int

const (
	// ShapeBox is an axis-aligned box of Width x Height.
	ShapeBox ShapeKind = iota
	// ShapeCircle is a circle of Radius. For broad-phase purposes a circle
	// still collides as its bounding box (2r x 2r).
	ShapeCircle
)

// Shape describes a body's collision shape. Width/Height are set for
// boxes, Radius for circles.
type Shape struct {
	Kind   ShapeKind
	Width  float32
	Height float32
	Radius float32
}

// Sleep thresholds for low-motion bodies. No code path consults these
// yet: bodies only sleep through an explicit Sleep call. Kept so the
// tuning values survive until automatic sleeping is wired up.
const (
	SleepVelocityThreshold = 0.1
	SleepTimeThreshold     = 0.5
)

// CollisionHandler receives per-body contact notifications: the other
// participant and the contact normal pointing away from this body.
type CollisionHandler func(other *Body, nx, ny float32)

// HandlerID identifies a subscribed handler so it can be removed later.
type HandlerID int

type bodyHandler struct {
	id HandlerID
	fn CollisionHandler
}

// Body is a single rigid body: transform, motion, material, shape, and
// sleep state. Bodies are created with NewBody and simulated by a World.
type Body struct {
	bodyType BodyType

	position        Vec2
	rotation        float32 // radians
	velocity        Vec2
	angularVelocity float32 // radians/sec

	// Force/torque accumulators, cleared at the end of every integration
	// sub-step.
	forceX float32
	forceY float32
	torque float32

	mass    float32
	invMass float32 // 0 for Kinematic and Static bodies

	restitution    float32
	friction       float32
	linearDamping  float32
	angularDamping float32
	gravityScale   float32

	trigger  bool
	sleeping bool

	shape Shape
	// Cached axis-aligned bounds used for every broad-phase test; (2r, 2r)
	// for circles.
	boundsW float32
	boundsH float32

	nextHandlerID        HandlerID
	collisionHandlers    []bodyHandler
	triggerEnterHandlers []bodyHandler
	triggerExitHandlers  []bodyHandler
}

// NewBody returns a body of the given type with mass 1, gravity scale 1,
// a 1x1 box shape, and zero velocity at the origin.
func NewBody(t BodyType) *Body {
	b := &Body{
		bodyType:     t,
		mass:         1,
		friction:     0.5,
		gravityScale: 1,
	}
	b.recomputeInvMass()
	b.SetBoxShape(1, 1)
	return b
}

// Type returns the body type.
func (b *Body) Type() BodyType {
	return b.bodyType
}

// SetType changes the body type and recomputes the inverse mass (0 for
// Kinematic and Static bodies).
func (b *Body) SetType(t BodyType) {
	b.bodyType = t
	b.recomputeInvMass()
}

func (b *Body) recomputeInvMass() {
	if b.bodyType == BodyDynamic && b.mass > 0 {
		b.invMass = 1 / b.mass
	} else {
		b.invMass = 0
	}
}

// Position returns the body's center position.
func (b *Body) Position() Vec2 {
	return b.position
}

// SetPosition teleports the body. Teleporting wakes a sleeping body.
func (b *Body) SetPosition(x, y float32) {
	b.position = Vec2{X: x, Y: y}
	b.WakeUp()
}

// Rotation returns the body's rotation in radians.
func (b *Body) Rotation() float32 {
	return b.rotation
}

// SetRotation sets the body's rotation in radians.
func (b *Body) SetRotation(r float32) {
	b.rotation = r
}

// Velocity returns the body's linear velocity.
func (b *Body) Velocity() Vec2 {
	return b.velocity
}

// SetVelocity sets the linear velocity and wakes the body.
func (b *Body) SetVelocity(x, y float32) {
	b.velocity = Vec2{X: x, Y: y}
	b.WakeUp()
}

// AngularVelocity returns the angular velocity in radians/sec.
func (b *Body) AngularVelocity() float32 {
	return b.angularVelocity
}

// SetAngularVelocity sets the angular velocity and wakes the body.
func (b *Body) SetAngularVelocity(w float32) {
	b.angularVelocity = w
	b.WakeUp()
}

// Mass returns the body's mass.
func (b *Body) Mass() float32 {
	return b.mass
}

// SetMass sets the mass and recomputes the inverse mass. Non-positive
// values are a caller bug and are ignored.
func (b *Body) SetMass(m float32) {
	if m <= 0 {
		return
	}
	b.mass = m
	b.recomputeInvMass()
}

// InverseMass returns 1/mass for Dynamic bodies and 0 otherwise.
func (b *Body) InverseMass() float32 {
	return b.invMass
}

// Restitution returns the bounciness coefficient in [0, 1].
func (b *Body) Restitution() float32 {
	return b.restitution
}

// SetRestitution sets the bounciness coefficient, clamped into [0, 1].
func (b *Body) SetRestitution(r float32) {
	b.restitution = clamp01(r)
}

// Friction returns the friction coefficient in [0, 1].
func (b *Body) Friction() float32 {
	return b.friction
}

// SetFriction sets the friction coefficient, clamped into [0, 1].
func (b *Body) SetFriction(f float32) {
	b.friction = clamp01(f)
}

// LinearDamping returns the per-sub-step linear velocity damping in [0, 1].
func (b *Body) LinearDamping() float32 {
	return b.linearDamping
}

// SetLinearDamping sets the linear damping, clamped into [0, 1].
func (b *Body) SetLinearDamping(d float32) {
	b.linearDamping = clamp01(d)
}

// AngularDamping returns the per-sub-step angular velocity damping in [0, 1].
func (b *Body) AngularDamping() float32 {
	return b.angularDamping
}

// SetAngularDamping sets the angular damping, clamped into [0, 1].
func (b *Body) SetAngularDamping(d float32) {
	b.angularDamping = clamp01(d)
}

// GravityScale returns the body's gravity multiplier.
func (b *Body) GravityScale() float32 {
	return b.gravityScale
}

// SetGravityScale sets the gravity multiplier. Unconstrained; negative
// values give anti-gravity.
func (b *Body) SetGravityScale(s float32) {
	b.gravityScale = s
}

// IsTrigger reports whether the body is a trigger: overlap produces a
// notification only, never a physical response.
func (b *Body) IsTrigger() bool {
	return b.trigger
}

// SetTrigger sets the trigger flag.
func (b *Body) SetTrigger(t bool) {
	b.trigger = t
}

// AddForce applies (fx, fy) to the body interpreted per mode. No-op on
// Kinematic and Static bodies. Any force application wakes the body.
func (b *Body) AddForce(fx, fy float32, mode ForceMode) {
	if b.bodyType != BodyDynamic {
		return
	}
	b.WakeUp()
	switch mode {
	case ModeForce:
		b.forceX += fx
		b.forceY += fy
	case ModeImpulse:
		b.velocity.X += fx * b.invMass
		b.velocity.Y += fy * b.invMass
	case ModeAcceleration:
		b.forceX += fx * b.mass
		b.forceY += fy * b.mass
	case ModeVelocityChange:
		b.velocity.X += fx
		b.velocity.Y += fy
	}
}

// AddForceAtPoint applies (fx, fy) at world point (px, py): the linear
// part behaves like AddForce, and the lever arm adds a torque equal to
// the 2D cross product r x F, routed through AddTorque with the same
// mode.
func (b *Body) AddForceAtPoint(fx, fy, px, py float32, mode ForceMode) {
	if b.bodyType != BodyDynamic {
		return
	}
	b.AddForce(fx, fy, mode)
	rx := px - b.position.X
	ry := py - b.position.Y
	b.AddTorque(rx*fy-ry*fx, mode)
}

// AddTorque applies a torque interpreted per mode. Force and Acceleration
// accumulate into the torque accumulator (applied as dw = t * dt during
// integration; torque is treated as directly additive to angular
// velocity, there is no moment-of-inertia scaling). Impulse and
// VelocityChange apply directly to the angular velocity.
func (b *Body) AddTorque(t float32, mode ForceMode) {
	if b.bodyType != BodyDynamic {
		return
	}
	b.WakeUp()
	switch mode {
	case ModeForce, ModeAcceleration:
		b.torque += t
	case ModeImpulse, ModeVelocityChange:
		b.angularVelocity += t
	}
}

// ClearForces zeroes the force and torque accumulators. The world calls
// this at the end of every integration sub-step.
func (b *Body) ClearForces() {
	b.forceX = 0
	b.forceY = 0
	b.torque = 0
}

// SetBoxShape gives the body a Width x Height box shape and recomputes
// the cached bounds. Non-positive dimensions are ignored.
func (b *Body) SetBoxShape(w, h float32) {
	if w <= 0 || h <= 0 {
		return
	}
	b.shape = Shape{Kind: ShapeBox, Width: w, Height: h}
	b.boundsW = w
	b.boundsH = h
}

// SetCircleShape gives the body a circle shape of the given radius and
// recomputes the cached bounds (2r x 2r). Non-positive radii are ignored.
func (b *Body) SetCircleShape(r float32) {
	if r <= 0 {
		return
	}
	b.shape = Shape{Kind: ShapeCircle, Radius: r}
	b.boundsW = 2 * r
	b.boundsH = 2 * r
}

// Shape returns the body's collision shape descriptor.
func (b *Body) Shape() Shape {
	return b.shape
}

// ShapeBounds returns the axis-aligned bounding width/height used by the
// broad phase and exposed for external renderers.
func (b *Body) ShapeBounds() (w, h float32) {
	return b.boundsW, b.boundsH
}

// Sleep forces the body to sleep: velocity and angular velocity are
// zeroed and the integrator skips the body until it is woken.
func (b *Body) Sleep() {
	b.velocity = Vec2{}
	b.angularVelocity = 0
	b.sleeping = true
}

// WakeUp clears the sleep state.
func (b *Body) WakeUp() {
	b.sleeping = false
}

// IsSleeping reports whether the body is asleep.
func (b *Body) IsSleeping() bool {
	return b.sleeping
}

// OnCollision subscribes a per-body contact handler and returns an id for
// OffCollision. Handlers run in subscription order.
func (b *Body) OnCollision(fn CollisionHandler) HandlerID {
	if fn == nil {
		return -1
	}
	b.nextHandlerID++
	b.collisionHandlers = append(b.collisionHandlers, bodyHandler{id: b.nextHandlerID, fn: fn})
	return b.nextHandlerID
}

// OffCollision removes a handler previously added with OnCollision.
func (b *Body) OffCollision(id HandlerID) {
	b.collisionHandlers = removeHandler(b.collisionHandlers, id)
}

// OnTriggerEnter subscribes a trigger-enter handler. The channel is part
// of the body's contract, but the world currently raises only the generic
// collision notification for trigger overlaps; there is no enter/exit
// edge detection, so these handlers never fire.
func (b *Body) OnTriggerEnter(fn CollisionHandler) HandlerID {
	if fn == nil {
		return -1
	}
	b.nextHandlerID++
	b.triggerEnterHandlers = append(b.triggerEnterHandlers, bodyHandler{id: b.nextHandlerID, fn: fn})
	return b.nextHandlerID
}

// OnTriggerExit subscribes a trigger-exit handler. Same caveat as
// OnTriggerEnter: never fired by the current world.
func (b *Body) OnTriggerExit(fn CollisionHandler) HandlerID {
	if fn == nil {
		return -1
	}
	b.nextHandlerID++
	b.triggerExitHandlers = append(b.triggerExitHandlers, bodyHandler{id: b.nextHandlerID, fn: fn})
	return b.nextHandlerID
}

// OffTrigger removes a handler previously added with OnTriggerEnter or
// OnTriggerExit.
func (b *Body) OffTrigger(id HandlerID) {
	b.triggerEnterHandlers = removeHandler(b.triggerEnterHandlers, id)
	b.triggerExitHandlers = removeHandler(b.triggerExitHandlers, id)
}

func removeHandler(handlers []bodyHandler, id HandlerID) []bodyHandler {
	for i, h := range handlers {
		if h.id == id {
			return append(handlers[:i], handlers[i+1:]...)
		}
	}
	return handlers
}

// emitCollision runs the body's contact handlers in subscription order.
func (b *Body) emitCollision(other *Body, nx, ny float32) {
	for _, h := range b.collisionHandlers {
		h.fn(other, nx, ny)
	}
}

// integrate advances the body by one fixed sub-step with semi-implicit
// Euler: velocity first (gravity, accumulated forces, damping), then
// position from the new velocity. Called by the world only for Dynamic,
// awake bodies. Accumulators are cleared afterwards.
func (b *Body) integrate(gravity Vec2, dt float32) {
	b.velocity.X += (gravity.X*b.gravityScale + b.forceX*b.invMass) * dt
	b.velocity.Y += (gravity.Y*b.gravityScale + b.forceY*b.invMass) * dt
	b.angularVelocity += b.torque * dt

	b.velocity.X *= 1 - b.linearDamping
	b.velocity.Y *= 1 - b.linearDamping
	b.angularVelocity *= 1 - b.angularDamping

	b.position.X += b.velocity.X * dt
	b.position.Y += b.velocity.Y * dt
	b.rotation += b.angularVelocity * dt

	b.ClearForces()
}
