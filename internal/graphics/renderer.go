package graphics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/physics"
)

const (
	// contactMarkerRadius is the on-screen size of a contact point, in pixels.
	contactMarkerRadius = 4
	// velocityScale stretches velocity vectors so slow bodies still show a
	// readable arrow.
	velocityScale = 0.25
)

var (
	dynamicColor   = rl.NewColor(80, 200, 255, 255)
	kinematicColor = rl.NewColor(255, 200, 80, 255)
	staticColor    = rl.NewColor(160, 160, 160, 255)
	sleepingColor  = rl.NewColor(90, 90, 140, 255)
	triggerColor   = rl.NewColor(120, 255, 120, 160)
	aabbColor      = rl.NewColor(255, 255, 255, 60)
	contactColor   = rl.NewColor(255, 80, 80, 255)
	velocityColor  = rl.NewColor(255, 255, 120, 255)
	rayColor       = rl.NewColor(255, 120, 255, 200)
)

// Camera maps simulation space (meters, Y up) to screen space (pixels, Y
// down). Target is the world point shown at the screen center.
type Camera struct {
	Target         physics.Vec2
	PixelsPerMeter float32
}

// NewCamera returns a camera centered on the origin at the given scale.
func NewCamera(pixelsPerMeter float32) Camera {
	return Camera{PixelsPerMeter: pixelsPerMeter}
}

// WorldToScreen converts a simulation point to screen pixels.
func (c Camera) WorldToScreen(p physics.Vec2) rl.Vector2 {
	cx := float32(rl.GetScreenWidth()) * 0.5
	cy := float32(rl.GetScreenHeight()) * 0.5
	return rl.NewVector2(
		cx+(p.X-c.Target.X)*c.PixelsPerMeter,
		cy-(p.Y-c.Target.Y)*c.PixelsPerMeter,
	)
}

// ScreenToWorld converts screen pixels to a simulation point.
func (c Camera) ScreenToWorld(p rl.Vector2) physics.Vec2 {
	cx := float32(rl.GetScreenWidth()) * 0.5
	cy := float32(rl.GetScreenHeight()) * 0.5
	return physics.Vec2{
		X: c.Target.X + (p.X-cx)/c.PixelsPerMeter,
		Y: c.Target.Y - (p.Y-cy)/c.PixelsPerMeter,
	}
}

// Renderer draws a physics world in wireframe. Draw toggles mirror the
// sandbox preferences.
type Renderer struct {
	Camera         Camera
	DrawAABBs      bool
	DrawVelocities bool
	DrawContacts   bool
}

// NewRenderer returns a renderer with the given camera and contact drawing on.
func NewRenderer(cam Camera) *Renderer {
	return &Renderer{Camera: cam, DrawContacts: true}
}

// DrawWorld draws every body, plus bounding boxes and velocity vectors
// when those toggles are on.
func (r *Renderer) DrawWorld(w *physics.World) {
	for _, b := range w.Bodies() {
		r.drawBody(b)
		if r.DrawAABBs {
			r.drawAABB(b.AABB())
		}
		if r.DrawVelocities && b.Type() == physics.BodyDynamic {
			r.drawVelocity(b)
		}
	}
}

func (r *Renderer) drawBody(b *physics.Body) {
	c := bodyColor(b)
	pos := b.Position()
	switch b.Shape().Kind {
	case physics.ShapeCircle:
		center := r.Camera.WorldToScreen(pos)
		radius := b.Shape().Radius * r.Camera.PixelsPerMeter
		rl.DrawCircleLinesV(center, radius, c)
		// Radius line so rotation is visible on circles.
		tip := r.Camera.WorldToScreen(physics.Vec2{
			X: pos.X + b.Shape().Radius*math32.Cos(b.Rotation()),
			Y: pos.Y + b.Shape().Radius*math32.Sin(b.Rotation()),
		})
		rl.DrawLineV(center, tip, c)
	default:
		hw := b.Shape().Width * 0.5
		hh := b.Shape().Height * 0.5
		cosR := math32.Cos(b.Rotation())
		sinR := math32.Sin(b.Rotation())
		corners := [4]physics.Vec2{
			{X: -hw, Y: -hh},
			{X: hw, Y: -hh},
			{X: hw, Y: hh},
			{X: -hw, Y: hh},
		}
		var pts [4]rl.Vector2
		for i, corner := range corners {
			pts[i] = r.Camera.WorldToScreen(physics.Vec2{
				X: pos.X + corner.X*cosR - corner.Y*sinR,
				Y: pos.Y + corner.X*sinR + corner.Y*cosR,
			})
		}
		for i := range pts {
			rl.DrawLineV(pts[i], pts[(i+1)%4], c)
		}
	}
}

func bodyColor(b *physics.Body) rl.Color {
	if b.IsTrigger() {
		return triggerColor
	}
	if b.IsSleeping() {
		return sleepingColor
	}
	switch b.Type() {
	case physics.BodyKinematic:
		return kinematicColor
	case physics.BodyStatic:
		return staticColor
	default:
		return dynamicColor
	}
}

func (r *Renderer) drawAABB(box physics.AABB) {
	topLeft := r.Camera.WorldToScreen(physics.Vec2{X: box.Min.X, Y: box.Max.Y})
	w := (box.Max.X - box.Min.X) * r.Camera.PixelsPerMeter
	h := (box.Max.Y - box.Min.Y) * r.Camera.PixelsPerMeter
	rl.DrawRectangleLines(int32(topLeft.X), int32(topLeft.Y), int32(w), int32(h), aabbColor)
}

func (r *Renderer) drawVelocity(b *physics.Body) {
	v := b.Velocity()
	if v.X == 0 && v.Y == 0 {
		return
	}
	from := b.Position()
	to := physics.Vec2{X: from.X + v.X*velocityScale, Y: from.Y + v.Y*velocityScale}
	rl.DrawLineV(r.Camera.WorldToScreen(from), r.Camera.WorldToScreen(to), velocityColor)
}

// DrawContact marks one reported contact: a dot at the contact point and
// a short line along the normal.
func (r *Renderer) DrawContact(info physics.CollisionInfo) {
	if !r.DrawContacts {
		return
	}
	p := r.Camera.WorldToScreen(info.Contact)
	rl.DrawCircleV(p, contactMarkerRadius, contactColor)
	tip := physics.Vec2{
		X: info.Contact.X + info.Normal.X*0.5,
		Y: info.Contact.Y + info.Normal.Y*0.5,
	}
	rl.DrawLineV(p, r.Camera.WorldToScreen(tip), contactColor)
}

// DrawRay draws a cast ray and, when it hit, the hit point.
func (r *Renderer) DrawRay(start, end physics.Vec2, hit physics.RaycastHit, ok bool) {
	rl.DrawLineV(r.Camera.WorldToScreen(start), r.Camera.WorldToScreen(end), rayColor)
	if ok {
		rl.DrawCircleV(r.Camera.WorldToScreen(hit.Point), contactMarkerRadius, rayColor)
	}
}
