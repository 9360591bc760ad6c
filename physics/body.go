package physics

import (
	"github.com/lixenwraith/pong-patrol/engine"
	"github.com/lixenwraith/pong-patrol/vmath"
)

// rigidBody is the world-owned state behind an engine.Body handle
type rigidBody struct {
	id     engine.BodyID
	kind   engine.BodyKind
	shape  engine.Shape
	radius float64
	half   vmath.Vec3F
	normal vmath.Vec3F
	mass   float64

	pos    vmath.Vec3F
	rot    vmath.Vec3F
	vel    vmath.Vec3F
	angVel vmath.Vec3F

	// Pose at the previous step, kinematic velocity is derived from it
	prevPos vmath.Vec3F

	handler engine.ContactHandler
}

func (b *rigidBody) ID() engine.BodyID     { return b.id }
func (b *rigidBody) Kind() engine.BodyKind { return b.kind }
func (b *rigidBody) Shape() engine.Shape   { return b.shape }

// Extents returns the half extents for boxes, (r, r, r) for spheres and zero for planes
func (b *rigidBody) Extents() vmath.Vec3F {
	switch b.shape {
	case engine.ShapeSphere:
		return vmath.V3F(b.radius, b.radius, b.radius)
	case engine.ShapeBox:
		return b.half
	}
	return vmath.Vec3F{}
}

func (b *rigidBody) Position() vmath.Vec3F        { return b.pos }
func (b *rigidBody) Rotation() vmath.Vec3F        { return b.rot }
func (b *rigidBody) Velocity() vmath.Vec3F        { return b.vel }
func (b *rigidBody) AngularVelocity() vmath.Vec3F { return b.angVel }

func (b *rigidBody) SetPosition(p vmath.Vec3F) { b.pos = p }

func (b *rigidBody) SetRotation(r vmath.Vec3F) { b.rot = r }

// SetVelocity is authoritative for dynamic bodies, kinematic velocity is re-derived each step
func (b *rigidBody) SetVelocity(v vmath.Vec3F) { b.vel = v }

func (b *rigidBody) SetAngularVelocity(w vmath.Vec3F) { b.angVel = w }

// Normal returns the plane normal, zero for other shapes
func (b *rigidBody) Normal() vmath.Vec3F { return b.normal }
