package physics

import (
	"github.com/lixenwraith/pong-patrol/vmath"
)

// integrate performs semi-implicit Euler: v = v + a*dt; p = p + v*dt
// Velocity is clamped to maxSpeed before the position update
func integrate(b *rigidBody, accel vmath.Vec3F, maxSpeed, dt float64) {
	b.vel = vmath.V3FAdd(b.vel, vmath.V3FScale(accel, dt))
	b.vel = vmath.V3FClampMag(b.vel, maxSpeed)
	b.pos = vmath.V3FAdd(b.pos, vmath.V3FScale(b.vel, dt))
	b.rot = vmath.V3FAdd(b.rot, vmath.V3FScale(b.angVel, dt))
}

// reflect removes the approaching relative normal velocity scaled by (1+restitution)
// relVel is the body velocity minus the other body's velocity
// Returns the impact speed along n, zero when separating
func reflect(b *rigidBody, relVel, n vmath.Vec3F, restitution, maxSpeed float64) float64 {
	vn := vmath.V3FDot(relVel, n)
	if vn >= 0 {
		return 0
	}
	b.vel = vmath.V3FSub(b.vel, vmath.V3FScale(n, (1+restitution)*vn))
	b.vel = vmath.V3FClampMag(b.vel, maxSpeed)
	return -vn
}

// spin sets Z spin from the tangential component of relVel, rolling without slip
func spin(b *rigidBody, relVel, n vmath.Vec3F) {
	if b.radius <= 0 {
		return
	}
	tangent := vmath.V3F(-n.Y, n.X, 0)
	b.angVel.Z = vmath.V3FDot(relVel, tangent) / b.radius
}
