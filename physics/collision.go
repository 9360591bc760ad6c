package physics

import (
	"math"

	"github.com/lixenwraith/pong-patrol/vmath"
)

// contactEpsilon guards normal computation when a center lies on a surface
const contactEpsilon = 1e-12

// SphereBox tests a sphere against a box rotated about Z
// Returns the contact normal pointing from the box toward the sphere and the penetration depth
func SphereBox(center vmath.Vec3F, radius float64, boxPos vmath.Vec3F, rotZ float64, half vmath.Vec3F) (vmath.Vec3F, float64, bool) {
	local := vmath.RotateZ(vmath.V3FSub(center, boxPos), -rotZ)

	closestX := vmath.ClampF(local.X, -half.X, half.X)
	closestY := vmath.ClampF(local.Y, -half.Y, half.Y)
	dx := local.X - closestX
	dy := local.Y - closestY
	distSq := dx*dx + dy*dy

	if distSq > radius*radius {
		return vmath.Vec3F{}, 0, false
	}

	var n vmath.Vec3F
	var depth float64
	if distSq > contactEpsilon {
		dist := math.Sqrt(distSq)
		n = vmath.V3F(dx/dist, dy/dist, 0)
		depth = radius - dist
	} else {
		// Center inside the box, push out along the shallowest axis
		penX := half.X - math.Abs(local.X)
		penY := half.Y - math.Abs(local.Y)
		if penX < penY {
			n = vmath.V3F(sign(local.X), 0, 0)
			depth = penX + radius
		} else {
			n = vmath.V3F(0, sign(local.Y), 0)
			depth = penY + radius
		}
	}

	return vmath.RotateZ(n, rotZ), depth, true
}

// SpherePlane tests a sphere against the half-space behind a plane
// The plane passes through planePos with unit normal n
func SpherePlane(center vmath.Vec3F, radius float64, planePos, n vmath.Vec3F) (float64, bool) {
	d := vmath.V3FDot(vmath.V3FSub(center, planePos), n)
	if d >= radius {
		return 0, false
	}
	return radius - d, true
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
