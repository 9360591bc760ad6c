package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector used for world-space poses and velocities
type Vec3F struct {
	X, Y, Z float64
}

func V3F(x, y, z float64) Vec3F {
	return Vec3F{x, y, z}
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FClampMag scales v down so its magnitude does not exceed maxMag
func V3FClampMag(v Vec3F, maxMag float64) Vec3F {
	magSq := V3FMagSq(v)
	if maxMag <= 0 || magSq <= maxMag*maxMag {
		return v
	}
	return V3FScale(v, maxMag/math.Sqrt(magSq))
}

// RotateZ rotates the XY components of v by angle radians around the Z axis
func RotateZ(v Vec3F, angle float64) Vec3F {
	sin, cos := math.Sincos(angle)
	return Vec3F{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// LerpF linearly interpolates from a toward b by factor t
func LerpF(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ClampF restricts v to [lo, hi]
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ApproxEqual reports whether a and b differ by at most eps
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// V3FApproxEqual compares vectors component-wise within eps
func V3FApproxEqual(a, b Vec3F, eps float64) bool {
	return ApproxEqual(a.X, b.X, eps) && ApproxEqual(a.Y, b.Y, eps) && ApproxEqual(a.Z, b.Z, eps)
}
